package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/thoas/go-funk"
	"github.com/xuri/excelize/v2"

	api "github.com/robotics-advisor/planner/api/v1alpha1"
)

const (
	sheetTasks          = "Tasks"
	sheetOptions        = "Options"
	sheetCostBenefit    = "Cost Benefit"
	sheetProjections    = "Projections"
	sheetRecommendation = "Recommendation"
)

// ReportService renders stored analyses as spreadsheet exports.
type ReportService struct {
	analysisService *AnalysisService
}

func NewReportService(analysisService *AnalysisService) *ReportService {
	return &ReportService{analysisService: analysisService}
}

// ExportAnalysisXLSX builds a workbook with one sheet per result section.
// The caller owns the returned file and must close it.
func (rs *ReportService) ExportAnalysisXLSX(ctx context.Context, id uuid.UUID) (*excelize.File, error) {
	analysis, err := rs.analysisService.GetAnalysis(ctx, id)
	if err != nil {
		return nil, err
	}
	if analysis.Result == nil {
		return nil, NewErrAnalysisNotCompleted(id)
	}
	result := analysis.Result.Data

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", sheetTasks)

	if err := writeTasksSheet(f, result.ProcessTasks); err != nil {
		return nil, err
	}
	if err := writeOptionsSheet(f, result.AutomationOptions); err != nil {
		return nil, err
	}
	if err := writeCostBenefitSheet(f, result.CostBenefitAnalysis); err != nil {
		return nil, err
	}
	if err := writeProjectionsSheet(f, result.AnnualProjections, result.BaselineProjection); err != nil {
		return nil, err
	}
	if err := writeRecommendationSheet(f, result); err != nil {
		return nil, err
	}

	return f, nil
}

func writeTasksSheet(f *excelize.File, tasks []api.Task) error {
	if err := writeRow(f, sheetTasks, 1, "Task ID", "Action", "Actor"); err != nil {
		return err
	}
	for i, t := range tasks {
		if err := writeRow(f, sheetTasks, i+2, t.ID, t.Action, t.ActorType); err != nil {
			return err
		}
	}
	return nil
}

func writeOptionsSheet(f *excelize.File, options []api.AutomationOption) error {
	if _, err := f.NewSheet(sheetOptions); err != nil {
		return err
	}
	if err := writeRow(f, sheetOptions, 1, "Option", "Task ID", "Assigned Robot", "Reason"); err != nil {
		return err
	}
	row := 2
	for _, opt := range options {
		for _, a := range opt.Assignments {
			if err := writeRow(f, sheetOptions, row, opt.OptionID, a.TaskID, a.RobotName, a.ReasonAutomated); err != nil {
				return err
			}
			row++
		}
		for _, u := range opt.UnassignedHumanTasks {
			if err := writeRow(f, sheetOptions, row, opt.OptionID, u.TaskID, "", u.ReasonNotAutomated); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

func writeCostBenefitSheet(f *excelize.File, comparisons []api.OptionCostComparison) error {
	if _, err := f.NewSheet(sheetCostBenefit); err != nil {
		return err
	}
	if err := writeRow(f, sheetCostBenefit, 1, "Option", "Robot", "Effective Cost / Human-Minute", "Human Cost / Minute", "Cheaper Than Human"); err != nil {
		return err
	}
	row := 2
	for _, cmp := range comparisons {
		for _, r := range cmp.RobotCostComparison {
			cost := any("n/a")
			if r.RobotEffectiveCostPerMin != nil {
				cost = *r.RobotEffectiveCostPerMin
			}
			if err := writeRow(f, sheetCostBenefit, row, cmp.OptionID, r.RobotName, cost, r.HumanCostPerMin, r.IsCheaper); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

func writeProjectionsSheet(f *excelize.File, projections []api.AnnualProjection, baseline api.AnnualProjection) error {
	if _, err := f.NewSheet(sheetProjections); err != nil {
		return err
	}

	header := []any{"Option"}
	for year := 0; year < len(baseline.CumulativeCostsByYear); year++ {
		header = append(header, fmt.Sprintf("Year %d", year))
	}
	if err := writeRow(f, sheetProjections, 1, header...); err != nil {
		return err
	}

	rows := append([]api.AnnualProjection{baseline}, projections...)
	for i, p := range rows {
		cells := []any{p.OptionID}
		for _, c := range p.CumulativeCostsByYear {
			if c == nil {
				cells = append(cells, "n/a")
				continue
			}
			cells = append(cells, *c)
		}
		if err := writeRow(f, sheetProjections, i+2, cells...); err != nil {
			return err
		}
	}
	return nil
}

func writeRecommendationSheet(f *excelize.File, result api.AnalysisResult) error {
	if _, err := f.NewSheet(sheetRecommendation); err != nil {
		return err
	}
	if err := writeRow(f, sheetRecommendation, 1, "Recommended Option", result.Recommendation.RecommendedOptionID); err != nil {
		return err
	}
	if err := writeRow(f, sheetRecommendation, 2, "Justification", result.Recommendation.Justification); err != nil {
		return err
	}

	winner, ok := funk.Find(result.AnnualProjections, func(p api.AnnualProjection) bool {
		return p.OptionID == result.Recommendation.RecommendedOptionID
	}).(api.AnnualProjection)
	if ok && len(winner.CumulativeCostsByYear) > 0 {
		if final := winner.CumulativeCostsByYear[len(winner.CumulativeCostsByYear)-1]; final != nil {
			if err := writeRow(f, sheetRecommendation, 3, "Projected Total Cost", *final); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values ...any) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}
