package mappers

import (
	"math"

	api "github.com/robotics-advisor/planner/api/v1alpha1"
	"github.com/robotics-advisor/planner/internal/catalog"
	"github.com/robotics-advisor/planner/internal/costing"
	"github.com/robotics-advisor/planner/internal/store/model"
)

func AnalysisToApi(a model.Analysis) api.Analysis {
	analysis := api.Analysis{
		ID:        a.ID,
		CreatedAt: a.CreatedAt,
		VideoURL:  a.VideoURL,
	}
	if a.Config != nil {
		analysis.Config = a.Config.Data
	}
	if a.Result != nil {
		result := a.Result.Data
		analysis.Result = &result
	}
	return analysis
}

func AnalysisListToApi(analyses model.AnalysisList) []api.Analysis {
	result := []api.Analysis{}
	for _, a := range analyses {
		result = append(result, AnalysisToApi(a))
	}
	return result
}

// AnalysisResultToApi converts an engine run to its wire form. Incomparable
// costs (NaN) become null, since NaN is not representable in JSON.
func AnalysisResultToApi(res costing.Analysis) api.AnalysisResult {
	out := api.AnalysisResult{
		ProcessTasks:        make([]api.Task, 0, len(res.Tasks)),
		AutomationOptions:   make([]api.AutomationOption, 0, len(res.Options)),
		CostBenefitAnalysis: make([]api.OptionCostComparison, 0, len(res.CostBenefit)),
		AnnualProjections:   make([]api.AnnualProjection, 0, len(res.Projections)),
		BaselineProjection:  projectionToApi(res.Baseline),
		Recommendation: api.Recommendation{
			RecommendedOptionID: res.Recommendation.RecommendedOptionID,
			Justification:       res.Recommendation.Justification,
		},
	}

	for _, t := range res.Tasks {
		out.ProcessTasks = append(out.ProcessTasks, api.Task{
			ID:        t.ID,
			Action:    t.Action,
			ActorType: string(t.Actor),
		})
	}

	for _, opt := range res.Options {
		out.AutomationOptions = append(out.AutomationOptions, optionToApi(opt))
	}

	for _, cmp := range res.CostBenefit {
		rows := make([]api.RobotCostComparison, 0, len(cmp.Robots))
		for _, r := range cmp.Robots {
			rows = append(rows, api.RobotCostComparison{
				RobotName:                r.RobotName,
				RobotEffectiveCostPerMin: nullableCost(r.EffectiveCostPerHumanMin),
				HumanCostPerMin:          r.HumanCostPerMin,
				IsCheaper:                r.IsCheaper,
			})
		}
		out.CostBenefitAnalysis = append(out.CostBenefitAnalysis, api.OptionCostComparison{
			OptionID:            cmp.OptionID,
			RobotCostComparison: rows,
		})
	}

	for _, p := range res.Projections {
		out.AnnualProjections = append(out.AnnualProjections, projectionToApi(p))
	}

	return out
}

func optionToApi(opt costing.AutomationOption) api.AutomationOption {
	option := api.AutomationOption{
		OptionID:             opt.OptionID,
		Summary:              opt.Summary,
		Assignments:          make([]api.Assignment, 0, len(opt.Assignments)),
		UnassignedHumanTasks: make([]api.UnassignedHumanTask, 0, len(opt.Unassigned)),
	}
	for _, a := range opt.Assignments {
		option.Assignments = append(option.Assignments, api.Assignment{
			TaskID:          a.TaskID,
			RobotName:       a.RobotName,
			ReasonAutomated: a.Reason,
		})
	}
	for _, u := range opt.Unassigned {
		option.UnassignedHumanTasks = append(option.UnassignedHumanTasks, api.UnassignedHumanTask{
			TaskID:             u.TaskID,
			ReasonNotAutomated: u.Reason,
		})
	}
	return option
}

func projectionToApi(p costing.AnnualProjection) api.AnnualProjection {
	costs := make([]*float64, 0, len(p.CumulativeCostsByYear))
	for _, c := range p.CumulativeCostsByYear {
		costs = append(costs, nullableCost(c))
	}
	return api.AnnualProjection{
		OptionID:              p.OptionID,
		CumulativeCostsByYear: costs,
	}
}

func nullableCost(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	c := v
	return &c
}

func RobotToApi(r catalog.Robot) api.Robot {
	return api.Robot{
		RobotName:          r.Name,
		URDFFilename:       r.URDFFilename,
		NumLinks:           r.Capabilities.Links,
		NumJoints:          r.Capabilities.Joints,
		EstimatedReachM:    r.Capabilities.EstimatedReachM,
		EstimatedPayloadKg: r.Capabilities.EstimatedPayloadKg,
		PurchasePrice:      r.PurchasePrice,
		OpexPerMin:         r.OpexPerMin,
		EndEffectorPct:     r.EndEffectorPct,
	}
}
