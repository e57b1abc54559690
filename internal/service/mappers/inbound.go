package mappers

import (
	"github.com/google/uuid"

	api "github.com/robotics-advisor/planner/api/v1alpha1"
	"github.com/robotics-advisor/planner/internal/costing"
	"github.com/robotics-advisor/planner/internal/store/model"
)

// AnalysisCreateForm carries the validated inputs of a new analysis run.
type AnalysisCreateForm struct {
	VideoURL string
	Config   costing.FinancialConfig
}

func AnalysisFormFromApi(form api.AnalysisForm) AnalysisCreateForm {
	return AnalysisCreateForm{
		VideoURL: form.VideoURL,
		Config: costing.FinancialConfig{
			HumanCostPerMin:   form.HumanCostPerMin,
			DepreciationYears: form.DepreciationYears,
			HoursPerWeek:      form.HoursPerWeek,
			EfficiencyGainPct: form.EfficiencyGainPct,
		},
	}
}

func (f AnalysisCreateForm) ToModel() model.Analysis {
	return model.Analysis{
		ID:       uuid.New(),
		VideoURL: f.VideoURL,
		Config: model.MakeJSONField(api.AnalysisConfig{
			HumanCostPerMin:   f.Config.HumanCostPerMin,
			DepreciationYears: f.Config.DepreciationYears,
			HoursPerWeek:      f.Config.HoursPerWeek,
			EfficiencyGainPct: f.Config.EfficiencyGainPct,
		}),
	}
}
