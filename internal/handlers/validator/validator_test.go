package validator

import (
	"testing"

	"github.com/robotics-advisor/planner/api/v1alpha1"
)

func TestAnalysisFormValidators(t *testing.T) {
	validForm := func() v1alpha1.AnalysisForm {
		return v1alpha1.AnalysisForm{
			VideoURL:          "gs://factory-videos/assembly-line.mp4",
			HumanCostPerMin:   0.5,
			DepreciationYears: 5,
			HoursPerWeek:      40,
			EfficiencyGainPct: 10,
		}
	}

	tests := []struct {
		name       string
		mutate     func(form *v1alpha1.AnalysisForm)
		shouldFail bool
	}{
		{
			name:   "validation ok",
			mutate: func(form *v1alpha1.AnalysisForm) {},
		},
		{
			name:   "validation ok -- nested object path",
			mutate: func(form *v1alpha1.AnalysisForm) { form.VideoURL = "gs://bucket/videos/2026/run.mp4" },
		},
		{
			name:   "validation ok -- negative efficiency gain",
			mutate: func(form *v1alpha1.AnalysisForm) { form.EfficiencyGainPct = -50 },
		},
		{
			name:       "validation ko -- missing video url",
			mutate:     func(form *v1alpha1.AnalysisForm) { form.VideoURL = "" },
			shouldFail: true,
		},
		{
			name:       "validation ko -- not a gcs uri",
			mutate:     func(form *v1alpha1.AnalysisForm) { form.VideoURL = "https://example.com/video.mp4" },
			shouldFail: true,
		},
		{
			name:       "validation ko -- bucket without object",
			mutate:     func(form *v1alpha1.AnalysisForm) { form.VideoURL = "gs://bucket" },
			shouldFail: true,
		},
		{
			name:       "validation ko -- uppercase bucket name",
			mutate:     func(form *v1alpha1.AnalysisForm) { form.VideoURL = "gs://Bucket/video.mp4" },
			shouldFail: true,
		},
		{
			name:       "validation ko -- zero human cost",
			mutate:     func(form *v1alpha1.AnalysisForm) { form.HumanCostPerMin = 0 },
			shouldFail: true,
		},
		{
			name:       "validation ko -- negative human cost",
			mutate:     func(form *v1alpha1.AnalysisForm) { form.HumanCostPerMin = -1 },
			shouldFail: true,
		},
		{
			name:       "validation ko -- zero depreciation years",
			mutate:     func(form *v1alpha1.AnalysisForm) { form.DepreciationYears = 0 },
			shouldFail: true,
		},
		{
			name:       "validation ko -- hours per week above a full week",
			mutate:     func(form *v1alpha1.AnalysisForm) { form.HoursPerWeek = 169 },
			shouldFail: true,
		},
		{
			name:       "validation ko -- efficiency gain below -100",
			mutate:     func(form *v1alpha1.AnalysisForm) { form.EfficiencyGainPct = -101 },
			shouldFail: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			v := NewValidator()
			v.Register(NewAnalysisValidationRules()...)

			form := validForm()
			test.mutate(&form)

			err := v.Struct(form)
			if test.shouldFail && err == nil {
				t.Errorf("expected validation to fail")
			}
			if !test.shouldFail && err != nil {
				t.Errorf("expected validation to pass, got %v", err)
			}
		})
	}
}
