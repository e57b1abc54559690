// Package v1alpha1 defines the wire types of the automation planner API.
package v1alpha1

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisForm is the request body for creating an analysis.
type AnalysisForm struct {
	VideoURL          string  `json:"video_url" validate:"required,gcs_uri"`
	HumanCostPerMin   float64 `json:"human_cost_per_min" validate:"required,gt=0"`
	DepreciationYears int     `json:"depreciation_years" validate:"required,gte=1"`
	HoursPerWeek      float64 `json:"hours_per_week" validate:"required,gt=0,lte=168"`
	EfficiencyGainPct float64 `json:"efficiency_gain_pct" validate:"gte=-100"`
}

// Task is one observed step of the analyzed process.
type Task struct {
	ID        int    `json:"id"`
	Action    string `json:"action"`
	ActorType string `json:"actor_type"`
}

// Assignment maps a task to a robot inside an automation option.
type Assignment struct {
	TaskID          int    `json:"task_id"`
	RobotName       string `json:"robot_name"`
	ReasonAutomated string `json:"reason_automated,omitempty"`
}

// UnassignedHumanTask is a human task an option keeps manual.
type UnassignedHumanTask struct {
	TaskID             int    `json:"task_id"`
	ReasonNotAutomated string `json:"reason_not_automated,omitempty"`
}

// AutomationOption is one candidate automation plan.
type AutomationOption struct {
	OptionID             string                `json:"option_id"`
	Summary              string                `json:"summary,omitempty"`
	Assignments          []Assignment          `json:"assignments"`
	UnassignedHumanTasks []UnassignedHumanTask `json:"unassigned_human_tasks"`
}

// RobotCostComparison is one row of a per-option cost table. The effective
// cost is null when it is incomparable (invalid amortization inputs).
type RobotCostComparison struct {
	RobotName                string   `json:"robot_name"`
	RobotEffectiveCostPerMin *float64 `json:"robot_effective_cost_per_human_min"`
	HumanCostPerMin          float64  `json:"human_cost_per_min"`
	IsCheaper                bool     `json:"is_cheaper"`
}

// OptionCostComparison groups the comparison rows of one option.
type OptionCostComparison struct {
	OptionID            string                `json:"option_id"`
	RobotCostComparison []RobotCostComparison `json:"robot_cost_comparison"`
}

// AnnualProjection is a cumulative cost trajectory; entry 0 is the purchase year.
type AnnualProjection struct {
	OptionID              string     `json:"option_id"`
	CumulativeCostsByYear []*float64 `json:"cumulative_costs_by_year"`
}

// Recommendation names the winning option; the id is empty when no option ranks.
type Recommendation struct {
	RecommendedOptionID string `json:"recommended_option_id"`
	Justification       string `json:"justification"`
}

// AnalysisResult is the complete output record of one analysis run.
type AnalysisResult struct {
	ProcessTasks        []Task                 `json:"process_tasks"`
	AutomationOptions   []AutomationOption     `json:"automation_options"`
	CostBenefitAnalysis []OptionCostComparison `json:"cost_benefit_analysis"`
	AnnualProjections   []AnnualProjection     `json:"annual_projections"`
	BaselineProjection  AnnualProjection       `json:"baseline_projection"`
	Recommendation      Recommendation         `json:"recommendation"`
}

// Analysis is a stored analysis run.
type Analysis struct {
	ID        uuid.UUID       `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	VideoURL  string          `json:"video_url"`
	Config    AnalysisConfig  `json:"config"`
	Result    *AnalysisResult `json:"result,omitempty"`
}

// AnalysisConfig echoes the financial parameters an analysis ran with.
type AnalysisConfig struct {
	HumanCostPerMin   float64 `json:"human_cost_per_min"`
	DepreciationYears int     `json:"depreciation_years"`
	HoursPerWeek      float64 `json:"hours_per_week"`
	EfficiencyGainPct float64 `json:"efficiency_gain_pct"`
}

// Robot is one catalog entry.
type Robot struct {
	RobotName          string  `json:"robot_name"`
	URDFFilename       string  `json:"urdf_filename"`
	NumLinks           int     `json:"num_links"`
	NumJoints          int     `json:"num_joints"`
	EstimatedReachM    float64 `json:"estimated_reach_m"`
	EstimatedPayloadKg float64 `json:"estimated_payload_kg"`
	PurchasePrice      float64 `json:"purchase_price"`
	OpexPerMin         float64 `json:"op_cost_per_min"`
	EndEffectorPct     float64 `json:"end_effector_cost_percent"`
}

// Error is the structured error payload of the API.
type Error struct {
	Message   string  `json:"message"`
	RequestID *string `json:"request_id,omitempty"`
}

// Info reports build information.
type Info struct {
	GitCommit   string `json:"git_commit"`
	VersionName string `json:"version_name"`
}
