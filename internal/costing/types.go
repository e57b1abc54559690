package costing

// ActorType identifies who performs a task in the observed process.
type ActorType string

const (
	ActorHuman   ActorType = "human"
	ActorMachine ActorType = "machine"
)

// Task is one step of the observed process, produced by the perception step.
type Task struct {
	ID     int
	Action string
	Actor  ActorType
}

// Robot holds the purchasing and operating figures for one robot model.
// The set of robots is reference data, read-only during an analysis.
type Robot struct {
	Name           string
	PurchasePrice  float64
	EndEffectorPct float64
	OpexPerMin     float64
}

// FinancialConfig carries the user-supplied financial parameters of one
// analysis run. It is immutable for the duration of the run.
type FinancialConfig struct {
	HumanCostPerMin   float64
	DepreciationYears int
	HoursPerWeek      float64
	EfficiencyGainPct float64
}

// Validate checks the config against the documented ranges.
func (c FinancialConfig) Validate() error {
	if c.HumanCostPerMin <= 0 {
		return NewErrInvalidFinancialConfig("human cost per minute must be positive, got %f", c.HumanCostPerMin)
	}
	if c.DepreciationYears < 1 {
		return NewErrInvalidFinancialConfig("depreciation years must be at least 1, got %d", c.DepreciationYears)
	}
	if c.HoursPerWeek <= 0 || c.HoursPerWeek > 168 {
		return NewErrInvalidFinancialConfig("hours per week must be in (0, 168], got %f", c.HoursPerWeek)
	}
	if c.EfficiencyGainPct < -100 {
		return NewErrInvalidFinancialConfig("efficiency gain must be at least -100%%, got %f", c.EfficiencyGainPct)
	}
	return nil
}

// Assignment maps one task to the robot that would perform it.
type Assignment struct {
	TaskID    int
	RobotName string
	Reason    string
}

// UnassignedTask is a human task an option deliberately leaves manual.
type UnassignedTask struct {
	TaskID int
	Reason string
}

// AutomationOption is one candidate automation plan produced by the planning step.
type AutomationOption struct {
	OptionID    string
	Summary     string
	Assignments []Assignment
	Unassigned  []UnassignedTask
}

// RobotCostComparison is one row of the per-option cost table.
// EffectiveCostPerHumanMin is NaN when the cost is incomparable.
type RobotCostComparison struct {
	RobotName                string
	EffectiveCostPerHumanMin float64
	HumanCostPerMin          float64
	IsCheaper                bool
}

// OptionCostComparison groups the comparison rows of a single option.
type OptionCostComparison struct {
	OptionID string
	Robots   []RobotCostComparison
}

// AnnualProjection is the cumulative cost trajectory of one option.
// CumulativeCostsByYear has DepreciationYears+1 entries; index 0 is the
// purchase year and carries the capital expenditure only.
type AnnualProjection struct {
	OptionID              string
	CumulativeCostsByYear []float64
}

// FinalCost returns the last cumulative value of the projection.
func (p AnnualProjection) FinalCost() float64 {
	if len(p.CumulativeCostsByYear) == 0 {
		return 0
	}
	return p.CumulativeCostsByYear[len(p.CumulativeCostsByYear)-1]
}

// Recommendation names the winning option. RecommendedOptionID is empty when
// no option could be ranked.
type Recommendation struct {
	RecommendedOptionID string
	Justification       string
}

// Analysis is the complete result of one engine run.
type Analysis struct {
	Tasks          []Task
	Options        []AutomationOption
	CostBenefit    []OptionCostComparison
	Projections    []AnnualProjection
	Baseline       AnnualProjection
	Recommendation Recommendation
}
