package costing

import (
	"fmt"
	"math"
	"sort"
)

const (
	weeksPerYear   = 52.0
	minutesPerHour = 60.0

	// DefaultTaskMinutes is the assumed duration of a single process task.
	DefaultTaskMinutes = 1.0

	// BaselineOptionID labels the all-human projection.
	BaselineOptionID = "no_automation"
)

// Engine runs the cost-benefit calculation. A single Engine is safe to share:
// it holds assumptions only, never per-run state.
type Engine struct {
	taskMinutes float64
}

// EngineOption is a functional option for configuring an Engine.
type EngineOption func(*Engine)

// WithTaskMinutes overrides the assumed duration of a single task.
// Non-positive values are ignored and the default is kept.
func WithTaskMinutes(minutes float64) EngineOption {
	return func(e *Engine) {
		if minutes > 0 {
			e.taskMinutes = minutes
		}
	}
}

// NewEngine creates an Engine with default assumptions.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{taskMinutes: DefaultTaskMinutes}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EffectiveCost computes the robot cost per human-equivalent minute of work:
//
//	((purchase * (1+endEffectorPct)) / (years*52*hoursPerWeek*60) + opexPerMin) / (1 + gainPct/100)
//
// It returns NaN when the amortization window or the work rate is not
// positive. Callers must treat NaN as "incomparable", never as zero.
func (e *Engine) EffectiveCost(r Robot, cfg FinancialConfig) float64 {
	lifetimeMinutes := float64(cfg.DepreciationYears) * weeksPerYear * cfg.HoursPerWeek * minutesPerHour
	workRate := 1 + cfg.EfficiencyGainPct/100
	if lifetimeMinutes <= 0 || workRate <= 0 {
		return math.NaN()
	}

	capexPerMin := r.PurchasePrice * (1 + r.EndEffectorPct) / lifetimeMinutes
	return (capexPerMin + r.OpexPerMin) / workRate
}

// CheaperThanHuman reports whether the effective cost undercuts human labor.
// Ties resolve to false (the human is not replaced), as does a NaN cost.
func CheaperThanHuman(effectiveCost, humanCost float64) bool {
	return effectiveCost < humanCost
}

// AggregateOptionCost builds one comparison row per distinct robot used by the
// option, in order of first appearance. Robots not used by any assignment are
// excluded. A robot name absent from the reference table yields an
// ErrMissingRobotMetadata.
func (e *Engine) AggregateOptionCost(opt AutomationOption, robots map[string]Robot, cfg FinancialConfig) ([]RobotCostComparison, error) {
	rows := make([]RobotCostComparison, 0, len(opt.Assignments))
	seen := make(map[string]bool)

	for _, assignment := range opt.Assignments {
		if seen[assignment.RobotName] {
			continue
		}
		seen[assignment.RobotName] = true

		robot, ok := robots[assignment.RobotName]
		if !ok {
			return nil, NewErrMissingRobotMetadata(opt.OptionID, assignment.RobotName)
		}

		effective := e.EffectiveCost(robot, cfg)
		rows = append(rows, RobotCostComparison{
			RobotName:                robot.Name,
			EffectiveCostPerHumanMin: effective,
			HumanCostPerMin:          cfg.HumanCostPerMin,
			IsCheaper:                CheaperThanHuman(effective, cfg.HumanCostPerMin),
		})
	}
	return rows, nil
}

// cyclesPerYear derives how many full process cycles fit into a year of
// operation. A cycle covers every human task once, each taking taskMinutes.
func (e *Engine) cyclesPerYear(humanTaskCount int, cfg FinancialConfig) float64 {
	cycleMinutes := float64(humanTaskCount) * e.taskMinutes
	if cycleMinutes <= 0 {
		return 0
	}
	return minutesPerHour / cycleMinutes * cfg.HoursPerWeek * weeksPerYear
}

// ProjectAnnualCosts computes the cumulative cost trajectory of an option.
// Year 0 carries the one-time capital expenditure of every distinct robot in
// the option; each following year adds the annual operating cost: robot
// effective cost for automated tasks plus human cost for the tasks the option
// leaves manual. The sequence is cumulative and has DepreciationYears+1 entries.
func (e *Engine) ProjectAnnualCosts(opt AutomationOption, cfg FinancialConfig, tasks []Task, robots map[string]Robot) (AnnualProjection, error) {
	taskToRobot := make(map[int]string, len(opt.Assignments))
	capex := 0.0
	seen := make(map[string]bool)
	for _, assignment := range opt.Assignments {
		taskToRobot[assignment.TaskID] = assignment.RobotName
		if seen[assignment.RobotName] {
			continue
		}
		seen[assignment.RobotName] = true
		robot, ok := robots[assignment.RobotName]
		if !ok {
			return AnnualProjection{}, NewErrMissingRobotMetadata(opt.OptionID, assignment.RobotName)
		}
		capex += robot.PurchasePrice * (1 + robot.EndEffectorPct)
	}

	humanTasks := humanTasksOf(tasks)
	taskMinutesPerYear := e.taskMinutes * e.cyclesPerYear(len(humanTasks), cfg)

	annualOperating := 0.0
	for _, task := range humanTasks {
		robotName, automated := taskToRobot[task.ID]
		if !automated {
			annualOperating += cfg.HumanCostPerMin * taskMinutesPerYear
			continue
		}
		// Presence was checked while summing capex.
		annualOperating += e.EffectiveCost(robots[robotName], cfg) * taskMinutesPerYear
	}

	return cumulative(opt.OptionID, capex, annualOperating, cfg.DepreciationYears), nil
}

// BaselineProjection computes the all-human trajectory: no capital cost, every
// year adds the human cost of the full yearly workload.
func (e *Engine) BaselineProjection(cfg FinancialConfig, tasks []Task) AnnualProjection {
	humanTasks := humanTasksOf(tasks)
	taskMinutesPerYear := e.taskMinutes * e.cyclesPerYear(len(humanTasks), cfg)
	annual := cfg.HumanCostPerMin * taskMinutesPerYear * float64(len(humanTasks))
	return cumulative(BaselineOptionID, 0, annual, cfg.DepreciationYears)
}

// Recommend selects the option with the lowest final-year cumulative cost.
// Ties break by option id in ascending lexical order, so the result is
// invariant under reordering of the input. Options whose projection is
// incomparable (NaN) are excluded; when none rank, no option is recommended.
func (e *Engine) Recommend(projections []AnnualProjection, baseline AnnualProjection) Recommendation {
	ranked := make([]AnnualProjection, 0, len(projections))
	for _, p := range projections {
		if math.IsNaN(p.FinalCost()) {
			continue
		}
		ranked = append(ranked, p)
	}
	if len(ranked) == 0 {
		return Recommendation{
			Justification: "No automation option could be ranked: every option has an incomparable cost projection.",
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].FinalCost() != ranked[j].FinalCost() {
			return ranked[i].FinalCost() < ranked[j].FinalCost()
		}
		return ranked[i].OptionID < ranked[j].OptionID
	})

	winner := ranked[0]
	years := len(winner.CumulativeCostsByYear) - 1

	justification := fmt.Sprintf("Option %s has the lowest cumulative cost over %d years: $%.2f.",
		winner.OptionID, years, winner.FinalCost())

	baselineCost := baseline.FinalCost()
	switch {
	case winner.FinalCost() < baselineCost:
		justification += fmt.Sprintf(" It saves $%.2f versus the all-human baseline ($%.2f).",
			baselineCost-winner.FinalCost(), baselineCost)
	case winner.FinalCost() > baselineCost:
		justification += fmt.Sprintf(" It costs $%.2f more than the all-human baseline ($%.2f); automation is not cost-effective on financial grounds alone.",
			winner.FinalCost()-baselineCost, baselineCost)
	default:
		justification += fmt.Sprintf(" It matches the all-human baseline ($%.2f).", baselineCost)
	}

	if len(ranked) > 1 {
		runnerUp := ranked[1]
		justification += fmt.Sprintf(" The runner-up, option %s, would cost $%.2f.",
			runnerUp.OptionID, runnerUp.FinalCost())
	}

	return Recommendation{
		RecommendedOptionID: winner.OptionID,
		Justification:       justification,
	}
}

// Analyze runs the full pipeline over already-resolved in-memory data:
// validation, per-option cost comparison, projections, baseline and
// recommendation. It is stateless and idempotent for identical inputs.
func (e *Engine) Analyze(cfg FinancialConfig, tasks []Task, options []AutomationOption, robots map[string]Robot) (*Analysis, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(options) == 0 {
		return nil, NewErrEmptyOptionSet()
	}

	costBenefit := make([]OptionCostComparison, 0, len(options))
	projections := make([]AnnualProjection, 0, len(options))
	for _, opt := range options {
		rows, err := e.AggregateOptionCost(opt, robots, cfg)
		if err != nil {
			return nil, err
		}
		costBenefit = append(costBenefit, OptionCostComparison{OptionID: opt.OptionID, Robots: rows})

		projection, err := e.ProjectAnnualCosts(opt, cfg, tasks, robots)
		if err != nil {
			return nil, err
		}
		projections = append(projections, projection)
	}

	baseline := e.BaselineProjection(cfg, tasks)

	return &Analysis{
		Tasks:          tasks,
		Options:        options,
		CostBenefit:    costBenefit,
		Projections:    projections,
		Baseline:       baseline,
		Recommendation: e.Recommend(projections, baseline),
	}, nil
}

func humanTasksOf(tasks []Task) []Task {
	humans := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Actor == ActorHuman {
			humans = append(humans, t)
		}
	}
	return humans
}

func cumulative(optionID string, capex, annual float64, years int) AnnualProjection {
	costs := make([]float64, years+1)
	costs[0] = capex
	for year := 1; year <= years; year++ {
		costs[year] = costs[year-1] + annual
	}
	return AnnualProjection{OptionID: optionID, CumulativeCostsByYear: costs}
}
