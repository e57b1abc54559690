package costing

import (
	"errors"
	"math"
	"testing"
)

var testRobots = map[string]Robot{
	"atlas": {Name: "atlas", PurchasePrice: 50000, EndEffectorPct: 0.1, OpexPerMin: 0.05},
	"digit": {Name: "digit", PurchasePrice: 200000, EndEffectorPct: 0.25, OpexPerMin: 0.10},
}

func validConfig() FinancialConfig {
	return FinancialConfig{
		HumanCostPerMin:   0.5,
		DepreciationYears: 5,
		HoursPerWeek:      40,
		EfficiencyGainPct: 0,
	}
}

func testTasks() []Task {
	return []Task{
		{ID: 1, Action: "pick up component", Actor: ActorHuman},
		{ID: 2, Action: "place component in fixture", Actor: ActorHuman},
		{ID: 3, Action: "press stamps the part", Actor: ActorMachine},
		{ID: 4, Action: "inspect welded seam", Actor: ActorHuman},
	}
}

func TestEffectiveCost_KnownExample(t *testing.T) {
	t.Parallel()
	e := NewEngine()

	// 0.05 + (50000*1.1)/(5*52*40*60) = 0.05 + 0.0881... ≈ 0.1381 $/min
	got := e.EffectiveCost(testRobots["atlas"], validConfig())

	want := 0.05 + 55000.0/(5*52*40*60)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("expected effective cost %f, got %f", want, got)
	}
	if math.Abs(got-0.1381) > 0.0005 {
		t.Errorf("expected effective cost ≈ 0.1381, got %f", got)
	}
}

func TestEffectiveCost_MonotonicInEfficiencyGain(t *testing.T) {
	t.Parallel()
	e := NewEngine()

	previous := math.Inf(1)
	for _, gain := range []float64{-50, -10, 0, 10, 25, 50, 100, 400} {
		cfg := validConfig()
		cfg.EfficiencyGainPct = gain
		cost := e.EffectiveCost(testRobots["atlas"], cfg)
		if cost >= previous {
			t.Errorf("effective cost not decreasing at gain %.0f%%: %f >= %f", gain, cost, previous)
		}
		previous = cost
	}
}

func TestEffectiveCost_SentinelOnNonPositiveWorkRate(t *testing.T) {
	t.Parallel()
	e := NewEngine()

	cfg := validConfig()
	cfg.EfficiencyGainPct = -100

	if got := e.EffectiveCost(testRobots["atlas"], cfg); !math.IsNaN(got) {
		t.Errorf("expected NaN for -100%% efficiency gain, got %f", got)
	}
}

func TestEffectiveCost_SentinelOnZeroLifetime(t *testing.T) {
	t.Parallel()
	e := NewEngine()

	cfg := validConfig()
	cfg.HoursPerWeek = 0

	if got := e.EffectiveCost(testRobots["atlas"], cfg); !math.IsNaN(got) {
		t.Errorf("expected NaN for zero hours per week, got %f", got)
	}
}

func TestCheaperThanHuman(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name      string
		effective float64
		human     float64
		want      bool
	}{
		{"cheaper", 0.08, 0.5, true},
		{"more expensive", 0.9, 0.5, false},
		{"tie resolves to human", 0.5, 0.5, false},
		{"incomparable NaN", math.NaN(), 0.5, false},
	}
	for _, tc := range cases {
		if got := CheaperThanHuman(tc.effective, tc.human); got != tc.want {
			t.Errorf("%s: expected %t, got %t", tc.name, tc.want, got)
		}
	}
}

func TestAggregateOptionCost_OneRowPerDistinctRobot(t *testing.T) {
	t.Parallel()
	e := NewEngine()

	opt := AutomationOption{
		OptionID: "Option_1",
		Assignments: []Assignment{
			{TaskID: 1, RobotName: "atlas"},
			{TaskID: 2, RobotName: "atlas"},
			{TaskID: 4, RobotName: "digit"},
		},
	}

	rows, err := e.AggregateOptionCost(opt, testRobots, validConfig())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows for 2 distinct robots, got %d", len(rows))
	}
	if rows[0].RobotName != "atlas" || rows[1].RobotName != "digit" {
		t.Errorf("expected rows in first-use order [atlas digit], got [%s %s]", rows[0].RobotName, rows[1].RobotName)
	}
	if !rows[0].IsCheaper {
		t.Error("expected atlas to be cheaper than human at 0.5 $/min")
	}
}

func TestAggregateOptionCost_MissingRobot(t *testing.T) {
	t.Parallel()
	e := NewEngine()

	opt := AutomationOption{
		OptionID:    "Option_1",
		Assignments: []Assignment{{TaskID: 1, RobotName: "unknown-bot"}},
	}

	_, err := e.AggregateOptionCost(opt, testRobots, validConfig())
	var missing *ErrMissingRobotMetadata
	if !errors.As(err, &missing) {
		t.Fatalf("expected ErrMissingRobotMetadata, got: %v", err)
	}
	if missing.RobotName != "unknown-bot" {
		t.Errorf("expected robot name unknown-bot in error, got %s", missing.RobotName)
	}
}

func TestProjectAnnualCosts_Shape(t *testing.T) {
	t.Parallel()
	e := NewEngine()
	cfg := validConfig()

	opt := AutomationOption{
		OptionID:    "Option_1",
		Assignments: []Assignment{{TaskID: 1, RobotName: "atlas"}},
	}

	projection, err := e.ProjectAnnualCosts(opt, cfg, testTasks(), testRobots)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(projection.CumulativeCostsByYear) != cfg.DepreciationYears+1 {
		t.Fatalf("expected %d entries, got %d", cfg.DepreciationYears+1, len(projection.CumulativeCostsByYear))
	}

	// Year 0 is capex only: 50000 * 1.1.
	if got := projection.CumulativeCostsByYear[0]; math.Abs(got-55000) > 1e-9 {
		t.Errorf("expected year 0 capex 55000, got %f", got)
	}
}

func TestProjectAnnualCosts_NonDecreasingFromYearOne(t *testing.T) {
	t.Parallel()
	e := NewEngine()

	configs := []FinancialConfig{
		validConfig(),
		{HumanCostPerMin: 1.2, DepreciationYears: 10, HoursPerWeek: 80, EfficiencyGainPct: 35},
		{HumanCostPerMin: 0.01, DepreciationYears: 1, HoursPerWeek: 1, EfficiencyGainPct: -50},
	}
	opt := AutomationOption{
		OptionID: "Option_1",
		Assignments: []Assignment{
			{TaskID: 1, RobotName: "atlas"},
			{TaskID: 4, RobotName: "digit"},
		},
	}

	for _, cfg := range configs {
		projection, err := e.ProjectAnnualCosts(opt, cfg, testTasks(), testRobots)
		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		for year := 1; year < len(projection.CumulativeCostsByYear); year++ {
			if projection.CumulativeCostsByYear[year] < projection.CumulativeCostsByYear[year-1] {
				t.Errorf("cumulative cost decreased at year %d: %f < %f",
					year, projection.CumulativeCostsByYear[year], projection.CumulativeCostsByYear[year-1])
			}
		}
	}
}

func TestProjectAnnualCosts_ZeroAssignmentsEqualsBaseline(t *testing.T) {
	t.Parallel()
	e := NewEngine()
	cfg := validConfig()
	tasks := testTasks()

	projection, err := e.ProjectAnnualCosts(AutomationOption{OptionID: "Option_Empty"}, cfg, tasks, testRobots)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	baseline := e.BaselineProjection(cfg, tasks)

	for year := range projection.CumulativeCostsByYear {
		if math.Abs(projection.CumulativeCostsByYear[year]-baseline.CumulativeCostsByYear[year]) > 1e-6 {
			t.Errorf("year %d: empty option cost %f differs from baseline %f",
				year, projection.CumulativeCostsByYear[year], baseline.CumulativeCostsByYear[year])
		}
	}
}

func TestBaselineProjection_FullWorkingYear(t *testing.T) {
	t.Parallel()
	e := NewEngine()
	cfg := validConfig()

	baseline := e.BaselineProjection(cfg, testTasks())

	if baseline.CumulativeCostsByYear[0] != 0 {
		t.Errorf("expected baseline year 0 = 0, got %f", baseline.CumulativeCostsByYear[0])
	}
	// The cycle model fills every working minute: 40 h * 52 weeks * 60 min.
	wantAnnual := cfg.HumanCostPerMin * cfg.HoursPerWeek * 52 * 60
	if got := baseline.CumulativeCostsByYear[1]; math.Abs(got-wantAnnual) > 1e-6 {
		t.Errorf("expected baseline annual cost %f, got %f", wantAnnual, got)
	}
}

func TestRecommend_LowestFinalCost(t *testing.T) {
	t.Parallel()
	e := NewEngine()

	projections := []AnnualProjection{
		{OptionID: "Option_B", CumulativeCostsByYear: []float64{100, 200, 300}},
		{OptionID: "Option_A", CumulativeCostsByYear: []float64{500, 600, 700}},
	}
	baseline := AnnualProjection{OptionID: BaselineOptionID, CumulativeCostsByYear: []float64{0, 400, 800}}

	rec := e.Recommend(projections, baseline)
	if rec.RecommendedOptionID != "Option_B" {
		t.Errorf("expected Option_B, got %s", rec.RecommendedOptionID)
	}
	if rec.Justification == "" {
		t.Error("expected non-empty justification")
	}
}

func TestRecommend_TieBreaksLexically(t *testing.T) {
	t.Parallel()
	e := NewEngine()

	projections := []AnnualProjection{
		{OptionID: "Option_C", CumulativeCostsByYear: []float64{0, 100}},
		{OptionID: "Option_A", CumulativeCostsByYear: []float64{0, 100}},
		{OptionID: "Option_B", CumulativeCostsByYear: []float64{0, 100}},
	}
	baseline := AnnualProjection{OptionID: BaselineOptionID, CumulativeCostsByYear: []float64{0, 100}}

	rec := e.Recommend(projections, baseline)
	if rec.RecommendedOptionID != "Option_A" {
		t.Errorf("expected tie to break to Option_A, got %s", rec.RecommendedOptionID)
	}
}

func TestRecommend_InvariantUnderReordering(t *testing.T) {
	t.Parallel()
	e := NewEngine()

	forward := []AnnualProjection{
		{OptionID: "Option_A", CumulativeCostsByYear: []float64{10, 20}},
		{OptionID: "Option_B", CumulativeCostsByYear: []float64{5, 15}},
		{OptionID: "Option_C", CumulativeCostsByYear: []float64{8, 30}},
	}
	reversed := []AnnualProjection{forward[2], forward[1], forward[0]}
	baseline := AnnualProjection{OptionID: BaselineOptionID, CumulativeCostsByYear: []float64{0, 25}}

	first := e.Recommend(forward, baseline)
	second := e.Recommend(reversed, baseline)
	if first.RecommendedOptionID != second.RecommendedOptionID {
		t.Errorf("recommendation depends on input order: %s vs %s",
			first.RecommendedOptionID, second.RecommendedOptionID)
	}
}

func TestRecommend_AllIncomparable(t *testing.T) {
	t.Parallel()
	e := NewEngine()

	projections := []AnnualProjection{
		{OptionID: "Option_A", CumulativeCostsByYear: []float64{math.NaN(), math.NaN()}},
	}
	baseline := AnnualProjection{OptionID: BaselineOptionID, CumulativeCostsByYear: []float64{0, 100}}

	rec := e.Recommend(projections, baseline)
	if rec.RecommendedOptionID != "" {
		t.Errorf("expected no recommendation, got %s", rec.RecommendedOptionID)
	}
	if rec.Justification == "" {
		t.Error("expected justification explaining the missing recommendation")
	}
}

func TestAnalyze_EmptyOptionSet(t *testing.T) {
	t.Parallel()
	e := NewEngine()

	_, err := e.Analyze(validConfig(), testTasks(), nil, testRobots)
	var empty *ErrEmptyOptionSet
	if !errors.As(err, &empty) {
		t.Fatalf("expected ErrEmptyOptionSet, got: %v", err)
	}
}

func TestAnalyze_InvalidConfig(t *testing.T) {
	t.Parallel()
	e := NewEngine()

	cases := []FinancialConfig{
		{HumanCostPerMin: 0, DepreciationYears: 5, HoursPerWeek: 40},
		{HumanCostPerMin: 0.5, DepreciationYears: 0, HoursPerWeek: 40},
		{HumanCostPerMin: 0.5, DepreciationYears: 5, HoursPerWeek: 0},
		{HumanCostPerMin: 0.5, DepreciationYears: 5, HoursPerWeek: 169},
		{HumanCostPerMin: 0.5, DepreciationYears: 5, HoursPerWeek: 40, EfficiencyGainPct: -101},
	}
	for i, cfg := range cases {
		_, err := e.Analyze(cfg, testTasks(), []AutomationOption{{OptionID: "Option_1"}}, testRobots)
		var invalid *ErrInvalidFinancialConfig
		if !errors.As(err, &invalid) {
			t.Errorf("case %d: expected ErrInvalidFinancialConfig, got: %v", i, err)
		}
	}
}

func TestAnalyze_MissingRobotSurfacesError(t *testing.T) {
	t.Parallel()
	e := NewEngine()

	options := []AutomationOption{{
		OptionID:    "Option_1",
		Assignments: []Assignment{{TaskID: 1, RobotName: "ghost"}},
	}}

	_, err := e.Analyze(validConfig(), testTasks(), options, testRobots)
	var missing *ErrMissingRobotMetadata
	if !errors.As(err, &missing) {
		t.Fatalf("expected ErrMissingRobotMetadata, got: %v", err)
	}
}

func TestAnalyze_FullRun(t *testing.T) {
	t.Parallel()
	e := NewEngine()
	cfg := validConfig()

	options := []AutomationOption{
		{
			OptionID: "Option_1",
			Assignments: []Assignment{
				{TaskID: 1, RobotName: "atlas"},
				{TaskID: 2, RobotName: "atlas"},
			},
			Unassigned: []UnassignedTask{{TaskID: 4, Reason: "requires fine dexterity"}},
		},
		{
			OptionID:    "Option_2",
			Assignments: []Assignment{{TaskID: 1, RobotName: "digit"}},
		},
	}

	analysis, err := e.Analyze(cfg, testTasks(), options, testRobots)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if len(analysis.CostBenefit) != 2 {
		t.Errorf("expected 2 cost comparisons, got %d", len(analysis.CostBenefit))
	}
	if len(analysis.Projections) != 2 {
		t.Errorf("expected 2 projections, got %d", len(analysis.Projections))
	}
	if analysis.Baseline.OptionID != BaselineOptionID {
		t.Errorf("expected baseline projection, got %s", analysis.Baseline.OptionID)
	}
	// atlas is far cheaper than a human minute, so automating two of three
	// human tasks must beat automating one task with the expensive digit.
	if analysis.Recommendation.RecommendedOptionID != "Option_1" {
		t.Errorf("expected Option_1 recommended, got %s", analysis.Recommendation.RecommendedOptionID)
	}
}
