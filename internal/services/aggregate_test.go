package services

import "testing"

func TestBuildRangeStatsSparseAverages(t *testing.T) {
	t.Parallel()

	inputs := RangeInputs{
		Metrics: map[string]MetricValues{
			"2026-03-02": {Water: floatPtr(1.0)},
			"2026-03-04": {Water: floatPtr(2.0)},
		},
		Habits: map[string]HabitFlags{},
		Goals:  DefaultGoals(),
	}

	stats := BuildRangeStats(inputs, "2026-03-01", "2026-03-07")

	if stats.AvgWater == nil {
		t.Fatalf("avg water is nil, want 1.5")
	}
	// Two logged water days averaged over 2, not over the 7-day range.
	if *stats.AvgWater != 1.5 {
		t.Fatalf("avg water = %v, want 1.5", *stats.AvgWater)
	}
	if stats.AvgSleep != nil {
		t.Fatalf("avg sleep = %v, want nil when never logged", *stats.AvgSleep)
	}
	if stats.LoggedDays != 2 {
		t.Fatalf("logged days = %d, want 2", stats.LoggedDays)
	}
	if stats.TotalDays != 7 {
		t.Fatalf("total days = %d, want 7", stats.TotalDays)
	}
}

func TestBuildRangeStatsJournalOnlyDayIsNotLogged(t *testing.T) {
	t.Parallel()

	inputs := RangeInputs{
		Metrics:  map[string]MetricValues{},
		Habits:   map[string]HabitFlags{},
		Journals: map[string]JournalEntry{"2026-03-02": {Text: "long enough to matter but still only a journal"}},
		Goals:    DefaultGoals(),
	}

	stats := BuildRangeStats(inputs, "2026-03-01", "2026-03-07")

	if stats.LoggedDays != 0 {
		t.Fatalf("journal-only day counted as logged: %d", stats.LoggedDays)
	}
}

func TestBuildRangeStatsSessionPagesJoinTotals(t *testing.T) {
	t.Parallel()

	inputs := RangeInputs{
		Metrics: map[string]MetricValues{
			"2026-03-02": {Pages: floatPtr(10)},
		},
		Habits:       map[string]HabitFlags{},
		SessionPages: map[string]float64{"2026-03-02": 15, "2026-03-03": 20},
		Goals:        DefaultGoals(),
	}

	stats := BuildRangeStats(inputs, "2026-03-01", "2026-03-07")

	if stats.TotalPages != 45 {
		t.Fatalf("total pages = %v, want 45 (10 logged + 35 from sessions)", stats.TotalPages)
	}
}

func TestBuildRangeStatsFocusHabitUsesCalendarDays(t *testing.T) {
	t.Parallel()

	habits := map[string]HabitFlags{
		"2026-03-01": {Workout: true},
		"2026-03-02": {Workout: true},
	}
	inputs := RangeInputs{
		Metrics:    map[string]MetricValues{},
		Habits:     habits,
		Goals:      DefaultGoals(),
		FocusHabit: HabitWorkout,
	}

	stats := BuildRangeStats(inputs, "2026-03-01", "2026-03-04")
	if stats.FocusHabitPercent == nil {
		t.Fatalf("focus habit percent is nil")
	}
	// 2 hits over 4 calendar days.
	if *stats.FocusHabitPercent != 50 {
		t.Fatalf("focus habit percent = %d, want 50", *stats.FocusHabitPercent)
	}

	// Consistency divides by logged days instead: 2 hits over 2 logged days.
	consistency := BuildHabitConsistency(habits, HabitWorkout, "2026-03-01", "2026-03-04")
	if consistency.Workout != 100 {
		t.Fatalf("workout consistency = %d, want 100", consistency.Workout)
	}
	if consistency.FocusPercent == nil || *consistency.FocusPercent != 50 {
		t.Fatalf("focus percent = %v, want 50", consistency.FocusPercent)
	}
}

func TestBuildRangeStatsMoney(t *testing.T) {
	t.Parallel()

	inputs := RangeInputs{
		Metrics: map[string]MetricValues{},
		Habits:  map[string]HabitFlags{},
		Goals:   DefaultGoals(),
		Transactions: []TransactionLine{
			{Day: "2026-03-02", Type: "income", Amount: 1200},
			{Day: "2026-03-03", Type: "expense", Amount: 300},
			{Day: "2026-02-01", Type: "expense", Amount: 9999},
		},
	}

	stats := BuildRangeStats(inputs, "2026-03-01", "2026-03-07")

	if stats.Income != 1200 || stats.Expenses != 300 || stats.Net != 900 {
		t.Fatalf("money rollup = income %v expenses %v net %v, want 1200/300/900",
			stats.Income, stats.Expenses, stats.Net)
	}
}

func TestBuildScoreSummaryMergesSessionPages(t *testing.T) {
	t.Parallel()

	goals := DefaultGoals()
	inputs := RangeInputs{
		Metrics:      map[string]MetricValues{},
		Habits:       map[string]HabitFlags{"2026-03-02": {NoFap: true}},
		SessionPages: map[string]float64{"2026-03-02": 20},
		Goals:        goals,
	}

	withSessions := BuildScoreSummary(inputs, "2026-03-01", "2026-03-07")

	inputs.SessionPages = map[string]float64{}
	withoutSessions := BuildScoreSummary(inputs, "2026-03-01", "2026-03-07")

	if withSessions.Best <= withoutSessions.Best {
		t.Fatalf("session pages did not raise the best score: %d vs %d",
			withSessions.Best, withoutSessions.Best)
	}
	if withSessions.BestDay != "2026-03-02" {
		t.Fatalf("best day = %q, want 2026-03-02", withSessions.BestDay)
	}
}

func TestBuildScoreSummarySkipsZeroScoreDays(t *testing.T) {
	t.Parallel()

	inputs := RangeInputs{
		Metrics: map[string]MetricValues{},
		Habits: map[string]HabitFlags{
			"2026-03-02": {NoFap: true, Workout: true, HealthyEating: true},
		},
		Goals: DefaultGoals(),
	}

	summary := BuildScoreSummary(inputs, "2026-03-01", "2026-03-07")

	// Six empty days must not drag the average down.
	if summary.Average != summary.Best {
		t.Fatalf("average %d != best %d for a single scored day", summary.Average, summary.Best)
	}
	if summary.Best == 0 {
		t.Fatalf("best score is 0 for a day with three habits done")
	}
}

func TestBuildScoreHeatmapLevels(t *testing.T) {
	t.Parallel()

	goals := DefaultGoals()
	inputs := RangeInputs{
		Metrics: map[string]MetricValues{
			// All metrics at goal plus all habits: score 100, level 4.
			"2026-03-05": fullDayMetrics(goals),
			// One habit only: low score, level 1.
			"2026-03-03": {},
		},
		Habits: map[string]HabitFlags{
			"2026-03-05": {NoFap: true, Workout: true, HealthyEating: true},
			"2026-03-03": {NoFap: true},
		},
		Goals: goals,
	}

	cells := BuildScoreHeatmap(inputs, "2026-03-05", 5)

	if len(cells) != 5 {
		t.Fatalf("heatmap has %d cells, want 5", len(cells))
	}
	if cells[0].Day != "2026-03-01" || cells[4].Day != "2026-03-05" {
		t.Fatalf("heatmap range is %q..%q, want 2026-03-01..2026-03-05", cells[0].Day, cells[4].Day)
	}
	if cells[4].Level != 4 {
		t.Fatalf("perfect day level = %d, want 4", cells[4].Level)
	}
	if !cells[2].Logged || cells[2].Level != 1 {
		t.Fatalf("low-score day = %#v, want logged level 1", cells[2])
	}
	if cells[0].Logged || cells[0].Level != 0 {
		t.Fatalf("empty day = %#v, want unlogged level 0", cells[0])
	}
}

func TestBuildYearToDate(t *testing.T) {
	t.Parallel()

	metrics := map[string]MetricValues{
		"2026-01-05": {Pushups: floatPtr(50), RunDistance: floatPtr(5)},
		"2026-01-09": {Pushups: floatPtr(30)},
		"2025-12-31": {Pushups: floatPtr(999)},
	}

	stats := BuildYearToDate(metrics, "2026-01-10")

	if stats.DaysElapsed != 10 {
		t.Fatalf("days elapsed = %d, want 10", stats.DaysElapsed)
	}
	if stats.PushupsTotal != 80 {
		t.Fatalf("pushups total = %v, want 80 (previous year excluded)", stats.PushupsTotal)
	}
	if stats.PushupsPerDay != 8 {
		t.Fatalf("pushups per day = %v, want 8", stats.PushupsPerDay)
	}
	if stats.RunPerDay != 0.5 {
		t.Fatalf("run distance per day = %v, want 0.5", stats.RunPerDay)
	}
}

func TestPresentTreatsZeroAsAbsent(t *testing.T) {
	t.Parallel()

	if present(nil) {
		t.Fatalf("nil counted as present")
	}
	if present(floatPtr(0)) {
		t.Fatalf("explicit zero counted as present for averaging")
	}
	if !present(floatPtr(0.5)) {
		t.Fatalf("nonzero value not counted as present")
	}
}
