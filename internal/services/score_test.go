package services

import (
	"math"
	"reflect"
	"strings"
	"testing"
)

func fullDayMetrics(goals Goals) MetricValues {
	return MetricValues{
		Steps:   floatPtr(goals.Steps),
		Water:   floatPtr(goals.Water),
		Sleep:   floatPtr(goals.Sleep),
		Pages:   floatPtr(goals.Pages),
		Pushups: floatPtr(goals.Pushups),
		Squats:  floatPtr(goals.Squats),
	}
}

func TestComputeDailyScorePerfectDay(t *testing.T) {
	t.Parallel()

	goals := DefaultGoals()
	habits := HabitFlags{NoFap: true, Workout: true, HealthyEating: true}

	result := ComputeDailyScore(fullDayMetrics(goals), habits, goals, JournalEntry{})

	if result.Score != 100 {
		t.Fatalf("perfect day score = %d, want 100", result.Score)
	}
	if result.Grade != GradeS {
		t.Fatalf("perfect day grade = %q, want S", result.Grade)
	}
	if result.MaxScore != 100 {
		t.Fatalf("max score = %d, want 100", result.MaxScore)
	}
}

func TestComputeDailyScoreEmptyDay(t *testing.T) {
	t.Parallel()

	result := ComputeDailyScore(MetricValues{}, HabitFlags{}, DefaultGoals(), JournalEntry{})

	if result.Score != 0 {
		t.Fatalf("empty day score = %d, want 0", result.Score)
	}
	if result.Grade != GradeF {
		t.Fatalf("empty day grade = %q, want F", result.Grade)
	}
	if len(result.Breakdown) != 9 {
		t.Fatalf("breakdown has %d items, want 9", len(result.Breakdown))
	}
}

func TestComputeDailyScoreDeterministic(t *testing.T) {
	t.Parallel()

	goals := DefaultGoals()
	metrics := MetricValues{Steps: floatPtr(7250), Sleep: floatPtr(6.5)}
	habits := HabitFlags{NoFap: true, Run: true}
	journal := JournalEntry{Text: strings.Repeat("x", 240)}

	first := ComputeDailyScore(metrics, habits, goals, journal)
	second := ComputeDailyScore(metrics, habits, goals, journal)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same inputs produced different results: %#v vs %#v", first, second)
	}
}

func TestComputeDailyScoreActivitySlotNeverDoubleCounts(t *testing.T) {
	t.Parallel()

	goals := DefaultGoals()
	workoutOnly := ComputeDailyScore(MetricValues{}, HabitFlags{Workout: true}, goals, JournalEntry{})
	runOnly := ComputeDailyScore(MetricValues{}, HabitFlags{Run: true}, goals, JournalEntry{})
	both := ComputeDailyScore(MetricValues{}, HabitFlags{Workout: true, Run: true}, goals, JournalEntry{})

	if workoutOnly.Score != runOnly.Score || both.Score != workoutOnly.Score {
		t.Fatalf("activity slot scores differ: workout=%d run=%d both=%d",
			workoutOnly.Score, runOnly.Score, both.Score)
	}
}

func TestComputeDailyScoreMetricCapsAtGoal(t *testing.T) {
	t.Parallel()

	goals := DefaultGoals()
	atGoal := ComputeDailyScore(MetricValues{Steps: floatPtr(10000)}, HabitFlags{}, goals, JournalEntry{})
	overGoal := ComputeDailyScore(MetricValues{Steps: floatPtr(25000)}, HabitFlags{}, goals, JournalEntry{})

	if atGoal.Score != overGoal.Score {
		t.Fatalf("overshooting the goal changed the score: %d vs %d", atGoal.Score, overGoal.Score)
	}
}

func TestComputeDailyScoreHalfwayMetric(t *testing.T) {
	t.Parallel()

	result := ComputeDailyScore(MetricValues{Steps: floatPtr(5000)}, HabitFlags{}, DefaultGoals(), JournalEntry{})

	var steps *ScoreComponent
	for index := range result.Breakdown {
		if result.Breakdown[index].Label == "Steps" {
			steps = &result.Breakdown[index]
		}
	}
	if steps == nil {
		t.Fatalf("no Steps component in breakdown: %#v", result.Breakdown)
	}
	if steps.Percent != 50 {
		t.Fatalf("steps percent = %d, want 50", steps.Percent)
	}
}

func TestComputeDailyScoreZeroGoalFallsBackToDefault(t *testing.T) {
	t.Parallel()

	broken := DefaultGoals()
	broken.Steps = 0
	metrics := MetricValues{Steps: floatPtr(5000)}

	withFallback := ComputeDailyScore(metrics, HabitFlags{}, broken, JournalEntry{})
	withDefault := ComputeDailyScore(metrics, HabitFlags{}, DefaultGoals(), JournalEntry{})

	if withFallback.Score != withDefault.Score {
		t.Fatalf("zero goal did not fall back to default: %d vs %d", withFallback.Score, withDefault.Score)
	}
	if math.IsNaN(float64(withFallback.Score)) || math.IsInf(float64(withFallback.Score), 0) {
		t.Fatalf("zero goal produced non-finite score: %d", withFallback.Score)
	}
}

func TestComputeDailyScoreJournalBonus(t *testing.T) {
	t.Parallel()

	goals := DefaultGoals()
	habits := HabitFlags{NoFap: true}

	tests := []struct {
		name      string
		length    int
		wantBonus bool
	}{
		{name: "short text earns nothing", length: 50, wantBonus: false},
		{name: "just over threshold still floors to zero", length: 99, wantBonus: false},
		{name: "one hundred chars earn the first point", length: 150, wantBonus: true},
		{name: "very long text is capped", length: 2000, wantBonus: true},
	}

	base := ComputeDailyScore(MetricValues{}, habits, goals, JournalEntry{})

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			journal := JournalEntry{Text: strings.Repeat("a", test.length)}
			result := ComputeDailyScore(MetricValues{}, habits, goals, journal)

			if test.wantBonus && result.Score <= base.Score {
				t.Fatalf("journal of length %d did not raise score: %d vs base %d",
					test.length, result.Score, base.Score)
			}
			if !test.wantBonus && result.Score != base.Score {
				t.Fatalf("journal of length %d changed score: %d vs base %d",
					test.length, result.Score, base.Score)
			}
		})
	}
}

func TestComputeDailyScoreJournalBonusCountsRunesNotBytes(t *testing.T) {
	t.Parallel()

	goals := DefaultGoals()
	habits := HabitFlags{NoFap: true}
	base := ComputeDailyScore(MetricValues{}, habits, goals, JournalEntry{})

	// 99 two-byte characters are 198 bytes; counted as bytes they would
	// already earn a point, counted as characters they earn nothing.
	multibyte := JournalEntry{Text: strings.Repeat("ä", 99)}
	result := ComputeDailyScore(MetricValues{}, habits, goals, multibyte)
	if result.Score != base.Score {
		t.Fatalf("99 multibyte chars changed score: %d vs base %d", result.Score, base.Score)
	}

	ascii := ComputeDailyScore(MetricValues{}, habits, goals, JournalEntry{Text: strings.Repeat("a", 150)})
	accented := ComputeDailyScore(MetricValues{}, habits, goals, JournalEntry{Text: strings.Repeat("ä", 150)})
	if ascii.Score != accented.Score {
		t.Fatalf("same character count scored differently: ascii %d vs accented %d",
			ascii.Score, accented.Score)
	}
}

func TestComputeDailyScoreJournalBonusIsCapped(t *testing.T) {
	t.Parallel()

	goals := DefaultGoals()
	atCap := ComputeDailyScore(MetricValues{}, HabitFlags{}, goals, JournalEntry{Text: strings.Repeat("a", 500)})
	beyondCap := ComputeDailyScore(MetricValues{}, HabitFlags{}, goals, JournalEntry{Text: strings.Repeat("a", 5000)})

	if atCap.Score != beyondCap.Score {
		t.Fatalf("bonus kept growing past the cap: %d vs %d", atCap.Score, beyondCap.Score)
	}

	var bonus *ScoreComponent
	for index := range atCap.Breakdown {
		if atCap.Breakdown[index].IsBonus {
			bonus = &atCap.Breakdown[index]
		}
	}
	if bonus == nil {
		t.Fatalf("no bonus component in breakdown: %#v", atCap.Breakdown)
	}
	if bonus.Percent != 100 {
		t.Fatalf("capped bonus percent = %d, want 100", bonus.Percent)
	}
}

func TestComputeDailyScoreBonusDoesNotWidenDenominator(t *testing.T) {
	t.Parallel()

	goals := DefaultGoals()
	habits := HabitFlags{NoFap: true, Workout: true, HealthyEating: true}
	journal := JournalEntry{Text: strings.Repeat("a", 700)}

	result := ComputeDailyScore(fullDayMetrics(goals), habits, goals, journal)

	if result.Score <= 100 {
		t.Fatalf("perfect day with max bonus = %d, want above 100", result.Score)
	}
}

func TestGradeForScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score int
		want  string
	}{
		{100, GradeS}, {90, GradeS}, {89, GradeA}, {80, GradeA},
		{79, GradeB}, {70, GradeB}, {69, GradeC}, {60, GradeC},
		{59, GradeD}, {50, GradeD}, {49, GradeF}, {0, GradeF},
	}
	for _, test := range tests {
		if got := GradeForScore(test.score); got != test.want {
			t.Fatalf("GradeForScore(%d) = %q, want %q", test.score, got, test.want)
		}
	}
}
