package services

import (
	"math"
	"unicode/utf8"

	"github.com/ascent-tracker/ascent/internal/models"
)

const (
	habitPoints    = 10.0
	activityPoints = 10.0
	metricPoints   = 8.0

	journalBonusThreshold = 50
	journalBonusCap       = 5.0

	GradeS = "S"
	GradeA = "A"
	GradeB = "B"
	GradeC = "C"
	GradeD = "D"
	GradeF = "F"
)

type ScoreComponent struct {
	Label   string   `json:"label"`
	Earned  float64  `json:"earned"`
	Max     float64  `json:"max"`
	Percent int      `json:"percent"`
	Value   *float64 `json:"value,omitempty"`
	Goal    *float64 `json:"goal,omitempty"`
	IsBonus bool     `json:"isBonus,omitempty"`
}

type ScoreResult struct {
	Score     int              `json:"score"`
	MaxScore  int              `json:"maxScore"`
	Percent   int              `json:"percent"`
	Grade     string           `json:"grade"`
	Breakdown []ScoreComponent `json:"breakdown"`
}

type metricComponent struct {
	label    string
	value    *float64
	goal     float64
	fallback float64
}

// ComputeDailyScore turns one day's raw log into a normalized 0-100 score
// with a grade and an itemized breakdown.
//
// Raw points: two standalone habits and the combined activity slot at 10
// each, six goal-capped metrics at 8 each. Doing both a workout and a run on
// the same day fills the single activity slot once. A journal text longer
// than 50 characters adds up to 5 bonus points to the raw score without
// widening the denominator. The raw total is then rescaled to 100, so the
// final score stays comparable if the component set ever changes.
func ComputeDailyScore(metrics MetricValues, habits HabitFlags, goals Goals, journal JournalEntry) ScoreResult {
	rawScore := 0.0
	rawMax := 0.0
	breakdown := make([]ScoreComponent, 0, 10)

	habitComponents := []struct {
		label string
		done  bool
	}{
		{"NoFap", habits.NoFap},
		{"Healthy Eating", habits.HealthyEating},
	}
	for _, habit := range habitComponents {
		rawMax += habitPoints
		item := ScoreComponent{Label: habit.label, Max: habitPoints}
		if habit.done {
			rawScore += habitPoints
			item.Earned = habitPoints
			item.Percent = 100
		}
		breakdown = append(breakdown, item)
	}

	rawMax += activityPoints
	didActivity := habits.Workout || habits.Run
	activityItem := ScoreComponent{Label: "Workout or Run", Max: activityPoints}
	if didActivity {
		rawScore += activityPoints
		activityItem.Earned = activityPoints
		activityItem.Percent = 100
	}
	breakdown = append(breakdown, activityItem)

	metricComponents := []metricComponent{
		{"Steps", metrics.Steps, goals.Steps, models.DefaultGoalSteps},
		{"Water", metrics.Water, goals.Water, models.DefaultGoalWater},
		{"Sleep", metrics.Sleep, goals.Sleep, models.DefaultGoalSleep},
		{"Reading", metrics.Pages, goals.Pages, models.DefaultGoalPages},
		{"Push-ups", metrics.Pushups, goals.Pushups, models.DefaultGoalPushups},
		{"Squats", metrics.Squats, goals.Squats, models.DefaultGoalSquats},
	}
	for _, metric := range metricComponents {
		rawMax += metricPoints
		goal := effectiveGoal(metric.goal, metric.fallback)
		value := 0.0
		if metric.value != nil {
			value = *metric.value
		}
		percent := math.Min(100, value/goal*100)
		earned := roundTo1(percent / 100 * metricPoints)
		rawScore += earned

		valueCopy := value
		goalCopy := goal
		breakdown = append(breakdown, ScoreComponent{
			Label:   metric.label,
			Earned:  earned,
			Max:     metricPoints,
			Percent: int(math.Round(percent)),
			Value:   &valueCopy,
			Goal:    &goalCopy,
		})
	}

	// Character count, not bytes: multibyte journal text must not reach the
	// bonus threshold early.
	journalLength := utf8.RuneCountInString(journal.Text)
	if journalLength > journalBonusThreshold {
		bonus := math.Min(journalBonusCap, math.Floor(float64(journalLength)/100))
		rawScore += bonus
		if bonus > 0 {
			breakdown = append(breakdown, ScoreComponent{
				Label:   "Journal Bonus",
				Earned:  bonus,
				Max:     journalBonusCap,
				Percent: int(math.Round(bonus / journalBonusCap * 100)),
				IsBonus: true,
			})
		}
	}

	safeMax := rawMax
	if safeMax == 0 {
		safeMax = 1
	}
	scale := 100 / safeMax
	scaled := int(math.Round(rawScore * scale))
	for index := range breakdown {
		breakdown[index].Earned = roundTo1(breakdown[index].Earned * scale)
		if breakdown[index].Max != 0 {
			breakdown[index].Max = roundTo1(breakdown[index].Max * scale)
		}
	}

	return ScoreResult{
		Score:     scaled,
		MaxScore:  100,
		Percent:   int(math.Round(rawScore / safeMax * 100)),
		Grade:     GradeForScore(scaled),
		Breakdown: breakdown,
	}
}

// GradeForScore maps a rescaled score onto the fixed S..F ladder.
func GradeForScore(score int) string {
	switch {
	case score >= 90:
		return GradeS
	case score >= 80:
		return GradeA
	case score >= 70:
		return GradeB
	case score >= 60:
		return GradeC
	case score >= 50:
		return GradeD
	}
	return GradeF
}

func roundTo1(value float64) float64 {
	return math.Round(value*10) / 10
}
