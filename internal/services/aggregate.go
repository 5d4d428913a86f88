package services

import "math"

// RangeInputs is the full snapshot the rollups read: date-keyed maps for the
// three daily entities plus the cross-cutting extras that feed specific
// stats (reading-session pages, money lines).
type RangeInputs struct {
	Metrics      map[string]MetricValues
	Habits       map[string]HabitFlags
	Journals     map[string]JournalEntry
	SessionPages map[string]float64
	Transactions []TransactionLine
	Goals        Goals
	FocusHabit   string
}

type TransactionLine struct {
	Day    string
	Type   string
	Amount float64
}

// RangeStats is the weekly/monthly review rollup. Metric averages are
// sparse: they divide by the number of days that metric was logged, not by
// the range length. The focus-habit percent uses calendar days as the
// denominator; habit consistency (BuildHabitConsistency) uses logged days.
type RangeStats struct {
	Start             string   `json:"start"`
	End               string   `json:"end"`
	TotalDays         int      `json:"totalDays"`
	LoggedDays        int      `json:"loggedDays"`
	AvgScore          int      `json:"avgScore"`
	AvgSleep          *float64 `json:"avgSleep"`
	AvgSteps          *float64 `json:"avgSteps"`
	AvgWater          *float64 `json:"avgWater"`
	TotalPages        float64  `json:"totalPages"`
	TotalPushups      float64  `json:"totalPushups"`
	TotalSquats       float64  `json:"totalSquats"`
	TotalRunDistance  float64  `json:"totalRunDistance"`
	WorkoutDays       int      `json:"workoutDays"`
	RunDays           int      `json:"runDays"`
	FocusHabitDays    int      `json:"focusHabitDays"`
	FocusHabitPercent *int     `json:"focusHabitPct"`
	Income            float64  `json:"income"`
	Expenses          float64  `json:"expenses"`
	Net               float64  `json:"net"`
}

func BuildRangeStats(inputs RangeInputs, start string, end string) RangeStats {
	stats := RangeStats{Start: start, End: end, TotalDays: DaysBetween(start, end)}

	var sleepTotal, stepsTotal, waterTotal float64
	var sleepCount, stepsCount, waterCount int
	var scoreTotal, scoreCount int

	for _, day := range EachDay(start, end) {
		metrics := inputs.Metrics[day]
		habits := inputs.Habits[day]

		if DayIsLogged(metrics, habits) {
			stats.LoggedDays++
			score := ComputeDailyScore(metrics, habits, inputs.Goals, inputs.Journals[day])
			scoreTotal += score.Score
			scoreCount++
		}

		if present(metrics.Sleep) {
			sleepTotal += *metrics.Sleep
			sleepCount++
		}
		if present(metrics.Steps) {
			stepsTotal += *metrics.Steps
			stepsCount++
		}
		if present(metrics.Water) {
			waterTotal += *metrics.Water
			waterCount++
		}

		sessionPages := inputs.SessionPages[day]
		if present(metrics.Pages) || sessionPages > 0 {
			stats.TotalPages += deref(metrics.Pages) + sessionPages
		}
		stats.TotalPushups += deref(metrics.Pushups)
		stats.TotalSquats += deref(metrics.Squats)
		stats.TotalRunDistance += deref(metrics.RunDistance)

		if habits.Workout {
			stats.WorkoutDays++
		}
		if habits.Run {
			stats.RunDays++
		}
		if inputs.FocusHabit != "" && habits.Has(inputs.FocusHabit) {
			stats.FocusHabitDays++
		}
	}

	for _, line := range inputs.Transactions {
		if line.Day < start || line.Day > end {
			continue
		}
		if line.Type == "income" {
			stats.Income += line.Amount
		} else {
			stats.Expenses += line.Amount
		}
	}
	stats.Net = stats.Income - stats.Expenses

	if sleepCount > 0 {
		stats.AvgSleep = floatPtr(roundTo1(sleepTotal / float64(sleepCount)))
	}
	if stepsCount > 0 {
		stats.AvgSteps = floatPtr(math.Round(stepsTotal / float64(stepsCount)))
	}
	if waterCount > 0 {
		stats.AvgWater = floatPtr(roundTo1(waterTotal / float64(waterCount)))
	}
	if scoreCount > 0 {
		stats.AvgScore = int(math.Round(float64(scoreTotal) / float64(scoreCount)))
	}
	if inputs.FocusHabit != "" && stats.TotalDays > 0 {
		percent := int(math.Round(float64(stats.FocusHabitDays) / float64(stats.TotalDays) * 100))
		stats.FocusHabitPercent = &percent
	}

	return stats
}

// HabitConsistency reports per-habit hit rates as a percent of logged days.
type HabitConsistency struct {
	LoggedDays    int  `json:"loggedDays"`
	Workout       int  `json:"workout"`
	Run           int  `json:"run"`
	KeptWord      int  `json:"keptWord"`
	HardThing     int  `json:"hardThing"`
	HealthyEating int  `json:"healthyEating"`
	FocusPercent  *int `json:"focusPct"`
}

func BuildHabitConsistency(habits map[string]HabitFlags, focusHabit string, start string, end string) HabitConsistency {
	var workoutDays, runDays, keptWordDays, hardThingDays, healthyDays, focusDays, loggedDays int
	totalDays := DaysBetween(start, end)

	for _, day := range EachDay(start, end) {
		flags, present := habits[day]
		if !present || !flags.Any() {
			continue
		}
		loggedDays++
		if flags.Workout {
			workoutDays++
		}
		if flags.Run {
			runDays++
		}
		if flags.KeptWord {
			keptWordDays++
		}
		if flags.HardThing {
			hardThingDays++
		}
		if flags.HealthyEating {
			healthyDays++
		}
		if focusHabit != "" && flags.Has(focusHabit) {
			focusDays++
		}
	}

	pct := func(count int) int {
		if loggedDays == 0 {
			return 0
		}
		return int(math.Round(float64(count) / float64(loggedDays) * 100))
	}

	consistency := HabitConsistency{
		LoggedDays:    loggedDays,
		Workout:       pct(workoutDays),
		Run:           pct(runDays),
		KeptWord:      pct(keptWordDays),
		HardThing:     pct(hardThingDays),
		HealthyEating: pct(healthyDays),
	}
	if focusHabit != "" && totalDays > 0 {
		focusPercent := int(math.Round(float64(focusDays) / float64(totalDays) * 100))
		consistency.FocusPercent = &focusPercent
	}
	return consistency
}

// ScoreSummary tracks the average and best daily score over a range,
// counting only days that actually scored above zero.
type ScoreSummary struct {
	Average int    `json:"avg"`
	Best    int    `json:"best"`
	BestDay string `json:"bestDate,omitempty"`
}

func BuildScoreSummary(inputs RangeInputs, start string, end string) ScoreSummary {
	summary := ScoreSummary{}
	total := 0
	count := 0

	for _, day := range EachDay(start, end) {
		metrics := inputs.Metrics[day]
		if sessionPages := inputs.SessionPages[day]; sessionPages > 0 {
			merged := deref(metrics.Pages) + sessionPages
			metrics.Pages = &merged
		}
		score := ComputeDailyScore(metrics, inputs.Habits[day], inputs.Goals, JournalEntry{}).Score
		if score <= 0 {
			continue
		}
		total += score
		count++
		if score > summary.Best {
			summary.Best = score
			summary.BestDay = day
		}
	}

	if count > 0 {
		summary.Average = int(math.Round(float64(total) / float64(count)))
	}
	return summary
}

// HeatmapCell is one day of the year-long consistency heatmap. Level buckets
// the score for rendering: 4 from 80, 3 from 60, 2 from 40, 1 for any other
// logged day, 0 for an empty day.
type HeatmapCell struct {
	Day    string `json:"date"`
	Logged bool   `json:"logged"`
	Score  int    `json:"score"`
	Level  int    `json:"level"`
}

func BuildScoreHeatmap(inputs RangeInputs, end string, totalDays int) []HeatmapCell {
	if totalDays <= 0 {
		return []HeatmapCell{}
	}
	start := AddDays(end, -(totalDays - 1))

	cells := make([]HeatmapCell, 0, totalDays)
	for _, day := range EachDay(start, end) {
		metrics := inputs.Metrics[day]
		habits := inputs.Habits[day]
		cell := HeatmapCell{Day: day, Logged: DayIsLogged(metrics, habits)}
		if cell.Logged {
			cell.Score = ComputeDailyScore(metrics, habits, inputs.Goals, JournalEntry{}).Score
			switch {
			case cell.Score >= 80:
				cell.Level = 4
			case cell.Score >= 60:
				cell.Level = 3
			case cell.Score >= 40:
				cell.Level = 2
			default:
				cell.Level = 1
			}
		}
		cells = append(cells, cell)
	}
	return cells
}

// YearToDateStats are the running-total views for push-ups and running,
// averaged over every calendar day elapsed this year, logged or not.
type YearToDateStats struct {
	DaysElapsed      int     `json:"daysElapsed"`
	PushupsTotal     float64 `json:"pushupsTotal"`
	PushupsPerDay    float64 `json:"pushupsPerDay"`
	RunDistanceTotal float64 `json:"runDistanceTotal"`
	RunPerDay        float64 `json:"runPerDay"`
}

func BuildYearToDate(metrics map[string]MetricValues, today string) YearToDateStats {
	yearStart := YearStart(today)
	stats := YearToDateStats{DaysElapsed: DaysBetween(yearStart, today)}

	for day, values := range metrics {
		if day < yearStart || day > today {
			continue
		}
		stats.PushupsTotal += deref(values.Pushups)
		stats.RunDistanceTotal += deref(values.RunDistance)
	}

	if stats.DaysElapsed > 0 {
		stats.PushupsPerDay = roundTo1(stats.PushupsTotal / float64(stats.DaysElapsed))
		stats.RunPerDay = math.Round(stats.RunDistanceTotal/float64(stats.DaysElapsed)*100) / 100
	}
	return stats
}

func present(value *float64) bool {
	return value != nil && *value != 0
}

func deref(value *float64) float64 {
	if value == nil {
		return 0
	}
	return *value
}

func floatPtr(value float64) *float64 {
	return &value
}
