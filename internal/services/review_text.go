package services

import (
	"fmt"
	"math"
	"strings"
)

// BuildReviewSummary composes the one-paragraph automatic recap shown at the
// top of a weekly or monthly review.
func BuildReviewSummary(periodType string, periodStart string, stats RangeStats, focusHabit string) string {
	periodLabel := "Week"
	daysTotal := 7
	if periodType == "monthly" {
		periodLabel = "Month"
		daysTotal = 30
	}
	loggedPct := int(math.Round(float64(stats.LoggedDays) / float64(daysTotal) * 100))

	focusSummary := ""
	if focusHabit != "" && stats.FocusHabitPercent != nil {
		focusSummary = fmt.Sprintf(" Focus habit hit %d%%.", *stats.FocusHabitPercent)
	}

	netLabel := fmt.Sprintf("Saved €%.0f.", stats.Net)
	if stats.Net < 0 {
		netLabel = fmt.Sprintf("Overspent €%.0f.", math.Abs(stats.Net))
	}

	return fmt.Sprintf(
		"%s of %s: %d/%d days logged (%d%%). Avg score %d. Avg sleep %sh, steps %s. Workouts %d, runs %d, pages %.0f, push-ups %.0f, squats %.0f. %s%s",
		periodLabel, periodStart, stats.LoggedDays, daysTotal, loggedPct, stats.AvgScore,
		formatOptional(stats.AvgSleep, 1), formatOptional(stats.AvgSteps, 0),
		stats.WorkoutDays, stats.RunDays, stats.TotalPages, stats.TotalPushups, stats.TotalSquats,
		netLabel, focusSummary,
	)
}

// BuildReviewPrompts picks up to three reflection questions keyed off the
// weakest parts of the period.
func BuildReviewPrompts(periodType string, stats RangeStats, focusHabit string) []string {
	prompts := make([]string, 0, 3)

	if stats.AvgScore < 60 {
		prompts = append(prompts, "What was the biggest blocker this period, and how do you remove it?")
	}
	if stats.FocusHabitPercent != nil && *stats.FocusHabitPercent < 50 {
		prompts = append(prompts, fmt.Sprintf("Why did you miss your focus habit (%s) this period?", focusHabit))
	}
	if stats.Net < 0 {
		prompts = append(prompts, "Which spending category surprised you, and what rule will you set?")
	}
	loggedThreshold := 5
	if periodType == "monthly" {
		loggedThreshold = 20
	}
	if stats.LoggedDays < loggedThreshold {
		prompts = append(prompts, "What would make logging easier next period?")
	}
	if len(prompts) < 3 {
		prompts = append(prompts, "What is the single highest-leverage change for next period?")
	}
	if len(prompts) > 3 {
		prompts = prompts[:3]
	}
	return prompts
}

func formatOptional(value *float64, decimals int) string {
	if value == nil {
		return "n/a"
	}
	return strings.TrimSpace(fmt.Sprintf("%.*f", decimals, *value))
}
