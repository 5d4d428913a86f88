package services

import (
	"errors"

	"github.com/ascent-tracker/ascent/internal/models"
)

var (
	ErrNonPositiveGoal    = errors.New("goals must be positive")
	ErrUnknownFocusHabit  = errors.New("unknown focus habit")
	ErrGoalOutOfRange     = errors.New("goal out of range")
	maxReasonableGoalStep = 200000.0
)

// ValidateSettings checks a goals-and-focus update before it is applied.
// Every target must be positive; the focus habit may be empty (no focus) or
// one of the known habit keys.
func ValidateSettings(goals Goals, focusHabit string) error {
	targets := []float64{goals.Steps, goals.Water, goals.Sleep, goals.Pages, goals.Pushups, goals.Squats}
	for _, target := range targets {
		if target <= 0 {
			return ErrNonPositiveGoal
		}
	}
	if goals.Steps > maxReasonableGoalStep {
		return ErrGoalOutOfRange
	}
	if focusHabit != "" && !IsKnownHabitKey(focusHabit) {
		return ErrUnknownFocusHabit
	}
	return nil
}

func ApplySettings(user *models.User, goals Goals, focusHabit string) {
	user.GoalSteps = goals.Steps
	user.GoalWater = goals.Water
	user.GoalSleep = goals.Sleep
	user.GoalPages = goals.Pages
	user.GoalPushups = goals.Pushups
	user.GoalSquats = goals.Squats
	user.FocusHabit = focusHabit
}
