package services

import "github.com/ascent-tracker/ascent/internal/models"

// Goals are the numeric daily targets the metric score components are
// measured against.
type Goals struct {
	Steps   float64 `json:"steps"`
	Water   float64 `json:"water"`
	Sleep   float64 `json:"sleep"`
	Pages   float64 `json:"pages"`
	Pushups float64 `json:"pushups"`
	Squats  float64 `json:"squats"`
}

func DefaultGoals() Goals {
	return Goals{
		Steps:   models.DefaultGoalSteps,
		Water:   models.DefaultGoalWater,
		Sleep:   models.DefaultGoalSleep,
		Pages:   models.DefaultGoalPages,
		Pushups: models.DefaultGoalPushups,
		Squats:  models.DefaultGoalSquats,
	}
}

func GoalsForUser(user *models.User) Goals {
	if user == nil {
		return DefaultGoals()
	}
	return Goals{
		Steps:   user.GoalSteps,
		Water:   user.GoalWater,
		Sleep:   user.GoalSleep,
		Pages:   user.GoalPages,
		Pushups: user.GoalPushups,
		Squats:  user.GoalSquats,
	}
}

// effectiveGoal substitutes the documented default for a missing or
// non-positive target so metric percentages never divide by zero.
func effectiveGoal(value float64, fallback float64) float64 {
	if value > 0 {
		return value
	}
	return fallback
}
