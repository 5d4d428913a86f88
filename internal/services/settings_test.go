package services

import (
	"errors"
	"testing"

	"github.com/ascent-tracker/ascent/internal/models"
)

func TestValidateSettings(t *testing.T) {
	t.Parallel()

	valid := DefaultGoals()

	tests := []struct {
		name       string
		mutate     func(*Goals)
		focusHabit string
		wantErr    error
	}{
		{name: "defaults pass", mutate: func(*Goals) {}, focusHabit: HabitWorkout},
		{name: "empty focus is allowed", mutate: func(*Goals) {}, focusHabit: ""},
		{name: "zero goal rejected", mutate: func(g *Goals) { g.Water = 0 }, wantErr: ErrNonPositiveGoal},
		{name: "negative goal rejected", mutate: func(g *Goals) { g.Sleep = -1 }, wantErr: ErrNonPositiveGoal},
		{name: "absurd steps goal rejected", mutate: func(g *Goals) { g.Steps = 1e7 }, wantErr: ErrGoalOutOfRange},
		{name: "unknown focus habit rejected", mutate: func(*Goals) {}, focusHabit: "meditation", wantErr: ErrUnknownFocusHabit},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			goals := valid
			test.mutate(&goals)
			err := ValidateSettings(goals, test.focusHabit)
			if test.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if test.wantErr != nil && !errors.Is(err, test.wantErr) {
				t.Fatalf("error = %v, want %v", err, test.wantErr)
			}
		})
	}
}

func TestApplySettings(t *testing.T) {
	t.Parallel()

	user := models.User{}
	goals := Goals{Steps: 12000, Water: 2, Sleep: 8, Pages: 30, Pushups: 60, Squats: 70}

	ApplySettings(&user, goals, HabitHealthyEating)

	if GoalsForUser(&user) != goals {
		t.Fatalf("goals not applied: %#v", GoalsForUser(&user))
	}
	if user.FocusHabit != HabitHealthyEating {
		t.Fatalf("focus habit = %q, want %q", user.FocusHabit, HabitHealthyEating)
	}
}

func TestGoalsForNilUserFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	if GoalsForUser(nil) != DefaultGoals() {
		t.Fatalf("nil user goals = %#v, want defaults", GoalsForUser(nil))
	}
}
