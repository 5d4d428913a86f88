package services

import (
	"strings"

	"github.com/ascent-tracker/ascent/internal/models"
)

const (
	HabitNoFap         = "nofap"
	HabitWorkout       = "workout"
	HabitRun           = "run"
	HabitKeptWord      = "keptWord"
	HabitHardThing     = "hardThing"
	HabitHealthyEating = "healthyEating"
)

func KnownHabitKeys() []string {
	return []string{
		HabitNoFap,
		HabitWorkout,
		HabitRun,
		HabitKeptWord,
		HabitHardThing,
		HabitHealthyEating,
	}
}

func IsKnownHabitKey(key string) bool {
	for _, known := range KnownHabitKeys() {
		if known == key {
			return true
		}
	}
	return false
}

// MetricValues are one day's numeric measurements. nil means "not logged",
// which is different from an explicit zero.
type MetricValues struct {
	Steps       *float64 `json:"steps,omitempty"`
	Water       *float64 `json:"water,omitempty"`
	Sleep       *float64 `json:"sleep,omitempty"`
	Pages       *float64 `json:"pages,omitempty"`
	Pushups     *float64 `json:"pushups,omitempty"`
	Squats      *float64 `json:"squats,omitempty"`
	RunDistance *float64 `json:"runDistance,omitempty"`
}

type HabitFlags struct {
	NoFap         bool `json:"nofap,omitempty"`
	Workout       bool `json:"workout,omitempty"`
	Run           bool `json:"run,omitempty"`
	KeptWord      bool `json:"keptWord,omitempty"`
	HardThing     bool `json:"hardThing,omitempty"`
	HealthyEating bool `json:"healthyEating,omitempty"`
}

func (flags HabitFlags) Has(key string) bool {
	switch key {
	case HabitNoFap:
		return flags.NoFap
	case HabitWorkout:
		return flags.Workout
	case HabitRun:
		return flags.Run
	case HabitKeptWord:
		return flags.KeptWord
	case HabitHardThing:
		return flags.HardThing
	case HabitHealthyEating:
		return flags.HealthyEating
	}
	return false
}

func (flags HabitFlags) Any() bool {
	return flags.NoFap || flags.Workout || flags.Run || flags.KeptWord || flags.HardThing || flags.HealthyEating
}

// HabitFlagsFromMap builds flags from a loose key map; unknown keys are
// ignored.
func HabitFlagsFromMap(values map[string]bool) HabitFlags {
	return HabitFlags{
		NoFap:         values[HabitNoFap],
		Workout:       values[HabitWorkout],
		Run:           values[HabitRun],
		KeptWord:      values[HabitKeptWord],
		HardThing:     values[HabitHardThing],
		HealthyEating: values[HabitHealthyEating],
	}
}

// JournalEntry carries the free-text fields for one day. Important absorbs
// the legacy "avoided" field on import.
type JournalEntry struct {
	Text      string `json:"text,omitempty"`
	TIL       string `json:"til,omitempty"`
	Important string `json:"important,omitempty"`
}

func (entry JournalEntry) Empty() bool {
	return strings.TrimSpace(entry.Text) == "" &&
		strings.TrimSpace(entry.TIL) == "" &&
		strings.TrimSpace(entry.Important) == ""
}

func (values MetricValues) Any() bool {
	return values.Steps != nil || values.Water != nil || values.Sleep != nil ||
		values.Pages != nil || values.Pushups != nil || values.Squats != nil ||
		values.RunDistance != nil
}

// SplitDailyLog converts a stored row into the three plain inputs the
// computation core consumes.
func SplitDailyLog(entry models.DailyLog) (MetricValues, HabitFlags, JournalEntry) {
	metrics := MetricValues{
		Steps:       entry.Steps,
		Water:       entry.Water,
		Sleep:       entry.Sleep,
		Pages:       entry.Pages,
		Pushups:     entry.Pushups,
		Squats:      entry.Squats,
		RunDistance: entry.RunDistance,
	}
	habits := HabitFlags{
		NoFap:         entry.NoFap,
		Workout:       entry.Workout,
		Run:           entry.Run,
		KeptWord:      entry.KeptWord,
		HardThing:     entry.HardThing,
		HealthyEating: entry.HealthyEating,
	}
	journal := JournalEntry{
		Text:      entry.JournalText,
		TIL:       entry.JournalTIL,
		Important: entry.JournalImportant,
	}
	return metrics, habits, journal
}

// DayIsLogged is the rollup rule for "counted as a logged day": a metrics or
// habits entry exists. Journal-only days do not count.
func DayIsLogged(metrics MetricValues, habits HabitFlags) bool {
	return metrics.Any() || habits.Any()
}

// DayHasData reports whether a row holds anything at all worth keeping.
func DayHasData(entry models.DailyLog) bool {
	metrics, habits, journal := SplitDailyLog(entry)
	return metrics.Any() || habits.Any() || !journal.Empty()
}
