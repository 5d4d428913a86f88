package api

import (
	"encoding/json"

	"github.com/ascent-tracker/ascent/internal/services"
	"github.com/gofiber/fiber/v2"
)

// Stateless computation endpoints: they score exactly what the request
// carries and read nothing from storage, so clients can preview scores for
// unsaved edits.

type scorePayload struct {
	Metrics services.MetricValues `json:"metrics"`
	Habits  services.HabitFlags   `json:"habits"`
	Goals   *services.Goals       `json:"goals"`
	Journal services.JournalEntry `json:"journal"`
}

func (handler *Handler) ComputeScore(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := scorePayload{}
	if err := json.Unmarshal(c.Body(), &payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	goals := services.GoalsForUser(user)
	if payload.Goals != nil {
		goals = *payload.Goals
	}
	return c.JSON(services.ComputeDailyScore(payload.Metrics, payload.Habits, goals, payload.Journal))
}

type srsPreviewPayload struct {
	Interval int                     `json:"interval"`
	Ease     float64                 `json:"ease"`
	Response services.ReviewResponse `json:"response"`
}

func (handler *Handler) PreviewReview(c *fiber.Ctx) error {
	payload := srsPreviewPayload{}
	if err := json.Unmarshal(c.Body(), &payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if !services.IsKnownResponse(payload.Response) {
		return apiError(c, fiber.StatusBadRequest, "unknown response")
	}

	interval, ease := services.NextReview(payload.Interval, payload.Ease, payload.Response)
	return c.JSON(fiber.Map{"interval": interval, "ease": ease})
}

type streakPayload struct {
	Habits   map[string]map[string]bool `json:"habits"`
	HabitKey string                     `json:"habitKey"`
	Today    string                     `json:"today"`
}

func (handler *Handler) ComputeStreak(c *fiber.Ctx) error {
	payload := streakPayload{}
	if err := json.Unmarshal(c.Body(), &payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if !services.IsKnownHabitKey(payload.HabitKey) {
		return apiError(c, fiber.StatusBadRequest, "unknown habit key")
	}
	today, valid := parseDayParam(payload.Today, handler.today())
	if !valid {
		return apiError(c, fiber.StatusBadRequest, "invalid today date")
	}

	days := make(map[string]services.HabitFlags, len(payload.Habits))
	for day, flags := range payload.Habits {
		days[day] = services.HabitFlagsFromMap(flags)
	}
	return c.JSON(fiber.Map{"streak": services.CurrentStreak(days, payload.HabitKey, today)})
}

type aggregatePayload struct {
	Metrics  map[string]services.MetricValues `json:"metrics"`
	Habits   map[string]map[string]bool       `json:"habits"`
	Journals map[string]services.JournalEntry `json:"journals"`
	Goals    *services.Goals                  `json:"goals"`
	Start    string                           `json:"start"`
	End      string                           `json:"end"`
}

func (handler *Handler) Aggregate(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := aggregatePayload{}
	if err := json.Unmarshal(c.Body(), &payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if !services.IsValidDay(payload.Start) || !services.IsValidDay(payload.End) || payload.End < payload.Start {
		return apiError(c, fiber.StatusBadRequest, "invalid range")
	}

	goals := services.GoalsForUser(user)
	if payload.Goals != nil {
		goals = *payload.Goals
	}

	habits := make(map[string]services.HabitFlags, len(payload.Habits))
	for day, flags := range payload.Habits {
		habits[day] = services.HabitFlagsFromMap(flags)
	}

	inputs := services.RangeInputs{
		Metrics:    payload.Metrics,
		Habits:     habits,
		Journals:   payload.Journals,
		Goals:      goals,
		FocusHabit: user.FocusHabit,
	}
	if inputs.Metrics == nil {
		inputs.Metrics = map[string]services.MetricValues{}
	}
	if inputs.Journals == nil {
		inputs.Journals = map[string]services.JournalEntry{}
	}
	return c.JSON(services.BuildRangeStats(inputs, payload.Start, payload.End))
}
