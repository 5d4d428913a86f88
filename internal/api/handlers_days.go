package api

import (
	"encoding/json"

	"github.com/ascent-tracker/ascent/internal/services"
	"github.com/gofiber/fiber/v2"
)

// journalPayload accepts the legacy "avoided" field as an alias for
// "important" so old exports import cleanly.
type journalPayload struct {
	Text      string `json:"text"`
	TIL       string `json:"til"`
	Important string `json:"important"`
	Avoided   string `json:"avoided"`
}

type dayPayload struct {
	Metrics services.MetricValues `json:"metrics"`
	Habits  services.HabitFlags   `json:"habits"`
	Journal journalPayload        `json:"journal"`
}

func (payload dayPayload) toWrite() services.DayWrite {
	important := payload.Journal.Important
	if important == "" {
		important = payload.Journal.Avoided
	}
	return services.DayWrite{
		Metrics: payload.Metrics,
		Habits:  payload.Habits,
		Journal: services.JournalEntry{
			Text:      payload.Journal.Text,
			TIL:       payload.Journal.TIL,
			Important: important,
		},
	}
}

func (handler *Handler) GetDays(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	from, valid := parseDayParam(c.Query("from"), services.AddDays(handler.today(), -29))
	if !valid {
		return apiError(c, fiber.StatusBadRequest, "invalid from date")
	}
	to, valid := parseDayParam(c.Query("to"), handler.today())
	if !valid {
		return apiError(c, fiber.StatusBadRequest, "invalid to date")
	}
	if to < from {
		return apiError(c, fiber.StatusBadRequest, "invalid range")
	}

	logs, err := handler.repos.DailyLogs.ListByUserRange(user.ID, from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch logs")
	}
	return c.JSON(logs)
}

func (handler *Handler) GetDay(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day := c.Params("date")
	entry, exists, err := handler.dayService.Get(user.ID, day)
	if err != nil {
		if err == services.ErrInvalidDay {
			return apiError(c, fiber.StatusBadRequest, "invalid date")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch day")
	}
	if !exists {
		return apiError(c, fiber.StatusNotFound, "day not logged")
	}
	return c.JSON(entry)
}

func (handler *Handler) UpsertDay(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := dayPayload{}
	if err := json.Unmarshal(c.Body(), &payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if !validMetrics(payload.Metrics) {
		return apiError(c, fiber.StatusBadRequest, "metrics must be non-negative")
	}

	entry, err := handler.dayService.Upsert(user.ID, c.Params("date"), payload.toWrite())
	if err != nil {
		if err == services.ErrInvalidDay {
			return apiError(c, fiber.StatusBadRequest, "invalid date")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save day")
	}
	return c.JSON(entry)
}

func (handler *Handler) DeleteDay(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := handler.dayService.Delete(user.ID, c.Params("date")); err != nil {
		if err == services.ErrInvalidDay {
			return apiError(c, fiber.StatusBadRequest, "invalid date")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete day")
	}
	return c.JSON(fiber.Map{"ok": true})
}

// GetDayScore scores one stored day with the user's configured goals.
func (handler *Handler) GetDayScore(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entry, exists, err := handler.dayService.Get(user.ID, c.Params("date"))
	if err != nil {
		if err == services.ErrInvalidDay {
			return apiError(c, fiber.StatusBadRequest, "invalid date")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch day")
	}

	metrics, habits, journal := services.SplitDailyLog(entry)
	if !exists {
		metrics, habits, journal = services.MetricValues{}, services.HabitFlags{}, services.JournalEntry{}
	}
	result := services.ComputeDailyScore(metrics, habits, services.GoalsForUser(user), journal)
	return c.JSON(result)
}
