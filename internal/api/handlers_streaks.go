package api

import (
	"github.com/ascent-tracker/ascent/internal/services"
	"github.com/gofiber/fiber/v2"
)

// GetStreak reports the current and best streak for one habit over the
// user's full log.
func (handler *Handler) GetStreak(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	habitKey := c.Params("habit")
	if !services.IsKnownHabitKey(habitKey) {
		return apiError(c, fiber.StatusBadRequest, "unknown habit key")
	}

	logs, err := handler.repos.DailyLogs.ListByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch logs")
	}

	days := make(map[string]services.HabitFlags, len(logs))
	for _, entry := range logs {
		_, habits, _ := services.SplitDailyLog(entry)
		days[entry.Day] = habits
	}

	return c.JSON(fiber.Map{
		"habit":   habitKey,
		"current": services.CurrentStreak(days, habitKey, handler.today()),
		"best":    services.BestStreak(days, habitKey),
	})
}
