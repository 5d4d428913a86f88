package api

import (
	"github.com/ascent-tracker/ascent/internal/services"
	"github.com/gofiber/fiber/v2"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// parseDayParam validates a YYYY-MM-DD path or query value; an empty value
// falls back to the given default.
func parseDayParam(value string, fallback string) (string, bool) {
	if value == "" {
		return fallback, services.IsValidDay(fallback)
	}
	return value, services.IsValidDay(value)
}

func validMetrics(metrics services.MetricValues) bool {
	values := []*float64{
		metrics.Steps, metrics.Water, metrics.Sleep, metrics.Pages,
		metrics.Pushups, metrics.Squats, metrics.RunDistance,
	}
	for _, value := range values {
		if value != nil && *value < 0 {
			return false
		}
	}
	return true
}
