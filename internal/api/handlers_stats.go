package api

import (
	"github.com/ascent-tracker/ascent/internal/models"
	"github.com/ascent-tracker/ascent/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetRangeStats(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	today := handler.today()
	from, valid := parseDayParam(c.Query("from"), services.AddDays(today, -6))
	if !valid {
		return apiError(c, fiber.StatusBadRequest, "invalid from date")
	}
	to, valid := parseDayParam(c.Query("to"), today)
	if !valid {
		return apiError(c, fiber.StatusBadRequest, "invalid to date")
	}
	if from > to {
		return apiError(c, fiber.StatusBadRequest, "from must not be after to")
	}

	stats, err := handler.statsService.RangeStatsFor(user, from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to compute stats")
	}
	return c.JSON(stats)
}

func (handler *Handler) GetScoreSummary(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	today := handler.today()
	from, valid := parseDayParam(c.Query("from"), services.AddDays(today, -29))
	if !valid {
		return apiError(c, fiber.StatusBadRequest, "invalid from date")
	}
	to, valid := parseDayParam(c.Query("to"), today)
	if !valid {
		return apiError(c, fiber.StatusBadRequest, "invalid to date")
	}

	inputs, err := handler.statsService.RangeInputsFor(user, from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to compute summary")
	}
	return c.JSON(services.BuildScoreSummary(inputs, from, to))
}

func (handler *Handler) GetScoreHeatmap(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	totalDays := c.QueryInt("days", 91)
	if totalDays < 1 || totalDays > 371 {
		return apiError(c, fiber.StatusBadRequest, "days must be 1-371")
	}
	end, valid := parseDayParam(c.Query("to"), handler.today())
	if !valid {
		return apiError(c, fiber.StatusBadRequest, "invalid to date")
	}

	cells, err := handler.statsService.HeatmapFor(user, end, totalDays)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to compute heatmap")
	}
	return c.JSON(cells)
}

func (handler *Handler) GetYearToDate(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	stats, err := handler.statsService.YearToDateFor(user, handler.today())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to compute year stats")
	}
	return c.JSON(stats)
}

func (handler *Handler) GetMediaMinutes(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	today := handler.today()
	from, valid := parseDayParam(c.Query("from"), services.AddDays(today, -29))
	if !valid {
		return apiError(c, fiber.StatusBadRequest, "invalid from date")
	}
	to, valid := parseDayParam(c.Query("to"), today)
	if !valid {
		return apiError(c, fiber.StatusBadRequest, "invalid to date")
	}

	minutes, err := handler.statsService.MediaMinutesFor(user, from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to compute media minutes")
	}
	return c.JSON(minutes)
}

// reviewPeriodBounds resolves the start and end days of the review period
// containing the given day.
func reviewPeriodBounds(periodType string, day string) (string, string) {
	if periodType == models.ReviewPeriodMonthly {
		start := services.MonthStart(day)
		return start, services.AddDays(services.MonthStart(services.AddDays(start, 32)), -1)
	}
	start := services.WeekStart(day)
	return start, services.AddDays(start, 6)
}

// GetPeriodicReview returns the generated recap, reflection prompts and any
// saved reflection for the week or month containing the requested day.
func (handler *Handler) GetPeriodicReview(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	periodType := c.Query("period", models.ReviewPeriodWeekly)
	if periodType != models.ReviewPeriodWeekly && periodType != models.ReviewPeriodMonthly {
		return apiError(c, fiber.StatusBadRequest, "period must be weekly or monthly")
	}
	day, valid := parseDayParam(c.Query("date"), handler.today())
	if !valid {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	start, end := reviewPeriodBounds(periodType, day)
	stats, err := handler.statsService.RangeStatsFor(user, start, end)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to compute review")
	}

	saved, exists, err := handler.repos.Reviews.Find(user.ID, periodType, start)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch review")
	}
	reflection := ""
	if exists {
		reflection = saved.Reflection
	}

	return c.JSON(fiber.Map{
		"periodType":  periodType,
		"periodStart": start,
		"periodEnd":   end,
		"stats":       stats,
		"summary":     services.BuildReviewSummary(periodType, start, stats, user.FocusHabit),
		"prompts":     services.BuildReviewPrompts(periodType, stats, user.FocusHabit),
		"reflection":  reflection,
	})
}
