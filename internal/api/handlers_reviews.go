package api

import (
	"time"

	"github.com/ascent-tracker/ascent/internal/models"
	"github.com/ascent-tracker/ascent/internal/services"
	"github.com/gofiber/fiber/v2"
)

type reflectionPayload struct {
	PeriodType  string `json:"periodType"`
	PeriodStart string `json:"periodStart"`
	Reflection  string `json:"reflection"`
}

func (handler *Handler) ListPeriodicReviews(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	reviews, err := handler.repos.Reviews.ListByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch reviews")
	}
	return c.JSON(reviews)
}

// SavePeriodicReview upserts the written reflection for one period. The
// period start is normalized to the start of its week or month so repeated
// saves for any day in the period hit the same row.
func (handler *Handler) SavePeriodicReview(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := reflectionPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if payload.PeriodType != models.ReviewPeriodWeekly && payload.PeriodType != models.ReviewPeriodMonthly {
		return apiError(c, fiber.StatusBadRequest, "period must be weekly or monthly")
	}
	if !services.IsValidDay(payload.PeriodStart) {
		return apiError(c, fiber.StatusBadRequest, "invalid period start")
	}

	start, _ := reviewPeriodBounds(payload.PeriodType, payload.PeriodStart)
	now := time.Now().In(handler.location)

	review, exists, err := handler.repos.Reviews.Find(user.ID, payload.PeriodType, start)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch review")
	}
	if !exists {
		review = models.PeriodicReview{
			UserID:      user.ID,
			PeriodType:  payload.PeriodType,
			PeriodStart: start,
			CreatedAt:   now,
		}
	}
	review.Reflection = payload.Reflection
	review.UpdatedAt = now
	if err := handler.repos.Reviews.Save(&review); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save review")
	}
	return c.JSON(review)
}
