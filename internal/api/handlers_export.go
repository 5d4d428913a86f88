package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/ascent-tracker/ascent/internal/services"
	"github.com/gofiber/fiber/v2"
)

// ExportJSON returns the whole account as one JSON document.
func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	days, err := handler.repos.DailyLogs.ListByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}
	notes, err := handler.repos.Notes.ListByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}
	cards, err := handler.repos.Notes.ListCardsByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}
	library, err := handler.repos.Library.ListByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}
	readingSessions, err := handler.repos.Library.ListAllReadingSessions(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}
	mediaSessions, err := handler.repos.Library.ListMediaSessions(user.ID, "0000-01-01", "9999-12-31")
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}
	transactions, err := handler.repos.Transactions.ListByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}
	reviews, err := handler.repos.Reviews.ListByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	export := services.ExportData{
		ExportedAt:      time.Now().In(handler.location).Format(time.RFC3339),
		Goals:           services.GoalsForUser(user),
		FocusHabit:      user.FocusHabit,
		Days:            days,
		Notes:           notes,
		Cards:           cards,
		Library:         library,
		ReadingSessions: readingSessions,
		MediaSessions:   mediaSessions,
		Transactions:    transactions,
		Reviews:         reviews,
	}

	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=ascent-export-%s.json", handler.today()))
	return c.JSON(export)
}

// ExportCSV streams the daily logs as CSV, one row per day.
func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	days, err := handler.repos.DailyLogs.ListByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	buffer := &bytes.Buffer{}
	writer := csv.NewWriter(buffer)
	if err := writer.Write(services.DailyLogCSVHeader()); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}
	for _, entry := range days {
		if err := writer.Write(services.DailyLogCSVRow(entry)); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to build export")
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=ascent-days-%s.csv", handler.today()))
	return c.Send(buffer.Bytes())
}
