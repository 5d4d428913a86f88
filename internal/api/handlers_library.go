package api

import (
	"strconv"
	"strings"
	"time"

	"github.com/ascent-tracker/ascent/internal/models"
	"github.com/ascent-tracker/ascent/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type libraryPayload struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status string `json:"status"`
	Rating int    `json:"rating"`
	Tags   string `json:"tags"`
	Notes  string `json:"notes"`
}

func validLibraryType(value string) bool {
	for _, known := range models.LibraryTypes() {
		if known == value {
			return true
		}
	}
	return false
}

func validLibraryStatus(value string) bool {
	for _, known := range models.LibraryStatuses() {
		if known == value {
			return true
		}
	}
	return false
}

func (handler *Handler) ListLibrary(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	items, err := handler.repos.Library.ListByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch library")
	}
	return c.JSON(items)
}

func (handler *Handler) CreateLibraryItem(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := libraryPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if strings.TrimSpace(payload.Title) == "" {
		return apiError(c, fiber.StatusBadRequest, "title is required")
	}
	if !validLibraryType(payload.Type) {
		return apiError(c, fiber.StatusBadRequest, "unknown library type")
	}
	if payload.Status == "" {
		payload.Status = models.LibraryStatusWishlist
	}
	if !validLibraryStatus(payload.Status) {
		return apiError(c, fiber.StatusBadRequest, "unknown status")
	}
	if payload.Rating < 0 || payload.Rating > 5 {
		return apiError(c, fiber.StatusBadRequest, "rating must be 0-5")
	}

	item := models.LibraryItem{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Type:      payload.Type,
		Title:     strings.TrimSpace(payload.Title),
		Status:    payload.Status,
		Rating:    payload.Rating,
		Tags:      payload.Tags,
		Notes:     payload.Notes,
		CreatedAt: time.Now().In(handler.location),
		UpdatedAt: time.Now().In(handler.location),
	}
	if err := handler.repos.Library.Create(&item); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create item")
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (handler *Handler) UpdateLibraryItem(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	item, exists, err := handler.repos.Library.FindByUserAndID(user.ID, c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch item")
	}
	if !exists {
		return apiError(c, fiber.StatusNotFound, "item not found")
	}

	payload := libraryPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if strings.TrimSpace(payload.Title) == "" {
		return apiError(c, fiber.StatusBadRequest, "title is required")
	}
	if !validLibraryType(payload.Type) {
		return apiError(c, fiber.StatusBadRequest, "unknown library type")
	}
	if !validLibraryStatus(payload.Status) {
		return apiError(c, fiber.StatusBadRequest, "unknown status")
	}
	if payload.Rating < 0 || payload.Rating > 5 {
		return apiError(c, fiber.StatusBadRequest, "rating must be 0-5")
	}

	item.Type = payload.Type
	item.Title = strings.TrimSpace(payload.Title)
	item.Status = payload.Status
	item.Rating = payload.Rating
	item.Tags = payload.Tags
	item.Notes = payload.Notes
	item.UpdatedAt = time.Now().In(handler.location)
	if err := handler.repos.Library.Save(&item); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update item")
	}
	return c.JSON(item)
}

func (handler *Handler) DeleteLibraryItem(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := handler.repos.Library.DeleteByUserAndID(user.ID, c.Params("id")); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete item")
	}
	return c.JSON(fiber.Map{"ok": true})
}

type readingSessionPayload struct {
	Day             string  `json:"date"`
	ItemID          *string `json:"itemId"`
	Pages           float64 `json:"pages"`
	DurationMinutes int     `json:"durationMinutes"`
}

func (handler *Handler) ListReadingSessions(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	sessions, err := handler.repos.Library.ListAllReadingSessions(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch sessions")
	}
	return c.JSON(sessions)
}

func (handler *Handler) CreateReadingSession(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := readingSessionPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	day, valid := parseDayParam(payload.Day, handler.today())
	if !valid {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}
	if payload.Pages < 0 || payload.DurationMinutes < 0 {
		return apiError(c, fiber.StatusBadRequest, "values must be non-negative")
	}

	session := models.ReadingSession{
		UserID:          user.ID,
		Day:             day,
		ItemID:          payload.ItemID,
		Pages:           payload.Pages,
		DurationMinutes: payload.DurationMinutes,
		CreatedAt:       time.Now().In(handler.location),
	}
	if err := handler.repos.Library.CreateReadingSession(&session); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

func (handler *Handler) DeleteReadingSession(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	sessionID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid session id")
	}
	if err := handler.repos.Library.DeleteReadingSession(user.ID, uint(sessionID)); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete session")
	}
	return c.JSON(fiber.Map{"ok": true})
}

type mediaSessionPayload struct {
	Day             string `json:"date"`
	ItemID          string `json:"itemId"`
	DurationMinutes int    `json:"durationMinutes"`
}

func (handler *Handler) ListMediaSessions(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	from, valid := parseDayParam(c.Query("from"), services.AddDays(handler.today(), -89))
	if !valid {
		return apiError(c, fiber.StatusBadRequest, "invalid from date")
	}
	to, valid := parseDayParam(c.Query("to"), handler.today())
	if !valid {
		return apiError(c, fiber.StatusBadRequest, "invalid to date")
	}

	sessions, err := handler.repos.Library.ListMediaSessions(user.ID, from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch sessions")
	}
	return c.JSON(sessions)
}

func (handler *Handler) CreateMediaSession(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := mediaSessionPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	day, valid := parseDayParam(payload.Day, handler.today())
	if !valid {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}
	if payload.DurationMinutes < 0 {
		return apiError(c, fiber.StatusBadRequest, "duration must be non-negative")
	}

	_, exists, err := handler.repos.Library.FindByUserAndID(user.ID, payload.ItemID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch item")
	}
	if !exists {
		return apiError(c, fiber.StatusBadRequest, "unknown library item")
	}

	session := models.MediaSession{
		UserID:          user.ID,
		Day:             day,
		ItemID:          payload.ItemID,
		DurationMinutes: payload.DurationMinutes,
		CreatedAt:       time.Now().In(handler.location),
	}
	if err := handler.repos.Library.CreateMediaSession(&session); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

func (handler *Handler) DeleteMediaSession(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	sessionID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid session id")
	}
	if err := handler.repos.Library.DeleteMediaSession(user.ID, uint(sessionID)); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete session")
	}
	return c.JSON(fiber.Map{"ok": true})
}
