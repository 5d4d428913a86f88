package api

import (
	"strings"
	"time"

	"github.com/ascent-tracker/ascent/internal/models"
	"github.com/ascent-tracker/ascent/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type notePayload struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	Tags   string `json:"tags"`
	Source string `json:"source"`
}

type noteWithCard struct {
	models.LearningNote
	Card *models.SrsCard `json:"card,omitempty"`
	Due  bool            `json:"due"`
}

func (handler *Handler) ListNotes(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	notes, err := handler.repos.Notes.ListByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch notes")
	}
	cards, err := handler.repos.Notes.ListCardsByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch cards")
	}

	cardByNote := make(map[string]models.SrsCard, len(cards))
	for _, card := range cards {
		cardByNote[card.NoteID] = card
	}

	today := handler.today()
	response := make([]noteWithCard, 0, len(notes))
	for _, note := range notes {
		entry := noteWithCard{LearningNote: note, Due: true}
		if card, reviewed := cardByNote[note.ID]; reviewed {
			cardCopy := card
			entry.Card = &cardCopy
			entry.Due = services.IsDue(card.NextReviewAt, today)
		}
		response = append(response, entry)
	}
	return c.JSON(response)
}

func (handler *Handler) CreateNote(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := notePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if strings.TrimSpace(payload.Title) == "" {
		return apiError(c, fiber.StatusBadRequest, "title is required")
	}

	note := models.LearningNote{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Title:     strings.TrimSpace(payload.Title),
		Body:      payload.Body,
		Tags:      payload.Tags,
		Source:    payload.Source,
		CreatedAt: time.Now().In(handler.location),
		UpdatedAt: time.Now().In(handler.location),
	}
	if err := handler.repos.Notes.Create(&note); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create note")
	}
	return c.Status(fiber.StatusCreated).JSON(note)
}

func (handler *Handler) UpdateNote(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	note, exists, err := handler.repos.Notes.FindByUserAndID(user.ID, c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch note")
	}
	if !exists {
		return apiError(c, fiber.StatusNotFound, "note not found")
	}

	payload := notePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if strings.TrimSpace(payload.Title) == "" {
		return apiError(c, fiber.StatusBadRequest, "title is required")
	}

	note.Title = strings.TrimSpace(payload.Title)
	note.Body = payload.Body
	note.Tags = payload.Tags
	note.Source = payload.Source
	note.UpdatedAt = time.Now().In(handler.location)
	if err := handler.repos.Notes.Save(&note); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update note")
	}
	return c.JSON(note)
}

func (handler *Handler) DeleteNote(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := handler.repos.Notes.DeleteByUserAndID(user.ID, c.Params("id")); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete note")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) DueNotes(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	due, err := handler.srsService.DueNotes(user.ID, handler.today())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch due notes")
	}
	return c.JSON(due)
}

type reviewPayload struct {
	Response services.ReviewResponse `json:"response"`
}

func (handler *Handler) ReviewNote(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := reviewPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	card, err := handler.srsService.Review(user.ID, c.Params("id"), payload.Response, handler.today())
	if err != nil {
		switch err {
		case services.ErrUnknownResponse:
			return apiError(c, fiber.StatusBadRequest, "unknown response")
		case services.ErrNoteNotFound:
			return apiError(c, fiber.StatusNotFound, "note not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to review note")
	}
	return c.JSON(card)
}
