package services

import (
	"errors"

	"github.com/ascent-tracker/ascent/internal/models"
)

var (
	ErrNoteNotFound    = errors.New("note not found")
	ErrUnknownResponse = errors.New("unknown review response")
)

type NoteStore interface {
	ListByUser(userID uint) ([]models.LearningNote, error)
	FindByUserAndID(userID uint, noteID string) (models.LearningNote, bool, error)
	ListCardsByUser(userID uint) ([]models.SrsCard, error)
	FindCard(userID uint, noteID string) (models.SrsCard, bool, error)
	SaveCard(card *models.SrsCard) error
}

type SrsService struct {
	notes NoteStore
}

func NewSrsService(notes NoteStore) *SrsService {
	return &SrsService{notes: notes}
}

// DueNotes returns the review queue for today: every note whose card is due,
// plus every note never reviewed. Order follows note creation order.
func (service *SrsService) DueNotes(userID uint, today string) ([]models.LearningNote, error) {
	notes, err := service.notes.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	cards, err := service.notes.ListCardsByUser(userID)
	if err != nil {
		return nil, err
	}

	cardByNote := make(map[string]models.SrsCard, len(cards))
	for _, card := range cards {
		cardByNote[card.NoteID] = card
	}

	due := make([]models.LearningNote, 0, len(notes))
	for _, note := range notes {
		card, reviewed := cardByNote[note.ID]
		if !reviewed || IsDue(card.NextReviewAt, today) {
			due = append(due, note)
		}
	}
	return due, nil
}

// Review reschedules one note and persists the updated card. The note drops
// out of today's queue because the new interval is at least one day.
func (service *SrsService) Review(userID uint, noteID string, response ReviewResponse, today string) (models.SrsCard, error) {
	if !IsKnownResponse(response) {
		return models.SrsCard{}, ErrUnknownResponse
	}

	_, exists, err := service.notes.FindByUserAndID(userID, noteID)
	if err != nil {
		return models.SrsCard{}, err
	}
	if !exists {
		return models.SrsCard{}, ErrNoteNotFound
	}

	card, hasCard, err := service.notes.FindCard(userID, noteID)
	if err != nil {
		return models.SrsCard{}, err
	}
	if !hasCard {
		card = models.SrsCard{
			NoteID:       noteID,
			UserID:       userID,
			IntervalDays: 1,
			Ease:         DefaultEase,
		}
	}

	interval, ease := NextReview(card.IntervalDays, card.Ease, response)
	card.IntervalDays = interval
	card.Ease = ease
	card.NextReviewAt = AddDays(today, interval)
	card.LastReviewedAt = today

	if err := service.notes.SaveCard(&card); err != nil {
		return models.SrsCard{}, err
	}
	return card, nil
}
