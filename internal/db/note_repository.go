package db

import (
	"github.com/ascent-tracker/ascent/internal/models"
	"gorm.io/gorm"
)

type NoteRepository struct {
	database *gorm.DB
}

func NewNoteRepository(database *gorm.DB) *NoteRepository {
	return &NoteRepository{database: database}
}

func (repo *NoteRepository) ListByUser(userID uint) ([]models.LearningNote, error) {
	notes := make([]models.LearningNote, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("created_at ASC, id ASC").Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (repo *NoteRepository) FindByUserAndID(userID uint, noteID string) (models.LearningNote, bool, error) {
	note := models.LearningNote{}
	result := repo.database.Where("user_id = ? AND id = ?", userID, noteID).Limit(1).Find(&note)
	if result.Error != nil {
		return models.LearningNote{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.LearningNote{}, false, nil
	}
	return note, true, nil
}

func (repo *NoteRepository) Create(note *models.LearningNote) error {
	return repo.database.Create(note).Error
}

func (repo *NoteRepository) Save(note *models.LearningNote) error {
	return repo.database.Save(note).Error
}

func (repo *NoteRepository) DeleteByUserAndID(userID uint, noteID string) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND note_id = ?", userID, noteID).Delete(&models.SrsCard{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ? AND id = ?", userID, noteID).Delete(&models.LearningNote{}).Error
	})
}

func (repo *NoteRepository) ListCardsByUser(userID uint) ([]models.SrsCard, error) {
	cards := make([]models.SrsCard, 0)
	if err := repo.database.Where("user_id = ?", userID).Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

func (repo *NoteRepository) FindCard(userID uint, noteID string) (models.SrsCard, bool, error) {
	card := models.SrsCard{}
	result := repo.database.Where("user_id = ? AND note_id = ?", userID, noteID).Limit(1).Find(&card)
	if result.Error != nil {
		return models.SrsCard{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.SrsCard{}, false, nil
	}
	return card, true, nil
}

func (repo *NoteRepository) SaveCard(card *models.SrsCard) error {
	return repo.database.Save(card).Error
}
