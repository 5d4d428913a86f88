package db

import (
	"github.com/ascent-tracker/ascent/internal/models"
	"gorm.io/gorm"
)

type LibraryRepository struct {
	database *gorm.DB
}

func NewLibraryRepository(database *gorm.DB) *LibraryRepository {
	return &LibraryRepository{database: database}
}

func (repo *LibraryRepository) ListByUser(userID uint) ([]models.LibraryItem, error) {
	items := make([]models.LibraryItem, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("created_at ASC, id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (repo *LibraryRepository) FindByUserAndID(userID uint, itemID string) (models.LibraryItem, bool, error) {
	item := models.LibraryItem{}
	result := repo.database.Where("user_id = ? AND id = ?", userID, itemID).Limit(1).Find(&item)
	if result.Error != nil {
		return models.LibraryItem{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.LibraryItem{}, false, nil
	}
	return item, true, nil
}

func (repo *LibraryRepository) Create(item *models.LibraryItem) error {
	return repo.database.Create(item).Error
}

func (repo *LibraryRepository) Save(item *models.LibraryItem) error {
	return repo.database.Save(item).Error
}

func (repo *LibraryRepository) DeleteByUserAndID(userID uint, itemID string) error {
	return repo.database.Where("user_id = ? AND id = ?", userID, itemID).Delete(&models.LibraryItem{}).Error
}

func (repo *LibraryRepository) ListReadingSessions(userID uint, fromDay string, toDay string) ([]models.ReadingSession, error) {
	sessions := make([]models.ReadingSession, 0)
	if err := repo.database.
		Where("user_id = ? AND day >= ? AND day <= ?", userID, fromDay, toDay).
		Order("day ASC, id ASC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (repo *LibraryRepository) ListAllReadingSessions(userID uint) ([]models.ReadingSession, error) {
	sessions := make([]models.ReadingSession, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("day ASC, id ASC").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (repo *LibraryRepository) CreateReadingSession(session *models.ReadingSession) error {
	return repo.database.Create(session).Error
}

func (repo *LibraryRepository) DeleteReadingSession(userID uint, sessionID uint) error {
	return repo.database.Where("user_id = ? AND id = ?", userID, sessionID).Delete(&models.ReadingSession{}).Error
}

func (repo *LibraryRepository) ListMediaSessions(userID uint, fromDay string, toDay string) ([]models.MediaSession, error) {
	sessions := make([]models.MediaSession, 0)
	if err := repo.database.
		Where("user_id = ? AND day >= ? AND day <= ?", userID, fromDay, toDay).
		Order("day ASC, id ASC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (repo *LibraryRepository) CreateMediaSession(session *models.MediaSession) error {
	return repo.database.Create(session).Error
}

func (repo *LibraryRepository) DeleteMediaSession(userID uint, sessionID uint) error {
	return repo.database.Where("user_id = ? AND id = ?", userID, sessionID).Delete(&models.MediaSession{}).Error
}
