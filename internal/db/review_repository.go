package db

import (
	"github.com/ascent-tracker/ascent/internal/models"
	"gorm.io/gorm"
)

type ReviewRepository struct {
	database *gorm.DB
}

func NewReviewRepository(database *gorm.DB) *ReviewRepository {
	return &ReviewRepository{database: database}
}

func (repo *ReviewRepository) Find(userID uint, periodType string, periodStart string) (models.PeriodicReview, bool, error) {
	review := models.PeriodicReview{}
	result := repo.database.
		Where("user_id = ? AND period_type = ? AND period_start = ?", userID, periodType, periodStart).
		Limit(1).
		Find(&review)
	if result.Error != nil {
		return models.PeriodicReview{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.PeriodicReview{}, false, nil
	}
	return review, true, nil
}

func (repo *ReviewRepository) ListByUser(userID uint) ([]models.PeriodicReview, error) {
	reviews := make([]models.PeriodicReview, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("period_start DESC, id DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (repo *ReviewRepository) Save(review *models.PeriodicReview) error {
	return repo.database.Save(review).Error
}
