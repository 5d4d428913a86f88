package db

import (
	"errors"
	"strings"

	"github.com/ascent-tracker/ascent/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) Count() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	user.Email = NormalizeEmail(user.Email)
	return repo.database.Create(user).Error
}

func (repo *UserRepository) FindByID(id uint) (*models.User, error) {
	user := &models.User{}
	if err := repo.database.First(user, id).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (repo *UserRepository) FindByEmail(email string) (*models.User, error) {
	user := &models.User{}
	if err := repo.database.Where("email = ?", NormalizeEmail(email)).First(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (repo *UserRepository) FindOwner() (*models.User, error) {
	user := &models.User{}
	if err := repo.database.Order("id ASC").First(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (repo *UserRepository) Save(user *models.User) error {
	return repo.database.Save(user).Error
}

// DeleteWithData removes the user together with every row the user owns.
func (repo *UserRepository) DeleteWithData(userID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := deleteUserData(tx, userID); err != nil {
			return err
		}
		return tx.Delete(&models.User{}, userID).Error
	})
}

// ClearData removes all logged data for the user but keeps the account.
func (repo *UserRepository) ClearData(userID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		return deleteUserData(tx, userID)
	})
}

func deleteUserData(tx *gorm.DB, userID uint) error {
	tables := []interface{}{
		&models.DailyLog{},
		&models.SrsCard{},
		&models.LearningNote{},
		&models.ReadingSession{},
		&models.MediaSession{},
		&models.LibraryItem{},
		&models.Transaction{},
		&models.PeriodicReview{},
	}
	for _, table := range tables {
		if err := tx.Where("user_id = ?", userID).Delete(table).Error; err != nil {
			return err
		}
	}
	return nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
