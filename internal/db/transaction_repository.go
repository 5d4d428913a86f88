package db

import (
	"github.com/ascent-tracker/ascent/internal/models"
	"gorm.io/gorm"
)

type TransactionRepository struct {
	database *gorm.DB
}

func NewTransactionRepository(database *gorm.DB) *TransactionRepository {
	return &TransactionRepository{database: database}
}

func (repo *TransactionRepository) ListByUser(userID uint) ([]models.Transaction, error) {
	transactions := make([]models.Transaction, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("day DESC, id DESC").Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

func (repo *TransactionRepository) ListByUserRange(userID uint, fromDay string, toDay string) ([]models.Transaction, error) {
	transactions := make([]models.Transaction, 0)
	if err := repo.database.
		Where("user_id = ? AND day >= ? AND day <= ?", userID, fromDay, toDay).
		Order("day ASC, id ASC").
		Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

func (repo *TransactionRepository) Create(transaction *models.Transaction) error {
	return repo.database.Create(transaction).Error
}

func (repo *TransactionRepository) DeleteByUserAndID(userID uint, transactionID uint) error {
	return repo.database.Where("user_id = ? AND id = ?", userID, transactionID).Delete(&models.Transaction{}).Error
}
