package models

import "time"

const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

type Transaction struct {
	ID        uint    `gorm:"primaryKey"`
	UserID    uint    `gorm:"not null;index"`
	Day       string  `gorm:"type:text;not null;index"`
	Type      string  `gorm:"not null"`
	Amount    float64 `gorm:"not null"`
	Category  string
	Note      string
	CreatedAt time.Time
}
