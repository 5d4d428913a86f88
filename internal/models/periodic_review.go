package models

import "time"

const (
	ReviewPeriodWeekly  = "weekly"
	ReviewPeriodMonthly = "monthly"
)

// PeriodicReview stores the user's written reflection for one review period.
// One row per (user, period type, period start).
type PeriodicReview struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"not null;uniqueIndex:uidx_user_period"`
	PeriodType  string `gorm:"not null;uniqueIndex:uidx_user_period"`
	PeriodStart string `gorm:"type:text;not null;uniqueIndex:uidx_user_period"`
	Reflection  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
