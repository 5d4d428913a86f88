package models

import "time"

const (
	DefaultGoalSteps   = 10000.0
	DefaultGoalWater   = 1.5
	DefaultGoalSleep   = 7.5
	DefaultGoalPages   = 20.0
	DefaultGoalPushups = 50.0
	DefaultGoalSquats  = 50.0

	DefaultFocusHabit = "workout"
)

type User struct {
	ID               uint   `gorm:"primaryKey"`
	Email            string `gorm:"uniqueIndex;not null"`
	PasswordHash     string `gorm:"not null"`
	RecoveryCodeHash string
	GoalSteps        float64   `gorm:"not null;default:10000"`
	GoalWater        float64   `gorm:"not null;default:1.5"`
	GoalSleep        float64   `gorm:"not null;default:7.5"`
	GoalPages        float64   `gorm:"not null;default:20"`
	GoalPushups      float64   `gorm:"not null;default:50"`
	GoalSquats       float64   `gorm:"not null;default:50"`
	FocusHabit       string    `gorm:"not null;default:workout"`
	CreatedAt        time.Time `gorm:"not null"`
}
