package models

import "time"

type LearningNote struct {
	ID        string `gorm:"primaryKey;type:text"`
	UserID    uint   `gorm:"not null;index"`
	Title     string `gorm:"not null"`
	Body      string
	Tags      string
	Source    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SrsCard holds the spaced-repetition state for one note. It does not exist
// until the note is reviewed for the first time; a note without a card is
// always due.
type SrsCard struct {
	NoteID         string  `gorm:"primaryKey;type:text"`
	UserID         uint    `gorm:"not null;index"`
	IntervalDays   int     `gorm:"not null;default:1"`
	Ease           float64 `gorm:"not null;default:2.5"`
	NextReviewAt   string  `gorm:"type:text;not null"`
	LastReviewedAt string  `gorm:"type:text;not null"`
}
