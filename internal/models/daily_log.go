package models

import "time"

// DailyLog is the single row for everything a user logged on one calendar
// day: numeric metrics, habit checkmarks and the journal. The day string
// ("YYYY-MM-DD") is the join key across the whole app.
//
// Metric pointers distinguish "not logged" (nil) from an explicit zero.
type DailyLog struct {
	ID     uint   `gorm:"primaryKey"`
	UserID uint   `gorm:"not null;uniqueIndex:uidx_user_day"`
	Day    string `gorm:"type:text;not null;uniqueIndex:uidx_user_day"`

	Steps       *float64
	Water       *float64
	Sleep       *float64
	Pages       *float64
	Pushups     *float64
	Squats      *float64
	RunDistance *float64

	NoFap         bool `gorm:"not null;default:false"`
	Workout       bool `gorm:"not null;default:false"`
	Run           bool `gorm:"not null;default:false"`
	KeptWord      bool `gorm:"not null;default:false"`
	HardThing     bool `gorm:"not null;default:false"`
	HealthyEating bool `gorm:"not null;default:false"`

	JournalText      string
	JournalTIL       string
	JournalImportant string

	CreatedAt time.Time
	UpdatedAt time.Time
}
