package models

import "time"

const (
	LibraryTypeBook    = "book"
	LibraryTypeMovie   = "movie"
	LibraryTypeSeries  = "series"
	LibraryTypeArticle = "article"
	LibraryTypeCourse  = "course"
	LibraryTypePodcast = "podcast"

	LibraryStatusWishlist   = "wishlist"
	LibraryStatusInProgress = "in_progress"
	LibraryStatusDone       = "done"
)

func LibraryTypes() []string {
	return []string{
		LibraryTypeBook,
		LibraryTypeMovie,
		LibraryTypeSeries,
		LibraryTypeArticle,
		LibraryTypeCourse,
		LibraryTypePodcast,
	}
}

func LibraryStatuses() []string {
	return []string{LibraryStatusWishlist, LibraryStatusInProgress, LibraryStatusDone}
}

type LibraryItem struct {
	ID        string `gorm:"primaryKey;type:text"`
	UserID    uint   `gorm:"not null;index"`
	Type      string `gorm:"not null"`
	Title     string `gorm:"not null"`
	Status    string `gorm:"not null;default:wishlist"`
	Rating    int    `gorm:"not null;default:0"`
	Tags      string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReadingSession records pages read on a day, optionally against a library
// item. Session pages are added on top of the day's pages metric in rollups.
type ReadingSession struct {
	ID              uint   `gorm:"primaryKey"`
	UserID          uint   `gorm:"not null;index"`
	Day             string `gorm:"type:text;not null;index"`
	ItemID          *string
	Pages           float64 `gorm:"not null;default:0"`
	DurationMinutes int     `gorm:"not null;default:0"`
	CreatedAt       time.Time
}

type MediaSession struct {
	ID              uint   `gorm:"primaryKey"`
	UserID          uint   `gorm:"not null;index"`
	Day             string `gorm:"type:text;not null;index"`
	ItemID          string `gorm:"type:text;not null"`
	DurationMinutes int    `gorm:"not null;default:0"`
	CreatedAt       time.Time
}
