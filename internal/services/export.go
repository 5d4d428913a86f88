package services

import (
	"strconv"

	"github.com/ascent-tracker/ascent/internal/models"
)

// ExportData is the full-account JSON export payload.
type ExportData struct {
	ExportedAt      string                  `json:"exportedAt"`
	Goals           Goals                   `json:"goals"`
	FocusHabit      string                  `json:"focusHabit"`
	Days            []models.DailyLog       `json:"days"`
	Notes           []models.LearningNote   `json:"learningNotes"`
	Cards           []models.SrsCard        `json:"srsCards"`
	Library         []models.LibraryItem    `json:"library"`
	ReadingSessions []models.ReadingSession `json:"readingSessions"`
	MediaSessions   []models.MediaSession   `json:"mediaSessions"`
	Transactions    []models.Transaction    `json:"transactions"`
	Reviews         []models.PeriodicReview `json:"reviews"`
}

func DailyLogCSVHeader() []string {
	return []string{
		"day",
		"steps", "water", "sleep", "pages", "pushups", "squats", "run_distance",
		"nofap", "workout", "run", "kept_word", "hard_thing", "healthy_eating",
		"journal_text", "journal_til", "journal_important",
	}
}

// DailyLogCSVRow renders one log row. Unlogged metrics become empty cells,
// not zeros, so the export round-trips the logged/not-logged distinction.
func DailyLogCSVRow(entry models.DailyLog) []string {
	return []string{
		entry.Day,
		csvNumber(entry.Steps),
		csvNumber(entry.Water),
		csvNumber(entry.Sleep),
		csvNumber(entry.Pages),
		csvNumber(entry.Pushups),
		csvNumber(entry.Squats),
		csvNumber(entry.RunDistance),
		csvBool(entry.NoFap),
		csvBool(entry.Workout),
		csvBool(entry.Run),
		csvBool(entry.KeptWord),
		csvBool(entry.HardThing),
		csvBool(entry.HealthyEating),
		entry.JournalText,
		entry.JournalTIL,
		entry.JournalImportant,
	}
}

func csvNumber(value *float64) string {
	if value == nil {
		return ""
	}
	return strconv.FormatFloat(*value, 'f', -1, 64)
}

func csvBool(value bool) string {
	if value {
		return "1"
	}
	return "0"
}
