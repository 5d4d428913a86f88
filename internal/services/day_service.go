package services

import (
	"errors"

	"github.com/ascent-tracker/ascent/internal/models"
)

var ErrInvalidDay = errors.New("invalid day")

type DayStore interface {
	FindByUserAndDay(userID uint, day string) (models.DailyLog, bool, error)
	Create(entry *models.DailyLog) error
	Save(entry *models.DailyLog) error
	DeleteByUserAndDay(userID uint, day string) error
}

type DayService struct {
	days DayStore
}

func NewDayService(days DayStore) *DayService {
	return &DayService{days: days}
}

// DayWrite is a full-day write: the stored row is replaced with exactly
// these values. Absent metrics stay absent ("not logged"), they are not
// zero-filled.
type DayWrite struct {
	Metrics MetricValues `json:"metrics"`
	Habits  HabitFlags   `json:"habits"`
	Journal JournalEntry `json:"journal"`
}

func (service *DayService) Get(userID uint, day string) (models.DailyLog, bool, error) {
	if !IsValidDay(day) {
		return models.DailyLog{}, false, ErrInvalidDay
	}
	return service.days.FindByUserAndDay(userID, day)
}

func (service *DayService) Upsert(userID uint, day string, write DayWrite) (models.DailyLog, error) {
	if !IsValidDay(day) {
		return models.DailyLog{}, ErrInvalidDay
	}

	entry, exists, err := service.days.FindByUserAndDay(userID, day)
	if err != nil {
		return models.DailyLog{}, err
	}
	if !exists {
		entry = models.DailyLog{UserID: userID, Day: day}
	}

	entry.Steps = write.Metrics.Steps
	entry.Water = write.Metrics.Water
	entry.Sleep = write.Metrics.Sleep
	entry.Pages = write.Metrics.Pages
	entry.Pushups = write.Metrics.Pushups
	entry.Squats = write.Metrics.Squats
	entry.RunDistance = write.Metrics.RunDistance
	entry.NoFap = write.Habits.NoFap
	entry.Workout = write.Habits.Workout
	entry.Run = write.Habits.Run
	entry.KeptWord = write.Habits.KeptWord
	entry.HardThing = write.Habits.HardThing
	entry.HealthyEating = write.Habits.HealthyEating
	entry.JournalText = write.Journal.Text
	entry.JournalTIL = write.Journal.TIL
	entry.JournalImportant = write.Journal.Important

	if !exists {
		if err := service.days.Create(&entry); err != nil {
			return models.DailyLog{}, err
		}
		return entry, nil
	}
	if err := service.days.Save(&entry); err != nil {
		return models.DailyLog{}, err
	}
	return entry, nil
}

func (service *DayService) Delete(userID uint, day string) error {
	if !IsValidDay(day) {
		return ErrInvalidDay
	}
	return service.days.DeleteByUserAndDay(userID, day)
}
