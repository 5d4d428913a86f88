package services

import (
	"github.com/ascent-tracker/ascent/internal/models"
)

type StatsDayReader interface {
	ListByUserRange(userID uint, fromDay string, toDay string) ([]models.DailyLog, error)
}

type StatsSessionReader interface {
	ListReadingSessions(userID uint, fromDay string, toDay string) ([]models.ReadingSession, error)
	ListMediaSessions(userID uint, fromDay string, toDay string) ([]models.MediaSession, error)
	ListByUser(userID uint) ([]models.LibraryItem, error)
}

type StatsTransactionReader interface {
	ListByUserRange(userID uint, fromDay string, toDay string) ([]models.Transaction, error)
}

type StatsService struct {
	days         StatsDayReader
	library      StatsSessionReader
	transactions StatsTransactionReader
}

func NewStatsService(days StatsDayReader, library StatsSessionReader, transactions StatsTransactionReader) *StatsService {
	return &StatsService{days: days, library: library, transactions: transactions}
}

// RangeInputsFor assembles the date-keyed snapshot for [start, end] from the
// stores, using the user's configured goals and focus habit.
func (service *StatsService) RangeInputsFor(user *models.User, start string, end string) (RangeInputs, error) {
	inputs := RangeInputs{
		Metrics:      make(map[string]MetricValues),
		Habits:       make(map[string]HabitFlags),
		Journals:     make(map[string]JournalEntry),
		SessionPages: make(map[string]float64),
		Goals:        GoalsForUser(user),
	}
	if user != nil {
		inputs.FocusHabit = user.FocusHabit
	}

	logs, err := service.days.ListByUserRange(user.ID, start, end)
	if err != nil {
		return RangeInputs{}, err
	}
	for _, entry := range logs {
		metrics, habits, journal := SplitDailyLog(entry)
		inputs.Metrics[entry.Day] = metrics
		inputs.Habits[entry.Day] = habits
		inputs.Journals[entry.Day] = journal
	}

	sessions, err := service.library.ListReadingSessions(user.ID, start, end)
	if err != nil {
		return RangeInputs{}, err
	}
	for _, session := range sessions {
		inputs.SessionPages[session.Day] += session.Pages
	}

	transactions, err := service.transactions.ListByUserRange(user.ID, start, end)
	if err != nil {
		return RangeInputs{}, err
	}
	for _, transaction := range transactions {
		inputs.Transactions = append(inputs.Transactions, TransactionLine{
			Day:    transaction.Day,
			Type:   transaction.Type,
			Amount: transaction.Amount,
		})
	}

	return inputs, nil
}

func (service *StatsService) RangeStatsFor(user *models.User, start string, end string) (RangeStats, error) {
	inputs, err := service.RangeInputsFor(user, start, end)
	if err != nil {
		return RangeStats{}, err
	}
	return BuildRangeStats(inputs, start, end), nil
}

func (service *StatsService) HeatmapFor(user *models.User, end string, totalDays int) ([]HeatmapCell, error) {
	start := AddDays(end, -(totalDays - 1))
	inputs, err := service.RangeInputsFor(user, start, end)
	if err != nil {
		return nil, err
	}
	return BuildScoreHeatmap(inputs, end, totalDays), nil
}

func (service *StatsService) YearToDateFor(user *models.User, today string) (YearToDateStats, error) {
	inputs, err := service.RangeInputsFor(user, YearStart(today), today)
	if err != nil {
		return YearToDateStats{}, err
	}
	return BuildYearToDate(inputs.Metrics, today), nil
}

// MediaMinutes sums media-session minutes per library item type over a
// range. Sessions pointing at a deleted item are skipped.
type MediaMinutes struct {
	Series  int `json:"series"`
	Course  int `json:"course"`
	Podcast int `json:"podcast"`
	Total   int `json:"total"`
}

func (service *StatsService) MediaMinutesFor(user *models.User, start string, end string) (MediaMinutes, error) {
	items, err := service.library.ListByUser(user.ID)
	if err != nil {
		return MediaMinutes{}, err
	}
	typeByID := make(map[string]string, len(items))
	for _, item := range items {
		typeByID[item.ID] = item.Type
	}

	sessions, err := service.library.ListMediaSessions(user.ID, start, end)
	if err != nil {
		return MediaMinutes{}, err
	}

	minutes := MediaMinutes{}
	for _, session := range sessions {
		switch typeByID[session.ItemID] {
		case models.LibraryTypeSeries:
			minutes.Series += session.DurationMinutes
		case models.LibraryTypeCourse:
			minutes.Course += session.DurationMinutes
		case models.LibraryTypePodcast:
			minutes.Podcast += session.DurationMinutes
		default:
			continue
		}
		minutes.Total += session.DurationMinutes
	}
	return minutes, nil
}
