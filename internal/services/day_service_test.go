package services

import (
	"errors"
	"testing"

	"github.com/ascent-tracker/ascent/internal/models"
)

type stubDayStore struct {
	entries map[string]models.DailyLog
	created int
	saved   int
	deleted int
}

func newStubDayStore() *stubDayStore {
	return &stubDayStore{entries: make(map[string]models.DailyLog)}
}

func (store *stubDayStore) FindByUserAndDay(userID uint, day string) (models.DailyLog, bool, error) {
	entry, ok := store.entries[day]
	return entry, ok, nil
}

func (store *stubDayStore) Create(entry *models.DailyLog) error {
	store.entries[entry.Day] = *entry
	store.created++
	return nil
}

func (store *stubDayStore) Save(entry *models.DailyLog) error {
	store.entries[entry.Day] = *entry
	store.saved++
	return nil
}

func (store *stubDayStore) DeleteByUserAndDay(userID uint, day string) error {
	delete(store.entries, day)
	store.deleted++
	return nil
}

func TestDayServiceUpsertCreatesThenUpdates(t *testing.T) {
	t.Parallel()

	store := newStubDayStore()
	service := NewDayService(store)

	first, err := service.Upsert(1, "2026-03-05", DayWrite{
		Metrics: MetricValues{Steps: floatPtr(8000)},
		Habits:  HabitFlags{NoFap: true},
	})
	if err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	if store.created != 1 || store.saved != 0 {
		t.Fatalf("first upsert: created=%d saved=%d, want create only", store.created, store.saved)
	}
	if first.Steps == nil || *first.Steps != 8000 {
		t.Fatalf("steps not stored: %#v", first.Steps)
	}

	second, err := service.Upsert(1, "2026-03-05", DayWrite{
		Habits: HabitFlags{Workout: true},
	})
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}
	if store.created != 1 || store.saved != 1 {
		t.Fatalf("second upsert: created=%d saved=%d, want one of each", store.created, store.saved)
	}
	// Full-day replace: the earlier steps value is gone, not merged.
	if second.Steps != nil {
		t.Fatalf("steps survived a write that omitted them: %v", *second.Steps)
	}
	if second.NoFap || !second.Workout {
		t.Fatalf("habit flags not replaced: %#v", second)
	}
}

func TestDayServiceRejectsInvalidDay(t *testing.T) {
	t.Parallel()

	service := NewDayService(newStubDayStore())

	if _, _, err := service.Get(1, "03/05/2026"); !errors.Is(err, ErrInvalidDay) {
		t.Fatalf("Get error = %v, want ErrInvalidDay", err)
	}
	if _, err := service.Upsert(1, "2026-3-5", DayWrite{}); !errors.Is(err, ErrInvalidDay) {
		t.Fatalf("Upsert error = %v, want ErrInvalidDay", err)
	}
	if err := service.Delete(1, "yesterday"); !errors.Is(err, ErrInvalidDay) {
		t.Fatalf("Delete error = %v, want ErrInvalidDay", err)
	}
}

func TestDayServiceDelete(t *testing.T) {
	t.Parallel()

	store := newStubDayStore()
	service := NewDayService(store)

	if _, err := service.Upsert(1, "2026-03-05", DayWrite{Habits: HabitFlags{NoFap: true}}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if err := service.Delete(1, "2026-03-05"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, exists, _ := service.Get(1, "2026-03-05"); exists {
		t.Fatalf("entry still present after delete")
	}
}
