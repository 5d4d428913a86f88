package api

import (
	"net/http"
	"testing"
)

type dayResponse struct {
	Day              string   `json:"Day"`
	Steps            *float64 `json:"Steps"`
	Water            *float64 `json:"Water"`
	NoFap            bool     `json:"NoFap"`
	Workout          bool     `json:"Workout"`
	JournalImportant string   `json:"JournalImportant"`
}

func TestDayLifecycle(t *testing.T) {
	app := newTestApp(t)
	cookie, _ := registerTestUser(t, app)

	payload := map[string]interface{}{
		"metrics": map[string]float64{"steps": 8500, "water": 1.5},
		"habits":  map[string]bool{"nofap": true, "workout": true},
		"journal": map[string]string{"text": "good day"},
	}
	upsert := jsonRequest(t, app, http.MethodPost, "/api/days/2026-03-05", cookie, payload)
	expectStatus(t, upsert, http.StatusOK)

	var stored dayResponse
	decodeJSON(t, jsonRequest(t, app, http.MethodGet, "/api/days/2026-03-05", cookie, nil), &stored)
	if stored.Day != "2026-03-05" {
		t.Fatalf("stored day = %q, want 2026-03-05", stored.Day)
	}
	if stored.Steps == nil || *stored.Steps != 8500 {
		t.Fatalf("steps = %v, want 8500", stored.Steps)
	}
	if !stored.NoFap || !stored.Workout {
		t.Fatalf("habits not stored: %#v", stored)
	}

	var days []dayResponse
	decodeJSON(t, jsonRequest(t, app, http.MethodGet, "/api/days?from=2026-03-01&to=2026-03-07", cookie, nil), &days)
	if len(days) != 1 {
		t.Fatalf("range returned %d days, want 1", len(days))
	}

	expectStatus(t, jsonRequest(t, app, http.MethodDelete, "/api/days/2026-03-05", cookie, nil), http.StatusOK)
	expectStatus(t, jsonRequest(t, app, http.MethodGet, "/api/days/2026-03-05", cookie, nil), http.StatusNotFound)
}

func TestUpsertDayValidation(t *testing.T) {
	app := newTestApp(t)
	cookie, _ := registerTestUser(t, app)

	negative := jsonRequest(t, app, http.MethodPost, "/api/days/2026-03-05", cookie, map[string]interface{}{
		"metrics": map[string]float64{"steps": -100},
	})
	expectStatus(t, negative, http.StatusBadRequest)

	badDate := jsonRequest(t, app, http.MethodPost, "/api/days/march-5th", cookie, map[string]interface{}{
		"habits": map[string]bool{"nofap": true},
	})
	expectStatus(t, badDate, http.StatusBadRequest)
}

func TestUpsertDayAcceptsLegacyAvoidedField(t *testing.T) {
	app := newTestApp(t)
	cookie, _ := registerTestUser(t, app)

	upsert := jsonRequest(t, app, http.MethodPost, "/api/days/2026-03-05", cookie, map[string]interface{}{
		"habits":  map[string]bool{"nofap": true},
		"journal": map[string]string{"avoided": "doomscrolling"},
	})
	expectStatus(t, upsert, http.StatusOK)

	var stored dayResponse
	decodeJSON(t, jsonRequest(t, app, http.MethodGet, "/api/days/2026-03-05", cookie, nil), &stored)
	if stored.JournalImportant != "doomscrolling" {
		t.Fatalf("legacy avoided field not mapped to important: %#v", stored)
	}
}

func TestDayScoreEndpoint(t *testing.T) {
	app := newTestApp(t)
	cookie, _ := registerTestUser(t, app)

	payload := map[string]interface{}{
		"metrics": map[string]float64{
			"steps": 10000, "water": 1.5, "sleep": 7.5,
			"pages": 20, "pushups": 50, "squats": 50,
		},
		"habits": map[string]bool{"nofap": true, "workout": true, "healthyEating": true},
	}
	expectStatus(t, jsonRequest(t, app, http.MethodPost, "/api/days/2026-03-05", cookie, payload), http.StatusOK)

	var score struct {
		Score int    `json:"score"`
		Grade string `json:"grade"`
	}
	decodeJSON(t, jsonRequest(t, app, http.MethodGet, "/api/days/2026-03-05/score", cookie, nil), &score)
	if score.Score != 100 || score.Grade != "S" {
		t.Fatalf("perfect day scored %d/%s, want 100/S", score.Score, score.Grade)
	}

	// An unlogged day scores as empty, not as an error.
	decodeJSON(t, jsonRequest(t, app, http.MethodGet, "/api/days/2026-03-06/score", cookie, nil), &score)
	if score.Score != 0 || score.Grade != "F" {
		t.Fatalf("empty day scored %d/%s, want 0/F", score.Score, score.Grade)
	}
}
