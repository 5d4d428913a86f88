package api

import (
	"net/http"
	"testing"
)

func TestComputeScoreEndpoint(t *testing.T) {
	app := newTestApp(t)
	cookie, _ := registerTestUser(t, app)

	var result struct {
		Score int    `json:"score"`
		Grade string `json:"grade"`
	}
	decodeJSON(t, jsonRequest(t, app, http.MethodPost, "/api/score", cookie, map[string]interface{}{
		"metrics": map[string]float64{"steps": 5000},
		"habits":  map[string]bool{"nofap": true},
	}), &result)
	if result.Score <= 0 {
		t.Fatalf("score = %d, want positive", result.Score)
	}

	// Goal override in the request makes the same steps count as a full hit.
	var overridden struct {
		Score int `json:"score"`
	}
	decodeJSON(t, jsonRequest(t, app, http.MethodPost, "/api/score", cookie, map[string]interface{}{
		"metrics": map[string]float64{"steps": 5000},
		"habits":  map[string]bool{"nofap": true},
		"goals": map[string]float64{
			"steps": 5000, "water": 1.5, "sleep": 7.5,
			"pages": 20, "pushups": 50, "squats": 50,
		},
	}), &overridden)
	if overridden.Score <= result.Score {
		t.Fatalf("halved steps goal did not raise the score: %d vs %d", overridden.Score, result.Score)
	}
}

func TestPreviewReviewEndpoint(t *testing.T) {
	app := newTestApp(t)
	cookie, _ := registerTestUser(t, app)

	var preview struct {
		Interval int     `json:"interval"`
		Ease     float64 `json:"ease"`
	}
	decodeJSON(t, jsonRequest(t, app, http.MethodPost, "/api/srs/preview", cookie, map[string]interface{}{
		"interval": 4, "ease": 2.0, "response": "good",
	}), &preview)
	if preview.Interval != 8 || preview.Ease != 2.0 {
		t.Fatalf("preview = %d/%v, want 8/2.0", preview.Interval, preview.Ease)
	}

	expectStatus(t, jsonRequest(t, app, http.MethodPost, "/api/srs/preview", cookie, map[string]interface{}{
		"interval": 4, "ease": 2.0, "response": "perfect",
	}), http.StatusBadRequest)
}

func TestComputeStreakEndpoint(t *testing.T) {
	app := newTestApp(t)
	cookie, _ := registerTestUser(t, app)

	var result struct {
		Streak int `json:"streak"`
	}
	decodeJSON(t, jsonRequest(t, app, http.MethodPost, "/api/streak", cookie, map[string]interface{}{
		"habitKey": "nofap",
		"today":    "2026-03-03",
		"habits": map[string]map[string]bool{
			"2026-03-01": {"nofap": true},
			"2026-03-02": {"nofap": true},
		},
	}), &result)
	if result.Streak != 2 {
		t.Fatalf("streak = %d, want 2 (unmarked today is lenient)", result.Streak)
	}

	expectStatus(t, jsonRequest(t, app, http.MethodPost, "/api/streak", cookie, map[string]interface{}{
		"habitKey": "meditation",
		"habits":   map[string]map[string]bool{},
	}), http.StatusBadRequest)
}

func TestAggregateEndpoint(t *testing.T) {
	app := newTestApp(t)
	cookie, _ := registerTestUser(t, app)

	var stats struct {
		LoggedDays int      `json:"loggedDays"`
		TotalDays  int      `json:"totalDays"`
		AvgWater   *float64 `json:"avgWater"`
	}
	decodeJSON(t, jsonRequest(t, app, http.MethodPost, "/api/aggregate", cookie, map[string]interface{}{
		"start": "2026-03-01",
		"end":   "2026-03-07",
		"metrics": map[string]map[string]float64{
			"2026-03-02": {"water": 1.0},
			"2026-03-04": {"water": 2.0},
		},
		"habits": map[string]map[string]bool{},
	}), &stats)

	if stats.TotalDays != 7 || stats.LoggedDays != 2 {
		t.Fatalf("aggregate days = %d/%d, want 2 logged of 7", stats.LoggedDays, stats.TotalDays)
	}
	if stats.AvgWater == nil || *stats.AvgWater != 1.5 {
		t.Fatalf("avg water = %v, want sparse average 1.5", stats.AvgWater)
	}

	expectStatus(t, jsonRequest(t, app, http.MethodPost, "/api/aggregate", cookie, map[string]interface{}{
		"start": "2026-03-07", "end": "2026-03-01",
	}), http.StatusBadRequest)
}
