package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ascent-tracker/ascent/internal/db"
	"github.com/gofiber/fiber/v2"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "ascent-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler := NewHandler(database, "test-secret", time.UTC, false)
	app := fiber.New()
	RegisterRoutes(app, handler)
	return app
}

// registerTestUser creates the owner account and returns the auth cookie and
// the one-time recovery code.
func registerTestUser(t *testing.T, app *fiber.App) (string, string) {
	t.Helper()

	body := map[string]string{
		"email":            "owner@example.com",
		"password":         "StrongPass1",
		"confirm_password": "StrongPass1",
	}
	response := jsonRequest(t, app, http.MethodPost, "/api/auth/register", "", body)
	defer response.Body.Close()

	if response.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(response.Body)
		t.Fatalf("register expected 201, got %d: %s", response.StatusCode, raw)
	}

	var payload struct {
		RecoveryCode string `json:"recovery_code"`
	}
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		t.Fatalf("decode register response: %v", err)
	}

	cookie := authCookieFrom(t, response)
	return cookie, payload.RecoveryCode
}

func authCookieFrom(t *testing.T, response *http.Response) string {
	t.Helper()

	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName {
			return cookie.Name + "=" + cookie.Value
		}
	}
	t.Fatalf("no %s cookie in response", authCookieName)
	return ""
}

func jsonRequest(t *testing.T, app *fiber.App, method string, path string, cookie string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body for %s %s: %v", method, path, err)
		}
		reader = bytes.NewReader(raw)
	}

	request := httptest.NewRequest(method, path, reader)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		request.Header.Set("Cookie", cookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeJSON(t *testing.T, response *http.Response, target interface{}) {
	t.Helper()

	defer response.Body.Close()
	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func expectStatus(t *testing.T, response *http.Response, want int) {
	t.Helper()

	if response.StatusCode != want {
		raw, _ := io.ReadAll(response.Body)
		response.Body.Close()
		t.Fatalf("expected status %d, got %d: %s", want, response.StatusCode, strings.TrimSpace(string(raw)))
	}
}
