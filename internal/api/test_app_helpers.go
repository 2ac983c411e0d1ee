package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/habithero/internal/db"
	"gorm.io/gorm"
)

func newHabitTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "habithero-test.db")
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

	handler := NewHandler(database, time.UTC)
	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

func performJSONRequest(t *testing.T, app *fiber.App, method string, path string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	request.Header.Set("Accept", "application/json")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeJSONBody(t *testing.T, body io.Reader, target any) {
	t.Helper()
	raw, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		t.Fatalf("decode response body %q: %v", string(raw), err)
	}
}

func readAPIError(t *testing.T, body io.Reader) string {
	t.Helper()
	payload := map[string]string{}
	decodeJSONBody(t, body, &payload)
	return payload["error"]
}

func createTestHabit(t *testing.T, app *fiber.App, name string, category string, startDate string) habitView {
	t.Helper()

	response := performJSONRequest(t, app, http.MethodPost, "/api/habits", map[string]string{
		"name":       name,
		"frequency":  "daily",
		"category":   category,
		"start_date": startDate,
	})
	defer response.Body.Close()

	if response.StatusCode != http.StatusCreated {
		t.Fatalf("create habit %q: expected status 201, got %d", name, response.StatusCode)
	}

	habit := habitView{}
	decodeJSONBody(t, response.Body, &habit)
	return habit
}

func checkInTestHabit(t *testing.T, app *fiber.App, habitID uint, date string) {
	t.Helper()

	response := performJSONRequest(t, app, http.MethodPost,
		fmt.Sprintf("/api/habits/%d/checkin", habitID), map[string]string{"date": date})
	defer response.Body.Close()

	if response.StatusCode != http.StatusCreated {
		t.Fatalf("check in habit %d on %s: expected status 201, got %d", habitID, date, response.StatusCode)
	}
}
