package api

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/terraincognita07/habithero/internal/services"
)

func TestToggleCheckInCreatesThenRemoves(t *testing.T) {
	app, _ := newHabitTestApp(t)

	today := time.Now().In(time.UTC).Format(services.DayKeyLayout)
	habit := createTestHabit(t, app, "Meditate", "mental health", today)
	path := fmt.Sprintf("/api/habits/%d/checkin", habit.ID)

	firstResponse := performJSONRequest(t, app, http.MethodPost, path, map[string]string{"date": today})
	defer firstResponse.Body.Close()
	if firstResponse.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201 on first toggle, got %d", firstResponse.StatusCode)
	}
	firstPayload := struct {
		CheckIn checkInView `json:"checkin"`
		Checked bool        `json:"checked"`
	}{}
	decodeJSONBody(t, firstResponse.Body, &firstPayload)
	if !firstPayload.Checked || firstPayload.CheckIn.Date != today {
		t.Fatalf("expected checked=true for %s, got %+v", today, firstPayload)
	}

	secondResponse := performJSONRequest(t, app, http.MethodPost, path, map[string]string{"date": today})
	defer secondResponse.Body.Close()
	if secondResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 on toggle-off, got %d", secondResponse.StatusCode)
	}
	secondPayload := struct {
		Message string `json:"message"`
		Checked bool   `json:"checked"`
	}{}
	decodeJSONBody(t, secondResponse.Body, &secondPayload)
	if secondPayload.Checked {
		t.Fatalf("expected checked=false after toggle-off, got %+v", secondPayload)
	}

	listResponse := performJSONRequest(t, app, http.MethodGet, "/api/habits", nil)
	defer listResponse.Body.Close()
	habits := []habitView{}
	decodeJSONBody(t, listResponse.Body, &habits)
	if len(habits[0].CheckIns) != 0 {
		t.Fatalf("expected no check-ins after toggle-off, got %v", habits[0].CheckIns)
	}
}

func TestToggleCheckInRequiresDate(t *testing.T) {
	app, _ := newHabitTestApp(t)

	habit := createTestHabit(t, app, "Run", "fitness", "2026-08-01")
	response := performJSONRequest(t, app, http.MethodPost,
		fmt.Sprintf("/api/habits/%d/checkin", habit.ID), map[string]string{})
	defer response.Body.Close()

	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}
	if message := readAPIError(t, response.Body); message != "Date is required" {
		t.Fatalf("expected date required error, got %q", message)
	}
}

func TestToggleCheckInRejectsMalformedDate(t *testing.T) {
	app, _ := newHabitTestApp(t)

	habit := createTestHabit(t, app, "Run", "fitness", "2026-08-01")
	response := performJSONRequest(t, app, http.MethodPost,
		fmt.Sprintf("/api/habits/%d/checkin", habit.ID), map[string]string{"date": "08/15/2026"})
	defer response.Body.Close()

	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}
}

func TestToggleCheckInRejectsUnknownHabit(t *testing.T) {
	app, _ := newHabitTestApp(t)

	response := performJSONRequest(t, app, http.MethodPost, "/api/habits/42/checkin",
		map[string]string{"date": "2026-08-15"})
	defer response.Body.Close()

	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", response.StatusCode)
	}
}
