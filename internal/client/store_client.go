package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// wire shapes exchanged with the habit store.

type WireCheckIn struct {
	ID   uint   `json:"id"`
	Date string `json:"date"`
}

type WireNote struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
	Date string `json:"date"`
}

type WireHabit struct {
	ID        uint          `json:"id"`
	Name      string        `json:"name"`
	Frequency string        `json:"frequency"`
	Category  string        `json:"category"`
	StartDate string        `json:"start_date"`
	CheckIns  []WireCheckIn `json:"checkins"`
	Notes     []WireNote    `json:"notes"`
}

type CreateHabitInput struct {
	Name      string `json:"name"`
	Frequency string `json:"frequency"`
	Category  string `json:"category"`
	StartDate string `json:"start_date"`
}

// WriteRejectedError carries the store's response body verbatim so the
// create-habit flow can surface it unchanged.
type WriteRejectedError struct {
	StatusCode int
	Body       string
}

func (err *WriteRejectedError) Error() string {
	return err.Body
}

type StoreClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewStoreClient(baseURL string) *StoreClient {
	return &StoreClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (store *StoreClient) ListHabits(ctx context.Context) ([]WireHabit, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, store.baseURL+"/api/habits", nil)
	if err != nil {
		return nil, fmt.Errorf("build list request: %w", err)
	}

	response, err := store.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("fetch habits: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch habits: unexpected status %d", response.StatusCode)
	}

	habits := make([]WireHabit, 0)
	if err := json.NewDecoder(response.Body).Decode(&habits); err != nil {
		return nil, fmt.Errorf("decode habits: %w", err)
	}
	return habits, nil
}

func (store *StoreClient) CreateHabit(ctx context.Context, input CreateHabitInput) (WireHabit, error) {
	response, err := store.postJSON(ctx, "/api/habits", input)
	if err != nil {
		return WireHabit{}, err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusCreated {
		return WireHabit{}, rejectedWrite(response)
	}

	habit := WireHabit{}
	if err := json.NewDecoder(response.Body).Decode(&habit); err != nil {
		return WireHabit{}, fmt.Errorf("decode created habit: %w", err)
	}
	return habit, nil
}

// ToggleCheckIn posts a check-in date; the response body is ignored, the
// caller re-fetches the full list instead.
func (store *StoreClient) ToggleCheckIn(ctx context.Context, habitID uint, date string) error {
	response, err := store.postJSON(ctx, fmt.Sprintf("/api/habits/%d/checkin", habitID), map[string]string{"date": date})
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK && response.StatusCode != http.StatusCreated {
		return rejectedWrite(response)
	}
	return nil
}

func (store *StoreClient) AddNote(ctx context.Context, habitID uint, text string) error {
	response, err := store.postJSON(ctx, fmt.Sprintf("/api/habits/%d/notes", habitID), map[string]string{"text": text})
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusCreated {
		return rejectedWrite(response)
	}
	return nil
}

func (store *StoreClient) DeleteHabit(ctx context.Context, habitID uint) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodDelete, fmt.Sprintf("%s/api/habits/%d", store.baseURL, habitID), nil)
	if err != nil {
		return fmt.Errorf("build delete request: %w", err)
	}

	response, err := store.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("delete habit: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusNoContent && response.StatusCode != http.StatusOK {
		return rejectedWrite(response)
	}
	return nil
}

func (store *StoreClient) postJSON(ctx context.Context, path string, payload any) (*http.Response, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, store.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := store.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", path, err)
	}
	return response, nil
}

func rejectedWrite(response *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(response.Body, 64*1024))
	return &WriteRejectedError{
		StatusCode: response.StatusCode,
		Body:       strings.TrimSpace(string(body)),
	}
}
