package client

import (
	"context"
	"log"
	"time"

	"github.com/terraincognita07/habithero/internal/models"
	"github.com/terraincognita07/habithero/internal/services"
)

// AppState owns the in-memory habit list and keeps it consistent with the
// store. The store stays the source of truth: after a check-in or note write
// the whole list is re-fetched, delete removes locally by id, and create is
// the one action that appends the store's returned record without a
// re-fetch. Failed writes never touch the local snapshot.
type AppState struct {
	store    *StoreClient
	location *time.Location
	habits   []models.Habit
}

func NewAppState(store *StoreClient, location *time.Location) *AppState {
	if location == nil {
		location = time.UTC
	}
	return &AppState{
		store:    store,
		location: location,
		habits:   make([]models.Habit, 0),
	}
}

// Refresh replaces the habit list with the store's current state.
func (state *AppState) Refresh(ctx context.Context) error {
	wireHabits, err := state.store.ListHabits(ctx)
	if err != nil {
		return err
	}
	state.habits = state.decodeHabits(wireHabits)
	return nil
}

// CreateHabit appends the created record locally; this is the one mutation
// that skips the full re-fetch. The store's rejection body passes through
// verbatim so it can be shown to the user.
func (state *AppState) CreateHabit(ctx context.Context, input CreateHabitInput) error {
	created, err := state.store.CreateHabit(ctx, input)
	if err != nil {
		return err
	}
	state.habits = append(state.habits, state.decodeHabit(created))
	return nil
}

func (state *AppState) ToggleCheckIn(ctx context.Context, habitID uint, date string) {
	if err := state.store.ToggleCheckIn(ctx, habitID, date); err != nil {
		log.Printf("check-in for habit %d failed: %v", habitID, err)
		return
	}
	state.refetchAfterMutation(ctx)
}

func (state *AppState) AddNote(ctx context.Context, habitID uint, text string) {
	if err := state.store.AddNote(ctx, habitID, text); err != nil {
		log.Printf("add note for habit %d failed: %v", habitID, err)
		return
	}
	state.refetchAfterMutation(ctx)
}

func (state *AppState) DeleteHabit(ctx context.Context, habitID uint) {
	if err := state.store.DeleteHabit(ctx, habitID); err != nil {
		log.Printf("delete habit %d failed: %v", habitID, err)
		return
	}

	remaining := make([]models.Habit, 0, len(state.habits))
	for _, habit := range state.habits {
		if habit.ID != habitID {
			remaining = append(remaining, habit)
		}
	}
	state.habits = remaining
}

func (state *AppState) Habits() []models.Habit {
	habits := make([]models.Habit, len(state.habits))
	copy(habits, state.habits)
	return habits
}

func (state *AppState) Dashboard(now time.Time) services.DashboardStats {
	return services.BuildDashboardStats(state.habits, now, state.location)
}

func (state *AppState) StatsFor(habitID uint, now time.Time) (services.HabitStats, bool) {
	for _, habit := range state.habits {
		if habit.ID == habitID {
			return services.BuildHabitStats(habit, now, state.location), true
		}
	}
	return services.HabitStats{}, false
}

func (state *AppState) refetchAfterMutation(ctx context.Context) {
	if err := state.Refresh(ctx); err != nil {
		// Prior snapshot stays; statistics keep reflecting the store's
		// last acknowledged state.
		log.Printf("habit list re-fetch failed: %v", err)
	}
}

func (state *AppState) decodeHabits(wireHabits []WireHabit) []models.Habit {
	habits := make([]models.Habit, 0, len(wireHabits))
	for _, wireHabit := range wireHabits {
		habits = append(habits, state.decodeHabit(wireHabit))
	}
	return habits
}

// decodeHabit tolerates missing or malformed fields: absent collections
// become empty, unparseable dates become zero values.
func (state *AppState) decodeHabit(wireHabit WireHabit) models.Habit {
	checkIns := make([]models.CheckIn, 0, len(wireHabit.CheckIns))
	for _, wireCheckIn := range wireHabit.CheckIns {
		day, ok := state.parseWireDate(wireCheckIn.Date)
		if !ok {
			continue
		}
		checkIns = append(checkIns, models.CheckIn{
			ID:      wireCheckIn.ID,
			HabitID: wireHabit.ID,
			Date:    day,
		})
	}

	notes := make([]models.Note, 0, len(wireHabit.Notes))
	for _, wireNote := range wireHabit.Notes {
		day, _ := state.parseWireDate(wireNote.Date)
		notes = append(notes, models.Note{
			ID:      wireNote.ID,
			HabitID: wireHabit.ID,
			Text:    wireNote.Text,
			Date:    day,
		})
	}

	startDate, _ := state.parseWireDate(wireHabit.StartDate)
	return models.Habit{
		ID:        wireHabit.ID,
		Name:      wireHabit.Name,
		Frequency: wireHabit.Frequency,
		Category:  wireHabit.Category,
		StartDate: startDate,
		CheckIns:  checkIns,
		Notes:     notes,
	}
}

func (state *AppState) parseWireDate(raw string) (time.Time, bool) {
	parsed, err := time.ParseInLocation(services.DayKeyLayout, raw, state.location)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}
