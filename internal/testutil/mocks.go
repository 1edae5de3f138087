package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/dafibh/tabi/tabi-backend/internal/domain"
)

// MockSlotStore is an in-memory implementation of domain.SlotStore
type MockSlotStore struct {
	mu     sync.Mutex
	Slots  map[string]string
	Writes int

	GetErr    error
	SetErr    error
	DeleteErr error
}

// NewMockSlotStore creates an empty MockSlotStore
func NewMockSlotStore() *MockSlotStore {
	return &MockSlotStore{Slots: make(map[string]string)}
}

// Get returns the stored value or domain.ErrSlotNotFound
func (m *MockSlotStore) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return "", m.GetErr
	}
	v, ok := m.Slots[key]
	if !ok {
		return "", domain.ErrSlotNotFound
	}
	return v, nil
}

// Set stores a value
func (m *MockSlotStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetErr != nil {
		return m.SetErr
	}
	m.Slots[key] = value
	m.Writes++
	return nil
}

// Delete removes a value
func (m *MockSlotStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	delete(m.Slots, key)
	return nil
}

// Value returns the raw stored value for assertions
func (m *MockSlotStore) Value(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.Slots[key]
	return v, ok
}

// FixedPosition is a position source that always reports the same sample
type FixedPosition struct {
	Position domain.Coordinates
	Err      error
	Calls    int
}

// CurrentPosition returns the fixed sample or the configured error
func (f *FixedPosition) CurrentPosition(context.Context) (domain.Coordinates, error) {
	f.Calls++
	if f.Err != nil {
		return domain.Coordinates{}, f.Err
	}
	return f.Position, nil
}

// NewTrip builds a small trip dataset for tests
func NewTrip() *domain.Trip {
	act := func(id, title string) domain.Activity {
		return domain.Activity{
			ID:          id,
			Time:        "10:00",
			Title:       title,
			Description: fmt.Sprintf("%s description", title),
			Type:        domain.ActivitySpot,
		}
	}

	return &domain.Trip{
		Title: "Test Trip",
		Days: []domain.DayPlan{
			{ID: "day1", Date: "11/28", Weekday: "五", Weather: domain.StaticSunny, WeatherTemp: "16°C",
				Activities: []domain.Activity{act("d1-a", "Airport"), act("d1-b", "Ramen")}},
			{ID: "day2", Date: "11/29", Weekday: "六", Weather: domain.StaticRainy, WeatherTemp: "12°C",
				Activities: []domain.Activity{act("d2-a", "Shrine")}},
		},
		OptionalDay: domain.OptionalDay{
			DayPlan: domain.DayPlan{ID: "day3", Date: "11/30", Weekday: "日", Weather: domain.StaticCloudy,
				Activities: []domain.Activity{act("d3-common", "Station")}},
			OptionLabels: map[domain.DayOption]string{domain.DayOptionA: "Park", domain.DayOptionB: "Rocks"},
			OptionA:      []domain.Activity{act("d3-a", "Park")},
			OptionB:      []domain.Activity{act("d3-b", "Rocks")},
		},
		Spots: []domain.SavedSpot{
			{ID: "spot-arch", Name: "Museum", Location: domain.Coordinates{Lat: 33.5913, Lng: 130.4027}, Architect: "Emilio Ambasz"},
			{ID: "spot-plain", Name: "Market", Location: domain.Coordinates{Lat: 33.5851, Lng: 130.4025}},
		},
		Phrases: []domain.Phrase{{Label: "toilet", CN: "廁所", JP: "お手洗い", Romaji: "otearai"}},
	}
}
