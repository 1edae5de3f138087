// Package itinerary holds the trip reference data compiled into the binary.
package itinerary

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dafibh/tabi/tabi-backend/internal/domain"
)

//go:embed data/trip.json
var tripJSON []byte

var (
	loadOnce sync.Once
	trip     *domain.Trip
	loadErr  error
)

// Load parses the embedded dataset once and returns the shared copy.
// Callers must treat the result as read-only.
func Load() (*domain.Trip, error) {
	loadOnce.Do(func() {
		trip, loadErr = Parse(tripJSON)
	})
	return trip, loadErr
}

// Parse decodes and checks a trip dataset
func Parse(data []byte) (*domain.Trip, error) {
	var t domain.Trip
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to decode trip dataset: %w", err)
	}
	if err := validate(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

func validate(t *domain.Trip) error {
	seen := make(map[string]bool)
	check := func(acts []domain.Activity) error {
		for _, a := range acts {
			if a.ID == "" {
				return fmt.Errorf("activity %q has no id", a.Title)
			}
			if seen[a.ID] {
				return fmt.Errorf("duplicate activity id %q", a.ID)
			}
			seen[a.ID] = true
		}
		return nil
	}

	for _, d := range t.Days {
		if err := check(d.Activities); err != nil {
			return err
		}
	}
	od := t.OptionalDay
	for _, acts := range [][]domain.Activity{od.OptionA, od.OptionB, od.Activities} {
		if err := check(acts); err != nil {
			return err
		}
	}

	spots := make(map[string]bool)
	for _, s := range t.Spots {
		if spots[s.ID] {
			return fmt.Errorf("duplicate spot id %q", s.ID)
		}
		if !s.Location.Valid() {
			return fmt.Errorf("spot %q has invalid coordinates", s.ID)
		}
		spots[s.ID] = true
	}
	return nil
}
