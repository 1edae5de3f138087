package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/dafibh/tabi/tabi-backend/internal/domain"
	"github.com/rs/zerolog/log"
)

// ItineraryService serves the trip dataset with the user's per-activity
// overrides merged in. All overrides live in one slot and are written as a
// unit.
type ItineraryService struct {
	trip  *domain.Trip
	slots domain.SlotStore
	links *LinkService

	mu        sync.Mutex
	overrides domain.OverrideState
}

// NewItineraryService creates an ItineraryService with no overrides. Call
// Load to restore the persisted ones.
func NewItineraryService(trip *domain.Trip, slots domain.SlotStore, links *LinkService) *ItineraryService {
	return &ItineraryService{
		trip:      trip,
		slots:     slots,
		links:     links,
		overrides: domain.OverrideState{},
	}
}

// Trip returns the read-only dataset
func (s *ItineraryService) Trip() *domain.Trip {
	return s.trip
}

// Load restores the override state. A missing or corrupt slot means no
// overrides.
func (s *ItineraryService) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.overrides = domain.OverrideState{}

	raw, err := s.slots.Get(ctx, domain.SlotItineraryOverrides)
	if err != nil {
		if !errors.Is(err, domain.ErrSlotNotFound) {
			log.Warn().Err(err).Str("slot", domain.SlotItineraryOverrides).Msg("Override slot unavailable, using dataset defaults")
		}
		return
	}

	var state domain.OverrideState
	if err := json.Unmarshal([]byte(raw), &state); err != nil || state == nil {
		log.Warn().Err(err).Str("slot", domain.SlotItineraryOverrides).Msg("Override slot corrupt, using dataset defaults")
		return
	}

	s.overrides = state
	log.Info().Int("overrides", len(state)).Msg("Itinerary overrides loaded")
}

// Days returns every day plan with overrides applied. When forecast is
// non-empty, day i carries forecast entry i as its live weather.
func (s *ItineraryService) Days(opt domain.DayOption, forecast []domain.DailyForecast) []domain.DayView {
	s.mu.Lock()
	defer s.mu.Unlock()

	plans := s.trip.Plans(opt)
	optionalIndex := len(plans) - 1

	views := make([]domain.DayView, 0, len(plans))
	for i, plan := range plans {
		view := domain.DayView{
			Index:       i + 1,
			ID:          plan.ID,
			Date:        plan.Date,
			Weekday:     plan.Weekday,
			Weather:     plan.Weather,
			WeatherTemp: plan.WeatherTemp,
			Activities:  make([]domain.ActivityView, 0, len(plan.Activities)),
		}
		if i == optionalIndex {
			view.Option = opt
		}
		if i < len(forecast) {
			live := forecast[i]
			view.Live = &live
		}
		for _, a := range plan.Activities {
			view.Activities = append(view.Activities, s.viewLocked(a))
		}
		views = append(views, view)
	}
	return views
}

// Activity returns one merged activity
func (s *ItineraryService) Activity(id string) (*domain.ActivityView, error) {
	a, ok := s.trip.FindActivity(id)
	if !ok {
		return nil, domain.ErrActivityNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	view := s.viewLocked(a)
	return &view, nil
}

// Edit saves the editable text fields of an activity. Blank fields fall
// back to the dataset value.
func (s *ItineraryService) Edit(ctx context.Context, id string, edit domain.ActivityEdit) (*domain.ActivityView, error) {
	return s.update(ctx, id, func(o *domain.ActivityOverride) error {
		o.Title = edit.Title
		o.Time = edit.Time
		o.OpeningHours = edit.OpeningHours
		o.Description = edit.Description
		return nil
	})
}

// SetComment replaces the free-text note of an activity
func (s *ItineraryService) SetComment(ctx context.Context, id, comment string) (*domain.ActivityView, error) {
	return s.update(ctx, id, func(o *domain.ActivityOverride) error {
		o.Comment = comment
		return nil
	})
}

// AddImage attaches an encoded image, keeping the newest ones
func (s *ItineraryService) AddImage(ctx context.Context, id, dataURL string) (*domain.ActivityView, error) {
	return s.update(ctx, id, func(o *domain.ActivityOverride) error {
		o.AddImage(dataURL)
		return nil
	})
}

// RemoveImage drops the image at index
func (s *ItineraryService) RemoveImage(ctx context.Context, id string, index int) (*domain.ActivityView, error) {
	return s.update(ctx, id, func(o *domain.ActivityOverride) error {
		return o.RemoveImage(index)
	})
}

func (s *ItineraryService) update(ctx context.Context, id string, apply func(*domain.ActivityOverride) error) (*domain.ActivityView, error) {
	a, ok := s.trip.FindActivity(id)
	if !ok {
		return nil, domain.ErrActivityNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.overrides[id]
	current.Images = append([]string(nil), current.Images...)
	if err := apply(&current); err != nil {
		return nil, err
	}

	next := make(domain.OverrideState, len(s.overrides)+1)
	for k, v := range s.overrides {
		next[k] = v
	}
	if current.IsZero() {
		delete(next, id)
	} else {
		next[id] = current
	}

	if err := s.persistLocked(ctx, next); err != nil {
		log.Error().Err(err).Str("activity_id", id).Msg("Failed to persist itinerary overrides")
		return nil, err
	}
	s.overrides = next

	log.Info().Str("activity_id", id).Msg("Itinerary override saved")

	view := s.viewLocked(a)
	return &view, nil
}

// persistLocked writes the whole state, or deletes the slot once no
// override is left
func (s *ItineraryService) persistLocked(ctx context.Context, state domain.OverrideState) error {
	if len(state) == 0 {
		if err := s.slots.Delete(ctx, domain.SlotItineraryOverrides); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrPersistenceUnavailable, err)
		}
		return nil
	}

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode overrides: %w", err)
	}
	if err := s.slots.Set(ctx, domain.SlotItineraryOverrides, string(data)); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistenceUnavailable, err)
	}
	return nil
}

func (s *ItineraryService) viewLocked(a domain.Activity) domain.ActivityView {
	view := s.overrides[a.ID].Merge(a)
	if a.Location != nil && s.links != nil {
		view.MapURL = s.links.MapCoordinatesURL(*a.Location)
	}
	return view
}
