package service

import (
	"context"
	"fmt"

	"github.com/dafibh/tabi/tabi-backend/internal/domain"
	"github.com/rs/zerolog/log"
)

// User-facing proximity messages
const (
	msgNoGeolocation   = "您的瀏覽器不支援定位功能。"
	msgPositionFailed  = "無法獲取目前位置。"
	msgArchitectNearby = "📍 建築迷注意！\n您已接近 %s 的作品 (%.1f km)"
	msgAlmostThere     = "快到了！距離約 %.1f 公里"
	msgDistance        = "距離約 %.1f 公里"
)

// PositionSource supplies a single geolocation sample
type PositionSource interface {
	CurrentPosition(ctx context.Context) (domain.Coordinates, error)
}

// PositionFunc adapts a function to PositionSource
type PositionFunc func(ctx context.Context) (domain.Coordinates, error)

// CurrentPosition calls f
func (f PositionFunc) CurrentPosition(ctx context.Context) (domain.Coordinates, error) {
	return f(ctx)
}

// ProximityReport is the outcome of one distance check
type ProximityReport struct {
	SpotID     string             `json:"spotId"`
	DistanceKm float64            `json:"distanceKm"`
	Nearby     bool               `json:"nearby"`
	Position   domain.Coordinates `json:"position"`
	Message    string             `json:"message"`
}

// DistanceService compares one position sample with a saved spot. Each
// call is independent: nothing is cached and nothing is retried.
type DistanceService struct {
	trip *domain.Trip
}

// NewDistanceService creates a new DistanceService
func NewDistanceService(trip *domain.Trip) *DistanceService {
	return &DistanceService{trip: trip}
}

// Check samples source once and reports the distance to the spot. A nil
// source means no positioning capability. Positioning failures come back
// as *domain.LocationError carrying the message to show.
func (s *DistanceService) Check(ctx context.Context, spotID string, source PositionSource) (*ProximityReport, error) {
	spot, ok := s.trip.FindSpot(spotID)
	if !ok {
		return nil, domain.ErrSpotNotFound
	}

	if source == nil {
		return nil, &domain.LocationError{Message: msgNoGeolocation}
	}

	pos, err := source.CurrentPosition(ctx)
	if err != nil {
		log.Warn().Err(err).Str("spot_id", spotID).Msg("Position sample failed")
		return nil, &domain.LocationError{Message: msgPositionFailed, Cause: err}
	}
	if !pos.Valid() {
		return nil, &domain.LocationError{Message: msgPositionFailed, Cause: fmt.Errorf("invalid position %v", pos)}
	}

	d := domain.Haversine(pos, spot.Location)
	return &ProximityReport{
		SpotID:     spotID,
		DistanceKm: d,
		Nearby:     d < domain.ProximityThresholdKm,
		Position:   pos,
		Message:    proximityMessage(spot, d),
	}, nil
}

func proximityMessage(spot domain.SavedSpot, d float64) string {
	if d < domain.ProximityThresholdKm {
		if spot.Architect != "" {
			return fmt.Sprintf(msgArchitectNearby, spot.Architect, d)
		}
		return fmt.Sprintf(msgAlmostThere, d)
	}
	return fmt.Sprintf(msgDistance, d)
}
