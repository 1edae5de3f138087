package service

import (
	"context"
	"errors"
	"testing"

	"github.com/dafibh/tabi/tabi-backend/internal/domain"
	"github.com/dafibh/tabi/tabi-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceService_ArchitectNearby(t *testing.T) {
	svc := NewDistanceService(testutil.NewTrip())
	source := &testutil.FixedPosition{Position: domain.Coordinates{Lat: 33.5913, Lng: 130.4027}}

	report, err := svc.Check(context.Background(), "spot-arch", source)
	require.NoError(t, err)
	assert.True(t, report.Nearby)
	assert.Equal(t, 0.0, report.DistanceKm)
	assert.Equal(t, "📍 建築迷注意！\n您已接近 Emilio Ambasz 的作品 (0.0 km)", report.Message)
	assert.Equal(t, 1, source.Calls)
}

func TestDistanceService_PlainNearby(t *testing.T) {
	svc := NewDistanceService(testutil.NewTrip())
	// About 1.1 km north of the market
	source := &testutil.FixedPosition{Position: domain.Coordinates{Lat: 33.5951, Lng: 130.4025}}

	report, err := svc.Check(context.Background(), "spot-plain", source)
	require.NoError(t, err)
	assert.True(t, report.Nearby)
	assert.Equal(t, "快到了！距離約 1.1 公里", report.Message)
}

func TestDistanceService_FarAway(t *testing.T) {
	svc := NewDistanceService(testutil.NewTrip())
	// Dazaifu is well outside the threshold
	source := &testutil.FixedPosition{Position: domain.Coordinates{Lat: 33.5215, Lng: 130.5349}}

	report, err := svc.Check(context.Background(), "spot-arch", source)
	require.NoError(t, err)
	assert.False(t, report.Nearby)
	assert.Greater(t, report.DistanceKm, 10.0)
	assert.Regexp(t, `^距離約 \d+\.\d 公里$`, report.Message)
}

func TestDistanceService_NoCapability(t *testing.T) {
	svc := NewDistanceService(testutil.NewTrip())

	_, err := svc.Check(context.Background(), "spot-arch", nil)
	require.ErrorIs(t, err, domain.ErrLocationUnavailable)

	var locErr *domain.LocationError
	require.True(t, errors.As(err, &locErr))
	assert.Equal(t, "您的瀏覽器不支援定位功能。", locErr.Message)
}

func TestDistanceService_SampleFailsOnce(t *testing.T) {
	svc := NewDistanceService(testutil.NewTrip())
	denied := errors.New("permission denied")
	source := &testutil.FixedPosition{Err: denied}

	_, err := svc.Check(context.Background(), "spot-plain", source)
	require.ErrorIs(t, err, domain.ErrLocationUnavailable)
	assert.ErrorIs(t, err, denied)
	assert.Equal(t, 1, source.Calls)

	var locErr *domain.LocationError
	require.True(t, errors.As(err, &locErr))
	assert.Equal(t, "無法獲取目前位置。", locErr.Message)
}

func TestDistanceService_InvalidSample(t *testing.T) {
	svc := NewDistanceService(testutil.NewTrip())
	source := &testutil.FixedPosition{Position: domain.Coordinates{Lat: 200, Lng: 0}}

	_, err := svc.Check(context.Background(), "spot-plain", source)
	assert.ErrorIs(t, err, domain.ErrLocationUnavailable)
}

func TestDistanceService_UnknownSpot(t *testing.T) {
	svc := NewDistanceService(testutil.NewTrip())
	source := &testutil.FixedPosition{}

	_, err := svc.Check(context.Background(), "missing", source)
	assert.ErrorIs(t, err, domain.ErrSpotNotFound)
	assert.Equal(t, 0, source.Calls)
}

func TestPositionFunc(t *testing.T) {
	var source PositionSource = PositionFunc(func(context.Context) (domain.Coordinates, error) {
		return domain.Coordinates{Lat: 1, Lng: 2}, nil
	})

	pos, err := source.CurrentPosition(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Coordinates{Lat: 1, Lng: 2}, pos)
}
