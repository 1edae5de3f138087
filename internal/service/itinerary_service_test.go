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

func newTestItinerary() (*ItineraryService, *testutil.MockSlotStore) {
	slots := testutil.NewMockSlotStore()
	return NewItineraryService(testutil.NewTrip(), slots, NewLinkService()), slots
}

func TestItineraryService_DaysWithoutOverrides(t *testing.T) {
	svc, _ := newTestItinerary()

	days := svc.Days(domain.DayOptionA, nil)
	require.Len(t, days, 3)
	assert.Equal(t, 1, days[0].Index)
	assert.Equal(t, "Airport", days[0].Activities[0].Title)
	assert.Nil(t, days[0].Live)
	assert.Empty(t, days[0].Option)
	assert.Equal(t, domain.DayOptionA, days[2].Option)
	assert.Equal(t, "d3-a", days[2].Activities[0].ID)
	assert.Equal(t, "d3-common", days[2].Activities[1].ID)
}

func TestItineraryService_DaysOptionB(t *testing.T) {
	svc, _ := newTestItinerary()

	days := svc.Days(domain.DayOptionB, nil)
	assert.Equal(t, domain.DayOptionB, days[2].Option)
	assert.Equal(t, "d3-b", days[2].Activities[0].ID)
}

func TestItineraryService_DaysMergeForecastByIndex(t *testing.T) {
	svc, _ := newTestItinerary()
	forecast := []domain.DailyForecast{
		{Date: "2025-11-28", Code: 0, TempMax: 18, TempMin: 9, Category: domain.WeatherSunny},
		{Date: "2025-11-29", Code: 61, TempMax: 14, TempMin: 8, Category: domain.WeatherRain},
	}

	days := svc.Days(domain.DayOptionA, forecast)
	require.NotNil(t, days[0].Live)
	assert.Equal(t, domain.WeatherSunny, days[0].Live.Category)
	require.NotNil(t, days[1].Live)
	assert.Equal(t, 61, days[1].Live.Code)
	assert.Nil(t, days[2].Live)
	assert.Equal(t, domain.StaticCloudy, days[2].Weather)
}

func TestItineraryService_EditAndReload(t *testing.T) {
	svc, slots := newTestItinerary()
	ctx := context.Background()

	view, err := svc.Edit(ctx, "d1-b", domain.ActivityEdit{Title: "Ichiran", Time: "12:30", OpeningHours: "24h"})
	require.NoError(t, err)
	assert.Equal(t, "Ichiran", view.Title)
	assert.Equal(t, "12:30", view.Time)
	assert.Equal(t, "Ramen description", view.Description)

	reloaded := NewItineraryService(testutil.NewTrip(), slots, NewLinkService())
	reloaded.Load(ctx)

	got, err := reloaded.Activity("d1-b")
	require.NoError(t, err)
	assert.Equal(t, "Ichiran", got.Title)
	assert.Equal(t, "24h", got.OpeningHours)
}

func TestItineraryService_CommentAndImages(t *testing.T) {
	svc, _ := newTestItinerary()
	ctx := context.Background()

	_, err := svc.SetComment(ctx, "d2-a", "bring coins")
	require.NoError(t, err)

	for _, img := range []string{"img1", "img2", "img3", "img4"} {
		_, err = svc.AddImage(ctx, "d2-a", img)
		require.NoError(t, err)
	}

	view, err := svc.Activity("d2-a")
	require.NoError(t, err)
	assert.Equal(t, "bring coins", view.Comment)
	assert.Equal(t, []string{"img2", "img3", "img4"}, view.Images)

	view, err = svc.RemoveImage(ctx, "d2-a", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"img3", "img4"}, view.Images)

	_, err = svc.RemoveImage(ctx, "d2-a", 5)
	assert.ErrorIs(t, err, domain.ErrImageNotFound)
}

func TestItineraryService_ClearingEverythingDropsKey(t *testing.T) {
	svc, slots := newTestItinerary()
	ctx := context.Background()

	_, err := svc.SetComment(ctx, "d1-a", "gate B")
	require.NoError(t, err)
	assert.Contains(t, svc.overrides, "d1-a")

	_, err = svc.SetComment(ctx, "d1-a", "")
	require.NoError(t, err)
	assert.NotContains(t, svc.overrides, "d1-a")

	// Last override gone: the slot is removed rather than left as {}
	_, ok := slots.Value(domain.SlotItineraryOverrides)
	assert.False(t, ok)
}

func TestItineraryService_FailedDeleteKeepsState(t *testing.T) {
	svc, slots := newTestItinerary()
	ctx := context.Background()

	_, err := svc.SetComment(ctx, "d1-a", "gate B")
	require.NoError(t, err)

	slots.DeleteErr = errors.New("read-only")
	_, err = svc.SetComment(ctx, "d1-a", "")
	assert.ErrorIs(t, err, domain.ErrPersistenceUnavailable)
	assert.Equal(t, "gate B", svc.overrides["d1-a"].Comment)
}

func TestItineraryService_UnknownActivity(t *testing.T) {
	svc, slots := newTestItinerary()

	_, err := svc.Activity("nope")
	assert.ErrorIs(t, err, domain.ErrActivityNotFound)

	_, err = svc.SetComment(context.Background(), "nope", "x")
	assert.ErrorIs(t, err, domain.ErrActivityNotFound)
	assert.Equal(t, 0, slots.Writes)
}

func TestItineraryService_LoadKeepsStaleKeys(t *testing.T) {
	svc, slots := newTestItinerary()
	slots.Slots[domain.SlotItineraryOverrides] = `{"removed-activity":{"comment":"old"},"d1-a":{"title":"Fukuoka Airport"}}`

	svc.Load(context.Background())

	view, err := svc.Activity("d1-a")
	require.NoError(t, err)
	assert.Equal(t, "Fukuoka Airport", view.Title)
	assert.Contains(t, svc.overrides, "removed-activity")

	_, err = svc.SetComment(context.Background(), "d1-b", "x")
	require.NoError(t, err)
	raw, _ := slots.Value(domain.SlotItineraryOverrides)
	assert.Contains(t, raw, "removed-activity")
}

func TestItineraryService_LoadCorruptSlot(t *testing.T) {
	svc, slots := newTestItinerary()
	slots.Slots[domain.SlotItineraryOverrides] = "[1,2"

	svc.Load(context.Background())
	assert.Empty(t, svc.overrides)

	view, err := svc.Activity("d1-a")
	require.NoError(t, err)
	assert.Equal(t, "Airport", view.Title)
}

func TestItineraryService_FailedPersistKeepsState(t *testing.T) {
	svc, slots := newTestItinerary()
	slots.SetErr = errors.New("quota exceeded")

	_, err := svc.SetComment(context.Background(), "d1-a", "x")
	assert.ErrorIs(t, err, domain.ErrPersistenceUnavailable)
	assert.Empty(t, svc.overrides)
}
