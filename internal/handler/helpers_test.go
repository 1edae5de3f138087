package handler

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/dafibh/tabi/tabi-backend/internal/service"
	"github.com/dafibh/tabi/tabi-backend/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	e         *echo.Echo
	slots     *testutil.MockSlotStore
	ledger    *service.LedgerService
	itinerary *service.ItineraryService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	trip := testutil.NewTrip()
	slots := testutil.NewMockSlotStore()
	links := service.NewLinkService()

	ledger := service.NewLedgerService(slots, nil)
	itinerary := service.NewItineraryService(trip, slots, links)

	e := echo.New()
	RegisterRoutes(e, nil, Handlers{
		Shell:     NewShellHandler(service.NewShellService()),
		Itinerary: NewItineraryHandler(itinerary, nil, service.NewAttachmentService()),
		Info:      NewInfoHandler(trip, service.NewDistanceService(trip), links),
		Ledger:    NewLedgerHandler(ledger),
		Tools:     NewToolsHandler(links, trip.Phrases),
	})

	return &testApp{e: e, slots: slots, ledger: ledger, itinerary: itinerary}
}

func (a *testApp) do(method, target string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, status int) {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
}

