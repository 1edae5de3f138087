package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dafibh/tabi/tabi-backend/internal/domain"
	"github.com/dafibh/tabi/tabi-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// InfoHandler serves the trip reference data and the spot distance check
type InfoHandler struct {
	trip     *domain.Trip
	distance *service.DistanceService
	links    *service.LinkService
}

// NewInfoHandler creates a new InfoHandler
func NewInfoHandler(trip *domain.Trip, distance *service.DistanceService, links *service.LinkService) *InfoHandler {
	return &InfoHandler{trip: trip, distance: distance, links: links}
}

// SpotResponse is a saved spot with its map link
type SpotResponse struct {
	domain.SavedSpot
	MapURL string `json:"mapUrl"`
}

// InfoResponse is the trip reference sheet
type InfoResponse struct {
	Flights  []domain.Flight  `json:"flights"`
	Hotels   []domain.Hotel   `json:"hotels"`
	Spots    []SpotResponse   `json:"spots"`
	Contacts []domain.Contact `json:"contacts"`
}

// DistanceResponse is the outcome of a distance check. When Available is
// false only Message is set.
type DistanceResponse struct {
	Available  bool                `json:"available"`
	SpotID     string              `json:"spotId,omitempty"`
	DistanceKm *float64            `json:"distanceKm,omitempty"`
	Nearby     bool                `json:"nearby"`
	Position   *domain.Coordinates `json:"position,omitempty"`
	Message    string              `json:"message"`
}

// GetInfo godoc
// @Summary Get trip reference data
// @Tags info
// @Produce json
// @Success 200 {object} InfoResponse
// @Router /info [get]
func (h *InfoHandler) GetInfo(c echo.Context) error {
	spots := make([]SpotResponse, 0, len(h.trip.Spots))
	for _, s := range h.trip.Spots {
		spots = append(spots, SpotResponse{SavedSpot: s, MapURL: h.links.MapCoordinatesURL(s.Location)})
	}
	return c.JSON(http.StatusOK, InfoResponse{
		Flights:  h.trip.Flights,
		Hotels:   h.trip.Hotels,
		Spots:    spots,
		Contacts: h.trip.Contacts,
	})
}

// SpotDistance godoc
// @Summary Check the distance to a saved spot
// @Description lat and lng are one position sample from the device. Omit both when the device cannot locate itself.
// @Tags info
// @Produce json
// @Param id path string true "Spot ID"
// @Param lat query number false "Latitude"
// @Param lng query number false "Longitude"
// @Success 200 {object} DistanceResponse
// @Failure 404 {object} ProblemDetails
// @Router /spots/{id}/distance [get]
func (h *InfoHandler) SpotDistance(c echo.Context) error {
	report, err := h.distance.Check(c.Request().Context(), c.Param("id"), positionFromQuery(c))
	if err != nil {
		var locErr *domain.LocationError
		if errors.As(err, &locErr) {
			return c.JSON(http.StatusOK, DistanceResponse{Available: false, Message: locErr.Message})
		}
		if errors.Is(err, domain.ErrSpotNotFound) {
			return NewNotFoundError(c, "Spot not found")
		}
		log.Error().Err(err).Str("spot_id", c.Param("id")).Msg("Failed to check distance")
		return NewInternalError(c, "Failed to check distance")
	}

	return c.JSON(http.StatusOK, DistanceResponse{
		Available:  true,
		SpotID:     report.SpotID,
		DistanceKm: &report.DistanceKm,
		Nearby:     report.Nearby,
		Position:   &report.Position,
		Message:    report.Message,
	})
}

// positionFromQuery turns the lat and lng parameters into a position
// source. No parameters means no capability; unusable ones mean a failed
// sample.
func positionFromQuery(c echo.Context) service.PositionSource {
	latRaw, lngRaw := c.QueryParam("lat"), c.QueryParam("lng")
	if latRaw == "" && lngRaw == "" {
		return nil
	}
	return service.PositionFunc(func(context.Context) (domain.Coordinates, error) {
		lat, err := strconv.ParseFloat(latRaw, 64)
		if err != nil {
			return domain.Coordinates{}, fmt.Errorf("invalid latitude %q", latRaw)
		}
		lng, err := strconv.ParseFloat(lngRaw, 64)
		if err != nil {
			return domain.Coordinates{}, fmt.Errorf("invalid longitude %q", lngRaw)
		}
		return domain.Coordinates{Lat: lat, Lng: lng}, nil
	})
}
