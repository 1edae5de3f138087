package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/dafibh/tabi/tabi-backend/internal/domain"
	"github.com/dafibh/tabi/tabi-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ItineraryHandler handles itinerary and per-activity override requests
type ItineraryHandler struct {
	itinerary   *service.ItineraryService
	weather     *service.WeatherService
	attachments *service.AttachmentService
}

// NewItineraryHandler creates a new ItineraryHandler. weather may be nil
// when live forecasts are disabled.
func NewItineraryHandler(itinerary *service.ItineraryService, weather *service.WeatherService, attachments *service.AttachmentService) *ItineraryHandler {
	return &ItineraryHandler{
		itinerary:   itinerary,
		weather:     weather,
		attachments: attachments,
	}
}

// ItineraryResponse is the day-by-day plan
type ItineraryResponse struct {
	Title        string                      `json:"title"`
	Subtitle     string                      `json:"subtitle"`
	DateRange    string                      `json:"dateRange"`
	Option       domain.DayOption            `json:"option"`
	OptionLabels map[domain.DayOption]string `json:"optionLabels"`
	Days         []domain.DayView            `json:"days"`
}

// UpdateCommentRequest represents the comment request body
type UpdateCommentRequest struct {
	Comment string `json:"comment"`
}

// WeatherResponse is the live forecast, empty when unavailable
type WeatherResponse struct {
	Live     bool                   `json:"live"`
	Forecast []domain.DailyForecast `json:"forecast"`
}

func (h *ItineraryHandler) forecast() []domain.DailyForecast {
	if h.weather == nil {
		return nil
	}
	return h.weather.Forecast()
}

// GetItinerary godoc
// @Summary Get the itinerary
// @Tags itinerary
// @Produce json
// @Param option query string false "Optional day choice" Enums(A, B)
// @Param live query bool false "Merge the live forecast"
// @Success 200 {object} ItineraryResponse
// @Router /itinerary [get]
func (h *ItineraryHandler) GetItinerary(c echo.Context) error {
	opt := domain.ParseDayOption(c.QueryParam("option"))

	var forecast []domain.DailyForecast
	if c.QueryParam("live") == "true" {
		forecast = h.forecast()
	}

	trip := h.itinerary.Trip()
	return c.JSON(http.StatusOK, ItineraryResponse{
		Title:        trip.Title,
		Subtitle:     trip.Subtitle,
		DateRange:    trip.DateRange,
		Option:       opt,
		OptionLabels: trip.OptionalDay.OptionLabels,
		Days:         h.itinerary.Days(opt, forecast),
	})
}

// GetWeather godoc
// @Summary Get the live forecast
// @Description Empty when the forecast could not be fetched; static weather applies then
// @Tags itinerary
// @Produce json
// @Success 200 {object} WeatherResponse
// @Router /weather [get]
func (h *ItineraryHandler) GetWeather(c echo.Context) error {
	forecast := h.forecast()
	if forecast == nil {
		forecast = []domain.DailyForecast{}
	}
	return c.JSON(http.StatusOK, WeatherResponse{Live: len(forecast) > 0, Forecast: forecast})
}

// GetItem godoc
// @Summary Get one activity
// @Tags itinerary
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {object} domain.ActivityView
// @Failure 404 {object} ProblemDetails
// @Router /itinerary/items/{id} [get]
func (h *ItineraryHandler) GetItem(c echo.Context) error {
	view, err := h.itinerary.Activity(c.Param("id"))
	if err != nil {
		return h.handleError(c, err, "Failed to get activity")
	}
	return c.JSON(http.StatusOK, view)
}

// UpdateItem godoc
// @Summary Edit an activity
// @Description Blank fields fall back to the original itinerary text
// @Tags itinerary
// @Accept json
// @Produce json
// @Param id path string true "Activity ID"
// @Param request body domain.ActivityEdit true "Edited fields"
// @Success 200 {object} domain.ActivityView
// @Failure 404 {object} ProblemDetails
// @Router /itinerary/items/{id} [put]
func (h *ItineraryHandler) UpdateItem(c echo.Context) error {
	var req domain.ActivityEdit
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	view, err := h.itinerary.Edit(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return h.handleError(c, err, "Failed to save activity")
	}
	return c.JSON(http.StatusOK, view)
}

// UpdateComment godoc
// @Summary Set an activity comment
// @Tags itinerary
// @Accept json
// @Produce json
// @Param id path string true "Activity ID"
// @Param request body UpdateCommentRequest true "Comment"
// @Success 200 {object} domain.ActivityView
// @Failure 404 {object} ProblemDetails
// @Router /itinerary/items/{id}/comment [put]
func (h *ItineraryHandler) UpdateComment(c echo.Context) error {
	var req UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	view, err := h.itinerary.SetComment(c.Request().Context(), c.Param("id"), req.Comment)
	if err != nil {
		return h.handleError(c, err, "Failed to save comment")
	}
	return c.JSON(http.StatusOK, view)
}

// UploadImage godoc
// @Summary Attach a photo to an activity
// @Description Only the newest three photos are kept
// @Tags itinerary
// @Accept mpfd
// @Produce json
// @Param id path string true "Activity ID"
// @Param image formData file true "JPEG or PNG"
// @Success 201 {object} domain.ActivityView
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /itinerary/items/{id}/images [post]
func (h *ItineraryHandler) UploadImage(c echo.Context) error {
	id := c.Param("id")
	if _, err := h.itinerary.Activity(id); err != nil {
		return h.handleError(c, err, "Failed to get activity")
	}

	file, err := c.FormFile("image")
	if err != nil {
		return NewValidationError(c, "No file provided", []ValidationError{
			{Field: "image", Message: "File is required"},
		})
	}

	src, err := file.Open()
	if err != nil {
		log.Error().Err(err).Msg("Failed to open uploaded file")
		return NewInternalError(c, "Failed to process file")
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, service.MaxImageSize+1))
	if err != nil {
		log.Error().Err(err).Msg("Failed to read uploaded file")
		return NewInternalError(c, "Failed to read file")
	}

	dataURL, err := h.attachments.Encode(data, file.Filename)
	if err != nil {
		switch err {
		case service.ErrImageTooLarge:
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "image", Message: "File too large. Maximum size is 5MB"},
			})
		case service.ErrInvalidFormat:
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "image", Message: "Invalid format. Supported: JPEG, PNG"},
			})
		case service.ErrImageTooSmall:
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "image", Message: "Image too small. Minimum 50x50 pixels"},
			})
		case service.ErrInvalidImageData:
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "image", Message: "Invalid image data"},
			})
		default:
			log.Error().Err(err).Str("activity_id", id).Msg("Failed to encode image")
			return NewInternalError(c, "Failed to process image")
		}
	}

	view, err := h.itinerary.AddImage(c.Request().Context(), id, dataURL)
	if err != nil {
		return h.handleError(c, err, "Failed to save image")
	}

	log.Info().Str("activity_id", id).Int("images", len(view.Images)).Msg("Image attached")
	return c.JSON(http.StatusCreated, view)
}

// DeleteImage godoc
// @Summary Remove an activity photo
// @Tags itinerary
// @Produce json
// @Param id path string true "Activity ID"
// @Param index path int true "Photo position"
// @Success 200 {object} domain.ActivityView
// @Failure 404 {object} ProblemDetails
// @Router /itinerary/items/{id}/images/{index} [delete]
func (h *ItineraryHandler) DeleteImage(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return NewValidationError(c, "Invalid image index", []ValidationError{
			{Field: "index", Message: "Must be an integer"},
		})
	}

	view, err := h.itinerary.RemoveImage(c.Request().Context(), c.Param("id"), index)
	if err != nil {
		return h.handleError(c, err, "Failed to remove image")
	}
	return c.JSON(http.StatusOK, view)
}

func (h *ItineraryHandler) handleError(c echo.Context, err error, msg string) error {
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		return NewNotFoundError(c, "Activity not found")
	case errors.Is(err, domain.ErrImageNotFound):
		return NewNotFoundError(c, "Image not found")
	case errors.Is(err, domain.ErrPersistenceUnavailable):
		return NewServiceUnavailableError(c, "Changes could not be saved")
	}
	log.Error().Err(err).Str("activity_id", c.Param("id")).Msg(msg)
	return NewInternalError(c, msg)
}
