package handler

import (
	"errors"
	"net/http"

	"github.com/dafibh/tabi/tabi-backend/internal/domain"
	"github.com/dafibh/tabi/tabi-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ToolsHandler serves the currency converter and translation helpers
type ToolsHandler struct {
	links   *service.LinkService
	phrases []domain.Phrase
}

// NewToolsHandler creates a new ToolsHandler
func NewToolsHandler(links *service.LinkService, phrases []domain.Phrase) *ToolsHandler {
	return &ToolsHandler{links: links, phrases: phrases}
}

// ConvertResponse is a JPY to TWD conversion
type ConvertResponse struct {
	JPY  string `json:"jpy"`
	TWD  int64  `json:"twd"`
	Rate string `json:"rate"`
}

// TranslateResponse carries the outbound translation link
type TranslateResponse struct {
	Mode service.TranslateMode `json:"mode"`
	Text string                `json:"text"`
	URL  string                `json:"url"`
}

// PhraseResponse is a preset phrase with a link that reads it aloud
type PhraseResponse struct {
	domain.Phrase
	TranslateURL string `json:"translateUrl"`
}

// Convert godoc
// @Summary Convert JPY to TWD
// @Description Blank or non-numeric input converts to 0
// @Tags tools
// @Produce json
// @Param jpy query string false "Amount in yen"
// @Success 200 {object} ConvertResponse
// @Router /convert [get]
func (h *ToolsHandler) Convert(c echo.Context) error {
	jpy := c.QueryParam("jpy")
	return c.JSON(http.StatusOK, ConvertResponse{
		JPY:  jpy,
		TWD:  domain.ConvertJPYText(jpy),
		Rate: domain.JPYToTWDRate.String(),
	})
}

// Translate godoc
// @Summary Build a translation link
// @Description Blank text yields an empty url
// @Tags tools
// @Produce json
// @Param mode query string true "Direction" Enums(jp-tw, tw-jp)
// @Param text query string false "Text to translate"
// @Success 200 {object} TranslateResponse
// @Failure 400 {object} ProblemDetails
// @Router /translate [get]
func (h *ToolsHandler) Translate(c echo.Context) error {
	mode := service.TranslateMode(c.QueryParam("mode"))
	text := c.QueryParam("text")

	link, err := h.links.TranslateURL(mode, text)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownTranslateMode) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "mode", Message: "Must be one of: jp-tw, tw-jp"},
			})
		}
		log.Error().Err(err).Msg("Failed to build translate link")
		return NewInternalError(c, "Failed to build translate link")
	}

	return c.JSON(http.StatusOK, TranslateResponse{Mode: mode, Text: text, URL: link})
}

// Phrases godoc
// @Summary List preset phrases
// @Tags tools
// @Produce json
// @Success 200 {array} PhraseResponse
// @Router /phrases [get]
func (h *ToolsHandler) Phrases(c echo.Context) error {
	out := make([]PhraseResponse, 0, len(h.phrases))
	for _, p := range h.phrases {
		link, err := h.links.TranslateURL(service.TranslateJapaneseToChinese, p.JP)
		if err != nil {
			log.Error().Err(err).Str("phrase", p.Label).Msg("Failed to build phrase link")
			return NewInternalError(c, "Failed to list phrases")
		}
		out = append(out, PhraseResponse{Phrase: p, TranslateURL: link})
	}
	return c.JSON(http.StatusOK, out)
}
