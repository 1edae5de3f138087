package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dafibh/tabi/tabi-backend/internal/domain"
	"github.com/dafibh/tabi/tabi-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// maxImportSize bounds the import blob read from the request body
const maxImportSize = 2 * 1024 * 1024

// LedgerHandler handles expense ledger HTTP requests
type LedgerHandler struct {
	ledger *service.LedgerService
}

// NewLedgerHandler creates a new LedgerHandler
func NewLedgerHandler(ledger *service.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledger: ledger}
}

// flexibleString accepts a JSON string or a bare JSON number
type flexibleString string

func (f *flexibleString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexibleString(s)
		return nil
	}
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	*f = flexibleString(data)
	return nil
}

// CreateExpenseRequest represents the append expense request body
type CreateExpenseRequest struct {
	Title         string         `json:"title"`
	Amount        flexibleString `json:"amount" swaggertype:"string"`
	Category      string         `json:"category"`
	PaymentMethod string         `json:"paymentMethod"`
}

// LedgerResponse is the ledger with its derived summary
type LedgerResponse struct {
	Expenses []domain.Expense     `json:"expenses"`
	Summary  domain.LedgerSummary `json:"summary"`
}

// ImportPreviewResponse is returned when an import has not been confirmed
type ImportPreviewResponse struct {
	Title   string `json:"title"`
	Status  int    `json:"status"`
	Detail  string `json:"detail"`
	Records int    `json:"records"`
}

func (h *LedgerHandler) ledgerResponse() LedgerResponse {
	records := h.ledger.List()
	return LedgerResponse{Expenses: records, Summary: domain.Summarize(records)}
}

// ListExpenses godoc
// @Summary List expenses
// @Description Returns the ledger newest first with per-category totals
// @Tags expenses
// @Produce json
// @Success 200 {object} LedgerResponse
// @Router /expenses [get]
func (h *LedgerHandler) ListExpenses(c echo.Context) error {
	return c.JSON(http.StatusOK, h.ledgerResponse())
}

// CreateExpense godoc
// @Summary Append an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param request body CreateExpenseRequest true "Expense"
// @Success 201 {object} domain.Expense
// @Failure 400 {object} ProblemDetails
// @Failure 503 {object} ProblemDetails
// @Router /expenses [post]
func (h *LedgerHandler) CreateExpense(c echo.Context) error {
	var req CreateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	expense, err := h.ledger.Append(c.Request().Context(), domain.ExpenseInput{
		Title:         req.Title,
		Amount:        string(req.Amount),
		Category:      req.Category,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return newInputError(c, err)
		}
		if errors.Is(err, domain.ErrPersistenceUnavailable) {
			return NewServiceUnavailableError(c, "Ledger could not be saved")
		}
		log.Error().Err(err).Msg("Failed to append expense")
		return NewInternalError(c, "Failed to append expense")
	}

	return c.JSON(http.StatusCreated, expense)
}

// DeleteExpense godoc
// @Summary Remove an expense
// @Description Removing an unknown id succeeds without changes
// @Tags expenses
// @Param id path string true "Expense ID"
// @Success 204
// @Failure 503 {object} ProblemDetails
// @Router /expenses/{id} [delete]
func (h *LedgerHandler) DeleteExpense(c echo.Context) error {
	if err := h.ledger.Remove(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrPersistenceUnavailable) {
			return NewServiceUnavailableError(c, "Ledger could not be saved")
		}
		log.Error().Err(err).Str("expense_id", c.Param("id")).Msg("Failed to remove expense")
		return NewInternalError(c, "Failed to remove expense")
	}
	return c.NoContent(http.StatusNoContent)
}

// ExportExpenses godoc
// @Summary Export the ledger
// @Description The returned text can be pasted into import on another device
// @Tags expenses
// @Produce plain
// @Success 200 {string} string
// @Router /expenses/export [get]
func (h *LedgerHandler) ExportExpenses(c echo.Context) error {
	blob, err := service.ExportText(h.ledger.List())
	if err != nil {
		log.Error().Err(err).Msg("Failed to export ledger")
		return NewInternalError(c, "Failed to export ledger")
	}
	return c.String(http.StatusOK, blob)
}

// ImportExpenses godoc
// @Summary Import a ledger
// @Description Replaces the whole ledger. Without confirm=true the blob is only checked and 409 reports how many records would be installed.
// @Tags expenses
// @Accept plain
// @Produce json
// @Param confirm query bool false "Replace the current ledger"
// @Param blob body string true "Exported ledger text"
// @Success 200 {object} LedgerResponse
// @Failure 409 {object} ImportPreviewResponse
// @Failure 422 {object} ProblemDetails
// @Router /expenses/import [post]
func (h *LedgerHandler) ImportExpenses(c echo.Context) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxImportSize+1))
	if err != nil {
		return NewValidationError(c, "Failed to read request body", nil)
	}
	if len(body) > maxImportSize {
		return NewValidationError(c, "Import is too large", []ValidationError{
			{Field: "body", Message: "Maximum size is 2MB"},
		})
	}

	records, err := service.ImportText(string(body))
	if err != nil {
		log.Warn().Err(err).Msg("Rejected ledger import")
		return NewUnprocessableError(c, "Import text is not a valid ledger")
	}

	if c.QueryParam("confirm") != "true" {
		return c.JSON(http.StatusConflict, ImportPreviewResponse{
			Title:   "Confirmation Required",
			Status:  http.StatusConflict,
			Detail:  "Importing replaces the current ledger. Repeat with confirm=true to proceed.",
			Records: len(records),
		})
	}

	if err := h.ledger.ReplaceAll(c.Request().Context(), records); err != nil {
		if errors.Is(err, domain.ErrMalformedImport) {
			return NewUnprocessableError(c, "Import text is not a valid ledger")
		}
		if errors.Is(err, domain.ErrPersistenceUnavailable) {
			return NewServiceUnavailableError(c, "Ledger could not be saved")
		}
		log.Error().Err(err).Msg("Failed to import ledger")
		return NewInternalError(c, "Failed to import ledger")
	}

	return c.JSON(http.StatusOK, h.ledgerResponse())
}
