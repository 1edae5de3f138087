package handler

import (
	"net/http"

	"github.com/dafibh/tabi/tabi-backend/internal/service"
	"github.com/labstack/echo/v4"
)

// ShellHandler exposes the tab shell state
type ShellHandler struct {
	shell *service.ShellService
}

// NewShellHandler creates a new ShellHandler
func NewShellHandler(shell *service.ShellService) *ShellHandler {
	return &ShellHandler{shell: shell}
}

// UpdateShellRequest switches pane and/or records the scroll offset
type UpdateShellRequest struct {
	Pane         string `json:"pane,omitempty"`
	ScrollOffset *int   `json:"scrollOffset,omitempty"`
}

// GetShell godoc
// @Summary Get the active pane
// @Tags shell
// @Produce json
// @Success 200 {object} domain.Shell
// @Router /shell [get]
func (h *ShellHandler) GetShell(c echo.Context) error {
	return c.JSON(http.StatusOK, h.shell.Current())
}

// UpdateShell godoc
// @Summary Switch pane
// @Description Switching always scrolls the new pane to the top. A scroll offset in the same request applies after the switch.
// @Tags shell
// @Accept json
// @Produce json
// @Param request body UpdateShellRequest true "Pane"
// @Success 200 {object} domain.Shell
// @Failure 400 {object} ProblemDetails
// @Router /shell [put]
func (h *ShellHandler) UpdateShell(c echo.Context) error {
	var req UpdateShellRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	state := h.shell.Current()
	if req.Pane != "" {
		var err error
		state, err = h.shell.Switch(req.Pane)
		if err != nil {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "pane", Message: "Must be one of: itinerary, info, budget, translate"},
			})
		}
	}
	if req.ScrollOffset != nil {
		state = h.shell.Scroll(*req.ScrollOffset)
	}

	return c.JSON(http.StatusOK, state)
}
