package handler

import (
	"net/http"

	"github.com/dafibh/tabi/tabi-backend/internal/middleware"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handlers groups every API handler
type Handlers struct {
	Shell     *ShellHandler
	Itinerary *ItineraryHandler
	Info      *InfoHandler
	Ledger    *LedgerHandler
	Tools     *ToolsHandler
}

// RegisterRoutes sets up all API routes. rl may be nil to disable rate
// limiting.
func RegisterRoutes(e *echo.Echo, rl *middleware.RateLimiter, h Handlers) {
	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// API docs
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/openapi.json", ServeOpenAPI3Spec)

	// API version 1
	api := e.Group("/api/v1")
	if rl != nil {
		api.Use(middleware.RateLimitMiddleware(rl))
	}

	// Tab shell
	api.GET("/shell", h.Shell.GetShell)
	api.PUT("/shell", h.Shell.UpdateShell)

	// Itinerary
	api.GET("/itinerary", h.Itinerary.GetItinerary)
	items := api.Group("/itinerary/items")
	items.GET("/:id", h.Itinerary.GetItem)
	items.PUT("/:id", h.Itinerary.UpdateItem)
	items.PUT("/:id/comment", h.Itinerary.UpdateComment)
	items.POST("/:id/images", h.Itinerary.UploadImage)
	items.DELETE("/:id/images/:index", h.Itinerary.DeleteImage)
	api.GET("/weather", h.Itinerary.GetWeather)

	// Trip info
	api.GET("/info", h.Info.GetInfo)
	api.GET("/spots/:id/distance", h.Info.SpotDistance)

	// Expense ledger
	expenses := api.Group("/expenses")
	expenses.GET("", h.Ledger.ListExpenses)
	expenses.POST("", h.Ledger.CreateExpense)
	expenses.GET("/export", h.Ledger.ExportExpenses)
	expenses.POST("/import", h.Ledger.ImportExpenses)
	expenses.DELETE("/:id", h.Ledger.DeleteExpense)

	// Tools
	api.GET("/convert", h.Tools.Convert)
	api.GET("/translate", h.Tools.Translate)
	api.GET("/phrases", h.Tools.Phrases)
}
