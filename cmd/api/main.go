package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dafibh/tabi/tabi-backend/internal/config"
	"github.com/dafibh/tabi/tabi-backend/internal/handler"
	"github.com/dafibh/tabi/tabi-backend/internal/itinerary"
	"github.com/dafibh/tabi/tabi-backend/internal/middleware"
	"github.com/dafibh/tabi/tabi-backend/internal/repository"
	"github.com/dafibh/tabi/tabi-backend/internal/service"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title Tabi API
// @version 1.0
// @description Trip companion: itinerary, expense ledger, converter and travel helpers.
// @BasePath /api/v1
func main() {
	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if !cfg.IsProduction() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Load the embedded trip
	trip, err := itinerary.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load itinerary dataset")
	}

	// Open the persistence slot
	ctx := context.Background()
	slots, closeSlots, err := repository.OpenSlotStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.SlotBackend).Msg("Failed to open slot store")
	}
	defer closeSlots()
	log.Info().Str("backend", cfg.SlotBackend).Msg("Slot store opened")

	// Initialize services
	linkService := service.NewLinkService()
	ledgerService := service.NewLedgerService(slots, cfg.TripLocation)
	ledgerService.Load(ctx)
	itineraryService := service.NewItineraryService(trip, slots, linkService)
	itineraryService.Load(ctx)
	distanceService := service.NewDistanceService(trip)
	shellService := service.NewShellService()
	attachmentService := service.NewAttachmentService()

	// One-shot forecast fetch; failure leaves the static weather in place
	var weatherService *service.WeatherService
	if cfg.WeatherEnabled {
		weatherService = service.NewWeatherService(cfg.WeatherURL, nil)
		go func() {
			fetchCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			_ = weatherService.Fetch(fetchCtx)
		}()
	}

	// Initialize handlers
	handlers := handler.Handlers{
		Shell:     handler.NewShellHandler(shellService),
		Itinerary: handler.NewItineraryHandler(itineraryService, weatherService, attachmentService),
		Info:      handler.NewInfoHandler(trip, distanceService, linkService),
		Ledger:    handler.NewLedgerHandler(ledgerService),
		Tools:     handler.NewToolsHandler(linkService, trip.Phrases),
	}

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimitPerMinute > 0 {
		rateLimiter = middleware.NewRateLimiterWithConfig(cfg.RateLimitPerMinute, middleware.DefaultBurstSize)
		defer rateLimiter.Stop()
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Request ID middleware
	e.Use(echomiddleware.RequestID())

	// CORS middleware
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		MaxAge:       86400,
	}))

	// Security headers middleware (helmet-like)
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		HSTSMaxAge:         31536000,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))

	// Request logging middleware with zerolog
	e.Use(middleware.RequestLogger())

	// Recovery middleware
	e.Use(echomiddleware.Recover())

	// Multipart uploads carry at most one photo
	e.Use(echomiddleware.BodyLimit("6M"))

	handler.RegisterRoutes(e, rateLimiter, handlers)

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
