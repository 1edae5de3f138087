package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/dafibh/tabi/tabi-backend/internal/domain"
	"github.com/rs/zerolog/log"
)

// DefaultForecastURL is the daily forecast for central Fukuoka
const DefaultForecastURL = "https://api.open-meteo.com/v1/forecast?latitude=33.5902&longitude=130.4017&daily=weather_code,temperature_2m_max,temperature_2m_min&timezone=Asia%2FTokyo"

type openMeteoResponse struct {
	Daily *struct {
		Time    []string  `json:"time"`
		Code    []int     `json:"weather_code"`
		TempMax []float64 `json:"temperature_2m_max"`
		TempMin []float64 `json:"temperature_2m_min"`
	} `json:"daily"`
}

// WeatherService performs the one-shot forecast fetch and keeps its result
type WeatherService struct {
	url    string
	client *http.Client

	mu       sync.RWMutex
	forecast []domain.DailyForecast
}

// NewWeatherService creates a WeatherService. A nil client gets a default
// one with a 10 second timeout.
func NewWeatherService(url string, client *http.Client) *WeatherService {
	if url == "" {
		url = DefaultForecastURL
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &WeatherService{url: url, client: client}
}

// Fetch requests the forecast once. On failure the error is logged, the
// stored forecast stays empty and callers keep the static weather.
func (s *WeatherService) Fetch(ctx context.Context) error {
	forecast, err := s.fetch(ctx)
	if err != nil {
		log.Warn().Err(err).Str("url", s.url).Msg("Weather forecast unavailable, using static weather")
		return fmt.Errorf("%w: %v", domain.ErrExternalFetch, err)
	}

	s.mu.Lock()
	s.forecast = forecast
	s.mu.Unlock()

	log.Info().Int("days", len(forecast)).Msg("Weather forecast loaded")
	return nil
}

// Forecast returns a copy of the fetched forecast, empty if the fetch has
// not succeeded
func (s *WeatherService) Forecast() []domain.DailyForecast {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.DailyForecast, len(s.forecast))
	copy(out, s.forecast)
	return out
}

func (s *WeatherService) fetch(ctx context.Context) ([]domain.DailyForecast, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode forecast: %w", err)
	}
	if body.Daily == nil {
		return nil, fmt.Errorf("forecast has no daily section")
	}

	d := body.Daily
	n := min(len(d.Time), len(d.Code), len(d.TempMax), len(d.TempMin))
	forecast := make([]domain.DailyForecast, 0, n)
	for i := 0; i < n; i++ {
		forecast = append(forecast, domain.DailyForecast{
			Date:     d.Time[i],
			Code:     d.Code[i],
			TempMax:  d.TempMax[i],
			TempMin:  d.TempMin[i],
			Category: domain.MapWeatherCode(d.Code[i]),
		})
	}
	return forecast, nil
}
