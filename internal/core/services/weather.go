package services

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/wxnews/internal/core/domain"
	"github.com/custodia-labs/wxnews/internal/core/ports/driven"
	"github.com/custodia-labs/wxnews/internal/core/ports/driving"
	"github.com/custodia-labs/wxnews/internal/logger"
	"github.com/custodia-labs/wxnews/internal/requestid"
)

// Ensure WeatherService implements the interface.
var _ driving.WeatherService = (*WeatherService)(nil)

// WeatherService looks up current weather through a WeatherProvider.
type WeatherService struct {
	provider driven.WeatherProvider
	settings SettingsReader
}

// NewWeatherService creates a new weather service.
// The settings reader is optional; defaults are used when it is nil.
func NewWeatherService(provider driven.WeatherProvider, settings SettingsReader) *WeatherService {
	return &WeatherService{
		provider: provider,
		settings: settings,
	}
}

// Current fetches weather for the place typed by the user.
// The query is sent verbatim; only blank detection trims it.
func (s *WeatherService) Current(ctx context.Context, query domain.PlaceQuery) (*domain.Weather, error) {
	if query.IsBlank() {
		return nil, domain.ErrEmptyQuery
	}

	ctx, id := requestid.Ensure(ctx)
	logger.Section("Weather Fetch")
	logger.Debug("request=%s place=%q", id, query.String())

	if s.provider == nil {
		logger.Warn("request=%s weather provider is nil", id)
		return nil, domain.NewWeatherError(domain.ErrProviderUnavailable)
	}

	settings, err := loadSettings(s.settings)
	if err != nil {
		return nil, domain.NewWeatherError(fmt.Errorf("load settings: %w", err))
	}
	if !settings.Weather.IsConfigured() {
		logger.Warn("request=%s weather API key is not configured", id)
		return nil, domain.NewWeatherError(fmt.Errorf("%w: weather API key not set", domain.ErrProviderUnavailable))
	}

	ctx, cancel := withTimeout(ctx, settings)
	defer cancel()

	start := time.Now()
	weather, err := s.provider.CurrentWeather(ctx, query.String(), settings.Weather)
	if err != nil {
		logger.Warn("request=%s %s failed after %s: %v", id, s.provider.Name(), elapsed(start), err)
		return nil, domain.NewWeatherError(err)
	}

	logger.Info("request=%s weather for %s, %s in %s", id, weather.Place, weather.Country, elapsed(start))
	return weather, nil
}
