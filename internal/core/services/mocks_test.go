package services

import (
	"context"
	"errors"

	"github.com/custodia-labs/wxnews/internal/core/domain"
)

// mockWeatherProvider is a function-field mock of driven.WeatherProvider.
type mockWeatherProvider struct {
	currentFn func(ctx context.Context, place string, cfg domain.WeatherSettings) (*domain.Weather, error)
	calls     int
	lastPlace string
}

func (m *mockWeatherProvider) CurrentWeather(
	ctx context.Context, place string, cfg domain.WeatherSettings,
) (*domain.Weather, error) {
	m.calls++
	m.lastPlace = place
	if m.currentFn != nil {
		return m.currentFn(ctx, place, cfg)
	}
	return &domain.Weather{Place: place}, nil
}

func (m *mockWeatherProvider) Name() string { return "mock-weather" }

// mockNewsProvider is a function-field mock of driven.NewsProvider.
type mockNewsProvider struct {
	headlinesFn func(ctx context.Context, cfg domain.NewsSettings) ([]domain.Article, error)
	calls       int
}

func (m *mockNewsProvider) TopHeadlines(ctx context.Context, cfg domain.NewsSettings) ([]domain.Article, error) {
	m.calls++
	if m.headlinesFn != nil {
		return m.headlinesFn(ctx, cfg)
	}
	return nil, nil
}

func (m *mockNewsProvider) Name() string { return "mock-news" }

// staticSettings is a SettingsReader returning fixed values.
type staticSettings struct {
	settings *domain.AppSettings
	err      error
}

func (s staticSettings) Get() (*domain.AppSettings, error) {
	return s.settings, s.err
}

func configuredSettings() *domain.AppSettings {
	s := domain.DefaultAppSettings()
	s.Weather.APIKey = "weather-key"
	s.News.APIKey = "news-key"
	return &s
}

var errTransport = errors.New("connection refused")
