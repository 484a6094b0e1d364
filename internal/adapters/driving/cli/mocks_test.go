package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/custodia-labs/wxnews/internal/core/domain"
)

// mockWeatherService implements driving.WeatherService.
type mockWeatherService struct {
	currentFn func(ctx context.Context, query domain.PlaceQuery) (*domain.Weather, error)
	lastQuery domain.PlaceQuery
}

func (m *mockWeatherService) Current(ctx context.Context, query domain.PlaceQuery) (*domain.Weather, error) {
	m.lastQuery = query
	if m.currentFn != nil {
		return m.currentFn(ctx, query)
	}
	return &domain.Weather{}, nil
}

// mockHeadlinesService implements driving.HeadlinesService.
type mockHeadlinesService struct {
	topFn func(ctx context.Context) ([]domain.Article, error)
}

func (m *mockHeadlinesService) TopHeadlines(ctx context.Context) ([]domain.Article, error) {
	if m.topFn != nil {
		return m.topFn(ctx)
	}
	return []domain.Article{}, nil
}

// mockSettingsService implements driving.SettingsService.
type mockSettingsService struct {
	settings  *domain.AppSettings
	getErr    error
	setErr    error
	apiKeys   map[domain.FetchSource]string
	setValues map[string]string
}

func newMockSettingsService() *mockSettingsService {
	defaults := domain.DefaultAppSettings()
	return &mockSettingsService{
		settings:  &defaults,
		apiKeys:   make(map[domain.FetchSource]string),
		setValues: make(map[string]string),
	}
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.settings, nil
}

func (m *mockSettingsService) Save(settings *domain.AppSettings) error {
	m.settings = settings
	return nil
}

func (m *mockSettingsService) SetAPIKey(source domain.FetchSource, key string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.apiKeys[source] = key
	return nil
}

func (m *mockSettingsService) Set(key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.setValues[key] = value
	return nil
}

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (m *mockSettingsService) Path() string {
	return "/tmp/wxnews/config.toml"
}

// withServices swaps the package services for the duration of a test.
func withServices(t *testing.T, w *mockWeatherService, h *mockHeadlinesService, s *mockSettingsService) {
	t.Helper()

	origWeather, origHeadlines, origSettings := weatherService, headlinesService, settingsService
	t.Cleanup(func() {
		weatherService, headlinesService, settingsService = origWeather, origHeadlines, origSettings
	})

	weatherService, headlinesService, settingsService = nil, nil, nil
	if w != nil {
		weatherService = w
	}
	if h != nil {
		headlinesService = h
	}
	if s != nil {
		settingsService = s
	}
}

// executeCommand runs rootCmd with args and returns combined output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		weatherJSON = false
		headlinesJSON = false
		headlinesLimit = 0
		verbose = false
	})

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}
