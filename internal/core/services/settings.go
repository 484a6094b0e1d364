package services

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/wxnews/internal/core/domain"
	"github.com/custodia-labs/wxnews/internal/core/ports/driven"
	"github.com/custodia-labs/wxnews/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	KeyWeatherAPIKey  = "weather.api_key"
	KeyWeatherBaseURL = "weather.base_url"
	KeyNewsAPIKey     = "news.api_key"
	KeyNewsBaseURL    = "news.base_url"
	KeyNewsCountry    = "news.country"
	KeyHTTPTimeout    = "http.timeout_seconds"
)

// Environment variables that override stored credentials.
//
//nolint:gosec // G101: These are variable names, not actual credentials.
const (
	EnvWeatherAPIKey = "WXNEWS_WEATHER_API_KEY"
	EnvNewsAPIKey    = "WXNEWS_NEWS_API_KEY"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
// Environment variables take precedence over stored API keys.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Weather: domain.WeatherSettings{
			APIKey:  s.getEnvOrString(EnvWeatherAPIKey, KeyWeatherAPIKey),
			BaseURL: s.getString(KeyWeatherBaseURL, defaults.Weather.BaseURL),
		},
		News: domain.NewsSettings{
			APIKey:  s.getEnvOrString(EnvNewsAPIKey, KeyNewsAPIKey),
			BaseURL: s.getString(KeyNewsBaseURL, defaults.News.BaseURL),
			Country: s.getCountry(defaults.News.Country),
		},
		HTTP: domain.HTTPSettings{
			Timeout: s.getTimeout(defaults.HTTP.Timeout),
		},
	}

	return settings, nil
}

// Save persists application settings.
// API keys are written only when set and not supplied by the environment.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return fmt.Errorf("save settings: %w", domain.ErrInvalidInput)
	}

	if settings.Weather.APIKey != "" && settings.Weather.APIKey != os.Getenv(EnvWeatherAPIKey) {
		if err := s.configStore.Set(KeyWeatherAPIKey, settings.Weather.APIKey); err != nil {
			return fmt.Errorf("save weather api_key: %w", err)
		}
	}
	if err := s.configStore.Set(KeyWeatherBaseURL, settings.Weather.BaseURL); err != nil {
		return fmt.Errorf("save weather base_url: %w", err)
	}

	if settings.News.APIKey != "" && settings.News.APIKey != os.Getenv(EnvNewsAPIKey) {
		if err := s.configStore.Set(KeyNewsAPIKey, settings.News.APIKey); err != nil {
			return fmt.Errorf("save news api_key: %w", err)
		}
	}
	if err := s.configStore.Set(KeyNewsBaseURL, settings.News.BaseURL); err != nil {
		return fmt.Errorf("save news base_url: %w", err)
	}
	if err := s.configStore.Set(KeyNewsCountry, strings.ToLower(settings.News.Country)); err != nil {
		return fmt.Errorf("save news country: %w", err)
	}

	if err := s.configStore.Set(KeyHTTPTimeout, int(settings.HTTP.Timeout/time.Second)); err != nil {
		return fmt.Errorf("save http timeout: %w", err)
	}

	return nil
}

// SetAPIKey stores the credential for one provider.
func (s *SettingsService) SetAPIKey(source domain.FetchSource, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("%w: API key is empty", domain.ErrInvalidInput)
	}

	switch source {
	case domain.FetchSourceWeather:
		return s.configStore.Set(KeyWeatherAPIKey, key)
	case domain.FetchSourceNews:
		return s.configStore.Set(KeyNewsAPIKey, key)
	default:
		return fmt.Errorf("%w: unknown provider %q", domain.ErrInvalidInput, source)
	}
}

// Set stores a single setting by its config key, validating the value.
func (s *SettingsService) Set(key, value string) error {
	value = strings.TrimSpace(value)

	switch key {
	case KeyWeatherAPIKey, KeyNewsAPIKey, KeyWeatherBaseURL, KeyNewsBaseURL:
		if value == "" {
			return fmt.Errorf("%w: %s cannot be empty", domain.ErrInvalidInput, key)
		}
		return s.configStore.Set(key, value)

	case KeyNewsCountry:
		if !domain.IsValidCountry(value) {
			return fmt.Errorf("%w: country must be a two-letter code, got %q", domain.ErrInvalidInput, value)
		}
		return s.configStore.Set(key, strings.ToLower(value))

	case KeyHTTPTimeout:
		seconds, err := strconv.Atoi(value)
		if err != nil || seconds <= 0 {
			return fmt.Errorf("%w: timeout must be a positive number of seconds, got %q", domain.ErrInvalidInput, value)
		}
		return s.configStore.Set(key, seconds)

	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Path returns the config store location.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

// Keys lists every setting accepted by Set.
func Keys() []string {
	return []string{
		KeyWeatherAPIKey,
		KeyWeatherBaseURL,
		KeyNewsAPIKey,
		KeyNewsBaseURL,
		KeyNewsCountry,
		KeyHTTPTimeout,
	}
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getEnvOrString(env, key string) string {
	if val, ok := os.LookupEnv(env); ok && val != "" {
		return val
	}
	return s.configStore.GetString(key)
}

func (s *SettingsService) getCountry(defaultVal string) string {
	val := s.configStore.GetString(KeyNewsCountry)
	if !domain.IsValidCountry(val) {
		return defaultVal
	}
	return strings.ToLower(val)
}

func (s *SettingsService) getTimeout(defaultVal time.Duration) time.Duration {
	seconds := s.configStore.GetInt(KeyHTTPTimeout)
	if seconds <= 0 {
		return defaultVal
	}
	return time.Duration(seconds) * time.Second
}
