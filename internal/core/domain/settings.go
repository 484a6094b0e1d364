package domain

import (
	"strings"
	"time"
)

// Default endpoint and transport values.
const (
	DefaultWeatherBaseURL = "https://api.openweathermap.org"
	DefaultNewsBaseURL    = "https://newsapi.org"
	DefaultHTTPTimeout    = 10 * time.Second
)

// WeatherSettings holds weather provider configuration.
type WeatherSettings struct {
	// APIKey is the OpenWeatherMap application id.
	APIKey string

	// BaseURL is the API endpoint.
	BaseURL string
}

// IsConfigured returns true if the weather provider can be called.
func (w WeatherSettings) IsConfigured() bool {
	return w.APIKey != "" && w.BaseURL != ""
}

// NewsSettings holds news provider configuration.
type NewsSettings struct {
	// APIKey is the NewsAPI key.
	APIKey string

	// BaseURL is the API endpoint.
	BaseURL string

	// Country is the two-letter country code headlines are fetched for.
	Country string
}

// IsConfigured returns true if the news provider can be called.
func (n NewsSettings) IsConfigured() bool {
	return n.APIKey != "" && n.BaseURL != "" && IsValidCountry(n.Country)
}

// HTTPSettings holds transport configuration shared by both providers.
type HTTPSettings struct {
	// Timeout bounds a single provider request.
	Timeout time.Duration
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Weather holds weather provider settings.
	Weather WeatherSettings

	// News holds news provider settings.
	News NewsSettings

	// HTTP holds transport settings.
	HTTP HTTPSettings
}

// DefaultAppSettings returns settings with sensible defaults.
// API keys are left empty; they must come from the config file or environment.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Weather: WeatherSettings{
			BaseURL: DefaultWeatherBaseURL,
		},
		News: NewsSettings{
			BaseURL: DefaultNewsBaseURL,
			Country: DefaultCountry,
		},
		HTTP: HTTPSettings{
			Timeout: DefaultHTTPTimeout,
		},
	}
}

// IsValidCountry reports whether code looks like an ISO 3166-1 alpha-2 code.
func IsValidCountry(code string) bool {
	if len(code) != 2 {
		return false
	}
	for _, r := range strings.ToLower(code) {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
