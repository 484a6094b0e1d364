// Package openweather provides a WeatherProvider backed by the
// OpenWeatherMap current weather API.
package openweather

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/custodia-labs/wxnews/internal/adapters/driven/httpapi"
	"github.com/custodia-labs/wxnews/internal/core/domain"
	"github.com/custodia-labs/wxnews/internal/core/ports/driven"
)

// Ensure Provider implements the interface.
var _ driven.WeatherProvider = (*Provider)(nil)

// Units requested from the API. Temperatures are always shown in °C.
const Units = "metric"

const currentWeatherPath = "/data/2.5/weather"

// ErrNoConditions indicates a success body without any weather entry.
var ErrNoConditions = errors.New("openweather: response has no weather conditions")

// currentResponse is the subset of the /data/2.5/weather body we read.
type currentResponse struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
}

// Provider fetches current weather from OpenWeatherMap.
type Provider struct {
	client *httpapi.Client
}

// NewProvider creates a new OpenWeatherMap provider.
func NewProvider(client *httpapi.Client) *Provider {
	if client == nil {
		client = httpapi.NewClient(httpapi.Config{})
	}
	return &Provider{client: client}
}

// Name returns the provider name used in logs.
func (p *Provider) Name() string {
	return "openweathermap"
}

// CurrentWeather looks up place as typed. The first weather entry supplies
// the condition and icon.
func (p *Provider) CurrentWeather(
	ctx context.Context, place string, cfg domain.WeatherSettings,
) (*domain.Weather, error) {
	base := cfg.BaseURL
	if base == "" {
		base = domain.DefaultWeatherBaseURL
	}

	endpoint, err := httpapi.BuildURL(base, currentWeatherPath, url.Values{
		"q":     {place},
		"appid": {cfg.APIKey},
		"units": {Units},
	})
	if err != nil {
		return nil, fmt.Errorf("openweather: %w", err)
	}

	var resp currentResponse
	if err := p.client.GetJSON(ctx, endpoint, &resp); err != nil {
		switch {
		case httpapi.IsUnauthorized(err):
			return nil, fmt.Errorf("openweather: API key rejected: %w", err)
		case httpapi.IsNotFound(err):
			return nil, fmt.Errorf("openweather: place %q not found: %w", place, err)
		}
		return nil, fmt.Errorf("openweather: %w", err)
	}

	return toDomain(&resp)
}

func toDomain(resp *currentResponse) (*domain.Weather, error) {
	if len(resp.Weather) == 0 {
		return nil, ErrNoConditions
	}

	return &domain.Weather{
		Place:        resp.Name,
		Country:      resp.Sys.Country,
		TemperatureC: resp.Main.Temp,
		HumidityPct:  resp.Main.Humidity,
		Condition:    resp.Weather[0].Description,
		Icon:         resp.Weather[0].Icon,
	}, nil
}
