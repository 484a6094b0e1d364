package driven

import (
	"context"

	"github.com/custodia-labs/wxnews/internal/core/domain"
)

// WeatherProvider fetches current weather from an external service.
type WeatherProvider interface {
	// CurrentWeather returns the weather for a free-text place name.
	// Any transport failure, non-2xx status or malformed payload is an error.
	CurrentWeather(ctx context.Context, place string, cfg domain.WeatherSettings) (*domain.Weather, error)

	// Name identifies the provider in logs.
	Name() string
}
