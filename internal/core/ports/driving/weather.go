package driving

import (
	"context"

	"github.com/custodia-labs/wxnews/internal/core/domain"
)

// WeatherService looks up current weather for a place typed by the user.
type WeatherService interface {
	// Current fetches weather for query. A blank query returns
	// domain.ErrEmptyQuery without contacting the provider. Provider
	// failures are returned as *domain.FetchError.
	Current(ctx context.Context, query domain.PlaceQuery) (*domain.Weather, error)
}
