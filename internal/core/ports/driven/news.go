package driven

import (
	"context"

	"github.com/custodia-labs/wxnews/internal/core/domain"
)

// NewsProvider fetches top headlines from an external service.
type NewsProvider interface {
	// TopHeadlines returns articles for cfg.Country in provider order.
	// A response without an articles field yields an empty slice, not an error.
	TopHeadlines(ctx context.Context, cfg domain.NewsSettings) ([]domain.Article, error)

	// Name identifies the provider in logs.
	Name() string
}
