package driving

import (
	"context"

	"github.com/custodia-labs/wxnews/internal/core/domain"
)

// HeadlinesService fetches top headlines for the configured country.
type HeadlinesService interface {
	// TopHeadlines returns the current headline list. Provider failures
	// are returned as *domain.FetchError.
	TopHeadlines(ctx context.Context) ([]domain.Article, error)
}
