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

// Ensure HeadlinesService implements the interface.
var _ driving.HeadlinesService = (*HeadlinesService)(nil)

// HeadlinesService fetches top headlines through a NewsProvider.
type HeadlinesService struct {
	provider driven.NewsProvider
	settings SettingsReader
}

// NewHeadlinesService creates a new headlines service.
// The settings reader is optional; defaults are used when it is nil.
func NewHeadlinesService(provider driven.NewsProvider, settings SettingsReader) *HeadlinesService {
	return &HeadlinesService{
		provider: provider,
		settings: settings,
	}
}

// TopHeadlines fetches headlines for the configured country.
// A successful call always returns a non-nil slice.
func (s *HeadlinesService) TopHeadlines(ctx context.Context) ([]domain.Article, error) {
	ctx, id := requestid.Ensure(ctx)
	logger.Section("Headlines Fetch")

	if s.provider == nil {
		logger.Warn("request=%s news provider is nil", id)
		return nil, domain.NewNewsError(domain.ErrProviderUnavailable)
	}

	settings, err := loadSettings(s.settings)
	if err != nil {
		return nil, domain.NewNewsError(fmt.Errorf("load settings: %w", err))
	}
	logger.Debug("request=%s country=%s", id, settings.News.Country)

	if !settings.News.IsConfigured() {
		logger.Warn("request=%s news provider is not configured", id)
		return nil, domain.NewNewsError(fmt.Errorf("%w: news API key or country not set", domain.ErrProviderUnavailable))
	}

	ctx, cancel := withTimeout(ctx, settings)
	defer cancel()

	start := time.Now()
	articles, err := s.provider.TopHeadlines(ctx, settings.News)
	if err != nil {
		logger.Warn("request=%s %s failed after %s: %v", id, s.provider.Name(), elapsed(start), err)
		return nil, domain.NewNewsError(err)
	}
	if articles == nil {
		articles = []domain.Article{}
	}

	logger.Info("request=%s %d headlines in %s", id, len(articles), elapsed(start))
	return articles, nil
}
