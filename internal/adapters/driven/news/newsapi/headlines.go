// Package newsapi provides a NewsProvider backed by the NewsAPI
// top-headlines endpoint.
package newsapi

import (
	"context"
	"fmt"
	"net/url"

	"github.com/custodia-labs/wxnews/internal/adapters/driven/httpapi"
	"github.com/custodia-labs/wxnews/internal/core/domain"
	"github.com/custodia-labs/wxnews/internal/core/ports/driven"
)

// Ensure Provider implements the interface.
var _ driven.NewsProvider = (*Provider)(nil)

const topHeadlinesPath = "/v2/top-headlines"

// headlinesResponse is the /v2/top-headlines body.
// Articles is nil when the field is absent.
type headlinesResponse struct {
	Status       string    `json:"status"`
	TotalResults int       `json:"totalResults"`
	Articles     []article `json:"articles"`
}

type article struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	URLToImage  *string `json:"urlToImage"`
}

// Provider fetches headlines from NewsAPI.
type Provider struct {
	client *httpapi.Client
}

// NewProvider creates a new NewsAPI provider.
func NewProvider(client *httpapi.Client) *Provider {
	if client == nil {
		client = httpapi.NewClient(httpapi.Config{})
	}
	return &Provider{client: client}
}

// Name returns the provider name used in logs.
func (p *Provider) Name() string {
	return "newsapi"
}

// TopHeadlines returns the articles in the order the API sent them.
func (p *Provider) TopHeadlines(ctx context.Context, cfg domain.NewsSettings) ([]domain.Article, error) {
	base := cfg.BaseURL
	if base == "" {
		base = domain.DefaultNewsBaseURL
	}
	country := cfg.Country
	if country == "" {
		country = domain.DefaultCountry
	}

	endpoint, err := httpapi.BuildURL(base, topHeadlinesPath, url.Values{
		"country": {country},
		"apiKey":  {cfg.APIKey},
	})
	if err != nil {
		return nil, fmt.Errorf("newsapi: %w", err)
	}

	var resp headlinesResponse
	if err := p.client.GetJSON(ctx, endpoint, &resp); err != nil {
		if httpapi.IsUnauthorized(err) {
			return nil, fmt.Errorf("newsapi: API key rejected: %w", err)
		}
		return nil, fmt.Errorf("newsapi: %w", err)
	}

	articles := make([]domain.Article, 0, len(resp.Articles))
	for _, a := range resp.Articles {
		articles = append(articles, domain.Article{
			Title:       a.Title,
			Description: deref(a.Description),
			ImageURL:    deref(a.URLToImage),
		})
	}
	return articles, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
