package newsapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wxnews/internal/adapters/driven/httpapi"
	"github.com/custodia-labs/wxnews/internal/core/domain"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) (*Provider, domain.NewsSettings) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	provider := NewProvider(httpapi.NewClient(httpapi.Config{UserAgent: "wxnews/test"}))
	return provider, domain.NewsSettings{APIKey: "k", BaseURL: server.URL, Country: "us"}
}

func TestProvider_TopHeadlines_Success(t *testing.T) {
	provider, cfg := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/top-headlines", r.URL.Path)
		assert.Equal(t, "us", r.URL.Query().Get("country"))
		assert.Equal(t, "k", r.URL.Query().Get("apiKey"))
		_, _ = w.Write([]byte(`{
		  "status": "ok",
		  "totalResults": 2,
		  "articles": [
		    {"title": "A", "description": "d", "urlToImage": null},
		    {"title": "B", "description": null, "urlToImage": "https://img.example/b.jpg"}
		  ]
		}`))
	})

	articles, err := provider.TopHeadlines(context.Background(), cfg)

	require.NoError(t, err)
	assert.Equal(t, []domain.Article{
		{Title: "A", Description: "d"},
		{Title: "B", ImageURL: "https://img.example/b.jpg"},
	}, articles)
	assert.Equal(t, domain.PlaceholderImageURL, articles[0].Image())
}

func TestProvider_TopHeadlines_MissingArticles(t *testing.T) {
	provider, cfg := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	articles, err := provider.TopHeadlines(context.Background(), cfg)

	require.NoError(t, err)
	assert.NotNil(t, articles)
	assert.Empty(t, articles)
}

func TestProvider_TopHeadlines_DefaultCountry(t *testing.T) {
	provider, cfg := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, domain.DefaultCountry, r.URL.Query().Get("country"))
		_, _ = w.Write([]byte(`{"articles":[]}`))
	})
	cfg.Country = ""

	_, err := provider.TopHeadlines(context.Background(), cfg)
	require.NoError(t, err)
}

func TestProvider_TopHeadlines_Unauthorized(t *testing.T) {
	provider, cfg := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status":"error","code":"apiKeyInvalid","message":"Your API key is invalid"}`))
	})

	articles, err := provider.TopHeadlines(context.Background(), cfg)

	assert.Nil(t, articles)
	assert.True(t, httpapi.IsUnauthorized(err))
	assert.Contains(t, err.Error(), "newsapi: API key rejected")
	assert.NotContains(t, err.Error(), "apiKey=k")
}

func TestProvider_TopHeadlines_MalformedBody(t *testing.T) {
	provider, cfg := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"articles": "nope"}`))
	})

	_, err := provider.TopHeadlines(context.Background(), cfg)

	require.Error(t, err)
}

func TestProvider_Name(t *testing.T) {
	assert.Equal(t, "newsapi", NewProvider(nil).Name())
}
