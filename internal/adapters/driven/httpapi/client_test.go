package httpapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wxnews/internal/requestid"
)

type payload struct {
	Name string `json:"name"`
}

func TestClient_GetJSON_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "wxnews/test", r.Header.Get("User-Agent"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "req-1", r.Header.Get(requestid.RequestIDHeader))
		_, _ = w.Write([]byte(`{"name":"ok"}`))
	}))
	defer server.Close()

	client := NewClient(Config{UserAgent: "wxnews/test"})
	ctx := requestid.WithRequestID(context.Background(), "req-1")

	var out payload
	err := client.GetJSON(ctx, server.URL, &out)

	require.NoError(t, err)
	assert.Equal(t, "ok", out.Name)
}

func TestClient_GetJSON_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"cod":401,"message":"Invalid API key"}`))
	}))
	defer server.Close()

	client := NewClient(Config{})

	var out payload
	err := client.GetJSON(context.Background(), server.URL+"/x?appid=secret", &out)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid API key", apiErr.Message)
	assert.NotContains(t, apiErr.URL, "secret")
	assert.NotContains(t, err.Error(), "secret")
	assert.True(t, IsUnauthorized(err))
	assert.False(t, IsNotFound(err))
}

func TestClient_GetJSON_StatusErrorPlainBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	var out payload
	err := NewClient(Config{}).GetJSON(context.Background(), server.URL, &out)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "500 Internal Server Error", apiErr.Message)
}

func TestClient_GetJSON_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"name":`))
	}))
	defer server.Close()

	var out payload
	err := NewClient(Config{}).GetJSON(context.Background(), server.URL, &out)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}

func TestClient_GetJSON_BodyTooLarge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"name":"` + strings.Repeat("a", MaxBodySize) + `"}`))
	}))
	defer server.Close()

	var out payload
	err := NewClient(Config{}).GetJSON(context.Background(), server.URL, &out)

	assert.ErrorIs(t, err, ErrBodyTooLarge)
}

func TestClient_GetJSON_TransportErrorIsRedacted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	var out payload
	err := NewClient(Config{}).GetJSON(context.Background(), server.URL+"/x?apiKey=secret", &out)

	require.Error(t, err)
	assert.NotContains(t, err.Error(), "secret")
}

func TestClient_GetJSON_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out payload
	err := NewClient(Config{}).GetJSON(ctx, server.URL, &out)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuildURL(t *testing.T) {
	got, err := BuildURL("https://api.example.com/", "/v2/items", url.Values{"q": {"New York"}})

	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/v2/items?q=New+York", got)
}

func TestBuildURL_Invalid(t *testing.T) {
	_, err := BuildURL("not a url", "/x", nil)
	assert.Error(t, err)

	_, err = BuildURL("://bad", "/x", nil)
	assert.Error(t, err)
}

func TestRedact(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"appid", "https://h/p?appid=abc&q=x", "https://h/p?appid=REDACTED&q=x"},
		{"apiKey", "https://h/p?apiKey=abc&country=us", "https://h/p?apiKey=REDACTED&country=us"},
		{"no secrets", "https://h/p?q=x", "https://h/p?q=x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Redact(tt.in))
		})
	}
}
