// Package httpapi is the JSON-over-HTTP plumbing shared by the provider
// adapters: request construction, status handling, body limits and
// credential redaction.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/custodia-labs/wxnews/internal/logger"
	"github.com/custodia-labs/wxnews/internal/requestid"
)

// Default transport values.
const (
	DefaultTimeout = 10 * time.Second
	MaxBodySize    = 1 << 20
)

// secretParams are query parameters whose values never appear in errors or logs.
var secretParams = []string{"appid", "apikey", "apiKey", "key", "token"}

// ErrBodyTooLarge indicates the response exceeded MaxBodySize.
var ErrBodyTooLarge = errors.New("response body too large")

// APIError represents a non-2xx provider response.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// IsUnauthorized checks if the error indicates a rejected credential.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized
	}
	return false
}

// IsNotFound checks if the error indicates the resource does not exist.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}
	return false
}

// Config holds client configuration.
type Config struct {
	// Timeout is the per-request timeout (default: 10s).
	Timeout time.Duration

	// UserAgent is sent with every request.
	UserAgent string

	// HTTPClient overrides the underlying client, mainly for tests.
	HTTPClient *http.Client
}

// Client performs GET requests and decodes JSON responses.
type Client struct {
	http      *http.Client
	userAgent string
}

// NewClient creates a new client.
func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		http:      hc,
		userAgent: cfg.UserAgent,
	}
}

// BuildURL joins base and path and encodes query.
func BuildURL(base, path string, query url.Values) (string, error) {
	u, err := url.Parse(strings.TrimRight(base, "/") + path)
	if err != nil {
		return "", fmt.Errorf("parse base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("parse base URL: %q is not absolute", base)
	}
	u.RawQuery = query.Encode()
	return u.String(), nil
}

// GetJSON issues a GET to rawURL and decodes a 2xx body into out.
// Non-2xx responses are returned as *APIError.
func (c *Client) GetJSON(ctx context.Context, rawURL string, out any) error {
	safeURL := Redact(rawURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if id := requestid.FromContext(ctx); id != "" {
		req.Header.Set(requestid.RequestIDHeader, id)
	}

	logger.Debug("GET %s", safeURL)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", redactError(err, safeURL))
	}
	defer resp.Body.Close()

	body, err := readLimited(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(body, resp.Status),
			URL:        safeURL,
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func readLimited(r io.Reader) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r, MaxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if len(body) > MaxBodySize {
		return nil, ErrBodyTooLarge
	}
	return body, nil
}

// errorMessage extracts the provider's own message from an error body.
// Both providers answer errors with a JSON object carrying "message".
func errorMessage(body []byte, fallback string) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return fallback
}

// Redact replaces credential query values in rawURL.
func Redact(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	q := u.Query()
	changed := false
	for _, p := range secretParams {
		if q.Has(p) {
			q.Set(p, "REDACTED")
			changed = true
		}
	}
	if !changed {
		return rawURL
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// redactError strips the raw URL from transport errors, which embed it.
func redactError(err error, safeURL string) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &url.Error{Op: urlErr.Op, URL: safeURL, Err: urlErr.Err}
	}
	return err
}
