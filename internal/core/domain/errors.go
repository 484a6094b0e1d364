package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyQuery indicates a weather lookup was attempted with a blank place name.
	ErrEmptyQuery = errors.New("place name is empty")

	// ErrProviderUnavailable indicates a provider was not configured.
	ErrProviderUnavailable = errors.New("provider unavailable")

	// Fetch Errors.

	// ErrWeatherFetch indicates the weather provider call failed for any reason.
	ErrWeatherFetch = errors.New("weather fetch failed")

	// ErrNewsFetch indicates the news provider call failed for any reason.
	ErrNewsFetch = errors.New("news fetch failed")
)

// User-facing messages. Every provider failure collapses into one of these.
const (
	WeatherFetchMessage = "Error fetching weather data. Please try again."
	NewsFetchMessage    = "Error fetching news data. Please try again."
)

// FetchSource identifies which provider flow produced a result or error.
type FetchSource string

// Available fetch sources.
const (
	FetchSourceWeather FetchSource = "weather"
	FetchSourceNews    FetchSource = "news"
)

// String returns the string representation.
func (s FetchSource) String() string {
	return string(s)
}

// FetchError wraps any provider failure (transport, status, payload)
// with the flow it came from.
type FetchError struct {
	Source FetchSource
	Err    error
}

// NewWeatherError wraps err as a weather fetch failure.
func NewWeatherError(err error) *FetchError {
	return &FetchError{Source: FetchSourceWeather, Err: err}
}

// NewNewsError wraps err as a news fetch failure.
func NewNewsError(err error) *FetchError {
	return &FetchError{Source: FetchSourceNews, Err: err}
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return e.sentinel().Error()
	}
	return fmt.Sprintf("%s: %v", e.sentinel(), e.Err)
}

// Unwrap returns the underlying cause.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error's source, so
// errors.Is(err, ErrWeatherFetch) holds for weather failures.
func (e *FetchError) Is(target error) bool {
	return target == e.sentinel()
}

func (e *FetchError) sentinel() error {
	if e.Source == FetchSourceNews {
		return ErrNewsFetch
	}
	return ErrWeatherFetch
}

// UserMessage maps an error to the static message shown on screen.
// Errors that are not fetch failures map to an empty string.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrWeatherFetch):
		return WeatherFetchMessage
	case errors.Is(err, ErrNewsFetch):
		return NewsFetchMessage
	default:
		return ""
	}
}
