package services

import (
	"context"
	"time"

	"github.com/custodia-labs/wxnews/internal/core/domain"
)

// SettingsReader provides the current settings to the fetch services.
// It is read on every fetch so that edited credentials apply immediately.
type SettingsReader interface {
	Get() (*domain.AppSettings, error)
}

// loadSettings returns current settings, falling back to defaults when
// no reader is configured.
func loadSettings(r SettingsReader) (*domain.AppSettings, error) {
	if r == nil {
		defaults := domain.DefaultAppSettings()
		return &defaults, nil
	}
	return r.Get()
}

// withTimeout bounds a provider call by the configured HTTP timeout.
func withTimeout(ctx context.Context, settings *domain.AppSettings) (context.Context, context.CancelFunc) {
	timeout := settings.HTTP.Timeout
	if timeout <= 0 {
		timeout = domain.DefaultHTTPTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

// elapsed formats a duration for debug logs.
func elapsed(start time.Time) string {
	return time.Since(start).Round(time.Millisecond).String()
}
