package messages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/wxnews/internal/core/domain"
)

func TestFocus_String(t *testing.T) {
	tests := []struct {
		focus    Focus
		expected string
	}{
		{FocusInput, "input"},
		{FocusHeadlines, "headlines"},
		{Focus(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.focus.String())
		})
	}
}

func TestWeatherLoaded_CarriesRequestID(t *testing.T) {
	msg := WeatherLoaded{
		RequestID: "abc",
		Err:       domain.NewWeatherError(errors.New("boom")),
	}

	assert.Equal(t, "abc", msg.RequestID)
	assert.Nil(t, msg.Weather)
	assert.ErrorIs(t, msg.Err, domain.ErrWeatherFetch)
}

func TestHeadlinesLoaded_ZeroValue(t *testing.T) {
	var msg HeadlinesLoaded

	assert.Empty(t, msg.RequestID)
	assert.Nil(t, msg.Articles)
	assert.NoError(t, msg.Err)
}
