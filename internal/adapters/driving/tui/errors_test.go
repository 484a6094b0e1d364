package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	errs := []error{
		ErrMissingWeatherService,
		ErrMissingHeadlinesService,
		ErrInvalidPorts,
	}

	seen := make(map[string]bool)
	for _, err := range errs {
		msg := err.Error()
		assert.False(t, seen[msg], "duplicate error message: %s", msg)
		seen[msg] = true
	}
}

func TestErrMissingWeatherService_Message(t *testing.T) {
	assert.Contains(t, ErrMissingWeatherService.Error(), "weather service")
}

func TestErrMissingHeadlinesService_Message(t *testing.T) {
	assert.Contains(t, ErrMissingHeadlinesService.Error(), "headlines service")
}

func TestErrInvalidPorts_Message(t *testing.T) {
	assert.Contains(t, ErrInvalidPorts.Error(), "invalid ports")
}
