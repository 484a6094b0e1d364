// Package tui provides the interactive terminal screen for wxnews.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/wxnews/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Weather looks up current weather for a place.
	Weather driving.WeatherService

	// Headlines fetches top headlines.
	Headlines driving.HeadlinesService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(weather driving.WeatherService, headlines driving.HeadlinesService) *Ports {
	return &Ports{
		Weather:   weather,
		Headlines: headlines,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Weather == nil {
		return ErrMissingWeatherService
	}
	if p.Headlines == nil {
		return ErrMissingHeadlinesService
	}
	return nil
}
