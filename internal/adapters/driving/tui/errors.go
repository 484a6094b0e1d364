package tui

import "errors"

// ErrMissingWeatherService is returned when the weather service is not provided.
var ErrMissingWeatherService = errors.New("tui: weather service is required")

// ErrMissingHeadlinesService is returned when the headlines service is not provided.
var ErrMissingHeadlinesService = errors.New("tui: headlines service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
