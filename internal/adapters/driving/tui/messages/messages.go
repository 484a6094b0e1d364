// Package messages defines Bubbletea message types for the TUI.
// Fetch results come back to the event loop as messages, so every state
// change happens in Update.
package messages

import (
	"github.com/custodia-labs/wxnews/internal/core/domain"
)

// WeatherLoaded carries a weather fetch result back to the model.
type WeatherLoaded struct {
	RequestID string
	Weather   *domain.Weather
	Err       error
}

// HeadlinesLoaded carries a headlines fetch result back to the model.
type HeadlinesLoaded struct {
	RequestID string
	Articles  []domain.Article
	Err       error
}

// Focus identifies which part of the screen receives keys.
type Focus int

const (
	// FocusInput sends keys to the place input.
	FocusInput Focus = iota
	// FocusHeadlines sends keys to the headline list.
	FocusHeadlines
)

// String returns the string representation of the focus.
func (f Focus) String() string {
	switch f {
	case FocusInput:
		return "input"
	case FocusHeadlines:
		return "headlines"
	default:
		return "unknown"
	}
}

// FocusChanged is sent when focus moves between input and list.
type FocusChanged struct {
	Focus Focus
}

// Quit signals the application should exit.
type Quit struct{}
