// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application from the headline list.
	Quit key.Binding

	// ForceQuit exits from anywhere.
	ForceQuit key.Binding

	// Submit requests weather for the typed place.
	Submit key.Binding

	// FocusNext toggles focus between input and headlines.
	FocusNext key.Binding

	// Back returns focus to the input.
	Back key.Binding

	// Refresh re-fetches headlines.
	Refresh key.Binding

	// Up navigates up in the headline list.
	Up key.Binding

	// Down navigates down in the headline list.
	Down key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "get weather"),
		),
		FocusNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch focus"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
	}
}

// InputHelp returns keybindings shown while typing a place.
func (k *KeyMap) InputHelp() []key.Binding {
	return []key.Binding{k.Submit, k.FocusNext, k.ForceQuit}
}

// HeadlinesHelp returns keybindings shown while browsing headlines.
func (k *KeyMap) HeadlinesHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Refresh, k.Back, k.Quit}
}

// FullHelp returns the full list of keybindings.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.InputHelp(),
		k.HeadlinesHelp(),
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
