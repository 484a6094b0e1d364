// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/wxnews/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/wxnews/internal/core/domain"
)

// Placeholder is shown while the input is empty.
const Placeholder = "Enter country name..."

// SubmitLabel is the submit control rendered beside the input.
const SubmitLabel = "[ Get Weather ]"

// PlaceInput wraps a bubbles textinput with the submit control beside it.
type PlaceInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewPlaceInput creates a new place input component.
func NewPlaceInput(s *styles.Styles) *PlaceInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = Placeholder
	ti.Focus()
	ti.CharLimit = 128
	ti.Width = 40

	return &PlaceInput{
		textinput: ti,
		styles:    s,
		width:     60,
	}
}

// Init initialises the place input.
func (p *PlaceInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (p *PlaceInput) Update(msg tea.Msg) (*PlaceInput, tea.Cmd) {
	var cmd tea.Cmd
	p.textinput, cmd = p.textinput.Update(msg)
	return p, cmd
}

// View renders the input followed by the submit control.
func (p *PlaceInput) View() string {
	field := p.styles.InputField.Render(p.textinput.View())
	button := p.styles.Button.Render(SubmitLabel)
	if !p.Focused() {
		button = p.styles.Muted.Render(SubmitLabel)
	}
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, field, " ", button)
}

// Value returns the current input value verbatim.
func (p *PlaceInput) Value() string {
	return p.textinput.Value()
}

// Query returns the current input as a place query.
func (p *PlaceInput) Query() domain.PlaceQuery {
	return domain.PlaceQuery(p.textinput.Value())
}

// SetValue sets the input value.
func (p *PlaceInput) SetValue(value string) {
	p.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (p *PlaceInput) Focus() tea.Cmd {
	return p.textinput.Focus()
}

// Blur removes focus from the input.
func (p *PlaceInput) Blur() {
	p.textinput.Blur()
}

// Focused returns whether the input is focused.
func (p *PlaceInput) Focused() bool {
	return p.textinput.Focused()
}

// SetWidth sets the total width of input plus submit control.
func (p *PlaceInput) SetWidth(width int) {
	p.width = width
	// Border, padding, gap and submit label
	inputWidth := width - lipgloss.Width(SubmitLabel) - 6
	if inputWidth < 20 {
		inputWidth = 20
	}
	p.textinput.Width = inputWidth
}

// Width returns the current width.
func (p *PlaceInput) Width() int {
	return p.width
}

// Reset clears the input.
func (p *PlaceInput) Reset() {
	p.textinput.Reset()
}
