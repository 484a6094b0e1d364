package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/wxnews/internal/adapters/driving/tui/styles"
)

// Screen texts.
const (
	HeaderText       = "Weather & News Updates"
	HeadlinesTitle   = "Top Headlines"
	LoadingWeather   = "Loading weather..."
	LoadingHeadlines = "Loading headlines..."
)

// Frame carries the already-rendered widgets a render needs. Keeping them
// outside State lets Render stay a pure function of its arguments.
type Frame struct {
	Styles  *styles.Styles
	Width   int
	Input   string
	Spinner string
	List    string
}

// Render projects state onto the full screen body, without the status bar.
func Render(st *State, f Frame) string {
	return strings.Join([]string{
		RenderTop(st, f),
		RenderNews(st, f),
	}, "\n")
}

// RenderTop renders everything above the headline list.
func RenderTop(st *State, f Frame) string {
	s := f.Styles
	header := s.Header.Render(HeaderText)
	if f.Width > 0 {
		header = s.Header.Width(f.Width).Render(HeaderText)
	}

	parts := []string{header, "", f.Input}

	if weather := RenderWeather(st, f); weather != "" {
		parts = append(parts, "", weather)
	}
	if st.ErrorMessage != "" {
		parts = append(parts, "", s.Error.Render(st.ErrorMessage))
	}

	parts = append(parts, "", s.Title.Render(HeadlinesTitle))
	return strings.Join(parts, "\n")
}

// RenderWeather renders the weather block: a progress line while loading,
// else the last result, else nothing.
func RenderWeather(st *State, f Frame) string {
	s := f.Styles

	if st.WeatherLoading {
		return f.Spinner + " " + s.Muted.Render(LoadingWeather)
	}
	if st.Weather == nil {
		return ""
	}

	w := st.Weather
	return lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render(w.Title()),
		s.Muted.Render("Icon: "+w.IconURL()),
		s.Value.Render(w.TemperatureLabel()),
		s.Normal.Render(w.HumidityLabel()),
		s.Normal.Render(w.ConditionLabel()),
	)
}

// RenderNews renders a progress line while headlines load, else the list.
func RenderNews(st *State, f Frame) string {
	if st.NewsLoading {
		return f.Spinner + " " + f.Styles.Muted.Render(LoadingHeadlines)
	}
	return f.List
}
