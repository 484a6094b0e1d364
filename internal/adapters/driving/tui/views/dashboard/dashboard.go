// Package dashboard provides the single weather and headlines screen.
package dashboard

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/wxnews/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/wxnews/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/wxnews/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/wxnews/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/wxnews/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/wxnews/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/wxnews/internal/core/ports/driving"
	"github.com/custodia-labs/wxnews/internal/logger"
	"github.com/custodia-labs/wxnews/internal/requestid"
)

// View is the dashboard: place input, weather block, error line and
// headline list, with a status bar underneath.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.PlaceInput
	list      *list.ArticleList
	statusbar *status.Bar
	spinner   spinner.Model

	weatherService   driving.WeatherService
	headlinesService driving.HeadlinesService
	ctx              context.Context

	state    State
	focus    messages.Focus
	spinning bool
	width    int
	height   int
	ready    bool
}

// NewView creates a new dashboard view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	weatherService driving.WeatherService,
	headlinesService driving.HeadlinesService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(s.Title),
	)

	v := &View{
		styles:           s,
		keymap:           km,
		input:            input.NewPlaceInput(s),
		list:             list.NewArticleList(s),
		statusbar:        status.NewBar(s, km),
		spinner:          sp,
		weatherService:   weatherService,
		headlinesService: headlinesService,
		ctx:              context.Background(),
		state:            NewState(),
		focus:            messages.FocusInput,
		width:            80,
		height:           24,
	}
	v.relayout()
	return v
}

// WithContext sets the context fetches run under.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init starts the cursor blink and the initial headlines fetch.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.input.Init(), v.FetchHeadlines())
}

// Update handles messages for the dashboard.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	cmd := v.update(msg)
	v.syncStatus()
	v.relayout()
	return v, cmd
}

func (v *View) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		v.ready = true
		return nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.WeatherLoaded:
		v.handleWeatherLoaded(msg)
		return nil

	case messages.HeadlinesLoaded:
		v.handleHeadlinesLoaded(msg)
		return nil

	case messages.FocusChanged:
		return v.setFocus(msg.Focus)

	case spinner.TickMsg:
		if !v.state.Loading() {
			v.spinning = false
			return nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return cmd
	}

	// Cursor blink and other input housekeeping
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	keyStr := msg.String()

	if keymap.Matches(keyStr, v.keymap.FocusNext) {
		if v.focus == messages.FocusInput {
			return v.setFocus(messages.FocusHeadlines)
		}
		return v.setFocus(messages.FocusInput)
	}

	if v.focus == messages.FocusInput {
		if keymap.Matches(keyStr, v.keymap.Submit) {
			return v.SubmitWeather()
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		v.state.SetQuery(v.input.Query())
		return cmd
	}

	switch {
	case keymap.Matches(keyStr, v.keymap.Back):
		return v.setFocus(messages.FocusInput)
	case keymap.Matches(keyStr, v.keymap.Refresh):
		return v.FetchHeadlines()
	case keymap.Matches(keyStr, v.keymap.Quit):
		return func() tea.Msg { return messages.Quit{} }
	case keymap.Matches(keyStr, v.keymap.Up), keymap.Matches(keyStr, v.keymap.Down):
		v.list, _ = v.list.Update(msg)
	}
	return nil
}

func (v *View) setFocus(f messages.Focus) tea.Cmd {
	v.focus = f
	v.list.SetFocused(f == messages.FocusHeadlines)
	v.statusbar.SetListFocused(f == messages.FocusHeadlines)
	if f == messages.FocusInput {
		return v.input.Focus()
	}
	v.input.Blur()
	return nil
}

// SubmitWeather dispatches a weather fetch for the typed place.
// A blank query is ignored.
func (v *View) SubmitWeather() tea.Cmd {
	if !v.state.BeginWeather() {
		return nil
	}

	id := requestid.New()
	query := v.state.Query
	logger.Debug("dashboard: weather dispatched request=%s", id)

	svc := v.weatherService
	ctx := requestid.WithRequestID(v.ctx, id)
	fetch := func() tea.Msg {
		w, err := svc.Current(ctx, query)
		return messages.WeatherLoaded{RequestID: id, Weather: w, Err: err}
	}
	return tea.Batch(fetch, v.startSpinner())
}

// FetchHeadlines dispatches a headlines fetch.
func (v *View) FetchHeadlines() tea.Cmd {
	v.state.BeginNews()

	id := requestid.New()
	logger.Debug("dashboard: headlines dispatched request=%s", id)

	svc := v.headlinesService
	ctx := requestid.WithRequestID(v.ctx, id)
	fetch := func() tea.Msg {
		articles, err := svc.TopHeadlines(ctx)
		return messages.HeadlinesLoaded{RequestID: id, Articles: articles, Err: err}
	}
	return tea.Batch(fetch, v.startSpinner())
}

func (v *View) startSpinner() tea.Cmd {
	if v.spinning {
		return nil
	}
	v.spinning = true
	return v.spinner.Tick
}

func (v *View) handleWeatherLoaded(msg messages.WeatherLoaded) {
	if msg.Err != nil {
		logger.Warn("dashboard: weather request=%s failed: %v", msg.RequestID, msg.Err)
	} else {
		logger.Debug("dashboard: weather request=%s resolved", msg.RequestID)
	}
	v.state.ResolveWeather(msg.Weather, msg.Err)
}

func (v *View) handleHeadlinesLoaded(msg messages.HeadlinesLoaded) {
	if msg.Err != nil {
		logger.Warn("dashboard: headlines request=%s failed: %v", msg.RequestID, msg.Err)
	} else {
		logger.Debug("dashboard: headlines request=%s resolved with %d articles", msg.RequestID, len(msg.Articles))
	}
	v.state.ResolveNews(msg.Articles, msg.Err)
	v.list.SetArticles(v.state.Articles)
}

// syncStatus mirrors the state onto the status bar.
func (v *View) syncStatus() {
	v.statusbar.SetHeadlineCount(v.list.Count())

	switch {
	case v.state.WeatherLoading:
		v.statusbar.SetState(status.StateLoading)
		v.statusbar.SetMessage(LoadingWeather)
	case v.state.NewsLoading:
		v.statusbar.SetState(status.StateLoading)
		v.statusbar.SetMessage(LoadingHeadlines)
	case v.state.ErrorMessage != "":
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage("")
	default:
		v.statusbar.SetState(status.StateReady)
		v.statusbar.SetMessage("")
	}
}

// relayout gives the headline list whatever height is left.
func (v *View) relayout() {
	top := lipgloss.Height(RenderTop(&v.state, v.frame()))
	bar := lipgloss.Height(v.statusbar.View())
	remaining := v.height - top - bar - 1
	if remaining < 0 {
		remaining = 0
	}
	v.list.SetDimensions(v.width, remaining)
}

func (v *View) frame() Frame {
	return Frame{
		Styles:  v.styles,
		Width:   v.width,
		Input:   v.input.View(),
		Spinner: v.spinner.View(),
		List:    v.list.View(),
	}
}

// View renders the dashboard.
func (v *View) View() string {
	body := Render(&v.state, v.frame())

	gap := v.height - lipgloss.Height(body) - lipgloss.Height(v.statusbar.View())
	if gap < 1 {
		gap = 1
	}
	return body + strings.Repeat("\n", gap) + v.statusbar.View()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.input.SetWidth(width)
	v.statusbar.SetWidth(width)
	v.relayout()
}

// State returns a copy of the current state.
func (v *View) State() State {
	return v.state
}

// Focus returns which area receives keys.
func (v *View) Focus() messages.Focus {
	return v.focus
}

// Ready returns whether the view has received its dimensions.
func (v *View) Ready() bool {
	return v.ready
}

// SelectedIndex returns the highlighted headline.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}
