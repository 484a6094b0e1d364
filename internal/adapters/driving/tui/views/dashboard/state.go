package dashboard

import (
	"github.com/custodia-labs/wxnews/internal/core/domain"
)

// State is everything the dashboard shows. It changes only through the
// methods below, which the view calls from Update.
//
// The two fetch flows each own a loading flag and their data field. They
// share ErrorMessage, and whichever flow fails last wins it.
type State struct {
	// Query is the place text exactly as typed.
	Query domain.PlaceQuery

	// Weather is the last successful weather result, nil until one arrives.
	Weather *domain.Weather

	// Articles is the last successful headline list, in provider order.
	Articles []domain.Article

	// ErrorMessage is the user-facing text of the most recent failure.
	ErrorMessage string

	// ErrorSource records which flow set ErrorMessage. It is not displayed.
	ErrorSource domain.FetchSource

	// WeatherLoading is true while a weather fetch is in flight.
	WeatherLoading bool

	// NewsLoading is true while a headlines fetch is in flight.
	NewsLoading bool
}

// NewState returns the state shown before anything has been fetched.
func NewState() State {
	return State{
		Articles: []domain.Article{},
	}
}

// SetQuery replaces the query verbatim.
func (s *State) SetQuery(q domain.PlaceQuery) {
	s.Query = q
}

// BeginWeather starts a weather fetch for the current query. It reports
// false, leaving the state untouched, when the query is blank.
func (s *State) BeginWeather() bool {
	if s.Query.IsBlank() {
		return false
	}
	s.clearError()
	s.WeatherLoading = true
	return true
}

// ResolveWeather applies the outcome of a weather fetch. A failure keeps
// the previous result on screen.
func (s *State) ResolveWeather(w *domain.Weather, err error) {
	s.WeatherLoading = false

	if err == nil && w == nil {
		err = domain.NewWeatherError(nil)
	}
	if err != nil {
		s.setError(domain.FetchSourceWeather, err)
		return
	}
	s.Weather = w
}

// BeginNews starts a headlines fetch.
func (s *State) BeginNews() {
	s.NewsLoading = true
}

// ResolveNews applies the outcome of a headlines fetch. Success replaces
// the list wholesale; failure keeps the previous list.
func (s *State) ResolveNews(articles []domain.Article, err error) {
	s.NewsLoading = false

	if err != nil {
		s.setError(domain.FetchSourceNews, err)
		return
	}
	if articles == nil {
		articles = []domain.Article{}
	}
	s.Articles = articles
}

// Loading reports whether either flow is in flight.
func (s *State) Loading() bool {
	return s.WeatherLoading || s.NewsLoading
}

func (s *State) setError(source domain.FetchSource, err error) {
	msg := domain.UserMessage(err)
	if msg == "" {
		msg = domain.UserMessage(&domain.FetchError{Source: source, Err: err})
	}
	s.ErrorMessage = msg
	s.ErrorSource = source
}

func (s *State) clearError() {
	s.ErrorMessage = ""
	s.ErrorSource = ""
}
