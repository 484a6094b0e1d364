package dashboard

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/wxnews/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/wxnews/internal/core/domain"
)

func testFrame() Frame {
	return Frame{
		Styles:  styles.DefaultStyles(),
		Width:   80,
		Input:   "[input]",
		Spinner: "*",
		List:    "[list]",
	}
}

func TestRender_Initial(t *testing.T) {
	st := NewState()

	out := ansi.Strip(Render(&st, testFrame()))

	assert.Contains(t, out, HeaderText)
	assert.Contains(t, out, "[input]")
	assert.Contains(t, out, HeadlinesTitle)
	assert.Contains(t, out, "[list]")
	assert.NotContains(t, out, "Weather in")
	assert.NotContains(t, out, LoadingWeather)
}

func TestRender_Weather(t *testing.T) {
	st := NewState()
	st.Weather = paris

	out := ansi.Strip(Render(&st, testFrame()))

	assert.Contains(t, out, "Weather in Paris, FR")
	assert.Contains(t, out, "Icon: http://openweathermap.org/img/wn/01d.png")
	assert.Contains(t, out, "Temperature: 18.5°C")
	assert.Contains(t, out, "Humidity: 60%")
	assert.Contains(t, out, "Condition: clear sky")
}

func TestRender_WeatherLoadingHidesResult(t *testing.T) {
	st := NewState()
	st.Weather = paris
	st.WeatherLoading = true

	out := ansi.Strip(Render(&st, testFrame()))

	assert.Contains(t, out, "* "+LoadingWeather)
	assert.NotContains(t, out, "Weather in Paris")
}

func TestRender_Error(t *testing.T) {
	st := NewState()
	st.ErrorMessage = domain.WeatherFetchMessage

	out := ansi.Strip(Render(&st, testFrame()))

	assert.Contains(t, out, domain.WeatherFetchMessage)
}

func TestRender_NewsLoadingHidesList(t *testing.T) {
	st := NewState()
	st.NewsLoading = true

	out := ansi.Strip(Render(&st, testFrame()))

	assert.Contains(t, out, "* "+LoadingHeadlines)
	assert.NotContains(t, out, "[list]")
}

func TestRender_IsPure(t *testing.T) {
	st := NewState()
	st.Weather = paris
	before := st

	first := Render(&st, testFrame())
	second := Render(&st, testFrame())

	assert.Equal(t, first, second)
	assert.Equal(t, before, st)
}

func TestRenderWeather_EmptyWhenNothingToShow(t *testing.T) {
	st := NewState()

	assert.Equal(t, "", RenderWeather(&st, testFrame()))
}
