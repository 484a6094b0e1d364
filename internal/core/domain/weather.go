package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// IconURLFormat builds an OpenWeatherMap icon image URL from an icon code.
const IconURLFormat = "http://openweathermap.org/img/wn/%s.png"

// PlaceQuery is the free-text place name typed by the user.
// It is stored verbatim; only submission looks at the trimmed value.
type PlaceQuery string

// Trimmed returns the query without surrounding whitespace.
func (q PlaceQuery) Trimmed() string {
	return strings.TrimSpace(string(q))
}

// IsBlank reports whether the query is empty or whitespace only.
func (q PlaceQuery) IsBlank() bool {
	return q.Trimmed() == ""
}

// String returns the query verbatim.
func (q PlaceQuery) String() string {
	return string(q)
}

// Weather is a current-weather snapshot for a single place.
// A new fetch replaces the whole value; fields are never patched.
type Weather struct {
	// Place is the place name as resolved by the provider.
	Place string

	// Country is the ISO country code of the resolved place.
	Country string

	// TemperatureC is the current temperature in degrees Celsius.
	TemperatureC float64

	// HumidityPct is the relative humidity in percent.
	HumidityPct float64

	// Condition is the provider's condition description (e.g. "clear sky").
	Condition string

	// Icon is the provider's icon code (e.g. "01d").
	Icon string
}

// IconURL returns the image URL for the weather icon.
func (w Weather) IconURL() string {
	return fmt.Sprintf(IconURLFormat, w.Icon)
}

// Title returns the heading shown above the weather details.
func (w Weather) Title() string {
	return fmt.Sprintf("Weather in %s, %s", w.Place, w.Country)
}

// TemperatureLabel returns the temperature line, e.g. "Temperature: 18.5°C".
func (w Weather) TemperatureLabel() string {
	return "Temperature: " + formatNumber(w.TemperatureC) + "°C"
}

// HumidityLabel returns the humidity line, e.g. "Humidity: 60%".
func (w Weather) HumidityLabel() string {
	return "Humidity: " + formatNumber(w.HumidityPct) + "%"
}

// ConditionLabel returns the condition line, e.g. "Condition: clear sky".
func (w Weather) ConditionLabel() string {
	return "Condition: " + w.Condition
}

// formatNumber prints the shortest decimal form: 18 -> "18", 18.5 -> "18.5".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
