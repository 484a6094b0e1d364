package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wxnews/internal/core/domain"
)

var weatherJSON bool

var weatherCmd = &cobra.Command{
	Use:   "weather <place>",
	Short: "Show current weather for a place",
	Long: `Fetch current weather for a place name from OpenWeatherMap.

The place is sent as typed; multiple arguments are joined with spaces.

Examples:
  wxnews weather Paris
  wxnews weather New York --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWeather,
}

func init() {
	weatherCmd.Flags().BoolVar(&weatherJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(weatherCmd)
}

func runWeather(cmd *cobra.Command, args []string) error {
	if weatherService == nil {
		return fmt.Errorf("weather %w", errServiceNotConfigured)
	}

	query := domain.PlaceQuery(strings.Join(args, " "))
	if query.IsBlank() {
		return domain.ErrEmptyQuery
	}

	w, err := weatherService.Current(cmd.Context(), query)
	if err != nil {
		return fetchFailure(err)
	}
	if w == nil {
		return errors.New(domain.WeatherFetchMessage)
	}

	if weatherJSON {
		return outputWeatherJSON(cmd, w)
	}

	cmd.Println(w.Title())
	cmd.Printf("  Icon: %s\n", w.IconURL())
	cmd.Printf("  %s\n", w.TemperatureLabel())
	cmd.Printf("  %s\n", w.HumidityLabel())
	cmd.Printf("  %s\n", w.ConditionLabel())

	return nil
}

// weatherJSONOutput is the --json shape.
type weatherJSONOutput struct {
	Place        string  `json:"place"`
	Country      string  `json:"country"`
	TemperatureC float64 `json:"temperature_c"`
	HumidityPct  float64 `json:"humidity_pct"`
	Condition    string  `json:"condition"`
	Icon         string  `json:"icon"`
	IconURL      string  `json:"icon_url"`
}

func outputWeatherJSON(cmd *cobra.Command, w *domain.Weather) error {
	data, err := json.MarshalIndent(weatherJSONOutput{
		Place:        w.Place,
		Country:      w.Country,
		TemperatureC: w.TemperatureC,
		HumidityPct:  w.HumidityPct,
		Condition:    w.Condition,
		Icon:         w.Icon,
		IconURL:      w.IconURL(),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// fetchFailure turns provider failures into the generic user-facing line.
// The cause is only visible with --verbose.
func fetchFailure(err error) error {
	if msg := domain.UserMessage(err); msg != "" {
		if verbose {
			return fmt.Errorf("%s (%w)", msg, err)
		}
		return errors.New(msg)
	}
	return err
}
