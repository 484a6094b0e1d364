package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/wxnews/internal/core/domain"
)

// stdin is where interactive prompts read from. Tests replace it.
var stdin io.Reader = os.Stdin

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure API keys and provider options.

Settings are stored in ~/.wxnews/config.toml. The environment variables
WXNEWS_WEATHER_API_KEY and WXNEWS_NEWS_API_KEY take precedence over stored keys.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetKeyCmd = &cobra.Command{
	Use:       "set-key <weather|news>",
	Short:     "Store an API key",
	Long:      `Prompt for an API key and store it. Input is hidden when run in a terminal.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{domain.FetchSourceWeather.String(), domain.FetchSourceNews.String()},
	RunE:      runSettingsSetKey,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a single setting",
	Long: `Set a single setting by its config key.

Available keys:
  weather.api_key, weather.base_url
  news.api_key, news.base_url, news.country
  http.timeout_seconds`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetKeyCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Printf("File: %s\n", settingsService.Path())
	cmd.Println()

	cmd.Println("[Weather]")
	cmd.Printf("  Provider: OpenWeatherMap\n")
	cmd.Printf("  Base URL: %s\n", settings.Weather.BaseURL)
	cmd.Printf("  API Key: %s\n", describeKey(settings.Weather.APIKey))
	cmd.Printf("  Status: %s\n", configuredLabel(settings.Weather.IsConfigured()))
	cmd.Println()

	cmd.Println("[News]")
	cmd.Printf("  Provider: NewsAPI\n")
	cmd.Printf("  Base URL: %s\n", settings.News.BaseURL)
	cmd.Printf("  Country: %s\n", settings.News.Country)
	cmd.Printf("  API Key: %s\n", describeKey(settings.News.APIKey))
	cmd.Printf("  Status: %s\n", configuredLabel(settings.News.IsConfigured()))
	cmd.Println()

	cmd.Println("[HTTP]")
	cmd.Printf("  Timeout: %s\n", settings.HTTP.Timeout)

	if !settings.Weather.IsConfigured() || !settings.News.IsConfigured() {
		cmd.Println()
		cmd.Println("Run 'wxnews settings set-key weather' or 'wxnews settings set-key news' to add missing keys.")
	}

	return nil
}

func runSettingsSetKey(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	source := domain.FetchSource(strings.ToLower(args[0]))
	if source != domain.FetchSourceWeather && source != domain.FetchSourceNews {
		return fmt.Errorf("unknown provider %q (expected weather or news)", args[0])
	}

	cmd.Printf("Enter %s API key: ", source)
	key := readPassword()
	cmd.Println()
	if key == "" {
		return errors.New("API key is required")
	}

	if err := settingsService.SetAPIKey(source, key); err != nil {
		return fmt.Errorf("failed to store API key: %w", err)
	}

	cmd.Printf("%s API key saved (%s)\n", source, maskAPIKey(key))
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}

	cmd.Printf("%s updated\n", args[0])
	return nil
}

func describeKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	return maskAPIKey(key)
}

func configuredLabel(ok bool) string {
	if ok {
		return "configured"
	}
	return "not configured"
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read password without echo
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		password, err := term.ReadPassword(int(f.Fd()))
		if err == nil {
			return strings.TrimSpace(string(password))
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
