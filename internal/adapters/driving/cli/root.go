// Package cli provides the wxnews command line interface.
// It is a driving adapter: commands call core services through driving ports
// that are injected by the composition root.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wxnews/internal/core/ports/driving"
	"github.com/custodia-labs/wxnews/internal/logger"
)

// DefaultLogFile is where TUI logs go when --verbose is set.
const DefaultLogFile = "wxnews-debug.log"

// version is overridden at build time or by SetVersion.
var version = "dev"

// Injected services.
var (
	weatherService   driving.WeatherService
	headlinesService driving.HeadlinesService
	settingsService  driving.SettingsService
)

// Persistent flags.
var (
	verbose   bool
	configDir string
	logFile   string
)

// Options are the resolved persistent flags handed to the bootstrap hook.
type Options struct {
	Verbose   bool
	ConfigDir string
	LogFile   string
	Version   string
}

// Services are the driving ports a bootstrap hook produces.
type Services struct {
	Weather   driving.WeatherService
	Headlines driving.HeadlinesService
	Settings  driving.SettingsService
}

// BootstrapFunc builds services once flags are parsed. It runs under the
// command context, so background work it starts stops with the command.
type BootstrapFunc func(ctx context.Context, opts Options) (*Services, error)

var bootstrap BootstrapFunc

var errServiceNotConfigured = errors.New("service not configured")

var rootCmd = &cobra.Command{
	Use:   "wxnews",
	Short: "Current weather and top headlines in your terminal",
	Long: `wxnews shows the current weather for a place you type and the top
news headlines, side by side on one screen.

Run without a subcommand to open the interactive screen. API keys for
OpenWeatherMap and NewsAPI are read from ~/.wxnews/config.toml or from the
WXNEWS_WEATHER_API_KEY and WXNEWS_NEWS_API_KEY environment variables.`,
	SilenceUsage:      true,
	PersistentPreRunE: runBootstrap,
	RunE:              runTUI,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.wxnews)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", DefaultLogFile, "log file used by the interactive screen")
}

// SetVersion sets the version reported by the version command and User-Agent.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Version returns the current version string.
func Version() string {
	return version
}

// SetServices injects the driving ports used by commands.
func SetServices(weather driving.WeatherService, headlines driving.HeadlinesService, settings driving.SettingsService) {
	weatherService = weather
	headlinesService = headlines
	settingsService = settings
}

// SetBootstrap registers the hook that builds services after flag parsing.
func SetBootstrap(fn BootstrapFunc) {
	bootstrap = fn
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func runBootstrap(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if bootstrap == nil {
		return nil
	}

	services, err := bootstrap(cmd.Context(), Options{
		Verbose:   verbose,
		ConfigDir: configDir,
		LogFile:   logFile,
		Version:   version,
	})
	if err != nil {
		return err
	}
	SetServices(services.Weather, services.Headlines, services.Settings)
	return nil
}
