package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/wxnews/internal/adapters/driving/tui"
	"github.com/custodia-labs/wxnews/internal/logger"
)

// tuiCmd represents the tui command. The root command runs the same thing.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive weather and headlines screen.

Controls:
  Enter    - Get weather for the typed place
  Tab      - Switch between input and headlines
  ↑/k, ↓/j - Navigate headlines
  r        - Refresh headlines
  Esc      - Back to input
  q        - Quit (from headlines)
  Ctrl+C   - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// newApp builds the TUI from the injected services.
func newApp() (*tui.App, error) {
	app, err := tui.NewApp(tui.NewPorts(weatherService, headlinesService))
	if err != nil {
		return nil, fmt.Errorf("failed to create TUI: %w", err)
	}
	return app, nil
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	app, err := newApp()
	if err != nil {
		return err
	}

	// Debug output would corrupt the alt screen, so it goes to a file.
	if verbose && logFile != "" {
		f, logErr := tea.LogToFile(logFile, "wxnews")
		if logErr != nil {
			return fmt.Errorf("failed to open log file: %w", logErr)
		}
		defer f.Close()

		prev := logger.SetOutput(f)
		defer logger.SetOutput(prev)
	}

	app.WithContext(cmd.Context())

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
