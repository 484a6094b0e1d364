package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wxnews/internal/core/domain"
)

var (
	headlinesLimit int
	headlinesJSON  bool
)

var headlinesCmd = &cobra.Command{
	Use:   "headlines",
	Short: "Show top news headlines",
	Long: `Fetch top headlines from NewsAPI for the configured country.

Examples:
  wxnews headlines
  wxnews headlines -n 5
  wxnews headlines --json`,
	Args: cobra.NoArgs,
	RunE: runHeadlines,
}

func init() {
	headlinesCmd.Flags().IntVarP(&headlinesLimit, "limit", "n", 0, "maximum number of headlines (0 for all)")
	headlinesCmd.Flags().BoolVar(&headlinesJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(headlinesCmd)
}

func runHeadlines(cmd *cobra.Command, _ []string) error {
	if headlinesService == nil {
		return fmt.Errorf("headlines %w", errServiceNotConfigured)
	}

	articles, err := headlinesService.TopHeadlines(cmd.Context())
	if err != nil {
		return fetchFailure(err)
	}

	if headlinesLimit > 0 && len(articles) > headlinesLimit {
		articles = articles[:headlinesLimit]
	}

	if headlinesJSON {
		return outputHeadlinesJSON(cmd, articles)
	}

	if len(articles) == 0 {
		cmd.Println("No headlines available.")
		return nil
	}

	cmd.Printf("Top Headlines (%d)\n\n", len(articles))
	for i, a := range articles {
		title := a.Title
		if title == "" {
			title = "(Untitled)"
		}
		cmd.Printf("%d. %s\n", i+1, title)
		if a.Description != "" {
			cmd.Printf("   %s\n", a.Description)
		}
		cmd.Printf("   Image: %s\n", a.Image())
		cmd.Println()
	}

	return nil
}

// articleJSON is the --json shape of one headline.
type articleJSON struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

func outputHeadlinesJSON(cmd *cobra.Command, articles []domain.Article) error {
	out := make([]articleJSON, len(articles))
	for i, a := range articles {
		out[i] = articleJSON{
			Title:       a.Title,
			Description: a.Description,
			ImageURL:    a.Image(),
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
