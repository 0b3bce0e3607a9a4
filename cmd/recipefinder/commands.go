package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pkoski/recipefinder/internal/config"
	"github.com/pkoski/recipefinder/internal/spoonacular"
	"github.com/pkoski/recipefinder/internal/ui"
)

// Command flags
var (
	apiKey         string
	timeoutSeconds int
	outputFormat   string
	resultCount    int
	resultOffset   int
)

func init() {
	// Common flags for all API commands (persistent on root)
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "Spoonacular API key (overrides "+spoonacular.APIKeyEnvVar+")")
	rootCmd.PersistentFlags().IntVar(&timeoutSeconds, "timeout", 0, "Request timeout in seconds (0 uses the configured default)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "detailed", "Output format (detailed, compact, json)")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(similarCmd)
	rootCmd.AddCommand(browseCmd)
}

// resolveAPIKey finds the API key: the --api-key flag wins, then the
// environment variable, then an interactive prompt when stdin is a
// terminal. The key is never written to the config file.
func resolveAPIKey() (string, error) {
	if apiKey != "" {
		return apiKey, nil
	}
	if key := os.Getenv(spoonacular.APIKeyEnvVar); key != "" {
		return key, nil
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("no API key: set %s or pass --api-key", spoonacular.APIKeyEnvVar)
	}

	fmt.Fprintf(os.Stderr, "Spoonacular API key: ")
	key, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read API key: %w", err)
	}
	if len(key) == 0 {
		return "", fmt.Errorf("no API key entered")
	}
	return string(key), nil
}

// buildClient assembles an API client from preferences and flags.
func buildClient() (*spoonacular.Client, *config.Preferences, error) {
	prefs, err := config.LoadPreferences()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load preferences: %w", err)
	}

	key, err := resolveAPIKey()
	if err != nil {
		return nil, nil, err
	}

	client := spoonacular.NewClientWithURL(prefs.BaseURL, key)
	client.SetRetry(prefs.MaxRetries, spoonacular.DefaultRetryDelay)

	seconds := prefs.TimeoutSeconds
	if timeoutSeconds > 0 {
		seconds = timeoutSeconds
	}
	if seconds > 0 {
		client.SetTimeout(time.Duration(seconds) * time.Second)
	}

	return client, prefs, nil
}

// browseCmd launches the interactive TUI browser
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Launch the interactive recipe browser",
	Long: `Launch an interactive full-screen browser for recipe search.

The browser provides:
- Free-text recipe search with paginated results
- Full recipe details: ingredients, instructions, calories
- One-key pivot to similar recipes

This is the recommended way to explore recipes.`,
	Example: `  # Launch the browser
  recipefinder browse
  # Or simply (browse is default):
  recipefinder`,
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	client, prefs, err := buildClient()
	if err != nil {
		return err
	}

	if err := ui.Run(client, prefs.PageSize, prefs.SimilarCount); err != nil {
		return fmt.Errorf("browser error: %w", err)
	}
	return nil
}

// searchCmd runs a one-shot search and prints the results
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search for recipes",
	Long: `Search for recipes matching a free-text query and print one page
of results. Use --offset to page through larger result sets.`,
	Example: `  # First page of results
  recipefinder search "chicken curry"

  # Next page
  recipefinder search "chicken curry" --offset 10

  # JSON output for scripting
  recipefinder search pasta --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVar(&resultCount, "number", 0, "Results per page (0 uses the configured default)")
	searchCmd.Flags().IntVar(&resultOffset, "offset", 0, "Result offset for paging")
}

func runSearch(cmd *cobra.Command, args []string) error {
	client, prefs, err := buildClient()
	if err != nil {
		return err
	}

	count := prefs.PageSize
	if resultCount > 0 {
		count = resultCount
	}

	results, err := client.Search(args[0], count, resultOffset)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(results) == 0 {
		fmt.Println("No recipes found.")
		return nil
	}

	switch outputFormat {
	case "json":
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
	default:
		for _, r := range results {
			fmt.Println(r)
		}
		if len(results) == count {
			fmt.Printf("\nMore may be available: --offset %d\n", resultOffset+count)
		}
	}

	return nil
}

// showCmd prints one recipe's full details
var showCmd = &cobra.Command{
	Use:   "show <recipe-id>",
	Short: "Show a recipe's details",
	Long: `Fetch and print one recipe: cooking time, servings, calories,
source link, ingredients, and instructions.`,
	Example: `  # Full details
  recipefinder show 716429

  # One-line summary
  recipefinder show 716429 --format compact

  # JSON output for scripting
  recipefinder show 716429 --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid recipe id %q", args[0])
	}

	client, _, err := buildClient()
	if err != nil {
		return err
	}

	detail, err := client.GetDetail(id)
	if err != nil {
		return fmt.Errorf("failed to fetch recipe %d: %w", id, err)
	}

	switch outputFormat {
	case "compact":
		fmt.Println(detail.FormatCompact())
	case "json":
		data, err := json.MarshalIndent(detail, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
	case "detailed":
		fallthrough
	default:
		fmt.Println(detail.FormatDetailed())
	}

	return nil
}

// similarCmd lists recipes similar to a given one
var similarCmd = &cobra.Command{
	Use:   "similar <recipe-id>",
	Short: "List recipes similar to a given one",
	Example: `  # Five similar recipes (default)
  recipefinder similar 716429

  # More of them
  recipefinder similar 716429 --number 10`,
	Args: cobra.ExactArgs(1),
	RunE: runSimilar,
}

func init() {
	similarCmd.Flags().IntVar(&resultCount, "number", 0, "How many similar recipes to fetch (0 uses the configured default)")
}

func runSimilar(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid recipe id %q", args[0])
	}

	client, prefs, err := buildClient()
	if err != nil {
		return err
	}

	count := prefs.SimilarCount
	if resultCount > 0 {
		count = resultCount
	}

	results, err := client.GetSimilar(id, count)
	if err != nil {
		return fmt.Errorf("failed to fetch similar recipes: %w", err)
	}

	if len(results) == 0 {
		fmt.Println("No similar recipes found.")
		return nil
	}

	switch outputFormat {
	case "json":
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
	default:
		for _, r := range results {
			fmt.Println(r)
		}
	}

	return nil
}
