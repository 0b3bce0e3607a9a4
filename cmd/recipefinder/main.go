// Recipefinder is a terminal client for searching recipes.
//
// It provides an interactive full-screen browser for recipe search results
// backed by the Spoonacular API, plus direct commands for scripting:
// searching, showing a single recipe, and listing similar recipes.
//
// Usage:
//
//	recipefinder [command] [flags]
//
// Running without arguments launches the interactive browser.
// See 'recipefinder --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pkoski/recipefinder/internal/logging"
	"github.com/pkoski/recipefinder/internal/version"
)

func main() {
	// Silent unless RECIPEFINDER_LOG_LEVEL is set
	if err := logging.InitializeFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "recipefinder",
	Short: "Recipe search in your terminal",
	Long: `A terminal client for searching recipes via the Spoonacular API.

Browse paginated search results, open full recipes with ingredients and
instructions, and jump to similar recipes.

If no command is specified, the interactive browser launches automatically.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: launch the interactive browser
		return runBrowse(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("recipefinder %s (commit: %s)\n", version.Version, version.Commit)
	},
}
