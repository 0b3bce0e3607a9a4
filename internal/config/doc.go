// Package config provides user preference management for recipefinder.
//
// Preferences live in a YAML file stored at platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/recipefinder/config.yaml or $HOME/.config/recipefinder/config.yaml
//   - macOS: $HOME/.config/recipefinder/config.yaml
//   - Windows: %LOCALAPPDATA%\recipefinder\config.yaml
//
// # Security
//
// IMPORTANT: this package NEVER stores the Spoonacular API key. The key is
// read from the SPOONACULAR_API_KEY environment variable, a flag, or an
// interactive prompt.
//
// # Usage Example
//
//	prefs, err := config.LoadPreferences()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	prefs.PageSize = 20
//	if err := prefs.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// The global preferences use sync.Once for safe initialization across
// goroutines. File operations are protected by a mutex to ensure atomic
// writes.
package config
