package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	appName    = "recipefinder"
	configFile = "config.yaml"
)

// Defaults applied when the config file is absent or fields are unset.
const (
	DefaultPageSize       = 10
	DefaultSimilarCount   = 5
	DefaultBaseURL        = "https://api.spoonacular.com"
	DefaultTimeoutSeconds = 10
	DefaultMaxRetries     = 3
)

var (
	// Global preferences instance (loaded lazily)
	globalPrefs     *Preferences
	globalPrefsOnce sync.Once
	globalPrefsErr  error

	// Mutex for thread-safe file operations
	fileMutex sync.Mutex
)

// Preferences stores user-tunable settings for the application.
//
// The API key is deliberately NOT part of this file. It is read from the
// SPOONACULAR_API_KEY environment variable, a command-line flag, or an
// interactive prompt, and never written to disk.
type Preferences struct {
	Version int `yaml:"version"`

	// PageSize is how many recipes each search fetch requests
	PageSize int `yaml:"page_size"`

	// SimilarCount is how many similar recipes to request per lookup
	SimilarCount int `yaml:"similar_count"`

	// BaseURL of the recipe API
	BaseURL string `yaml:"base_url"`

	// TimeoutSeconds is the per-request HTTP timeout
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// MaxRetries is the retry budget for retryable API failures
	MaxRetries int `yaml:"max_retries"`
}

// NewPreferences returns preferences populated with defaults.
func NewPreferences() *Preferences {
	return &Preferences{
		Version:        1,
		PageSize:       DefaultPageSize,
		SimilarCount:   DefaultSimilarCount,
		BaseURL:        DefaultBaseURL,
		TimeoutSeconds: DefaultTimeoutSeconds,
		MaxRetries:     DefaultMaxRetries,
	}
}

// applyDefaults fills any zero-valued fields after a partial file load.
func (p *Preferences) applyDefaults() {
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.SimilarCount <= 0 {
		p.SimilarCount = DefaultSimilarCount
	}
	if p.BaseURL == "" {
		p.BaseURL = DefaultBaseURL
	}
	if p.TimeoutSeconds <= 0 {
		p.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if p.MaxRetries < 0 {
		p.MaxRetries = DefaultMaxRetries
	}
}

// GetConfigDir returns the OS-appropriate configuration directory.
// This follows platform conventions:
//   - Linux: $XDG_CONFIG_HOME/recipefinder or $HOME/.config/recipefinder
//   - macOS: $HOME/.config/recipefinder (following XDG convention on macOS)
//   - Windows: %LOCALAPPDATA%\recipefinder
func GetConfigDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			baseDir = filepath.Join(userProfile, "AppData", "Local", appName)
		} else {
			baseDir = filepath.Join(localAppData, appName)
		}

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".config", appName)

	default:
		// Linux and other Unix-like systems
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome != "" {
			baseDir = filepath.Join(xdgConfigHome, appName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".config", appName)
		}
	}

	return baseDir, nil
}

// GetConfigPath returns the full path to the configuration file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

// ensureConfigDir creates the configuration directory if it doesn't exist.
func ensureConfigDir() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return nil
}

// LoadPreferences loads preferences from disk.
// If the file doesn't exist, returns defaults.
// Thread-safe - multiple calls will return the same instance.
func LoadPreferences() (*Preferences, error) {
	globalPrefsOnce.Do(func() {
		globalPrefs, globalPrefsErr = loadPreferencesFromDisk()
	})
	return globalPrefs, globalPrefsErr
}

// loadPreferencesFromDisk performs the actual file loading.
func loadPreferencesFromDisk() (*Preferences, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return NewPreferences(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var prefs Preferences
	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if prefs.Version != 1 {
		return nil, fmt.Errorf("unsupported config version: %d (expected 1)", prefs.Version)
	}

	prefs.applyDefaults()

	return &prefs, nil
}

// Save saves the preferences to disk.
// Performs an atomic write to prevent corruption on crash.
func (p *Preferences) Save() error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	if err := ensureConfigDir(); err != nil {
		return fmt.Errorf("failed to ensure config directory exists: %w", err)
	}

	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# Recipefinder Configuration File
#
# Security Note: the Spoonacular API key is NEVER stored in this file.
# Set the SPOONACULAR_API_KEY environment variable instead.
#
# Location: ` + configPath + `

`)
	data = append(header, data...)

	// Write to temporary file first (atomic write)
	tmpPath := configPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	if err := os.Rename(tmpPath, configPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}

// ReloadPreferences reloads preferences from disk, discarding any in-memory
// changes. Useful for reading changes made by another process.
func ReloadPreferences() (*Preferences, error) {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	globalPrefsOnce = sync.Once{}
	return LoadPreferences()
}
