package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// withTempConfigDir points the config path at a temp directory for one test.
func withTempConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("LOCALAPPDATA", dir)
	return dir
}

func TestNewPreferences_Defaults(t *testing.T) {
	p := NewPreferences()

	if p.Version != 1 {
		t.Errorf("Version = %d, want 1", p.Version)
	}
	if p.PageSize != DefaultPageSize {
		t.Errorf("PageSize = %d, want %d", p.PageSize, DefaultPageSize)
	}
	if p.SimilarCount != DefaultSimilarCount {
		t.Errorf("SimilarCount = %d, want %d", p.SimilarCount, DefaultSimilarCount)
	}
	if p.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %s, want %s", p.BaseURL, DefaultBaseURL)
	}
	if p.TimeoutSeconds != DefaultTimeoutSeconds {
		t.Errorf("TimeoutSeconds = %d, want %d", p.TimeoutSeconds, DefaultTimeoutSeconds)
	}
}

func TestLoadPreferences_MissingFileReturnsDefaults(t *testing.T) {
	withTempConfigDir(t)

	p, err := ReloadPreferences()
	if err != nil {
		t.Fatalf("ReloadPreferences() error = %v", err)
	}
	if p.PageSize != DefaultPageSize {
		t.Errorf("PageSize = %d, want default %d", p.PageSize, DefaultPageSize)
	}
}

func TestSaveAndReload_RoundTrip(t *testing.T) {
	withTempConfigDir(t)

	p := NewPreferences()
	p.PageSize = 20
	p.SimilarCount = 8
	p.TimeoutSeconds = 30

	if err := p.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := ReloadPreferences()
	if err != nil {
		t.Fatalf("ReloadPreferences() error = %v", err)
	}

	if loaded.PageSize != 20 {
		t.Errorf("PageSize = %d, want 20", loaded.PageSize)
	}
	if loaded.SimilarCount != 8 {
		t.Errorf("SimilarCount = %d, want 8", loaded.SimilarCount)
	}
	if loaded.TimeoutSeconds != 30 {
		t.Errorf("TimeoutSeconds = %d, want 30", loaded.TimeoutSeconds)
	}
}

func TestSave_FileNeverContainsAPIKey(t *testing.T) {
	withTempConfigDir(t)
	t.Setenv("SPOONACULAR_API_KEY", "super-secret-key")

	p := NewPreferences()
	if err := p.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	path, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if strings.Contains(string(data), "super-secret-key") {
		t.Error("config file contains the API key")
	}
	if !strings.Contains(string(data), "NEVER stored") {
		t.Error("config file header should state the API key is not stored")
	}
}

func TestLoad_PartialFileGetsDefaults(t *testing.T) {
	dir := withTempConfigDir(t)

	configDir := filepath.Join(dir, "recipefinder")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		t.Fatal(err)
	}
	partial := "version: 1\npage_size: 25\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(partial), 0600); err != nil {
		t.Fatal(err)
	}

	p, err := ReloadPreferences()
	if err != nil {
		t.Fatalf("ReloadPreferences() error = %v", err)
	}

	if p.PageSize != 25 {
		t.Errorf("PageSize = %d, want 25", p.PageSize)
	}
	if p.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %s, want default filled in", p.BaseURL)
	}
	if p.SimilarCount != DefaultSimilarCount {
		t.Errorf("SimilarCount = %d, want default filled in", p.SimilarCount)
	}
}

func TestLoad_UnsupportedVersionRejected(t *testing.T) {
	dir := withTempConfigDir(t)

	configDir := filepath.Join(dir, "recipefinder")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("version: 99\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := ReloadPreferences(); err == nil {
		t.Fatal("ReloadPreferences() accepted unsupported version, want error")
	}
}

func TestGetConfigPath_EndsWithConfigFile(t *testing.T) {
	withTempConfigDir(t)

	path, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}
	if filepath.Base(path) != "config.yaml" {
		t.Errorf("config path = %s, want it to end in config.yaml", path)
	}
	if !strings.Contains(path, "recipefinder") {
		t.Errorf("config path = %s, want the app directory in it", path)
	}
}
