package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Language != "en" {
		t.Fatalf("default language = %q", cfg.Language)
	}
	if !cfg.Updates.Enabled || cfg.Updates.IntervalHours != 24 {
		t.Fatalf("default updates = %+v", cfg.Updates)
	}
	if cfg.Translate.Enabled {
		t.Fatalf("translation should default off")
	}
}

func TestLoadMissingExplicitPathUsesDefaults(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")
	cfg, resolved, exists, err := Load(missing)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatalf("Load reported a missing file as existing")
	}
	if resolved != missing {
		t.Fatalf("resolved = %q", resolved)
	}
	if cfg.Source.DocumentURL == "" {
		t.Fatalf("defaults not applied")
	}
}

func TestLoadParsesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
language = "es"

[paths]
data_dir = "` + filepath.Join(dir, "data") + `"
log_dir = "` + filepath.Join(dir, "logs") + `"

[updates]
enabled = false

[logging]
format = "json"
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists {
		t.Fatalf("Load did not report the file as existing")
	}
	if cfg.Language != "es" {
		t.Fatalf("language = %q", cfg.Language)
	}
	if cfg.Updates.Enabled {
		t.Fatalf("updates should be disabled")
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging = %+v", cfg.Logging)
	}
	if cfg.Paths.DataDir != filepath.Join(dir, "data") {
		t.Fatalf("data dir = %q", cfg.Paths.DataDir)
	}
}

func TestLoadRejectsBadLanguage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("language = \"fr\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := Load(path); err == nil || !strings.Contains(err.Error(), "language") {
		t.Fatalf("Load = %v, want language error", err)
	}
}

func TestEnvOverridesLanguage(t *testing.T) {
	t.Setenv("OPTOUT_LANGUAGE", "ES")
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Language != "es" {
		t.Fatalf("language = %q, want es", cfg.Language)
	}
}

func TestEnvOverridesDocumentURL(t *testing.T) {
	t.Setenv("OPTOUT_DOCUMENT_URL", "https://mirror.example.com/list.md")
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Source.DocumentURL != "https://mirror.example.com/list.md" {
		t.Fatalf("document url = %q", cfg.Source.DocumentURL)
	}
}

func TestValidateRejectsBadURL(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	cfg.Source.DocumentURL = "ftp://example.com/list.md"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected scheme error")
	}
}

func TestValidateSkipsDisabledSections(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	cfg.Updates.Enabled = false
	cfg.Updates.FeedURL = "not a url at all://"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("disabled updates should not be validated: %v", err)
	}
}

func TestDerivedPaths(t *testing.T) {
	cfg := Default()
	cfg.Paths.DataDir = "/tmp/optout-test"
	if got := cfg.DatabasePath(); got != "/tmp/optout-test/journeys.db" {
		t.Fatalf("DatabasePath = %q", got)
	}
	if got := cfg.DocumentCachePath(); got != "/tmp/optout-test/brokers.md" {
		t.Fatalf("DocumentCachePath = %q", got)
	}
}

func TestSampleConfigParses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(SampleConfig()), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _, _, err := Load(path)
	if err != nil {
		t.Fatalf("sample config failed to load: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("sample config invalid: %v", err)
	}
}
