package testsupport

import (
	"path/filepath"
	"testing"

	"optout/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Updates.Enabled = false
	cfg.Translate.Enabled = false

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithLanguage sets the display language on the test config.
func WithLanguage(lang string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Language = lang
	}
}

// WithUpdates enables the journey feed with the given URL.
func WithUpdates(url string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Updates.Enabled = true
		cfg.Updates.FeedURL = url
	}
}
