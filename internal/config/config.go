package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	DataDir string `toml:"data_dir"`
	LogDir  string `toml:"log_dir"`
}

// Source contains configuration for the remote broker document.
type Source struct {
	DocumentURL    string `toml:"document_url"`
	RequestTimeout int    `toml:"request_timeout"`
}

// Updates contains configuration for the remote journey-update feed.
type Updates struct {
	Enabled       bool   `toml:"enabled"`
	FeedURL       string `toml:"feed_url"`
	IntervalHours int    `toml:"interval_hours"`
}

// Translate contains configuration for the remote translation service used
// to convert Spanish output back to English before sending or printing.
type Translate struct {
	Enabled        bool   `toml:"enabled"`
	URL            string `toml:"url"`
	RequestTimeout int    `toml:"request_timeout"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values.
//
// Sections by subsystem:
//   - Paths: data and log directories
//   - Source: remote broker document fetch
//   - Updates: journey-update feed polling
//   - Translate: remote es->en translation service
//   - Logging: log format and level
//
// Language is the default display language ("en" or "es").
type Config struct {
	Paths     Paths     `toml:"paths"`
	Source    Source    `toml:"source"`
	Updates   Updates   `toml:"updates"`
	Translate Translate `toml:"translate"`
	Logging   Logging   `toml:"logging"`
	Language  string    `toml:"language"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/optout/config.toml")
}

// SampleConfig returns the embedded sample configuration document.
func SampleConfig() string {
	return sampleConfig
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. The second return is
// the resolved config path; the third reports whether the file existed.
func Load(path string) (*Config, string, bool, error) {
	// A .env beside the working directory may supply env overrides.
	_ = godotenv.Load()

	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}

	projectPath, err := filepath.Abs("optout.toml")
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the data and log directories when missing.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.DataDir, c.Paths.LogDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

// DatabasePath returns the location of the journey database.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.Paths.DataDir, "journeys.db")
}

// DocumentCachePath returns the on-disk location of the last fetched broker
// document.
func (c *Config) DocumentCachePath() string {
	return filepath.Join(c.Paths.DataDir, "brokers.md")
}
