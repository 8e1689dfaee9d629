package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeSource()
	c.normalizeUpdates()
	c.normalizeTranslate()
	c.normalizeLogging()
	c.Language = strings.ToLower(strings.TrimSpace(c.Language))
	if c.Language == "" {
		c.Language = defaultLanguage
	}
	if value, ok := os.LookupEnv("OPTOUT_LANGUAGE"); ok {
		c.Language = strings.ToLower(strings.TrimSpace(value))
	}
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeSource() {
	if value, ok := os.LookupEnv("OPTOUT_DOCUMENT_URL"); ok {
		c.Source.DocumentURL = value
	}
	c.Source.DocumentURL = strings.TrimSpace(c.Source.DocumentURL)
	if c.Source.DocumentURL == "" {
		c.Source.DocumentURL = defaultDocumentURL
	}
	if c.Source.RequestTimeout <= 0 {
		c.Source.RequestTimeout = defaultRequestTimeout
	}
}

func (c *Config) normalizeUpdates() {
	if value, ok := os.LookupEnv("OPTOUT_FEED_URL"); ok {
		c.Updates.FeedURL = value
	}
	c.Updates.FeedURL = strings.TrimSpace(c.Updates.FeedURL)
	if c.Updates.FeedURL == "" {
		c.Updates.FeedURL = defaultFeedURL
	}
	if c.Updates.IntervalHours <= 0 {
		c.Updates.IntervalHours = defaultFeedInterval
	}
}

func (c *Config) normalizeTranslate() {
	c.Translate.URL = strings.TrimSpace(c.Translate.URL)
	if c.Translate.URL == "" {
		c.Translate.URL = defaultTranslateURL
	}
	if c.Translate.RequestTimeout <= 0 {
		c.Translate.RequestTimeout = defaultRequestTimeout
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}
