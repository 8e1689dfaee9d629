package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSource(); err != nil {
		return err
	}
	if err := c.validateUpdates(); err != nil {
		return err
	}
	if err := c.validateTranslate(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	switch c.Language {
	case "en", "es":
	default:
		return fmt.Errorf("language must be \"en\" or \"es\", got %q", c.Language)
	}
	return nil
}

func (c *Config) validateSource() error {
	if err := validateHTTPURL(c.Source.DocumentURL); err != nil {
		return fmt.Errorf("source.document_url: %w", err)
	}
	return nil
}

func (c *Config) validateUpdates() error {
	if !c.Updates.Enabled {
		return nil
	}
	if err := validateHTTPURL(c.Updates.FeedURL); err != nil {
		return fmt.Errorf("updates.feed_url: %w", err)
	}
	return nil
}

func (c *Config) validateTranslate() error {
	if !c.Translate.Enabled {
		return nil
	}
	if err := validateHTTPURL(c.Translate.URL); err != nil {
		return fmt.Errorf("translate.url: %w", err)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}

func validateHTTPURL(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New("must be set")
	}
	parsed, err := url.Parse(value)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", parsed.Scheme)
	}
	return nil
}
