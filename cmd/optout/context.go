package main

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"optout/internal/catalog"
	"optout/internal/config"
	"optout/internal/journey"
	"optout/internal/language"
	"optout/internal/logging"
)

type commandContext struct {
	configFlag *string
	langFlag   *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger

	catalogOnce sync.Once
	categories  []catalog.Category
}

func newCommandContext(configFlag, langFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		langFlag:   langFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = slog.New(slog.DiscardHandler)
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.logger = slog.New(slog.DiscardHandler)
			return
		}
		c.logger = logger
	})
	return c.logger
}

// language resolves the display language, flag winning over config.
func (c *commandContext) language() language.Lang {
	if c.langFlag != nil && strings.TrimSpace(*c.langFlag) != "" {
		return language.Parse(*c.langFlag)
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return language.English
	}
	return language.Parse(cfg.Language)
}

// loadCatalog fetches and merges the broker catalog once per invocation.
// Loading degrades through the disk cache to the built-in catalog, so it
// never fails.
func (c *commandContext) loadCatalog(ctx context.Context) ([]catalog.Category, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	c.catalogOnce.Do(func() {
		loader := catalog.NewLoader(cfg, c.ensureLogger())
		c.categories = loader.Load(ctx)
	})
	return c.categories, nil
}

// withStore opens the journey store, runs fn, and closes it.
func (c *commandContext) withStore(fn func(*journey.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := journey.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
