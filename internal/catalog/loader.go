package catalog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"optout/internal/config"
)

// FallbackCategoryName labels the built-in catalog used when the remote
// document cannot be fetched.
const FallbackCategoryName = "People Search Sites"

// HTTPDoer describes the HTTP client used by the Loader.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Loader fetches the remote broker document and assembles the merged
// category list. Every failure path degrades rather than erroring: a failed
// fetch falls back to the last cached copy on disk, and failing that to the
// built-in catalog derived from the curated table.
type Loader struct {
	url       string
	cachePath string
	client    HTTPDoer
	logger    *slog.Logger
}

// NewLoader builds a Loader from application config.
func NewLoader(cfg *config.Config, logger *slog.Logger) *Loader {
	timeout := time.Duration(cfg.Source.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Loader{
		url:       cfg.Source.DocumentURL,
		cachePath: cfg.DocumentCachePath(),
		client:    &http.Client{Timeout: timeout},
		logger:    logger,
	}
}

// NewLoaderWith builds a Loader with an explicit client and cache path.
func NewLoaderWith(url, cachePath string, client HTTPDoer, logger *slog.Logger) *Loader {
	return &Loader{url: url, cachePath: cachePath, client: client, logger: logger}
}

// Load returns the parsed, merged category list. It never fails; the
// result is at minimum the built-in fallback catalog.
func (l *Loader) Load(ctx context.Context) []Category {
	text, err := l.fetch(ctx)
	if err != nil {
		l.log().Warn("document fetch failed, trying cached copy", "url", l.url, "error", err)
		cached, cacheErr := os.ReadFile(l.cachePath)
		if cacheErr != nil {
			l.log().Warn("no cached document, using built-in catalog", "error", cacheErr)
			return Fallback()
		}
		text = string(cached)
	} else if l.cachePath != "" {
		if writeErr := os.WriteFile(l.cachePath, []byte(text), 0o644); writeErr != nil {
			l.log().Warn("cache document write failed", "path", l.cachePath, "error", writeErr)
		}
	}

	categories := Merge(Parse(text), Curated())
	if len(categories) == 0 {
		// Degraded but not an error: an empty or unstructured document
		// still leaves the curated brokers available.
		l.log().Warn("document yielded no categories, using built-in catalog")
		return Fallback()
	}
	return categories
}

func (l *Loader) fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return "", fmt.Errorf("build document request: %w", err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch document: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch document: status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read document body: %w", err)
	}
	return string(body), nil
}

func (l *Loader) log() *slog.Logger {
	if l.logger != nil {
		return l.logger
	}
	return slog.Default()
}

// Fallback returns the built-in catalog: one category containing one
// interactive broker per curated entry.
func Fallback() []Category {
	entries := Curated()
	brokers := make([]Broker, 0, len(entries))
	for _, entry := range entries {
		b := Broker{Name: entry.Key}
		applyEntry(&b, entry)
		brokers = append(brokers, b)
	}
	return []Category{{Name: FallbackCategoryName, Brokers: brokers}}
}
