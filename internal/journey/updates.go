package journey

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"optout/internal/catalog"
	"optout/internal/config"
	"optout/internal/translate"
)

const lastCheckKey = "last_update_check"

// Checker pulls the published journey feed and seeds journeys for brokers
// the local store has not seen yet. Existing journeys are never touched.
type Checker struct {
	store    *Store
	url      string
	client   catalog.HTTPDoer
	interval time.Duration
	logger   *slog.Logger
}

type feedEntry struct {
	Steps []string `json:"steps"`
}

// NewChecker builds a Checker from configuration.
func NewChecker(store *Store, cfg *config.Config, logger *slog.Logger) *Checker {
	return &Checker{
		store:    store,
		url:      cfg.Updates.FeedURL,
		client:   &http.Client{Timeout: 30 * time.Second},
		interval: time.Duration(cfg.Updates.IntervalHours) * time.Hour,
		logger:   logger,
	}
}

// NewCheckerWith builds a Checker with explicit collaborators for tests.
func NewCheckerWith(store *Store, url string, client catalog.HTTPDoer, interval time.Duration, logger *slog.Logger) *Checker {
	return &Checker{store: store, url: url, client: client, interval: interval, logger: logger}
}

// Check fetches the feed unless a check already ran within the interval.
// The timestamp is claimed before the fetch so concurrent or rapidly
// repeated invocations cannot double-fetch. Returns the number of journeys
// added and whether a fetch was attempted.
func (c *Checker) Check(ctx context.Context, force bool) (int, bool, error) {
	claimed, err := c.claimSlot(ctx, force)
	if err != nil {
		return 0, false, err
	}
	if !claimed {
		return 0, false, nil
	}

	entries, err := c.fetch(ctx)
	if err != nil {
		// Network failures are routine for a tool that runs offline.
		c.logger.Warn("journey feed fetch failed", "url", c.url, "error", err)
		return 0, true, nil
	}

	added := 0
	for name, entry := range entries {
		if len(entry.Steps) == 0 {
			continue
		}
		existing, err := c.store.Get(ctx, name)
		if err != nil {
			return added, true, err
		}
		if existing != nil {
			continue
		}
		now := time.Now().UTC()
		j := &Journey{
			Broker:    name,
			StepsEN:   append([]string(nil), entry.Steps...),
			StepsES:   translate.StepsToSpanish(entry.Steps),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := c.store.put(ctx, j); err != nil {
			return added, true, err
		}
		added++
	}
	if added > 0 {
		c.logger.Info("journey feed applied", "added", added)
	}
	return added, true, nil
}

// claimSlot atomically reads and overwrites the last-check timestamp so
// exactly one caller wins the fetch within any interval window.
func (c *Checker) claimSlot(ctx context.Context, force bool) (bool, error) {
	tx, err := c.store.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin update claim: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var raw string
	err = tx.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = ?`, lastCheckKey).Scan(&raw)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("read last check: %w", err)
	}
	if err == nil && !force {
		if last, parseErr := time.Parse(time.RFC3339Nano, raw); parseErr == nil {
			if time.Since(last) < c.interval {
				return false, nil
			}
		}
	}

	_, err = tx.ExecContext(
		ctx,
		`INSERT INTO meta (key, value) VALUES (?, ?)
         ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		lastCheckKey,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return false, fmt.Errorf("claim update slot: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit update claim: %w", err)
	}
	return true, nil
}

// LastCheck reports when the feed was last consulted, zero when never.
func (c *Checker) LastCheck(ctx context.Context) (time.Time, error) {
	var raw string
	err := c.store.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = ?`, lastCheckKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("read last check: %w", err)
	}
	last, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, nil
	}
	return last, nil
}

func (c *Checker) fetch(ctx context.Context) (map[string]feedEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build feed request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("read feed body: %w", err)
	}
	var entries map[string]feedEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}
	return entries, nil
}
