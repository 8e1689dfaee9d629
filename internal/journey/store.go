package journey

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"optout/internal/catalog"
	"optout/internal/config"
	"optout/internal/translate"
)

// Store manages journey persistence backed by SQLite. A sidecar file lock
// enforces the single-writer assumption: two processes must not interleave
// mutations on the same entry.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

const schema = `
CREATE TABLE IF NOT EXISTS journeys (
    broker       TEXT PRIMARY KEY,
    steps_en     TEXT NOT NULL,
    steps_es     TEXT NOT NULL,
    current_step INTEGER NOT NULL DEFAULT 0,
    completed    INTEGER NOT NULL DEFAULT 0,
    created_at   TEXT NOT NULL,
    updated_at   TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS meta (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// Open initializes or connects to the journey database.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.DatabasePath()
	lock := flock.New(dbPath + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire journey lock: %w", err)
	}
	if !ok {
		return nil, errors.New("another optout process holds the journey store")
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db, path: dbPath, lock: lock}, nil
}

// Close closes the database connection and releases the writer lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var err error
	if s.db != nil {
		err = s.db.Close()
	}
	if s.lock != nil {
		_ = s.lock.Unlock()
	}
	return err
}

// Get fetches a journey by broker name. Returns nil when absent.
func (s *Store) Get(ctx context.Context, broker string) (*Journey, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT broker, steps_en, steps_es, current_step, completed, created_at, updated_at
         FROM journeys WHERE broker = ?`,
		broker,
	)
	j, err := scanJourney(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get journey: %w", err)
	}
	return j, nil
}

// GetOrCreate returns the broker's journey, creating it on first use.
// New journeys seed from the broker's curated steps when present, otherwise
// from the synthesized fallback, with Spanish projected from English when
// no curated Spanish exists. Existing journeys missing one language's list
// are backfilled without touching progress or completion.
func (s *Store) GetOrCreate(ctx context.Context, b *catalog.Broker) (*Journey, error) {
	existing, err := s.Get(ctx, b.Name)
	if err != nil {
		return nil, err
	}

	stepsEN, stepsES := seedSteps(b)

	if existing == nil {
		now := time.Now().UTC()
		j := &Journey{
			Broker:    b.Name,
			StepsEN:   stepsEN,
			StepsES:   stepsES,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.put(ctx, j); err != nil {
			return nil, err
		}
		return j, nil
	}

	changed := false
	if len(existing.StepsEN) == 0 {
		existing.StepsEN = stepsEN
		changed = true
	}
	if len(existing.StepsES) == 0 {
		// Project from the stored English list so the parallel arrays stay
		// index-aligned even when it has diverged from the current seed.
		existing.StepsES = translate.StepsToSpanish(existing.StepsEN)
		changed = true
	}
	if len(existing.StepsEN) > 0 && existing.CurrentStep >= len(existing.StepsEN) {
		existing.CurrentStep = len(existing.StepsEN) - 1
		changed = true
	}
	if changed {
		if err := s.put(ctx, existing); err != nil {
			return nil, err
		}
	}
	return existing, nil
}

func seedSteps(b *catalog.Broker) ([]string, []string) {
	if b.Seed != nil && len(b.Seed.StepsEN) > 0 {
		en := append([]string(nil), b.Seed.StepsEN...)
		if len(b.Seed.StepsES) == len(en) {
			return en, append([]string(nil), b.Seed.StepsES...)
		}
		return en, translate.StepsToSpanish(en)
	}
	en := SynthesizeSteps(b)
	return en, translate.StepsToSpanish(en)
}

// Advance moves a journey forward one step; advancing past the last step
// marks it completed. No-op once completed.
func (s *Store) Advance(ctx context.Context, broker string) (*Journey, error) {
	return s.mutate(ctx, broker, func(j *Journey) error {
		j.advance()
		return nil
	})
}

// Rewind moves a journey back one step. Allowed while completed; the
// completed flag is sticky and never cleared here.
func (s *Store) Rewind(ctx context.Context, broker string) (*Journey, error) {
	return s.mutate(ctx, broker, func(j *Journey) error {
		j.rewind()
		return nil
	})
}

// Reorder moves the step at from to position to in both language lists.
func (s *Store) Reorder(ctx context.Context, broker string, from, to int) (*Journey, error) {
	return s.mutate(ctx, broker, func(j *Journey) error {
		return j.reorder(from, to)
	})
}

// AppendStep adds a user-authored step to both language lists, creating
// the journey with empty lists when absent.
func (s *Store) AppendStep(ctx context.Context, broker, text string) (*Journey, error) {
	j, err := s.Get(ctx, broker)
	if err != nil {
		return nil, err
	}
	if j == nil {
		now := time.Now().UTC()
		j = &Journey{Broker: broker, CreatedAt: now, UpdatedAt: now}
	}
	j.appendStep(text)
	if err := s.put(ctx, j); err != nil {
		return nil, err
	}
	return j, nil
}

func (s *Store) mutate(ctx context.Context, broker string, apply func(*Journey) error) (*Journey, error) {
	j, err := s.Get(ctx, broker)
	if err != nil {
		return nil, err
	}
	if j == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, broker)
	}
	if err := apply(j); err != nil {
		return nil, err
	}
	if err := s.put(ctx, j); err != nil {
		return nil, err
	}
	return j, nil
}

func (s *Store) put(ctx context.Context, j *Journey) error {
	stepsEN, err := json.Marshal(j.StepsEN)
	if err != nil {
		return fmt.Errorf("marshal steps: %w", err)
	}
	stepsES, err := json.Marshal(j.StepsES)
	if err != nil {
		return fmt.Errorf("marshal steps: %w", err)
	}
	j.UpdatedAt = time.Now().UTC()
	if j.CreatedAt.IsZero() {
		j.CreatedAt = j.UpdatedAt
	}
	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO journeys (broker, steps_en, steps_es, current_step, completed, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?, ?, ?)
         ON CONFLICT(broker) DO UPDATE SET
             steps_en = excluded.steps_en,
             steps_es = excluded.steps_es,
             current_step = excluded.current_step,
             completed = excluded.completed,
             updated_at = excluded.updated_at`,
		j.Broker,
		string(stepsEN),
		string(stepsES),
		j.CurrentStep,
		boolToInt(j.Completed),
		j.CreatedAt.Format(time.RFC3339Nano),
		j.UpdatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("put journey: %w", err)
	}
	return nil
}

// List returns all journeys ordered by broker name.
func (s *Store) List(ctx context.Context) ([]*Journey, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT broker, steps_en, steps_es, current_step, completed, created_at, updated_at
         FROM journeys ORDER BY broker`,
	)
	if err != nil {
		return nil, fmt.Errorf("list journeys: %w", err)
	}
	defer rows.Close()

	var journeys []*Journey
	for rows.Next() {
		j, err := scanJourney(rows)
		if err != nil {
			return nil, err
		}
		journeys = append(journeys, j)
	}
	return journeys, rows.Err()
}

// Scan returns the full persisted map keyed by broker name.
func (s *Store) Scan(ctx context.Context) (map[string]*Journey, error) {
	journeys, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]*Journey, len(journeys))
	for _, j := range journeys {
		out[j.Broker] = j
	}
	return out, nil
}

// CompletedBrokers returns the set of broker names with completed journeys.
func (s *Store) CompletedBrokers(ctx context.Context) (map[string]bool, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT broker FROM journeys WHERE completed = 1`)
	if err != nil {
		return nil, fmt.Errorf("completed brokers: %w", err)
	}
	defer rows.Close()

	out := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out[name] = true
	}
	return out, rows.Err()
}

func scanJourney(scanner interface{ Scan(dest ...any) error }) (*Journey, error) {
	var (
		broker      string
		stepsENRaw  string
		stepsESRaw  string
		currentStep int
		completed   int
		createdRaw  string
		updatedRaw  string
	)
	if err := scanner.Scan(&broker, &stepsENRaw, &stepsESRaw, &currentStep, &completed, &createdRaw, &updatedRaw); err != nil {
		return nil, err
	}

	j := &Journey{
		Broker:      broker,
		CurrentStep: currentStep,
		Completed:   completed != 0,
	}
	// Corrupt step payloads degrade to empty lists; GetOrCreate backfills.
	_ = json.Unmarshal([]byte(stepsENRaw), &j.StepsEN)
	_ = json.Unmarshal([]byte(stepsESRaw), &j.StepsES)

	if created, err := time.Parse(time.RFC3339Nano, createdRaw); err == nil {
		j.CreatedAt = created
	}
	if updated, err := time.Parse(time.RFC3339Nano, updatedRaw); err == nil {
		j.UpdatedAt = updated
	}
	return j, nil
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
