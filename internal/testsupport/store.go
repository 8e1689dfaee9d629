package testsupport

import (
	"testing"

	"optout/internal/config"
	"optout/internal/journey"
)

// MustOpenStore opens a journey.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *journey.Store {
	t.Helper()

	store, err := journey.Open(cfg)
	if err != nil {
		t.Fatalf("journey.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}
