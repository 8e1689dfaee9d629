package catalog

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"
)

type stubDoer struct {
	status int
	body   string
	err    error
	calls  int
}

func (s *stubDoer) Do(req *http.Request) (*http.Response, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &http.Response{
		StatusCode: s.status,
		Body:       io.NopCloser(bytes.NewReader([]byte(s.body))),
	}, nil
}

const loaderDocument = "## People Search Sites\n\n### Spokeo\n\nUse the opt-out form.\n"

func TestLoaderFetchSuccessWritesCache(t *testing.T) {
	cache := filepath.Join(t.TempDir(), "brokers.md")
	doer := &stubDoer{status: http.StatusOK, body: loaderDocument}
	loader := NewLoaderWith("https://example.com/list.md", cache, doer, nil)

	categories := loader.Load(context.Background())
	if len(categories) != 1 || categories[0].Name != "People Search Sites" {
		t.Fatalf("unexpected categories: %+v", categories)
	}

	cached, err := os.ReadFile(cache)
	if err != nil {
		t.Fatalf("cache not written: %v", err)
	}
	if string(cached) != loaderDocument {
		t.Fatalf("cache content = %q", string(cached))
	}
}

func TestLoaderFetchFailureUsesCache(t *testing.T) {
	cache := filepath.Join(t.TempDir(), "brokers.md")
	if err := os.WriteFile(cache, []byte(loaderDocument), 0o644); err != nil {
		t.Fatal(err)
	}
	doer := &stubDoer{err: errors.New("network down")}
	loader := NewLoaderWith("https://example.com/list.md", cache, doer, nil)

	categories := loader.Load(context.Background())
	if len(categories) != 1 || len(categories[0].Brokers) != 1 {
		t.Fatalf("cached document not used: %+v", categories)
	}
	if categories[0].Brokers[0].Name != "Spokeo" {
		t.Fatalf("broker = %q", categories[0].Brokers[0].Name)
	}
}

func TestLoaderFallbackWhenAllElseFails(t *testing.T) {
	cache := filepath.Join(t.TempDir(), "missing.md")
	doer := &stubDoer{status: http.StatusInternalServerError}
	loader := NewLoaderWith("https://example.com/list.md", cache, doer, nil)

	categories := loader.Load(context.Background())
	if len(categories) != 1 || categories[0].Name != FallbackCategoryName {
		t.Fatalf("expected built-in catalog, got %+v", categories)
	}
	if len(categories[0].Brokers) != len(Curated()) {
		t.Fatalf("fallback has %d brokers, want %d", len(categories[0].Brokers), len(Curated()))
	}
	for _, b := range categories[0].Brokers {
		if !b.Interactive {
			t.Fatalf("fallback broker %q not interactive", b.Name)
		}
	}
}

func TestLoaderEmptyDocumentFallsBack(t *testing.T) {
	doer := &stubDoer{status: http.StatusOK, body: "no headings at all"}
	loader := NewLoaderWith("https://example.com/list.md", filepath.Join(t.TempDir(), "c.md"), doer, nil)

	categories := loader.Load(context.Background())
	if categories[0].Name != FallbackCategoryName {
		t.Fatalf("expected fallback catalog, got %+v", categories)
	}
}
