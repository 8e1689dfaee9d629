package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"optout/internal/config"
)

// HTTPDoer describes the HTTP client used by the translation service.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Service converts Spanish text back to English.
type Service interface {
	ToEnglish(ctx context.Context, text string) (string, error)
}

// NewService builds a translation service from config. When translation is
// disabled a noop implementation returns input unchanged.
func NewService(cfg *config.Config) Service {
	if cfg == nil || !cfg.Translate.Enabled {
		return noopService{}
	}
	timeout := time.Duration(cfg.Translate.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &httpService{
		endpoint: cfg.Translate.URL,
		client:   &http.Client{Timeout: timeout},
	}
}

// NewHTTPService builds an HTTP-backed translation service with an explicit
// client, for tests.
func NewHTTPService(endpoint string, client HTTPDoer) Service {
	return &httpService{endpoint: endpoint, client: client}
}

type noopService struct{}

func (noopService) ToEnglish(_ context.Context, text string) (string, error) {
	return text, nil
}

type httpService struct {
	endpoint string
	client   HTTPDoer
}

type translateRequest struct {
	Query  string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

func (s *httpService) ToEnglish(ctx context.Context, text string) (string, error) {
	payload, err := json.Marshal(translateRequest{
		Query:  text,
		Source: "es",
		Target: "en",
		Format: "text",
	})
	if err != nil {
		return "", fmt.Errorf("marshal translate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build translate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate: status %d", resp.StatusCode)
	}

	var decoded translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode translate response: %w", err)
	}
	if decoded.TranslatedText == "" {
		return "", fmt.Errorf("translate: empty response")
	}
	return decoded.TranslatedText, nil
}
