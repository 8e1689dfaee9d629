package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"optout/internal/config"
)

type captureDoer struct {
	gotBody []byte
	status  int
	reply   string
}

func (c *captureDoer) Do(req *http.Request) (*http.Response, error) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, err
	}
	c.gotBody = body
	return &http.Response{
		StatusCode: c.status,
		Body:       io.NopCloser(bytes.NewReader([]byte(c.reply))),
	}, nil
}

func TestNoopServiceWhenDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.Translate.Enabled = false
	svc := NewService(&cfg)

	got, err := svc.ToEnglish(context.Background(), "hola mundo")
	if err != nil {
		t.Fatalf("ToEnglish: %v", err)
	}
	if got != "hola mundo" {
		t.Fatalf("noop should return input unchanged, got %q", got)
	}
}

func TestHTTPServiceRequestShape(t *testing.T) {
	doer := &captureDoer{status: http.StatusOK, reply: `{"translatedText":"hello world"}`}
	svc := NewHTTPService("https://translate.example.com/translate", doer)

	got, err := svc.ToEnglish(context.Background(), "hola mundo")
	if err != nil {
		t.Fatalf("ToEnglish: %v", err)
	}
	if got != "hello world" {
		t.Fatalf("ToEnglish = %q", got)
	}

	var sent translateRequest
	if err := json.Unmarshal(doer.gotBody, &sent); err != nil {
		t.Fatalf("request body: %v", err)
	}
	if sent.Query != "hola mundo" || sent.Source != "es" || sent.Target != "en" || sent.Format != "text" {
		t.Fatalf("request = %+v", sent)
	}
}

func TestHTTPServiceBadStatus(t *testing.T) {
	doer := &captureDoer{status: http.StatusBadGateway, reply: ""}
	svc := NewHTTPService("https://translate.example.com/translate", doer)

	if _, err := svc.ToEnglish(context.Background(), "hola"); err == nil {
		t.Fatalf("expected error for non-200 response")
	}
}
