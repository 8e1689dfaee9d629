package compose

import (
	"errors"
	"strings"
	"testing"

	"optout/internal/catalog"
	"optout/internal/language"
)

func testBroker() *catalog.Broker {
	return &catalog.Broker{
		Name:   "Spokeo 🔍",
		Emails: []string{"privacy@spokeo.com", "support@spokeo.com"},
	}
}

func TestEmailRequiresNameAndEmail(t *testing.T) {
	_, err := Email(testBroker(), Fields{Name: "Jane Roe"}, language.English)
	if !errors.Is(err, ErrMissingEmailFields) {
		t.Fatalf("missing email: %v", err)
	}
	_, err = Email(testBroker(), Fields{Email: "jane@example.com"}, language.English)
	if !errors.Is(err, ErrMissingEmailFields) {
		t.Fatalf("missing name: %v", err)
	}
	_, err = Email(testBroker(), Fields{Name: "  ", Email: "jane@example.com"}, language.English)
	if !errors.Is(err, ErrMissingEmailFields) {
		t.Fatalf("blank name: %v", err)
	}
}

func TestEmailEnglishBody(t *testing.T) {
	msg, err := Email(testBroker(), Fields{
		Name:  "Jane Roe",
		Email: "jane@example.com",
		Phone: "800-555-0199",
		Link:  "https://www.spokeo.com/Jane-Roe",
	}, language.English)
	if err != nil {
		t.Fatalf("Email: %v", err)
	}

	if msg.To != "privacy@spokeo.com" {
		t.Fatalf("To = %q", msg.To)
	}
	if msg.Subject != "Request to remove personal information from Spokeo" {
		t.Fatalf("Subject = %q", msg.Subject)
	}
	if msg.ReferenceID == "" {
		t.Fatalf("missing reference id")
	}
	for _, want := range []string{
		"Hello Spokeo team,",
		"Name: Jane Roe",
		"Email: jane@example.com",
		"Phone: 800-555-0199",
		"Profile URL: https://www.spokeo.com/Jane-Roe",
		"Sincerely,\nJane Roe",
	} {
		if !strings.Contains(msg.Body, want) {
			t.Fatalf("body missing %q:\n%s", want, msg.Body)
		}
	}
	if strings.Contains(msg.Body, "Address:") {
		t.Fatalf("empty address should be omitted:\n%s", msg.Body)
	}
}

func TestEmailSpanishBody(t *testing.T) {
	msg, err := Email(testBroker(), Fields{Name: "Jane Roe", Email: "jane@example.com"}, language.Spanish)
	if err != nil {
		t.Fatalf("Email: %v", err)
	}
	if !strings.Contains(msg.Body, "Hola equipo de Spokeo,") {
		t.Fatalf("body not Spanish:\n%s", msg.Body)
	}
	if !strings.Contains(msg.Body, "Correo electrónico: jane@example.com") {
		t.Fatalf("body missing email line:\n%s", msg.Body)
	}
	// Subject stays English for the recipient.
	if !strings.HasPrefix(msg.Subject, "Request to remove") {
		t.Fatalf("Subject = %q", msg.Subject)
	}
}

func TestEmailNoBrokerAddress(t *testing.T) {
	b := &catalog.Broker{Name: "No Contact"}
	msg, err := Email(b, Fields{Name: "Jane Roe", Email: "jane@example.com"}, language.English)
	if err != nil {
		t.Fatalf("Email: %v", err)
	}
	if msg.To != "" {
		t.Fatalf("To = %q, want empty", msg.To)
	}
}

func TestLetterRequiresNameAndAddress(t *testing.T) {
	_, err := Letter(testBroker(), Fields{Name: "Jane Roe"}, language.English)
	if !errors.Is(err, ErrMissingLetterFields) {
		t.Fatalf("missing address: %v", err)
	}
}

func TestLetterBody(t *testing.T) {
	msg, err := Letter(testBroker(), Fields{
		Name:    "Jane Roe",
		Address: "1 Main St, Springfield",
	}, language.English)
	if err != nil {
		t.Fatalf("Letter: %v", err)
	}
	for _, want := range []string{
		"Spokeo\nRe: Request to remove personal information",
		"To whom it may concern,",
		"Name: Jane Roe",
		"Address: 1 Main St, Springfield",
		"Sincerely,\n\nJane Roe",
	} {
		if !strings.Contains(msg.Body, want) {
			t.Fatalf("letter missing %q:\n%s", want, msg.Body)
		}
	}
	if strings.Contains(msg.Body, "Email:") {
		t.Fatalf("empty email should be omitted:\n%s", msg.Body)
	}
}

func TestLetterSpanishBody(t *testing.T) {
	msg, err := Letter(testBroker(), Fields{Name: "Jane Roe", Address: "Calle 1"}, language.Spanish)
	if err != nil {
		t.Fatalf("Letter: %v", err)
	}
	if !strings.Contains(msg.Body, "A quien corresponda,") {
		t.Fatalf("letter not Spanish:\n%s", msg.Body)
	}
}

func TestMailto(t *testing.T) {
	msg := Message{To: "privacy@spokeo.com", Subject: "Request to remove"}
	link := msg.Mailto("line one\nline two")
	if !strings.HasPrefix(link, "mailto:privacy%40spokeo.com?subject=") {
		t.Fatalf("mailto = %q", link)
	}
	if !strings.Contains(link, "&body=line+one%0Aline+two") {
		t.Fatalf("mailto body not escaped: %q", link)
	}
}
