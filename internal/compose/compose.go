package compose

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"optout/internal/catalog"
	"optout/internal/language"
)

var (
	// ErrMissingEmailFields is returned when an email request lacks the
	// sender's name or email address.
	ErrMissingEmailFields = errors.New("name and email are required for an email request")
	// ErrMissingLetterFields is returned when a letter request lacks the
	// sender's name or mailing address.
	ErrMissingLetterFields = errors.New("name and mailing address are required for a letter")
)

// Fields holds the personal details a request is generated from. Name is
// always required; the other fields are optional except where Email or
// Letter state otherwise.
type Fields struct {
	Name    string
	Email   string
	Phone   string
	Link    string
	Address string
}

func (f Fields) trimmed() Fields {
	return Fields{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Phone:   strings.TrimSpace(f.Phone),
		Link:    strings.TrimSpace(f.Link),
		Address: strings.TrimSpace(f.Address),
	}
}

// Message is a rendered removal request. To is empty when the broker lists
// no contact email. ReferenceID tags the request so a later follow-up can
// cite it.
type Message struct {
	To          string
	Subject     string
	Body        string
	ReferenceID string
}

// Mailto builds a mailto URL for the message. The body should already be
// in English when the recipient expects English.
func (m Message) Mailto(body string) string {
	return "mailto:" + url.QueryEscape(m.To) +
		"?subject=" + url.QueryEscape(m.Subject) +
		"&body=" + url.QueryEscape(body)
}

// Email renders a removal request email in the given language.
func Email(b *catalog.Broker, f Fields, lang language.Lang) (Message, error) {
	f = f.trimmed()
	if f.Name == "" || f.Email == "" {
		return Message{}, ErrMissingEmailFields
	}

	brokerName := b.DisplayName()
	to := ""
	if len(b.Emails) > 0 {
		to = b.Emails[0]
	}

	var sb strings.Builder
	if lang == language.Spanish {
		fmt.Fprintf(&sb, "Hola equipo de %s,\n\n", brokerName)
		sb.WriteString("Les escribo para solicitar la eliminación de mi información personal de sus bases de datos. ")
		sb.WriteString("Mis datos son los siguientes:\n")
		fmt.Fprintf(&sb, "Nombre: %s\n", f.Name)
		fmt.Fprintf(&sb, "Correo electrónico: %s\n", f.Email)
		if f.Phone != "" {
			fmt.Fprintf(&sb, "Teléfono: %s\n", f.Phone)
		}
		if f.Address != "" {
			fmt.Fprintf(&sb, "Dirección: %s\n", f.Address)
		}
		if f.Link != "" {
			fmt.Fprintf(&sb, "Enlace de perfil: %s\n", f.Link)
		}
		sb.WriteString("\nHe enviado una solicitud de exclusión a través de su sitio web. Por favor, eliminen mi información y proporcionen confirmación por escrito una vez que la eliminación esté completa.\n\n")
		fmt.Fprintf(&sb, "Gracias por su pronta atención a este asunto.\n\nAtentamente,\n%s", f.Name)
	} else {
		fmt.Fprintf(&sb, "Hello %s team,\n\n", brokerName)
		sb.WriteString("I am writing to request the removal of my personal information from your databases. ")
		sb.WriteString("My details are as follows:\n")
		fmt.Fprintf(&sb, "Name: %s\n", f.Name)
		fmt.Fprintf(&sb, "Email: %s\n", f.Email)
		if f.Phone != "" {
			fmt.Fprintf(&sb, "Phone: %s\n", f.Phone)
		}
		if f.Address != "" {
			fmt.Fprintf(&sb, "Address: %s\n", f.Address)
		}
		if f.Link != "" {
			fmt.Fprintf(&sb, "Profile URL: %s\n", f.Link)
		}
		sb.WriteString("\nI have submitted an opt-out request via your website. Please remove my information and provide written confirmation once the removal is complete.\n\n")
		fmt.Fprintf(&sb, "Thank you for your prompt attention to this matter.\n\nSincerely,\n%s", f.Name)
	}

	return Message{
		To:          to,
		Subject:     fmt.Sprintf("Request to remove personal information from %s", brokerName),
		Body:        sb.String(),
		ReferenceID: uuid.NewString(),
	}, nil
}

// Letter renders a removal request letter in the given language, dated
// with the current day.
func Letter(b *catalog.Broker, f Fields, lang language.Lang) (Message, error) {
	return letterAt(b, f, lang, time.Now())
}

func letterAt(b *catalog.Broker, f Fields, lang language.Lang, now time.Time) (Message, error) {
	f = f.trimmed()
	if f.Name == "" || f.Address == "" {
		return Message{}, ErrMissingLetterFields
	}

	brokerName := b.DisplayName()
	dateStr := now.Format("1/2/2006")

	var sb strings.Builder
	if lang == language.Spanish {
		fmt.Fprintf(&sb, "%s\n\n%s\n", dateStr, brokerName)
		sb.WriteString("Re: Solicitud de eliminación de información personal\n\n")
		sb.WriteString("A quien corresponda,\n\n")
		sb.WriteString("Les escribo para solicitar formalmente la eliminación de mi información personal de sus bases de datos.\n")
		sb.WriteString("Mis datos son los siguientes:\n")
		fmt.Fprintf(&sb, "Nombre: %s\n", f.Name)
		fmt.Fprintf(&sb, "Dirección: %s\n", f.Address)
		if f.Email != "" {
			fmt.Fprintf(&sb, "Correo electrónico: %s\n", f.Email)
		}
		if f.Phone != "" {
			fmt.Fprintf(&sb, "Teléfono: %s\n", f.Phone)
		}
		if f.Link != "" {
			fmt.Fprintf(&sb, "Enlace de perfil: %s\n", f.Link)
		}
		sb.WriteString("\nHe enviado una solicitud de exclusión a través de su sitio web. Por favor, eliminen mi información y proporcionen una confirmación por escrito una vez que la eliminación esté completa.\n\n")
		fmt.Fprintf(&sb, "Atentamente,\n\n%s\n", f.Name)
	} else {
		fmt.Fprintf(&sb, "%s\n\n%s\n", dateStr, brokerName)
		sb.WriteString("Re: Request to remove personal information\n\n")
		sb.WriteString("To whom it may concern,\n\n")
		sb.WriteString("I am writing to formally request the removal of my personal information from your databases.\n")
		sb.WriteString("Below are my details:\n")
		fmt.Fprintf(&sb, "Name: %s\n", f.Name)
		fmt.Fprintf(&sb, "Address: %s\n", f.Address)
		if f.Email != "" {
			fmt.Fprintf(&sb, "Email: %s\n", f.Email)
		}
		if f.Phone != "" {
			fmt.Fprintf(&sb, "Phone: %s\n", f.Phone)
		}
		if f.Link != "" {
			fmt.Fprintf(&sb, "Profile URL: %s\n", f.Link)
		}
		sb.WriteString("\nI have submitted an opt-out request via your website. Please remove my information and provide written confirmation once the removal is complete.\n\n")
		fmt.Fprintf(&sb, "Sincerely,\n\n%s\n", f.Name)
	}

	return Message{
		Subject:     fmt.Sprintf("Request to remove personal information from %s", brokerName),
		Body:        sb.String(),
		ReferenceID: uuid.NewString(),
	}, nil
}
