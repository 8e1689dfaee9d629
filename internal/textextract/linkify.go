package textextract

import (
	"fmt"
	"html"
	"strings"
)

// Linkify converts plain text into HTML markup: URLs become hyperlinks,
// email addresses become mailto: links, digit runs become tel: links (with
// separators stripped from the target), and newlines become line breaks.
// Pass order is fixed: URL, then email, then phone, then newline.
func Linkify(text string) string {
	if text == "" {
		return ""
	}
	return linkifyURLs(text)
}

func linkifyURLs(text string) string {
	var b strings.Builder
	last := 0
	for _, loc := range looseURLPattern.FindAllStringIndex(text, -1) {
		b.WriteString(linkifyEmails(text[last:loc[0]]))
		u := text[loc[0]:loc[1]]
		fmt.Fprintf(&b, `<a href="%s" target="_blank">%s</a>`, html.EscapeString(u), html.EscapeString(u))
		last = loc[1]
	}
	b.WriteString(linkifyEmails(text[last:]))
	return b.String()
}

func linkifyEmails(text string) string {
	var b strings.Builder
	last := 0
	for _, loc := range bareEmailPattern.FindAllStringIndex(text, -1) {
		b.WriteString(linkifyPhones(text[last:loc[0]]))
		addr := text[loc[0]:loc[1]]
		fmt.Fprintf(&b, `<a href="mailto:%s">%s</a>`, html.EscapeString(addr), html.EscapeString(addr))
		last = loc[1]
	}
	b.WriteString(linkifyPhones(text[last:]))
	return b.String()
}

func linkifyPhones(text string) string {
	var b strings.Builder
	last := 0
	for _, loc := range loosePhonePattern.FindAllStringIndex(text, -1) {
		run := text[loc[0]:loc[1]]
		if digitCount(run) < 8 {
			continue
		}
		b.WriteString(plainHTML(text[last:loc[0]]))
		fmt.Fprintf(&b, `<a href="tel:%s">%s</a>`, telTarget(run), html.EscapeString(run))
		last = loc[1]
	}
	b.WriteString(plainHTML(text[last:]))
	return b.String()
}

func plainHTML(text string) string {
	return strings.ReplaceAll(html.EscapeString(text), "\n", "<br/>")
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// telTarget strips everything except digits and a leading plus sign.
func telTarget(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '+' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
