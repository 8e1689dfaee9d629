package textextract

import (
	"regexp"
	"strings"
)

var (
	// Structured extraction patterns used while parsing the source document.
	bracketEmailPattern = regexp.MustCompile(`<([^>\s]+@[^>\s]+)>`)
	strictPhonePattern  = regexp.MustCompile(`\b\d{3}-\d{3}-\d{4}\b`)
	strictURLPattern    = regexp.MustCompile(`https?://[^\s)]+`)

	// Presentation patterns used when linkifying free text.
	bareEmailPattern  = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	loosePhonePattern = regexp.MustCompile(`\d[\d\s\-()]{6,}\d`)
	looseURLPattern   = regexp.MustCompile(`https?://\S+`)
)

// ExtractEmails returns the addresses found in angle-bracket form
// (<user@domain>), without the delimiters, in order of first appearance.
func ExtractEmails(text string) []string {
	matches := bracketEmailPattern.FindAllStringSubmatch(text, -1)
	out := make([]string, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		out = append(out, m[1])
	}
	return out
}

// ExtractPhones returns phone numbers matching the rigid DDD-DDD-DDDD form,
// in order of first appearance.
func ExtractPhones(text string) []string {
	return dedupe(strictPhonePattern.FindAllString(text, -1))
}

// ExtractURLs returns http(s) URLs, excluding a trailing close-paren so
// markdown links parse cleanly, in order of first appearance.
func ExtractURLs(text string) []string {
	return dedupe(strictURLPattern.FindAllString(text, -1))
}

func dedupe(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

var (
	mdLinkPattern = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)
	angleUnwrap   = regexp.MustCompile(`<([^>]+)>`)
	emphasisStrip = strings.NewReplacer("*", "", "_", "", "`", "")
)

// Sanitize rewrites markdown link syntax [label](url) to "label (url)",
// strips emphasis characters, unwraps angle brackets, and trims surrounding
// whitespace. It never fails and is idempotent on its own output.
func Sanitize(text string) string {
	text = mdLinkPattern.ReplaceAllString(text, "$1 ($2)")
	text = emphasisStrip.Replace(text)
	text = angleUnwrap.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}
