package catalog

import (
	"regexp"
	"strings"

	"optout/internal/textextract"
)

var (
	categoryHeading = regexp.MustCompile(`^\s*##\s+(.+?)\s*$`)
	brokerHeading   = regexp.MustCompile(`^\s*###\s+(.+?)\s*$`)
)

type headingMark struct {
	line int
	name string
}

// Parse splits the source document into categories and broker records.
// Lenient by policy: a document with no recognizable headings yields an
// empty (not nil-checked, not error) result, and malformed sections simply
// produce fewer records. Duplicate broker names are preserved as separate
// records.
func Parse(text string) []Category {
	lines := strings.Split(text, "\n")

	var marks []headingMark
	for i, line := range lines {
		if m := categoryHeading.FindStringSubmatch(line); m != nil {
			marks = append(marks, headingMark{line: i, name: m[1]})
		}
	}

	categories := make([]Category, 0, len(marks))
	for i, mark := range marks {
		end := len(lines)
		if i+1 < len(marks) {
			end = marks[i+1].line
		}
		categories = append(categories, parseCategory(mark.name, lines[mark.line+1:end]))
	}
	return categories
}

func parseCategory(name string, span []string) Category {
	var marks []headingMark
	for i, line := range span {
		if m := brokerHeading.FindStringSubmatch(line); m != nil {
			marks = append(marks, headingMark{line: i, name: m[1]})
		}
	}

	// Informational text is everything before the first broker heading, or
	// the whole span for a purely informational category.
	infoEnd := len(span)
	if len(marks) > 0 {
		infoEnd = marks[0].line
	}
	info := textextract.Sanitize(strings.Join(span[:infoEnd], "\n"))

	brokers := make([]Broker, 0, len(marks))
	for i, mark := range marks {
		end := len(span)
		if i+1 < len(marks) {
			end = marks[i+1].line
		}
		raw := strings.TrimSpace(strings.Join(span[mark.line+1:end], "\n"))
		brokers = append(brokers, Broker{
			Name:         mark.name,
			Instructions: textextract.Sanitize(raw),
			Emails:       textextract.ExtractEmails(raw),
			Phones:       textextract.ExtractPhones(raw),
			Links:        textextract.ExtractURLs(raw),
		})
	}

	return Category{Name: name, Info: info, Brokers: brokers}
}
