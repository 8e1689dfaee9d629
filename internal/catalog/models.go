package catalog

import (
	"strings"

	"optout/internal/language"
	"optout/internal/textextract"
)

// JourneySeed holds predefined journey steps in both languages.
type JourneySeed struct {
	StepsEN []string
	StepsES []string
}

// Broker is a named entity (data broker or resource) with opt-out
// instructions and optional contact and journey data. The name is the join
// key into the journey store and must be carried through unchanged.
type Broker struct {
	Name           string
	Instructions   string
	InstructionsES string
	Emails         []string
	Phones         []string
	Links          []string
	Seed           *JourneySeed
	// Interactive marks brokers eligible for the structured form/journey
	// workflow, as opposed to purely informational listings.
	Interactive bool
}

// DisplayName returns the broker name with emoji annotations removed.
func (b *Broker) DisplayName() string {
	return textextract.StripEmoji(b.Name)
}

// InstructionsFor returns instructions in the requested language, falling
// back to English when no Spanish text is available.
func (b *Broker) InstructionsFor(lang language.Lang) string {
	if lang == language.Spanish && b.InstructionsES != "" {
		return b.InstructionsES
	}
	return b.Instructions
}

// Category is a top-level grouping of brokers parsed from one level-2
// document heading. A fresh parse replaces the whole list.
type Category struct {
	Name    string
	Info    string
	Brokers []Broker
}

// FindBroker returns the first broker whose name matches the given name
// case-insensitively, searching exact matches before substring matches.
func FindBroker(categories []Category, name string) (*Broker, *Category) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return nil, nil
	}
	for ci := range categories {
		for bi := range categories[ci].Brokers {
			if strings.ToLower(categories[ci].Brokers[bi].Name) == needle {
				return &categories[ci].Brokers[bi], &categories[ci]
			}
		}
	}
	for ci := range categories {
		for bi := range categories[ci].Brokers {
			if strings.Contains(strings.ToLower(categories[ci].Brokers[bi].Name), needle) {
				return &categories[ci].Brokers[bi], &categories[ci]
			}
		}
	}
	return nil, nil
}

// Filter returns the categories whose brokers match the search term,
// keeping only matching brokers within each. An empty term returns the
// input unchanged.
func Filter(categories []Category, term string) []Category {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return categories
	}
	var out []Category
	for _, cat := range categories {
		var matched []Broker
		for _, b := range cat.Brokers {
			if strings.Contains(strings.ToLower(b.Name), term) {
				matched = append(matched, b)
			}
		}
		if len(matched) > 0 {
			out = append(out, Category{Name: cat.Name, Info: cat.Info, Brokers: matched})
		}
	}
	return out
}
