package catalog

import "strings"

// interactiveCategoryMarker flags the category whose brokers support the
// structured form/journey workflow.
const interactiveCategoryMarker = "people search"

// Merge overlays the curated table onto parsed categories. For each broker
// the curated keys are scanned in table order and the first key contained
// (case-insensitively) in the broker name wins; the curated entry then
// replaces the parsed instructions, contacts, and journey seed wholesale.
// Brokers without a match keep their parsed data. Every broker in a
// category whose name contains "people search" is marked interactive,
// match or not.
func Merge(categories []Category, curated []Entry) []Category {
	for ci := range categories {
		cat := &categories[ci]
		interactive := strings.Contains(strings.ToLower(cat.Name), interactiveCategoryMarker)
		for bi := range cat.Brokers {
			b := &cat.Brokers[bi]
			if entry, ok := matchCurated(b.Name, curated); ok {
				applyEntry(b, entry)
			}
			if interactive {
				b.Interactive = true
			}
		}
	}
	return categories
}

// matchCurated finds the first curated entry whose key is a substring of
// the lowercased broker name. Substring containment can mis-associate
// brokers with overlapping names; the table order is the tiebreak and is
// part of the contract.
func matchCurated(name string, curated []Entry) (Entry, bool) {
	lowered := strings.ToLower(name)
	for _, entry := range curated {
		if strings.Contains(lowered, strings.ToLower(entry.Key)) {
			return entry, true
		}
	}
	return Entry{}, false
}

func applyEntry(b *Broker, entry Entry) {
	b.Instructions = entry.InstructionsEN
	b.InstructionsES = entry.InstructionsES
	b.Emails = append([]string(nil), entry.Emails...)
	b.Phones = append([]string(nil), entry.Phones...)
	b.Links = append([]string(nil), entry.Links...)
	b.Seed = &JourneySeed{
		StepsEN: append([]string(nil), entry.JourneyEN...),
		StepsES: append([]string(nil), entry.JourneyES...),
	}
	b.Interactive = true
}
