package journey

import (
	"fmt"
	"strings"

	"optout/internal/catalog"
)

// synthRule appends one step when its predicate holds against the broker's
// lowercased instructions and extracted fields.
type synthRule struct {
	applies func(b *catalog.Broker, instructions string) bool
	step    func(b *catalog.Broker) string
}

// Rule order is user-visible: people read the resulting steps in sequence.
// Extend by appending before the closing step; never reorder.
var synthRules = []synthRule{
	{
		applies: func(_ *catalog.Broker, ins string) bool {
			return strings.Contains(ins, "find your information") || strings.Contains(ins, "search")
		},
		step: func(b *catalog.Broker) string {
			if len(b.Links) > 0 {
				return fmt.Sprintf("Go to %s and search for your information.", b.Links[0])
			}
			return "Search for your information on the website."
		},
	},
	{
		applies: func(_ *catalog.Broker, ins string) bool {
			return strings.Contains(ins, "opt out") || strings.Contains(ins, "opt-out")
		},
		step: func(_ *catalog.Broker) string {
			return "Open the opt-out form and enter your details."
		},
	},
	{
		applies: func(b *catalog.Broker, _ string) bool { return len(b.Emails) > 0 },
		step: func(b *catalog.Broker) string {
			return fmt.Sprintf("Send an email to %s requesting removal.", b.Emails[0])
		},
	},
	{
		applies: func(b *catalog.Broker, _ string) bool { return len(b.Phones) > 0 },
		step: func(b *catalog.Broker) string {
			return fmt.Sprintf("Call %s and ask to remove your information.", b.Phones[0])
		},
	},
}

const closingStep = "Check your email for confirmation and follow any instructions."

// SynthesizeSteps derives a fallback journey from a broker's parsed
// instructions and contacts. Used only when no curated seed exists. Always
// ends with the confirmation step, so the result has at least one step.
func SynthesizeSteps(b *catalog.Broker) []string {
	instructions := strings.ToLower(b.Instructions)
	var steps []string
	for _, rule := range synthRules {
		if rule.applies(b, instructions) {
			steps = append(steps, rule.step(b))
		}
	}
	return append(steps, closingStep)
}
