package translate

import (
	"regexp"
	"sort"
)

type phrase struct {
	pattern *regexp.Regexp
	spanish string
}

// Ordered longest-first so larger phrases win over their substrings. The
// short word "form" is deliberately absent: it would substitute inside
// words like "information".
var phrases = buildPhrases(map[string]string{
	"Find your information":         "Busque su información",
	"opt out":                       "excluirse",
	"people search":                 "búsqueda de personas",
	"property search":               "búsqueda de propiedades",
	"confirm your opt-out request":  "confirme su solicitud de exclusión",
	"email":                         "correo electrónico",
	"profile URL":                   "URL de perfil",
	"support":                       "soporte",
	"call":                          "llamar",
	"enter the URL":                 "ingrese la URL",
	"specific profile URL":          "URL de perfil específica",
	"multiple steps":                "múltiples pasos",
})

func buildPhrases(table map[string]string) []phrase {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	out := make([]phrase, 0, len(keys))
	for _, k := range keys {
		out = append(out, phrase{
			pattern: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(k) + `\b`),
			spanish: table[k],
		})
	}
	return out
}

// ToSpanish replaces known English phrases with Spanish equivalents,
// whole phrases only, longest first.
func ToSpanish(text string) string {
	for _, p := range phrases {
		text = p.pattern.ReplaceAllString(text, p.spanish)
	}
	return text
}

var parenSegment = regexp.MustCompile(`\([^)]*\)`)

// SegmentsToSpanish translates only the text outside parentheses, leaving
// parenthesized segments (typically URLs and contact details) verbatim.
func SegmentsToSpanish(text string) string {
	var out []byte
	last := 0
	for _, loc := range parenSegment.FindAllStringIndex(text, -1) {
		out = append(out, ToSpanish(text[last:loc[0]])...)
		out = append(out, text[loc[0]:loc[1]]...)
		last = loc[1]
	}
	out = append(out, ToSpanish(text[last:])...)
	return string(out)
}

// StepsToSpanish projects a list of English steps into Spanish.
func StepsToSpanish(steps []string) []string {
	out := make([]string, len(steps))
	for i, s := range steps {
		out[i] = SegmentsToSpanish(s)
	}
	return out
}
