package language

import (
	"strings"

	"golang.org/x/text/language"
)

// Lang identifies a supported display language.
type Lang string

const (
	English Lang = "en"
	Spanish Lang = "es"
)

type entry struct {
	lang    Lang
	display string
	words   []string
}

var supported = []entry{
	{English, "English", []string{"english", "ingles", "inglés"}},
	{Spanish, "Spanish", []string{"spanish", "espanol", "español", "castellano"}},
}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Spanish,
})

var byWord map[string]Lang

func init() {
	byWord = make(map[string]Lang)
	for _, e := range supported {
		byWord[string(e.lang)] = e.lang
		for _, w := range e.words {
			byWord[w] = e.lang
		}
	}
}

// Parse resolves a user-supplied language identifier to a supported Lang.
// Accepts 2-letter codes, language names in either language, and BCP 47
// tags. Unrecognized input resolves to English.
func Parse(value string) Lang {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return English
	}
	if l, ok := byWord[value]; ok {
		return l
	}
	tag, err := language.Parse(value)
	if err != nil {
		return English
	}
	_, index, conf := matcher.Match(tag)
	if conf == language.No {
		return English
	}
	if index == 1 {
		return Spanish
	}
	return English
}

// DisplayName returns the English name of a language.
func DisplayName(l Lang) string {
	for _, e := range supported {
		if e.lang == l {
			return e.display
		}
	}
	return "English"
}

// All returns the supported languages in preference order.
func All() []Lang {
	return []Lang{English, Spanish}
}
