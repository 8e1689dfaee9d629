package textextract

import (
	"strings"
	"unicode"
)

// Covers the pictographic blocks that show up in the source document's
// broker headings (priority markers, warning symbols, and the like).
var emojiTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x2600, Hi: 0x27BF, Stride: 1},
		{Lo: 0x2B00, Hi: 0x2BFF, Stride: 1},
		{Lo: 0xFE0E, Hi: 0xFE0F, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x1F000, Hi: 0x1FAFF, Stride: 1},
	},
}

// StripEmoji removes emoji and symbol annotations from a string and trims
// the result. Broker headings carry priority/warning symbols that must not
// leak into journey keys, subjects, or letters.
func StripEmoji(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.Is(emojiTable, r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}
