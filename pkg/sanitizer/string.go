package sanitizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// CleanText composes the text to NFC, collapses every whitespace run into a
// single space and trims both ends.
func CleanText(s string) string {
	s = strings.TrimSpace(norm.NFC.String(s))

	if s == "" {
		return ""
	}

	var result strings.Builder
	var lastWasSpace bool

	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				result.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			result.WriteRune(r)
			lastWasSpace = false
		}
	}

	return result.String()
}

func NormalizeName(name string) string {
	return CleanText(name)
}

// NormalizeLabel cleans a room type label without changing its case; room
// lookups are exact string matches.
func NormalizeLabel(label string) string {
	return CleanText(label)
}
