package sanitizer

import "strings"

// ExtractDetails parses an assistant summary made of "Key: value" lines. Each
// line is split at its first colon; lines without one are skipped and a
// repeated key keeps its last value.
func ExtractDetails(text string) map[string]string {
	details := map[string]string{}
	for _, line := range strings.Split(text, "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key = CleanText(key)
		if key == "" {
			continue
		}
		details[key] = CleanText(value)
	}
	return details
}

// Lookup returns the first non-empty value among keys, matched without regard
// to case.
func Lookup(details map[string]string, keys ...string) (string, bool) {
	for _, want := range keys {
		for k, v := range details {
			if strings.EqualFold(k, want) && v != "" {
				return v, true
			}
		}
	}
	return "", false
}
