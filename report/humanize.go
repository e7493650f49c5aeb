package report

import (
	"strings"
	"unicode"
)

// Humanize turns a snake_case or camelCase identifier into a spaced,
// readable test description: "reads_empty_input" and "ReadsEmptyInput"
// both become "reads empty input".
func Humanize(name string) string {
	var words []string
	for _, chunk := range strings.Split(name, "_") {
		words = append(words, splitCamel(chunk)...)
	}
	return strings.ToLower(strings.Join(words, " "))
}

func splitCamel(s string) []string {
	var words []string
	start := 0
	runes := []rune(s)
	for i := 1; i < len(runes); i++ {
		// A boundary is lower/digit followed by upper, or the last upper
		// of an acronym run ("HTTPServer" -> "HTTP", "Server").
		prevLower := unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1])
		if unicode.IsUpper(runes[i]) &&
			(prevLower || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
			if i > start {
				words = append(words, string(runes[start:i]))
			}
			start = i
		}
	}
	if start < len(runes) {
		words = append(words, string(runes[start:]))
	}
	return words
}
