package nutrition

import (
	"strings"
	"unicode"
)

func isWordBoundary(r rune) bool {
	return unicode.IsSpace(r) || r == '-' || r == '_'
}

// TitleCase upper-cases the first letter of every word and lower-cases the
// rest. Words are separated by whitespace, hyphens and underscores, which are
// kept as they are.
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	startOfWord := true
	for _, r := range s {
		switch {
		case isWordBoundary(r):
			startOfWord = true
			b.WriteRune(r)
		case startOfWord:
			startOfWord = false
			b.WriteRune(unicode.ToTitle(r))
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
