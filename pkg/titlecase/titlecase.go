package titlecase

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// isDelimiter reports whether r separates segments inside a compound word.
func isDelimiter(r rune) bool {
	return r == '-' || r == '_' || r == ' '
}

// Word renders a single word in Title Case: the first character and every
// character following an internal delimiter (hyphen, underscore, space) is
// upper-cased, all others are lower-cased. Delimiters pass through
// unchanged. Case conversion uses full Unicode casing, so one input
// character may expand to several code points in the output.
func Word(s string) string {
	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)

	var b strings.Builder
	b.Grow(len(s) + 2)

	capitalizeNext := true
	for _, r := range s {
		rs := string(r)
		if capitalizeNext {
			b.WriteString(upper.String(rs))
		} else {
			b.WriteString(lower.String(rs))
		}
		capitalizeNext = isDelimiter(r)
	}
	return b.String()
}

// Join renders each word in Title Case and joins them with single spaces:
//
//	Join("glossy", "black cod") // "Glossy Black Cod"
func Join(words ...string) string {
	var b strings.Builder
	for i, w := range words {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(Word(w))
	}
	return b.String()
}
