package service

import (
	"strings"
	"unicode"
)

// titleCase uppercases the first cased letter of every run of cased letters
// and lowercases the rest, so "o'brien" becomes "O'Brien" and
// "mary-JANE" becomes "Mary-Jane".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevCased := false
	for _, r := range s {
		cased := unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r)
		switch {
		case cased && prevCased:
			b.WriteRune(unicode.ToLower(r))
		case cased:
			b.WriteRune(unicode.ToTitle(r))
		default:
			b.WriteRune(r)
		}
		prevCased = cased
	}
	return b.String()
}
