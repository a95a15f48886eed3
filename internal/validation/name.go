package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Name length bounds, inclusive, measured after trimming.
const (
	NameMinLength = 2
	NameMaxLength = 50
)

// nameSpace matches Unicode whitespace; RE2's \s alone is ASCII only.
const nameSpace = `\s\v\x{85}\p{Zs}\x{2028}\x{2029}`

var (
	namePattern        = regexp.MustCompile(`^[a-zA-Z` + nameSpace + `\-']+$`)
	nameSpecialRun     = regexp.MustCompile(`[` + nameSpace + `\-']{2,}`)
	nameEdgeCharacters = "-'"
)

// Name validates a person's first or last name. field labels the messages,
// e.g. "First name". The value is trimmed for checking only.
func Name(name, field string) []string {
	name = strings.TrimSpace(name)
	if name == "" {
		return []string{field + " is required"}
	}

	var errs []string
	n := length(name)
	if n < NameMinLength {
		errs = append(errs, fmt.Sprintf("%s must be at least %d characters long", field, NameMinLength))
	}
	if n > NameMaxLength {
		errs = append(errs, fmt.Sprintf("%s must be no more than %d characters long", field, NameMaxLength))
	}
	if !namePattern.MatchString(name) {
		errs = append(errs, field+" can only contain letters, spaces, hyphens, and apostrophes")
	}

	first, _ := utf8.DecodeRuneInString(name)
	last, _ := utf8.DecodeLastRuneInString(name)
	if isNameEdge(first) || isNameEdge(last) {
		errs = append(errs, field+" cannot start or end with spaces, hyphens, or apostrophes")
	}
	if nameSpecialRun.MatchString(name) {
		errs = append(errs, field+" cannot have consecutive spaces, hyphens, or apostrophes")
	}
	return errs
}

func isNameEdge(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune(nameEdgeCharacters, r)
}
