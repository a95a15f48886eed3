// Package validation holds the field and form rules shared by the real-time
// validation API and the form submission handlers.
//
// Validators never fail for bad input: they return an ordered list of
// human-readable violations, empty when the input is acceptable.
package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Error carries the violations of a rejected submission.
type Error struct {
	Violations []string
}

// Error implements error.
func (e *Error) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

// NewError returns an *Error for a non-empty violation list and nil otherwise.
func NewError(violations []string) error {
	if len(violations) == 0 {
		return nil
	}
	return &Error{Violations: violations}
}

// Prefix returns violations with label prepended to each message.
func Prefix(label string, violations []string) []string {
	if len(violations) == 0 {
		return nil
	}
	out := make([]string, len(violations))
	for i, v := range violations {
		out[i] = label + ": " + v
	}
	return out
}

func length(s string) int {
	return utf8.RuneCountInString(s)
}

func hasASCIILetter(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') {
			return true
		}
	}
	return false
}

// isAllUpper reports whether s has at least one cased letter and no lowercase ones.
func isAllUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			cased = true
		}
	}
	return cased
}
