package validation

import (
	"regexp"
	"strings"
)

// MsgEmailRegistered is reported when a well-formed email already has an account.
const MsgEmailRegistered = "Email is already registered"

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email checks the address format.
func Email(email string) []string {
	if !emailPattern.MatchString(email) {
		return []string{"Please enter a valid email address"}
	}
	return nil
}

// NormalizeEmail is the canonical form used for storage and lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
