package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// Password length bounds, inclusive.
const (
	PasswordMinLength = 8
	PasswordMaxLength = 128
)

var (
	passwordLower   = regexp.MustCompile(`[a-z]`)
	passwordUpper   = regexp.MustCompile(`[A-Z]`)
	passwordDigit   = regexp.MustCompile(`\d`)
	passwordSpecial = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

var commonPasswords = map[string]struct{}{
	"password": {}, "12345678": {}, "qwerty": {}, "abc123": {}, "password123": {},
	"admin": {}, "letmein": {}, "welcome": {}, "monkey": {}, "1234567890": {},
}

// Password checks password strength. Every rule is independent.
func Password(password string) []string {
	if password == "" {
		return []string{"Password is required"}
	}

	var errs []string
	n := length(password)
	if n < PasswordMinLength {
		errs = append(errs, fmt.Sprintf("Password must be at least %d characters long", PasswordMinLength))
	}
	if n > PasswordMaxLength {
		errs = append(errs, fmt.Sprintf("Password must be no more than %d characters long", PasswordMaxLength))
	}
	if !passwordLower.MatchString(password) {
		errs = append(errs, "Password must contain at least one lowercase letter")
	}
	if !passwordUpper.MatchString(password) {
		errs = append(errs, "Password must contain at least one uppercase letter")
	}
	if !passwordDigit.MatchString(password) {
		errs = append(errs, "Password must contain at least one number")
	}
	if !passwordSpecial.MatchString(password) {
		errs = append(errs, "Password must contain at least one special character")
	}
	if _, common := commonPasswords[strings.ToLower(password)]; common {
		errs = append(errs, "Password is too common, please choose a stronger password")
	}
	return errs
}
