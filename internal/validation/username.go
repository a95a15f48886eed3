package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Username length bounds, inclusive.
const (
	UsernameMinLength = 5
	UsernameMaxLength = 13
)

// MsgUsernameTaken is reported when a well-formed username is already registered.
const MsgUsernameTaken = "Username is already taken"

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

var reservedUsernames = map[string]struct{}{
	"admin": {}, "administrator": {}, "root": {}, "user": {}, "test": {}, "guest": {},
	"api": {}, "www": {}, "mail": {}, "email": {}, "support": {}, "help": {}, "info": {},
	"contact": {}, "about": {}, "login": {}, "register": {}, "signup": {}, "signin": {},
	"logout": {}, "dashboard": {}, "profile": {}, "settings": {}, "moderator": {},
	"mod": {}, "staff": {}, "official": {}, "system": {}, "null": {}, "undefined": {},
}

// Username checks a username against every format rule and reports all violations.
// Uniqueness is the caller's concern (see Availability).
func Username(username string) []string {
	if username == "" {
		return []string{"Username is required"}
	}

	var errs []string
	n := length(username)
	if n < UsernameMinLength {
		errs = append(errs, fmt.Sprintf("Username must be at least %d characters long", UsernameMinLength))
	}
	if n > UsernameMaxLength {
		errs = append(errs, fmt.Sprintf("Username must be no more than %d characters long", UsernameMaxLength))
	}
	if !usernamePattern.MatchString(username) {
		errs = append(errs, "Username can only contain letters, numbers, and underscores")
	}
	if first, _ := utf8.DecodeRuneInString(username); !unicode.IsLetter(first) {
		errs = append(errs, "Username must start with a letter")
	}
	if strings.HasSuffix(username, "_") {
		errs = append(errs, "Username cannot end with an underscore")
	}
	if strings.Contains(username, "__") {
		errs = append(errs, "Username cannot have consecutive underscores")
	}
	if _, reserved := reservedUsernames[strings.ToLower(username)]; reserved {
		errs = append(errs, "This username is reserved and cannot be used")
	}
	return errs
}
