package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// Group title bounds and heuristics.
const (
	TitleMinLength          = 5
	TitleMaxLength          = 200
	TitleAllCapsMinLength   = 10
	TitleMaxSpecialCharRate = 0.3
)

var titleSpecialChars = regexp.MustCompile(`[!@#$%^&*()+=\[\]{}|\\:";'<>?,./]`)

// titleBlocklist is matched case-insensitively as substrings.
var titleBlocklist = []string{"spam", "fake", "scam", "money", "cash", "bitcoin", "crypto"}

// GroupTitle validates a travel group title.
func GroupTitle(title string) []string {
	title = strings.TrimSpace(title)
	if title == "" {
		return []string{"Group title is required"}
	}

	var errs []string
	n := length(title)
	if n < TitleMinLength {
		errs = append(errs, fmt.Sprintf("Group title must be at least %d characters long", TitleMinLength))
	}
	if n > TitleMaxLength {
		errs = append(errs, fmt.Sprintf("Group title must be no more than %d characters long", TitleMaxLength))
	}
	if !hasASCIILetter(title) {
		errs = append(errs, "Group title must contain at least one letter")
	}
	if isAllUpper(title) && n > TitleAllCapsMinLength {
		errs = append(errs, "Group title cannot be all uppercase")
	}

	specials := len(titleSpecialChars.FindAllStringIndex(title, -1))
	if float64(specials) > float64(n)*TitleMaxSpecialCharRate {
		errs = append(errs, "Group title contains too many special characters")
	}

	lower := strings.ToLower(title)
	for _, word := range titleBlocklist {
		if strings.Contains(lower, word) {
			errs = append(errs, "Group title contains inappropriate content")
			break
		}
	}
	return errs
}
