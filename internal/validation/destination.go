package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// Destination length bounds, inclusive, measured after trimming.
const (
	DestinationMinLength = 2
	DestinationMaxLength = 100
)

var destinationPattern = regexp.MustCompile(`^[a-zA-Z0-9\s,.\-']+$`)

// Destination validates a trip destination such as "Lisbon, Portugal".
func Destination(destination string) []string {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return []string{"Destination is required"}
	}

	var errs []string
	n := length(destination)
	if n < DestinationMinLength {
		errs = append(errs, fmt.Sprintf("Destination must be at least %d characters long", DestinationMinLength))
	}
	if n > DestinationMaxLength {
		errs = append(errs, fmt.Sprintf("Destination must be no more than %d characters long", DestinationMaxLength))
	}
	if !hasASCIILetter(destination) {
		errs = append(errs, "Destination must contain at least one letter")
	}
	if !destinationPattern.MatchString(destination) {
		errs = append(errs, "Destination contains invalid characters")
	}
	return errs
}
