package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the canonical format for trip dates.
const DateLayout = "2006-01-02"

// dateInputLayout also accepts month and day without leading zeros.
const dateInputLayout = "2006-1-2"

// Group form limits.
const (
	DescriptionMinLength = 10
	DescriptionMaxLength = 2000
	MaxTripDays          = 365
	MaxBudget            = 100000
	MinGroupMembers      = 2
	MaxGroupMembers      = 50
)

// GroupInput is the raw, untrusted group form as submitted.
type GroupInput struct {
	Title       string
	Description string
	Destination string
	StartDate   string
	EndDate     string
	BudgetMin   string
	BudgetMax   string
	MaxMembers  string
	Interests   string
}

// GroupRules carries the context a group form is checked against.
type GroupRules struct {
	// IsNew selects creation rules. Edits skip the past start date check
	// and must keep capacity at or above CurrentMembers.
	IsNew          bool
	CurrentMembers int64
	// Today overrides the current date, zero means time.Now().
	Today time.Time
}

// GroupValues are the parsed, trimmed values of a group form. They are only
// meaningful when Group reported no violations.
type GroupValues struct {
	Title       string
	Description string
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	BudgetMin   *float64
	BudgetMax   *float64
	MaxMembers  int
	Interests   *string
}

// Group validates a group create or edit form and returns the parsed values
// together with every violation found, in a stable order.
func Group(in GroupInput, rules GroupRules) (*GroupValues, []string) {
	values := &GroupValues{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Destination: strings.TrimSpace(in.Destination),
	}
	if interests := strings.TrimSpace(in.Interests); interests != "" {
		values.Interests = &interests
	}

	var errs []string
	errs = append(errs, Prefix("Title", GroupTitle(values.Title))...)
	errs = append(errs, Prefix("Destination", Destination(values.Destination))...)

	if length(values.Description) < DescriptionMinLength {
		errs = append(errs, fmt.Sprintf("Description: Must be at least %d characters long", DescriptionMinLength))
	} else if length(values.Description) > DescriptionMaxLength {
		errs = append(errs, fmt.Sprintf("Description: Must be no more than %d characters long", DescriptionMaxLength))
	}

	errs = append(errs, checkDates(in, rules, values)...)
	errs = append(errs, checkBudgets(in, values)...)
	errs = append(errs, checkCapacity(in, rules, values)...)

	return values, errs
}

func checkDates(in GroupInput, rules GroupRules, values *GroupValues) []string {
	start, startErr := time.Parse(dateInputLayout, strings.TrimSpace(in.StartDate))
	end, endErr := time.Parse(dateInputLayout, strings.TrimSpace(in.EndDate))
	if startErr != nil || endErr != nil {
		return []string{"Invalid date format"}
	}
	values.StartDate = start
	values.EndDate = end

	var errs []string
	if rules.IsNew && start.Before(dateOf(rules.Today)) {
		errs = append(errs, "Start date cannot be in the past")
	}
	if end.Before(start) {
		errs = append(errs, "End date must be after start date")
	}
	if int(end.Sub(start).Hours()/24) > MaxTripDays {
		errs = append(errs, fmt.Sprintf("Trip duration cannot exceed %d days", MaxTripDays))
	}
	return errs
}

func checkBudgets(in GroupInput, values *GroupValues) []string {
	var errs []string

	minBudget, ok := parseBudget(in.BudgetMin)
	switch {
	case !ok:
		errs = append(errs, "Invalid minimum budget format")
	case minBudget != nil && *minBudget < 0:
		errs = append(errs, "Minimum budget cannot be negative")
	case minBudget != nil && *minBudget > MaxBudget:
		errs = append(errs, "Minimum budget seems unreasonably high")
	}
	values.BudgetMin = minBudget

	maxBudget, ok := parseBudget(in.BudgetMax)
	switch {
	case !ok:
		errs = append(errs, "Invalid maximum budget format")
	case maxBudget == nil:
	case *maxBudget < 0:
		errs = append(errs, "Maximum budget cannot be negative")
	case *maxBudget > MaxBudget:
		errs = append(errs, "Maximum budget seems unreasonably high")
	case minBudget != nil && *maxBudget < *minBudget:
		errs = append(errs, "Maximum budget must be greater than minimum budget")
	}
	values.BudgetMax = maxBudget

	return errs
}

// parseBudget returns nil for a blank value and ok=false for anything that
// is not a finite number.
func parseBudget(raw string) (*float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, false
	}
	return &v, true
}

func checkCapacity(in GroupInput, rules GroupRules, values *GroupValues) []string {
	n, err := strconv.Atoi(strings.TrimSpace(in.MaxMembers))
	if err != nil {
		return []string{"Invalid maximum members value"}
	}
	values.MaxMembers = n

	switch {
	case n < MinGroupMembers:
		return []string{fmt.Sprintf("Group must allow at least %d members", MinGroupMembers)}
	case n > MaxGroupMembers:
		return []string{fmt.Sprintf("Group cannot have more than %d members", MaxGroupMembers)}
	case !rules.IsNew && int64(n) < rules.CurrentMembers:
		return []string{fmt.Sprintf("Cannot reduce max members below current member count (%d)", rules.CurrentMembers)}
	}
	return nil
}

// dateOf truncates t (or now, when zero) to midnight UTC of its calendar day.
func dateOf(t time.Time) time.Time {
	if t.IsZero() {
		t = time.Now()
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
