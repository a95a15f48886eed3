package validation

import (
	"context"
	"fmt"
)

// UserLookup answers uniqueness questions against the user store.
// A non-nil error means the lookup itself failed, not that nothing was found.
type UserLookup interface {
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// Availability combines format checks with uniqueness lookups. The real-time
// validation API and registration both go through it, so they agree on
// every verdict.
type Availability struct {
	users UserLookup
}

// NewAvailability creates an Availability backed by users.
func NewAvailability(users UserLookup) *Availability {
	return &Availability{users: users}
}

// Username returns the format violations of username, or, when the format
// is valid, MsgUsernameTaken if the name is registered.
func (a *Availability) Username(ctx context.Context, username string) ([]string, error) {
	if errs := Username(username); len(errs) > 0 {
		return errs, nil
	}

	taken, err := a.users.UsernameExists(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username availability: %w", err)
	}
	if taken {
		return []string{MsgUsernameTaken}, nil
	}
	return nil, nil
}

// Email returns the format violation of email, or, when the format is
// valid, MsgEmailRegistered if an account uses the address. Surrounding
// whitespace is ignored and the lookup is case-insensitive.
func (a *Availability) Email(ctx context.Context, email string) ([]string, error) {
	normalized := NormalizeEmail(email)
	if errs := Email(normalized); len(errs) > 0 {
		return errs, nil
	}

	registered, err := a.users.EmailExists(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to check email availability: %w", err)
	}
	if registered {
		return []string{MsgEmailRegistered}, nil
	}
	return nil, nil
}
