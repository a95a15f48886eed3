package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		want     []string
	}{
		{name: "valid", username: "alice_01"},
		{name: "valid at max length", username: "abcdefghijklm"},
		{name: "empty reports only required", username: "", want: []string{"Username is required"}},
		{
			name:     "too short and starts with letter",
			username: "ab12",
			want:     []string{"Username must be at least 5 characters long"},
		},
		{
			name:     "too long",
			username: "abcdefghijklmn",
			want:     []string{"Username must be no more than 13 characters long"},
		},
		{
			name:     "digit first",
			username: "1alice",
			want:     []string{"Username must start with a letter"},
		},
		{
			name:     "invalid characters",
			username: "alice-bob",
			want:     []string{"Username can only contain letters, numbers, and underscores"},
		},
		{
			name:     "trailing and consecutive underscores",
			username: "alice__b_",
			want: []string{
				"Username cannot end with an underscore",
				"Username cannot have consecutive underscores",
			},
		},
		{
			name:     "reserved is case-insensitive",
			username: "Administrator",
			want:     []string{"This username is reserved and cannot be used"},
		},
		{
			name:     "underscore first accumulates",
			username: "_ab",
			want: []string{
				"Username must be at least 5 characters long",
				"Username must start with a letter",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Username(tt.username))
		})
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{name: "valid", value: "Mary-Jane"},
		{name: "valid with apostrophe", value: "O'Brien"},
		{name: "surrounding whitespace is ignored", value: "  Anna  "},
		{name: "no-break space between names", value: "Anna\u00a0Lee"},
		{
			name:  "no-break space next to a space",
			value: "Anna\u00a0 Lee",
			want:  []string{"First name cannot have consecutive spaces, hyphens, or apostrophes"},
		},
		{name: "whitespace only", value: "   ", want: []string{"First name is required"}},
		{name: "too short", value: "A", want: []string{"First name must be at least 2 characters long"}},
		{
			name:  "too long",
			value: strings.Repeat("a", 51),
			want:  []string{"First name must be no more than 50 characters long"},
		},
		{
			name:  "digits",
			value: "Anna2",
			want:  []string{"First name can only contain letters, spaces, hyphens, and apostrophes"},
		},
		{
			name:  "leading hyphen",
			value: "-Anna",
			want:  []string{"First name cannot start or end with spaces, hyphens, or apostrophes"},
		},
		{
			name:  "consecutive specials",
			value: "Anna--Lee",
			want:  []string{"First name cannot have consecutive spaces, hyphens, or apostrophes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Name(tt.value, "First name"))
		})
	}

	t.Run("field label is used", func(t *testing.T) {
		assert.Equal(t, []string{"Last name is required"}, Name("", "Last name"))
	})
}

func TestGroupTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  []string
	}{
		{name: "valid", title: "Backpacking Portugal 2025"},
		{name: "short all caps is allowed", title: "ROAD TRIP"},
		{name: "empty", title: "  ", want: []string{"Group title is required"}},
		{name: "too short", title: "Trip", want: []string{"Group title must be at least 5 characters long"}},
		{
			name:  "too long",
			title: strings.Repeat("a", 201),
			want:  []string{"Group title must be no more than 200 characters long"},
		},
		{
			name:  "no letters",
			title: "12345 678",
			want:  []string{"Group title must contain at least one letter"},
		},
		{
			name:  "all caps with spam word",
			title: "BUY BITCOIN NOW!!!",
			want: []string{
				"Group title cannot be all uppercase",
				"Group title contains inappropriate content",
			},
		},
		{
			name:  "too many special characters",
			title: "Trip!!!!!",
			want:  []string{"Group title contains too many special characters"},
		},
		{
			name:  "blocklist reported once",
			title: "cash money scam tour",
			want:  []string{"Group title contains inappropriate content"},
		},
		{
			name:  "blocklist matches substrings",
			title: "Cryptography conference",
			want:  []string{"Group title contains inappropriate content"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GroupTitle(tt.title))
		})
	}
}

func TestDestination(t *testing.T) {
	tests := []struct {
		name        string
		destination string
		want        []string
	}{
		{name: "valid", destination: "Lisbon, Portugal"},
		{name: "valid with apostrophe and period", destination: "St. John's"},
		{name: "empty", destination: "", want: []string{"Destination is required"}},
		{name: "too short", destination: "A", want: []string{"Destination must be at least 2 characters long"}},
		{
			name:        "too long",
			destination: strings.Repeat("a", 101),
			want:        []string{"Destination must be no more than 100 characters long"},
		},
		{
			name:        "digits only",
			destination: "1234",
			want:        []string{"Destination must contain at least one letter"},
		},
		{
			name:        "invalid characters",
			destination: "Paris & Rome",
			want:        []string{"Destination contains invalid characters"},
		},
		{
			name:        "non-ascii letters are rejected",
			destination: "Zürich",
			want:        []string{"Destination contains invalid characters"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Destination(tt.destination))
		})
	}
}

func TestPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     []string
	}{
		{name: "valid", password: "Str0ng!Pass"},
		{name: "empty", password: "", want: []string{"Password is required"}},
		{
			name:     "too short",
			password: "Ab1!",
			want:     []string{"Password must be at least 8 characters long"},
		},
		{
			name:     "too long",
			password: "Ab1!" + strings.Repeat("a", 125),
			want:     []string{"Password must be no more than 128 characters long"},
		},
		{
			name:     "missing classes",
			password: "abcdefgh",
			want: []string{
				"Password must contain at least one uppercase letter",
				"Password must contain at least one number",
				"Password must contain at least one special character",
			},
		},
		{
			name:     "common password",
			password: "Password123",
			want: []string{
				"Password must contain at least one special character",
				"Password is too common, please choose a stronger password",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Password(tt.password))
		})
	}
}

func TestEmail(t *testing.T) {
	assert.Empty(t, Email("alice@example.com"))
	assert.Empty(t, Email("a.b+tag@mail.example.org"))
	assert.Equal(t, []string{"Please enter a valid email address"}, Email("alice@example"))
	assert.Equal(t, []string{"Please enter a valid email address"}, Email(""))
	assert.Equal(t, "alice@example.com", NormalizeEmail("  Alice@Example.COM "))
}

func TestMessage(t *testing.T) {
	assert.Empty(t, Message("Hello", "Can I join?"))
	assert.Equal(t, []string{"Please fill in all fields"}, Message("  ", "body"))
	assert.Equal(t, []string{"Please fill in all fields"}, Message("subject", ""))
	assert.Equal(t,
		[]string{"Subject must be no more than 200 characters long"},
		Message(strings.Repeat("s", 201), "body"))
}

func TestValidatorsAreDeterministic(t *testing.T) {
	inputs := []string{"", "ab12", "admin", "BUY BITCOIN NOW!!!", "  x  ", "Str0ng!Pass"}
	for _, in := range inputs {
		assert.Equal(t, Username(in), Username(in))
		assert.Equal(t, Name(in, "Name"), Name(in, "Name"))
		assert.Equal(t, GroupTitle(in), GroupTitle(in))
		assert.Equal(t, Destination(in), Destination(in))
		assert.Equal(t, Password(in), Password(in))
	}
}

func TestEmptyInputReportsOnlyRequired(t *testing.T) {
	assert.Equal(t, []string{"Username is required"}, Username(""))
	assert.Equal(t, []string{"Name is required"}, Name("", "Name"))
	assert.Equal(t, []string{"Group title is required"}, GroupTitle(""))
	assert.Equal(t, []string{"Destination is required"}, Destination(""))
	assert.Equal(t, []string{"Password is required"}, Password(""))
}

func TestError(t *testing.T) {
	assert.NoError(t, NewError(nil))

	err := NewError([]string{"a", "b"})
	var verr *Error
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"a", "b"}, verr.Violations)
	assert.Equal(t, "validation failed: a; b", err.Error())

	assert.Nil(t, Prefix("Title", nil))
	assert.Equal(t, []string{"Title: x"}, Prefix("Title", []string{"x"}))
}
