package model

import "time"

// RegisterRequest is the registration form. It binds from form or JSON bodies.
type RegisterRequest struct {
	Username        string `form:"username"         json:"username"`
	Email           string `form:"email"            json:"email"`
	Password        string `form:"password"         json:"password"`
	ConfirmPassword string `form:"confirm_password" json:"confirm_password"`
	FirstName       string `form:"first_name"       json:"first_name"`
	LastName        string `form:"last_name"        json:"last_name"`
	Bio             string `form:"bio"              json:"bio"`
	TravelInterests string `form:"travel_interests" json:"travel_interests"`
}

// RegisterResponse is returned after a successful registration.
type RegisterResponse struct {
	User     Profile `json:"user"`
	Message  string  `json:"message"`
	Redirect string  `json:"redirect"`
}

// LoginRequest is the login form.
type LoginRequest struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// Session is an authenticated session issued on login.
type Session struct {
	User      *User
	Token     string
	ExpiresAt time.Time
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	User      Profile   `json:"user"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Message   string    `json:"message"`
	Redirect  string    `json:"redirect"`
}

// ValidateUsernameRequest is the body of the username validation API.
type ValidateUsernameRequest struct {
	Username string `json:"username"`
}

// ValidateEmailRequest is the body of the email validation API.
type ValidateEmailRequest struct {
	Email string `json:"email"`
}

// ValidationResponse reports the verdict of the validation API.
// Errors is never null.
type ValidationResponse struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// NewValidationResponse builds a ValidationResponse from a violation list.
func NewValidationResponse(errs []string) *ValidationResponse {
	if errs == nil {
		errs = []string{}
	}
	return &ValidationResponse{Valid: len(errs) == 0, Errors: errs}
}
