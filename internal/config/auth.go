package config

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// DefaultAuthSecret is the development signing secret. Release builds must override it.
const DefaultAuthSecret = "dev-secret-key-change-in-production"

// AuthConfig holds session token configuration.
type AuthConfig struct {
	// Secret signs session tokens (HMAC-SHA256).
	Secret string
	// TokenTTL is how long a session token stays valid.
	TokenTTL time.Duration
	// CookieName is the name of the session cookie.
	CookieName string
	// CookieSecure marks the session cookie as HTTPS-only.
	CookieSecure bool
	// PasswordCost is the bcrypt cost used for new password hashes.
	PasswordCost int
}

// LoadAuthConfigFromEnv loads session configuration from environment variables.
func LoadAuthConfigFromEnv() AuthConfig {
	return AuthConfig{
		Secret:       GetEnv("AUTH_SECRET", DefaultAuthSecret),
		TokenTTL:     GetEnvDuration("AUTH_TOKEN_TTL", 24*time.Hour),
		CookieName:   GetEnv("AUTH_COOKIE_NAME", "session"),
		CookieSecure: GetEnvBool("AUTH_COOKIE_SECURE", false),
		PasswordCost: GetEnvInt("AUTH_PASSWORD_COST", bcrypt.DefaultCost),
	}
}

// Validate validates session configuration.
func (c AuthConfig) Validate() error {
	if len(c.Secret) < 16 {
		return fmt.Errorf("AUTH_SECRET must be at least 16 characters")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("AUTH_TOKEN_TTL must be greater than 0")
	}
	if c.CookieName == "" {
		return fmt.Errorf("AUTH_COOKIE_NAME must not be empty")
	}
	if c.PasswordCost < bcrypt.MinCost || c.PasswordCost > bcrypt.MaxCost {
		return fmt.Errorf("AUTH_PASSWORD_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	return nil
}
