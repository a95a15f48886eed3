package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/travel_together/internal/auth"
	"github.com/festy23/travel_together/internal/config"
	"github.com/festy23/travel_together/internal/response"
)

const (
	userIDKey   = "user_id"
	usernameKey = "username"
)

// Authenticator resolves the session from a bearer token or the session cookie.
type Authenticator struct {
	tokens *auth.TokenManager
	cfg    config.AuthConfig
	logger *zap.SugaredLogger
}

// NewAuthenticator creates an Authenticator.
func NewAuthenticator(tokens *auth.TokenManager, cfg config.AuthConfig, logger *zap.SugaredLogger) *Authenticator {
	return &Authenticator{tokens: tokens, cfg: cfg, logger: logger}
}

// Required rejects requests without a valid session with 401.
func (a *Authenticator) Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.authenticate(c) {
			response.Unauthorized(c, "Please log in to access this page")
			return
		}
		c.Next()
	}
}

// Optional attaches the session when one is present and valid.
func (a *Authenticator) Optional() gin.HandlerFunc {
	return func(c *gin.Context) {
		a.authenticate(c)
		c.Next()
	}
}

// SetSession stores token in the session cookie. The cookie expires with the token.
func (a *Authenticator) SetSession(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(a.cfg.CookieName, token, int(a.tokens.TTL().Seconds()), "/", "", a.cfg.CookieSecure, true)
}

// ClearSession expires the session cookie.
func (a *Authenticator) ClearSession(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(a.cfg.CookieName, "", -1, "/", "", a.cfg.CookieSecure, true)
}

func (a *Authenticator) authenticate(c *gin.Context) bool {
	token := bearerToken(c)
	if token == "" {
		token, _ = c.Cookie(a.cfg.CookieName)
	}
	if token == "" {
		return false
	}

	claims, err := a.tokens.Validate(token)
	if err != nil {
		a.logger.Debugw("session rejected", "error", err, "request_id", RequestIDFrom(c))
		return false
	}
	userID, err := claims.UserID()
	if err != nil {
		a.logger.Debugw("session rejected", "error", err, "request_id", RequestIDFrom(c))
		return false
	}

	c.Set(userIDKey, userID)
	c.Set(usernameKey, claims.Username)
	return true
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// UserIDFrom returns the authenticated user id.
func UserIDFrom(c *gin.Context) (uint64, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}

// UsernameFrom returns the authenticated username.
func UsernameFrom(c *gin.Context) string {
	return c.GetString(usernameKey)
}
