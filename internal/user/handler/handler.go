// Package handler provides HTTP handlers for user endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/travel_together/internal/middleware"
	"github.com/festy23/travel_together/internal/response"
	"github.com/festy23/travel_together/internal/user/model"
	"github.com/festy23/travel_together/internal/user/service"
	"github.com/festy23/travel_together/internal/validation"
)

// Redirect targets returned to the client after a successful action.
const (
	RedirectLogin     = "login"
	RedirectDashboard = "dashboard"
	RedirectIndex     = "index"
)

// Handler handles HTTP requests for user endpoints.
type Handler struct {
	service  service.Service
	sessions *middleware.Authenticator
	logger   *zap.SugaredLogger
}

// New creates a new user handler instance.
func New(svc service.Service, sessions *middleware.Authenticator, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, sessions: sessions, logger: logger}
}

// ValidateUsername handles POST /api/validate/username request.
// @Summary Check a username in real time
// @Tags Validation
// @Accept json
// @Produce json
// @Param request body model.ValidateUsernameRequest true "Request"
// @Success 200 {object} model.ValidationResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /api/validate/username [post].
func (h *Handler) ValidateUsername(c *gin.Context) {
	var req model.ValidateUsernameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.ValidateUsername(c.Request.Context(), req.Username)
	if err != nil {
		response.Internal(c)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ValidateEmail handles POST /api/validate/email request.
// @Summary Check an email address in real time
// @Tags Validation
// @Accept json
// @Produce json
// @Param request body model.ValidateEmailRequest true "Request"
// @Success 200 {object} model.ValidationResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /api/validate/email [post].
func (h *Handler) ValidateEmail(c *gin.Context) {
	var req model.ValidateEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.ValidateEmail(c.Request.Context(), req.Email)
	if err != nil {
		response.Internal(c)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Register handles POST /register request.
// @Summary Create an account
// @Tags Users
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Success 201 {object} model.RegisterResponse
// @Failure 409 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /register [post].
func (h *Handler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	user, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		var verr *validation.Error
		switch {
		case errors.As(err, &verr):
			response.Validation(c, "register", verr.Violations)
		case errors.Is(err, model.ErrUserExists):
			response.Conflict(c, "Username or email is already registered")
		default:
			response.Internal(c)
		}
		return
	}

	c.JSON(http.StatusCreated, model.RegisterResponse{
		User:     user.Profile(),
		Message:  "Registration successful! Please log in.",
		Redirect: RedirectLogin,
	})
}

// Login handles POST /login request.
// The session token is returned in the body and set as a cookie.
// @Summary Log in
// @Tags Users
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Success 200 {object} model.LoginResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /login [post].
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	session, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		var verr *validation.Error
		switch {
		case errors.As(err, &verr):
			response.Validation(c, "login", verr.Violations)
		case errors.Is(err, model.ErrInvalidCredentials):
			response.Unauthorized(c, "Invalid username or password")
		default:
			response.Internal(c)
		}
		return
	}

	h.sessions.SetSession(c, session.Token)
	c.JSON(http.StatusOK, model.LoginResponse{
		User:      session.User.Profile(),
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		Message:   "Welcome back, " + session.User.FirstName + "!",
		Redirect:  RedirectDashboard,
	})
}

// Logout handles POST /logout request.
func (h *Handler) Logout(c *gin.Context) {
	userID, _ := middleware.UserIDFrom(c)
	h.sessions.ClearSession(c)
	h.logger.Infow("Logout completed", "user_id", userID)

	c.JSON(http.StatusOK, gin.H{
		"message":  "You have been logged out.",
		"redirect": RedirectIndex,
	})
}
