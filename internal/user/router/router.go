// Package router provides user module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/travel_together/internal/auth"
	"github.com/festy23/travel_together/internal/middleware"
	"github.com/festy23/travel_together/internal/user/handler"
	"github.com/festy23/travel_together/internal/user/repository"
	"github.com/festy23/travel_together/internal/user/service"
)

// RegisterRoutes registers account and validation API routes.
func RegisterRoutes(
	r gin.IRouter,
	db *gorm.DB,
	hasher *auth.PasswordHasher,
	tokens *auth.TokenManager,
	sessions *middleware.Authenticator,
	logger *zap.SugaredLogger,
) {
	repo := repository.New(db, logger)
	svc := service.New(repo, hasher, tokens, logger)
	h := handler.New(svc, sessions, logger)

	api := r.Group("/api/validate")
	api.POST("/username", h.ValidateUsername)
	api.POST("/email", h.ValidateEmail)

	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.POST("/logout", sessions.Required(), h.Logout)
}
