// Package app assembles the HTTP engine and server from configuration.
package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/travel_together/internal/auth"
	"github.com/festy23/travel_together/internal/config"
	groupRouter "github.com/festy23/travel_together/internal/group/router"
	"github.com/festy23/travel_together/internal/health"
	messageRouter "github.com/festy23/travel_together/internal/message/router"
	"github.com/festy23/travel_together/internal/metrics"
	"github.com/festy23/travel_together/internal/middleware"
	userRouter "github.com/festy23/travel_together/internal/user/router"
)

// NewEngine builds the gin engine with middlewares and every route registered.
func NewEngine(
	cfg config.Config,
	db *gorm.DB,
	m *metrics.Metrics,
	logger *zap.SugaredLogger,
) *gin.Engine {
	hasher := auth.NewPasswordHasher(cfg.Auth.PasswordCost)
	tokens := auth.NewTokenManager(cfg.Auth.Secret, cfg.Auth.TokenTTL)
	sessions := middleware.NewAuthenticator(tokens, cfg.Auth, logger)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		m.Middleware(),
		middleware.BodyLimit(cfg.Server.MaxBodyBytes),
	)

	r.GET("/health", health.New(db, logger).Check)
	r.GET("/metrics", gin.WrapH(m.Handler()))

	userRouter.RegisterRoutes(r, db, hasher, tokens, sessions, logger)
	groupRouter.RegisterRoutes(r, db, sessions, logger)
	messageRouter.RegisterRoutes(r, db, sessions, logger)

	return r
}

// NewServer wraps handler in an http.Server configured from cfg.
func NewServer(cfg config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.GetAddress(),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}
