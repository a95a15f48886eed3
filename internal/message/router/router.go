// Package router provides message module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	groupRepository "github.com/festy23/travel_together/internal/group/repository"
	"github.com/festy23/travel_together/internal/message/handler"
	"github.com/festy23/travel_together/internal/message/repository"
	"github.com/festy23/travel_together/internal/message/service"
	"github.com/festy23/travel_together/internal/middleware"
	userRepository "github.com/festy23/travel_together/internal/user/repository"
)

// RegisterRoutes registers messaging routes. Every route requires a session.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, sessions *middleware.Authenticator, logger *zap.SugaredLogger) {
	svc := service.New(
		repository.New(db, logger),
		groupRepository.New(db, logger),
		userRepository.New(db, logger),
		logger,
	)
	h := handler.New(svc, logger)

	authed := r.Group("", sessions.Required())
	authed.POST("/groups/:id/contact", h.ContactCreator)
	authed.GET("/messages", h.Inbox)
	authed.POST("/messages/:id/reply", h.Reply)
}
