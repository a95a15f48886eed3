// Package router provides group module routes registration.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/travel_together/internal/group/handler"
	"github.com/festy23/travel_together/internal/group/repository"
	"github.com/festy23/travel_together/internal/group/service"
	"github.com/festy23/travel_together/internal/middleware"
	userRepository "github.com/festy23/travel_together/internal/user/repository"
)

// RegisterRoutes registers group routes.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, sessions *middleware.Authenticator, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, db, userRepository.New(db, logger), logger)
	h := handler.New(svc, logger)

	r.GET("/", h.Index)
	r.GET("/recommendations", h.Recommendations)
	r.GET("/dashboard", sessions.Required(), h.Dashboard)

	groups := r.Group("/groups")
	groups.GET("", h.Browse)
	groups.GET("/:id", sessions.Optional(), h.View)

	authed := groups.Group("", sessions.Required())
	authed.POST("", h.Create)
	authed.Match([]string{http.MethodPut, http.MethodPost}, "/:id/edit", h.Edit)
	authed.POST("/:id/delete", h.Delete)
	authed.POST("/:id/join", h.Join)
}
