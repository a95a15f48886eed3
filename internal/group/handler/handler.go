// Package handler provides HTTP handlers for group endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/travel_together/internal/group/model"
	"github.com/festy23/travel_together/internal/group/service"
	"github.com/festy23/travel_together/internal/middleware"
	"github.com/festy23/travel_together/internal/response"
	"github.com/festy23/travel_together/internal/validation"
)

// Redirect targets returned to the client after a successful action.
const (
	RedirectDashboard = "dashboard"
	RedirectGroup     = "group"
)

// Handler handles HTTP requests for group endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new group handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Index handles GET / request.
// @Summary Most recent groups
// @Tags Groups
// @Produce json
// @Success 200 {object} model.GroupListResponse
// @Router / [get].
func (h *Handler) Index(c *gin.Context) {
	groups, err := h.service.Index(c.Request.Context())
	if err != nil {
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, model.GroupListResponse{Groups: groups})
}

// Browse handles GET /groups request.
// @Summary All groups, newest first
// @Tags Groups
// @Produce json
// @Success 200 {object} model.GroupListResponse
// @Router /groups [get].
func (h *Handler) Browse(c *gin.Context) {
	groups, err := h.service.Browse(c.Request.Context())
	if err != nil {
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, model.GroupListResponse{Groups: groups})
}

// View handles GET /groups/:id request.
// @Summary Group details
// @Tags Groups
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {object} model.GroupDetail
// @Failure 404 {object} response.ErrorResponse
// @Router /groups/{id} [get].
func (h *Handler) View(c *gin.Context) {
	groupID, ok := groupIDParam(c)
	if !ok {
		return
	}
	viewerID, _ := middleware.UserIDFrom(c)

	detail, err := h.service.View(c.Request.Context(), groupID, viewerID)
	if err != nil {
		h.handleError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Create handles POST /groups request.
// @Summary Create a group
// @Tags Groups
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Success 201 {object} model.GroupResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /groups [post].
func (h *Handler) Create(c *gin.Context) {
	var form model.GroupForm
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	userID, _ := middleware.UserIDFrom(c)

	group, err := h.service.Create(c.Request.Context(), userID, &form)
	if err != nil {
		h.handleError(c, err, "create_group")
		return
	}

	c.JSON(http.StatusCreated, model.GroupResponse{
		Group:    *group,
		Message:  "Travel group created successfully!",
		Redirect: RedirectDashboard,
	})
}

// Edit handles PUT|POST /groups/:id/edit request.
// @Summary Edit a group
// @Tags Groups
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {object} model.GroupResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /groups/{id}/edit [put].
func (h *Handler) Edit(c *gin.Context) {
	groupID, ok := groupIDParam(c)
	if !ok {
		return
	}
	var form model.GroupForm
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	userID, _ := middleware.UserIDFrom(c)

	group, err := h.service.Edit(c.Request.Context(), groupID, userID, &form)
	if err != nil {
		if errors.Is(err, model.ErrNotGroupCreator) {
			response.Forbidden(c, "You can only edit groups you created")
			return
		}
		h.handleError(c, err, "edit_group")
		return
	}

	c.JSON(http.StatusOK, model.GroupResponse{
		Group:    *group,
		Message:  "Group updated successfully!",
		Redirect: RedirectGroup,
	})
}

// Delete handles POST /groups/:id/delete request.
// @Summary Delete a group
// @Tags Groups
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {object} model.ActionResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /groups/{id}/delete [post].
func (h *Handler) Delete(c *gin.Context) {
	groupID, ok := groupIDParam(c)
	if !ok {
		return
	}
	userID, _ := middleware.UserIDFrom(c)

	if err := h.service.Delete(c.Request.Context(), groupID, userID); err != nil {
		if errors.Is(err, model.ErrNotGroupCreator) {
			response.Forbidden(c, "You can only delete groups you created")
			return
		}
		h.handleError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, model.ActionResponse{
		Message:  "Group deleted successfully",
		Redirect: RedirectDashboard,
	})
}

// Join handles POST /groups/:id/join request.
// @Summary Join a group
// @Tags Groups
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {object} model.ActionResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /groups/{id}/join [post].
func (h *Handler) Join(c *gin.Context) {
	groupID, ok := groupIDParam(c)
	if !ok {
		return
	}
	userID, _ := middleware.UserIDFrom(c)

	if err := h.service.Join(c.Request.Context(), groupID, userID); err != nil {
		h.handleError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, model.ActionResponse{
		Message:  "Successfully joined the group!",
		Redirect: RedirectGroup,
	})
}

// Dashboard handles GET /dashboard request.
// @Summary Groups the current user created and joined
// @Tags Groups
// @Produce json
// @Success 200 {object} model.DashboardResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /dashboard [get].
func (h *Handler) Dashboard(c *gin.Context) {
	userID, _ := middleware.UserIDFrom(c)

	dashboard, err := h.service.Dashboard(c.Request.Context(), userID)
	if err != nil {
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// Recommendations handles GET /recommendations request.
// @Summary Popular destinations and recent groups
// @Tags Groups
// @Produce json
// @Success 200 {object} model.RecommendationsResponse
// @Router /recommendations [get].
func (h *Handler) Recommendations(c *gin.Context) {
	rec, err := h.service.Recommendations(c.Request.Context())
	if err != nil {
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// handleError maps service errors to HTTP responses.
func (h *Handler) handleError(c *gin.Context, err error, form string) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		response.Validation(c, form, verr.Violations)
	case errors.Is(err, model.ErrGroupNotFound):
		response.NotFound(c, "Group not found")
	case errors.Is(err, model.ErrNotGroupCreator):
		response.Forbidden(c, "Only the group creator can modify this group")
	case errors.Is(err, model.ErrAlreadyMember):
		response.Conflict(c, "You are already a member of this group")
	case errors.Is(err, model.ErrGroupFull):
		response.Conflict(c, "This group is full and cannot accept new members")
	default:
		h.logger.Errorw("request failed", "path", c.FullPath(), "error", err)
		response.Internal(c)
	}
}

// groupIDParam parses the :id path parameter, answering 404 when it is not a valid id.
func groupIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.NotFound(c, "Group not found")
		return 0, false
	}
	return id, true
}
