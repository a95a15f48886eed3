// Package handler provides HTTP handlers for message endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	groupModel "github.com/festy23/travel_together/internal/group/model"
	"github.com/festy23/travel_together/internal/message/model"
	"github.com/festy23/travel_together/internal/message/service"
	"github.com/festy23/travel_together/internal/middleware"
	"github.com/festy23/travel_together/internal/response"
	"github.com/festy23/travel_together/internal/validation"
)

// Redirect targets returned to the client after a successful action.
const (
	RedirectGroup    = "group"
	RedirectMessages = "messages"
)

// Handler handles HTTP requests for message endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new message handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// ContactCreator handles POST /groups/:id/contact request.
// @Summary Message the creator of a group
// @Tags Messages
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path int true "Group ID"
// @Success 201 {object} model.SendResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /groups/{id}/contact [post].
func (h *Handler) ContactCreator(c *gin.Context) {
	groupID, ok := idParam(c, "Group not found")
	if !ok {
		return
	}
	var req model.SendRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	userID, _ := middleware.UserIDFrom(c)

	view, err := h.service.ContactCreator(c.Request.Context(), groupID, userID, &req)
	if err != nil {
		h.handleError(c, err, "contact_creator")
		return
	}

	c.JSON(http.StatusCreated, model.SendResponse{
		Message:  *view,
		Notice:   "Message sent successfully!",
		Redirect: RedirectGroup,
	})
}

// Inbox handles GET /messages request.
// @Summary Received and sent messages
// @Tags Messages
// @Produce json
// @Success 200 {object} model.InboxResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /messages [get].
func (h *Handler) Inbox(c *gin.Context) {
	userID, _ := middleware.UserIDFrom(c)

	inbox, err := h.service.Inbox(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, inbox)
}

// Reply handles POST /messages/:id/reply request.
// @Summary Reply to a received message
// @Tags Messages
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path int true "Message ID"
// @Success 201 {object} model.SendResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /messages/{id}/reply [post].
func (h *Handler) Reply(c *gin.Context) {
	messageID, ok := idParam(c, "Message not found")
	if !ok {
		return
	}
	var req model.SendRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	userID, _ := middleware.UserIDFrom(c)

	view, err := h.service.Reply(c.Request.Context(), messageID, userID, &req)
	if err != nil {
		h.handleError(c, err, "reply_message")
		return
	}

	c.JSON(http.StatusCreated, model.SendResponse{
		Message:  *view,
		Notice:   "Reply sent successfully!",
		Redirect: RedirectMessages,
	})
}

func (h *Handler) handleError(c *gin.Context, err error, form string) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		response.Validation(c, form, verr.Violations)
	case errors.Is(err, groupModel.ErrGroupNotFound):
		response.NotFound(c, "Group not found")
	case errors.Is(err, model.ErrMessageNotFound):
		response.NotFound(c, "Message not found")
	case errors.Is(err, model.ErrSelfMessage):
		response.Forbidden(c, "You cannot message yourself")
	case errors.Is(err, model.ErrNotRecipient):
		response.Forbidden(c, "You can only reply to messages sent to you")
	default:
		h.logger.Errorw("request failed", "path", c.FullPath(), "error", err)
		response.Internal(c)
	}
}

func idParam(c *gin.Context, notFound string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.NotFound(c, notFound)
		return 0, false
	}
	return id, true
}
