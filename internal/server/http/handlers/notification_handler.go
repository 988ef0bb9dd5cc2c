package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/naijamart/storefront/internal/server/http/dto"
)

// NotificationHandler manages user notification endpoints.
type NotificationHandler struct {
	facade NotificationFacade
}

// NewNotificationHandler constructs NotificationHandler.
func NewNotificationHandler(facade NotificationFacade) *NotificationHandler {
	return &NotificationHandler{facade: facade}
}

// List handles GET /api/user/notifications.
func (h *NotificationHandler) List(c *gin.Context) {
	notifications, err := h.facade.Notifications(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(statusFromError(err))
		return
	}

	resp := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		resp = append(resp, dto.ToNotificationResponse(n))
	}
	c.JSON(http.StatusOK, resp)
}

// UnreadCount handles GET /api/user/notifications/unread.
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	count, err := h.facade.UnreadNotifications(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.JSON(http.StatusOK, dto.UnreadCountResponse{Count: count})
}

// Acknowledge handles POST /api/user/notifications/:id/read.
func (h *NotificationHandler) Acknowledge(c *gin.Context) {
	if err := h.facade.AcknowledgeNotification(c.Request.Context(), CurrentUserID(c), c.Param("id")); err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.Status(http.StatusOK)
}
