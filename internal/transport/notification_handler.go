package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NotificationHandler lists and dismisses active notifications.
type NotificationHandler struct {
	store NotificationStore
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(store NotificationStore) *NotificationHandler {
	return &NotificationHandler{store: store}
}

// List returns the notifications whose display window has not elapsed
// GET /api/v1/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	items := h.store.Active()
	c.JSON(http.StatusOK, gin.H{
		"count":         len(items),
		"notifications": items,
	})
}

// Dismiss removes one notification by id
// DELETE /api/v1/notifications/:id
func (h *NotificationHandler) Dismiss(c *gin.Context) {
	if !h.store.Dismiss(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
