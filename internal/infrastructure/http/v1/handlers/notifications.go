package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"recyclehub/internal/core/apperror"
	"recyclehub/internal/notify"
)

// NotificationHandler exposes the notification feed.
type NotificationHandler struct {
	*BaseHandler
	feed *notify.Feed
}

// NewNotificationHandler creates a new notification handler.
func NewNotificationHandler(base *BaseHandler, feed *notify.Feed) *NotificationHandler {
	return &NotificationHandler{BaseHandler: base, feed: feed}
}

// List handles GET /notifications?since=<id>, oldest first.
func (h *NotificationHandler) List(c *gin.Context) {
	since := c.Query("since")
	if since == "" {
		h.OK(c, h.feed.List())
		return
	}

	id, err := strconv.ParseInt(since, 10, 64)
	if err != nil {
		h.Error(c, apperror.NewValidation("since must be a notification id").WithDetail("field", "since"))
		return
	}
	h.OK(c, h.feed.Since(id))
}
