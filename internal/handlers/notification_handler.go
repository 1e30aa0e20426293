package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberbook/barbershop-api/internal/httperr"
	"github.com/barberbook/barbershop-api/internal/httpresp"
	"github.com/barberbook/barbershop-api/internal/middleware"
	"github.com/barberbook/barbershop-api/internal/models"
)

type NotificationHandler struct {
	db *gorm.DB
}

func NewNotificationHandler(db *gorm.DB) *NotificationHandler {
	return &NotificationHandler{db: db}
}

func (h *NotificationHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var notifications []models.Notification
	if err := h.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(50).
		Find(&notifications).Error; err != nil {
		httperr.Internal(c, "failed_to_list_notifications", "Failed to fetch notifications.")
		return
	}

	httpresp.OK(c, notifications)
}

// MarkRead is scoped to the caller: marking someone else's notification
// silently affects nothing.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid notification id.")
		return
	}

	if err := h.db.
		Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", uint(id), userID).
		Update("read", true).Error; err != nil {
		httperr.Internal(c, "failed_to_update_notification", "Failed to update notification.")
		return
	}

	httpresp.Message(c, "Notification marked as read")
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	if err := h.db.
		Model(&models.Notification{}).
		Where("user_id = ?", userID).
		Update("read", true).Error; err != nil {
		httperr.Internal(c, "failed_to_update_notifications", "Failed to update notifications.")
		return
	}

	httpresp.Message(c, "All notifications marked as read")
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var count int64
	if err := h.db.
		Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Count(&count).Error; err != nil {
		httperr.Internal(c, "failed_to_count_notifications", "Failed to fetch unread count.")
		return
	}

	httpresp.OK(c, gin.H{"count": count})
}
