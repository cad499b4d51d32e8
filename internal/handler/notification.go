package handler

import (
	"net/http"

	"github.com/chandu2812/budget-plan/internal/middleware"
	"github.com/chandu2812/budget-plan/internal/models"
	"github.com/chandu2812/budget-plan/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// full feed cap
const notificationFeedLimit = 50

// NotificationHandler serves the alert feed. There is deliberately no
// mark-as-read endpoint; IsRead only ever holds its default.
type NotificationHandler struct {
	DB *gorm.DB
}

func NewNotificationHandler(db *gorm.DB) *NotificationHandler {
	return &NotificationHandler{DB: db}
}

// ListNotifications returns the 50 most recent notifications, read and
// unread, newest-first.
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	var rows []models.Notification
	if err := h.DB.
		Where("user_id = ?", user.ID).
		Order("created_at DESC, id DESC").
		Limit(notificationFeedLimit).
		Find(&rows).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query notifications failed")
		return
	}

	items := make([]notificationResp, 0, len(rows))
	for _, n := range rows {
		items = append(items, notificationResp{
			Message:   n.Message,
			Type:      n.Type,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		})
	}

	util.Success(c, util.Response{
		"notifications": items,
	})
}
