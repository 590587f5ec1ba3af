package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"projecthub-backend/internal/auth"
	"projecthub-backend/internal/service"
)

// NotificationHandler handles HTTP requests for the notification inbox
type NotificationHandler struct {
	notificationService service.NotificationServiceInterface
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService service.NotificationServiceInterface) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// GetMyNotifications handles GET /notifications/my
// @Summary My notifications
// @Description Returns the session user's inbox, newest first. Empty without a session.
// @Tags notifications
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page" default(20)
// @Param unreadOnly query bool false "Only unread notifications"
// @Success 200 {object} models.PaginatedResponse[models.Notification]
// @Security BearerAuth
// @Router /api/v1/notifications/my [get]
func (h *NotificationHandler) GetMyNotifications(c *gin.Context) {
	session, _ := auth.CurrentSession(c)
	page, pageSize := pageArgs(c)
	resp, err := h.notificationService.GetMy(session, page, pageSize, c.Query("unreadOnly") == "true")
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetUnreadNotifications handles GET /notifications/my/unread
func (h *NotificationHandler) GetUnreadNotifications(c *gin.Context) {
	session, _ := auth.CurrentSession(c)
	notifications, err := h.notificationService.GetUnread(session)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// GetNotificationCounts handles GET /notifications/my/counts
func (h *NotificationHandler) GetNotificationCounts(c *gin.Context) {
	session, _ := auth.CurrentSession(c)
	counts, err := h.notificationService.GetCounts(session)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

// MarkNotificationRead handles POST /notifications/:id/read. Idempotent.
func (h *NotificationHandler) MarkNotificationRead(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	notification, err := h.notificationService.MarkAsRead(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notification)
}

// MarkNotificationUnread handles POST /notifications/:id/unread
func (h *NotificationHandler) MarkNotificationUnread(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	notification, err := h.notificationService.MarkAsUnread(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notification)
}

// MarkAllNotificationsRead handles POST /notifications/my/read-all
// @Summary Mark my inbox read
// @Description Marks every unread notification read and reports how many changed
// @Tags notifications
// @Produce json
// @Success 200 {object} map[string]int
// @Failure 401 {object} map[string]interface{} "No session"
// @Security BearerAuth
// @Router /api/v1/notifications/my/read-all [post]
func (h *NotificationHandler) MarkAllNotificationsRead(c *gin.Context) {
	session, _ := auth.CurrentSession(c)
	count, err := h.notificationService.MarkAllRead(session)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// DeleteNotification handles DELETE /notifications/:id
func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.notificationService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateNotification handles POST /notifications
func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	var req service.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	notification, err := h.notificationService.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, notification)
}

// CreateNotificationsBulk handles POST /notifications/bulk. All recipients
// are validated before any notification is written.
func (h *NotificationHandler) CreateNotificationsBulk(c *gin.Context) {
	var req service.CreateBulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	count, err := h.notificationService.CreateBulk(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"count": count})
}
