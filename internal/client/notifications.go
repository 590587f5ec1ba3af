package client

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"projecthub-backend/internal/models"
	"projecthub-backend/internal/service"
)

// bulkResult is the envelope returned by bulk and mark-all operations
type bulkResult struct {
	Count int `json:"count"`
}

// GetMyNotifications retrieves the session user's notifications paginated
func (c *Client) GetMyNotifications(page, pageSize int, unreadOnly bool) (*models.PaginatedResponse[models.Notification], error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(pageSize))
	if unreadOnly {
		q.Set("unreadOnly", "true")
	}
	return getJSON[*models.PaginatedResponse[models.Notification]](c, "/api/v1/notifications/my", q)
}

// GetUnreadNotifications retrieves the session user's unread notifications
func (c *Client) GetUnreadNotifications() ([]models.Notification, error) {
	return getJSON[[]models.Notification](c, "/api/v1/notifications/my/unread", nil)
}

// GetNotificationCounts summarizes the session user's inbox
func (c *Client) GetNotificationCounts() (*models.NotificationCounts, error) {
	return getJSON[*models.NotificationCounts](c, "/api/v1/notifications/my/counts", nil)
}

// MarkNotificationRead marks a notification read
func (c *Client) MarkNotificationRead(id int) (*models.Notification, error) {
	return postJSON[*models.Notification](c, fmt.Sprintf("/api/v1/notifications/%d/read", id), nil)
}

// MarkNotificationUnread marks a notification unread
func (c *Client) MarkNotificationUnread(id int) (*models.Notification, error) {
	return postJSON[*models.Notification](c, fmt.Sprintf("/api/v1/notifications/%d/unread", id), nil)
}

// MarkAllNotificationsRead marks the session user's inbox read and returns
// how many notifications changed
func (c *Client) MarkAllNotificationsRead() (int, error) {
	res, err := postJSON[bulkResult](c, "/api/v1/notifications/my/read-all", nil)
	return res.Count, err
}

// DeleteNotification removes a notification
func (c *Client) DeleteNotification(id int) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/v1/notifications/%d", id), nil, nil, nil)
}

// CreateNotification creates a notification for one user
func (c *Client) CreateNotification(req service.CreateNotificationRequest) (*models.Notification, error) {
	return postJSON[*models.Notification](c, "/api/v1/notifications", req)
}

// CreateNotificationsBulk fans a notification out to several users
func (c *Client) CreateNotificationsBulk(req service.CreateBulkRequest) (int, error) {
	res, err := postJSON[bulkResult](c, "/api/v1/notifications/bulk", req)
	return res.Count, err
}
