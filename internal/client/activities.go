package client

import (
	"fmt"
	"net/url"
	"strconv"

	"projecthub-backend/internal/models"
	"projecthub-backend/internal/service"
)

// GetRecentActivities retrieves the newest activities, optionally scoped
func (c *Client) GetRecentActivities(limit, projectID, userID int) ([]models.Activity, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if projectID != 0 {
		q.Set("projectId", strconv.Itoa(projectID))
	}
	if userID != 0 {
		q.Set("userId", strconv.Itoa(userID))
	}
	return getJSON[[]models.Activity](c, "/api/v1/activities/recent", q)
}

// GetProjectActivities retrieves a project's activity feed paginated
func (c *Client) GetProjectActivities(projectID, page, pageSize int) (*models.PaginatedResponse[models.Activity], error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(pageSize))
	return getJSON[*models.PaginatedResponse[models.Activity]](c, fmt.Sprintf("/api/v1/activities/project/%d", projectID), q)
}

// SearchActivities retrieves activities by description text, paginated
func (c *Client) SearchActivities(term string, page, pageSize, projectID int) (*models.PaginatedResponse[models.Activity], error) {
	q := url.Values{"q": {term}}
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(pageSize))
	if projectID != 0 {
		q.Set("projectId", strconv.Itoa(projectID))
	}
	return getJSON[*models.PaginatedResponse[models.Activity]](c, "/api/v1/activities/search", q)
}

// RecordActivity appends a feed entry
func (c *Client) RecordActivity(req service.RecordActivityRequest) (*models.Activity, error) {
	return postJSON[*models.Activity](c, "/api/v1/activities", req)
}

// GetActivityStats aggregates activity volume, optionally scoped
func (c *Client) GetActivityStats(projectID, userID int) (*models.ActivityStats, error) {
	q := url.Values{}
	if projectID != 0 {
		q.Set("projectId", strconv.Itoa(projectID))
	}
	if userID != 0 {
		q.Set("userId", strconv.Itoa(userID))
	}
	return getJSON[*models.ActivityStats](c, "/api/v1/activities/stats", q)
}
