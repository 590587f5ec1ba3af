package client

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"projecthub-backend/internal/models"
	"projecthub-backend/internal/service"
)

// GetUsers retrieves all users
func (c *Client) GetUsers() ([]models.User, error) {
	return getJSON[[]models.User](c, "/api/v1/users/all", nil)
}

// ListUsers retrieves users paginated, optionally filtered by search term
// and role
func (c *Client) ListUsers(page, pageSize int, search string, role models.UserRole) (*models.PaginatedResponse[models.User], error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(pageSize))
	if search != "" {
		q.Set("search", search)
	}
	if role != "" {
		q.Set("role", string(role))
	}
	return getJSON[*models.PaginatedResponse[models.User]](c, "/api/v1/users", q)
}

// GetUser retrieves a user by id
func (c *Client) GetUser(id int) (*models.User, error) {
	return getJSON[*models.User](c, fmt.Sprintf("/api/v1/users/%d", id), nil)
}

// GetActiveUsers retrieves all active users
func (c *Client) GetActiveUsers() ([]models.User, error) {
	return getJSON[[]models.User](c, "/api/v1/users/active", nil)
}

// GetUsersByRole retrieves users with the given role
func (c *Client) GetUsersByRole(role models.UserRole) ([]models.User, error) {
	return getJSON[[]models.User](c, "/api/v1/users/role/"+string(role), nil)
}

// SearchUsers retrieves users matching the term by name or email
func (c *Client) SearchUsers(term string) ([]models.User, error) {
	q := url.Values{"q": {term}}
	return getJSON[[]models.User](c, "/api/v1/users/search", q)
}

// CreateUser creates a user
func (c *Client) CreateUser(req service.CreateUserRequest) (*models.User, error) {
	return postJSON[*models.User](c, "/api/v1/users", req)
}

// UpdateUser applies a partial update to a user
func (c *Client) UpdateUser(id int, req service.UpdateUserRequest) (*models.User, error) {
	return putJSON[*models.User](c, fmt.Sprintf("/api/v1/users/%d", id), req)
}

// DeactivateUser flips a user inactive
func (c *Client) DeactivateUser(id int) (*models.User, error) {
	return postJSON[*models.User](c, fmt.Sprintf("/api/v1/users/%d/deactivate", id), nil)
}

// ActivateUser flips a user active
func (c *Client) ActivateUser(id int) (*models.User, error) {
	return postJSON[*models.User](c, fmt.Sprintf("/api/v1/users/%d/activate", id), nil)
}

// ResetPassword requests a password reset for the email
func (c *Client) ResetPassword(email string) error {
	return c.do(http.MethodPost, "/api/v1/users/reset-password", nil, map[string]string{"email": email}, nil)
}

// DeleteUser removes a user
func (c *Client) DeleteUser(id int) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/v1/users/%d", id), nil, nil, nil)
}

// GetUserStats retrieves a user's workload aggregates
func (c *Client) GetUserStats(id int) (*models.UserStats, error) {
	return getJSON[*models.UserStats](c, fmt.Sprintf("/api/v1/users/%d/stats", id), nil)
}

// GetMyStats retrieves the stats of the session user
func (c *Client) GetMyStats() (*models.UserStats, error) {
	return getJSON[*models.UserStats](c, "/api/v1/users/me/stats", nil)
}
