package client

import (
	"net/http"

	"projecthub-backend/internal/auth"
	"projecthub-backend/internal/models"
)

// LoginRequest carries the credentials for Login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates and installs the returned token on the client
func (c *Client) Login(email, password string) (*auth.LoginResponse, error) {
	resp, err := postJSON[*auth.LoginResponse](c, "/api/auth/login", LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	c.SetToken(resp.AccessToken)
	return resp, nil
}

// Register creates an account, logs it in and installs the token
func (c *Client) Register(req auth.RegisterRequest) (*auth.LoginResponse, error) {
	resp, err := postJSON[*auth.LoginResponse](c, "/api/auth/register", req)
	if err != nil {
		return nil, err
	}
	c.SetToken(resp.AccessToken)
	return resp, nil
}

// Logout ends the remote session. The local token is cleared even when the
// remote call fails, so the client is always logged out afterwards.
func (c *Client) Logout() error {
	err := c.do(http.MethodPost, "/api/auth/logout", nil, nil, nil)
	c.SetToken("")
	return err
}

// Refresh exchanges a refresh token for a new session
func (c *Client) Refresh(refreshToken string) (*auth.LoginResponse, error) {
	resp, err := postJSON[*auth.LoginResponse](c, "/api/auth/refresh", map[string]string{"refreshToken": refreshToken})
	if err != nil {
		return nil, err
	}
	c.SetToken(resp.AccessToken)
	return resp, nil
}

// CurrentUser retrieves the user behind the installed token
func (c *Client) CurrentUser() (*models.User, error) {
	return getJSON[*models.User](c, "/api/auth/me", nil)
}
