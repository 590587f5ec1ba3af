// Package client is the network-backed counterpart of the service facades:
// the same operations implemented over the REST surface, with a bounded
// request timeout and transport failures mapped onto the error taxonomy.
package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "projecthub-backend/internal/errors"
)

// Client talks to a remote projecthub backend. The zero value is not usable;
// construct with New.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// New creates a client for the given base URL with a bounded timeout
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SetToken installs the bearer token sent with subsequent requests
func (c *Client) SetToken(token string) {
	c.token = token
}

// errorBody is the error envelope returned by the REST surface
type errorBody struct {
	Error string `json:"error"`
}

// do performs a request and decodes the response into out (skipped when out
// is nil). Timeouts, transport failures and error statuses all come back as
// typed errors.
func (c *Client) do(method, path string, query url.Values, body, out interface{}) error {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, fullURL, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classifyTransportError(fullURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return statusError(resp, fullURL)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &apperrors.NetworkError{URL: fullURL, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}

// classifyTransportError separates deadline expiry from other transport
// failures so callers can retry timeouts selectively
func classifyTransportError(fullURL string, err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &apperrors.TimeoutError{URL: fullURL}
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return &apperrors.TimeoutError{URL: fullURL}
	}
	return &apperrors.NetworkError{URL: fullURL, Err: err}
}

// statusError maps an error status onto the shared error taxonomy
func statusError(resp *http.Response, fullURL string) error {
	var eb errorBody
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	_ = json.Unmarshal(raw, &eb)
	msg := eb.Error
	if msg == "" {
		msg = strings.TrimSpace(string(raw))
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return apperrors.NewNotFoundError(entityFromMessage(msg))
	case http.StatusBadRequest:
		return apperrors.NewValidationError("", msg)
	case http.StatusUnauthorized:
		return apperrors.NewUnauthorizedError(msg)
	case http.StatusConflict:
		return &apperrors.AlreadyExistsError{Entity: entityFromMessage(msg)}
	case http.StatusUnprocessableEntity:
		return apperrors.NewInvalidReferenceError(entityFromMessage(msg), 0)
	default:
		return &apperrors.NetworkError{URL: fullURL, Err: fmt.Errorf("status %d: %s", resp.StatusCode, msg)}
	}
}

// entityFromMessage extracts the leading entity word from messages shaped
// like "task not found"; falls back to "resource"
func entityFromMessage(msg string) string {
	fields := strings.Fields(msg)
	if len(fields) > 0 {
		return fields[0]
	}
	return "resource"
}

// getJSON fetches path into a value of type T
func getJSON[T any](c *Client, path string, query url.Values) (T, error) {
	var out T
	err := c.do(http.MethodGet, path, query, nil, &out)
	return out, err
}

// postJSON posts body to path and decodes the response into T
func postJSON[T any](c *Client, path string, body interface{}) (T, error) {
	var out T
	err := c.do(http.MethodPost, path, nil, body, &out)
	return out, err
}

// putJSON puts body to path and decodes the response into T
func putJSON[T any](c *Client, path string, body interface{}) (T, error) {
	var out T
	err := c.do(http.MethodPut, path, nil, body, &out)
	return out, err
}
