// Package pixela is a thin client for the Pixela habit-tracking API
// (https://pixe.la). Each method performs a single HTTP call and returns
// the raw response body; callers decide how to display it.
package pixela

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the production Pixela endpoint.
const DefaultBaseURL = "https://pixe.la"

// userAgent identifies this client on every request.
const userAgent = "pixela-habit-tracker/1.0 (+github.com/DEX-01-CODER/habit-tracker-api)"

// requestTimeout bounds every API call.
const requestTimeout = 15 * time.Second

// Client talks to the Pixela API on behalf of one account.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

// New creates a Client for the given base URL and user token. An empty
// baseURL selects the production endpoint. The token may be empty for
// calls that do not require authentication (user creation).
func New(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		client: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// APIError is an HTTP-level error response from the Pixela API.
type APIError struct {
	StatusCode int
	// Message is the "message" field from the JSON error body.
	// Empty when the body was not structured; Raw holds the body then.
	Message string
	Raw     string
}

// Structured reports whether the error detail was decoded from a JSON body.
func (e *APIError) Structured() bool { return e.Message != "" }

// Detail returns the best available error description.
func (e *APIError) Detail() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Raw
}

func (e *APIError) Error() string {
	return fmt.Sprintf("pixela: HTTP %d: %s", e.StatusCode, e.Detail())
}

// call issues a single request and returns the raw response body.
// body, when non-nil, is sent as JSON. There is no retry: an HTTP error
// status becomes an *APIError and a transport failure is returned wrapped.
func (c *Client) call(ctx context.Context, method, path string, body any) (string, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return "", fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("X-USER-TOKEN", c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return "", apiError(resp.StatusCode, data)
	}
	return string(data), nil
}

// apiError extracts Pixela's error message from a response body, falling
// back to the raw text when the body is not the expected JSON shape.
func apiError(status int, body []byte) *APIError {
	var detail struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &detail) == nil && detail.Message != "" {
		return &APIError{StatusCode: status, Message: detail.Message}
	}
	return &APIError{StatusCode: status, Raw: string(body)}
}

// CreateUser registers a new Pixela user. The client's token becomes the
// account token. Pixela requires explicit terms-of-service agreement in
// the payload.
func (c *Client) CreateUser(ctx context.Context, username string) (string, error) {
	payload := map[string]string{
		"token":               c.token,
		"username":            username,
		"agreeTermsOfService": "yes",
		"notMinor":            "yes",
	}
	return c.call(ctx, http.MethodPost, "/v1/users", payload)
}

// CreateGraph creates a graph under the given account. The graph must
// already have passed Validate.
func (c *Client) CreateGraph(ctx context.Context, username string, g Graph) (string, error) {
	path := fmt.Sprintf("/v1/users/%s/graphs", url.PathEscape(username))
	return c.call(ctx, http.MethodPost, path, g)
}

// RecordPixel posts a pixel (one dated quantity) to a graph.
func (c *Client) RecordPixel(ctx context.Context, username, graphID string, p Pixel) (string, error) {
	path := fmt.Sprintf("/v1/users/%s/graphs/%s", url.PathEscape(username), url.PathEscape(graphID))
	return c.call(ctx, http.MethodPost, path, p)
}

// UpdatePixel replaces the quantity recorded for date (YYYYMMDD).
func (c *Client) UpdatePixel(ctx context.Context, username, graphID, date, quantity string) (string, error) {
	path := fmt.Sprintf("/v1/users/%s/graphs/%s/%s", url.PathEscape(username), url.PathEscape(graphID), url.PathEscape(date))
	return c.call(ctx, http.MethodPut, path, map[string]string{"quantity": quantity})
}

// DeletePixel removes the pixel recorded for date (YYYYMMDD).
func (c *Client) DeletePixel(ctx context.Context, username, graphID, date string) (string, error) {
	path := fmt.Sprintf("/v1/users/%s/graphs/%s/%s", url.PathEscape(username), url.PathEscape(graphID), url.PathEscape(date))
	return c.call(ctx, http.MethodDelete, path, nil)
}

// GraphURL returns the public viewer URL for a graph.
func (c *Client) GraphURL(username, graphID string) string {
	return fmt.Sprintf("%s/v1/users/%s/graphs/%s.html", c.baseURL, url.PathEscape(username), url.PathEscape(graphID))
}
