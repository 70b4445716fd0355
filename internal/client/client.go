// ABOUTME: HTTP client for the codementor backend API
// ABOUTME: Attaches bearer tokens and converts failures into typed APIErrors

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// TokenStore is the persisted bearer token pair the client reads and,
// on login/register/logout, mutates. An empty AccessToken means no token.
type TokenStore interface {
	AccessToken() string
	Save(access, refresh string) error
	Clear() error
}

// Client is the API client for the codementor backend
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenStore
}

// New creates a new API client with the given base URL and token store.
// tokens may be nil for unauthenticated use.
func New(baseURL string, tokens TokenStore) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		tokens: tokens,
	}
}

// APIError is the uniform failure shape produced at the client boundary.
// Message is always non-empty.
type APIError struct {
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	return e.Message
}

// errorBody covers the error payload shapes the backend emits
type errorBody struct {
	Message string `json:"message"`
	Detail  string `json:"detail"`
	Error   string `json:"error"`
}

// get issues an authenticated GET and decodes the response into out
func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// post issues an authenticated POST with a JSON body and decodes into out
func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// patch issues an authenticated PATCH with a JSON body and decodes into out
func (c *Client) patch(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.AccessToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.handleRequestError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.handleErrorResponse(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("invalid response from backend: %w", err)
	}
	return nil
}

// handleRequestError converts context errors to user-friendly messages
func (c *Client) handleRequestError(ctx context.Context, err error) error {
	if ctx.Err() == context.Canceled {
		return &APIError{Message: "request canceled"}
	}
	if ctx.Err() == context.DeadlineExceeded {
		return &APIError{Message: "request timed out"}
	}
	return &APIError{Message: fmt.Sprintf("cannot connect to backend at %s: %v", c.baseURL, err)}
}

// handleErrorResponse parses API error responses into a typed APIError
func (c *Client) handleErrorResponse(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var body errorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		switch {
		case body.Message != "":
			apiErr.Message = body.Message
		case body.Detail != "":
			apiErr.Message = body.Detail
		case body.Error != "":
			apiErr.Message = body.Error
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = fmt.Sprintf("request failed with status %d", resp.StatusCode)
	}
	return apiErr
}
