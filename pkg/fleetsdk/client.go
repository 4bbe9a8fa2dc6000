package fleetsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strconv"
	"strings"
	"time"
)

// Client is a Go client for the FleetCheck service. It carries the session
// cookie in its jar, so a Login or Signup call authenticates every call that
// follows.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client with a fresh cookie jar.
func NewClient(baseURL string) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
			Jar:     jar,
		},
	}
}

// Login authenticates and establishes the session cookie.
func (c *Client) Login(ctx context.Context, username, password string) (SessionResponse, error) {
	var out SessionResponse
	err := c.postJSON(ctx, "/v1/auth/login", CredentialsRequest{
		Username: username,
		Password: password,
	}, &out, http.StatusOK)
	return out, err
}

// Signup creates an account and establishes the session cookie.
func (c *Client) Signup(ctx context.Context, name, username, password string) (SessionResponse, error) {
	var out SessionResponse
	err := c.postJSON(ctx, "/v1/auth/signup", SignupRequest{
		Name:     name,
		Username: username,
		Password: password,
	}, &out, http.StatusOK)
	return out, err
}

// Logout clears the session.
func (c *Client) Logout(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodPost, "/v1/auth/logout", nil)
	if err != nil {
		return err
	}
	return checkStatus(resp, http.StatusNoContent)
}

// Session returns the current actor.
func (c *Client) Session(ctx context.Context) (SessionResponse, error) {
	var out SessionResponse
	err := c.getJSON(ctx, "/v1/session", &out)
	return out, err
}

// Vans returns the vehicle roster.
func (c *Client) Vans(ctx context.Context) (VansResponse, error) {
	var out VansResponse
	err := c.getJSON(ctx, "/v1/vans", &out)
	return out, err
}

// SubmitEntry posts a checklist payload. The payload is the flat field map
// the submission form produces; values may be strings, booleans or numbers.
func (c *Client) SubmitEntry(ctx context.Context, payload map[string]any) (SubmitResponse, error) {
	var out SubmitResponse
	err := c.postJSON(ctx, "/v1/entries", payload, &out, http.StatusOK)
	return out, err
}

// ListEntries fetches recent entries, newest first. limit <= 0 leaves the
// server's cap in charge.
func (c *Client) ListEntries(ctx context.Context, limit int) ([]EntryRecord, error) {
	path := "/v1/entries"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var out []EntryRecord
	err := c.getJSON(ctx, path, &out)
	return out, err
}

// Livez checks service liveness.
func (c *Client) Livez(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	err := c.getJSON(ctx, "/livez", &out)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any, expected int) error {
	buf, err := json.Marshal(in)
	if err != nil {
		return err
	}
	resp, err := c.do(ctx, http.MethodPost, path, bytes.NewReader(buf))
	if err != nil {
		return err
	}
	return decodeJSON(resp, out, expected)
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return decodeJSON(resp, out, http.StatusOK)
}

// decodeJSON decodes a response into target, converting non-expected status
// codes into a typed *APIError.
func decodeJSON(resp *http.Response, target any, expected int) error {
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expected {
		return parseErrorResponse(resp.StatusCode, bodyBytes)
	}

	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func checkStatus(resp *http.Response, expected int) error {
	defer resp.Body.Close()

	if resp.StatusCode != expected {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return parseErrorResponse(resp.StatusCode, bodyBytes)
	}
	return nil
}

func parseErrorResponse(status int, body []byte) error {
	apiErr := &APIError{StatusCode: status}
	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}
