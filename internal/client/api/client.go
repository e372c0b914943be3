// Package api implements the HTTP client for the CmdKeeper REST API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/atinyakov/CmdKeeper/internal/models"
)

// APIError is a server-reported failure with a machine-readable code.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// Client talks to the CmdKeeper server. After a successful Login it
// attaches the bearer token to every request.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// New creates a Client for the given base URL (e.g. "http://localhost:8080").
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// Token returns the bearer token obtained from the last successful login,
// or an empty string before authentication.
func (c *Client) Token() string {
	return c.token
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, username, password string) error {
	body := map[string]string{"username": username, "password": password}
	return c.do(ctx, http.MethodPost, "/auth/register", body, nil)
}

// Login authenticates and stores the returned bearer token on the client.
func (c *Client) Login(ctx context.Context, username, password string) error {
	body := map[string]string{"username": username, "password": password}
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &resp); err != nil {
		return err
	}
	c.token = resp.Token
	return nil
}

// Commands fetches the caller's full command list.
func (c *Client) Commands(ctx context.Context) ([]models.Command, error) {
	var commands []models.Command
	if err := c.do(ctx, http.MethodGet, "/commands", nil, &commands); err != nil {
		return nil, err
	}
	return commands, nil
}

// CommandsByCategory fetches the caller's commands with an exact-match category.
func (c *Client) CommandsByCategory(ctx context.Context, category string) ([]models.Command, error) {
	var commands []models.Command
	if err := c.do(ctx, http.MethodGet, "/commands/category/"+category, nil, &commands); err != nil {
		return nil, err
	}
	return commands, nil
}

// CreateCommand stores a new command and returns the created record.
func (c *Client) CreateCommand(ctx context.Context, title, command, category string) (*models.Command, error) {
	body := map[string]string{"title": title, "command": command, "category": category}
	var created models.Command
	if err := c.do(ctx, http.MethodPost, "/commands", body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteCommand removes the command with the given id.
func (c *Client) DeleteCommand(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/commands/"+id, nil, nil)
}

// do sends one JSON request and decodes the response into out when non-nil.
// Non-2xx responses are returned as *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		_ = json.NewDecoder(resp.Body).Decode(apiErr)
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
