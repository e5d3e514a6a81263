// Package api implements the service.Service interface over the remote
// TaskItems HTTP API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"

	"tido/internal/service"
)

const (
	// APITimeout is the timeout for API calls.
	APITimeout = 10 * time.Second

	// tasksPath is the path for the task collection endpoints.
	tasksPath = "/TaskItems"

	// authPath is the path prefix for the auth endpoints.
	authPath = "/Auth"
)

// Client implements service.Service against the remote HTTP API.
// Authenticated calls carry the session token as a bearer credential; auth
// endpoints are called without one. If the token is empty the call is still
// attempted; the server is authoritative on rejection.
type Client struct {
	base  string
	hc    *http.Client // bearer transport for task endpoints
	plain *http.Client // no credential, for /Auth endpoints
	debug io.Writer
}

// New creates a client for the API at base. The token source supplies the
// bearer credential for every task call; it may yield an empty token.
func New(base string, ts oauth2.TokenSource) *Client {
	return &Client{
		base:  base,
		hc:    oauth2.NewClient(context.Background(), ts),
		plain: &http.Client{},
		debug: io.Discard,
	}
}

// SetDebug directs request/response diagnostics to w.
func (c *Client) SetDebug(w io.Writer) {
	if w != nil {
		c.debug = w
	}
}

// Login implements service.Service. The server expects the password in the
// passwordHash field and returns {"token": "..."} on success.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body := map[string]string{"username": username, "passwordHash": password}
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, c.plain, http.MethodPost, c.base+authPath+"/login", body, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Register implements service.Service.
func (c *Client) Register(ctx context.Context, username, password string) error {
	body := map[string]string{"username": username, "passwordHash": password}
	return c.do(ctx, c.plain, http.MethodPost, c.base+authPath+"/register", body, nil)
}

// ListTasks implements service.Service.
func (c *Client) ListTasks(ctx context.Context, date string) ([]service.Task, error) {
	u := c.base + tasksPath
	if date != "" {
		u += "?date=" + url.QueryEscape(date)
	}
	var tasks []service.Task
	if err := c.do(ctx, c.hc, http.MethodGet, u, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetTask implements service.Service.
func (c *Client) GetTask(ctx context.Context, id string) (service.Task, error) {
	var task service.Task
	err := c.do(ctx, c.hc, http.MethodGet, c.taskURL(id), nil, &task)
	return task, err
}

// CreateTask implements service.Service.
func (c *Client) CreateTask(ctx context.Context, draft service.TaskDraft) (service.Task, error) {
	var task service.Task
	err := c.do(ctx, c.hc, http.MethodPost, c.base+tasksPath, draft, &task)
	return task, err
}

// UpdateTask implements service.Service. The body is a full replacement.
func (c *Client) UpdateTask(ctx context.Context, id string, task service.Task) (service.Task, error) {
	var updated service.Task
	err := c.do(ctx, c.hc, http.MethodPut, c.taskURL(id), task, &updated)
	return updated, err
}

// DeleteTask implements service.Service.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, c.hc, http.MethodDelete, c.taskURL(id), nil, nil)
}

func (c *Client) taskURL(id string) string {
	return c.base + tasksPath + "/" + url.PathEscape(id)
}

// do runs one HTTP exchange and normalizes every failure into *Error.
// out may be nil for responses without a useful body.
func (c *Client) do(ctx context.Context, hc *http.Client, method, u string, in, out any) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return &Error{Kind: KindNetwork, Message: err.Error()}
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: err.Error()}
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := hc.Do(req)
	if err != nil {
		fmt.Fprintf(c.debug, "api: %s %s: %v\n", method, u, err)
		return &Error{Kind: KindNetwork, Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: err.Error()}
	}

	fmt.Fprintf(c.debug, "api: %s %s -> %d\n", method, u, resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		fmt.Fprintf(c.debug, "api: response body: %s\n", raw)
		return normalize(resp.StatusCode, raw)
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return &Error{Kind: KindNetwork, Message: fmt.Sprintf("invalid response body: %v", err)}
		}
	}
	return nil
}

// normalize maps a non-2xx response to the error taxonomy. The user-facing
// message is taken from the body's message/error field when present.
func normalize(status int, raw []byte) *Error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &Error{Kind: KindUnauthorized, Status: status}
	case http.StatusNotFound:
		return &Error{Kind: KindNotFound, Status: status}
	}

	return &Error{
		Kind:    KindServerRejected,
		Status:  status,
		Message: extractMessage(status, raw),
	}
}

func extractMessage(status int, raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return fmt.Sprintf("server rejected request (status %d)", status)
}
