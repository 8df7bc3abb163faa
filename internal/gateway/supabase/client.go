// Package supabase talks to a hosted Supabase project over its REST APIs:
// GoTrue at /auth/v1 and Storage at /storage/v1.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"blog-backend/internal/gateway"
)

// Client is an HTTP client for one project.
type Client struct {
	baseURL string
	anonKey string
	http    *http.Client
}

// New creates a client for the project at baseURL authenticated with the
// project's public anon key.
func New(baseURL, anonKey string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("supabase url is required")
	}
	if anonKey == "" {
		return nil, fmt.Errorf("supabase anon key is required")
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		anonKey: anonKey,
		http:    &http.Client{Timeout: timeout},
	}, nil
}

var (
	_ gateway.Provider    = (*Client)(nil)
	_ gateway.ObjectStore = (*Client)(nil)
)

type request struct {
	method      string
	path        string
	token       string
	body        io.Reader
	contentType string
	header      map[string]string
}

// jsonBody marshals v into a request body.
func jsonBody(v any) (io.Reader, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	return bytes.NewReader(b), nil
}

// do sends r and decodes a 2xx JSON response into out when out is non-nil.
// Non-2xx responses become *gateway.Error.
func (c *Client) do(ctx context.Context, r request, out any) error {
	httpReq, err := http.NewRequestWithContext(ctx, r.method, c.baseURL+r.path, r.body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	token := r.token
	if token == "" {
		token = c.anonKey
	}
	httpReq.Header.Set("apikey", c.anonKey)
	httpReq.Header.Set("Authorization", "Bearer "+token)
	if r.contentType != "" {
		httpReq.Header.Set("Content-Type", r.contentType)
	}
	for k, v := range r.header {
		httpReq.Header.Set(k, v)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("supabase request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		return decodeError(resp.StatusCode, bodyBytes)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// errorBody covers the error shapes returned by GoTrue and Storage.
type errorBody struct {
	Error            string `json:"error"`
	ErrorCode        string `json:"error_code"`
	ErrorDescription string `json:"error_description"`
	Msg              string `json:"msg"`
	Message          string `json:"message"`
}

func decodeError(status int, body []byte) error {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			msg = http.StatusText(status)
		}
		return &gateway.Error{Status: status, Message: msg}
	}

	ge := &gateway.Error{Status: status, Code: eb.ErrorCode}
	if ge.Code == "" {
		ge.Code = eb.Error
	}
	for _, m := range []string{eb.Msg, eb.ErrorDescription, eb.Message, eb.Error} {
		if m != "" {
			ge.Message = m
			break
		}
	}
	if ge.Message == "" {
		ge.Message = http.StatusText(status)
	}
	return ge
}
