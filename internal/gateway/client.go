// Package gateway is the client of the dashboard REST API. Responses are
// normalised here: both the {success,data} envelope and bare JSON arrays
// decode into the same typed result, so callers never branch on shape.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

var (
	// ErrDuplicate is returned when the server rejects a write as a
	// uniqueness violation.
	ErrDuplicate = errors.New("gateway: duplicate")
	// ErrUnauthenticated is returned when the server does not accept the
	// session cookie.
	ErrUnauthenticated = errors.New("gateway: unauthenticated")
)

// RemoteError is any other non-2xx response.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("gateway: remote error %d: %s", e.Status, e.Message)
}

// Config configures the client.
type Config struct {
	BaseURL    string
	CookieName string
	// Cookie restores a previously issued session cookie value.
	Cookie     string
	HTTPClient *http.Client
}

// Client talks to the dashboard server. The session cookie is kept in a
// cookie jar and sent on every call.
type Client struct {
	base       *url.URL
	cookieName string
	client     *http.Client
}

// New builds a client for cfg.BaseURL.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("gateway: base url is required")
	}
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("gateway: parse base url: %w", err)
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	httpClient := &http.Client{Timeout: 15 * time.Second}
	if cfg.HTTPClient != nil {
		clone := *cfg.HTTPClient
		httpClient = &clone
	}
	httpClient.Jar = jar
	name := cfg.CookieName
	if name == "" {
		name = "adpanel_session"
	}
	c := &Client{base: base, cookieName: name, client: httpClient}
	if cfg.Cookie != "" {
		jar.SetCookies(base, []*http.Cookie{{Name: name, Value: cfg.Cookie, Path: "/"}})
	}
	return c, nil
}

// Cookie returns the current session cookie value, empty when logged out.
func (c *Client) Cookie() string {
	for _, ck := range c.client.Jar.Cookies(c.base) {
		if ck.Name == c.cookieName {
			return ck.Value
		}
	}
	return ""
}

// BaseURL returns the server address.
func (c *Client) BaseURL() string {
	return c.base.String()
}

// EventsURL returns the websocket address of the notification channel.
func (c *Client) EventsURL() string {
	u := *c.base
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/api/v1/ws"
	return u.String()
}

// AuthHeader returns the headers that authenticate a websocket dial.
func (c *Client) AuthHeader() http.Header {
	h := http.Header{}
	if v := c.Cookie(); v != "" {
		h.Set("Cookie", (&http.Cookie{Name: c.cookieName, Value: v}).String())
	}
	return h
}

func (c *Client) do(ctx context.Context, method, path string, payload any, target any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("gateway: encode payload: %w", err)
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base.String()+path, body)
	if err != nil {
		return fmt.Errorf("gateway: build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("gateway: http request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("gateway: read response: %w", err)
	}
	if resp.StatusCode >= 300 {
		return statusError(resp.StatusCode, raw)
	}
	return decodeResult(raw, target)
}

type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// decodeResult accepts an envelope or a bare value and decodes the payload
// into target.
func decodeResult(raw []byte, target any) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || target == nil {
		return nil
	}
	payload := raw
	if raw[0] == '{' {
		var env envelope
		if err := json.Unmarshal(raw, &env); err == nil && env.Success != nil {
			if !*env.Success {
				return &RemoteError{Status: http.StatusOK, Message: env.Error}
			}
			payload = env.Data
		}
	}
	if len(payload) == 0 || string(payload) == "null" {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()
	if err := dec.Decode(target); err != nil {
		return fmt.Errorf("gateway: decode response: %w", err)
	}
	return nil
}

func statusError(status int, raw []byte) error {
	switch status {
	case http.StatusConflict:
		return ErrDuplicate
	case http.StatusUnauthorized:
		return ErrUnauthenticated
	}
	msg := strings.TrimSpace(string(raw))
	var env envelope
	if json.Unmarshal(raw, &env) == nil && env.Error != "" {
		msg = env.Error
	}
	return &RemoteError{Status: status, Message: msg}
}
