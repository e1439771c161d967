package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"adpanel/internal/core/domain"
	"adpanel/internal/core/port"
	"adpanel/internal/core/shell"
)

// ShellView is the role-gated shell of the current session.
type ShellView struct {
	Session domain.Session    `json:"session"`
	Panels  []shell.PanelView `json:"panels"`
}

// Login authenticates and stores the issued session cookie.
func (c *Client) Login(ctx context.Context, username, password string) (domain.Session, error) {
	var s domain.Session
	err := c.do(ctx, http.MethodPost, "/api/v1/auth/login",
		map[string]string{"username": username, "password": password}, &s)
	return s, err
}

// Logout clears the session cookie on both ends.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/v1/auth/logout", nil, nil)
}

// Me returns the current profile.
func (c *Client) Me(ctx context.Context) (domain.Session, error) {
	var s domain.Session
	err := c.do(ctx, http.MethodGet, "/api/v1/auth/me", nil, &s)
	return s, err
}

// ChangePassword changes the caller's password.
func (c *Client) ChangePassword(ctx context.Context, req port.PasswordChange) error {
	return c.do(ctx, http.MethodPost, "/api/v1/auth/password", req, nil)
}

// Shell returns the panels visible to the session.
func (c *Client) Shell(ctx context.Context) (ShellView, error) {
	var v ShellView
	err := c.do(ctx, http.MethodGet, "/api/v1/shell", nil, &v)
	return v, err
}

// Directory lists the sub-admins visible to the session.
func (c *Client) Directory(ctx context.Context) ([]domain.DirectoryEntry, error) {
	var out []domain.DirectoryEntry
	err := c.do(ctx, http.MethodGet, "/api/v1/directory", nil, &out)
	return out, err
}

// Campaigns lists campaign rows of kind created in [from, to). Zero bounds
// are omitted.
func (c *Client) Campaigns(ctx context.Context, kind string, from, to time.Time) ([]domain.CampaignRow, error) {
	q := url.Values{}
	if !from.IsZero() {
		q.Set("from", from.UTC().Format(time.RFC3339))
	}
	if !to.IsZero() {
		q.Set("to", to.UTC().Format(time.RFC3339))
	}
	path := "/api/v1/campaigns/" + url.PathEscape(kind)
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var out []domain.CampaignRow
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

// Identifiers lists identifier records of kind.
func (c *Client) Identifiers(ctx context.Context, kind string) ([]domain.Identifier, error) {
	var out []domain.Identifier
	err := c.do(ctx, http.MethodGet, "/api/v1/identifiers/"+url.PathEscape(kind), nil, &out)
	return out, err
}

// AvailableIDs returns the server-computed id pool of owner (zero for the
// caller).
func (c *Client) AvailableIDs(ctx context.Context, kind string, owner int64) ([]string, error) {
	path := "/api/v1/identifiers/" + url.PathEscape(kind) + "/available"
	if owner != 0 {
		path += "?owner=" + strconv.FormatInt(owner, 10)
	}
	var out []string
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

// CreateIdentifier creates an identifier record.
func (c *Client) CreateIdentifier(ctx context.Context, kind string, in port.IdentifierInput) (*domain.Identifier, error) {
	var out domain.Identifier
	if err := c.do(ctx, http.MethodPost, "/api/v1/identifiers/"+url.PathEscape(kind), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LinkRequests lists the campaign-link requests visible to the session.
func (c *Client) LinkRequests(ctx context.Context) ([]domain.LinkRequest, error) {
	var out []domain.LinkRequest
	err := c.do(ctx, http.MethodGet, "/api/v1/link-requests", nil, &out)
	return out, err
}

// CreateLinkRequest files a campaign-link request.
func (c *Client) CreateLinkRequest(ctx context.Context, in port.LinkRequestInput) (*domain.LinkRequest, error) {
	var out domain.LinkRequest
	if err := c.do(ctx, http.MethodPost, "/api/v1/link-requests", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetLinkStatus moves a request to status.
func (c *Client) SetLinkStatus(ctx context.Context, id uuid.UUID, status domain.LinkStatus) (*domain.LinkRequest, error) {
	var out domain.LinkRequest
	err := c.do(ctx, http.MethodPatch, "/api/v1/link-requests/"+id.String()+"/status",
		map[string]domain.LinkStatus{"status": status}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Blacklist lists blocked pids.
func (c *Client) Blacklist(ctx context.Context) ([]domain.BlacklistEntry, error) {
	var out []domain.BlacklistEntry
	err := c.do(ctx, http.MethodGet, "/api/v1/blacklist", nil, &out)
	return out, err
}

// AddLookup appends value to a lookup list.
func (c *Client) AddLookup(ctx context.Context, list, value string) (*domain.LookupEntry, error) {
	var out domain.LookupEntry
	err := c.do(ctx, http.MethodPost, "/api/v1/lookups/"+url.PathEscape(list),
		map[string]string{"value": value}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
