package gateway

import (
	"context"
	"net/http"
	"net/url"

	"adpanel/internal/core/grid"
)

// Resource exposes one collection endpoint as generic records, the shape
// table panels work on.
type Resource struct {
	client *Client
	path   string
	query  url.Values
}

// Resource returns the collection at path, e.g. "/api/v1/campaigns/advertiser".
func (c *Client) Resource(path string) *Resource {
	return &Resource{client: c, path: path}
}

// WithQuery returns a copy of r that sends q on List.
func (r *Resource) WithQuery(q url.Values) *Resource {
	dup := *r
	dup.query = q
	return &dup
}

// List fetches every record.
func (r *Resource) List(ctx context.Context) ([]grid.Record, error) {
	path := r.path
	if len(r.query) > 0 {
		path += "?" + r.query.Encode()
	}
	out := make([]grid.Record, 0)
	if err := r.client.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create posts rec and returns the stored record.
func (r *Resource) Create(ctx context.Context, rec grid.Record) (grid.Record, error) {
	var out grid.Record
	if err := r.client.do(ctx, http.MethodPost, r.path, rec, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces the record with id.
func (r *Resource) Update(ctx context.Context, id string, rec grid.Record) (grid.Record, error) {
	var out grid.Record
	if err := r.client.do(ctx, http.MethodPut, r.path+"/"+url.PathEscape(id), rec, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes the record with id.
func (r *Resource) Delete(ctx context.Context, id string) error {
	return r.client.do(ctx, http.MethodDelete, r.path+"/"+url.PathEscape(id), nil, nil)
}
