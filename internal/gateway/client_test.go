package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adpanel/internal/core/domain"
	"adpanel/internal/core/grid"
	"adpanel/internal/core/port"
)

func newClient(t *testing.T, srv *httptest.Server, cookie string) *Client {
	t.Helper()
	c, err := New(Config{BaseURL: srv.URL, Cookie: cookie})
	require.NoError(t, err)
	return c
}

func TestEnvelopeAndBareArrayDecodeAlike(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/enveloped", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":[{"id":1,"geo":"US"},{"id":2,"geo":"IN"}]}`))
	})
	mux.HandleFunc("/bare", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"id":1,"geo":"US"},{"id":2,"geo":"IN"}]`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()
	c := newClient(t, srv, "")

	enveloped, err := c.Resource("/enveloped").List(context.Background())
	require.NoError(t, err)
	bare, err := c.Resource("/bare").List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, enveloped, bare)
	require.Len(t, bare, 2)
	assert.Equal(t, "1", bare[0].ID())
	assert.Equal(t, "IN", bare[1].String("geo"))
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name: "conflict", status: http.StatusConflict, body: `{"success":false,"error":"duplicate"}`,
			check: func(t *testing.T, err error) { assert.ErrorIs(t, err, ErrDuplicate) },
		},
		{
			name: "unauthorized", status: http.StatusUnauthorized, body: `{"success":false,"error":"unauthenticated"}`,
			check: func(t *testing.T, err error) { assert.ErrorIs(t, err, ErrUnauthenticated) },
		},
		{
			name: "server error envelope", status: http.StatusInternalServerError, body: `{"success":false,"error":"internal error"}`,
			check: func(t *testing.T, err error) {
				var remote *RemoteError
				require.True(t, errors.As(err, &remote))
				assert.Equal(t, http.StatusInternalServerError, remote.Status)
				assert.Equal(t, "internal error", remote.Message)
			},
		},
		{
			name: "plain text", status: http.StatusBadGateway, body: "upstream down",
			check: func(t *testing.T, err error) {
				var remote *RemoteError
				require.True(t, errors.As(err, &remote))
				assert.Equal(t, "upstream down", remote.Message)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newClient(t, srv, "").AddLookup(context.Background(), "geos", "IN")
			tt.check(t, err)
		})
	}
}

func TestUnsuccessfulEnvelopeWithOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"error":"nope"}`))
	}))
	defer srv.Close()

	_, err := newClient(t, srv, "").Me(context.Background())
	var remote *RemoteError
	require.True(t, errors.As(err, &remote))
	assert.Equal(t, "nope", remote.Message)
}

func TestLoginKeepsCookie(t *testing.T) {
	alice := domain.Session{ID: 7, Username: "alice", Role: domain.RoleAdvertiser}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice", body["username"])
		http.SetCookie(w, &http.Cookie{Name: "adpanel_session", Value: "sealed-blob", Path: "/"})
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": alice})
	})
	mux.HandleFunc("/api/v1/auth/me", func(w http.ResponseWriter, r *http.Request) {
		ck, err := r.Cookie("adpanel_session")
		if err != nil || ck.Value != "sealed-blob" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": alice})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newClient(t, srv, "")
	_, err := c.Me(context.Background())
	assert.ErrorIs(t, err, ErrUnauthenticated)

	s, err := c.Login(context.Background(), "alice", "secret1")
	require.NoError(t, err)
	assert.Equal(t, alice, s)
	assert.Equal(t, "sealed-blob", c.Cookie())

	restored := newClient(t, srv, "sealed-blob")
	s, err = restored.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice", s.Username)
	assert.Contains(t, restored.AuthHeader().Get("Cookie"), "adpanel_session=sealed-blob")
}

func TestCampaignsQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/campaigns/publisher", r.URL.Path)
		assert.Equal(t, "2026-03-01T00:00:00Z", r.URL.Query().Get("from"))
		assert.Empty(t, r.URL.Query().Get("to"))
		_, _ = w.Write([]byte(`{"success":true,"data":[{"id":3,"campaign_name":"Spring","total_count":12}]}`))
	}))
	defer srv.Close()

	rows, err := newClient(t, srv, "").Campaigns(context.Background(), "publisher",
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), time.Time{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(12), rows[0].TotalCount)
}

func TestCreateIdentifierSendsInput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in port.IdentifierInput
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "101", in.AssignedID)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":9,"assigned_id":"101"}}`))
	}))
	defer srv.Close()

	rec, err := newClient(t, srv, "").CreateIdentifier(context.Background(), "advertiser",
		port.IdentifierInput{Name: "Acme", AssignedID: "101"})
	require.NoError(t, err)
	assert.Equal(t, int64(9), rec.ID)
}

func TestEventsURL(t *testing.T) {
	c, err := New(Config{BaseURL: "https://panel.example.com/"})
	require.NoError(t, err)
	assert.Equal(t, "wss://panel.example.com/api/v1/ws", c.EventsURL())

	c, err = New(Config{BaseURL: "http://localhost:8080"})
	require.NoError(t, err)
	assert.Equal(t, "ws://localhost:8080/api/v1/ws", c.EventsURL())
}

func TestResourceRoutes(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Method+" "+r.URL.RequestURI())
		switch r.Method {
		case http.MethodDelete:
			_, _ = w.Write([]byte(`{"success":true}`))
		case http.MethodGet:
			_, _ = w.Write([]byte(`{"success":true,"data":null}`))
		default:
			_, _ = w.Write([]byte(`{"success":true,"data":{"id":5,"geo":"US"}}`))
		}
	}))
	defer srv.Close()

	res := newClient(t, srv, "").Resource("/api/v1/campaigns/advertiser")
	ctx := context.Background()

	rows, err := res.WithQuery(url.Values{"from": {"2026-03-01"}}).List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)

	rec, err := res.Update(ctx, "5", grid.Record{"geo": "US"})
	require.NoError(t, err)
	assert.Equal(t, "5", rec.ID())

	_, err = res.Create(ctx, grid.Record{"geo": "US"})
	require.NoError(t, err)
	require.NoError(t, res.Delete(ctx, "5"))

	assert.Equal(t, []string{
		"GET /api/v1/campaigns/advertiser?from=2026-03-01",
		"PUT /api/v1/campaigns/advertiser/5",
		"POST /api/v1/campaigns/advertiser",
		"DELETE /api/v1/campaigns/advertiser/5",
	}, seen)
}
