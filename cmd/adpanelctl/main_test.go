package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adpanel/internal/core/domain"
	"adpanel/internal/core/grid"
	"adpanel/internal/core/session"
	"adpanel/internal/gateway"
)

func TestDateRange(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	r, err := RangeFlags{}.dateRange(now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), r.From)
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), r.To)

	r, err = RangeFlags{From: "2026-02-01", To: "2026-02-28"}.dateRange(now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), r.To)

	r, err = RangeFlags{All: true}.dateRange(now)
	require.NoError(t, err)
	assert.Nil(t, r)

	_, err = RangeFlags{From: "2026-05-01", To: "2026-04-01"}.dateRange(now)
	assert.Error(t, err)
	_, err = RangeFlags{From: "yesterday"}.dateRange(now)
	assert.Error(t, err)
}

func TestParseAssignments(t *testing.T) {
	got, err := parseAssignments([]string{"geo=US,IN", "paused_date=", " os =ios"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"geo": "US,IN", "paused_date": "", "os": "ios"}, got)

	_, err = parseAssignments([]string{"geo"})
	assert.Error(t, err)
	_, err = parseAssignments([]string{"=US"})
	assert.Error(t, err)
}

func TestDescribe(t *testing.T) {
	assert.NoError(t, describe(nil))
	assert.Contains(t, describe(gateway.ErrDuplicate).Error(), "duplicate")
	assert.ErrorIs(t, describe(gateway.ErrUnauthenticated), errNotLoggedIn)
	assert.EqualError(t, describe(&gateway.RemoteError{Status: 403, Message: "forbidden"}), "server: forbidden")
	other := errors.New("dial tcp: refused")
	assert.Equal(t, other, describe(other))
}

func TestRenderCampaignPanel(t *testing.T) {
	created := time.Now().Add(-2 * time.Hour).UTC().Format(time.RFC3339)
	old := time.Now().Add(-30 * time.Hour).UTC().Format(time.RFC3339)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/campaigns/advertiser", r.URL.Path)
		_, _ = w.Write([]byte(`{"success":true,"data":[
			{"id":1,"owner_user_id":7,"campaign_name":"Spring","geo":"US","shared_date":"2026-03-02T00:00:00Z","created_at":"` + created + `"},
			{"id":2,"owner_user_id":7,"campaign_name":"Winter","geo":"IN","created_at":"` + old + `"}
		]}`))
	}))
	defer srv.Close()

	client, err := gateway.New(gateway.Config{BaseURL: srv.URL})
	require.NoError(t, err)
	var out bytes.Buffer
	a := &app{
		client: client,
		state:  session.ClientState{Session: domain.Session{ID: 7, Role: domain.RoleAdvertiser}},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		out:    &out,
	}

	p, err := a.campaignPanel(domain.SideAdvertiser, nil, grid.DefaultPolicy(), nil)
	require.NoError(t, err)
	require.NoError(t, p.Refresh(context.Background()))
	p.SetFilter("geo", "US")
	require.NoError(t, renderPanel(&out, p))

	text := out.String()
	assert.Contains(t, text, "CAMPAIGN NAME")
	assert.Contains(t, text, "Spring")
	assert.Contains(t, text, "2026-03-02")
	assert.Contains(t, text, "22h left")
	assert.NotContains(t, text, "Winter")
	assert.Contains(t, text, "1 of 2 rows")

	_, err = a.campaignPanel("manager", nil, grid.DefaultPolicy(), nil)
	assert.Error(t, err)
}

func TestOpenRequiresSession(t *testing.T) {
	g := &Globals{
		Server:      "http://localhost:8080",
		SessionFile: filepath.Join(t.TempDir(), "session"),
		Secret:      "test-secret",
	}
	_, err := g.open(true)
	assert.ErrorIs(t, err, errNotLoggedIn)

	store := &session.FileStore{Path: g.SessionFile, Sealer: session.NewSealer(g.Secret)}
	require.NoError(t, store.Save(session.ClientState{
		Server:  "http://panel.internal:9000",
		Cookie:  "sealed",
		Session: domain.Session{ID: 7, Username: "alice", Role: domain.RoleAdvertiser},
	}))

	a, err := g.open(true)
	require.NoError(t, err)
	assert.Equal(t, "alice", a.state.Session.Username)
	assert.Equal(t, "http://panel.internal:9000", a.client.BaseURL())
	assert.Equal(t, "sealed", a.client.Cookie())

	g.Secret = "another-secret"
	_, err = g.open(true)
	assert.ErrorIs(t, err, errNotLoggedIn)
}
