package httpadapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adpanel/internal/core/domain"
	"adpanel/internal/core/port"
	"adpanel/internal/core/port/mocks"
	"adpanel/internal/core/session"
	"adpanel/internal/core/shell"
)

type testServer struct {
	handler      *Handler
	auth         *mocks.MockAuthUseCase
	identifiers  *mocks.MockIdentifierUseCase
	campaigns    *mocks.MockCampaignUseCase
	blacklist    *mocks.MockBlacklistUseCase
	linkRequests *mocks.MockLinkRequestUseCase
	lookups      *mocks.MockLookupUseCase
}

var alice = domain.Session{ID: 7, Username: "alice", Role: domain.RoleAdvertiser}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	layout, err := shell.Default()
	require.NoError(t, err)
	return newTestServerWithLayout(t, layout)
}

func newTestServerWithLayout(t *testing.T, layout *shell.Layout) *testServer {
	t.Helper()
	ts := &testServer{
		auth:         mocks.NewMockAuthUseCase(t),
		identifiers:  mocks.NewMockIdentifierUseCase(t),
		campaigns:    mocks.NewMockCampaignUseCase(t),
		blacklist:    mocks.NewMockBlacklistUseCase(t),
		linkRequests: mocks.NewMockLinkRequestUseCase(t),
		lookups:      mocks.NewMockLookupUseCase(t),
	}
	h, err := NewHandler(Deps{
		Auth:         ts.auth,
		Identifiers:  ts.identifiers,
		Campaigns:    ts.campaigns,
		Blacklist:    ts.blacklist,
		LinkRequests: ts.linkRequests,
		Lookups:      ts.lookups,
		Layout:       layout,
		Sealer:       session.NewSealer("test-secret"),
		Cookie:       CookieConfig{Name: "adpanel_session", TTL: time.Hour},
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	ts.handler = h
	ts.auth.EXPECT().Profile(mock.Anything, domain.Session{ID: alice.ID}).Return(alice, nil).Maybe()
	return ts
}

func (ts *testServer) cookie(t *testing.T, s domain.Session, expires time.Time) *http.Cookie {
	t.Helper()
	value, err := ts.handler.Sealer.SealValue(cookieClaims{UserID: s.ID, ExpiresAt: expires})
	require.NoError(t, err)
	return &http.Cookie{Name: "adpanel_session", Value: value}
}

func (ts *testServer) do(t *testing.T, method, path string, body any, cookie *http.Cookie) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	ts.handler.Router().ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

func (ts *testServer) authed(t *testing.T) *http.Cookie {
	return ts.cookie(t, alice, time.Now().Add(time.Hour))
}

func TestLoginIssuesSealedCookie(t *testing.T) {
	ts := newTestServer(t)
	ts.auth.EXPECT().Login(mock.Anything, "alice", "secret1").Return(alice, nil).Once()

	rec, env := ts.do(t, http.MethodPost, "/api/v1/auth/login", loginBody{Username: "alice", Password: "secret1"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].HttpOnly)

	rec, env = ts.do(t, http.MethodGet, "/api/v1/auth/me", nil, cookies[0])
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
}

func TestLoginFailure(t *testing.T) {
	ts := newTestServer(t)
	ts.auth.EXPECT().Login(mock.Anything, "alice", "nope").Return(domain.Session{}, port.ErrUnauthenticated).Once()

	rec, env := ts.do(t, http.MethodPost, "/api/v1/auth/login", loginBody{Username: "alice", Password: "nope"}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, env.Success)
	assert.Empty(t, rec.Result().Cookies())
}

func TestUnopenableCookieIsLoggedOut(t *testing.T) {
	ts := newTestServer(t)
	foreign := session.NewSealer("other-secret")
	value, err := foreign.SealValue(cookieClaims{UserID: alice.ID, ExpiresAt: time.Now().Add(time.Hour)})
	require.NoError(t, err)

	tests := []struct {
		name   string
		cookie *http.Cookie
	}{
		{"missing", nil},
		{"garbage", &http.Cookie{Name: "adpanel_session", Value: "%%%garbage"}},
		{"foreign key", &http.Cookie{Name: "adpanel_session", Value: value}},
		{"expired", ts.cookie(t, alice, time.Now().Add(-time.Minute))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := ts.do(t, http.MethodGet, "/api/v1/shell", nil, tt.cookie)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "unauthenticated", env.Error)
		})
	}
}

func TestCookieScopeComesFromStoredUser(t *testing.T) {
	ts := newTestServer(t)
	stored := domain.Session{ID: 1, Username: "mallory", Role: domain.RoleAdvertiser}
	ts.auth.EXPECT().Profile(mock.Anything, domain.Session{ID: 1}).Return(stored, nil).Once()
	ts.campaigns.EXPECT().List(mock.Anything, stored, "advertiser", mock.Anything, mock.Anything).
		Return([]domain.CampaignRow{}, nil).Once()

	// The cookie only names the user; a sealed manager scope is ignored.
	forged := domain.Session{ID: 1, Role: domain.RoleAdvertiserManager, AssignedSubadmins: []int64{2, 3, 4}}
	rec, _ := ts.do(t, http.MethodGet, "/api/v1/campaigns/advertiser", nil, ts.cookie(t, forged, time.Now().Add(time.Hour)))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCookieForUnknownUserIsLoggedOut(t *testing.T) {
	ts := newTestServer(t)
	ts.auth.EXPECT().Profile(mock.Anything, domain.Session{ID: 99}).Return(domain.Session{}, port.ErrUnauthenticated).Once()

	rec, env := ts.do(t, http.MethodGet, "/api/v1/shell", nil, ts.cookie(t, domain.Session{ID: 99}, time.Now().Add(time.Hour)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "unauthenticated", env.Error)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestWriteRoutesFollowLayout(t *testing.T) {
	layout, err := shell.Parse([]byte(`
panels:
  - code: blacklist
    title: Blacklist
    roles: [advertiser]
    actionable_roles: [advertiser]
    allow_ids: [12]
  - code: advertiser_data
    title: Advertiser Data
    roles: [advertiser]
    actionable_roles: [advertiser]
`))
	require.NoError(t, err)
	ts := newTestServerWithLayout(t, layout)

	// alice (id 7) sees the blacklist but is not on its allow list.
	rec, env := ts.do(t, http.MethodPost, "/api/v1/blacklist", `{"pid": "p-1"}`, ts.authed(t))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "forbidden", env.Error)

	rec, _ = ts.do(t, http.MethodPut, "/api/v1/lookups/geos/1", valueBody{Value: "IN"}, ts.authed(t))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = ts.do(t, http.MethodDelete, "/api/v1/campaigns/publisher/5", nil, ts.authed(t))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Reads and panels the user may act on still go through.
	ts.blacklist.EXPECT().List(mock.Anything, alice).Return([]domain.BlacklistEntry{}, nil).Once()
	rec, _ = ts.do(t, http.MethodGet, "/api/v1/blacklist", nil, ts.authed(t))
	assert.Equal(t, http.StatusOK, rec.Code)

	ts.campaigns.EXPECT().Delete(mock.Anything, alice, "advertiser", int64(5)).Return(nil).Once()
	rec, _ = ts.do(t, http.MethodDelete, "/api/v1/campaigns/advertiser/5", nil, ts.authed(t))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestShellListsPanelsForRole(t *testing.T) {
	ts := newTestServer(t)
	rec, env := ts.do(t, http.MethodGet, "/api/v1/shell", nil, ts.authed(t))
	require.Equal(t, http.StatusOK, rec.Code)

	data := env.Data.(map[string]any)
	panels := data["panels"].([]any)
	codes := make([]string, 0, len(panels))
	for _, p := range panels {
		codes = append(codes, p.(map[string]any)["code"].(string))
	}
	assert.Contains(t, codes, "advertiser_data")
	assert.NotContains(t, codes, "publisher_data")
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"validation", port.ErrValidation, http.StatusBadRequest},
		{"forbidden", port.ErrForbidden, http.StatusForbidden},
		{"edit window", port.ErrEditWindowClosed, http.StatusForbidden},
		{"delete window", port.ErrDeleteWindowClosed, http.StatusForbidden},
		{"not found", port.ErrNotFound, http.StatusNotFound},
		{"duplicate", port.ErrDuplicate, http.StatusConflict},
		{"blacklisted", port.ErrBlacklisted, http.StatusUnprocessableEntity},
		{"other", errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			ts.campaigns.EXPECT().Delete(mock.Anything, alice, "advertiser", int64(5)).Return(tt.err).Once()

			rec, env := ts.do(t, http.MethodDelete, "/api/v1/campaigns/advertiser/5", nil, ts.authed(t))
			assert.Equal(t, tt.code, rec.Code)
			assert.False(t, env.Success)
			if tt.code == http.StatusInternalServerError {
				assert.Equal(t, "internal error", env.Error)
			}
		})
	}
}

func TestCampaignListPassesRange(t *testing.T) {
	ts := newTestServer(t)
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	ts.campaigns.EXPECT().List(mock.Anything, alice, "advertiser", from, to).
		Return([]domain.CampaignRow{{ID: 1, CampaignName: "Spring"}}, nil).Once()

	rec, env := ts.do(t, http.MethodGet, "/api/v1/campaigns/advertiser?from=2026-03-01&to=2026-04-01T00:00:00Z", nil, ts.authed(t))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, env.Data, 1)

	rec, _ = ts.do(t, http.MethodGet, "/api/v1/campaigns/advertiser?from=yesterday", nil, ts.authed(t))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCampaignUpdateAcceptsEditorStrings(t *testing.T) {
	ts := newTestServer(t)
	ts.campaigns.EXPECT().
		Update(mock.Anything, alice, "advertiser", int64(9), mock.MatchedBy(func(row domain.CampaignRow) bool {
			return row.TotalCount == 120 && row.PausedDate != nil && row.PausedDate.Day() == 5 && row.Geo == "US"
		})).
		Return(&domain.CampaignRow{ID: 9}, nil).Once()

	body := `{"id": 9, "campaign_name": "Spring", "geo": "US", "total_count": "120", "paused_date": "2026-03-05", "shared_date": null}`
	rec, _ := ts.do(t, http.MethodPut, "/api/v1/campaigns/advertiser/9", body, ts.authed(t))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCampaignUpdateNeedsName(t *testing.T) {
	ts := newTestServer(t)
	for _, body := range []string{`{}`, `{"campaign_name": ""}`} {
		rec, env := ts.do(t, http.MethodPut, "/api/v1/campaigns/advertiser/9", body, ts.authed(t))
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Contains(t, env.Error, "validation failed")
	}
}

func TestIdentifierCreateValidatesSchema(t *testing.T) {
	ts := newTestServer(t)

	rec, env := ts.do(t, http.MethodPost, "/api/v1/identifiers/advertiser", `{"name": ""}`, ts.authed(t))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, env.Error, "validation failed")

	ts.identifiers.EXPECT().
		Create(mock.Anything, alice, "advertiser", port.IdentifierInput{Name: "Acme", AssignedID: "101"}).
		Return(&domain.Identifier{ID: 1, AssignedID: "101"}, nil).Once()

	rec, _ = ts.do(t, http.MethodPost, "/api/v1/identifiers/advertiser", `{"name": "Acme", "assigned_id": 101}`, ts.authed(t))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAvailableIdentifiers(t *testing.T) {
	ts := newTestServer(t)
	ts.identifiers.EXPECT().Available(mock.Anything, alice, "advertiser", int64(0)).Return([]string{"1", "3"}, nil).Once()

	rec, env := ts.do(t, http.MethodGet, "/api/v1/identifiers/advertiser/available", nil, ts.authed(t))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{"1", "3"}, env.Data)
}

func TestLinkRequestStatus(t *testing.T) {
	ts := newTestServer(t)
	id := uuid.New()
	ts.linkRequests.EXPECT().SetStatus(mock.Anything, alice, id, domain.LinkShared).
		Return(&domain.LinkRequest{ID: id, Status: domain.LinkShared}, nil).Once()

	rec, _ := ts.do(t, http.MethodPatch, "/api/v1/link-requests/"+id.String()+"/status", statusBody{Status: domain.LinkShared}, ts.authed(t))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = ts.do(t, http.MethodPatch, "/api/v1/link-requests/not-a-uuid/status", statusBody{Status: domain.LinkShared}, ts.authed(t))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLookupDuplicate(t *testing.T) {
	ts := newTestServer(t)
	ts.lookups.EXPECT().Add(mock.Anything, alice, "geos", "IN").Return(nil, port.ErrDuplicate).Once()

	rec, env := ts.do(t, http.MethodPost, "/api/v1/lookups/geos", valueBody{Value: "IN"}, ts.authed(t))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "duplicate", env.Error)
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)
	rec, env := ts.do(t, http.MethodGet, "/healthz", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", env.Data)
}
