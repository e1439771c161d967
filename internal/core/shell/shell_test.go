package shell

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adpanel/internal/core/domain"
)

func codes(views []PanelView) []string {
	out := make([]string, 0, len(views))
	for _, v := range views {
		out = append(out, v.Code)
	}
	return out
}

func TestDefaultLayoutByRole(t *testing.T) {
	l, err := Default()
	require.NoError(t, err)

	pub := l.For(domain.Session{ID: 1, Role: domain.RolePublisher})
	assert.Equal(t, []string{"publisher_ids", "publisher_data", "link_requests", "blacklist", "lookups", "password"}, codes(pub))

	mgr := l.For(domain.Session{ID: 2, Role: domain.RoleAdvertiserManager})
	assert.Contains(t, codes(mgr), "subadmins")
	assert.NotContains(t, codes(mgr), "publisher_data")
	for _, v := range mgr {
		if v.Code == "advertiser_data" {
			assert.False(t, v.Actionable, "managers only read campaign data")
		}
	}
}

func TestAllowIDsGateActions(t *testing.T) {
	l, err := Parse([]byte(`
panels:
  - code: blacklist
    title: Blacklist
    roles: [advertiser]
    actionable_roles: [advertiser]
    allow_ids: [12, 15]
`))
	require.NoError(t, err)

	allowed := domain.Session{ID: 12, Role: domain.RoleAdvertiser}
	other := domain.Session{ID: 13, Role: domain.RoleAdvertiser}

	assert.True(t, l.CanAct(allowed, "blacklist"))
	assert.False(t, l.CanAct(other, "blacklist"))
	require.Len(t, l.For(other), 1)
	assert.False(t, l.For(other)[0].Actionable)
	assert.False(t, l.CanAct(allowed, "missing"))
}

func TestParseRejectsBadLayouts(t *testing.T) {
	_, err := Parse([]byte("panels:\n  - title: no code\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("panels:\n  - code: a\n  - code: a\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("panels:\n  - code: a\n    roles: [root]\n"))
	assert.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte("panels:\n  - code: only\n    title: Only\n    roles: [publisher]\n"), 0o600))

	l, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"only"}, codes(l.For(domain.Session{Role: domain.RolePublisher})))

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
