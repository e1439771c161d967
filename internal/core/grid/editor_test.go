package grid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditorSingleRow(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	created := now.Add(-time.Hour).Format(time.RFC3339)
	p := DefaultPolicy()

	var e Editor
	e.Start(Record{"id": 1, "geo": "US", "created_at": created})
	require.NoError(t, e.Set("geo", "DE", p, now))
	assert.Equal(t, "DE", e.Draft()["geo"])

	// starting a second row drops the first draft
	e.Start(Record{"id": 2, "geo": "FR", "created_at": created})
	id, ok := e.Editing()
	assert.True(t, ok)
	assert.Equal(t, "2", id)
	assert.False(t, e.IsEditing("1"))
	assert.Equal(t, "FR", e.Draft()["geo"])

	e.Start(Record{"id": 1, "geo": "US", "created_at": created})
	assert.Equal(t, "US", e.Draft()["geo"])
}

func TestEditorRejectsLockedFields(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	p := DefaultPolicy()

	var e Editor
	assert.ErrorIs(t, e.Set("geo", "x", p, now), ErrNotEditing)

	e.Start(Record{"id": 1, "created_at": now.Add(-96 * time.Hour).Format(time.RFC3339)})
	assert.ErrorIs(t, e.Set("geo", "x", p, now), ErrFieldLocked)
	assert.ErrorIs(t, e.Set("id", 9, p, now), ErrFieldLocked)
	assert.NoError(t, e.Set("paused_date", "2026-10-18", p, now))
}

func TestEditorDraftIsACopy(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	row := Record{"id": 1, "geo": "US", "created_at": now.Format(time.RFC3339)}

	var e Editor
	e.Start(row)
	require.NoError(t, e.Set("geo", "DE", DefaultPolicy(), now))
	assert.Equal(t, "US", row["geo"])

	e.Cancel()
	assert.Nil(t, e.Draft())
	_, ok := e.Editing()
	assert.False(t, ok)
}

func TestCopyRow(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	src := Record{
		"id":            41,
		"owner_user_id": 7,
		"created_at":    "2026-10-01T00:00:00Z",
		"campaign_name": "Spring",
		"geo":           "US",
	}

	dst := CopyRow(src, 9, now)

	_, hasID := dst["id"]
	assert.False(t, hasID)
	assert.Equal(t, int64(9), dst["owner_user_id"])
	assert.Equal(t, "2026-10-19T12:00:00Z", dst["created_at"])
	assert.Equal(t, "Spring", dst["campaign_name"])
	assert.Equal(t, "US", dst["geo"])
	assert.Equal(t, 41, src["id"], "source must be untouched")
}
