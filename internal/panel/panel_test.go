package panel_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adpanel/internal/core/domain"
	"adpanel/internal/core/grid"
	"adpanel/internal/notify"
	"adpanel/internal/panel"
	"adpanel/internal/panel/mocks"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

var alice = domain.Session{ID: 7, Username: "alice", Role: domain.RoleAdvertiser}

func stamp(age time.Duration) string {
	return fixedNow.Add(-age).Format(time.RFC3339)
}

func sampleRows() []grid.Record {
	return []grid.Record{
		{"id": 1, "owner_user_id": 7, "campaign_name": "Spring", "geo": "US", "total_count": 0, "created_at": stamp(time.Hour)},
		{"id": 2, "owner_user_id": 7, "campaign_name": "Winter", "geo": "IN", "total_count": 40, "created_at": stamp(4 * 24 * time.Hour)},
		{"id": 3, "owner_user_id": 8, "campaign_name": "Summer", "geo": "US", "total_count": 3, "created_at": stamp(2 * time.Hour)},
		{"id": 4, "owner_user_id": 7, "campaign_name": "Old", "geo": "BR", "total_count": 9, "created_at": "2026-02-10T09:00:00Z"},
	}
}

type alerts struct {
	actions []string
}

func (a *alerts) Alert(action string, _ error) { a.actions = append(a.actions, action) }

func newPanel(t *testing.T, src panel.Source, alerter panel.Alerter) *panel.Panel {
	t.Helper()
	return panel.New(src, panel.Config{
		Columns: []grid.Column{
			grid.NewColumn("campaign_name", grid.FilterText),
			grid.NewColumn("geo", grid.FilterEnum),
		},
		Editable:  []string{"campaign_name", "geo", "paused_date", "total_count"},
		DateField: grid.KeyCreatedAt,
		Policy:    grid.DefaultPolicy(),
		Session:   alice,
		Alerter:   alerter,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Now:       func() time.Time { return fixedNow },
	})
}

func loaded(t *testing.T, src *mocks.MockSource, alerter panel.Alerter) *panel.Panel {
	t.Helper()
	src.EXPECT().List(mock.Anything).Return(sampleRows(), nil).Once()
	p := newPanel(t, src, alerter)
	require.NoError(t, p.Refresh(context.Background()))
	return p
}

func ids(rows []grid.Record) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID())
	}
	return out
}

func TestPanelViewScopesToCurrentMonth(t *testing.T) {
	p := loaded(t, mocks.NewMockSource(t), nil)

	assert.Len(t, p.Rows(), 4)
	assert.Equal(t, []string{"1", "2", "3"}, ids(p.View()))
	assert.Equal(t, []string{"IN", "US"}, p.Options()["geo"])

	p.SetFilter("geo", "US")
	p.SetSearch("sum")
	assert.Equal(t, []string{"3"}, ids(p.View()))

	p.ClearFilters()
	p.SetRange(nil)
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(p.View()))
	assert.Equal(t, []string{"BR", "IN", "US"}, p.Options()["geo"])
}

func TestPanelRefreshFailureKeepsRows(t *testing.T) {
	src := mocks.NewMockSource(t)
	a := &alerts{}
	p := loaded(t, src, a)

	boom := errors.New("connection refused")
	src.EXPECT().List(mock.Anything).Return(nil, boom).Once()

	err := p.Refresh(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Len(t, p.Rows(), 4)
	assert.False(t, p.Loading())
	assert.Equal(t, []string{"refresh"}, a.actions)
}

func TestPanelSingleRowEdit(t *testing.T) {
	p := loaded(t, mocks.NewMockSource(t), nil)

	require.NoError(t, p.StartEdit("1"))
	require.NoError(t, p.SetField("geo", "DE"))
	assert.Equal(t, "DE", p.Draft().String("geo"))

	// A second edit replaces the first draft wholesale.
	require.NoError(t, p.StartEdit("2"))
	id, editing := p.Editing()
	assert.True(t, editing)
	assert.Equal(t, "2", id)
	assert.Equal(t, "IN", p.Draft().String("geo"))
	assert.Equal(t, "US", p.Rows()[0].String("geo"))

	p.CancelEdit()
	_, editing = p.Editing()
	assert.False(t, editing)
	assert.Nil(t, p.Draft())
}

func TestPanelFieldWindows(t *testing.T) {
	p := loaded(t, mocks.NewMockSource(t), nil)

	assert.Equal(t, []string{"campaign_name", "geo"}, p.EditableFields("1"))
	assert.Equal(t, []string{"paused_date", "total_count"}, p.EditableFields("2"))
	assert.Nil(t, p.EditableFields("3"))

	require.NoError(t, p.StartEdit("2"))
	assert.ErrorIs(t, p.SetField("geo", "DE"), grid.ErrFieldLocked)
	assert.NoError(t, p.SetField("total_count", 41))
	assert.ErrorIs(t, p.SetField("city", "Pune"), grid.ErrFieldLocked)

	require.NoError(t, p.StartEdit("1"))
	assert.ErrorIs(t, p.SetField("total_count", 1), grid.ErrFieldLocked)
	assert.NoError(t, p.SetField("geo", "DE"))
}

func TestPanelRejectsEditOfForeignRow(t *testing.T) {
	p := loaded(t, mocks.NewMockSource(t), nil)

	assert.ErrorIs(t, p.StartEdit("3"), panel.ErrNotOwner)
	assert.ErrorIs(t, p.StartEdit("99"), panel.ErrRowNotFound)
}

func TestPanelSave(t *testing.T) {
	src := mocks.NewMockSource(t)
	p := loaded(t, src, nil)

	require.NoError(t, p.StartEdit("1"))
	require.NoError(t, p.SetField("campaign_name", "Spring II"))

	src.EXPECT().Update(mock.Anything, "1", mock.MatchedBy(func(rec grid.Record) bool {
		return rec.String("campaign_name") == "Spring II" && rec.String("geo") == "US"
	})).Return(grid.Record{"id": 1}, nil).Once()
	src.EXPECT().List(mock.Anything).Return(sampleRows(), nil).Once()

	require.NoError(t, p.Save(context.Background()))
	_, editing := p.Editing()
	assert.False(t, editing)
}

func TestPanelSaveFailureKeepsDraft(t *testing.T) {
	src := mocks.NewMockSource(t)
	a := &alerts{}
	p := loaded(t, src, a)

	require.NoError(t, p.StartEdit("1"))
	require.NoError(t, p.SetField("geo", "DE"))

	boom := errors.New("timeout")
	src.EXPECT().Update(mock.Anything, "1", mock.Anything).Return(nil, boom).Once()

	assert.ErrorIs(t, p.Save(context.Background()), boom)
	id, editing := p.Editing()
	assert.True(t, editing)
	assert.Equal(t, "1", id)
	assert.Equal(t, "DE", p.Draft().String("geo"))
	assert.Equal(t, []string{"save"}, a.actions)
}

func TestPanelDeleteGating(t *testing.T) {
	src := mocks.NewMockSource(t)
	src.EXPECT().List(mock.Anything).Return([]grid.Record{
		{"id": 10, "owner_user_id": 7, "created_at": stamp(23*time.Hour + 59*time.Minute)},
		{"id": 11, "owner_user_id": 7, "created_at": stamp(24*time.Hour + time.Minute)},
		{"id": 12, "owner_user_id": 8, "created_at": stamp(time.Hour)},
	}, nil).Once()
	a := &alerts{}
	p := newPanel(t, src, a)
	require.NoError(t, p.Refresh(context.Background()))

	assert.True(t, p.CanDelete("10"))
	assert.Equal(t, 1, p.DeleteHoursLeft("10"))
	assert.False(t, p.CanDelete("11"))
	assert.Equal(t, 0, p.DeleteHoursLeft("11"))
	assert.False(t, p.CanDelete("12"))

	assert.ErrorIs(t, p.Delete(context.Background(), "11"), panel.ErrDeleteClosed)
	assert.ErrorIs(t, p.Delete(context.Background(), "12"), panel.ErrNotOwner)
	assert.Equal(t, []string{"delete", "delete"}, a.actions)

	src.EXPECT().Delete(mock.Anything, "10").Return(nil).Once()
	src.EXPECT().List(mock.Anything).Return([]grid.Record{}, nil).Once()
	require.NoError(t, p.Delete(context.Background(), "10"))
	assert.Empty(t, p.Rows())
}

func TestPanelCopy(t *testing.T) {
	src := mocks.NewMockSource(t)
	p := loaded(t, src, nil)

	var sent grid.Record
	src.EXPECT().Create(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, rec grid.Record) (grid.Record, error) {
			sent = rec
			out := rec.Clone()
			out["id"] = 5
			return out, nil
		}).Once()
	src.EXPECT().List(mock.Anything).Return(sampleRows(), nil).Once()

	created, err := p.Copy(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "5", created.ID())

	_, hasID := sent["id"]
	assert.False(t, hasID)
	assert.Equal(t, int64(7), sent["owner_user_id"])
	assert.Equal(t, fixedNow.Format(time.RFC3339), sent["created_at"])
	assert.Equal(t, "Winter", sent["campaign_name"])
	assert.Equal(t, "IN", sent["geo"])
	assert.Equal(t, 40, sent["total_count"])
}

func TestPanelRefreshesOncePerSignal(t *testing.T) {
	hub := notify.NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWebSocket))
	defer srv.Close()

	var fetches atomic.Int32
	fetched := make(chan struct{}, 16)
	src := mocks.NewMockSource(t)
	src.EXPECT().List(mock.Anything).RunAndReturn(func(context.Context) ([]grid.Record, error) {
		fetches.Add(1)
		fetched <- struct{}{}
		return sampleRows(), nil
	})
	p := newPanel(t, src, nil)

	waitFetch := func() {
		t.Helper()
		select {
		case <-fetched:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for refresh")
		}
	}

	l := &notify.Listener{URL: "ws" + strings.TrimPrefix(srv.URL, "http"), Handler: p}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = l.Run(ctx) }()

	// welcome
	waitFetch()

	publish := func(name domain.EventName, data any) {
		require.NoError(t, hub.Publish(context.Background(), domain.Event{Name: name, Data: data}))
	}
	publish("ping", nil)
	publish(domain.EventRequestAdded, map[string]any{"id": "abc", "rows": []int{1, 2}})
	waitFetch()
	publish(domain.EventResponseUpdated, "garbage")
	waitFetch()

	select {
	case <-fetched:
		t.Fatal("unexpected extra refresh")
	case <-time.After(100 * time.Millisecond):
	}
	assert.Equal(t, int32(3), fetches.Load())
	assert.Len(t, p.Rows(), 4)
}

func TestPanelPoll(t *testing.T) {
	fetched := make(chan struct{}, 16)
	src := mocks.NewMockSource(t)
	src.EXPECT().List(mock.Anything).RunAndReturn(func(context.Context) ([]grid.Record, error) {
		fetched <- struct{}{}
		return nil, nil
	})
	p := newPanel(t, src, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Poll(ctx, 10*time.Millisecond)
		close(done)
	}()
	for i := 0; i < 2; i++ {
		select {
		case <-fetched:
		case <-time.After(2 * time.Second):
			t.Fatal("poll did not refresh")
		}
	}
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("poll did not stop")
	}
}

func TestPanelPollDisabled(t *testing.T) {
	// No List expectation: a disabled poll never fetches.
	p := newPanel(t, mocks.NewMockSource(t), nil)
	for _, interval := range []time.Duration{0, -time.Second} {
		done := make(chan struct{})
		go func() {
			p.Poll(context.Background(), interval)
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatalf("poll with interval %v did not return", interval)
		}
	}
}
