package notify

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adpanel/internal/core/domain"
	"adpanel/internal/metrics"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func receive(t *testing.T, ch <-chan domain.EventName) domain.EventName {
	t.Helper()
	select {
	case name := <-ch:
		return name
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for signal")
		return ""
	}
}

func TestHubSubscribeAndPublish(t *testing.T) {
	hub := NewHub(discardLogger(), nil)
	events, cancel := hub.Subscribe()
	assert.Equal(t, 1, hub.Clients())

	require.NoError(t, hub.Publish(context.Background(), domain.Event{Name: domain.EventRequestAdded}))
	got := <-events
	assert.Equal(t, domain.EventRequestAdded, got.Name)
	assert.False(t, got.At.IsZero())

	cancel()
	assert.Equal(t, 0, hub.Clients())
	_, open := <-events
	assert.False(t, open)
}

func TestHubDropsForSlowSubscribers(t *testing.T) {
	hub := NewHub(discardLogger(), nil)
	_, cancel := hub.Subscribe()
	defer cancel()

	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriberBuffer*3; i++ {
			_ = hub.Publish(context.Background(), domain.Event{Name: domain.EventResponseUpdated})
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}
}

func TestHubRejectsCrossOriginUpgrade(t *testing.T) {
	hub := NewHub(discardLogger(), nil)
	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWebSocket))
	defer srv.Close()

	_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv), http.Header{"Origin": {"https://evil.example"}})
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv), http.Header{"Origin": {srv.URL}})
	require.NoError(t, err)
	conn.Close()

	conn, _, err = websocket.DefaultDialer.Dial(wsURL(srv), nil)
	require.NoError(t, err)
	conn.Close()
}

func TestListenerSignalsOncePerRecognisedEvent(t *testing.T) {
	hub := NewHub(discardLogger(), metrics.New(prometheus.NewRegistry()))
	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWebSocket))
	defer srv.Close()

	signals := make(chan domain.EventName, 16)
	l := &Listener{
		URL: wsURL(srv),
		Handler: SignalFunc(func(_ context.Context, name domain.EventName) {
			signals <- name
		}),
		Logger: discardLogger(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	runErr := make(chan error, 1)
	go func() { runErr <- l.Run(ctx) }()

	assert.Equal(t, domain.EventWelcome, receive(t, signals))

	publish := func(e domain.Event) { require.NoError(t, hub.Publish(context.Background(), e)) }
	publish(domain.Event{Name: "something_else"})
	publish(domain.Event{Name: domain.EventRequestAdded, Data: map[string]any{"nested": []int{1, 2}}})
	publish(domain.Event{Name: domain.EventResponseUpdated, Data: "free text"})

	assert.Equal(t, domain.EventRequestAdded, receive(t, signals))
	assert.Equal(t, domain.EventResponseUpdated, receive(t, signals))

	select {
	case extra := <-signals:
		t.Fatalf("unexpected extra signal %q", extra)
	case <-time.After(100 * time.Millisecond):
	}

	cancel()
	select {
	case err := <-runErr:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("listener did not stop")
	}
}

func TestListenerSkipsUndecodableFrames(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		_ = conn.WriteMessage(websocket.TextMessage, []byte("not json"))
		_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"event":"request_added","data":{"id":1}}`))
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye"))
	}))
	defer srv.Close()

	var got []domain.EventName
	l := &Listener{
		URL: wsURL(srv),
		Handler: SignalFunc(func(_ context.Context, name domain.EventName) {
			got = append(got, name)
		}),
	}
	err := l.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []domain.EventName{domain.EventRequestAdded}, got)
}
