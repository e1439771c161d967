// Package notify carries change signals from the server to connected
// dashboards over websockets. Signals tell clients to re-fetch; they are
// not a sync protocol: there is no acknowledgement, replay or ordering.
package notify

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"adpanel/internal/core/domain"
	"adpanel/internal/metrics"
)

const (
	subscriberBuffer = 16
	writeTimeout     = 10 * time.Second
)

// Hub fans events out to in-process subscribers and websocket clients.
// Slow subscribers miss events instead of blocking publishers.
type Hub struct {
	mu       sync.RWMutex
	subs     map[uuid.UUID]chan domain.Event
	logger   *slog.Logger
	metrics  *metrics.Metrics
	upgrader websocket.Upgrader
	now      func() time.Time
}

// NewHub creates a hub. m may be nil.
func NewHub(logger *slog.Logger, m *metrics.Metrics) *Hub {
	return &Hub{
		subs:    make(map[uuid.UUID]chan domain.Event),
		logger:  logger,
		metrics: m,
		upgrader: websocket.Upgrader{CheckOrigin: sameOrigin},
		now: time.Now,
	}
}

// sameOrigin accepts browsers on the dashboard's own host and clients that
// send no Origin at all, such as the CLI. The session cookie would
// otherwise ride along on cross-site upgrades.
func sameOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Host, r.Host)
}

// Publish delivers event to every current subscriber without blocking.
func (h *Hub) Publish(_ context.Context, event domain.Event) error {
	if event.At.IsZero() {
		event.At = h.now().UTC()
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.subs {
		select {
		case ch <- event:
		default:
		}
	}
	h.metrics.EventPublished(string(event.Name))
	return nil
}

// Subscribe returns a channel of events and a cancel func that closes it.
func (h *Hub) Subscribe() (<-chan domain.Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := uuid.New()
	ch := make(chan domain.Event, subscriberBuffer)
	h.subs[id] = ch
	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if sub, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Clients returns the number of current subscribers.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// ServeWebSocket upgrades the request, greets the client with a welcome
// event and then streams every published event as JSON.
func (h *Hub) ServeWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", slog.Any("error", err))
		return
	}
	defer conn.Close()

	events, cancel := h.Subscribe()
	defer cancel()
	h.metrics.ClientConnected()
	defer h.metrics.ClientDisconnected()

	// The client never sends anything we use; reading detects the close.
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err = h.write(conn, domain.Event{Name: domain.EventWelcome, At: h.now().UTC()}); err != nil {
		return
	}
	for {
		select {
		case <-r.Context().Done():
			return
		case <-gone:
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			if err = h.write(conn, event); err != nil {
				h.logger.Debug("websocket write failed", slog.Any("error", err))
				return
			}
		}
	}
}

func (h *Hub) write(conn *websocket.Conn, event domain.Event) error {
	if err := conn.SetWriteDeadline(h.now().Add(writeTimeout)); err != nil {
		return err
	}
	return conn.WriteJSON(event)
}
