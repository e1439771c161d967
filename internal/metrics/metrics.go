// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the collectors. A nil *Metrics records nothing.
type Metrics struct {
	httpRequests    *prometheus.CounterVec
	eventsPublished *prometheus.CounterVec
	wsClients       prometheus.Gauge
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "adpanel_http_requests_total",
			Help: "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "code"}),
		eventsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "adpanel_events_published_total",
			Help: "Change signals fanned out to websocket clients.",
		}, []string{"event"}),
		wsClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "adpanel_ws_clients",
			Help: "Connected websocket clients.",
		}),
	}
	reg.MustRegister(m.httpRequests, m.eventsPublished, m.wsClients)
	return m
}

// Middleware counts requests by their chi route pattern so path
// parameters do not explode label cardinality.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.httpRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
	})
}

// EventPublished counts one fanned-out event.
func (m *Metrics) EventPublished(name string) {
	if m == nil {
		return
	}
	m.eventsPublished.WithLabelValues(name).Inc()
}

// ClientConnected tracks a new websocket client.
func (m *Metrics) ClientConnected() {
	if m == nil {
		return
	}
	m.wsClients.Inc()
}

// ClientDisconnected tracks a closed websocket client.
func (m *Metrics) ClientDisconnected() {
	if m == nil {
		return
	}
	m.wsClients.Dec()
}
