package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddlewareUsesRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/items/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	for _, path := range []string{"/items/1", "/items/2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/items/{id}", "418")))
}

func TestEventsAndClients(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.EventPublished("request_added")
	m.ClientConnected()
	m.ClientConnected()
	m.ClientDisconnected()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.eventsPublished.WithLabelValues("request_added")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.wsClients))

	var none *Metrics
	assert.NotPanics(t, func() {
		none.EventPublished("x")
		none.ClientConnected()
	})
}
