package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"adpanel/internal/core/port"
	"adpanel/internal/core/session"
	"adpanel/internal/core/shell"
	"adpanel/internal/metrics"
)

// CookieConfig controls the session cookie.
type CookieConfig struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

// Deps are the collaborators of the HTTP adapter.
type Deps struct {
	Auth         port.AuthUseCase
	Identifiers  port.IdentifierUseCase
	Campaigns    port.CampaignUseCase
	Blacklist    port.BlacklistUseCase
	LinkRequests port.LinkRequestUseCase
	Lookups      port.LookupUseCase
	Layout       *shell.Layout
	Sealer       *session.Sealer
	Cookie       CookieConfig
	// Events serves the websocket notification channel.
	Events  http.HandlerFunc
	Metrics *metrics.Metrics
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
type Handler struct {
	Deps
	validator *Validator
	logger    *slog.Logger
	router    chi.Router
	now       func() time.Time
}

// NewHandler creates a handler with all routes configured.
func NewHandler(deps Deps, logger *slog.Logger) (*Handler, error) {
	validator, err := NewValidator()
	if err != nil {
		return nil, err
	}
	h := &Handler{Deps: deps, validator: validator, logger: logger, now: time.Now}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(deps.Metrics.Middleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		h.writeJSON(w, http.StatusOK, "ok")
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", h.handleLogin)
		r.Post("/auth/logout", h.handleLogout)

		r.Group(func(r chi.Router) {
			r.Use(h.requireSession)

			r.Get("/auth/me", h.handleMe)
			r.With(h.requirePanel(panel("password"))).Post("/auth/password", h.handleChangePassword)
			r.Get("/shell", h.handleShell)
			r.Get("/directory", h.handleDirectory)

			r.Route("/identifiers/{kind}", func(r chi.Router) {
				r.Get("/", h.handleListIdentifiers)
				r.Get("/available", h.handleAvailableIdentifiers)
				r.Group(func(r chi.Router) {
					r.Use(h.requirePanel(kindPanel("ids")))
					r.Post("/", h.handleCreateIdentifier)
					r.Put("/{id}", h.handleUpdateIdentifier)
					r.Delete("/{id}", h.handleDeleteIdentifier)
				})
			})

			r.Route("/campaigns/{kind}", func(r chi.Router) {
				r.Get("/", h.handleListCampaigns)
				r.Group(func(r chi.Router) {
					r.Use(h.requirePanel(kindPanel("data")))
					r.Post("/", h.handleCreateCampaign)
					r.Put("/{id}", h.handleUpdateCampaign)
					r.Delete("/{id}", h.handleDeleteCampaign)
					r.Post("/{id}/copy", h.handleCopyCampaign)
				})
			})

			r.Get("/blacklist", h.handleListBlacklist)
			r.With(h.requirePanel(panel("blacklist"))).Post("/blacklist", h.handleAddBlacklist)
			r.With(h.requirePanel(panel("blacklist"))).Delete("/blacklist/{pid}", h.handleRemoveBlacklist)

			r.Get("/link-requests", h.handleListLinkRequests)
			r.With(h.requirePanel(panel("link_requests"))).Post("/link-requests", h.handleCreateLinkRequest)
			r.With(h.requirePanel(panel("link_requests"))).Patch("/link-requests/{id}/status", h.handleSetLinkStatus)

			r.Get("/lookups/{list}", h.handleListLookups)
			r.With(h.requirePanel(panel("lookups"))).Post("/lookups/{list}", h.handleAddLookup)
			r.With(h.requirePanel(panel("lookups"))).Put("/lookups/{list}/{id}", h.handleRenameLookup)

			if deps.Events != nil {
				r.Get("/ws", deps.Events)
			}
		})
	})
	h.router = r
	return h, nil
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
