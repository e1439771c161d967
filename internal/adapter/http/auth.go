package httpadapter

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"adpanel/internal/core/domain"
	"adpanel/internal/core/port"
)

type sessionKey struct{}

// cookieClaims is what the sealed session cookie carries. Only the user
// id is taken from it; role and scope are reloaded on every request.
type cookieClaims struct {
	UserID    int64     `json:"uid"`
	ExpiresAt time.Time `json:"expires_at"`
}

// sessionFrom returns the session stored by requireSession.
func sessionFrom(ctx context.Context) domain.Session {
	s, _ := ctx.Value(sessionKey{}).(domain.Session)
	return s
}

// requireSession opens the session cookie and loads the stored account
// it names. A missing, expired or unopenable cookie, or one naming an
// unknown user, is treated as logged out.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(h.Cookie.Name)
		if err != nil {
			h.writeError(w, r, port.ErrUnauthenticated)
			return
		}
		var claims cookieClaims
		if err = h.Sealer.OpenValue(cookie.Value, &claims); err != nil ||
			claims.UserID == 0 || !h.now().Before(claims.ExpiresAt) {
			h.clearCookie(w)
			h.writeError(w, r, port.ErrUnauthenticated)
			return
		}
		s, err := h.Auth.Profile(r.Context(), domain.Session{ID: claims.UserID})
		if err != nil {
			if errors.Is(err, port.ErrUnauthenticated) {
				h.clearCookie(w)
			}
			h.writeError(w, r, err)
			return
		}
		ctx := context.WithValue(r.Context(), sessionKey{}, s)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requirePanel rejects the request unless the layout lets the session act
// on the panel picked by code.
func (h *Handler) requirePanel(code func(r *http.Request) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !h.Layout.CanAct(sessionFrom(r.Context()), code(r)) {
				h.writeError(w, r, port.ErrForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// panel returns a fixed panel code for requirePanel.
func panel(code string) func(*http.Request) string {
	return func(*http.Request) string { return code }
}

// kindPanel picks the advertiser or publisher variant of a panel from the
// {kind} URL parameter.
func kindPanel(suffix string) func(*http.Request) string {
	return func(r *http.Request) string {
		return chi.URLParam(r, "kind") + "_" + suffix
	}
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, s domain.Session) error {
	expires := h.now().Add(h.Cookie.TTL)
	value, err := h.Sealer.SealValue(cookieClaims{UserID: s.ID, ExpiresAt: expires})
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     h.Cookie.Name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.Cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (h *Handler) clearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.Cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.Cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

type loginBody struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// handleLogin checks credentials and issues the sealed session cookie.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body loginBody
	if err := h.readBody(r, "", &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	s, err := h.Auth.Login(r.Context(), body.Username, body.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err = h.setSessionCookie(w, s); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, s)
}

func (h *Handler) handleLogout(w http.ResponseWriter, _ *http.Request) {
	h.clearCookie(w)
	h.writeJSON(w, http.StatusOK, nil)
}

// handleMe returns the stored profile and refreshes the cookie.
func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r.Context())
	if err := h.setSessionCookie(w, s); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, s)
}

func (h *Handler) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	var body port.PasswordChange
	if err := h.readBody(r, "", &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Auth.ChangePassword(r.Context(), sessionFrom(r.Context()), body); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, nil)
}

func (h *Handler) handleShell(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r.Context())
	h.writeJSON(w, http.StatusOK, map[string]any{
		"session": s,
		"panels":  h.Layout.For(s),
	})
}

func (h *Handler) handleDirectory(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Auth.Directory(r.Context(), sessionFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, entries)
}
