package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"adpanel/internal/core/port"
)

const maxBodyBytes = 1 << 20

// envelope is the shape of every API response.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope{Success: true, Data: data}); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) writeFailure(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope{Error: msg}); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps port sentinels to status codes. Unknown errors are logged
// and reported as a generic 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, port.ErrValidation):
		h.writeFailure(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, port.ErrUnauthenticated):
		h.writeFailure(w, http.StatusUnauthorized, "unauthenticated")
	case errors.Is(err, port.ErrForbidden),
		errors.Is(err, port.ErrEditWindowClosed),
		errors.Is(err, port.ErrDeleteWindowClosed):
		h.writeFailure(w, http.StatusForbidden, err.Error())
	case errors.Is(err, port.ErrNotFound):
		h.writeFailure(w, http.StatusNotFound, "not found")
	case errors.Is(err, port.ErrDuplicate):
		h.writeFailure(w, http.StatusConflict, "duplicate")
	case errors.Is(err, port.ErrBlacklisted):
		h.writeFailure(w, http.StatusUnprocessableEntity, err.Error())
	default:
		h.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		h.writeFailure(w, http.StatusInternalServerError, "internal error")
	}
}

// readBody reads a bounded request body, optionally checking it against a
// schema, and decodes it into v.
func (h *Handler) readBody(r *http.Request, schema string, v any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: unreadable body", port.ErrValidation)
	}
	if schema != "" {
		if err = h.validator.Validate(schema, body); err != nil {
			return err
		}
	}
	if err = json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: invalid JSON", port.ErrValidation)
	}
	return nil
}
