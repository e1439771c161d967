package httpadapter

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"adpanel/internal/core/port"
)

// pathID parses the {id} path parameter.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id", port.ErrValidation)
	}
	return id, nil
}

func (b identifierBody) input() port.IdentifierInput {
	return port.IdentifierInput{
		Name:        b.Name,
		AssignedID:  string(b.AssignedID),
		Geo:         b.Geo,
		Note:        b.Note,
		Target:      b.Target,
		OwnerUserID: b.OwnerUserID,
	}
}

func (h *Handler) handleListIdentifiers(w http.ResponseWriter, r *http.Request) {
	recs, err := h.Identifiers.List(r.Context(), sessionFrom(r.Context()), chi.URLParam(r, "kind"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, recs)
}

// handleAvailableIdentifiers returns the id pool. An optional owner query
// parameter lets managers look up a sub-admin's pool.
func (h *Handler) handleAvailableIdentifiers(w http.ResponseWriter, r *http.Request) {
	var owner int64
	if raw := r.URL.Query().Get("owner"); raw != "" {
		var err error
		owner, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.writeError(w, r, fmt.Errorf("%w: invalid owner", port.ErrValidation))
			return
		}
	}
	ids, err := h.Identifiers.Available(r.Context(), sessionFrom(r.Context()), chi.URLParam(r, "kind"), owner)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, ids)
}

func (h *Handler) handleCreateIdentifier(w http.ResponseWriter, r *http.Request) {
	var body identifierBody
	if err := h.readBody(r, schemaIdentifier, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	rec, err := h.Identifiers.Create(r.Context(), sessionFrom(r.Context()), chi.URLParam(r, "kind"), body.input())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, rec)
}

func (h *Handler) handleUpdateIdentifier(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var body identifierBody
	if err = h.readBody(r, "", &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	rec, err := h.Identifiers.Update(r.Context(), sessionFrom(r.Context()), chi.URLParam(r, "kind"), id, body.input())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, rec)
}

func (h *Handler) handleDeleteIdentifier(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err = h.Identifiers.Delete(r.Context(), sessionFrom(r.Context()), chi.URLParam(r, "kind"), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, nil)
}
