package httpadapter

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"adpanel/internal/core/grid"
	"adpanel/internal/core/port"
)

// parseBound reads an optional from/to query parameter. RFC 3339
// timestamps and plain dates are accepted.
func parseBound(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, nil
	}
	t, ok := grid.ParseTime(raw)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: invalid '%s' timestamp", port.ErrValidation, name)
	}
	return t, nil
}

// handleListCampaigns returns campaign rows created in [from, to). Both
// bounds are optional; without them every visible row is returned.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	from, err := parseBound(r, "from")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	to, err := parseBound(r, "to")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	rows, err := h.Campaigns.List(r.Context(), sessionFrom(r.Context()), chi.URLParam(r, "kind"), from, to)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, rows)
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var body campaignBody
	if err := h.readBody(r, schemaCampaign, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	row, err := h.Campaigns.Create(r.Context(), sessionFrom(r.Context()), chi.URLParam(r, "kind"), body.row())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, row)
}

// handleUpdateCampaign replaces the editable fields of a row.
func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var body campaignBody
	if err = h.readBody(r, schemaCampaign, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	row, err := h.Campaigns.Update(r.Context(), sessionFrom(r.Context()), chi.URLParam(r, "kind"), id, body.row())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, row)
}

func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err = h.Campaigns.Delete(r.Context(), sessionFrom(r.Context()), chi.URLParam(r, "kind"), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, nil)
}

func (h *Handler) handleCopyCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	row, err := h.Campaigns.Copy(r.Context(), sessionFrom(r.Context()), chi.URLParam(r, "kind"), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, row)
}
