package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type valueBody struct {
	Value string `json:"value"`
}

type pidBody struct {
	PID string `json:"pid"`
}

func (h *Handler) handleListLookups(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Lookups.List(r.Context(), chi.URLParam(r, "list"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) handleAddLookup(w http.ResponseWriter, r *http.Request) {
	var body valueBody
	if err := h.readBody(r, "", &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	entry, err := h.Lookups.Add(r.Context(), sessionFrom(r.Context()), chi.URLParam(r, "list"), body.Value)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, entry)
}

func (h *Handler) handleRenameLookup(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var body valueBody
	if err = h.readBody(r, "", &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	entry, err := h.Lookups.Rename(r.Context(), sessionFrom(r.Context()), chi.URLParam(r, "list"), id, body.Value)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, entry)
}

func (h *Handler) handleListBlacklist(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Blacklist.List(r.Context(), sessionFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) handleAddBlacklist(w http.ResponseWriter, r *http.Request) {
	var body pidBody
	if err := h.readBody(r, "", &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	entry, err := h.Blacklist.Add(r.Context(), sessionFrom(r.Context()), body.PID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, entry)
}

func (h *Handler) handleRemoveBlacklist(w http.ResponseWriter, r *http.Request) {
	if err := h.Blacklist.Remove(r.Context(), sessionFrom(r.Context()), chi.URLParam(r, "pid")); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, nil)
}
