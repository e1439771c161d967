package httpadapter

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"adpanel/internal/core/domain"
	"adpanel/internal/core/port"
)

func (h *Handler) handleListLinkRequests(w http.ResponseWriter, r *http.Request) {
	reqs, err := h.LinkRequests.List(r.Context(), sessionFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, reqs)
}

func (h *Handler) handleCreateLinkRequest(w http.ResponseWriter, r *http.Request) {
	var body linkRequestBody
	if err := h.readBody(r, schemaLinkRequest, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	req, err := h.LinkRequests.Create(r.Context(), sessionFrom(r.Context()), port.LinkRequestInput{
		AdvertiserName: body.AdvertiserName,
		CampaignName:   body.CampaignName,
		Payout:         string(body.Payout),
		OS:             body.OS,
		PID:            body.PID,
		PubID:          body.PubID,
		Geo:            body.Geo,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, req)
}

type statusBody struct {
	Status domain.LinkStatus `json:"status"`
}

func (h *Handler) handleSetLinkStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, fmt.Errorf("%w: invalid id", port.ErrValidation))
		return
	}
	var body statusBody
	if err = h.readBody(r, "", &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	req, err := h.LinkRequests.SetStatus(r.Context(), sessionFrom(r.Context()), id, body.Status)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, req)
}
