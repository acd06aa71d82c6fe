// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-help-campaigns/internal/app"
	"github.com/MKhiriev/go-help-campaigns/internal/utils"
	"github.com/MKhiriev/go-help-campaigns/models"
)

func (h *Handler) listHelpDone(w http.ResponseWriter, r *http.Request) {
	campaignID, err := pathID(r, paramCampaignID, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	records, err := h.services.HelpDoneService.List(r.Context(), campaignID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, records, http.StatusOK)
}

func (h *Handler) getHelpDone(w http.ResponseWriter, r *http.Request) {
	campaignID, helpID, err := helpDonePath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	record, err := h.services.HelpDoneService.Get(r.Context(), campaignID, helpID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

// createHelpDone takes the campaign from the path; a campaignId in the body
// is ignored.
func (h *Handler) createHelpDone(w http.ResponseWriter, r *http.Request) {
	campaignID, err := pathID(r, paramCampaignID, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var record models.HelpDone
	if err = decodeBody(r, &record); err != nil {
		writeError(w, r, err)
		return
	}
	record.CampaignID = campaignID

	id, err := h.services.HelpDoneService.Create(r.Context(), record)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.CampaignResponse{ID: id, Message: app.MsgHelpRegistered}, http.StatusCreated)
}

func (h *Handler) deleteHelpDone(w http.ResponseWriter, r *http.Request) {
	campaignID, helpID, err := helpDonePath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.HelpDoneService.Delete(r.Context(), campaignID, helpID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func helpDonePath(r *http.Request) (campaignID, helpID int64, err error) {
	if campaignID, err = pathID(r, paramCampaignID, "id"); err != nil {
		return 0, 0, err
	}
	if helpID, err = pathID(r, paramHelpID, "helpId"); err != nil {
		return 0, 0, err
	}
	return campaignID, helpID, nil
}
