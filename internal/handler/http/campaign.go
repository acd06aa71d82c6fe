// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"
	"strconv"

	"github.com/MKhiriev/go-help-campaigns/internal/app"
	"github.com/MKhiriev/go-help-campaigns/internal/logger"
	"github.com/MKhiriev/go-help-campaigns/internal/utils"
	"github.com/MKhiriev/go-help-campaigns/internal/validators"
	"github.com/MKhiriev/go-help-campaigns/models"
)

// listCampaigns serves GET /campaigns?q=text&filters=1&filters=2.
// "filters[]" is accepted as an alias of "filters".
func (h *Handler) listCampaigns(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	rawIDs := slices.Concat(query["filters"], query["filters[]"])
	ids, err := validators.ParseIDs(validators.LocationQuery, "filters", rawIDs)
	if err != nil {
		writeError(w, r, err)
		return
	}

	campaigns, err := h.services.CampaignService.List(r.Context(), models.CampaignFilter{
		SearchText:    query.Get("q"),
		HelpMethodIDs: ids,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, campaigns, http.StatusOK)
}

func (h *Handler) getCampaign(w http.ResponseWriter, r *http.Request) {
	campaignID, err := pathID(r, paramCampaignID, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	campaign, err := h.services.CampaignService.Get(r.Context(), campaignID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, campaign, http.StatusOK)
}

func (h *Handler) listUserCampaigns(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, paramUserID, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	campaigns, err := h.services.CampaignService.ListByUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, campaigns, http.StatusOK)
}

func (h *Handler) createCampaign(w http.ResponseWriter, r *http.Request) {
	ownerID, err := callerID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var campaign models.Campaign
	if err = decodeBody(r, &campaign); err != nil {
		writeError(w, r, err)
		return
	}

	id, err := h.services.CampaignService.Create(r.Context(), ownerID, campaign)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("campaign_id", id).Int64("owner_id", ownerID).Msg("campaign created")
	utils.WriteJSON(w, models.CampaignResponse{ID: id, Message: app.MsgCampaignCreated}, http.StatusCreated)
}

func (h *Handler) updateCampaign(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	campaignID, err := pathID(r, paramCampaignID, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var campaign models.Campaign
	if err = decodeBody(r, &campaign); err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.CampaignService.Update(r.Context(), userID, campaignID, campaign); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.CampaignResponse{ID: strconv.FormatInt(campaignID, 10), Message: app.MsgCampaignUpdated}, http.StatusOK)
}

func (h *Handler) deleteCampaign(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	campaignID, err := pathID(r, paramCampaignID, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.CampaignService.Delete(r.Context(), userID, campaignID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
