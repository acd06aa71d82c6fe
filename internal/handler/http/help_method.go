// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-help-campaigns/internal/utils"
	"github.com/MKhiriev/go-help-campaigns/internal/validators"
	"github.com/MKhiriev/go-help-campaigns/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listHelpMethods(w http.ResponseWriter, r *http.Request) {
	methods, err := h.services.HelpMethodService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, methods, http.StatusOK)
}

func (h *Handler) getHelpMethod(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, paramMethodID, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	method, err := h.services.HelpMethodService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, method, http.StatusOK)
}

func (h *Handler) createHelpMethod(w http.ResponseWriter, r *http.Request) {
	var method models.HelpMethod
	if err := decodeBody(r, &method); err != nil {
		writeError(w, r, err)
		return
	}

	id, err := h.services.HelpMethodService.Create(r.Context(), method)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.IDResponse{ID: strconv.FormatInt(id, 10)}, http.StatusCreated)
}

// updateHelpMethod takes the id from the path, falling back to the body and
// then to the "id" query parameter.
func (h *Handler) updateHelpMethod(w http.ResponseWriter, r *http.Request) {
	var method models.HelpMethod
	if err := decodeBody(r, &method); err != nil {
		writeError(w, r, err)
		return
	}

	if raw := helpMethodIDParam(r); raw != "" {
		id, err := validators.ParseID(validators.LocationParams, "id", raw)
		if err != nil {
			writeError(w, r, err)
			return
		}
		method.ID = id
	}

	if err := h.services.HelpMethodService.Update(r.Context(), method); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.IDResponse{ID: strconv.FormatInt(method.ID, 10)}, http.StatusOK)
}

func (h *Handler) deleteHelpMethod(w http.ResponseWriter, r *http.Request) {
	id, err := validators.ParseID(validators.LocationParams, "id", helpMethodIDParam(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.HelpMethodService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func helpMethodIDParam(r *http.Request) string {
	if raw := chi.URLParam(r, paramMethodID); raw != "" {
		return raw
	}
	return r.URL.Query().Get("id")
}
