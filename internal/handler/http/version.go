// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/go-help-campaigns/internal/app"
	"github.com/MKhiriev/go-help-campaigns/internal/logger"
	"github.com/MKhiriev/go-help-campaigns/internal/utils"
)

const healthCheckTimeout = 2 * time.Second

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

type healthResponse struct {
	Status string `json:"status"`
}

// health reports 503 when the database does not answer a ping in time.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if h.pinger != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()

		if err := h.pinger.Ping(ctx); err != nil {
			logger.FromRequest(r).Err(err).Msg("health check failed")
			utils.WriteJSON(w, healthResponse{Status: app.MsgStatusUnavailable}, http.StatusServiceUnavailable)
			return
		}
	}

	utils.WriteJSON(w, healthResponse{Status: app.MsgStatusOK}, http.StatusOK)
}
