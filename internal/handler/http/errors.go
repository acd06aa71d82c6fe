// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-help-campaigns/internal/app"
	"github.com/MKhiriev/go-help-campaigns/internal/logger"
	"github.com/MKhiriev/go-help-campaigns/internal/utils"
	"github.com/MKhiriev/go-help-campaigns/internal/validators"
	"github.com/MKhiriev/go-help-campaigns/models"
)

var (
	ErrInvalidJSON   = errors.New("invalid JSON was passed")
	ErrRouteNotFound = errors.New("resource not found")
)

// writeError renders err as an error response.
//
// Validation failures become 422 with the collected field errors. Known
// sentinels get their mapped status and message; anything else is logged in
// full and reported as a sanitized 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var verrs *validators.ValidationErrors
	if errors.As(err, &verrs) {
		log.Debug().Err(err).Msg("request validation failed")
		utils.WriteJSON(w, verrs, http.StatusUnprocessableEntity)
		return
	}

	status, known := statusFromError(err)
	message := app.MsgInternalServerError
	if known != nil && status < http.StatusInternalServerError {
		message = known.Error()
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Info().Err(err).Int("status", status).Msg("request rejected")
	}

	writeErrorResponse(w, status, message)
}

func writeErrorResponse(w http.ResponseWriter, status int, message string, params ...models.ErrorParam) {
	utils.WriteJSON(w, models.ErrorResponse{
		Code:    strconv.Itoa(status),
		Message: message,
		Params:  params,
	}, status)
}
