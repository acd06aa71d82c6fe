// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-help-campaigns/internal/service"
	"github.com/MKhiriev/go-help-campaigns/internal/store"
	"github.com/MKhiriev/go-help-campaigns/internal/utils"
)

// errorStatusMap is ordered: an error wrapping several sentinels gets the
// status of the first match, so domain errors come before the low-level
// storage errors they may wrap.
var errorStatusMap = []struct {
	err    error
	status int
}{
	{ErrInvalidJSON, http.StatusBadRequest},
	{utils.ErrEmptyBody, http.StatusBadRequest},
	{ErrRouteNotFound, http.StatusNotFound},

	{service.ErrWrongCredentials, http.StatusUnauthorized},
	{service.ErrInvalidToken, http.StatusUnauthorized},
	{utils.ErrNoToken, http.StatusUnauthorized},
	{service.ErrNoAuthenticatedUser, http.StatusUnauthorized},
	{service.ErrAccountDisabled, http.StatusForbidden},
	{service.ErrForbidden, http.StatusForbidden},

	{store.ErrCampaignNotFound, http.StatusNotFound},
	{store.ErrHelpMethodNotFound, http.StatusNotFound},
	{store.ErrHelpDoneNotFound, http.StatusNotFound},
	{store.ErrUserNotFound, http.StatusNotFound},
	{store.ErrEmailAlreadyExists, http.StatusConflict},
	{store.ErrHelpMethodInUse, http.StatusConflict},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError},
	{store.ErrPreparingStatement, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

// statusFromError returns the status for err together with the matched
// sentinel, or 500 and nil when err is unknown.
func statusFromError(err error) (int, error) {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.err) {
			return entry.status, entry.err
		}
	}
	return http.StatusInternalServerError, nil
}
