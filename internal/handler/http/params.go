// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-help-campaigns/internal/service"
	"github.com/MKhiriev/go-help-campaigns/internal/utils"
	"github.com/MKhiriev/go-help-campaigns/internal/validators"
	"github.com/go-chi/chi/v5"
)

// pathID parses the numeric URL parameter name. Validation failures name
// the parameter as reported, the way clients know it.
func pathID(r *http.Request, name, reported string) (int64, error) {
	return validators.ParseID(validators.LocationParams, reported, chi.URLParam(r, name))
}

// decodeBody reads a JSON body, tagging decoding failures with ErrInvalidJSON.
func decodeBody(r *http.Request, dst any) error {
	if err := utils.ReadJSON(r, dst); err != nil {
		if errors.Is(err, utils.ErrEmptyBody) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// callerID returns the authenticated user id set by the auth middleware.
func callerID(r *http.Request) (int64, error) {
	id, ok := utils.GetUserIDFromContext(r.Context())
	if !ok || id <= 0 {
		return 0, service.ErrNoAuthenticatedUser
	}
	return id, nil
}
