// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-help-campaigns/internal/logger"
)

// notFound answers unknown routes with a 404 ErrorResponse.
func notFound(w http.ResponseWriter, r *http.Request) {
	writeErrorResponse(w, http.StatusNotFound, ErrRouteNotFound.Error())
}

// methodNotAllowed is registered via [chi.Mux.MethodNotAllowed]. A known path
// requested with a method it does not serve is answered exactly like an
// unknown path (404 instead of chi's 405), hiding which routes exist.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().Str("method", r.Method).Str("path", r.URL.Path).Msg("method not allowed")
	notFound(w, r)
}
