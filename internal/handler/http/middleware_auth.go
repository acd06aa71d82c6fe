// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-help-campaigns/internal/logger"
	"github.com/MKhiriev/go-help-campaigns/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It reads the "Authorization" header ("Bearer <token>" or a bare token),
// validates the token via [service.AuthService.ParseToken] and, on success,
// stores the claims in the request context ([utils.WithClaims]) before
// delegating to the next handler. Any failure is answered with 401 and the
// next handler is not called.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.GetTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Info().Err(err).Msg("request without usable token")
			writeError(w, r, err)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Info().Err(err).Msg("error occurred during parsing token")
			writeError(w, r, err)
			return
		}

		ctx = utils.WithClaims(ctx, token.Claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
