// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-help-campaigns/internal/logger"
	"github.com/MKhiriev/go-help-campaigns/internal/metrics"
	"github.com/MKhiriev/go-help-campaigns/internal/service"
	"github.com/MKhiriev/go-help-campaigns/internal/store"
	"github.com/MKhiriev/go-help-campaigns/internal/utils"
	"github.com/MKhiriev/go-help-campaigns/internal/validators"
	"github.com/MKhiriev/go-help-campaigns/models"
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := decodeBody(r, &user); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.AuthService.SignUp(ctx, user)
	if err != nil {
		h.observeSignUp(err)
		writeError(w, r, err)
		return
	}
	h.observeSignUp(nil)

	log.Info().Int64("id", created.ID).Msg("user signed up")
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := decodeBody(r, &user); err != nil {
		writeError(w, r, err)
		return
	}

	found, err := h.services.AuthService.SignIn(ctx, user)
	if err != nil {
		h.observeSignIn(err)
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, found)
	if err != nil {
		h.observeSignIn(err)
		log.Err(err).Int64("id", found.ID).Msg("creation of token failed")
		writeError(w, r, err)
		return
	}
	h.observeSignIn(nil)

	log.Debug().Int64("id", found.ID).Msg("user successfully signed in")
	utils.WriteJSON(w, models.Authentication{Token: token.SignedString, ExpiresIn: token.ExpiresAt}, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var change models.PasswordChange
	if err = decodeBody(r, &change); err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.AuthService.ChangePassword(r.Context(), userID, change); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.AuthService.DeleteAccount(r.Context(), userID); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("id", userID).Msg("account deleted")
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) observeSignUp(err error) {
	if h.metrics != nil {
		h.metrics.ObserveSignUp(authResult(err, store.ErrEmailAlreadyExists, metrics.ResultConflict))
	}
}

func (h *Handler) observeSignIn(err error) {
	if h.metrics != nil {
		h.metrics.ObserveSignIn(authResult(err, service.ErrWrongCredentials, metrics.ResultRejected))
	}
}

// authResult maps an auth outcome to a metrics result label; expected is the
// error counted under expectedResult instead of the generic error label.
func authResult(err, expected error, expectedResult string) string {
	var verrs *validators.ValidationErrors
	switch {
	case err == nil:
		return metrics.ResultSuccess
	case errors.Is(err, expected):
		return expectedResult
	case errors.As(err, &verrs):
		return metrics.ResultRejected
	default:
		return metrics.ResultError
	}
}
