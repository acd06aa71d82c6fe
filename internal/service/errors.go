// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-help-campaigns/internal/utils"
)

var (
	// ErrWrongCredentials covers both an unknown email and a wrong password.
	ErrWrongCredentials = errors.New("invalid email or password")
	ErrAccountDisabled  = errors.New("account is blocked or deleted")

	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrInvalidToken        = utils.ErrInvalidToken

	ErrForbidden           = errors.New("operation allowed for the owner only")
	ErrNoAuthenticatedUser = errors.New("no authenticated user")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
