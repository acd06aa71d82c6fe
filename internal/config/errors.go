// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when the merged configuration is unusable.
// Several of them may be joined into one error.
var (
	ErrMissingTokenSignKey     = errors.New("token sign key is required")
	ErrInvalidTokenDuration    = errors.New("token duration must be positive")
	ErrInvalidPasswordHashCost = errors.New("password hash cost is out of bcrypt range")
	ErrMissingDSN              = errors.New("database DSN is required")
	ErrMissingServerAddress    = errors.New("server address is required")

	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
