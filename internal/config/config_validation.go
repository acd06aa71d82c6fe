// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the merged [StructuredConfig] can start the server.
// All violations are reported at once.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.TokenSignKey == "" {
		errs = append(errs, ErrMissingTokenSignKey)
	}
	if cfg.App.TokenDuration <= 0 {
		errs = append(errs, ErrInvalidTokenDuration)
	}
	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		errs = append(errs, ErrInvalidPasswordHashCost)
	}
	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, ErrMissingDSN)
	}
	if cfg.Server.HTTPAddress == "" {
		errs = append(errs, ErrMissingServerAddress)
	}

	return errors.Join(errs...)
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
