// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidHashCost is returned for a cost outside bcrypt's supported range.
var ErrInvalidHashCost = errors.New("invalid bcrypt cost")

// PasswordHasher hashes and verifies passwords with bcrypt.
// The salt is generated per hash and embedded in the result.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher using cost, which must lie within
// [bcrypt.MinCost, bcrypt.MaxCost].
func NewPasswordHasher(cost int) (*PasswordHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHashCost, cost)
	}

	return &PasswordHasher{cost: cost}, nil
}

// Hash returns the bcrypt hash of password. Passwords longer than 72 bytes
// are rejected by bcrypt.
func (h *PasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// Verify reports whether password matches hash. The comparison runs in
// constant time.
func (h *PasswordHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
