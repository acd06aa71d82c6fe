// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP request/response JSON handling, HTTP client initialization, JWT token
// generation and validation, and trace id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-help-campaigns/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey is the key used to store the authenticated user id.
	UserIDCtxKey = contextKey("userID")

	// ClaimsCtxKey is the key used to store the verified token claims.
	ClaimsCtxKey = contextKey("claims")
)

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID of type int64 and an ok flag:
//   - ok == true: value is found and has the correct int64 type
//   - ok == false: value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// WithClaims stores the verified claims and the user id they carry.
func WithClaims(ctx context.Context, claims models.TokenClaims) context.Context {
	ctx = context.WithValue(ctx, ClaimsCtxKey, claims)
	return context.WithValue(ctx, UserIDCtxKey, claims.ID)
}

// ClaimsFromContext returns the claims stored by WithClaims.
func ClaimsFromContext(ctx context.Context) (models.TokenClaims, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(models.TokenClaims)
	return claims, ok
}
