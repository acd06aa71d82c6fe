// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the services.
//
// Core concepts:
//   - Validator: validates a model value, optionally restricted to a subset of
//     named fields. Every failing field is reported, not only the first one.
//   - Rule: one declarative check bound to a request parameter and its
//     location (body, params, query).
//   - ValidationErrors: the collected failures, rendered by the HTTP layer as
//     a 422 response.
//
// Usage patterns:
//  1. Inject a Validator into a service validation wrapper.
//  2. Call Validate with the model and, when needed, the fields to check.
//  3. Use errors.As to obtain *ValidationErrors from the returned error.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
