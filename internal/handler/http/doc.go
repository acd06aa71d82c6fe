// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the campaign server.
//
// It wires the chi router, the middleware chain (recovery, trace id, access
// log, metrics, gzip, per-request timeout, bearer authentication) and the
// route handlers that translate HTTP requests into service calls. Errors are
// mapped to statuses in one place (statusFromError) and rendered as
// models.ErrorResponse, validation failures as a 422 {"errors": [...]} body.
package http
