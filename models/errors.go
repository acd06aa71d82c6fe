// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the standard error body written by the HTTP layer.
type ErrorResponse struct {
	Code       string       `json:"code"`
	Message    string       `json:"message"`
	Params     []ErrorParam `json:"params,omitempty"`
	StackTrace string       `json:"stackTrace,omitempty"`
}

// ErrorParam names a request parameter related to an error.
type ErrorParam struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}
