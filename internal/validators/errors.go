// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Parameter locations reported in FieldError.Location.
const (
	LocationBody   = "body"
	LocationParams = "params"
	LocationQuery  = "query"
)

// FieldError describes one failed check.
type FieldError struct {
	Location string `json:"location"`
	Param    string `json:"param"`
	Value    any    `json:"value"`
	Msg      string `json:"msg"`
}

// ValidationErrors collects every failed check of a single request.
type ValidationErrors struct {
	Errors []FieldError `json:"errors"`
}

func (e *ValidationErrors) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Param+": "+fe.Msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends a failure.
func (e *ValidationErrors) Add(location, param string, value any, msg string) {
	e.Errors = append(e.Errors, FieldError{Location: location, Param: param, Value: value, Msg: msg})
}

// Err returns e when at least one failure was collected and nil otherwise,
// so a nil *ValidationErrors never ends up inside a non-nil error interface.
func (e *ValidationErrors) Err() error {
	if e == nil || len(e.Errors) == 0 {
		return nil
	}
	return e
}

// Merge appends the failures carried by err, if it is a *ValidationErrors.
// Any other non-nil error is returned unchanged.
func (e *ValidationErrors) Merge(err error) error {
	if err == nil {
		return nil
	}
	var other *ValidationErrors
	if !errors.As(err, &other) {
		return err
	}
	e.Errors = append(e.Errors, other.Errors...)
	return nil
}
