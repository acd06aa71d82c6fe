// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-help-campaigns/models"
	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusUnprocessableEntity: ErrValidation,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
}

// mapHTTPError returns nil for 2xx responses. Otherwise the error wraps the
// sentinel for the status and carries the server's message.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	detail := errorDetail(resp.Body())
	if detail == "" {
		detail = http.StatusText(resp.StatusCode())
	}

	if sentinel, ok := statusErrors[resp.StatusCode()]; ok {
		return fmt.Errorf("%w: %s", sentinel, detail)
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), detail)
}

type validationBody struct {
	Errors []struct {
		Param string `json:"param"`
		Msg   string `json:"msg"`
	} `json:"errors"`
}

// errorDetail extracts a readable message from an ErrorResponse or a
// validation error body, falling back to the raw text.
func errorDetail(body []byte) string {
	var verrs validationBody
	if err := json.Unmarshal(body, &verrs); err == nil && len(verrs.Errors) > 0 {
		parts := make([]string, 0, len(verrs.Errors))
		for _, fe := range verrs.Errors {
			parts = append(parts, fe.Param+": "+fe.Msg)
		}
		return strings.Join(parts, "; ")
	}

	var resp models.ErrorResponse
	if err := json.Unmarshal(body, &resp); err == nil && resp.Message != "" {
		return resp.Message
	}

	return strings.TrimSpace(string(body))
}
