// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the human-readable messages written into API response
// bodies, so the server and its tests share one wording.
package app

const (
	// MsgInternalServerError replaces the details of any unexpected failure.
	MsgInternalServerError = "internal server error"

	MsgCampaignCreated = "Campaign created successfully"
	MsgCampaignUpdated = "Campaign updated successfully"
	MsgHelpRegistered  = "Help registered successfully"

	// MsgInvalidGzipBody answers a request whose gzip body cannot be read.
	MsgInvalidGzipBody = "invalid gzip data"

	MsgStatusOK          = "ok"
	MsgStatusUnavailable = "unavailable"
)
