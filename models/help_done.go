// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// HelpDone is a logged donation made to a campaign using one help method.
type HelpDone struct {
	// ID is the database identifier rendered as a decimal string.
	ID         string `json:"id"`
	CampaignID int64  `json:"campaignId"`
	MethodID   int64  `json:"methodId"`

	// MethodDescription is joined from help_methods on read and ignored on write.
	MethodDescription string `json:"methodDescription,omitempty"`

	LogDonation string `json:"logDonation"`
}
