// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Campaign is a help request published by a user. HelpMethods is a read-time
// projection of the campaign_help_methods join table, ordered by the position
// the owner supplied.
type Campaign struct {
	// ID is the database identifier rendered as a decimal string.
	ID string `json:"id"`

	// OwnerID is the identifier of the user who created the campaign.
	// It never changes after creation.
	OwnerID int64 `json:"ownerId,omitempty"`

	Title       string `json:"title"`
	Description string `json:"description"`
	Contact     string `json:"contact"`

	// HelpMethods lists the ways to help requested by the campaign.
	// On writes only HelpMethod.ID is used.
	HelpMethods []HelpMethod `json:"helpMethods"`
}

// HelpMethodIDs returns the ids of the campaign's help methods with
// duplicates removed, keeping the first occurrence order.
func (c Campaign) HelpMethodIDs() []int64 {
	ids := make([]int64, 0, len(c.HelpMethods))
	seen := make(map[int64]struct{}, len(c.HelpMethods))
	for _, m := range c.HelpMethods {
		if _, ok := seen[m.ID]; ok {
			continue
		}
		seen[m.ID] = struct{}{}
		ids = append(ids, m.ID)
	}
	return ids
}

// CampaignFilter holds the search criteria accepted by the campaign listing.
type CampaignFilter struct {
	// SearchText is matched case-insensitively as a substring of the title or
	// the description. Blank text disables the filter.
	SearchText string

	// HelpMethodIDs restricts the result to campaigns requesting at least one
	// of the listed help methods.
	HelpMethodIDs []int64
}

// CampaignResponse is returned after a campaign was created or updated.
type CampaignResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}
