// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-help-campaigns/models"
)

const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldContact     = "contact"
	FieldHelpMethods = "helpMethods"
)

var campaignRules = []Rule[models.Campaign]{
	{
		Field:   FieldTitle,
		Value:   func(c models.Campaign) any { return c.Title },
		Check:   func(c models.Campaign) bool { return minLen(c.Title, 3) },
		Message: "Title must be at least 3 characters long",
	},
	{
		Field:   FieldDescription,
		Value:   func(c models.Campaign) any { return c.Description },
		Check:   func(c models.Campaign) bool { return minLen(c.Description, 3) },
		Message: "Description must be at least 3 characters long",
	},
	{
		Field:   FieldContact,
		Value:   func(c models.Campaign) any { return c.Contact },
		Check:   func(c models.Campaign) bool { return minLen(c.Contact, 3) },
		Message: "Contact must be at least 3 characters long",
	},
}

// CampaignValidator validates campaigns submitted for creation or update.
// Each help method entry must reference a positive id; the help method list
// itself may be empty.
type CampaignValidator struct{}

func NewCampaignValidator() Validator {
	return &CampaignValidator{}
}

func (v *CampaignValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Campaign:
		return v.validateCampaign(value, fields...)
	case *models.Campaign:
		return v.validateCampaign(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CampaignValidator) validateCampaign(campaign models.Campaign, fields ...string) error {
	checkMethods := len(fields) == 0
	scoped := make([]string, 0, len(fields))
	for _, f := range fields {
		if f == FieldHelpMethods {
			checkMethods = true
			continue
		}
		scoped = append(scoped, f)
	}

	verrs := &ValidationErrors{}
	if len(fields) == 0 || len(scoped) > 0 {
		if err := verrs.Merge(evaluate(campaign, campaignRules, scoped...)); err != nil {
			return err
		}
	}

	if checkMethods {
		for i, m := range campaign.HelpMethods {
			if m.ID < 1 {
				verrs.Add(LocationBody, fmt.Sprintf("%s[%d].id", FieldHelpMethods, i), m.ID, "Help method id must be a positive integer")
			}
		}
	}

	return verrs.Err()
}
