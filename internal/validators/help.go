// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/go-help-campaigns/models"
)

const (
	FieldID          = "id"
	FieldMethodID    = "methodId"
	FieldCampaignID  = "campaignId"
	FieldLogDonation = "logDonation"
)

var helpMethodRules = []Rule[models.HelpMethod]{
	{
		Field:   FieldID,
		Value:   func(m models.HelpMethod) any { return m.ID },
		Check:   func(m models.HelpMethod) bool { return m.ID >= 1 },
		Message: "Id must be a positive integer",
	},
	{
		Field:   FieldDescription,
		Value:   func(m models.HelpMethod) any { return m.Description },
		Check:   func(m models.HelpMethod) bool { return minLen(m.Description, 1) },
		Message: "Description is required",
	},
}

var helpDoneRules = []Rule[models.HelpDone]{
	{
		Field:    FieldCampaignID,
		Location: LocationParams,
		Param:    "id",
		Value:    func(h models.HelpDone) any { return h.CampaignID },
		Check:    func(h models.HelpDone) bool { return h.CampaignID >= 1 },
		Message:  "Campaign id must be a positive integer",
	},
	{
		Field:   FieldMethodID,
		Value:   func(h models.HelpDone) any { return h.MethodID },
		Check:   func(h models.HelpDone) bool { return h.MethodID >= 1 },
		Message: "Method id must be a positive integer",
	},
	{
		Field:   FieldLogDonation,
		Value:   func(h models.HelpDone) any { return h.LogDonation },
		Check:   func(h models.HelpDone) bool { return minLen(h.LogDonation, 3) },
		Message: "Log donation must be at least 3 characters long",
	},
}

// HelpValidator validates help methods and help done records. A HelpMethod
// without fields is checked for its description only, which is what
// creation needs; updates add FieldID.
type HelpValidator struct{}

func NewHelpValidator() Validator {
	return &HelpValidator{}
}

func (v *HelpValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.HelpMethod:
		return v.validateHelpMethod(value, fields...)
	case *models.HelpMethod:
		return v.validateHelpMethod(*value, fields...)

	case models.HelpDone:
		return evaluate(value, helpDoneRules, fields...)
	case *models.HelpDone:
		return evaluate(*value, helpDoneRules, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *HelpValidator) validateHelpMethod(method models.HelpMethod, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDescription}
	}
	return evaluate(method, helpMethodRules, fields...)
}
