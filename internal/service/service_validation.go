// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-help-campaigns/internal/validators"
	"github.com/MKhiriev/go-help-campaigns/models"
)

// The validation services run the request rules of an operation and return
// *validators.ValidationErrors without calling the inner service when any
// rule fails. Read operations pass straight through.

type AuthValidationService struct {
	AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{validator: validators.NewUserValidator()}
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.AuthService = inner
	return v
}

func (v *AuthValidationService) SignUp(ctx context.Context, user models.User) (models.User, error) {
	if err := v.validator.Validate(ctx, user, validators.SignUpFields...); err != nil {
		return models.User{}, err
	}
	return v.AuthService.SignUp(ctx, user)
}

func (v *AuthValidationService) SignIn(ctx context.Context, user models.User) (models.User, error) {
	if err := v.validator.Validate(ctx, user, validators.SignInFields...); err != nil {
		return models.User{}, err
	}
	return v.AuthService.SignIn(ctx, user)
}

func (v *AuthValidationService) ChangePassword(ctx context.Context, userID int64, change models.PasswordChange) error {
	if err := v.validator.Validate(ctx, change); err != nil {
		return err
	}
	return v.AuthService.ChangePassword(ctx, userID, change)
}

type CampaignValidationService struct {
	CampaignService
	validator validators.Validator
}

func NewCampaignValidationService() CampaignServiceWrapper {
	return &CampaignValidationService{validator: validators.NewCampaignValidator()}
}

func (v *CampaignValidationService) Wrap(inner CampaignService) CampaignService {
	v.CampaignService = inner
	return v
}

func (v *CampaignValidationService) Create(ctx context.Context, ownerID int64, campaign models.Campaign) (string, error) {
	if err := v.validator.Validate(ctx, campaign); err != nil {
		return "", err
	}
	return v.CampaignService.Create(ctx, ownerID, campaign)
}

func (v *CampaignValidationService) Update(ctx context.Context, callerID, campaignID int64, campaign models.Campaign) error {
	if err := v.validator.Validate(ctx, campaign); err != nil {
		return err
	}
	return v.CampaignService.Update(ctx, callerID, campaignID, campaign)
}

type HelpMethodValidationService struct {
	HelpMethodService
	validator validators.Validator
}

func NewHelpMethodValidationService() HelpMethodServiceWrapper {
	return &HelpMethodValidationService{validator: validators.NewHelpValidator()}
}

func (v *HelpMethodValidationService) Wrap(inner HelpMethodService) HelpMethodService {
	v.HelpMethodService = inner
	return v
}

func (v *HelpMethodValidationService) Create(ctx context.Context, method models.HelpMethod) (int64, error) {
	if err := v.validator.Validate(ctx, method, validators.FieldDescription); err != nil {
		return 0, err
	}
	return v.HelpMethodService.Create(ctx, method)
}

func (v *HelpMethodValidationService) Update(ctx context.Context, method models.HelpMethod) error {
	if err := v.validator.Validate(ctx, method, validators.FieldID, validators.FieldDescription); err != nil {
		return err
	}
	return v.HelpMethodService.Update(ctx, method)
}

type HelpDoneValidationService struct {
	HelpDoneService
	validator validators.Validator
}

func NewHelpDoneValidationService() HelpDoneServiceWrapper {
	return &HelpDoneValidationService{validator: validators.NewHelpValidator()}
}

func (v *HelpDoneValidationService) Wrap(inner HelpDoneService) HelpDoneService {
	v.HelpDoneService = inner
	return v
}

func (v *HelpDoneValidationService) Create(ctx context.Context, helpDone models.HelpDone) (string, error) {
	if err := v.validator.Validate(ctx, helpDone); err != nil {
		return "", err
	}
	return v.HelpDoneService.Create(ctx, helpDone)
}
