// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-help-campaigns/models"
)

type AuthService interface {
	// SignUp registers a new account in PENDING_ACTIVATION status.
	SignUp(ctx context.Context, user models.User) (models.User, error)
	// SignIn checks the credentials and returns the stored account.
	SignIn(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	ChangePassword(ctx context.Context, userID int64, change models.PasswordChange) error
	DeleteAccount(ctx context.Context, userID int64) error
}

type CampaignService interface {
	List(ctx context.Context, filter models.CampaignFilter) ([]models.Campaign, error)
	Get(ctx context.Context, campaignID int64) (models.Campaign, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Campaign, error)
	Create(ctx context.Context, ownerID int64, campaign models.Campaign) (string, error)
	// Update and Delete are allowed for the campaign owner only.
	Update(ctx context.Context, callerID, campaignID int64, campaign models.Campaign) error
	Delete(ctx context.Context, callerID, campaignID int64) error
}

type HelpMethodService interface {
	List(ctx context.Context) ([]models.HelpMethod, error)
	Get(ctx context.Context, id int64) (models.HelpMethod, error)
	Create(ctx context.Context, method models.HelpMethod) (int64, error)
	Update(ctx context.Context, method models.HelpMethod) error
	Delete(ctx context.Context, id int64) error
}

type HelpDoneService interface {
	List(ctx context.Context, campaignID int64) ([]models.HelpDone, error)
	// Get and Delete report a record that belongs to another campaign as not found.
	Get(ctx context.Context, campaignID, id int64) (models.HelpDone, error)
	Create(ctx context.Context, helpDone models.HelpDone) (string, error)
	Delete(ctx context.Context, campaignID, id int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthServiceWrapper, CampaignServiceWrapper, HelpMethodServiceWrapper and
// HelpDoneServiceWrapper decorate a service with additional behavior such as
// validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

type CampaignServiceWrapper interface {
	Wrap(CampaignService) CampaignService
}

type HelpMethodServiceWrapper interface {
	Wrap(HelpMethodService) HelpMethodService
}

type HelpDoneServiceWrapper interface {
	Wrap(HelpDoneService) HelpDoneService
}
