// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-help-campaigns/models"
)

// CampaignRepository persists campaigns together with their ordered list of
// requested help methods.
type CampaignRepository interface {
	// FindAll returns campaigns matching filter, each with its full list of
	// help methods.
	FindAll(ctx context.Context, filter models.CampaignFilter) ([]models.Campaign, error)
	// FindByUser returns the campaigns owned by userID.
	FindByUser(ctx context.Context, userID int64) ([]models.Campaign, error)
	// FindOne returns a single campaign or [ErrCampaignNotFound].
	FindOne(ctx context.Context, campaignID int64) (models.Campaign, error)
	// FindOwner returns the id of the user owning the campaign.
	FindOwner(ctx context.Context, campaignID int64) (int64, error)
	// InsertOne stores the campaign and its help-method links in one
	// transaction and returns the new id.
	InsertOne(ctx context.Context, ownerID int64, campaign models.Campaign) (string, error)
	// UpdateOne replaces the campaign fields and its whole help-method set.
	UpdateOne(ctx context.Context, campaignID int64, campaign models.Campaign) error
	// DeleteOne removes the campaign and returns the number of deleted rows.
	DeleteOne(ctx context.Context, campaignID int64) (int64, error)
}

type HelpMethodRepository interface {
	FindAll(ctx context.Context) ([]models.HelpMethod, error)
	FindOne(ctx context.Context, id int64) (models.HelpMethod, error)
	InsertOne(ctx context.Context, method models.HelpMethod) (int64, error)
	UpdateOne(ctx context.Context, method models.HelpMethod) error
	DeleteOne(ctx context.Context, id int64) error
}

type HelpDoneRepository interface {
	FindAll(ctx context.Context, campaignID int64) ([]models.HelpDone, error)
	FindOne(ctx context.Context, id int64) (models.HelpDone, error)
	InsertOne(ctx context.Context, helpDone models.HelpDone) (string, error)
	DeleteOne(ctx context.Context, id int64) error
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, id int64) (models.User, error)
	// InsertOne stores a new account and returns it with the generated id.
	InsertOne(ctx context.Context, user models.User) (models.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	DeleteOne(ctx context.Context, id int64) error
}

// ErrorClassificator maps driver errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
