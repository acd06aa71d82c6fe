// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the campaign API.
//
// [ServerAdapter] hides the transport from the command-line client. The HTTP
// implementation ([NewHTTPServerAdapter]) maps response statuses onto the
// sentinel errors in errors.go so callers can use [errors.Is] (e.g.
// [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-help-campaigns/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the campaign server.
// Implementations handle serialisation, the Authorization header and the
// mapping of error statuses.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token or an empty string.
	Token() string

	// SignUp registers a new account. The server does not return a token;
	// call SignIn afterwards.
	SignUp(ctx context.Context, user models.User) error

	// SignIn authenticates with email and password and stores the returned
	// token via SetToken.
	SignIn(ctx context.Context, email, password string) (models.Authentication, error)

	ChangePassword(ctx context.Context, change models.PasswordChange) error
	DeleteAccount(ctx context.Context) error

	ListCampaigns(ctx context.Context, filter models.CampaignFilter) ([]models.Campaign, error)
	GetCampaign(ctx context.Context, id int64) (models.Campaign, error)
	ListUserCampaigns(ctx context.Context, userID int64) ([]models.Campaign, error)
	CreateCampaign(ctx context.Context, campaign models.Campaign) (models.CampaignResponse, error)
	UpdateCampaign(ctx context.Context, id int64, campaign models.Campaign) error
	DeleteCampaign(ctx context.Context, id int64) error

	ListHelpMethods(ctx context.Context) ([]models.HelpMethod, error)
	CreateHelpMethod(ctx context.Context, method models.HelpMethod) (string, error)
	DeleteHelpMethod(ctx context.Context, id int64) error

	ListHelpDone(ctx context.Context, campaignID int64) ([]models.HelpDone, error)
	RegisterHelp(ctx context.Context, campaignID int64, help models.HelpDone) (models.CampaignResponse, error)

	// ServerVersion returns the plain-text version reported by the server.
	ServerVersion(ctx context.Context) (string, error)

	// Health returns nil when the server and its database are up.
	Health(ctx context.Context) error
}
