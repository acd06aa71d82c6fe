// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-help-campaigns/internal/config"
	"github.com/MKhiriev/go-help-campaigns/internal/logger"
	"github.com/MKhiriev/go-help-campaigns/internal/store"
	"github.com/MKhiriev/go-help-campaigns/models"
)

type Services struct {
	AuthService       AuthService
	CampaignService   CampaignService
	HelpMethodService HelpMethodService
	HelpDoneService   HelpDoneService
	AppInfoService    AppInfoService
}

// NewServices builds every service over storages and wraps the mutating ones
// with request validation. build is the metadata linked into the binary.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	authService, err := NewAuthService(storages.UserRepository, cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating auth service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:       NewAuthValidationService().Wrap(authService),
		CampaignService:   NewCampaignValidationService().Wrap(NewCampaignService(storages.CampaignRepository, logger)),
		HelpMethodService: NewHelpMethodValidationService().Wrap(NewHelpMethodService(storages.HelpMethodRepository, logger)),
		HelpDoneService: NewHelpDoneValidationService().Wrap(
			NewHelpDoneService(storages.HelpDoneRepository, storages.CampaignRepository, logger),
		),
		AppInfoService: appInfoService,
	}, nil
}
