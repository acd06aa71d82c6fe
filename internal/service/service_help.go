// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-help-campaigns/internal/logger"
	"github.com/MKhiriev/go-help-campaigns/internal/store"
	"github.com/MKhiriev/go-help-campaigns/models"
)

type helpMethodService struct {
	helpMethodRepository store.HelpMethodRepository

	logger *logger.Logger
}

func NewHelpMethodService(helpMethodRepository store.HelpMethodRepository, logger *logger.Logger) HelpMethodService {
	return &helpMethodService{
		helpMethodRepository: helpMethodRepository,
		logger:               logger,
	}
}

func (h *helpMethodService) List(ctx context.Context) ([]models.HelpMethod, error) {
	return h.helpMethodRepository.FindAll(ctx)
}

func (h *helpMethodService) Get(ctx context.Context, id int64) (models.HelpMethod, error) {
	return h.helpMethodRepository.FindOne(ctx, id)
}

func (h *helpMethodService) Create(ctx context.Context, method models.HelpMethod) (int64, error) {
	method.Description = strings.TrimSpace(method.Description)
	return h.helpMethodRepository.InsertOne(ctx, method)
}

func (h *helpMethodService) Update(ctx context.Context, method models.HelpMethod) error {
	method.Description = strings.TrimSpace(method.Description)
	return h.helpMethodRepository.UpdateOne(ctx, method)
}

func (h *helpMethodService) Delete(ctx context.Context, id int64) error {
	return h.helpMethodRepository.DeleteOne(ctx, id)
}

type helpDoneService struct {
	helpDoneRepository store.HelpDoneRepository
	campaignRepository store.CampaignRepository

	logger *logger.Logger
}

func NewHelpDoneService(helpDoneRepository store.HelpDoneRepository, campaignRepository store.CampaignRepository, logger *logger.Logger) HelpDoneService {
	return &helpDoneService{
		helpDoneRepository: helpDoneRepository,
		campaignRepository: campaignRepository,
		logger:             logger,
	}
}

// List returns store.ErrCampaignNotFound for an unknown campaign instead of
// an empty list.
func (h *helpDoneService) List(ctx context.Context, campaignID int64) ([]models.HelpDone, error) {
	if _, err := h.campaignRepository.FindOwner(ctx, campaignID); err != nil {
		return nil, err
	}
	return h.helpDoneRepository.FindAll(ctx, campaignID)
}

func (h *helpDoneService) Get(ctx context.Context, campaignID, id int64) (models.HelpDone, error) {
	helpDone, err := h.helpDoneRepository.FindOne(ctx, id)
	if err != nil {
		return models.HelpDone{}, err
	}

	if helpDone.CampaignID != campaignID {
		logger.FromContext(ctx).Debug().
			Int64("help_done_id", id).
			Int64("campaign_id", campaignID).
			Int64("actual_campaign_id", helpDone.CampaignID).
			Msg("help done requested under another campaign")
		return models.HelpDone{}, store.ErrHelpDoneNotFound
	}

	return helpDone, nil
}

func (h *helpDoneService) Create(ctx context.Context, helpDone models.HelpDone) (string, error) {
	helpDone.LogDonation = strings.TrimSpace(helpDone.LogDonation)
	return h.helpDoneRepository.InsertOne(ctx, helpDone)
}

func (h *helpDoneService) Delete(ctx context.Context, campaignID, id int64) error {
	if _, err := h.Get(ctx, campaignID, id); err != nil {
		return err
	}
	return h.helpDoneRepository.DeleteOne(ctx, id)
}
