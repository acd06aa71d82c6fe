// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-help-campaigns/internal/logger"
	"github.com/MKhiriev/go-help-campaigns/internal/store"
	"github.com/MKhiriev/go-help-campaigns/models"
)

type campaignService struct {
	campaignRepository store.CampaignRepository

	logger *logger.Logger
}

func NewCampaignService(campaignRepository store.CampaignRepository, logger *logger.Logger) CampaignService {
	return &campaignService{
		campaignRepository: campaignRepository,
		logger:             logger,
	}
}

func (c *campaignService) List(ctx context.Context, filter models.CampaignFilter) ([]models.Campaign, error) {
	filter.SearchText = strings.TrimSpace(filter.SearchText)
	return c.campaignRepository.FindAll(ctx, filter)
}

func (c *campaignService) Get(ctx context.Context, campaignID int64) (models.Campaign, error) {
	return c.campaignRepository.FindOne(ctx, campaignID)
}

func (c *campaignService) ListByUser(ctx context.Context, userID int64) ([]models.Campaign, error) {
	return c.campaignRepository.FindByUser(ctx, userID)
}

func (c *campaignService) Create(ctx context.Context, ownerID int64, campaign models.Campaign) (string, error) {
	if ownerID <= 0 {
		return "", ErrNoAuthenticatedUser
	}
	campaign.OwnerID = ownerID
	id, err := c.campaignRepository.InsertOne(ctx, ownerID, campaign)
	if errors.Is(err, store.ErrUserNotFound) {
		// token outlived its account
		return "", fmt.Errorf("%w: %w", ErrNoAuthenticatedUser, err)
	}
	return id, err
}

func (c *campaignService) Update(ctx context.Context, callerID, campaignID int64, campaign models.Campaign) error {
	if err := c.checkOwner(ctx, callerID, campaignID); err != nil {
		return err
	}
	return c.campaignRepository.UpdateOne(ctx, campaignID, campaign)
}

func (c *campaignService) Delete(ctx context.Context, callerID, campaignID int64) error {
	if err := c.checkOwner(ctx, callerID, campaignID); err != nil {
		return err
	}

	deleted, err := c.campaignRepository.DeleteOne(ctx, campaignID)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Info().Int64("campaign_id", campaignID).Int64("deleted", deleted).Msg("campaign deleted")
	return nil
}

// checkOwner resolves the owner first so that a missing campaign is reported
// as not found rather than forbidden.
func (c *campaignService) checkOwner(ctx context.Context, callerID, campaignID int64) error {
	if callerID <= 0 {
		return ErrNoAuthenticatedUser
	}

	ownerID, err := c.campaignRepository.FindOwner(ctx, campaignID)
	if err != nil {
		return err
	}

	if ownerID != callerID {
		logger.FromContext(ctx).Warn().
			Int64("campaign_id", campaignID).
			Int64("owner_id", ownerID).
			Int64("caller_id", callerID).
			Msg("campaign change by non-owner rejected")
		return fmt.Errorf("%w: campaign %d", ErrForbidden, campaignID)
	}

	return nil
}
