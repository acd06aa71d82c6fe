// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-help-campaigns/internal/logger"
	"github.com/MKhiriev/go-help-campaigns/models"
)

// campaignRepository is the PostgreSQL-backed implementation of
// [CampaignRepository]. Reads join campaigns with campaign_help_methods and
// help_methods and fold the rows; writes touch campaigns and its link table
// inside one transaction.
type campaignRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCampaignRepository constructs a [CampaignRepository] over db.
func NewCampaignRepository(db *DB, logger *logger.Logger) CampaignRepository {
	logger.Debug().Msg("creating campaign repository")
	return &campaignRepository{
		db:     db,
		logger: logger,
	}
}

func (r *campaignRepository) FindAll(ctx context.Context, filter models.CampaignFilter) ([]models.Campaign, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindCampaignsQuery(filter.SearchText, filter.HelpMethodIDs)
	if err != nil {
		log.Err(err).Str("func", "campaignRepository.FindAll").Msg("failed to build query")
		return nil, err
	}

	return r.find(ctx, "campaignRepository.FindAll", query, args...)
}

func (r *campaignRepository) FindByUser(ctx context.Context, userID int64) ([]models.Campaign, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindCampaignsByUserQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "campaignRepository.FindByUser").Int64("user_id", userID).Msg("failed to build query")
		return nil, err
	}

	return r.find(ctx, "campaignRepository.FindByUser", query, args...)
}

func (r *campaignRepository) FindOne(ctx context.Context, campaignID int64) (models.Campaign, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindCampaignQuery(campaignID)
	if err != nil {
		log.Err(err).Str("func", "campaignRepository.FindOne").Int64("campaign_id", campaignID).Msg("failed to build query")
		return models.Campaign{}, err
	}

	campaigns, err := r.find(ctx, "campaignRepository.FindOne", query, args...)
	if err != nil {
		return models.Campaign{}, err
	}
	if len(campaigns) == 0 {
		return models.Campaign{}, ErrCampaignNotFound
	}

	return campaigns[0], nil
}

func (r *campaignRepository) find(ctx context.Context, funcName, query string, args ...any) ([]models.Campaign, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Str("class", r.db.classify(err).String()).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	joined, err := scanCampaignRows(rows)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to scan campaign rows")
		return nil, err
	}

	return foldCampaigns(joined), nil
}

func (r *campaignRepository) FindOwner(ctx context.Context, campaignID int64) (int64, error) {
	log := logger.FromContext(ctx)

	var ownerID int64
	err := r.db.QueryRowContext(ctx, findCampaignOwner, campaignID).Scan(&ownerID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return 0, ErrCampaignNotFound
	case err != nil:
		log.Err(err).Str("func", "campaignRepository.FindOwner").Int64("campaign_id", campaignID).Msg("failed to find campaign owner")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return ownerID, nil
}

func (r *campaignRepository) InsertOne(ctx context.Context, ownerID int64, campaign models.Campaign) (string, error) {
	log := logger.FromContext(ctx)

	var campaignID int64
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, insertCampaign,
			ownerID,
			campaign.Title,
			campaign.Description,
			campaign.Contact,
		).Scan(&campaignID); err != nil {
			if _, constraint := postgresError(err); r.db.classify(err) == ForeignKeyViolation && constraint == constraintCampaignOwner {
				return ErrUserNotFound
			}
			log.Err(err).Str("func", "campaignRepository.InsertOne").Int64("user_id", ownerID).Msg("failed to insert campaign")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return r.insertHelpMethods(ctx, tx, campaignID, campaign.HelpMethodIDs())
	})
	if err != nil {
		return "", err
	}

	log.Debug().Str("func", "campaignRepository.InsertOne").Int64("campaign_id", campaignID).Msg("campaign created")
	return strconv.FormatInt(campaignID, 10), nil
}

func (r *campaignRepository) UpdateOne(ctx context.Context, campaignID int64, campaign models.Campaign) error {
	log := logger.FromContext(ctx)

	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, updateCampaign,
			campaign.Title,
			campaign.Description,
			campaign.Contact,
			campaignID,
		)
		if err != nil {
			log.Err(err).Str("func", "campaignRepository.UpdateOne").Int64("campaign_id", campaignID).Msg("failed to update campaign")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected == 0 {
			return ErrCampaignNotFound
		}

		if _, err = tx.ExecContext(ctx, deleteCampaignHelpMethods, campaignID); err != nil {
			log.Err(err).Str("func", "campaignRepository.UpdateOne").Int64("campaign_id", campaignID).Msg("failed to unlink help methods")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return r.insertHelpMethods(ctx, tx, campaignID, campaign.HelpMethodIDs())
	})
}

// insertHelpMethods links methodIDs to the campaign, keeping their order in
// the position column.
func (r *campaignRepository) insertHelpMethods(ctx context.Context, tx *sql.Tx, campaignID int64, methodIDs []int64) error {
	if len(methodIDs) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)

	stmt, err := tx.PrepareContext(ctx, insertCampaignHelpMethod)
	if err != nil {
		log.Err(err).Str("func", "campaignRepository.insertHelpMethods").Int64("campaign_id", campaignID).Msg("failed to prepare statement")
		return fmt.Errorf("%w: %w", ErrPreparingStatement, err)
	}
	defer stmt.Close()

	for position, methodID := range methodIDs {
		if _, err = stmt.ExecContext(ctx, campaignID, methodID, position); err != nil {
			log.Err(err).
				Str("func", "campaignRepository.insertHelpMethods").
				Int64("campaign_id", campaignID).
				Int64("help_method_id", methodID).
				Msg("failed to link help method")

			if _, constraint := postgresError(err); r.db.classify(err) == ForeignKeyViolation &&
				(constraint == "" || constraint == constraintCampaignLinkHelpMethod) {
				return fmt.Errorf("%w: %d", ErrHelpMethodNotFound, methodID)
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

func (r *campaignRepository) DeleteOne(ctx context.Context, campaignID int64) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteCampaign, campaignID)
	if err != nil {
		log.Err(err).Str("func", "campaignRepository.DeleteOne").Int64("campaign_id", campaignID).Msg("failed to delete campaign")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return 0, ErrCampaignNotFound
	}

	return affected, nil
}
