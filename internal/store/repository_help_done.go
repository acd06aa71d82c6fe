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

// helpDoneRepository stores fulfilled donations. Reads join help_methods to
// fill in the method description.
type helpDoneRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewHelpDoneRepository constructs a [HelpDoneRepository] over db.
func NewHelpDoneRepository(db *DB, logger *logger.Logger) HelpDoneRepository {
	logger.Debug().Msg("creating help done repository")
	return &helpDoneRepository{
		db:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHelpDone(row rowScanner) (models.HelpDone, error) {
	var (
		helpDone models.HelpDone
		id       int64
	)
	if err := row.Scan(&id, &helpDone.CampaignID, &helpDone.MethodID, &helpDone.MethodDescription, &helpDone.LogDonation); err != nil {
		return models.HelpDone{}, err
	}
	helpDone.ID = strconv.FormatInt(id, 10)

	return helpDone, nil
}

func (r *helpDoneRepository) FindAll(ctx context.Context, campaignID int64) ([]models.HelpDone, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findAllHelpDone, campaignID)
	if err != nil {
		log.Err(err).Str("func", "helpDoneRepository.FindAll").Int64("campaign_id", campaignID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make([]models.HelpDone, 0, 16)
	for rows.Next() {
		helpDone, scanErr := scanHelpDone(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "helpDoneRepository.FindAll").Int64("campaign_id", campaignID).Msg("failed to scan help done row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		result = append(result, helpDone)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "helpDoneRepository.FindAll").Int64("campaign_id", campaignID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

func (r *helpDoneRepository) FindOne(ctx context.Context, id int64) (models.HelpDone, error) {
	log := logger.FromContext(ctx)

	helpDone, err := scanHelpDone(r.db.QueryRowContext(ctx, findHelpDone, id))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.HelpDone{}, ErrHelpDoneNotFound
	case err != nil:
		log.Err(err).Str("func", "helpDoneRepository.FindOne").Int64("help_done_id", id).Msg("failed to find help done")
		return models.HelpDone{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return helpDone, nil
}

func (r *helpDoneRepository) InsertOne(ctx context.Context, helpDone models.HelpDone) (string, error) {
	log := logger.FromContext(ctx)

	var id int64
	err := r.db.QueryRowContext(ctx, insertHelpDone, helpDone.CampaignID, helpDone.MethodID, helpDone.LogDonation).Scan(&id)
	if err != nil {
		if r.db.classify(err) == ForeignKeyViolation {
			switch _, constraint := postgresError(err); constraint {
			case constraintHelpDoneCampaign:
				return "", ErrCampaignNotFound
			case constraintHelpDoneHelpMethod:
				return "", ErrHelpMethodNotFound
			}
		}
		log.Err(err).
			Str("func", "helpDoneRepository.InsertOne").
			Int64("campaign_id", helpDone.CampaignID).
			Int64("help_method_id", helpDone.MethodID).
			Msg("failed to insert help done")
		return "", fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return strconv.FormatInt(id, 10), nil
}

func (r *helpDoneRepository) DeleteOne(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteHelpDone, id)
	if err != nil {
		log.Err(err).Str("func", "helpDoneRepository.DeleteOne").Int64("help_done_id", id).Msg("failed to delete help done")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(result, ErrHelpDoneNotFound)
}
