// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-help-campaigns/internal/logger"
	"github.com/MKhiriev/go-help-campaigns/models"
)

type helpMethodRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewHelpMethodRepository constructs a [HelpMethodRepository] over db.
func NewHelpMethodRepository(db *DB, logger *logger.Logger) HelpMethodRepository {
	logger.Debug().Msg("creating help method repository")
	return &helpMethodRepository{
		db:     db,
		logger: logger,
	}
}

func (r *helpMethodRepository) FindAll(ctx context.Context) ([]models.HelpMethod, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findAllHelpMethods)
	if err != nil {
		log.Err(err).Str("func", "helpMethodRepository.FindAll").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	methods := make([]models.HelpMethod, 0, 16)
	for rows.Next() {
		var method models.HelpMethod
		if err = rows.Scan(&method.ID, &method.Description); err != nil {
			log.Err(err).Str("func", "helpMethodRepository.FindAll").Msg("failed to scan help method row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		methods = append(methods, method)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "helpMethodRepository.FindAll").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return methods, nil
}

func (r *helpMethodRepository) FindOne(ctx context.Context, id int64) (models.HelpMethod, error) {
	log := logger.FromContext(ctx)

	var method models.HelpMethod
	err := r.db.QueryRowContext(ctx, findHelpMethod, id).Scan(&method.ID, &method.Description)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.HelpMethod{}, ErrHelpMethodNotFound
	case err != nil:
		log.Err(err).Str("func", "helpMethodRepository.FindOne").Int64("help_method_id", id).Msg("failed to find help method")
		return models.HelpMethod{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return method, nil
}

func (r *helpMethodRepository) InsertOne(ctx context.Context, method models.HelpMethod) (int64, error) {
	log := logger.FromContext(ctx)

	var id int64
	if err := r.db.QueryRowContext(ctx, insertHelpMethod, method.Description).Scan(&id); err != nil {
		log.Err(err).Str("func", "helpMethodRepository.InsertOne").Msg("failed to insert help method")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return id, nil
}

func (r *helpMethodRepository) UpdateOne(ctx context.Context, method models.HelpMethod) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateHelpMethod, method.Description, method.ID)
	if err != nil {
		log.Err(err).Str("func", "helpMethodRepository.UpdateOne").Int64("help_method_id", method.ID).Msg("failed to update help method")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(result, ErrHelpMethodNotFound)
}

func (r *helpMethodRepository) DeleteOne(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteHelpMethod, id)
	if err != nil {
		if r.db.classify(err) == ForeignKeyViolation {
			return ErrHelpMethodInUse
		}
		log.Err(err).Str("func", "helpMethodRepository.DeleteOne").Int64("help_method_id", id).Msg("failed to delete help method")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(result, ErrHelpMethodNotFound)
}

// expectAffected returns notFound when the statement changed no row.
func expectAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
