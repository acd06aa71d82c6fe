// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-help-campaigns/internal/config"
	"github.com/MKhiriev/go-help-campaigns/internal/logger"
)

// Storages bundles every repository built over one connection pool.
type Storages struct {
	DB                   *DB
	UserRepository       UserRepository
	CampaignRepository   CampaignRepository
	HelpMethodRepository HelpMethodRepository
	HelpDoneRepository   HelpDoneRepository
}

// NewStorages connects to PostgreSQL, applies pending migrations and builds
// the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("failed to apply migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return NewStoragesFromDB(db, log), nil
}

// NewStoragesFromDB builds the repositories over an existing pool.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		DB:                   db,
		UserRepository:       NewUserRepository(db, log),
		CampaignRepository:   NewCampaignRepository(db, log),
		HelpMethodRepository: NewHelpMethodRepository(db, log),
		HelpDoneRepository:   NewHelpDoneRepository(db, log),
	}
}

// Ping reports whether the database answers.
func (s *Storages) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	return s.DB.Close()
}
