// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDB_WithTx_Commit(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE help_methods").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := db.WithTx(context.Background(), func(tx *sql.Tx) error {
		_, err := tx.Exec(updateHelpMethod, "food", 1)
		return err
	})
	assert.NoError(t, err)
}

func TestDB_WithTx_RollbackOnError(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := db.WithTx(context.Background(), func(tx *sql.Tx) error {
		return ErrCampaignNotFound
	})
	assert.ErrorIs(t, err, ErrCampaignNotFound)
}

func TestDB_WithTx_RollbackOnPanic(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.PanicsWithValue(t, "boom", func() {
		_ = db.WithTx(context.Background(), func(tx *sql.Tx) error {
			panic("boom")
		})
	})
}

func TestDB_WithTx_BeginError(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	called := false
	err := db.WithTx(context.Background(), func(tx *sql.Tx) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrBeginningTransaction)
	assert.False(t, called)
}

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, NonRetryable},
		{"plain error", errors.New("x"), NonRetryable},
		{"unique", pgError(pgerrcode.UniqueViolation), UniqueViolation},
		{"foreign key", pgError(pgerrcode.ForeignKeyViolation), ForeignKeyViolation},
		{"restrict", pgError(pgerrcode.RestrictViolation), ForeignKeyViolation},
		{"wrapped unique", fmt.Errorf("insert: %w", pgError(pgerrcode.UniqueViolation)), UniqueViolation},
		{"deadlock", pgError(pgerrcode.DeadlockDetected), Retryable},
		{"connection", pgError(pgerrcode.ConnectionFailure), Retryable},
		{"syntax", pgError(pgerrcode.SyntaxError), NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestErrorClassification_String(t *testing.T) {
	assert.Equal(t, "unique_violation", UniqueViolation.String())
	assert.Equal(t, "foreign_key_violation", ForeignKeyViolation.String())
	assert.Equal(t, "retryable", Retryable.String())
	assert.Equal(t, "non_retryable", NonRetryable.String())
}

func TestPostgresError(t *testing.T) {
	code, constraint := postgresError(fmt.Errorf("wrapped: %w", &pgconn.PgError{
		Code:           pgerrcode.ForeignKeyViolation,
		ConstraintName: constraintHelpDoneCampaign,
	}))
	assert.Equal(t, pgerrcode.ForeignKeyViolation, code)
	assert.Equal(t, constraintHelpDoneCampaign, constraint)

	code, constraint = postgresError(errors.New("plain"))
	assert.Empty(t, code)
	assert.Empty(t, constraint)
}

func TestStorages_FromDB(t *testing.T) {
	db, _ := newTestDB(t)

	s := NewStoragesFromDB(db, db.logger)
	require.NotNil(t, s.CampaignRepository)
	require.NotNil(t, s.HelpMethodRepository)
	require.NotNil(t, s.HelpDoneRepository)
	require.NotNil(t, s.UserRepository)
	assert.NoError(t, s.Ping(context.Background()))
}
