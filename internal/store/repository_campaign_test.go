// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-help-campaigns/internal/logger"
	"github.com/MKhiriev/go-help-campaigns/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCampaignRepo(t *testing.T) (*campaignRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return NewCampaignRepository(db, logger.Nop()).(*campaignRepository), mock
}

func TestCampaignRepository_FindAll_FoldsRows(t *testing.T) {
	repo, mock := newTestCampaignRepo(t)

	rows := sqlmock.NewRows(campaignColumns).
		AddRow(1, 10, "Food bank", "we need food", "555", 1, "food").
		AddRow(1, 10, "Food bank", "we need food", "555", 2, "money").
		AddRow(2, 11, "Books", "school books", "777", nil, nil)

	mock.ExpectQuery(`SELECT c\.id.*FROM campaigns c LEFT JOIN`).
		WithArgs("%food%", "%food%").
		WillReturnRows(rows)

	campaigns, err := repo.FindAll(context.Background(), models.CampaignFilter{SearchText: "food"})
	require.NoError(t, err)
	require.Len(t, campaigns, 2)

	assert.Equal(t, "1", campaigns[0].ID)
	assert.Equal(t, int64(10), campaigns[0].OwnerID)
	assert.Equal(t, []models.HelpMethod{{ID: 1, Description: "food"}, {ID: 2, Description: "money"}}, campaigns[0].HelpMethods)
	assert.Equal(t, "2", campaigns[1].ID)
	assert.Empty(t, campaigns[1].HelpMethods)
}

func TestCampaignRepository_FindAll_QueryError(t *testing.T) {
	repo, mock := newTestCampaignRepo(t)

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("connection reset"))

	_, err := repo.FindAll(context.Background(), models.CampaignFilter{})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestCampaignRepository_FindAll_ScanError(t *testing.T) {
	repo, mock := newTestCampaignRepo(t)

	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	_, err := repo.FindAll(context.Background(), models.CampaignFilter{})
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestCampaignRepository_FindByUser(t *testing.T) {
	repo, mock := newTestCampaignRepo(t)

	mock.ExpectQuery(`WHERE c\.user_id = \$1`).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows(campaignColumns).AddRow(3, 10, "t", "d", "c", 4, "food"))

	campaigns, err := repo.FindByUser(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, campaigns, 1)
	assert.Equal(t, "3", campaigns[0].ID)
}

func TestCampaignRepository_FindOne(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newTestCampaignRepo(t)
		mock.ExpectQuery(`WHERE c\.id = \$1`).
			WithArgs(5).
			WillReturnRows(sqlmock.NewRows(campaignColumns).AddRow(5, 10, "t", "d", "c", nil, nil))

		campaign, err := repo.FindOne(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, "5", campaign.ID)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestCampaignRepo(t)
		mock.ExpectQuery(`WHERE c\.id = \$1`).
			WithArgs(5).
			WillReturnRows(sqlmock.NewRows(campaignColumns))

		_, err := repo.FindOne(context.Background(), 5)
		assert.ErrorIs(t, err, ErrCampaignNotFound)
	})
}

func TestCampaignRepository_FindOwner(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newTestCampaignRepo(t)
		mock.ExpectQuery("SELECT user_id FROM campaigns").
			WithArgs(5).
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(10))

		owner, err := repo.FindOwner(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, int64(10), owner)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestCampaignRepo(t)
		mock.ExpectQuery("SELECT user_id FROM campaigns").
			WithArgs(5).
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

		_, err := repo.FindOwner(context.Background(), 5)
		assert.ErrorIs(t, err, ErrCampaignNotFound)
	})
}

// TestCampaignRepository_InsertOne verifies that the campaign row and one link
// per distinct help method are written in a single transaction.
func TestCampaignRepository_InsertOne(t *testing.T) {
	repo, mock := newTestCampaignRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO campaigns").
		WithArgs(10, "Food bank", "we need food", "555").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	prep := mock.ExpectPrepare("INSERT INTO campaign_help_methods")
	prep.ExpectExec().WithArgs(7, 3, 0).WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().WithArgs(7, 1, 1).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	id, err := repo.InsertOne(context.Background(), 10, models.Campaign{
		Title:       "Food bank",
		Description: "we need food",
		Contact:     "555",
		HelpMethods: []models.HelpMethod{{ID: 3}, {ID: 1}, {ID: 3}},
	})
	require.NoError(t, err)
	assert.Equal(t, "7", id)
}

func TestCampaignRepository_InsertOne_WithoutMethods(t *testing.T) {
	repo, mock := newTestCampaignRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO campaigns").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(8))
	mock.ExpectCommit()

	id, err := repo.InsertOne(context.Background(), 10, models.Campaign{Title: "t", Description: "d", Contact: "c"})
	require.NoError(t, err)
	assert.Equal(t, "8", id)
}

func TestCampaignRepository_InsertOne_UnknownHelpMethodRollsBack(t *testing.T) {
	repo, mock := newTestCampaignRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO campaigns").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	prep := mock.ExpectPrepare("INSERT INTO campaign_help_methods")
	prep.ExpectExec().
		WithArgs(7, 99, 0).
		WillReturnError(pgConstraintError(pgerrcode.ForeignKeyViolation, constraintCampaignLinkHelpMethod))
	mock.ExpectRollback()

	_, err := repo.InsertOne(context.Background(), 10, models.Campaign{
		Title:       "t",
		Description: "d",
		Contact:     "c",
		HelpMethods: []models.HelpMethod{{ID: 99}},
	})
	assert.ErrorIs(t, err, ErrHelpMethodNotFound)
}

func TestCampaignRepository_InsertOne_DeletedOwner(t *testing.T) {
	repo, mock := newTestCampaignRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO campaigns").
		WithArgs(10, "t", "d", "c").
		WillReturnError(pgConstraintError(pgerrcode.ForeignKeyViolation, constraintCampaignOwner))
	mock.ExpectRollback()

	_, err := repo.InsertOne(context.Background(), 10, models.Campaign{Title: "t", Description: "d", Contact: "c"})
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.NotErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignRepository_InsertOne_BeginError(t *testing.T) {
	repo, mock := newTestCampaignRepo(t)

	mock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

	_, err := repo.InsertOne(context.Background(), 10, models.Campaign{})
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

// TestCampaignRepository_UpdateOne verifies the full-replace semantics: the
// old links are deleted and the supplied set is inserted again.
func TestCampaignRepository_UpdateOne(t *testing.T) {
	repo, mock := newTestCampaignRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE campaigns").
		WithArgs("new title", "new description", "new contact", 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM campaign_help_methods").
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 2))
	prep := mock.ExpectPrepare("INSERT INTO campaign_help_methods")
	prep.ExpectExec().WithArgs(7, 2, 0).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateOne(context.Background(), 7, models.Campaign{
		Title:       "new title",
		Description: "new description",
		Contact:     "new contact",
		HelpMethods: []models.HelpMethod{{ID: 2}},
	})
	assert.NoError(t, err)
}

func TestCampaignRepository_UpdateOne_NotFound(t *testing.T) {
	repo, mock := newTestCampaignRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE campaigns").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.UpdateOne(context.Background(), 7, models.Campaign{})
	assert.ErrorIs(t, err, ErrCampaignNotFound)
}

func TestCampaignRepository_UpdateOne_CommitError(t *testing.T) {
	repo, mock := newTestCampaignRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE campaigns").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM campaign_help_methods").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))

	err := repo.UpdateOne(context.Background(), 7, models.Campaign{})
	assert.ErrorIs(t, err, ErrCommitingTransaction)
}

func TestCampaignRepository_DeleteOne(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		repo, mock := newTestCampaignRepo(t)
		mock.ExpectExec("DELETE FROM campaigns").WithArgs(7).WillReturnResult(sqlmock.NewResult(0, 1))

		affected, err := repo.DeleteOne(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestCampaignRepo(t)
		mock.ExpectExec("DELETE FROM campaigns").WithArgs(7).WillReturnResult(sqlmock.NewResult(0, 0))

		_, err := repo.DeleteOne(context.Background(), 7)
		assert.ErrorIs(t, err, ErrCampaignNotFound)
	})

	t.Run("driver error", func(t *testing.T) {
		repo, mock := newTestCampaignRepo(t)
		mock.ExpectExec("DELETE FROM campaigns").WithArgs(7).WillReturnError(pgError(pgerrcode.ConnectionFailure))

		_, err := repo.DeleteOne(context.Background(), 7)
		assert.ErrorIs(t, err, ErrExecutingStatement)
	})
}
