// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-help-campaigns/internal/logger"
	"github.com/MKhiriev/go-help-campaigns/internal/mock"
	"github.com/MKhiriev/go-help-campaigns/internal/store"
	"github.com/MKhiriev/go-help-campaigns/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// HelpMethodService
// ─────────────────────────────────────────────

func TestHelpMethodService_Delegation(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockHelpMethodRepository(ctrl)
	svc := NewHelpMethodService(repo, logger.Nop())
	ctx := context.Background()

	repo.EXPECT().FindAll(ctx).Return([]models.HelpMethod{{ID: 1, Description: "Money"}}, nil)
	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	repo.EXPECT().FindOne(ctx, int64(2)).Return(models.HelpMethod{}, store.ErrHelpMethodNotFound)
	_, err = svc.Get(ctx, 2)
	assert.ErrorIs(t, err, store.ErrHelpMethodNotFound)

	repo.EXPECT().InsertOne(ctx, models.HelpMethod{Description: "Food"}).Return(int64(3), nil)
	id, err := svc.Create(ctx, models.HelpMethod{Description: " Food "})
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)

	repo.EXPECT().UpdateOne(ctx, models.HelpMethod{ID: 3, Description: "Groceries"}).Return(nil)
	require.NoError(t, svc.Update(ctx, models.HelpMethod{ID: 3, Description: "Groceries"}))

	repo.EXPECT().DeleteOne(ctx, int64(3)).Return(store.ErrHelpMethodInUse)
	assert.ErrorIs(t, svc.Delete(ctx, 3), store.ErrHelpMethodInUse)
}

// ─────────────────────────────────────────────
// HelpDoneService
// ─────────────────────────────────────────────

func newTestHelpDoneSvc(t *testing.T) (HelpDoneService, *mock.MockHelpDoneRepository, *mock.MockCampaignRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	helpRepo := mock.NewMockHelpDoneRepository(ctrl)
	campaignRepo := mock.NewMockCampaignRepository(ctrl)
	return NewHelpDoneService(helpRepo, campaignRepo, logger.Nop()), helpRepo, campaignRepo
}

func TestHelpDoneService_List(t *testing.T) {
	svc, helpRepo, campaignRepo := newTestHelpDoneSvc(t)
	ctx := context.Background()

	campaignRepo.EXPECT().FindOwner(ctx, int64(1)).Return(int64(5), nil)
	helpRepo.EXPECT().FindAll(ctx, int64(1)).Return([]models.HelpDone{{ID: "1", CampaignID: 1}}, nil)

	list, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestHelpDoneService_List_UnknownCampaign(t *testing.T) {
	svc, _, campaignRepo := newTestHelpDoneSvc(t)
	ctx := context.Background()

	campaignRepo.EXPECT().FindOwner(ctx, int64(1)).Return(int64(0), store.ErrCampaignNotFound)

	_, err := svc.List(ctx, 1)
	assert.ErrorIs(t, err, store.ErrCampaignNotFound)
}

func TestHelpDoneService_Get_ScopedToCampaign(t *testing.T) {
	svc, helpRepo, _ := newTestHelpDoneSvc(t)
	ctx := context.Background()

	helpRepo.EXPECT().FindOne(ctx, int64(10)).Return(models.HelpDone{ID: "10", CampaignID: 1}, nil).Times(2)

	got, err := svc.Get(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, "10", got.ID)

	_, err = svc.Get(ctx, 2, 10)
	assert.ErrorIs(t, err, store.ErrHelpDoneNotFound)
}

func TestHelpDoneService_Delete(t *testing.T) {
	t.Run("same campaign", func(t *testing.T) {
		svc, helpRepo, _ := newTestHelpDoneSvc(t)
		ctx := context.Background()

		gomock.InOrder(
			helpRepo.EXPECT().FindOne(ctx, int64(10)).Return(models.HelpDone{ID: "10", CampaignID: 1}, nil),
			helpRepo.EXPECT().DeleteOne(ctx, int64(10)).Return(nil),
		)

		require.NoError(t, svc.Delete(ctx, 1, 10))
	})

	t.Run("other campaign is not deleted", func(t *testing.T) {
		svc, helpRepo, _ := newTestHelpDoneSvc(t)
		ctx := context.Background()

		helpRepo.EXPECT().FindOne(ctx, int64(10)).Return(models.HelpDone{ID: "10", CampaignID: 1}, nil)

		assert.ErrorIs(t, svc.Delete(ctx, 2, 10), store.ErrHelpDoneNotFound)
	})
}

func TestHelpDoneService_Create(t *testing.T) {
	svc, helpRepo, _ := newTestHelpDoneSvc(t)
	ctx := context.Background()

	helpRepo.EXPECT().
		InsertOne(ctx, models.HelpDone{CampaignID: 1, MethodID: 2, LogDonation: "5 kg rice"}).
		Return("11", nil)

	id, err := svc.Create(ctx, models.HelpDone{CampaignID: 1, MethodID: 2, LogDonation: " 5 kg rice "})
	require.NoError(t, err)
	assert.Equal(t, "11", id)
}
