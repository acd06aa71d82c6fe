// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-help-campaigns/internal/app"
	"github.com/MKhiriev/go-help-campaigns/internal/service"
	"github.com/MKhiriev/go-help-campaigns/internal/store"
	"github.com/MKhiriev/go-help-campaigns/internal/validators"
	"github.com/MKhiriev/go-help-campaigns/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func helpDoneTestServices(records service.HelpDoneService) *service.Services {
	svcs := testServices()
	svcs.HelpDoneService = service.NewHelpDoneValidationService().Wrap(records)
	return svcs
}

func TestListHelpDone(t *testing.T) {
	records := &fakeHelpDoneService{
		listFn: func(ctx context.Context, campaignID int64) ([]models.HelpDone, error) {
			if campaignID != 3 {
				return nil, store.ErrCampaignNotFound
			}
			return []models.HelpDone{{ID: "1", CampaignID: 3, MethodID: 2, MethodDescription: "Food", LogDonation: "Two boxes"}}, nil
		},
	}
	router := newTestRouter(helpDoneTestServices(records))

	rr := do(router, http.MethodGet, "/campaigns/3/help", "", validTestToken)
	require.Equal(t, http.StatusOK, rr.Code)

	var list []models.HelpDone
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Food", list[0].MethodDescription)

	rr = do(router, http.MethodGet, "/campaigns/4/help", "", validTestToken)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(router, http.MethodGet, "/campaigns/3/help", "", "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGetHelpDone(t *testing.T) {
	records := &fakeHelpDoneService{
		getFn: func(ctx context.Context, campaignID, id int64) (models.HelpDone, error) {
			if campaignID != 3 {
				return models.HelpDone{}, store.ErrHelpDoneNotFound
			}
			return models.HelpDone{ID: "8", CampaignID: campaignID, MethodID: 1, LogDonation: "Cash"}, nil
		},
	}
	router := newTestRouter(helpDoneTestServices(records))

	rr := do(router, http.MethodGet, "/campaigns/3/help/8", "", validTestToken)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"logDonation":"Cash"`)

	rr = do(router, http.MethodGet, "/campaigns/5/help/8", "", validTestToken)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(router, http.MethodGet, "/campaigns/3/help/x", "", validTestToken)
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	var body validators.ValidationErrors
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "helpId", body.Errors[0].Param)
}

func TestCreateHelpDone(t *testing.T) {
	var got models.HelpDone
	records := &fakeHelpDoneService{
		createFn: func(ctx context.Context, helpDone models.HelpDone) (string, error) {
			got = helpDone
			return "21", nil
		},
	}
	router := newTestRouter(helpDoneTestServices(records))

	rr := do(router, http.MethodPost, "/campaigns/3/help", `{"campaignId":99,"methodId":2,"logDonation":"Three bags of rice"}`, validTestToken)
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp models.CampaignResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "21", resp.ID)
	assert.Equal(t, app.MsgHelpRegistered, resp.Message)
	assert.Equal(t, int64(3), got.CampaignID, "campaign comes from the path")
	assert.Equal(t, int64(2), got.MethodID)

	rr = do(router, http.MethodPost, "/campaigns/3/help", `{"methodId":0,"logDonation":"ok"}`, validTestToken)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestDeleteHelpDone(t *testing.T) {
	var gotCampaign, gotID int64
	records := &fakeHelpDoneService{
		deleteFn: func(ctx context.Context, campaignID, id int64) error {
			gotCampaign, gotID = campaignID, id
			return nil
		},
	}
	router := newTestRouter(helpDoneTestServices(records))

	rr := do(router, http.MethodDelete, "/campaigns/3/help/8", "", validTestToken)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, int64(3), gotCampaign)
	assert.Equal(t, int64(8), gotID)
}
