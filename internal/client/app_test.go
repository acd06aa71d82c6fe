// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-help-campaigns/internal/adapter"
	"github.com/MKhiriev/go-help-campaigns/internal/logger"
	"github.com/MKhiriev/go-help-campaigns/internal/mock"
	"github.com/MKhiriev/go-help-campaigns/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestApp(t *testing.T) (*App, *mock.MockServerAdapter, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := mock.NewMockServerAdapter(ctrl)
	out := &bytes.Buffer{}
	return NewApp(m, out, logger.Nop()), m, out
}

func TestRun_NoCommand(t *testing.T) {
	app, _, out := newTestApp(t)

	err := app.Run(context.Background(), nil)

	assert.ErrorIs(t, err, ErrNoCommand)
	assert.Contains(t, out.String(), "usage:")
}

func TestRun_UnknownCommand(t *testing.T) {
	app, _, _ := newTestApp(t)

	err := app.Run(context.Background(), []string{"launch"})

	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestRun_Version(t *testing.T) {
	app, m, out := newTestApp(t)
	m.EXPECT().ServerVersion(gomock.Any()).Return("1.2.3", nil)

	require.NoError(t, app.Run(context.Background(), []string{"version"}))
	assert.Equal(t, "1.2.3\n", out.String())
}

func TestRun_HealthFailure(t *testing.T) {
	app, m, _ := newTestApp(t)
	m.EXPECT().Health(gomock.Any()).Return(adapter.ErrServiceUnavailable)

	err := app.Run(context.Background(), []string{"health"})
	assert.ErrorIs(t, err, adapter.ErrServiceUnavailable)
}

func TestRun_SignUp(t *testing.T) {
	app, m, out := newTestApp(t)
	m.EXPECT().SignUp(gomock.Any(), models.User{
		Email:       "maria@example.com",
		Password:    "secret",
		Name:        "Maria",
		LastName:    "Silva",
		DateOfBirth: "1990-05-17",
		City:        "Sao Paulo",
		State:       "SP",
	}).Return(nil)

	err := app.Run(context.Background(), []string{
		"signup", "-email", "maria@example.com", "-password", "secret", "-name", "Maria",
		"-last-name", "Silva", "-birth", "1990-05-17", "-city", "Sao Paulo", "-state", "SP",
	})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "account created")
}

func TestRun_SignIn(t *testing.T) {
	app, m, out := newTestApp(t)
	expires := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	m.EXPECT().SignIn(gomock.Any(), "maria@example.com", "secret").
		Return(models.Authentication{Token: "jwt", ExpiresIn: expires}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"signin", "-email", "maria@example.com", "-password", "secret"}))

	var auth models.Authentication
	require.NoError(t, json.Unmarshal(out.Bytes(), &auth))
	assert.Equal(t, "jwt", auth.Token)
}

func TestRun_Campaigns(t *testing.T) {
	app, m, out := newTestApp(t)
	m.EXPECT().
		ListCampaigns(gomock.Any(), models.CampaignFilter{SearchText: "food", HelpMethodIDs: []int64{1, 3}}).
		Return([]models.Campaign{{ID: "7", Title: "Food bank"}}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"campaigns", "-q", "food", "-filter", "1", "-filter", "3"}))

	var list []models.Campaign
	require.NoError(t, json.Unmarshal(out.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Food bank", list[0].Title)
}

func TestRun_CampaignsBadFilter(t *testing.T) {
	app, _, _ := newTestApp(t)

	err := app.Run(context.Background(), []string{"campaigns", "-filter", "x"})
	assert.Error(t, err)
}

func TestRun_GetCampaign(t *testing.T) {
	app, m, _ := newTestApp(t)
	m.EXPECT().GetCampaign(gomock.Any(), int64(7)).Return(models.Campaign{}, adapter.ErrNotFound)

	err := app.Run(context.Background(), []string{"campaign", "7"})
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestRun_MissingID(t *testing.T) {
	app, _, _ := newTestApp(t)

	for _, cmd := range []string{"campaign", "user-campaigns", "delete-campaign", "help", "donate", "delete-method"} {
		t.Run(cmd, func(t *testing.T) {
			err := app.Run(context.Background(), []string{cmd})
			assert.ErrorIs(t, err, ErrMissingArg)
		})
	}
}

func TestRun_CreateCampaign(t *testing.T) {
	app, m, out := newTestApp(t)
	m.EXPECT().CreateCampaign(gomock.Any(), models.Campaign{
		Title:       "Winter clothes",
		Description: "Coats for the shelter",
		Contact:     "+55 11 5555-0000",
		HelpMethods: []models.HelpMethod{{ID: 1}, {ID: 2}},
	}).Return(models.CampaignResponse{ID: "15", Message: "Campaign created successfully"}, nil)

	err := app.Run(context.Background(), []string{
		"create-campaign", "-title", "Winter clothes", "-description", "Coats for the shelter",
		"-contact", "+55 11 5555-0000", "-methods", "1, 2",
	})

	require.NoError(t, err)
	assert.Contains(t, out.String(), `"id": "15"`)
}

func TestRun_UpdateCampaign(t *testing.T) {
	app, m, _ := newTestApp(t)
	m.EXPECT().UpdateCampaign(gomock.Any(), int64(5), gomock.Any()).Return(adapter.ErrForbidden)

	err := app.Run(context.Background(), []string{"update-campaign", "5", "-title", "New title"})
	assert.ErrorIs(t, err, adapter.ErrForbidden)
}

func TestRun_Donate(t *testing.T) {
	app, m, out := newTestApp(t)
	m.EXPECT().RegisterHelp(gomock.Any(), int64(3), models.HelpDone{MethodID: 2, LogDonation: "Rice"}).
		Return(models.CampaignResponse{ID: "9", Message: "Help registered successfully"}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"donate", "3", "-method", "2", "-log", "Rice"}))
	assert.Contains(t, out.String(), "Help registered successfully")
}

func TestRun_HelpMethods(t *testing.T) {
	app, m, out := newTestApp(t)
	gomock.InOrder(
		m.EXPECT().CreateHelpMethod(gomock.Any(), models.HelpMethod{Description: "Books"}).Return("4", nil),
		m.EXPECT().ListHelpMethods(gomock.Any()).Return([]models.HelpMethod{{ID: 4, Description: "Books"}}, nil),
		m.EXPECT().DeleteHelpMethod(gomock.Any(), int64(4)).Return(errors.New("boom")),
	)
	ctx := context.Background()

	require.NoError(t, app.Run(ctx, []string{"add-method", "-description", "Books"}))
	require.NoError(t, app.Run(ctx, []string{"methods"}))
	assert.Error(t, app.Run(ctx, []string{"delete-method", "4"}))
	assert.Contains(t, out.String(), `"description": "Books"`)
}

func TestRun_AccountCommands(t *testing.T) {
	app, m, out := newTestApp(t)
	m.EXPECT().ChangePassword(gomock.Any(), models.PasswordChange{CurrentPassword: "old", NewPassword: "newer"}).Return(nil)
	m.EXPECT().DeleteAccount(gomock.Any()).Return(nil)
	ctx := context.Background()

	require.NoError(t, app.Run(ctx, []string{"password", "-current", "old", "-new", "newer"}))
	require.NoError(t, app.Run(ctx, []string{"delete-account"}))
	assert.Contains(t, out.String(), "password changed")
	assert.Contains(t, out.String(), "account deleted")
}

func TestParseCampaign_InvalidMethod(t *testing.T) {
	_, err := parseCampaign("create-campaign", []string{"-methods", "1,x"})
	assert.Error(t, err)
}
