// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/MKhiriev/go-help-campaigns/internal/logger"
	"github.com/MKhiriev/go-help-campaigns/internal/service"
	"github.com/MKhiriev/go-help-campaigns/models"
)

const validTestToken = "valid-token"

// ─────────────────────────────────────────────
// Function-field fakes of the services
// ─────────────────────────────────────────────

type fakeAuthService struct {
	signUpFn         func(ctx context.Context, user models.User) (models.User, error)
	signInFn         func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn    func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn     func(ctx context.Context, tokenString string) (models.Token, error)
	changePasswordFn func(ctx context.Context, userID int64, change models.PasswordChange) error
	deleteAccountFn  func(ctx context.Context, userID int64) error
}

func (f *fakeAuthService) SignUp(ctx context.Context, user models.User) (models.User, error) {
	if f.signUpFn != nil {
		return f.signUpFn(ctx, user)
	}
	return models.User{ID: 1}, nil
}

func (f *fakeAuthService) SignIn(ctx context.Context, user models.User) (models.User, error) {
	if f.signInFn != nil {
		return f.signInFn(ctx, user)
	}
	return models.User{ID: 1}, nil
}

func (f *fakeAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if f.createTokenFn != nil {
		return f.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "signed", ExpiresAt: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)}, nil
}

// ParseToken accepts validTestToken as user 1 unless overridden.
func (f *fakeAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if f.parseTokenFn != nil {
		return f.parseTokenFn(ctx, tokenString)
	}
	if tokenString == validTestToken {
		return models.Token{Claims: models.TokenClaims{ID: 1, Email: "owner@example.com"}}, nil
	}
	return models.Token{}, service.ErrInvalidToken
}

func (f *fakeAuthService) ChangePassword(ctx context.Context, userID int64, change models.PasswordChange) error {
	if f.changePasswordFn != nil {
		return f.changePasswordFn(ctx, userID, change)
	}
	return nil
}

func (f *fakeAuthService) DeleteAccount(ctx context.Context, userID int64) error {
	if f.deleteAccountFn != nil {
		return f.deleteAccountFn(ctx, userID)
	}
	return nil
}

type fakeCampaignService struct {
	listFn       func(ctx context.Context, filter models.CampaignFilter) ([]models.Campaign, error)
	getFn        func(ctx context.Context, campaignID int64) (models.Campaign, error)
	listByUserFn func(ctx context.Context, userID int64) ([]models.Campaign, error)
	createFn     func(ctx context.Context, ownerID int64, campaign models.Campaign) (string, error)
	updateFn     func(ctx context.Context, callerID, campaignID int64, campaign models.Campaign) error
	deleteFn     func(ctx context.Context, callerID, campaignID int64) error
}

func (f *fakeCampaignService) List(ctx context.Context, filter models.CampaignFilter) ([]models.Campaign, error) {
	if f.listFn != nil {
		return f.listFn(ctx, filter)
	}
	return []models.Campaign{}, nil
}

func (f *fakeCampaignService) Get(ctx context.Context, campaignID int64) (models.Campaign, error) {
	if f.getFn != nil {
		return f.getFn(ctx, campaignID)
	}
	return models.Campaign{}, nil
}

func (f *fakeCampaignService) ListByUser(ctx context.Context, userID int64) ([]models.Campaign, error) {
	if f.listByUserFn != nil {
		return f.listByUserFn(ctx, userID)
	}
	return []models.Campaign{}, nil
}

func (f *fakeCampaignService) Create(ctx context.Context, ownerID int64, campaign models.Campaign) (string, error) {
	if f.createFn != nil {
		return f.createFn(ctx, ownerID, campaign)
	}
	return "1", nil
}

func (f *fakeCampaignService) Update(ctx context.Context, callerID, campaignID int64, campaign models.Campaign) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, callerID, campaignID, campaign)
	}
	return nil
}

func (f *fakeCampaignService) Delete(ctx context.Context, callerID, campaignID int64) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, callerID, campaignID)
	}
	return nil
}

type fakeHelpMethodService struct {
	listFn   func(ctx context.Context) ([]models.HelpMethod, error)
	getFn    func(ctx context.Context, id int64) (models.HelpMethod, error)
	createFn func(ctx context.Context, method models.HelpMethod) (int64, error)
	updateFn func(ctx context.Context, method models.HelpMethod) error
	deleteFn func(ctx context.Context, id int64) error
}

func (f *fakeHelpMethodService) List(ctx context.Context) ([]models.HelpMethod, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return []models.HelpMethod{}, nil
}

func (f *fakeHelpMethodService) Get(ctx context.Context, id int64) (models.HelpMethod, error) {
	if f.getFn != nil {
		return f.getFn(ctx, id)
	}
	return models.HelpMethod{ID: id}, nil
}

func (f *fakeHelpMethodService) Create(ctx context.Context, method models.HelpMethod) (int64, error) {
	if f.createFn != nil {
		return f.createFn(ctx, method)
	}
	return 1, nil
}

func (f *fakeHelpMethodService) Update(ctx context.Context, method models.HelpMethod) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, method)
	}
	return nil
}

func (f *fakeHelpMethodService) Delete(ctx context.Context, id int64) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type fakeHelpDoneService struct {
	listFn   func(ctx context.Context, campaignID int64) ([]models.HelpDone, error)
	getFn    func(ctx context.Context, campaignID, id int64) (models.HelpDone, error)
	createFn func(ctx context.Context, helpDone models.HelpDone) (string, error)
	deleteFn func(ctx context.Context, campaignID, id int64) error
}

func (f *fakeHelpDoneService) List(ctx context.Context, campaignID int64) ([]models.HelpDone, error) {
	if f.listFn != nil {
		return f.listFn(ctx, campaignID)
	}
	return []models.HelpDone{}, nil
}

func (f *fakeHelpDoneService) Get(ctx context.Context, campaignID, id int64) (models.HelpDone, error) {
	if f.getFn != nil {
		return f.getFn(ctx, campaignID, id)
	}
	return models.HelpDone{}, nil
}

func (f *fakeHelpDoneService) Create(ctx context.Context, helpDone models.HelpDone) (string, error) {
	if f.createFn != nil {
		return f.createFn(ctx, helpDone)
	}
	return "1", nil
}

func (f *fakeHelpDoneService) Delete(ctx context.Context, campaignID, id int64) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, campaignID, id)
	}
	return nil
}

type fakeAppInfoService struct {
	version string
}

func (f *fakeAppInfoService) GetAppVersion(ctx context.Context) string {
	return f.version
}

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(ctx context.Context) error {
	return f.err
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// testServices fills every service with a default fake; tests override the
// ones they care about.
func testServices() *service.Services {
	return &service.Services{
		AuthService:       &fakeAuthService{},
		CampaignService:   &fakeCampaignService{},
		HelpMethodService: &fakeHelpMethodService{},
		HelpDoneService:   &fakeHelpDoneService{},
		AppInfoService:    &fakeAppInfoService{version: "test-version"},
	}
}

func newTestRouter(svcs *service.Services, opts ...Option) http.Handler {
	return NewHandler(svcs, logger.Nop(), opts...).Init()
}

// do sends a request through handler; a non-empty token is sent as a bearer
// Authorization header.
func do(handler http.Handler, method, target, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}
