// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-help-campaigns/internal/config"
	"github.com/MKhiriev/go-help-campaigns/internal/logger"
	"github.com/MKhiriev/go-help-campaigns/internal/utils"
	"github.com/MKhiriev/go-help-campaigns/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter]
// from cfg. A token in cfg is used for authenticated calls until SetToken
// replaces it.
//
// Returns an error if cfg.HTTPAddress is empty or is not a valid URL.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL := utils.NormalizeBaseURL(cfg.HTTPAddress)
	if baseURL == "" {
		return nil, errors.New("invalid adapter http address: empty address")
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}
	if u.Host == "" {
		return nil, errors.New("invalid adapter http address: address must include host")
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	a.SetToken(cfg.Token)

	return a, nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) SignUp(ctx context.Context, user models.User) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/signup")
	if err != nil {
		return fmt.Errorf("sign up request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) SignIn(ctx context.Context, email, password string) (models.Authentication, error) {
	var auth models.Authentication

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.User{Email: email, Password: password}).
		SetResult(&auth).
		Post("/signin")
	if err != nil {
		return models.Authentication{}, fmt.Errorf("sign in request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Authentication{}, err
	}
	if auth.Token == "" {
		return models.Authentication{}, errors.New("sign in: response carries no token")
	}

	h.SetToken(auth.Token)
	h.logger.Debug().Time("expires_in", auth.ExpiresIn).Msg("signed in")
	return auth, nil
}

func (h *httpServerAdapter) ChangePassword(ctx context.Context, change models.PasswordChange) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(change).
		Put("/users/me/password")
	if err != nil {
		return fmt.Errorf("change password request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) DeleteAccount(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Delete("/users/me")
	if err != nil {
		return fmt.Errorf("delete account request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListCampaigns sends the search text as "q" and each help method id as a
// repeated "filters" parameter.
func (h *httpServerAdapter) ListCampaigns(ctx context.Context, filter models.CampaignFilter) ([]models.Campaign, error) {
	query := url.Values{}
	if filter.SearchText != "" {
		query.Set("q", filter.SearchText)
	}
	for _, id := range filter.HelpMethodIDs {
		query.Add("filters", strconv.FormatInt(id, 10))
	}

	var campaigns []models.Campaign
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParamsFromValues(query).
		SetResult(&campaigns).
		Get("/campaigns")
	if err != nil {
		return nil, fmt.Errorf("list campaigns request: %w", err)
	}

	return campaigns, mapHTTPError(resp)
}

func (h *httpServerAdapter) GetCampaign(ctx context.Context, id int64) (models.Campaign, error) {
	var campaign models.Campaign
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&campaign).
		Get("/campaigns/{id}")
	if err != nil {
		return models.Campaign{}, fmt.Errorf("get campaign request: %w", err)
	}

	return campaign, mapHTTPError(resp)
}

func (h *httpServerAdapter) ListUserCampaigns(ctx context.Context, userID int64) ([]models.Campaign, error) {
	var campaigns []models.Campaign
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(userID, 10)).
		SetResult(&campaigns).
		Get("/campaigns/u/{id}")
	if err != nil {
		return nil, fmt.Errorf("list user campaigns request: %w", err)
	}

	return campaigns, mapHTTPError(resp)
}

func (h *httpServerAdapter) CreateCampaign(ctx context.Context, campaign models.Campaign) (models.CampaignResponse, error) {
	var created models.CampaignResponse
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(campaign).
		SetResult(&created).
		Post("/campaigns")
	if err != nil {
		return models.CampaignResponse{}, fmt.Errorf("create campaign request: %w", err)
	}

	return created, mapHTTPError(resp)
}

func (h *httpServerAdapter) UpdateCampaign(ctx context.Context, id int64, campaign models.Campaign) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(campaign).
		Put("/campaigns/{id}")
	if err != nil {
		return fmt.Errorf("update campaign request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) DeleteCampaign(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/campaigns/{id}")
	if err != nil {
		return fmt.Errorf("delete campaign request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ListHelpMethods(ctx context.Context) ([]models.HelpMethod, error) {
	var methods []models.HelpMethod
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&methods).
		Get("/campaigns/help/methods")
	if err != nil {
		return nil, fmt.Errorf("list help methods request: %w", err)
	}

	return methods, mapHTTPError(resp)
}

func (h *httpServerAdapter) CreateHelpMethod(ctx context.Context, method models.HelpMethod) (string, error) {
	var created models.IDResponse
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(method).
		SetResult(&created).
		Post("/campaigns/help/methods")
	if err != nil {
		return "", fmt.Errorf("create help method request: %w", err)
	}

	return created.ID, mapHTTPError(resp)
}

func (h *httpServerAdapter) DeleteHelpMethod(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/campaigns/help/methods/{id}")
	if err != nil {
		return fmt.Errorf("delete help method request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ListHelpDone(ctx context.Context, campaignID int64) ([]models.HelpDone, error) {
	var records []models.HelpDone
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(campaignID, 10)).
		SetResult(&records).
		Get("/campaigns/{id}/help")
	if err != nil {
		return nil, fmt.Errorf("list help done request: %w", err)
	}

	return records, mapHTTPError(resp)
}

func (h *httpServerAdapter) RegisterHelp(ctx context.Context, campaignID int64, help models.HelpDone) (models.CampaignResponse, error) {
	var created models.CampaignResponse
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", strconv.FormatInt(campaignID, 10)).
		SetBody(help).
		SetResult(&created).
		Post("/campaigns/{id}/help")
	if err != nil {
		return models.CampaignResponse{}, fmt.Errorf("register help request: %w", err)
	}

	return created, mapHTTPError(resp)
}

func (h *httpServerAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) Health(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/health")
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
