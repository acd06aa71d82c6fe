// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler assembles the transport handlers of the campaign server.
package handler

import (
	"github.com/MKhiriev/go-help-campaigns/internal/config"
	"github.com/MKhiriev/go-help-campaigns/internal/handler/http"
	"github.com/MKhiriev/go-help-campaigns/internal/logger"
	"github.com/MKhiriev/go-help-campaigns/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the HTTP handler when an HTTP address is configured.
// Options are passed through to [http.NewHandler]; the server timeouts from
// cfg are always applied.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger, opts ...http.Option) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	opts = append(opts, http.WithServerConfig(cfg))
	return &Handlers{HTTP: http.NewHandler(services, logger, opts...)}, nil
}
