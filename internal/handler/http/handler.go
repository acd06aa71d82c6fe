// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"time"

	"github.com/MKhiriev/go-help-campaigns/internal/config"
	"github.com/MKhiriev/go-help-campaigns/internal/logger"
	"github.com/MKhiriev/go-help-campaigns/internal/metrics"
	"github.com/MKhiriev/go-help-campaigns/internal/service"
	"github.com/MKhiriev/go-help-campaigns/internal/utils"
)

// Pinger reports whether the storage is reachable; *store.Storages satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

type traceIDGenerator interface {
	Generate() string
}

type Handler struct {
	services *service.Services

	// metrics and pinger are optional.
	metrics *metrics.Metrics
	pinger  Pinger

	traceIDs       traceIDGenerator
	requestTimeout time.Duration

	logger *logger.Logger
}

// Option configures optional Handler dependencies.
type Option func(*Handler)

func WithMetrics(m *metrics.Metrics) Option {
	return func(h *Handler) { h.metrics = m }
}

func WithPinger(p Pinger) Option {
	return func(h *Handler) { h.pinger = p }
}

func WithServerConfig(cfg config.Server) Option {
	return func(h *Handler) { h.requestTimeout = cfg.RequestTimeout }
}

func NewHandler(services *service.Services, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services: services,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().Msg("http handler created")
	return h
}
