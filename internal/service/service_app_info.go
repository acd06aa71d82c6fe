// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-help-campaigns/internal/config"
	"github.com/MKhiriev/go-help-campaigns/internal/logger"
	"github.com/MKhiriev/go-help-campaigns/models"
)

type appInfoService struct {
	version string
	build   models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService resolves the version reported by GET /version: APP_VERSION
// when set, otherwise the version linked into the binary.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	version, source := cfg.Version, "config"
	if version == "" {
		version, source = build.BuildVersion(), "build"
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().
		Str("func", "NewAppInfoService").
		Str("version", version).
		Str("source", source).
		Str("commit", build.BuildCommit()).
		Msg("app version resolved")

	return &appInfoService{
		version: version,
		build:   build,
		logger:  logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.version
}
