// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-help-campaigns/internal/config"
	"github.com/MKhiriev/go-help-campaigns/internal/handler"
	"github.com/MKhiriev/go-help-campaigns/internal/handler/http"
	"github.com/MKhiriev/go-help-campaigns/internal/logger"
	"github.com/MKhiriev/go-help-campaigns/internal/metrics"
	"github.com/MKhiriev/go-help-campaigns/internal/server"
	"github.com/MKhiriev/go-help-campaigns/internal/service"
	"github.com/MKhiriev/go-help-campaigns/internal/store"
	"github.com/MKhiriev/go-help-campaigns/models"
)

const (
	serviceName  = "campaign-server"
	databaseName = "campaigns"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := newBuildInfo()
	printBuildInfo(buildInfo)

	log := logger.NewLogger(serviceName)
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Info().Interface("build", buildInfo).Msg("starting campaign server")

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Str("token_issuer", cfg.App.TokenIssuer).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	m := metrics.New(serviceName)
	if err = m.RegisterDB(storages.DB.DB, databaseName); err != nil {
		log.Fatal().Err(err).Msg("error registering database metrics")
	}

	services, err := service.NewServices(storages, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log, http.WithMetrics(m), http.WithPinger(storages))
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func newBuildInfo() models.AppBuildInfo {
	return models.NewAppBuildInfo(orNA(buildVersion), orNA(buildDate), orNA(buildCommit))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
