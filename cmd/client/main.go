// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-help-campaigns/internal/adapter"
	"github.com/MKhiriev/go-help-campaigns/internal/client"
	"github.com/MKhiriev/go-help-campaigns/internal/config"
	"github.com/MKhiriev/go-help-campaigns/internal/logger"
	"github.com/MKhiriev/go-help-campaigns/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "-version" {
		printBuildInfo(models.NewAppBuildInfo(orNA(buildVersion), orNA(buildDate), orNA(buildCommit)))
		return
	}

	// the client writes results to stdout, so logs go to stderr
	log := logger.NewLoggerWithWriter("campaign-client", os.Stderr)
	if err := logger.SetLevel("warn"); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(serverAdapter, os.Stdout, log)
	if err = app.Run(ctx, cfg.Args); err != nil {
		stop()
		if !errors.Is(err, client.ErrNoCommand) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
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
