package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-note-keeper/internal/client"
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("go-note-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("go-note-client", cfg.App.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	appCtx, err := client.Init(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client context error")
	}

	app := client.NewApp(appCtx, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	runErr := app.Run(ctx)

	if err = appCtx.Teardown(ctx); err != nil {
		log.Err(err).Msg("client teardown error")
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "client error: %v\n", runErr)
		log.Err(runErr).Msg("client run error")
		os.Exit(1)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
