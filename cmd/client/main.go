package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-medlux/internal/adapter"
	"github.com/MKhiriev/go-medlux/internal/client"
	"github.com/MKhiriev/go-medlux/internal/config"
	"github.com/MKhiriev/go-medlux/internal/logger"
	"github.com/MKhiriev/go-medlux/internal/tui"
	"github.com/MKhiriev/go-medlux/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewClientLogger("medlux-client")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	suite, err := adapter.NewHTTPSuiteAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create suite adapter")
	}

	ui := tui.New(suite, buildInfo, log)

	app, err := client.NewApp(suite, ui, tui.ErrUserQuit, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
