package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-medlux/internal/config"
	"github.com/MKhiriev/go-medlux/internal/crypto"
	"github.com/MKhiriev/go-medlux/internal/handler"
	"github.com/MKhiriev/go-medlux/internal/logger"
	"github.com/MKhiriev/go-medlux/internal/server"
	"github.com/MKhiriev/go-medlux/internal/service"
	"github.com/MKhiriev/go-medlux/internal/session"
	"github.com/MKhiriev/go-medlux/internal/store"
	"github.com/MKhiriev/go-medlux/internal/workers"
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

	log := logger.NewLogger("medlux-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("driver", cfg.Storage.DB.Driver).Str("http", cfg.Server.HTTPAddress).Str("grpc", cfg.Server.GRPCAddress).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx)

	db, err := store.Open(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	gw, err := store.NewGateway(db)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating store gateway")
	}

	hasher := crypto.NewCredentialHasher()
	if err = gw.EnsureAdminUser(ctx, crypto.Seeder(hasher)); err != nil {
		log.Fatal().Err(err).Msg("error seeding admin user")
	}

	sessions := session.NewManager(cfg.App.SessionSignKey, cfg.App.SessionIssuer)
	services := service.NewServices(gw, sessions, hasher, *cfg, buildInfo, log)

	if _, err = services.CriteriaService.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("error seeding criteria")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	// a typed nil handler must not reach the probe as a non-nil interface
	var reporter workers.HealthReporter
	if handlers.GRPC != nil {
		reporter = handlers.GRPC
	}
	probes := workers.NewWorkers(
		workers.NewStoreProbe(services.HealthService, reporter, cfg.Workers.ProbeInterval, log),
	)
	go probes.Run(ctx)

	if err = srv.RunServer(ctx); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
	log.Info().Msg("server stopped")
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
