package main

import (
	"context"
	"fmt"

	"github.com/ncastillo/eserbisyo/internal/config"
	"github.com/ncastillo/eserbisyo/internal/crypto"
	"github.com/ncastillo/eserbisyo/internal/handler"
	"github.com/ncastillo/eserbisyo/internal/logger"
	"github.com/ncastillo/eserbisyo/internal/render"
	"github.com/ncastillo/eserbisyo/internal/server"
	"github.com/ncastillo/eserbisyo/internal/service"
	"github.com/ncastillo/eserbisyo/internal/store"
	"github.com/ncastillo/eserbisyo/internal/vault"
	"github.com/ncastillo/eserbisyo/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("eserbisyo-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	cryptoService := crypto.NewService(
		cfg.Storage.Vault.MasterKey,
		cfg.Security.FieldEncryptionKey,
		cfg.Security.VerificationHashKey,
	)

	attachmentVault, err := vault.NewFileVault(cfg.Storage.Vault.Dir, cryptoService)
	if err != nil {
		log.Fatal().Err(err).Msg("error initialising attachment vault")
	}

	services := service.NewServices(service.Dependencies{
		Storages: storages,
		Vault:    attachmentVault,
		Crypto:   cryptoService,
		Renderer: render.NewPDFRenderer(log),
	}, *cfg, log)

	// the audit recorder drains into the database in the background
	workers.NewWorkers(services.AuditRecorder).Run()
	defer services.AuditRecorder.Close()

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
