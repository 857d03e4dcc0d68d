package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/grachmannico95/rent-recon/internal/bankfile"
	"github.com/grachmannico95/rent-recon/internal/config"
	"github.com/grachmannico95/rent-recon/internal/domain"
	"github.com/grachmannico95/rent-recon/internal/eventbus"
	"github.com/grachmannico95/rent-recon/internal/handler"
	"github.com/grachmannico95/rent-recon/internal/matching"
	"github.com/grachmannico95/rent-recon/internal/reconciliation"
	"github.com/grachmannico95/rent-recon/internal/security"
	"github.com/grachmannico95/rent-recon/internal/server"
	"github.com/grachmannico95/rent-recon/internal/service"
	"github.com/grachmannico95/rent-recon/internal/slip"
	"github.com/grachmannico95/rent-recon/internal/storage"
	"github.com/grachmannico95/rent-recon/pkg/logger"
)

type repository interface {
	domain.Repository
	handler.Pinger
}

func main() {
	cfg := config.Load()

	log := logger.NewWithFormat(cfg.Logging.Level, cfg.Logging.Format)
	defer log.Sync()

	ctx := context.Background()
	log.Info(ctx, "Starting application")

	repo, closeRepo := openRepository(ctx, cfg, log)
	defer closeRepo()
	log.Info(ctx, "Repository initialized",
		"driver", cfg.Storage.Driver,
	)

	if cfg.Storage.SeedFile != "" {
		created, err := storage.Seed(ctx, repo, cfg.Storage.SeedFile)
		if err != nil {
			log.Fatal(ctx, "Failed to seed obligations",
				"file", cfg.Storage.SeedFile,
				"error", err,
			)
		}
		log.Info(ctx, "Obligations seeded",
			"file", cfg.Storage.SeedFile,
			"created", created,
		)
	}

	if cfg.Security.TrustedAccount != "" {
		written, err := storage.BootstrapTrustedAccount(ctx, repo, security.NormalizeAccount(cfg.Security.TrustedAccount))
		if err != nil {
			log.Fatal(ctx, "Failed to store trusted account",
				"error", err,
			)
		}
		if written {
			log.Info(ctx, "Trusted recipient account configured from environment")
		} else {
			log.Info(ctx, "Trusted recipient account already stored, environment value ignored")
		}
	}

	eventBusCfg := &eventbus.Config{
		ChannelBuffer:  cfg.EventBus.ChannelBufferSize,
		MaxRetries:     cfg.Worker.MaxRetries,
		RetryBaseDelay: cfg.Worker.RetryBaseDelay,
	}
	bus := eventbus.New(log, eventBusCfg)
	log.Info(ctx, "Event bus initialized")

	confirmationConsumer := eventbus.NewConfirmationConsumer(
		repo,
		log,
		cfg.EventBus.ConsumerWorkers,
	)
	log.Info(ctx, "Confirmation consumer initialized",
		"worker_count", confirmationConsumer.GetWorkerCount(),
	)

	err := bus.Subscribe(eventbus.EventTypePaymentConfirmed, confirmationConsumer)
	if err != nil {
		log.Fatal(ctx, "Failed to subscribe consumer",
			"error", err,
		)
	}

	err = bus.Start(ctx)
	if err != nil {
		log.Fatal(ctx, "Failed to start event bus",
			"error", err,
		)
	}

	engine := matching.NewEngine(cfg.Matching.BankTolerance, cfg.Matching.ProofTolerance)
	confirmer := service.NewPaymentConfirmationService(repo, bus, log)

	reconciliationService := service.NewReconciliationService(
		bankfile.NewParser(log),
		engine,
		repo,
		confirmer,
		log,
		reconciliation.Config{
			Workers:        cfg.Worker.PoolSize,
			MaxAttempts:    cfg.Worker.MaxRetries,
			RetryBaseDelay: cfg.Worker.RetryBaseDelay,
		},
	)
	proofService := service.NewProofService(
		reconciliation.NewProofVerifier(
			slip.NewExtractor(log),
			security.NewGate(cfg.Security.RequireTrustedAccount),
			engine,
			repo,
			repo,
			confirmer,
			log,
		),
		log,
	)
	ledgerService := service.NewLedgerService(repo, log)
	log.Info(ctx, "Services initialized")

	handlers := server.Handlers{
		Health:         handler.NewHealthHandler(repo, cfg.Storage.Driver),
		Reconciliation: handler.NewReconciliationHandler(reconciliationService, log, cfg.Upload.MaxStatementBytes),
		Proof:          handler.NewProofHandler(proofService, log, cfg.Upload.MaxSlipBytes),
		Ledger:         handler.NewLedgerHandler(ledgerService, log),
	}
	log.Info(ctx, "Handlers initialized")

	srv := server.New(cfg, log, handlers)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal(ctx, "Failed to start HTTP server",
				"error", err,
			)
		}
	}()

	log.Info(ctx, "Application started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info(ctx, "Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	// Graceful shutdown in order:
	// 1. Stop accepting new HTTP requests
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "HTTP server shutdown error",
			"error", err,
		)
	}

	// 2. Let the audit consumer drain before the store closes
	if err := bus.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "Event bus shutdown error",
			"error", err,
		)
	}

	log.Info(ctx, "Application stopped gracefully")
}

func openRepository(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository, func()) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		return storage.NewMemoryStore(), func() {}
	case config.StorageDriverSQLite:
		store, err := storage.NewSQLiteStore(ctx, cfg.Storage.SQLitePath)
		if err != nil {
			log.Fatal(ctx, "Failed to open SQLite store",
				"path", cfg.Storage.SQLitePath,
				"error", err,
			)
		}
		return store, func() {
			if err := store.Close(); err != nil {
				log.Error(ctx, "Failed to close SQLite store",
					"error", err,
				)
			}
		}
	default:
		log.Fatal(ctx, "Unknown storage driver",
			"driver", cfg.Storage.Driver,
		)
		return nil, nil
	}
}
