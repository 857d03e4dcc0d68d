package server

import (
	"context"
	"fmt"

	"github.com/grachmannico95/rent-recon/internal/config"
	"github.com/grachmannico95/rent-recon/internal/handler"
	"github.com/grachmannico95/rent-recon/internal/middleware"
	"github.com/grachmannico95/rent-recon/pkg/logger"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// Handlers groups the HTTP handlers the server routes to.
type Handlers struct {
	Health         *handler.HealthHandler
	Reconciliation *handler.ReconciliationHandler
	Proof          *handler.ProofHandler
	Ledger         *handler.LedgerHandler
}

type Server struct {
	echo     *echo.Echo
	cfg      *config.Config
	logger   *logger.Logger
	handlers Handlers
}

func New(cfg *config.Config, log *logger.Logger, handlers Handlers) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:     e,
		cfg:      cfg,
		logger:   log,
		handlers: handlers,
	}
	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%s", s.cfg.Server.Host, s.cfg.Server.Port)
	s.logger.Info(context.Background(), "Starting HTTP server",
		"address", addr,
	)

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info(ctx, "Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupMiddleware() {
	s.echo.Use(echoMiddleware.Recover())
	s.echo.Use(echoMiddleware.CORS())
	s.echo.Use(middleware.RequestID())
	s.echo.Use(middleware.Logging(s.logger))
	if limit := s.cfg.Upload.BodyLimit; limit != "" {
		s.echo.Use(echoMiddleware.BodyLimit(limit))
	}
}

func (s *Server) setupRoutes() {
	h := s.handlers

	s.echo.GET("/health", h.Health.Check)

	s.echo.GET("/obligations", h.Ledger.ListObligations)
	s.echo.POST("/obligations", h.Ledger.CreateObligation)
	s.echo.GET("/settings/trusted-account", h.Ledger.GetTrustedAccount)
	s.echo.PUT("/settings/trusted-account", h.Ledger.SetTrustedAccount)
	s.echo.GET("/confirmations", h.Ledger.ListConfirmations)

	recon := s.echo.Group("/reconciliations")
	recon.GET("", h.Reconciliation.List)
	recon.POST("", h.Reconciliation.Create)
	recon.GET("/:id", h.Reconciliation.Get)
	recon.DELETE("/:id", h.Reconciliation.Delete)
	recon.POST("/:id/reset", h.Reconciliation.Reset)
	recon.POST("/:id/process", h.Reconciliation.Process)
	recon.GET("/:id/rows/:rowId/candidates", h.Reconciliation.Candidates)
	recon.PUT("/:id/rows/:rowId/match", h.Reconciliation.Match)

	proofs := s.echo.Group("/proofs")
	proofs.POST("", h.Proof.Verify)
	proofs.GET("/:id", h.Proof.Get)
	proofs.POST("/:id/confirm", h.Proof.Confirm)
}

func (s *Server) Handler() *echo.Echo {
	return s.echo
}
