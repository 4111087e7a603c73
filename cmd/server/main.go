// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill"

	_ "github.com/tomtom215/coolerselect/docs" // Import generated swagger docs
	"github.com/tomtom215/coolerselect/internal/api"
	"github.com/tomtom215/coolerselect/internal/config"
	"github.com/tomtom215/coolerselect/internal/database"
	"github.com/tomtom215/coolerselect/internal/events"
	"github.com/tomtom215/coolerselect/internal/importer"
	"github.com/tomtom215/coolerselect/internal/logging"
	"github.com/tomtom215/coolerselect/internal/metrics"
	"github.com/tomtom215/coolerselect/internal/supervisor"
	"github.com/tomtom215/coolerselect/internal/supervisor/services"
)

//nolint:gocyclo // Sequential startup
func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Caller:  cfg.Logging.Caller,
		Version: api.Version,
	})

	metrics.AppInfo.WithLabelValues(api.Version, runtime.Version()).Set(1)

	if unknown := config.UnknownEnv(os.Environ()); len(unknown) > 0 {
		logging.Warn().Strs("variables", unknown).Msg("Ignoring unrecognised environment variables")
	}

	logging.Info().
		Str("go", runtime.Version()).
		Str("db_path", cfg.Database.Path).
		Str("environment", cfg.Server.Environment).
		Bool("cache_enabled", cfg.Cache.Enabled).
		Bool("breaker_enabled", cfg.Breaker.Enabled).
		Msg("Starting CoolerSelect")

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()
	if err := metrics.RegisterDBStats(db.Conn(), "catalog"); err != nil {
		logging.Warn().Err(err).Msg("Failed to register database pool metrics")
	}
	logging.Info().Bool("seed_sample_data", cfg.Database.SeedSampleData).Msg("Catalog database ready")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := events.NewBus(watermill.NewSlogLogger(logging.NewSlogLogger()))
	defer func() {
		if err := bus.Close(); err != nil {
			logging.Warn().Err(err).Msg("Error closing event bus")
		}
	}()
	publisher := events.NewPublisher(bus.Publisher())

	stack, err := newSelectionStack(cfg, db)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize selection engine")
	}
	defer stack.Close()

	handler := api.NewHandler(stack.selector, db, cfg)
	handler.SetNotifier(publisher)
	handler.SetImporter(importer.NewImporter(&cfg.Import, db, publisher, logging.Logger()))
	if stack.breaker != nil {
		handler.SetBreaker(stack.breaker)
	}

	if cfg.HasWildcardCORS() {
		logging.Warn().Msg("CORS allows any origin (CORS_ORIGINS=*); restrict it in production")
	}
	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(&cfg.Security)))

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	})

	if cfg.Database.CheckpointInterval > 0 && cfg.Database.Path != ":memory:" {
		tree.Add(supervisor.LayerData, services.NewCheckpointService(db, cfg.Database.CheckpointInterval))
	}

	if stack.cache != nil {
		invalidator, err := events.NewInvalidationService(bus.Subscriber(), stack.cache, bus.Logger(), nil)
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to create cache invalidation service")
		}
		tree.Add(supervisor.LayerMessaging, invalidator)
	}

	tree.Add(supervisor.LayerAPI, services.NewHTTPServerService(server, 10*time.Second))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().
		Str("addr", server.Addr).
		Interface("services", tree.Services()).
		Msg("Starting supervisor tree")

	if err := tree.Run(ctx); err != nil {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	logging.Info().Msg("Application stopped gracefully")
}
