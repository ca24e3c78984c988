// Command httpd runs the profiler HTTP service.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonesrussell/profiler/internal/api"
	"github.com/jonesrussell/profiler/internal/bootstrap"
	"github.com/jonesrussell/profiler/internal/database"
	"github.com/jonesrussell/profiler/internal/logging"
	"github.com/jonesrussell/profiler/internal/telemetry"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "profiler: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	logger, err := bootstrap.CreateLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting profiler service",
		logging.String("version", cfg.Service.Version),
		logging.Int("port", cfg.Service.Port))

	tp := telemetry.NewProvider()

	// The feedback store is an optional signal source. Start degraded
	// rather than refuse to serve profiles when it is down.
	var feedbackRepo *database.FeedbackRepository
	var feedbackRecorder api.FeedbackRecorder
	var checks []api.Check

	dbc, err := bootstrap.SetupDatabase(ctx, cfg, logger)
	if err != nil {
		logger.Warn("feedback store unavailable, continuing without it", logging.Error(err))
	} else {
		defer func() { _ = dbc.DB.Close() }()
		feedbackRepo = dbc.FeedbackRepo
		feedbackRecorder = dbc.FeedbackRepo
		checks = append(checks, api.Check{
			Name:  "database",
			Probe: dbc.DB.PingContext,
		})
	}

	conversationStore, err := bootstrap.SetupElasticsearch(ctx, cfg, logger)
	if err != nil {
		return err
	}
	checks = append(checks, api.Check{Name: "elasticsearch", Probe: conversationStore.Ping})

	profileCache := bootstrap.SetupCache(ctx, cfg, logger)
	checks = append(checks, api.Check{Name: "redis", Probe: profileCache.Ping})

	components := bootstrap.SetupEngine(cfg, conversationStore, feedbackRepo, tp, logger)
	checks = append(checks, api.Check{Name: "catalog", Probe: components.Catalog.Health})

	handler := api.NewHandler(
		components.Engine,
		profileCache,
		feedbackRecorder,
		components.Catalog,
		tp,
		checks,
		logger,
	)

	server := api.NewServer(handler, cfg, tp.Handler(), logger)
	return server.Start(ctx)
}
