package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"caredash/internal/charts"
	"caredash/internal/config"
	"caredash/internal/dataset"
	apphttp "caredash/internal/http"
	applog "caredash/internal/log"
	"caredash/internal/metrics"
)

func main() {
	// Load .env for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	cfg := config.Load()

	logger := applog.New(applog.Config{
		Level:     applog.ParseLevel(cfg.LogLevel),
		Component: applog.ComponentApp,
	})
	applog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err)
		os.Exit(1)
	}

	// Load the dataset exactly once; it is shared read-only for the whole
	// process lifetime.
	loadCtx, loadCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	src, err := dataset.Open(cfg)
	if err != nil {
		loadCancel()
		logger.Error("Failed to open dataset source", applog.FieldError, err, applog.FieldBackend, cfg.DatasetBackend)
		os.Exit(1)
	}
	table, err := src.Load(loadCtx)
	loadCancel()
	if err != nil {
		logger.Error("Failed to load dataset", applog.FieldError, err, applog.FieldBackend, cfg.DatasetBackend)
		os.Exit(1)
	}
	metrics.DatasetRows.Set(float64(table.Len()))

	dashboard := charts.NewDashboard(table)
	layout := charts.BuildLayout(table)
	logger.Info("Dashboard ready",
		applog.FieldBackend, cfg.DatasetBackend,
		applog.FieldRows, table.Len(),
		"mean_billing", layout.Summary.MeanBilling)

	srv := apphttp.NewServer(":"+cfg.Port, dashboard, layout, logger, apphttp.Options{
		CacheSize: cfg.CacheSize,
		CacheTTL:  cfg.CacheTTL,
	})
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting caredash server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", applog.FieldError, err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
