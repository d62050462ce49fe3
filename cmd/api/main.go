package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wolfman30/ondo-handyman/cmd/mainconfig"
	"github.com/wolfman30/ondo-handyman/internal/api/router"
	"github.com/wolfman30/ondo-handyman/internal/app/bootstrap"
	appconfig "github.com/wolfman30/ondo-handyman/internal/config"
	"github.com/wolfman30/ondo-handyman/internal/leads"
	"github.com/wolfman30/ondo-handyman/internal/observability/metrics"
	"github.com/wolfman30/ondo-handyman/pkg/logging"
)

func main() {
	// Local runs read .env; deployed environments set real variables.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting ondo-handyman API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	handler, err := buildHandler(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("failed to build lead pipeline", "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	// In-flight dispatches are detached from request contexts; Shutdown
	// waits on their handlers.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
	fmt.Println("Server exited gracefully")
}

func buildHandler(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) (http.Handler, error) {
	var (
		metricsHandler http.Handler
		leadMetrics    *metrics.LeadMetrics
	)
	if cfg.MetricsEnabled {
		metricsHandler, leadMetrics = setupMetrics()
	}

	pipeline, err := bootstrap.BuildLeadPipeline(ctx, cfg, mainconfig.LoadAWSConfig, leadMetrics, logger)
	if err != nil {
		return nil, err
	}

	return router.New(&router.Config{
		Logger:             logger,
		LeadsHandler:       leads.NewHandler(pipeline.Service, logger),
		MetricsHandler:     metricsHandler,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		EmailDelivery:      pipeline.EmailDelivery(),
	}), nil
}

func setupMetrics() (http.Handler, *metrics.LeadMetrics) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), metrics.NewLeadMetrics(reg)
}
