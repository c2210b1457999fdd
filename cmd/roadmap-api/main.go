// Copyright ©2024 The roadmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command roadmap-api serves roadmap.Map over HTTP, with a separate
// Prometheus metrics endpoint. Grounded on mpisat-qumo/cmd/qumo-relay/
// main.go's flag-parses-a-config-path, slog-logs, signal.NotifyContext-
// handles-shutdown shape.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/natroutes/roadmap/api"
	"github.com/natroutes/roadmap/config"
	"github.com/natroutes/roadmap/roadmap"
)

func main() {
	configFile := flag.String("config", "configs/config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	m := roadmap.NewMap()
	router, err := api.New(m, logger)
	if err != nil {
		log.Fatalf("failed to build router: %v", err)
	}

	server := &http.Server{Addr: cfg.Address, Handler: router}

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())
	metricsServer := &http.Server{Addr: cfg.MetricsAddr, Handler: metricsMux}

	go func() {
		logger.Info("starting roadmap API server", "address", cfg.Address)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "err", err)
		}
	}()
	go func() {
		logger.Info("starting metrics server", "address", cfg.MetricsAddr)
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("metrics server error", "err", err)
		}
	}()

	<-ctx.Done()
	cancel()
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "err", err)
	}
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("error during metrics server shutdown", "err", err)
	}
	logger.Info("server stopped")
}
