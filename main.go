// Package main runs the adaptive buffering controller as a standalone daemon:
// it monitors device memory, recomputes the buffering policy, and exposes the
// result over Prometheus metrics. Network quality updates arrive through the
// embedding application's Manager handle.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/savid/streambuffer/config"
	"github.com/savid/streambuffer/internal/observability"
	"github.com/savid/streambuffer/pkg/buffer"
	"github.com/savid/streambuffer/pkg/memory"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to YAML configuration file (optional)")
	flag.Parse()

	// Configure logrus
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	cfg, err := config.Load(configPath)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to parse log level")
	}
	logrus.SetLevel(level)

	logger := logrus.StandardLogger()

	thresholds := cfg.Thresholds()
	monitor := memory.NewPollingMonitor(memory.SystemSampler{}, thresholds, logger)
	manager := buffer.NewAdaptiveManager(thresholds, cfg.CeilingPolicy(), logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Feed memory samples into the controller.
	go func() {
		for state := range monitor.States(ctx) {
			manager.UpdateMemoryState(state)
		}
	}()

	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(registry)
	collector := observability.NewCollector(metrics, thresholds, logger)
	go collector.Run(ctx, monitor, manager)

	monitor.Start()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.MetricsPort),
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info("Shutting down...")
		monitor.Stop()
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Error("Failed to gracefully shutdown")
		}
	}()

	logger.WithField("port", cfg.MetricsPort).Info("Starting streambuffer daemon")
	logger.WithFields(logrus.Fields{
		"warning_mb":  thresholds.WarningAvailableMB,
		"critical_mb": thresholds.CriticalAvailableMB,
		"interval":    thresholds.PollingInterval,
	}).Info("Memory thresholds configured")

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Fatal("Failed to start metrics server")
	}

	logger.Info("Daemon stopped")
}
