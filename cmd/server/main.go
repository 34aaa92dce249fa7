package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/cypherlabdev/consensus-odds-service/internal/cache"
	"github.com/cypherlabdev/consensus-odds-service/internal/config"
	httpHandler "github.com/cypherlabdev/consensus-odds-service/internal/handler/http"
	"github.com/cypherlabdev/consensus-odds-service/internal/messaging"
	"github.com/cypherlabdev/consensus-odds-service/internal/naming"
	"github.com/cypherlabdev/consensus-odds-service/internal/provider"
	"github.com/cypherlabdev/consensus-odds-service/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig(os.Getenv("CONSENSUS_ODDS_CONFIG"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Setup logger
	logger := setupLogger(cfg.Logging)
	logger.Info().Msg("starting consensus-odds-service")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create feed snapshot cache
	snapshotCache := cache.NewSnapshotCache(
		cache.SnapshotCacheConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			TTL:      cfg.Redis.TTL,
		},
		logger,
	)
	defer snapshotCache.Close()

	// Test Redis connection
	if err := snapshotCache.Ping(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	logger.Info().Str("addr", cfg.Redis.Addr).Msg("connected to Redis")

	// Create odds feed client
	feedClient := provider.NewClient(
		provider.Config{
			BaseURL:      cfg.Provider.BaseURL,
			APIKey:       cfg.Provider.APIKey,
			Regions:      cfg.Provider.Regions,
			Timeout:      cfg.Provider.Timeout,
			MaxRetries:   cfg.Provider.MaxRetries,
			RetryBackoff: cfg.Provider.RetryBackoff,
		},
		logger,
	)
	logger.Info().Str("base_url", cfg.Provider.BaseURL).Msg("odds feed client initialized")

	// Create record publisher when enabled
	var publisher service.RecordPublisher
	if cfg.Kafka.Enabled {
		kafkaPublisher := messaging.NewKafkaPublisher(
			messaging.KafkaPublisherConfig{
				Brokers: cfg.Kafka.Brokers,
				Topic:   cfg.Kafka.Topic,
			},
			logger,
		)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		logger.Info().Str("topic", cfg.Kafka.Topic).Msg("record publisher initialized")
	}

	// Create the resolution pipeline
	registry := naming.NewRegistry()
	resolutionService := service.NewResolutionService(feedClient, snapshotCache, publisher, registry, logger)
	logger.Info().Int("leagues", len(registry.Leagues())).Msg("resolution service initialized")

	// Initialize HTTP handler
	consensusHandler := httpHandler.NewConsensusHandler(resolutionService, logger)

	// Setup HTTP server routes
	mux := http.NewServeMux()

	// Health and monitoring endpoints
	mux.HandleFunc("/health", healthHandler)
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		readyHandler(w, r, resolutionService)
	})
	mux.Handle("/metrics", promhttp.Handler())

	// Register API routes
	consensusHandler.RegisterRoutes(mux)
	logger.Info().Msg("API routes registered")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start HTTP server in goroutine
	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("HTTP server failed")
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info().Msg("shutting down gracefully...")

	cancel()

	// Shutdown HTTP server
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("HTTP server shutdown failed")
	}

	logger.Info().Msg("shutdown complete")
}

// setupLogger configures the logger based on config
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Set format
	if cfg.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	return log.Logger.With().Str("service", "consensus-odds").Logger()
}

// healthHandler returns 200 if service is running
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// readyHandler returns 200 if service is ready to accept traffic
func readyHandler(w http.ResponseWriter, r *http.Request, svc *service.ResolutionService) {
	// Check Redis connection
	if err := svc.Ready(r.Context()); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("Redis unavailable"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("READY"))
}
