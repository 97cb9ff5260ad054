package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/packlens/backend/config"
	httpDelivery "github.com/packlens/backend/internal/delivery/http"
	"github.com/packlens/backend/internal/infrastructure/cache"
	"github.com/packlens/backend/internal/infrastructure/vocabfile"
	"github.com/packlens/backend/internal/logging"
	"github.com/packlens/backend/internal/multipack"
	"github.com/packlens/backend/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logging.Setup(cfg.Log.Level, cfg.Log.Format, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}

	log.Info().
		Str("version", httpDelivery.Version).
		Str("environment", cfg.Server.Environment).
		Str("port", cfg.Server.Port).
		Msg("Starting PackLens Backend")

	// Build the classifier, extending the built-in vocabulary when a file is configured
	vocabulary, err := vocabfile.LoadMerged(cfg.Classifier.VocabularyFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.Classifier.VocabularyFile).Msg("Failed to load vocabulary")
	}
	classifier, err := multipack.New(vocabulary)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to compile pattern library")
	}
	log.Info().
		Int("fragments", classifier.Matcher().Len()).
		Int("rules", len(classifier.Rules())).
		Msg("Classifier ready")

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache(cfg.Cache.MaxEntries)
	defer memoryCache.Close()
	log.Info().
		Dur("ttl", cfg.Cache.TTL).
		Int("max_entries", cfg.Cache.MaxEntries).
		Msg("Result cache configured")

	// Initialize usecase layer
	classificationService := usecase.NewClassificationService(
		classifier,
		memoryCache,
		usecase.ClassificationServiceConfig{
			CacheTTL:       cfg.Cache.TTL,
			MaxBatchSize:   cfg.Classifier.MaxBatchSize,
			MaxTitleLength: cfg.Classifier.MaxTitleLength,
		},
	)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(classificationService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Start server
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	}

	log.Info().Msg("Server stopped")
}
