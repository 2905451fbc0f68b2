// Package main is the entry point for the research-service HTTP server.
// In Go, the `main` package with a `main()` function is what gets executed.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/fleveque/research-service/internal/config"
	"github.com/fleveque/research-service/internal/llm"
	"github.com/fleveque/research-service/internal/research"
	"github.com/fleveque/research-service/internal/server"
)

func main() {
	// os.Exit ensures the process exits with a non-zero code on failure.
	// We call run() separately so deferred cleanup functions execute properly
	// (deferred functions don't run when os.Exit is called directly).
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A .env file is optional; real deployments set the environment directly.
	dotenvErr := godotenv.Load()

	// Load configuration
	configPath := os.Getenv("RESEARCH_CONFIG_PATH")
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Set up structured logging with zap.
	// zap is a high-performance structured logger — it outputs JSON in production
	// and human-readable format in development.
	var logger *zap.Logger
	if cfg.Log.Level == "debug" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	// Sync flushes buffered log entries. We intentionally ignore the error here
	// because Sync commonly fails on stdout/stderr (not a real problem).
	defer func() { _ = logger.Sync() }()

	if dotenvErr != nil {
		logger.Debug("no .env file loaded", zap.Error(dotenvErr))
	}

	client, err := llm.New(cfg.LLM)
	if err != nil {
		return fmt.Errorf("creating LLM client: %w", err)
	}
	logger.Info("using model",
		zap.String("provider", client.ProviderName()),
		zap.String("model", client.ModelName()),
	)
	if cfg.Research.DegradePersonErrors {
		logger.Info("person research failures will be returned as research text")
	}

	researchSvc := research.NewService(client, logger,
		research.WithDegradedPersonErrors(cfg.Research.DegradePersonErrors),
	)

	// Create and start the HTTP server
	srv := server.New(cfg, server.Deps{
		LLM:      client,
		Research: researchSvc,
	}, logger)

	// Graceful shutdown: listen for SIGINT (Ctrl+C) or SIGTERM (docker stop,
	// Cloud Run scale-down).
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	// Block until we receive a signal or the server errors out.
	// select is like a switch for channels — it waits until one is ready.
	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		if err != nil {
			return err
		}
	}

	// Give in-flight requests 10 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(ctx)
}
