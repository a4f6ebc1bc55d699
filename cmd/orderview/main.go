package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"finitefield.org/orderview/internal/orderview/httpserver"
	"finitefield.org/orderview/internal/orderview/observability"
)

func main() {
	logger, err := observability.NewLogger()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg := httpserver.Config{
		Address:      getEnv("ORDERVIEW_HTTP_ADDR", ":8080"),
		APIBaseURL:   os.Getenv("ORDERVIEW_API_URL"),
		ExamplesFile: os.Getenv("ORDERVIEW_EXAMPLES_FILE"),
		Logger:       logger,
	}

	srv, err := httpserver.New(cfg)
	if err != nil {
		logger.Fatal("build server", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	logger.Info("orderview listening", zap.String("addr", cfg.Address))

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
		os.Exit(1)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
