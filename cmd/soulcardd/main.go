package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Gwang-eon/soulcard-app-sub001/internal/adapters/catalog"
	httpadapter "github.com/Gwang-eon/soulcard-app-sub001/internal/adapters/http"
	"github.com/Gwang-eon/soulcard-app-sub001/internal/adapters/llm/openrouter"
	"github.com/Gwang-eon/soulcard-app-sub001/internal/app"
	"github.com/Gwang-eon/soulcard-app-sub001/internal/config"
	"github.com/Gwang-eon/soulcard-app-sub001/internal/ports"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	catalogStore := catalog.NewEmbeddedStore()

	// A partially loaded catalog must never serve readings: load and
	// validate before accepting traffic.
	if _, err := catalogStore.Catalog(context.Background()); err != nil {
		logger.Error("catalog load failed", "error", err)
		os.Exit(1)
	}

	var interpreter ports.Interpreter
	if cfg.LLMProvider == "openrouter" {
		interpreter = openrouter.NewClient(
			&http.Client{Timeout: cfg.LLMTimeout},
			cfg.OpenRouterAPIKey,
			cfg.OpenRouterBaseURL,
			cfg.LLMModel,
			cfg.LLMFallbackModels,
			logger,
		)
	}

	history := app.NewHistory()
	svc := app.NewReadingService(catalogStore, interpreter, history, logger)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(httpadapter.CORSMiddleware())
	e.Use(httpadapter.RequestIDMiddleware())
	e.Use(httpadapter.LoggingMiddleware(logger))

	handler := httpadapter.NewHandler(svc, history)
	handler.Register(e)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		logger.Info("starting server", "addr", cfg.HTTPAddr)
		if err := e.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
