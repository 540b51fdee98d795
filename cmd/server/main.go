// Package main is the entry point for the KULINA.AI server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/kulina/kulina-ai/internal/ai"
	"github.com/kulina/kulina-ai/internal/config"
	"github.com/kulina/kulina-ai/internal/handler"
	"github.com/kulina/kulina-ai/internal/provider"
	"github.com/kulina/kulina-ai/internal/security"
	"github.com/kulina/kulina-ai/internal/storage"
	"github.com/kulina/kulina-ai/internal/ui"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	ui.PrintBanner()

	// =========================================================================
	// 1. Setup structured logger (JSON format, credential-redacting)
	// =========================================================================
	logger := setupLogger()

	logger.Info("starting kulina-ai")

	// =========================================================================
	// 2. Load configuration (Singleton)
	// =========================================================================
	cfg, err := config.GetConfig()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		ui.PrintStartupError("configuration invalid: " + err.Error())
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		slog.String("host", cfg.Server.Host),
		slog.Int("port", cfg.Server.Port),
		slog.Any("routed_providers", cfg.RoutedProviders()),
	)
	ui.PrintServerInfo(fmt.Sprintf("%d AI features routed across %d providers",
		len(cfg.Features), len(cfg.RoutedProviders())))

	// =========================================================================
	// 3. Resolve credentials and build provider clients (fail closed)
	// =========================================================================
	providers, err := buildProviders(cfg, logger)
	if err != nil {
		logger.Error("credential resolution failed", slog.String("error", err.Error()))
		ui.PrintStartupError(err.Error())
		os.Exit(1)
	}

	for feature, providerName := range cfg.Features {
		ui.PrintProviderReady(feature, providerName)
	}

	// =========================================================================
	// 4. Build the AI gateway and storage
	// =========================================================================
	gateway, err := ai.NewGateway(providers, cfg.Features, logger)
	if err != nil {
		logger.Error("gateway construction failed", slog.String("error", err.Error()))
		ui.PrintStartupError(err.Error())
		os.Exit(1)
	}

	store := storage.NewSeededStorage()
	logger.Info("storage initialized", slog.Int("menus", len(store.AllMenus())))

	// =========================================================================
	// 5. Setup Gin router with middleware
	// =========================================================================
	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	aiHandler := handler.NewAIHandler(gateway, handler.WithAILogger(logger))
	storeHandler := handler.NewStoreHandler(store, handler.WithStoreLogger(logger))
	router := handler.NewRouter(aiHandler, storeHandler, logger)

	// =========================================================================
	// 6. Start HTTP server with graceful shutdown
	// =========================================================================
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
	}

	go func() {
		logger.Info("server starting", slog.String("address", addr))
		ui.PrintEndpoints(addr)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// =========================================================================
	// 7. Graceful shutdown on SIGTERM/SIGINT
	// =========================================================================
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutdown signal received", slog.String("signal", sig.String()))
	ui.PrintShutdown()

	shutdownTimeout := time.Duration(cfg.Server.ShutdownTimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("server stopped gracefully")
	ui.PrintStopped()
}

// buildProviders resolves a credential for every provider that at least
// one feature routes to and constructs its client. Missing or malformed
// credentials abort startup; there are no fallback values.
func buildProviders(cfg *config.Configuration, logger *slog.Logger) (map[string]provider.Provider, error) {
	providers := make(map[string]provider.Provider)

	for _, name := range cfg.RoutedProviders() {
		settings := cfg.ProviderSettings(name)

		cred, err := config.ResolveCredential(name, settings.APIKeyEnv)
		if err != nil {
			return nil, err
		}

		opts := []provider.Option{provider.WithLogger(logger)}
		if settings.BaseURL != "" {
			opts = append(opts, provider.WithBaseURL(settings.BaseURL))
		}
		if settings.Model != "" {
			opts = append(opts, provider.WithModel(settings.Model))
		}
		if settings.TimeoutSeconds > 0 {
			opts = append(opts, provider.WithTimeout(time.Duration(settings.TimeoutSeconds)*time.Second))
		}

		switch name {
		case provider.NameKolosal:
			providers[name] = provider.NewKolosal(cred.Value(), opts...)
		case provider.NameGoogleAI:
			providers[name] = provider.NewGoogleAI(cred.Value(), opts...)
		case provider.NameOpenRouter:
			providers[name] = provider.NewOpenRouter(cred.Value(), opts...)
		default:
			return nil, fmt.Errorf("unknown provider %q in feature routing", name)
		}

		logger.Info("provider ready",
			slog.String("provider", name),
			slog.Any("credential", cred),
		)
	}

	return providers, nil
}

// setupLogger creates a structured JSON logger wrapped in the redacting
// handler so credential-shaped values never reach the log sink.
func setupLogger() *slog.Logger {
	level := slog.LevelInfo

	if envLevel := os.Getenv("KULINA_LOGGING_LEVEL"); envLevel != "" {
		switch envLevel {
		case "debug":
			level = slog.LevelDebug
		case "info":
			level = slog.LevelInfo
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		}
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	inner := slog.NewJSONHandler(os.Stdout, opts)
	logger := slog.New(security.NewRedactedHandler(inner))

	slog.SetDefault(logger)

	return logger
}
