package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/freshly-app/freshly/internal/inventory"
	"github.com/freshly-app/freshly/internal/shopping"
	visionhttp "github.com/freshly-app/freshly/internal/vision/delivery/http"
	"github.com/freshly-app/freshly/pkg/config"
	"github.com/freshly-app/freshly/pkg/logger"
	"github.com/freshly-app/freshly/pkg/storage"
	"github.com/freshly-app/freshly/pkg/tracing"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	serviceName := "freshly"
	isDevelopment := cfg.Environment == "development"
	logger.Init(serviceName, isDevelopment)
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Msg("Starting freshly service")

	// Initialize tracing
	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize tracer")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracing.Shutdown(ctx, tp); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to shut down tracer")
		}
	}()

	// Initialize storage
	store, err := storage.NewStore(cfg.DataDir)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize data directory")
	}
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize upload directory")
	}

	logger.Logger.Info().
		Str("data_dir", cfg.DataDir).
		Str("upload_dir", cfg.UploadDir).
		Msg("Storage initialized successfully")

	// Initialize handlers with Wire DI
	inventoryHandler, err := inventory.InitializeHTTPHandler(store)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize inventory handler")
	}

	inventoryRepo, err := inventory.InitializeRepository(store)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize inventory repository")
	}

	shoppingHandler, err := shopping.InitializeHTTPHandler(store, inventoryRepo)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize shopping handler")
	}

	uploadHandler, err := visionhttp.InitializeUploadHandler(cfg)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize upload handler")
	}

	logger.Logger.Info().
		Bool("genai_configured", cfg.GenAI.APIKey != "").
		Bool("annotate_configured", cfg.Annotate.APIKey != "").
		Msg("Vision backends initialized")

	// Setup router
	router := mux.NewRouter()
	inventoryHandler.RegisterRoutes(router)
	shoppingHandler.RegisterRoutes(router)
	uploadHandler.RegisterRoutes(router)

	// Health check endpoint
	uploadHandler.RegisterHealthCheck(router)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	handler := otelhttp.NewHandler(c.Handler(router), "http.server")

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	go func() {
		logger.Logger.Info().
			Str("port", cfg.Port).
			Str("metrics_endpoint", "/metrics").
			Msg("HTTP server started")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server shutdown failed")
	}
}
