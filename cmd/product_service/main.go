package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ridloal/product-api/internal/platform/config"
	"github.com/ridloal/product-api/internal/platform/health"
	"github.com/ridloal/product-api/internal/platform/logger"
	"github.com/ridloal/product-api/internal/platform/server"
	productAPI "github.com/ridloal/product-api/internal/product/api"
	productRepo "github.com/ridloal/product-api/internal/product/repository"
	productService "github.com/ridloal/product-api/internal/product/service"
	"golang.org/x/time/rate"
)

func main() {
	if err := run(); err != nil {
		logger.Error("Product Service stopped with error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load Config
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Setup Logger
	if err := logger.Init(cfg.App.LogLevel, cfg.App.LogFormat); err != nil {
		return err
	}
	logger.Info("Starting %s v%s (%s)...", health.ServiceTitle, health.ServiceVersion, health.ServiceDescription)

	// Setup Dependencies
	prodRepository := productRepo.NewMemoryProductRepository()
	prodService := productService.NewProductService(prodRepository)
	productHandler := productAPI.NewProductHandler(prodService)

	if cfg.Stats.Schedule != "" {
		reporter, err := productService.NewStatsReporter(prodRepository, cfg.Stats.Schedule)
		if err != nil {
			return err
		}
		reporter.Start()
		defer func() { <-reporter.Stop().Done() }()
	}

	var limiter *rate.Limiter
	if cfg.RateLimit.RPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst)
		logger.Info("Rate limiting enabled: %.2f req/s, burst %d", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	// Setup Gin Router
	server.SetGinMode(cfg.IsProduction())
	router := server.NewRouter(server.RouterDeps{
		ProductHandler: productHandler,
		AllowedOrigins: cfg.Server.CORSAllowedOrigins,
		RateLimiter:    limiter,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Product Service running on port " + cfg.Server.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		return err
	case sig := <-quit:
		logger.Info("Received %s, shutting down Product Service...", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	logger.Info("Product Service exited")
	return nil
}
