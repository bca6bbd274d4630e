package main

import (
	"brdocs/cmd/internal/config"
	"brdocs/cmd/internal/http/handler"
	"brdocs/cmd/internal/metrics"
	"brdocs/cmd/internal/routes"
	"brdocs/cmd/internal/service"
	"brdocs/cmd/internal/utils/validators"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Loads env vars depending on environment (AWS SSM Parameter Store or .env)
	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("unable to load configuration: %v", err)
	}
	log.SetLevel(cfg.LogLevel)
	log.Infof("starting on %s (production=%t)", cfg.Addr(), cfg.Production)

	validate := validator.New()
	if err := validators.Register(validate); err != nil {
		log.Fatalf("unable to register validators: %v", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// Getting services
	documentService := service.NewDocumentService(validate, metrics.New(reg))
	formatService := service.NewFormatService(validate)

	// Getting handlers
	documentRoutes := handler.NewDocumentRoute(documentService)
	formatRoutes := handler.NewFormatRoute(formatService)

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(cfg.LogLevel)
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{AllowOrigins: cfg.CORSOrigins}))
	e.Use(middleware.BodyLimit(cfg.BodyLimit))

	routes.Register(e, documentRoutes, formatRoutes, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	go func() {
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("graceful shutdown failed: %v", err)
	}
}
