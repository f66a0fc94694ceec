package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/agence-menage/service-leads/internal/application"
	"github.com/agence-menage/service-leads/internal/config"
	"github.com/agence-menage/service-leads/internal/events"
	"github.com/agence-menage/service-leads/internal/handler"
	"github.com/agence-menage/service-leads/internal/logger"
	"github.com/agence-menage/service-leads/internal/middleware"
	"github.com/agence-menage/service-leads/internal/notify"
)

const serviceName = "service-leads"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, cfg.LogLevel, serviceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting service-leads",
		zap.String("port", cfg.Port),
		zap.String("env", cfg.AppEnv),
	)

	// Primary channel: WhatsApp deep link returned to the client.
	links := notify.NewLinkBuilder(cfg.WhatsApp.DestinationNumber)

	// Secondary channels are wired only when configured; an unconfigured
	// channel degrades to a startup warning, never a runtime failure.
	var channels []notify.Dispatcher

	if cfg.EmailJS.Configured() {
		channels = append(channels, notify.NewEmailJSDispatcher(
			cfg.EmailJS.ServiceID,
			cfg.EmailJS.TemplateID,
			cfg.EmailJS.PublicKey,
			log,
		))
	} else {
		log.Warn("emailjs channel not configured, booking emails disabled")
	}

	var leadProducer *events.LeadProducer
	if cfg.Kafka.Configured() {
		leadProducer = events.NewLeadProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic, log)
		defer func() { _ = leadProducer.Close() }()
		channels = append(channels, leadProducer)
	} else {
		log.Warn("kafka channel not configured, lead events disabled")
	}

	fanout := notify.NewFanout(log, channels...)

	// Initialize application service
	leadService := application.NewLeadService(links, fanout, log)

	// Initialize HTTP handlers
	catalogHandler := handler.NewCatalogHandler()
	leadHandler := handler.NewLeadHandler(leadService)
	healthHandler := handler.NewHealthHandler(serviceName)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// Register routes
	healthHandler.RegisterRoutes(router)
	catalogHandler.RegisterRoutes(&router.RouterGroup)
	leadHandler.RegisterRoutes(&router.RouterGroup)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down service-leads...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("service-leads stopped")
}
