package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/config"
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/database"
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/identity"
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/server"
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/services"
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/pkg/logger"
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/pkg/rabbitmq"

	log "github.com/sirupsen/logrus"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.Setup(cfg.LogLevel, cfg.LogFormat)

	// --- Database ---
	db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- Initialize RabbitMQ Client ---
	// Events are optional; without RABBITMQ_URL the API runs without a publisher.
	var publisher services.EventPublisher
	var mqClient *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		publisher = mqClient
	} else {
		log.Info("RABBITMQ_URL not set, domain events disabled")
	}

	var verifier identity.Verifier
	if cfg.GoogleClientID != "" {
		verifier = identity.NewGoogleVerifier(cfg.GoogleClientID)
	}

	app := server.New(cfg, server.Deps{
		DB:        db,
		Verifier:  verifier,
		Publisher: publisher,
		AccessLog: true,
	})

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	if mqClient != nil {
		if err := mqClient.Close(); err != nil {
			log.Printf("Error closing RabbitMQ connection: %v", err)
		}
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	log.Println("Server gracefully stopped")
}
