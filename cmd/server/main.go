package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"niko-backend/internal/config"
	"niko-backend/internal/handlers"
	"niko-backend/internal/logging"
	"niko-backend/internal/router"
	"niko-backend/internal/services"
)

func main() {
	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()

	if cfg.Env == "development" {
		logging.InitLogger(logrus.DebugLevel)
	} else {
		logging.InitLogger(logrus.InfoLevel)
	}
	log := logging.GetLogger()
	log.Info("Starting Niko assistant backend...")
	log.Info("✓ Environment variables loaded")

	if cfg.GroqAPIKey == "" {
		log.Warn("GROQ_API_KEY is not set; /api/generate will reject requests")
	}

	// ──── Step 2: Initialize Groq Client ────
	groqService := services.NewGroqService(
		cfg.GroqAPIKey,
		cfg.GroqBaseURL,
		cfg.Model,
		cfg.Temperature,
		cfg.MaxTokens,
		cfg.GroqConcurrentReqs,
	)
	log.Infof("✓ Groq client initialized (model: %s)", cfg.Model)

	// ──── Initialize Handlers ────
	healthHandler := handlers.NewHealthHandler(cfg.GroqAPIKey, cfg.Model)
	chatHandler := handlers.NewChatHandler(groqService)
	summaryHandler := handlers.NewSummaryHandler(groqService)

	// ──── Step 3: Start HTTP Server ────
	r := router.New(healthHandler, chatHandler, summaryHandler, cfg.FrontendURL, cfg.RateLimitPerMinute)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // upstream generation can be slow
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Infof("✓ Niko assistant backend ready on http://localhost:%s", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
