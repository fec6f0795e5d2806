package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/patrickmn/go-cache"

	"booking-report-backend/config"
	"booking-report-backend/internal/api"
	"booking-report-backend/internal/auth"
	"booking-report-backend/internal/beds24"
	"booking-report-backend/internal/db"
	"booking-report-backend/internal/fetch"
	"booking-report-backend/internal/report"
	"booking-report-backend/internal/rooms"
	"booking-report-backend/internal/store"
	"booking-report-backend/internal/token"
)

func main() {
	logger := log.New(os.Stdout, "report-backend ", log.LstdFlags)

	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}
	logger.Printf("configuration loaded successfully from %s", configPath)

	// Initialize the report log database
	gormDB, err := db.Init(cfg.Storage.DSN)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	reportLogs := store.NewGormStore(gormDB)
	logger.Println("report log store initialized")

	// Token persistence and upstream API client
	tokenStore, err := token.NewStore(cfg.Storage.TokenFile)
	if err != nil {
		logger.Fatalf("failed to initialize token store: %v", err)
	}

	client := beds24.NewClient(cfg.Beds24.BaseURL, cfg.Beds24.Timeout)
	session := auth.NewSession(tokenStore, client, auth.Credentials{
		LongLifeToken: cfg.Beds24.LongLifeToken,
		RefreshToken:  cfg.Beds24.RefreshToken,
		InviteCode:    cfg.Beds24.InviteCode,
	})

	// Report pipeline
	reports := report.NewService(session, fetch.NewFetcher(client), rooms.FromConfig(cfg.Rooms))

	// Rendered documents live in memory until their download links expire.
	documentTTL := time.Duration(cfg.Storage.ReportTTLMinutes) * time.Minute
	documents := cache.New(documentTTL, 2*documentTTL)

	// Initialize router
	handler := api.NewHandler(reports, reportLogs, documents, documentTTL, cfg.Auth.PasswordHash)
	router := api.NewRouter(handler, cfg.Server.RateLimitPerSec, cfg.Server.RateLimitBurst)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start the server in a goroutine
	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	// Setup signal handling for graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Println("Shutdown signal received, stopping server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	logger.Println("Server gracefully stopped")
}
