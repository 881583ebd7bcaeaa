package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"github.com/joho/godotenv"

	"github.com/akash-insiders/community-hub/api"
	"github.com/akash-insiders/community-hub/internal/auth"
	"github.com/akash-insiders/community-hub/internal/config"
	"github.com/akash-insiders/community-hub/internal/db"
	"github.com/akash-insiders/community-hub/internal/repository/sqlite"

	dbfs "github.com/akash-insiders/community-hub/db"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	var configPath = flag.String("config", "", "Path to config YAML file")
	var envPath = flag.String("env", ".env", "Path to env file (ignored when absent)")
	flag.Parse()

	// a missing env file is fine; config falls back to process env and defaults
	_ = godotenv.Load(*envPath)

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	log.Printf("Starting community-hub server version %s (built at %s)", version, buildTime)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	api.SetLogger(logger)

	ctx := context.Background()

	// Open database connection
	database, err := db.New(ctx, cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}

	// Apply schema migrations
	if err := db.Migrate(ctx, database, dbfs.Migrations); err != nil {
		log.Fatalf("Failed to migrate DB: %v", err)
	}

	repo := sqlite.New(database, logger)

	// Seed the operator account once; a later start with the same email is a no-op
	authSvc := auth.NewService(repo, cfg.JWTSecret, cfg.TokenDuration)
	if err := authSvc.EnsureSeedAdmin(ctx, cfg.AdminEmail, cfg.AdminName, cfg.AdminPassword); err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}

	handler, err := api.SetupRoutes(cfg, version, buildTime, repo, authSvc)
	if err != nil {
		log.Fatalf("Failed to set up routes: %v", err)
	}

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.APITimeout,
		WriteTimeout: cfg.APITimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	// Close database connection
	if err := database.Close(); err != nil {
		log.Printf("Error closing DB: %v", err)
	}

	log.Println("Server exited")
}
