package main

import (
	"context"
	"fmt"
	"os"

	dbfs "github.com/akash-insiders/community-hub/db"
	"github.com/akash-insiders/community-hub/internal/auth"
	"github.com/akash-insiders/community-hub/internal/config"
	"github.com/akash-insiders/community-hub/internal/db"
	"github.com/akash-insiders/community-hub/internal/repository/sqlite"
)

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	database, err := db.New(ctx, cfg.DatabasePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "DB init error: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	// run migrations using internal/db.Migrate
	if err := db.Migrate(ctx, database, dbfs.Migrations); err != nil {
		fmt.Fprintf(os.Stderr, "Migration runner error: %v\n", err)
		os.Exit(1)
	}

	// seed the operator account (no-op when the email already exists)
	repo := sqlite.New(database, nil)
	authSvc := auth.NewService(repo, cfg.JWTSecret, cfg.TokenDuration)
	if err := authSvc.EnsureSeedAdmin(ctx, cfg.AdminEmail, cfg.AdminName, cfg.AdminPassword); err != nil {
		fmt.Fprintf(os.Stderr, "Admin seed error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Database initialized successfully.")
}
