package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/sohublabs/smartstore-backend/internal/admins"
	"github.com/sohublabs/smartstore-backend/pkg/config"
	"github.com/sohublabs/smartstore-backend/pkg/db"
	"github.com/sohublabs/smartstore-backend/pkg/logger"
)

// Seeds a back-office account. When -password is omitted a temporary one is
// generated and printed once.
func main() {
	email := flag.String("email", "", "admin email (required)")
	name := flag.String("name", "", "admin display name")
	password := flag.String("password", "", "password; generated when empty")
	flag.Parse()

	logg := logger.New(logger.Options{ServiceName: "seed-admin"})
	ctx := context.Background()

	if *email == "" {
		logg.Error(ctx, "missing -email flag", fmt.Errorf("email required"))
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil {
		logg.Warn(ctx, ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(ctx, "error closing database", err)
		}
	}()

	service, err := admins.NewService(admins.NewRepository(dbClient.DB()), cfg.JWT, cfg.Password, logg)
	if err != nil {
		logg.Error(ctx, "failed to create admin service", err)
		os.Exit(1)
	}

	admin, generated, err := service.Create(ctx, admins.CreateInput{
		Email:    *email,
		Name:     *name,
		Password: *password,
	})
	if err != nil {
		logg.Error(ctx, "failed to create admin", err)
		os.Exit(1)
	}

	fmt.Printf("created admin %s (%s)\n", admin.Email, admin.ID)
	if generated != "" {
		fmt.Printf("temporary password: %s\n", generated)
	}
}
