package main

import (
	"context"
	"fmt"
	"os"

	"fleetflow/internal/config"
	"fleetflow/internal/db"
	"fleetflow/internal/logger"
	"fleetflow/internal/model"
	"fleetflow/internal/repository/postgres"
	"fleetflow/internal/service"
)

// Seeds the initial admin account so a fresh deployment has a login.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	store := postgres.NewStore(database)

	created, err := service.SeedUser(context.Background(), store, service.SeedUserInput{
		Email:    "admin@fleetflow.com",
		Password: "admin123",
		Name:     "Fleet Admin",
		Role:     model.RoleFleetManager,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin user")
	}
	if !created {
		log.Info().Msg("admin user already exists")
		return
	}
	log.Info().Str("email", "admin@fleetflow.com").Msg("created admin user")
}
