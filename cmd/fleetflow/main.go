package main

import (
	"fmt"
	"os"

	"fleetflow/internal/auth"
	"fleetflow/internal/config"
	"fleetflow/internal/db"
	httphandler "fleetflow/internal/http"
	"fleetflow/internal/http/middleware"
	"fleetflow/internal/logger"
	"fleetflow/internal/repository/postgres"
	"fleetflow/internal/service"
)

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
	tokens := auth.NewManager(cfg.Auth.AccessSecret, cfg.Auth.TokenTTL)
	devMode := cfg.Environment != "production"

	authService := service.NewAuthService(store, tokens, cfg.Auth.ResetTokenTTL, devMode)
	vehicleService := service.NewVehicleService(store)
	driverService := service.NewDriverService(store)
	tripService := service.NewTripService(store)
	fuelLogService := service.NewFuelLogService(store)
	serviceLogService := service.NewServiceLogService(store)
	dashboardService := service.NewDashboardService(store)
	analyticsService := service.NewAnalyticsService(store)
	exportService := service.NewExportService(store, analyticsService)

	handler := httphandler.NewHandler(
		authService,
		vehicleService,
		driverService,
		tripService,
		fuelLogService,
		serviceLogService,
		dashboardService,
		analyticsService,
		exportService,
		log,
	)
	router := httphandler.NewRouter(handler, middleware.Auth(tokens, store.Users()), cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting fleet service")

	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
