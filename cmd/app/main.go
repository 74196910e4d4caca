package main

import (
	"encore/config"
	"encore/di"
	"encore/helper"
	"encore/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Encore Booking API
// @version 1.0
// @description Bookings, shows and chat for the tribute act.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.apikey APIKey
// @in header
// @name X-API-Key
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	sink := logger.AttachFileSink(cfg)
	defer func() {
		if err := sink.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close log file.")
		}
	}()

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
