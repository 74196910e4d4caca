package main

import (
	"context"
	"encore/config"
	"encore/di"
	"encore/helper"
	"encore/internal/domains/auth/model/dto"
	"encore/shared/logger"
	"encore/shared/validator"
	"os"

	"github.com/rs/zerolog/log"
)

const (
	argLength    = 2
	argSeedAdmin = "seed-admin"
)

func main() {
	logger.InitLogger()

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration direction (up/down) is required")
	}

	cfg := config.Get()

	logger.SetLogLevel(cfg)

	if os.Args[1] == argSeedAdmin {
		seedAdmin(cfg)

		return
	}

	if err := helper.Run(cfg, helper.Action(os.Args[1])); err != nil {
		log.Fatal().Err(err).Msg("Use 'up', 'down', 'drop', 'step-up' or 'seed-admin'")
	}
}

func seedAdmin(cfg *config.Config) {
	req := dto.SeedAdminRequest{
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
		FullName: cfg.Admin.FullName,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		log.Fatal().Err(err).Msg("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	created, err := di.InitializeAuth().SeedAdmin(context.Background(), req)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to seed admin")
	}

	log.Info().Bool("created", created).Str("email", req.Email).Msg("Admin seed finished.")
}
