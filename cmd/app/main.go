package main

import (
	"voyage/config"
	"voyage/di"
	"voyage/helper"
	"voyage/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Voyage API
// @version 1.0
// @description Hotel catalogue, room inventory, bookings, payments and reviews.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
