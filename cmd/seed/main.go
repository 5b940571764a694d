// Command seed creates the caretaker (admin) account that bookings are
// assigned to. Running it again with the same SEED_ADMIN_EMAIL is a no-op.
package main

import (
	"context"

	"petcare-booking/internal/adapters/persistence/models"
	"petcare-booking/internal/adapters/persistence/repositories"
	"petcare-booking/internal/config"
	"petcare-booking/internal/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	logger.Init(logger.Options{Level: "info", Pretty: true})
	log := logger.Get()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer config.CloseDatabase()

	if err := models.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to auto migrate")
	}

	seeder := config.NewSeeder(repositories.NewUserRepository(db), cfg.Seed)
	admin, err := seeder.Run(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}

	log.Info().Uint("admin_id", admin.ID).Msg("use this id as adminId when booking")
}
