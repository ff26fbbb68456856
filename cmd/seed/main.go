package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/lshigami/selfcheck/config"
	"github.com/lshigami/selfcheck/database"
	"github.com/lshigami/selfcheck/internal/catalog"
	"github.com/lshigami/selfcheck/internal/logger"
	"github.com/lshigami/selfcheck/internal/repository"
	"github.com/rs/zerolog/log"
)

// seed loads a YAML catalog into the database. It is safe to run repeatedly.
func main() {
	logger.Init()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	logger.SetLevel(cfg.LogLevel)

	path := flag.String("file", cfg.CatalogPath, "catalog YAML file")
	flag.Parse()

	if err := run(cfg, *path); err != nil {
		log.Fatal().Err(err).Str("file", *path).Msg("Seeding failed")
	}
}

func run(cfg *config.Config, path string) error {
	file, err := catalog.LoadFile(path)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get database handle: %w", err)
	}
	defer sqlDB.Close()

	if err := database.AutoMigrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	seeder := catalog.NewSeeder(repository.NewTestRepository(db), repository.NewUserRepository(db))
	report, err := seeder.Apply(ctx, file)
	if err != nil {
		return fmt.Errorf("apply catalog: %w", err)
	}
	log.Info().
		Int("testsCreated", report.TestsCreated).
		Int("testsUpdated", report.TestsUpdated).
		Int("usersCreated", report.UsersCreated).
		Int("usersSkipped", report.UsersSkipped).
		Msg("Seeding completed")
	return nil
}
