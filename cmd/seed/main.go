package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"skill-matrix/internal/app"
	"skill-matrix/internal/config"
	"skill-matrix/internal/database/seeder"
	"skill-matrix/internal/pkg/logger"
)

var errNoCatalogueFile = errors.New("provide -file or CATALOGUE_SEED_FILE")

type options struct {
	file         string
	withDefaults bool
}

func main() {
	var opts options
	flag.StringVar(&opts.file, "file", "", "catalogue YAML file (defaults to CATALOGUE_SEED_FILE)")
	flag.BoolVar(&opts.withDefaults, "defaults", true, "also seed organisation reference data")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	lg, err := logger.New(cfg.App.Environment)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	// Fatal exits without running defers, so run owns every cleanup.
	if err := run(cfg, lg, opts); err != nil {
		lg.Fatal("Seeding failed", "error", err)
	}
	lg.Sync()
}

func cataloguePath(opts options, cfg config.Config) (string, error) {
	if p := strings.TrimSpace(opts.file); p != "" {
		return p, nil
	}
	if p := strings.TrimSpace(cfg.Seed.CatalogueFile); p != "" {
		return p, nil
	}
	return "", errNoCatalogueFile
}

func run(cfg config.Config, lg *logger.Logger, opts options) error {
	path, err := cataloguePath(opts, cfg)
	if err != nil {
		return err
	}

	c, err := app.NewContainer(cfg, lg)
	if err != nil {
		return fmt.Errorf("init container: %w", err)
	}
	defer func() {
		if err := c.Close(); err != nil {
			lg.Error("Close error", "error", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := c.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	catalogueSeeder, err := c.CatalogueSeeder(path)
	if err != nil {
		return fmt.Errorf("catalogue file %s: %w", path, err)
	}

	var seeders []seeder.Seeder
	if opts.withDefaults {
		seeders = append(seeders, seeder.Defaults()...)
	}
	seeders = append(seeders, catalogueSeeder)

	if err := (seeder.Runner{Seeders: seeders, Logger: lg}).Run(ctx, c.DB); err != nil {
		return err
	}
	lg.Info("Seeding finished", "path", path)
	return nil
}
