package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skill-matrix/internal/config"
	"skill-matrix/internal/database"
	"skill-matrix/internal/database/migration"
	dbpostgres "skill-matrix/internal/database/postgres"
	"skill-matrix/internal/database/seeder"
	"skill-matrix/internal/infrastructure/cache"
	"skill-matrix/internal/infrastructure/persistence/postgres"
	"skill-matrix/internal/pkg/jwt"
	"skill-matrix/internal/pkg/logger"
	"skill-matrix/internal/repository"
	"skill-matrix/internal/usecase"
	"skill-matrix/internal/ws"
)

// Container owns every long-lived dependency of the server.
type Container struct {
	Config config.Config
	Logger *logger.Logger
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	JWT    jwt.Service

	Users *postgres.UserRepository

	Auth         *usecase.Auth
	User         *usecase.User
	Organisation *usecase.Organisation
	Catalogue    *usecase.Catalogue
	SkillEntry   *usecase.SkillEntry
}

func NewContainer(cfg config.Config, log *logger.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	users, err := postgres.NewUserRepository(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("prepare user repository: %w", err)
	}

	c := &Container{
		Config: cfg,
		Logger: log,
		DB:     db,
		Cache:  cache.NewRedis(cfg.Redis, log),
		Hub:    ws.NewHub(log),
		JWT: jwt.NewHMACService(
			cfg.JWT.AccessSecret,
			cfg.JWT.RefreshSecret,
			cfg.JWT.AccessExpiresIn,
			cfg.JWT.RefreshExpiresIn,
		),
		Users: users,
	}

	categories := repository.NewPostgresCategoryRepository(db)
	skills := repository.NewPostgresSkillRepository(db)
	entries := repository.NewPostgresSkillEntryRepository(db)
	org := repository.NewPostgresOrganisationRepository(db)
	profiles := repository.NewPostgresProfileRepository(db)

	c.Auth = usecase.NewAuthUsecase(users, c.JWT)
	c.User = usecase.NewUserUsecase(users, profiles, org)
	c.Organisation = usecase.NewOrganisationUsecase(org)
	c.Catalogue = usecase.NewCatalogueUsecase(categories, skills, c.Cache, c.Hub, log)
	c.SkillEntry = usecase.NewSkillEntryUsecase(c.Catalogue, skills, entries, log)

	return c, nil
}

// Migrate applies pending SQL migrations.
func (c *Container) Migrate(ctx context.Context) error {
	r := migration.Runner{Dir: c.Config.Seed.MigrationsDir, Logger: c.Logger}
	return r.Run(ctx, c.DB.SQLDB())
}

// Seed runs the default seeders plus the configured staff account and
// catalogue file.
func (c *Container) Seed(ctx context.Context) error {
	seeders := seeder.Defaults()

	if c.Config.Seed.AdminEmail != "" {
		seeders = append(seeders, seeder.StaffSeeder{
			Email:    c.Config.Seed.AdminEmail,
			Password: c.Config.Seed.AdminPassword,
			Users:    c.Auth,
		})
	}

	if path := c.Config.Seed.CatalogueFile; path != "" {
		s, err := c.CatalogueSeeder(path)
		if err != nil {
			return err
		}
		seeders = append(seeders, s)
	}

	return seeder.Runner{Seeders: seeders, Logger: c.Logger}.Run(ctx, c.DB)
}

// CatalogueSeeder loads path and returns a seeder that bumps the catalogue
// version when it inserts anything.
func (c *Container) CatalogueSeeder(path string) (seeder.CatalogueSeeder, error) {
	f, err := seeder.LoadCatalogueFile(path)
	if err != nil {
		return seeder.CatalogueSeeder{}, err
	}
	cats, skills := f.Counts()
	c.Logger.Info("Catalogue file loaded", "path", path, "categories", cats, "skills", skills)

	return seeder.CatalogueSeeder{
		File:     f,
		OnChange: c.Catalogue.Invalidate,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Users != nil {
		errs = append(errs, c.Users.Close())
	}
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
