package seeder

import (
	"context"
	"fmt"

	"skill-matrix/internal/database"
	"skill-matrix/internal/domain/organisation"
)

type OrganisationSeeder struct {
	Items map[organisation.Kind][]string
}

func (OrganisationSeeder) Name() string { return "organisation" }

func (s OrganisationSeeder) Run(ctx context.Context, db database.DB) error {
	for _, kind := range organisation.Kinds() {
		if err := EnsureTableColumns(ctx, db, kind.Table(), "id", "name"); err != nil {
			return err
		}
	}

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, kind := range organisation.Kinds() {
			for _, name := range s.Items[kind] {
				_, err := tx.Exec(
					ctx,
					`INSERT INTO `+kind.Table()+` (id, name) VALUES (gen_random_uuid(), $1) ON CONFLICT (name) DO NOTHING`,
					name,
				)
				if err != nil {
					return fmt.Errorf("%s %q: %w", kind, name, err)
				}
			}
		}
		return nil
	})
}
