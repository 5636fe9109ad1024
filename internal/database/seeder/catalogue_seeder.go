package seeder

import (
	"context"
	"fmt"
	"strings"

	"skill-matrix/internal/database"

	"github.com/google/uuid"
)

// CatalogueSeeder inserts a catalogue file. Existing categories and skills
// are matched by name within their parent and left untouched.
type CatalogueSeeder struct {
	File CatalogueFile
	// OnChange runs after a commit that inserted at least one row.
	OnChange func(ctx context.Context)
}

func (CatalogueSeeder) Name() string { return "catalogue" }

func (s CatalogueSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skills_categories", "id", "name", "parent_id"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "skills_skills", "id", "name", "category_id"); err != nil {
		return err
	}

	inserted := 0
	err := database.WithTx(ctx, db, func(tx database.Tx) error {
		n, err := seedNodes(ctx, tx, s.File.Categories, nil)
		inserted = n
		return err
	})
	if err != nil {
		return err
	}
	if inserted > 0 && s.OnChange != nil {
		s.OnChange(ctx)
	}
	return nil
}

func seedNodes(ctx context.Context, tx database.Tx, nodes []CategoryNode, parentID *uuid.UUID) (int, error) {
	inserted := 0
	for _, n := range nodes {
		name := strings.TrimSpace(n.Name)

		affected, err := tx.Exec(ctx,
			`INSERT INTO skills_categories (id, name, parent_id) VALUES (gen_random_uuid(), $1, $2) ON CONFLICT DO NOTHING`,
			name, parentArg(parentID),
		)
		if err != nil {
			return inserted, fmt.Errorf("category %q: %w", name, err)
		}
		inserted += int(affected)

		var id uuid.UUID
		if err := tx.QueryRow(ctx,
			`SELECT id FROM skills_categories WHERE name = $1 AND parent_id IS NOT DISTINCT FROM $2`,
			name, parentArg(parentID),
		).Scan(&id); err != nil {
			return inserted, fmt.Errorf("category %q: %w", name, err)
		}

		for _, sk := range n.Skills {
			affected, err := tx.Exec(ctx,
				`INSERT INTO skills_skills (id, name, category_id) VALUES (gen_random_uuid(), $1, $2) ON CONFLICT (name, category_id) DO NOTHING`,
				strings.TrimSpace(sk), id,
			)
			if err != nil {
				return inserted, fmt.Errorf("skill %q in %q: %w", sk, name, err)
			}
			inserted += int(affected)
		}

		sub, err := seedNodes(ctx, tx, n.Subcategories, &id)
		inserted += sub
		if err != nil {
			return inserted, err
		}
	}
	return inserted, nil
}

func parentArg(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}
