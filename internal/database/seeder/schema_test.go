package seeder

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"skill-matrix/internal/database"
)

// columnsDB answers the information_schema query with a fixed column list.
type columnsDB struct {
	database.DB
	columns []string
	err     error
	table   string
}

func (d *columnsDB) Query(_ context.Context, _ string, args ...any) (database.Rows, error) {
	if d.err != nil {
		return nil, d.err
	}
	d.table, _ = args[0].(string)
	return &columnRows{names: d.columns, i: -1}, nil
}

type columnRows struct {
	names []string
	i     int
}

func (r *columnRows) Close()     {}
func (r *columnRows) Err() error { return nil }
func (r *columnRows) Next() bool {
	r.i++
	return r.i < len(r.names)
}
func (r *columnRows) Scan(dest ...any) error {
	p, ok := dest[0].(*string)
	if !ok {
		return fmt.Errorf("unexpected dest %T", dest[0])
	}
	*p = r.names[r.i]
	return nil
}

func TestEnsureTableColumns(t *testing.T) {
	ctx := context.Background()
	db := &columnsDB{columns: []string{"id", "name"}}

	if err := EnsureTableColumns(ctx, db, "skills_skills", "id", "name"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if db.table != "skills_skills" {
		t.Fatalf("expected table bound as arg, got %q", db.table)
	}

	err := EnsureTableColumns(ctx, db, "skills_skills", "id", "category_id", "parent_id")
	if !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
	if !strings.Contains(err.Error(), "category_id, parent_id") {
		t.Fatalf("expected every missing column named, got %v", err)
	}
}

func TestEnsureTableColumns_Errors(t *testing.T) {
	ctx := context.Background()
	if err := EnsureTableColumns(ctx, nil, "t", "id"); !errors.Is(err, database.ErrNilDB) {
		t.Fatalf("expected ErrNilDB, got %v", err)
	}
	if err := EnsureTableColumns(ctx, &columnsDB{}, " ", "id"); err == nil {
		t.Fatalf("expected error for empty table")
	}
	boom := errors.New("down")
	if err := EnsureTableColumns(ctx, &columnsDB{err: boom}, "t", "id"); !errors.Is(err, boom) {
		t.Fatalf("expected query error wrapped, got %v", err)
	}
}
