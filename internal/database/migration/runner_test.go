package migration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadMigrations_SortsAndFilters(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "V2__skills.sql", "CREATE TABLE skills (id uuid);")
	writeFile(t, dir, "V1__init.sql", "CREATE TABLE users (id uuid);")
	writeFile(t, dir, "README.md", "ignored")

	migs, err := LoadMigrations(dir)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(migs) != 2 {
		t.Fatalf("expected 2 migrations, got %d", len(migs))
	}
	if migs[0].Version != 1 || migs[0].Name != "init" {
		t.Fatalf("unexpected first migration %+v", migs[0])
	}
	if migs[1].Version != 2 {
		t.Fatalf("unexpected second migration %+v", migs[1])
	}
	if migs[0].Checksum == "" || migs[0].Checksum == migs[1].Checksum {
		t.Fatalf("expected distinct checksums")
	}
}

func TestLoadMigrations_DuplicateVersion(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "V1__a.sql", "SELECT 1;")
	writeFile(t, dir, "V01__b.sql", "SELECT 2;")

	_, err := LoadMigrations(dir)
	if err == nil || !strings.Contains(err.Error(), "duplicate migration version") {
		t.Fatalf("expected duplicate version error, got %v", err)
	}
}

func TestLoadMigrations_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "V1__empty.sql", "   \n")

	if _, err := LoadMigrations(dir); err == nil {
		t.Fatalf("expected error for empty migration")
	}
}

func TestLoadMigrations_MissingDir(t *testing.T) {
	migs, err := LoadMigrations(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(migs) != 0 {
		t.Fatalf("expected no migrations")
	}
}

func TestRepositoryMigrationsParse(t *testing.T) {
	migs, err := LoadMigrations(filepath.Join("..", "..", "..", "migrations"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(migs) == 0 {
		t.Fatalf("expected bundled migrations")
	}
}
