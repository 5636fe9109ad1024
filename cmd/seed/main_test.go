package main

import (
	"errors"
	"testing"

	"skill-matrix/internal/config"
	"skill-matrix/internal/pkg/logger"
)

func TestCataloguePath(t *testing.T) {
	var cfg config.Config
	cfg.Seed.CatalogueFile = "env.yaml"

	if p, _ := cataloguePath(options{file: " flag.yaml "}, cfg); p != "flag.yaml" {
		t.Fatalf("expected flag to win, got %q", p)
	}
	if p, _ := cataloguePath(options{}, cfg); p != "env.yaml" {
		t.Fatalf("expected env fallback, got %q", p)
	}
	if _, err := cataloguePath(options{}, config.Config{}); !errors.Is(err, errNoCatalogueFile) {
		t.Fatalf("expected errNoCatalogueFile, got %v", err)
	}
}

func TestRun_MissingFileReturnsError(t *testing.T) {
	if err := run(config.Config{}, logger.Nop(), options{withDefaults: true}); !errors.Is(err, errNoCatalogueFile) {
		t.Fatalf("expected errNoCatalogueFile, got %v", err)
	}
}
