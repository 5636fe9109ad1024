package seeder

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleCatalogue = `
categories:
  - name: Coding
    subcategories:
      - name: Python
        skills: [Django, Pandas]
      - name: JavaScript
        skills: [React]
  - name: Statistics
    skills: [Regression]
`

func TestParseCatalogue(t *testing.T) {
	f, err := ParseCatalogue(strings.NewReader(sampleCatalogue))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	cats, skills := f.Counts()
	if cats != 4 || skills != 4 {
		t.Fatalf("expected 4 categories and 4 skills, got %d/%d", cats, skills)
	}
	if f.Categories[0].Subcategories[0].Skills[1] != "Pandas" {
		t.Fatalf("unexpected structure %+v", f.Categories[0])
	}
}

func TestParseCatalogue_Invalid(t *testing.T) {
	cases := map[string]string{
		"duplicate sibling": "categories:\n  - name: A\n  - name: A\n",
		"duplicate skill":   "categories:\n  - name: A\n    skills: [x, x]\n",
		"empty name":        "categories:\n  - name: ''\n",
		"unknown field":     "categories:\n  - name: A\n    parent: B\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseCatalogue(strings.NewReader(doc)); !errors.Is(err, ErrInvalidCatalogueFile) {
				t.Fatalf("expected ErrInvalidCatalogueFile, got %v", err)
			}
		})
	}
}

func TestParseCatalogue_SameNameUnderDifferentParents(t *testing.T) {
	doc := "categories:\n  - name: A\n    subcategories: [{name: Tools}]\n  - name: B\n    subcategories: [{name: Tools}]\n"
	if _, err := ParseCatalogue(strings.NewReader(doc)); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestLoadCatalogueFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalogue.yaml")
	if err := os.WriteFile(path, []byte(sampleCatalogue), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadCatalogueFile(path); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := LoadCatalogueFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestBundledCatalogueParses(t *testing.T) {
	if _, err := LoadCatalogueFile(filepath.Join("..", "..", "..", "catalogue.yaml")); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}
