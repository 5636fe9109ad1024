package seeder

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrInvalidCatalogueFile = errors.New("invalid catalogue file")

// CatalogueFile is the YAML layout of a seed catalogue. Nesting expresses the
// parent link, so a file can never describe a cycle.
type CatalogueFile struct {
	Categories []CategoryNode `yaml:"categories"`
}

type CategoryNode struct {
	Name          string         `yaml:"name"`
	Skills        []string       `yaml:"skills"`
	Subcategories []CategoryNode `yaml:"subcategories"`
}

func LoadCatalogueFile(path string) (CatalogueFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return CatalogueFile{}, fmt.Errorf("read catalogue file: %w", err)
	}
	return ParseCatalogue(bytes.NewReader(raw))
}

func ParseCatalogue(r io.Reader) (CatalogueFile, error) {
	var f CatalogueFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return CatalogueFile{}, nil
		}
		return CatalogueFile{}, fmt.Errorf("%w: %v", ErrInvalidCatalogueFile, err)
	}
	if err := validateNodes(f.Categories, ""); err != nil {
		return CatalogueFile{}, err
	}
	return f, nil
}

func validateNodes(nodes []CategoryNode, path string) error {
	seen := map[string]struct{}{}
	for _, n := range nodes {
		name := strings.TrimSpace(n.Name)
		if name == "" {
			return fmt.Errorf("%w: empty category name under %q", ErrInvalidCatalogueFile, path)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: duplicate category %q under %q", ErrInvalidCatalogueFile, name, path)
		}
		seen[name] = struct{}{}

		here := strings.TrimPrefix(path+" > "+name, " > ")
		skills := map[string]struct{}{}
		for _, sk := range n.Skills {
			sk = strings.TrimSpace(sk)
			if sk == "" {
				return fmt.Errorf("%w: empty skill name in %q", ErrInvalidCatalogueFile, here)
			}
			if _, dup := skills[sk]; dup {
				return fmt.Errorf("%w: duplicate skill %q in %q", ErrInvalidCatalogueFile, sk, here)
			}
			skills[sk] = struct{}{}
		}
		if err := validateNodes(n.Subcategories, here); err != nil {
			return err
		}
	}
	return nil
}

// Counts returns the number of categories and skills in the file.
func (f CatalogueFile) Counts() (categories, skills int) {
	var walk func([]CategoryNode)
	walk = func(nodes []CategoryNode) {
		for _, n := range nodes {
			categories++
			skills += len(n.Skills)
			walk(n.Subcategories)
		}
	}
	walk(f.Categories)
	return categories, skills
}
