package skilltree

import (
	"math/rand/v2"
	"strconv"

	"skill-matrix/internal/domain/catalogue"

	"github.com/google/uuid"
)

type catalogueBuilder struct {
	snap catalogue.Snapshot
	ids  map[string]uuid.UUID
}

func newCatalogue() *catalogueBuilder {
	return &catalogueBuilder{ids: map[string]uuid.UUID{}}
}

func (b *catalogueBuilder) category(name, parent string) *catalogueBuilder {
	id := uuid.New()
	c := catalogue.Category{ID: id, Name: name}
	if parent != "" {
		pid := b.ids[parent]
		c.ParentID = &pid
	}
	b.ids[name] = id
	b.snap.Categories = append(b.snap.Categories, c)
	return b
}

func (b *catalogueBuilder) skill(name, category string) *catalogueBuilder {
	id := uuid.New()
	b.ids[name] = id
	b.snap.Skills = append(b.snap.Skills, catalogue.Skill{ID: id, Name: name, CategoryID: b.ids[category]})
	return b
}

func formsFor(snap catalogue.Snapshot) map[uuid.UUID]string {
	out := make(map[uuid.UUID]string, len(snap.Skills))
	for _, sk := range snap.Skills {
		out[sk.ID] = "form:" + sk.Name
	}
	return out
}

// randomCatalogue returns an acyclic catalogue: every category's parent was
// created before it.
func randomCatalogue(r *rand.Rand, nCategories, nSkills int) catalogue.Snapshot {
	var snap catalogue.Snapshot
	for i := 0; i < nCategories; i++ {
		c := catalogue.Category{ID: uuid.New(), Name: "c" + strconv.Itoa(r.IntN(nCategories*4))}
		if i > 0 && r.IntN(3) > 0 {
			pid := snap.Categories[r.IntN(i)].ID
			c.ParentID = &pid
		}
		snap.Categories = append(snap.Categories, c)
	}
	for i := 0; i < nSkills; i++ {
		snap.Skills = append(snap.Skills, catalogue.Skill{
			ID:         uuid.New(),
			Name:       "s" + strconv.Itoa(i),
			CategoryID: snap.Categories[r.IntN(nCategories)].ID,
		})
	}
	return snap
}

type shape struct {
	Name      string
	Skills    []string
	HasSkills bool
	Children  []shape
}

func shapeOf(n *Node[string]) shape {
	s := shape{Name: n.Name, HasSkills: n.HasSkills}
	for _, sk := range n.Skills {
		s.Skills = append(s.Skills, sk.Name)
	}
	for _, c := range n.Children {
		s.Children = append(s.Children, shapeOf(c))
	}
	return s
}
