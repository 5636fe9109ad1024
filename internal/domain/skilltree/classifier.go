package skilltree

import (
	"skill-matrix/internal/domain/catalogue"

	"github.com/google/uuid"
)

// Membership tells whether a category transitively holds an added skill
// and/or a skill the user has not added yet.
type Membership struct {
	HasAdded bool
	HasOther bool
}

// Classifier computes Membership per category. Results are memoized on the
// classifier itself, so create one per request.
type Classifier struct {
	hierarchy        *Hierarchy
	skillsByCategory map[uuid.UUID][]catalogue.Skill
	added            IDSet
	memo             map[uuid.UUID]Membership
}

func NewClassifier(h *Hierarchy, skillsByCategory map[uuid.UUID][]catalogue.Skill, added IDSet) *Classifier {
	return &Classifier{
		hierarchy:        h,
		skillsByCategory: skillsByCategory,
		added:            added,
		memo:             make(map[uuid.UUID]Membership, h.Len()),
	}
}

func (c *Classifier) Classify(categoryID uuid.UUID) Membership {
	if m, ok := c.memo[categoryID]; ok {
		return m
	}

	var m Membership
	for _, sk := range c.skillsByCategory[categoryID] {
		if c.added.Has(sk.ID) {
			m.HasAdded = true
		} else {
			m.HasOther = true
		}
		if m.HasAdded && m.HasOther {
			break
		}
	}
	for _, sub := range c.hierarchy.Children(categoryID) {
		if m.HasAdded && m.HasOther {
			break
		}
		sm := c.Classify(sub.ID)
		m.HasAdded = m.HasAdded || sm.HasAdded
		m.HasOther = m.HasOther || sm.HasOther
	}

	c.memo[categoryID] = m
	return m
}

// CategorySets classifies every category and returns the ids of those
// holding added skills and those holding other skills.
func (c *Classifier) CategorySets() (added IDSet, other IDSet) {
	added, other = IDSet{}, IDSet{}
	for id := range c.hierarchy.byID {
		m := c.Classify(id)
		if m.HasAdded {
			added.Add(id)
		}
		if m.HasOther {
			other.Add(id)
		}
	}
	return added, other
}

// PartitionSkills splits the catalogue's skill ids into those the user has
// an entry for and the rest. Entry ids unknown to the catalogue are dropped.
func PartitionSkills(skills []catalogue.Skill, entrySkillIDs IDSet) (added IDSet, other IDSet) {
	added, other = IDSet{}, IDSet{}
	for _, sk := range skills {
		if entrySkillIDs.Has(sk.ID) {
			added.Add(sk.ID)
		} else {
			other.Add(sk.ID)
		}
	}
	return added, other
}
