package skilltree

import (
	"errors"
	"fmt"
	"sort"

	"skill-matrix/internal/domain/catalogue"

	"github.com/google/uuid"
)

// ErrMissingForm means a skill survived the valid-id filter without a bound
// form. Callers must derive both from the same skill universe.
var ErrMissingForm = errors.New("no form bound for skill")

// Node is one category in a filtered tree. The synthetic root has no
// category and never owns skills.
type Node[F any] struct {
	CategoryID uuid.UUID
	Name       string
	Skills     []catalogue.Skill
	HasSkills  bool
	Children   []*Node[F]
	EntryForms map[string]F
}

func (n *Node[F]) IsRoot() bool {
	return n.CategoryID == uuid.Nil
}

// Walk visits n and its descendants depth first, parents before children.
func (n *Node[F]) Walk(fn func(*Node[F])) {
	if n == nil {
		return
	}
	fn(n)
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// TreeInput carries everything Build needs. Forms maps a skill id to the
// value attached to that skill, typically a pre-filled entry form.
type TreeInput[F any] struct {
	Hierarchy        *Hierarchy
	SkillsByCategory map[uuid.UUID][]catalogue.Skill
	ValidCategoryIDs IDSet
	ValidSkillIDs    IDSet
	Forms            map[uuid.UUID]F
}

// Build returns a synthetic root whose children are the valid top-level
// categories. Every node keeps only valid skills and valid child categories,
// both ordered by name. The hierarchy must be acyclic.
func Build[F any](in TreeInput[F]) (*Node[F], error) {
	root := &Node[F]{EntryForms: map[string]F{}}
	for _, c := range in.Hierarchy.Roots() {
		if !in.ValidCategoryIDs.Has(c.ID) {
			continue
		}
		child := buildNode(in, c)
		root.Children = append(root.Children, child)
		if child.HasSkills {
			root.HasSkills = true
		}
	}

	if err := attachForms(root, in.Forms); err != nil {
		return nil, err
	}
	return root, nil
}

func buildNode[F any](in TreeInput[F], c catalogue.Category) *Node[F] {
	n := &Node[F]{
		CategoryID: c.ID,
		Name:       c.Name,
		EntryForms: map[string]F{},
	}

	for _, sk := range in.SkillsByCategory[c.ID] {
		if in.ValidSkillIDs.Has(sk.ID) {
			n.Skills = append(n.Skills, sk)
		}
	}
	sort.SliceStable(n.Skills, func(i, j int) bool { return n.Skills[i].Name < n.Skills[j].Name })
	n.HasSkills = len(n.Skills) > 0

	for _, sub := range in.Hierarchy.Children(c.ID) {
		if !in.ValidCategoryIDs.Has(sub.ID) {
			continue
		}
		child := buildNode(in, sub)
		n.Children = append(n.Children, child)
		if child.HasSkills {
			n.HasSkills = true
		}
	}
	return n
}

func attachForms[F any](root *Node[F], forms map[uuid.UUID]F) error {
	var err error
	root.Walk(func(n *Node[F]) {
		if err != nil {
			return
		}
		for _, sk := range n.Skills {
			f, ok := forms[sk.ID]
			if !ok {
				err = fmt.Errorf("%w: skill=%s name=%q", ErrMissingForm, sk.ID, sk.Name)
				return
			}
			n.EntryForms[sk.Name] = f
		}
	})
	return err
}
