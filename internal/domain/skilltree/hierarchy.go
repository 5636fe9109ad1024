// Package skilltree builds the per-request category trees shown on the
// skills pages and guards the category hierarchy against cycles.
package skilltree

import (
	"errors"
	"fmt"
	"sort"

	"skill-matrix/internal/domain/catalogue"

	"github.com/google/uuid"
)

var (
	ErrCycle         = errors.New("cycle in category hierarchy")
	ErrUnknownParent = errors.New("parent category does not exist")
)

// IDSet is a set of category or skill ids.
type IDSet map[uuid.UUID]struct{}

func NewIDSet(ids ...uuid.UUID) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s IDSet) Add(id uuid.UUID) {
	s[id] = struct{}{}
}

func (s IDSet) Has(id uuid.UUID) bool {
	_, ok := s[id]
	return ok
}

// Slice returns the ids in a stable order.
func (s IDSet) Slice() []uuid.UUID {
	out := make([]uuid.UUID, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// Hierarchy indexes a flat category list by id and by parent. It is built
// once per request; children and roots are ordered by name.
type Hierarchy struct {
	byID     map[uuid.UUID]catalogue.Category
	children map[uuid.UUID][]catalogue.Category
	roots    []catalogue.Category
}

func NewHierarchy(categories []catalogue.Category) *Hierarchy {
	h := &Hierarchy{
		byID:     make(map[uuid.UUID]catalogue.Category, len(categories)),
		children: make(map[uuid.UUID][]catalogue.Category),
	}
	for _, c := range categories {
		h.byID[c.ID] = c
		if c.ParentID == nil {
			h.roots = append(h.roots, c)
			continue
		}
		h.children[*c.ParentID] = append(h.children[*c.ParentID], c)
	}

	sortCategories(h.roots)
	for id := range h.children {
		sortCategories(h.children[id])
	}
	return h
}

func (h *Hierarchy) Len() int {
	return len(h.byID)
}

func (h *Hierarchy) Get(id uuid.UUID) (catalogue.Category, bool) {
	c, ok := h.byID[id]
	return c, ok
}

func (h *Hierarchy) Roots() []catalogue.Category {
	return h.roots
}

func (h *Hierarchy) Children(id uuid.UUID) []catalogue.Category {
	return h.children[id]
}

// Path returns the names from the root down to the category. It stops after
// Len() hops so a corrupted chain cannot loop forever.
func (h *Hierarchy) Path(id uuid.UUID) []string {
	var names []string
	cur, ok := h.byID[id]
	for hops := 0; ok && hops <= h.Len(); hops++ {
		names = append(names, cur.Name)
		if cur.ParentID == nil {
			break
		}
		cur, ok = h.byID[*cur.ParentID]
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return names
}

// ValidateParent checks that making proposedParentID the parent of
// categoryID keeps the hierarchy acyclic. categories is the committed state;
// categoryID may be absent from it when the category is being created.
// A nil proposedParentID is always valid.
func ValidateParent(categories []catalogue.Category, categoryID uuid.UUID, proposedParentID *uuid.UUID) error {
	if proposedParentID == nil {
		return nil
	}

	parentOf := make(map[uuid.UUID]*uuid.UUID, len(categories))
	for _, c := range categories {
		parentOf[c.ID] = c.ParentID
	}
	if _, ok := parentOf[*proposedParentID]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownParent, *proposedParentID)
	}

	limit := len(categories)
	cur := proposedParentID
	for hops := 0; cur != nil; hops++ {
		if *cur == categoryID {
			return fmt.Errorf("%w: category=%s parent=%s", ErrCycle, categoryID, *proposedParentID)
		}
		if hops >= limit {
			return fmt.Errorf("%w: chain longer than %d categories", ErrCycle, limit)
		}
		cur = parentOf[*cur]
	}
	return nil
}

func sortCategories(cs []catalogue.Category) {
	sort.SliceStable(cs, func(i, j int) bool { return cs[i].Name < cs[j].Name })
}
