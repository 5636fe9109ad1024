package catalogue

import (
	"time"

	"github.com/google/uuid"
)

// Category is a node in the skill hierarchy. ParentID is a weak reference:
// categories exist independently of their parent.
type Category struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	ParentID  *uuid.UUID `json:"parent_id"`
	CreatedAt time.Time  `json:"created_at"`
}

func (c Category) IsRoot() bool {
	return c.ParentID == nil
}

type Skill struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	CategoryID uuid.UUID `json:"category_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// Snapshot is the full catalogue as read at one catalogue version.
type Snapshot struct {
	Version    int64      `json:"version"`
	Categories []Category `json:"categories"`
	Skills     []Skill    `json:"skills"`
}

// SkillsByCategory groups skills by their owning category.
func (s Snapshot) SkillsByCategory() map[uuid.UUID][]Skill {
	out := make(map[uuid.UUID][]Skill, len(s.Categories))
	for _, sk := range s.Skills {
		out[sk.CategoryID] = append(out[sk.CategoryID], sk)
	}
	return out
}

func (s Snapshot) SkillIDs() []uuid.UUID {
	out := make([]uuid.UUID, 0, len(s.Skills))
	for _, sk := range s.Skills {
		out = append(out, sk.ID)
	}
	return out
}
