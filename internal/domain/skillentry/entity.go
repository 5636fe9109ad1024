package skillentry

import (
	"time"

	"github.com/google/uuid"
)

type Proficiency int16

const (
	ProficiencyNone Proficiency = iota
	ProficiencyAwareness
	ProficiencyLimited
	ProficiencyModerate
	ProficiencyGood
)

var proficiencyLabels = [...]string{
	ProficiencyNone:      "No knowledge or experience",
	ProficiencyAwareness: "Knowledge but no experience",
	ProficiencyLimited:   "Limited experience",
	ProficiencyModerate:  "Moderate experience",
	ProficiencyGood:      "Good experience",
}

func (p Proficiency) Valid() bool {
	return p >= ProficiencyNone && p <= ProficiencyGood
}

func (p Proficiency) Label() string {
	if !p.Valid() {
		return ""
	}
	return proficiencyLabels[p]
}

type Choice struct {
	Value Proficiency `json:"value"`
	Label string      `json:"label"`
}

func Choices() []Choice {
	out := make([]Choice, 0, len(proficiencyLabels))
	for v := ProficiencyNone; v <= ProficiencyGood; v++ {
		out = append(out, Choice{Value: v, Label: v.Label()})
	}
	return out
}

// SkillEntry is one user's self-assessment for one skill. At most one entry
// exists per (UserID, SkillID).
type SkillEntry struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	SkillID             uuid.UUID
	Proficiency         Proficiency
	UsedInLastSixMonths bool
	LastModified        time.Time
}

// Differs reports whether applying (p, used) would change the entry.
func (e SkillEntry) Differs(p Proficiency, used bool) bool {
	return e.Proficiency != p || e.UsedInLastSixMonths != used
}
