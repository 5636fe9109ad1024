package skilltree

import (
	"fmt"

	"skill-matrix/internal/domain/catalogue"

	"github.com/google/uuid"
)

// Views is the pair of trees shown on the skills page together with the id
// sets used to filter them.
type Views[F any] struct {
	Added            *Node[F]
	Other            *Node[F]
	AddedSkillIDs    IDSet
	OtherSkillIDs    IDSet
	AddedCategoryIDs IDSet
	OtherCategoryIDs IDSet
}

// BuildViews partitions the catalogue by entrySkillIDs, classifies every
// category once and builds the added and other trees. forms must hold a
// value for every skill in snap.
func BuildViews[F any](snap catalogue.Snapshot, entrySkillIDs IDSet, forms map[uuid.UUID]F) (Views[F], error) {
	h := NewHierarchy(snap.Categories)
	byCategory := snap.SkillsByCategory()

	addedSkills, otherSkills := PartitionSkills(snap.Skills, entrySkillIDs)
	addedCats, otherCats := NewClassifier(h, byCategory, addedSkills).CategorySets()

	added, err := Build(TreeInput[F]{
		Hierarchy:        h,
		SkillsByCategory: byCategory,
		ValidCategoryIDs: addedCats,
		ValidSkillIDs:    addedSkills,
		Forms:            forms,
	})
	if err != nil {
		return Views[F]{}, fmt.Errorf("added tree: %w", err)
	}

	other, err := Build(TreeInput[F]{
		Hierarchy:        h,
		SkillsByCategory: byCategory,
		ValidCategoryIDs: otherCats,
		ValidSkillIDs:    otherSkills,
		Forms:            forms,
	})
	if err != nil {
		return Views[F]{}, fmt.Errorf("other tree: %w", err)
	}

	return Views[F]{
		Added:            added,
		Other:            other,
		AddedSkillIDs:    addedSkills,
		OtherSkillIDs:    otherSkills,
		AddedCategoryIDs: addedCats,
		OtherCategoryIDs: otherCats,
	}, nil
}
