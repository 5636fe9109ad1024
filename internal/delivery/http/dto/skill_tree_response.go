package dto

import (
	"time"

	"skill-matrix/internal/domain/catalogue"
	"skill-matrix/internal/domain/skillentry"
	"skill-matrix/internal/domain/skilltree"
	"skill-matrix/internal/usecase"

	"github.com/google/uuid"
)

type SkillResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	CategoryID uuid.UUID `json:"category_id"`
}

func NewSkillResponse(s catalogue.Skill) SkillResponse {
	return SkillResponse{ID: s.ID, Name: s.Name, CategoryID: s.CategoryID}
}

type EntryFormResponse struct {
	SkillID             uuid.UUID               `json:"skill_id"`
	Proficiency         *skillentry.Proficiency `json:"proficiency"`
	UsedInLastSixMonths bool                    `json:"used_in_last_six_months"`
	LastModified        *time.Time              `json:"last_modified,omitempty"`
}

// SkillTreeNode mirrors skilltree.Node. The root has no id or name.
type SkillTreeNode struct {
	ID            *uuid.UUID                   `json:"id,omitempty"`
	Name          string                       `json:"name,omitempty"`
	Skills        []SkillResponse              `json:"skills"`
	HasSkills     bool                         `json:"has_skills"`
	Subcategories []SkillTreeNode              `json:"subcategories"`
	EntryForms    map[string]EntryFormResponse `json:"entry_forms"`
}

func NewSkillTreeNode(n *skilltree.Node[usecase.EntryForm]) SkillTreeNode {
	out := SkillTreeNode{
		Name:          n.Name,
		Skills:        make([]SkillResponse, 0, len(n.Skills)),
		HasSkills:     n.HasSkills,
		Subcategories: make([]SkillTreeNode, 0, len(n.Children)),
		EntryForms:    make(map[string]EntryFormResponse, len(n.EntryForms)),
	}
	if !n.IsRoot() {
		id := n.CategoryID
		out.ID = &id
	}
	for _, s := range n.Skills {
		out.Skills = append(out.Skills, NewSkillResponse(s))
	}
	for _, child := range n.Children {
		out.Subcategories = append(out.Subcategories, NewSkillTreeNode(child))
	}
	for name, f := range n.EntryForms {
		out.EntryForms[name] = EntryFormResponse{
			SkillID:             f.SkillID,
			Proficiency:         f.Proficiency,
			UsedInLastSixMonths: f.UsedInLastSixMonths,
			LastModified:        f.LastModified,
		}
	}
	return out
}

type SkillsListResponse struct {
	AddedSkillTree        SkillTreeNode       `json:"added_skill_tree"`
	OtherSkillTree        SkillTreeNode       `json:"other_skill_tree"`
	AddedSkillIDs         []uuid.UUID         `json:"added_skill_ids"`
	OtherSkillIDs         []uuid.UUID         `json:"other_skill_ids"`
	AddedSkillCategoryIDs []uuid.UUID         `json:"added_skill_category_ids"`
	OtherSkillCategoryIDs []uuid.UUID         `json:"other_skill_category_ids"`
	ProficiencyChoices    []skillentry.Choice `json:"proficiency_choices"`
}

func NewSkillsListResponse(v usecase.SkillViews) SkillsListResponse {
	return SkillsListResponse{
		AddedSkillTree:        NewSkillTreeNode(v.Added),
		OtherSkillTree:        NewSkillTreeNode(v.Other),
		AddedSkillIDs:         v.AddedSkillIDs.Slice(),
		OtherSkillIDs:         v.OtherSkillIDs.Slice(),
		AddedSkillCategoryIDs: v.AddedCategoryIDs.Slice(),
		OtherSkillCategoryIDs: v.OtherCategoryIDs.Slice(),
		ProficiencyChoices:    skillentry.Choices(),
	}
}

type EntryResultResponse struct {
	SkillID             string                  `json:"skill_id"`
	Status              usecase.EntryStatus     `json:"status"`
	Error               string                  `json:"error,omitempty"`
	Proficiency         *skillentry.Proficiency `json:"proficiency,omitempty"`
	UsedInLastSixMonths *bool                   `json:"used_in_last_six_months,omitempty"`
	LastModified        *time.Time              `json:"last_modified,omitempty"`
}

func NewEntryResultResponses(results []usecase.EntryResult) []EntryResultResponse {
	out := make([]EntryResultResponse, 0, len(results))
	for _, r := range results {
		item := EntryResultResponse{SkillID: r.SkillRef, Status: r.Status}
		if r.SkillID != uuid.Nil {
			item.SkillID = r.SkillID.String()
		}
		if r.Error != nil {
			item.Error = r.Error.Error()
		} else {
			p, used, lm := r.Entry.Proficiency, r.Entry.UsedInLastSixMonths, r.Entry.LastModified
			item.Proficiency = &p
			item.UsedInLastSixMonths = &used
			item.LastModified = &lm
		}
		out = append(out, item)
	}
	return out
}

type MatrixUserResponse struct {
	UserID              uuid.UUID              `json:"user_id"`
	Email               string                 `json:"email"`
	Proficiency         skillentry.Proficiency `json:"proficiency"`
	ProficiencyLabel    string                 `json:"proficiency_label"`
	UsedInLastSixMonths bool                   `json:"used_in_last_six_months"`
	LastModified        time.Time              `json:"last_modified"`
}

type MatrixSkillResponse struct {
	Skill        SkillResponse        `json:"skill"`
	CategoryPath []string             `json:"category_path"`
	Users        []MatrixUserResponse `json:"users"`
}

func NewMatrixResponse(rows []usecase.MatrixSkill) []MatrixSkillResponse {
	out := make([]MatrixSkillResponse, 0, len(rows))
	for _, r := range rows {
		item := MatrixSkillResponse{
			Skill:        NewSkillResponse(r.Skill),
			CategoryPath: r.CategoryPath,
			Users:        make([]MatrixUserResponse, 0, len(r.Users)),
		}
		for _, u := range r.Users {
			item.Users = append(item.Users, MatrixUserResponse{
				UserID:              u.UserID,
				Email:               u.Email,
				Proficiency:         u.Proficiency,
				ProficiencyLabel:    u.Proficiency.Label(),
				UsedInLastSixMonths: u.UsedInLastSixMonths,
				LastModified:        u.LastModified,
			})
		}
		out = append(out, item)
	}
	return out
}
