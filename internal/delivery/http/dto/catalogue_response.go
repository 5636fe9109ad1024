package dto

import (
	"skill-matrix/internal/domain/catalogue"

	"github.com/google/uuid"
)

type CategoryResponse struct {
	ID       uuid.UUID  `json:"id"`
	Name     string     `json:"name"`
	ParentID *uuid.UUID `json:"parent_id"`
}

func NewCategoryResponse(c catalogue.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, ParentID: c.ParentID}
}

type CatalogueResponse struct {
	Version    int64              `json:"version"`
	Categories []CategoryResponse `json:"categories"`
	Skills     []SkillResponse    `json:"skills"`
}

func NewCatalogueResponse(s catalogue.Snapshot) CatalogueResponse {
	out := CatalogueResponse{
		Version:    s.Version,
		Categories: make([]CategoryResponse, 0, len(s.Categories)),
		Skills:     make([]SkillResponse, 0, len(s.Skills)),
	}
	for _, c := range s.Categories {
		out.Categories = append(out.Categories, NewCategoryResponse(c))
	}
	for _, sk := range s.Skills {
		out.Skills = append(out.Skills, NewSkillResponse(sk))
	}
	return out
}
