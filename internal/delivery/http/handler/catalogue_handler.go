package handler

import (
	"errors"

	"skill-matrix/internal/delivery/http/dto"
	"skill-matrix/internal/delivery/http/middleware"
	"skill-matrix/internal/pkg/response"
	"skill-matrix/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type CatalogueHandler struct {
	uc usecase.CatalogueUsecase
}

type categoryRequest struct {
	Name     string     `json:"name"`
	ParentID *uuid.UUID `json:"parent_id"`
}

type skillRequest struct {
	Name       string    `json:"name"`
	CategoryID uuid.UUID `json:"category_id"`
}

func NewCatalogueHandler(uc usecase.CatalogueUsecase) *CatalogueHandler {
	return &CatalogueHandler{uc: uc}
}

func (h *CatalogueHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/catalogue", h.Get)
}

// RegisterAdminRoutes expects r to be guarded by the staff middleware.
func (h *CatalogueHandler) RegisterAdminRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	cats := r.Group("/categories")
	cats.Post("/", h.CreateCategory)
	cats.Put("/:id", h.UpdateCategory)
	cats.Delete("/:id", h.DeleteCategory)

	skills := r.Group("/skills")
	skills.Post("/", h.CreateSkill)
	skills.Put("/:id", h.UpdateSkill)
	skills.Delete("/:id", h.DeleteSkill)
}

func (h *CatalogueHandler) Get(c fiber.Ctx) error {
	snap, err := h.uc.Snapshot(c.Context())
	if err != nil {
		return mapCatalogueUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCatalogueResponse(snap))
}

func (h *CatalogueHandler) CreateCategory(c fiber.Ctx) error {
	var req categoryRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.CreateCategory(c.Context(), usecase.CategoryInput{Name: req.Name, ParentID: req.ParentID})
	if err != nil {
		return mapCatalogueUsecaseError(err)
	}
	return response.Created(c, dto.NewCategoryResponse(created))
}

func (h *CatalogueHandler) UpdateCategory(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req categoryRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.UpdateCategory(c.Context(), id, usecase.CategoryInput{Name: req.Name, ParentID: req.ParentID})
	if err != nil {
		return mapCatalogueUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCategoryResponse(updated))
}

func (h *CatalogueHandler) DeleteCategory(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := h.uc.DeleteCategory(c.Context(), id); err != nil {
		return mapCatalogueUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *CatalogueHandler) CreateSkill(c fiber.Ctx) error {
	var req skillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.CreateSkill(c.Context(), usecase.SkillInput{Name: req.Name, CategoryID: req.CategoryID})
	if err != nil {
		return mapCatalogueUsecaseError(err)
	}
	return response.Created(c, dto.NewSkillResponse(created))
}

func (h *CatalogueHandler) UpdateSkill(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req skillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.UpdateSkill(c.Context(), id, usecase.SkillInput{Name: req.Name, CategoryID: req.CategoryID})
	if err != nil {
		return mapCatalogueUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSkillResponse(updated))
}

func (h *CatalogueHandler) DeleteSkill(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := h.uc.DeleteSkill(c.Context(), id); err != nil {
		return mapCatalogueUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func mapCatalogueUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrCategoryCycle):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Invalid parent category",
			response.FieldError{Field: "parent_id", Error: err.Error()}, err)
	case errors.Is(err, usecase.ErrParentNotFound):
		return middleware.NewAppError(fiber.StatusBadRequest, "Parent category not found",
			response.FieldError{Field: "parent_id", Error: err.Error()}, err)
	case errors.Is(err, usecase.ErrCategoryNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Category not found", nil, err)
	case errors.Is(err, usecase.ErrCategoryConflict):
		return middleware.NewAppError(fiber.StatusConflict, "Category already exists", nil, err)
	case errors.Is(err, usecase.ErrCategoryInUse):
		return middleware.NewAppError(fiber.StatusConflict, "Category still has skills or subcategories", nil, err)
	case errors.Is(err, usecase.ErrSkillNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Skill not found", nil, err)
	case errors.Is(err, usecase.ErrSkillConflict):
		return middleware.NewAppError(fiber.StatusConflict, "Skill already exists in category", nil, err)
	case errors.Is(err, usecase.ErrUnknownCategory):
		return middleware.NewAppError(fiber.StatusBadRequest, "Category not found",
			response.FieldError{Field: "category_id", Error: err.Error()}, err)
	case errors.Is(err, usecase.ErrSkillInUse):
		return middleware.NewAppError(fiber.StatusConflict, "Skill has entries", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
