package handler

import (
	"errors"

	"skill-matrix/internal/delivery/http/middleware"
	"skill-matrix/internal/pkg/response"
	"skill-matrix/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type OrganisationHandler struct {
	uc usecase.OrganisationUsecase
}

type createOrganisationItemRequest struct {
	Name string `json:"name"`
}

func NewOrganisationHandler(uc usecase.OrganisationUsecase) *OrganisationHandler {
	return &OrganisationHandler{uc: uc}
}

func (h *OrganisationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/organisation/:kind", h.List)
}

// RegisterAdminRoutes expects r to be guarded by the staff middleware.
func (h *OrganisationHandler) RegisterAdminRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/organisation/:kind", h.Create)
}

func (h *OrganisationHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context(), c.Params("kind"))
	if err != nil {
		return mapOrganisationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *OrganisationHandler) Create(c fiber.Ctx) error {
	var req createOrganisationItemRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	item, err := h.uc.Create(c.Context(), c.Params("kind"), req.Name)
	if err != nil {
		return mapOrganisationUsecaseError(err)
	}
	return response.Created(c, item)
}

func mapOrganisationUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnknownOrganisationKind):
		return middleware.NewAppError(fiber.StatusNotFound, "Unknown organisation list", nil, err)
	case errors.Is(err, usecase.ErrOrganisationItemConflict):
		return middleware.NewAppError(fiber.StatusConflict, "Item already exists", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
