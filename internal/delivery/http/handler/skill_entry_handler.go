package handler

import (
	"errors"

	"skill-matrix/internal/delivery/http/dto"
	"skill-matrix/internal/delivery/http/middleware"
	"skill-matrix/internal/domain/skillentry"
	"skill-matrix/internal/pkg/response"
	"skill-matrix/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillEntryHandler struct {
	uc usecase.SkillEntryUsecase
}

// SkillID stays a string so one bad reference fails only its own entry.
type entryRequest struct {
	SkillID             string                  `json:"skill_id"`
	Proficiency         *skillentry.Proficiency `json:"proficiency"`
	UsedInLastSixMonths bool                    `json:"used_in_last_six_months"`
}

type saveEntriesRequest struct {
	Entries []entryRequest `json:"entries"`
}

func NewSkillEntryHandler(uc usecase.SkillEntryUsecase) *SkillEntryHandler {
	return &SkillEntryHandler{uc: uc}
}

// RegisterRoutes mounts under the authenticated /users group.
func (h *SkillEntryHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/me/skills")
	grp.Get("/", h.List)
	grp.Post("/", h.Save)
}

// RegisterAdminRoutes expects r to be guarded by the staff middleware.
func (h *SkillEntryHandler) RegisterAdminRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/skills/matrix", h.Matrix)
}

func (h *SkillEntryHandler) List(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	views, err := h.uc.SkillsList(c.Context(), userID)
	if err != nil {
		return mapSkillEntryUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSkillsListResponse(views))
}

// Save answers 200 with one result per entry, including failed ones.
func (h *SkillEntryHandler) Save(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req saveEntriesRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	if len(req.Entries) == 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload",
			response.FieldError{Field: "entries", Error: "at least one entry is required"}, nil)
	}

	in := make([]usecase.EntryInput, 0, len(req.Entries))
	for _, e := range req.Entries {
		in = append(in, usecase.EntryInput{
			SkillID:             e.SkillID,
			Proficiency:         e.Proficiency,
			UsedInLastSixMonths: e.UsedInLastSixMonths,
		})
	}

	results, err := h.uc.SaveEntries(c.Context(), userID, in)
	if err != nil {
		return mapSkillEntryUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewEntryResultResponses(results))
}

func (h *SkillEntryHandler) Matrix(c fiber.Ctx) error {
	rows, err := h.uc.Matrix(c.Context())
	if err != nil {
		return mapSkillEntryUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMatrixResponse(rows))
}

func mapSkillEntryUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrInvalidProficiencyLevel):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid proficiency level", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
