package usecase

import (
	"context"
	"errors"
	"strings"

	"skill-matrix/internal/domain/catalogue"
	"skill-matrix/internal/domain/skilltree"
	"skill-matrix/internal/pkg/logger"
	"skill-matrix/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryConflict = errors.New("category already exists")
	ErrCategoryInUse    = errors.New("category has skills or subcategories")
	ErrCategoryCycle    = errors.New("cycle in category hierarchy")
	ErrParentNotFound   = errors.New("parent category not found")
	ErrSkillConflict    = errors.New("skill already exists in category")
	ErrSkillInUse       = errors.New("skill has entries")
	ErrUnknownCategory  = errors.New("unknown skill category")
)

type CategoryInput struct {
	Name     string
	ParentID *uuid.UUID
}

type SkillInput struct {
	Name       string
	CategoryID uuid.UUID
}

type CatalogueReader interface {
	Snapshot(ctx context.Context) (catalogue.Snapshot, error)
}

type CatalogueUsecase interface {
	CatalogueReader
	CreateCategory(ctx context.Context, in CategoryInput) (catalogue.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, in CategoryInput) (catalogue.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	CreateSkill(ctx context.Context, in SkillInput) (catalogue.Skill, error)
	UpdateSkill(ctx context.Context, id uuid.UUID, in SkillInput) (catalogue.Skill, error)
	DeleteSkill(ctx context.Context, id uuid.UUID) error
}

type Catalogue struct {
	categories repository.CategoryRepository
	skills     repository.SkillRepository
	cache      CatalogueCache
	notifier   CatalogueNotifier
	logger     *logger.Logger
}

func NewCatalogueUsecase(
	categories repository.CategoryRepository,
	skills repository.SkillRepository,
	cache CatalogueCache,
	notifier CatalogueNotifier,
	log *logger.Logger,
) *Catalogue {
	if log == nil {
		log = logger.Nop()
	}
	return &Catalogue{
		categories: categories,
		skills:     skills,
		cache:      cache,
		notifier:   notifier,
		logger:     log.With("usecase", "catalogue"),
	}
}

// Snapshot returns every category and skill. The result is cached under the
// current catalogue version; a cache failure falls back to the database.
func (u *Catalogue) Snapshot(ctx context.Context) (catalogue.Snapshot, error) {
	version, cacheable := u.currentVersion(ctx)
	if cacheable {
		var snap catalogue.Snapshot
		hit, err := u.cache.GetJSON(ctx, CatalogueSnapshotKey(version), &snap)
		if err != nil {
			u.logger.Warn("Catalogue cache read failed", "version", version, "error", err)
		}
		if hit && snap.Version == version {
			return snap, nil
		}
	}

	cats, err := u.categories.ListCategories(ctx)
	if err != nil {
		u.logger.Error("List categories failed", "error", err)
		return catalogue.Snapshot{}, ErrInternal
	}
	skills, err := u.skills.GetAllSkills(ctx)
	if err != nil {
		u.logger.Error("List skills failed", "error", err)
		return catalogue.Snapshot{}, ErrInternal
	}
	snap := catalogue.Snapshot{Version: version, Categories: cats, Skills: skills}

	if cacheable {
		if err := u.cache.SetJSON(ctx, CatalogueSnapshotKey(version), snap, 0); err != nil {
			u.logger.Warn("Catalogue cache write failed", "version", version, "error", err)
		}
	}
	return snap, nil
}

func (u *Catalogue) CreateCategory(ctx context.Context, in CategoryInput) (catalogue.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return catalogue.Category{}, ErrInvalidInput
	}

	id := uuid.New()
	created, err := u.categories.CreateCategory(ctx,
		catalogue.Category{ID: id, Name: name, ParentID: in.ParentID},
		parentGuard(id, in.ParentID),
	)
	if err != nil {
		return catalogue.Category{}, u.mapCategoryError("create", err)
	}

	u.catalogueChanged(ctx)
	return created, nil
}

func (u *Catalogue) UpdateCategory(ctx context.Context, id uuid.UUID, in CategoryInput) (catalogue.Category, error) {
	name := strings.TrimSpace(in.Name)
	if id == uuid.Nil || name == "" {
		return catalogue.Category{}, ErrInvalidInput
	}

	updated, err := u.categories.UpdateCategory(ctx,
		catalogue.Category{ID: id, Name: name, ParentID: in.ParentID},
		parentGuard(id, in.ParentID),
	)
	if err != nil {
		return catalogue.Category{}, u.mapCategoryError("update", err)
	}

	u.catalogueChanged(ctx)
	return updated, nil
}

func (u *Catalogue) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalidInput
	}
	if err := u.categories.DeleteCategory(ctx, id); err != nil {
		return u.mapCategoryError("delete", err)
	}
	u.catalogueChanged(ctx)
	return nil
}

func (u *Catalogue) CreateSkill(ctx context.Context, in SkillInput) (catalogue.Skill, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.CategoryID == uuid.Nil {
		return catalogue.Skill{}, ErrInvalidInput
	}

	created, err := u.skills.CreateSkill(ctx, catalogue.Skill{Name: name, CategoryID: in.CategoryID})
	if err != nil {
		return catalogue.Skill{}, u.mapSkillError("create", err)
	}

	u.catalogueChanged(ctx)
	return created, nil
}

func (u *Catalogue) UpdateSkill(ctx context.Context, id uuid.UUID, in SkillInput) (catalogue.Skill, error) {
	name := strings.TrimSpace(in.Name)
	if id == uuid.Nil || name == "" || in.CategoryID == uuid.Nil {
		return catalogue.Skill{}, ErrInvalidInput
	}

	updated, err := u.skills.UpdateSkill(ctx, catalogue.Skill{ID: id, Name: name, CategoryID: in.CategoryID})
	if err != nil {
		return catalogue.Skill{}, u.mapSkillError("update", err)
	}

	u.catalogueChanged(ctx)
	return updated, nil
}

func (u *Catalogue) DeleteSkill(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalidInput
	}
	if err := u.skills.DeleteSkill(ctx, id); err != nil {
		return u.mapSkillError("delete", err)
	}
	u.catalogueChanged(ctx)
	return nil
}

func parentGuard(id uuid.UUID, parentID *uuid.UUID) repository.ParentGuard {
	return func(existing []catalogue.Category) error {
		return skilltree.ValidateParent(existing, id, parentID)
	}
}

func (u *Catalogue) currentVersion(ctx context.Context) (int64, bool) {
	if u.cache == nil {
		return 0, false
	}
	v, err := u.cache.GetInt64(ctx, CatalogueVersionKey)
	if err != nil {
		u.logger.Warn("Catalogue version read failed", "error", err)
		return 0, false
	}
	return v, true
}

// Invalidate marks the catalogue as changed outside this usecase, such as by
// the seeder.
func (u *Catalogue) Invalidate(ctx context.Context) {
	u.catalogueChanged(ctx)
}

// catalogueChanged runs after a committed write. Failures only cost cache
// freshness, so they are logged and swallowed.
func (u *Catalogue) catalogueChanged(ctx context.Context) {
	var version int64
	if u.cache != nil {
		v, err := u.cache.Incr(ctx, CatalogueVersionKey)
		if err != nil {
			u.logger.Warn("Catalogue version bump failed", "error", err)
		} else {
			version = v
		}
		if err := u.cache.DeleteByPattern(ctx, catalogueSnapshotKeyGlob); err != nil {
			u.logger.Warn("Dropping stale catalogue snapshots failed", "error", err)
		}
	}
	if u.notifier != nil {
		u.notifier.NotifyCatalogueUpdated(version)
	}
}

func (u *Catalogue) mapCategoryError(op string, err error) error {
	switch {
	case errors.Is(err, skilltree.ErrCycle):
		return ErrCategoryCycle
	case errors.Is(err, skilltree.ErrUnknownParent):
		return ErrParentNotFound
	case errors.Is(err, repository.ErrCategoryNotFound):
		return ErrCategoryNotFound
	case errors.Is(err, repository.ErrCategoryConflict):
		return ErrCategoryConflict
	case errors.Is(err, repository.ErrCategoryInUse):
		return ErrCategoryInUse
	default:
		u.logger.Error("Category write failed", "op", op, "error", err)
		return ErrInternal
	}
}

func (u *Catalogue) mapSkillError(op string, err error) error {
	switch {
	case errors.Is(err, repository.ErrSkillNotFound):
		return ErrSkillNotFound
	case errors.Is(err, repository.ErrSkillConflict):
		return ErrSkillConflict
	case errors.Is(err, repository.ErrSkillCategoryNotFound):
		return ErrUnknownCategory
	case errors.Is(err, repository.ErrSkillInUse):
		return ErrSkillInUse
	default:
		u.logger.Error("Skill write failed", "op", op, "error", err)
		return ErrInternal
	}
}
