package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"skill-matrix/internal/domain/catalogue"
	"skill-matrix/internal/domain/skillentry"
	"skill-matrix/internal/domain/skilltree"
	"skill-matrix/internal/pkg/logger"
	"skill-matrix/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrSkillNotFound           = errors.New("skill not found")
	ErrInvalidProficiencyLevel = errors.New("invalid proficiency level")
	ErrInvalidInput            = errors.New("invalid input")
	ErrInvalidSkillID          = errors.New("invalid skill id")
	ErrMissingProficiency      = errors.New("proficiency is required")
)

type EntryStatus string

const (
	EntryCreated   EntryStatus = "created"
	EntryUpdated   EntryStatus = "updated"
	EntryUnchanged EntryStatus = "unchanged"
	EntryFailed    EntryStatus = "failed"
)

// EntryForm is the pre-filled form attached to a skill in a tree.
// Proficiency and LastModified are nil when the user has no entry yet.
type EntryForm struct {
	SkillID             uuid.UUID
	Proficiency         *skillentry.Proficiency
	UsedInLastSixMonths bool
	LastModified        *time.Time
}

type SkillViews = skilltree.Views[EntryForm]

// EntryInput is one submitted row as the client sent it. SkillID is not yet
// parsed and Proficiency is nil when omitted; both only fail their own entry.
type EntryInput struct {
	SkillID             string
	Proficiency         *skillentry.Proficiency
	UsedInLastSixMonths bool
}

// EntryResult echoes the submitted reference in SkillRef. SkillID is
// uuid.Nil when the reference did not parse.
type EntryResult struct {
	SkillID  uuid.UUID
	SkillRef string
	Status   EntryStatus
	Error    error
	Entry    skillentry.SkillEntry
}

type entryChange struct {
	skillID     uuid.UUID
	ref         string
	proficiency skillentry.Proficiency
	used        bool
}

func (c entryChange) result(status EntryStatus, e skillentry.SkillEntry) EntryResult {
	return EntryResult{SkillID: c.skillID, SkillRef: c.ref, Status: status, Entry: e}
}

func (c entryChange) failed(err error) EntryResult {
	return EntryResult{SkillID: c.skillID, SkillRef: c.ref, Status: EntryFailed, Error: err}
}

type MatrixCell struct {
	UserID              uuid.UUID
	Email               string
	Proficiency         skillentry.Proficiency
	UsedInLastSixMonths bool
	LastModified        time.Time
}

type MatrixSkill struct {
	Skill        catalogue.Skill
	CategoryPath []string
	Users        []MatrixCell
}

type SkillEntryUsecase interface {
	SkillsList(ctx context.Context, userID uuid.UUID) (SkillViews, error)
	SaveEntries(ctx context.Context, userID uuid.UUID, in []EntryInput) ([]EntryResult, error)
	Matrix(ctx context.Context) ([]MatrixSkill, error)
}

type SkillEntry struct {
	catalogue CatalogueReader
	skills    repository.SkillRepository
	entries   repository.SkillEntryRepository
	logger    *logger.Logger
}

func NewSkillEntryUsecase(
	cat CatalogueReader,
	skills repository.SkillRepository,
	entries repository.SkillEntryRepository,
	log *logger.Logger,
) *SkillEntry {
	if log == nil {
		log = logger.Nop()
	}
	return &SkillEntry{
		catalogue: cat,
		skills:    skills,
		entries:   entries,
		logger:    log.With("usecase", "skill_entry"),
	}
}

// SkillsList builds the added and other trees for userID. Every catalogue
// skill gets a form, so a missing form can only mean a builder bug.
func (u *SkillEntry) SkillsList(ctx context.Context, userID uuid.UUID) (SkillViews, error) {
	if userID == uuid.Nil {
		return SkillViews{}, ErrInvalidInput
	}

	snap, err := u.catalogue.Snapshot(ctx)
	if err != nil {
		return SkillViews{}, err
	}

	entries, err := u.entries.FindByUserID(ctx, userID)
	if err != nil {
		u.logger.Error("Load skill entries failed", "user_id", userID, "error", err)
		return SkillViews{}, ErrInternal
	}

	bySkill := make(map[uuid.UUID]skillentry.SkillEntry, len(entries))
	entryIDs := skilltree.NewIDSet()
	for _, e := range entries {
		bySkill[e.SkillID] = e
		entryIDs.Add(e.SkillID)
	}

	forms := make(map[uuid.UUID]EntryForm, len(snap.Skills))
	for _, sk := range snap.Skills {
		form := EntryForm{SkillID: sk.ID}
		if e, ok := bySkill[sk.ID]; ok {
			p := e.Proficiency
			lm := e.LastModified
			form.Proficiency = &p
			form.UsedInLastSixMonths = e.UsedInLastSixMonths
			form.LastModified = &lm
		}
		forms[sk.ID] = form
	}

	views, err := skilltree.BuildViews(snap, entryIDs, forms)
	if err != nil {
		u.logger.Error("Build skill trees failed", "user_id", userID, "error", err)
		return SkillViews{}, fmt.Errorf("skills list: %w", err)
	}
	return views, nil
}

// SaveEntries applies a batch. Each entry succeeds or fails on its own; the
// returned error is only set when the batch itself is unusable.
func (u *SkillEntry) SaveEntries(ctx context.Context, userID uuid.UUID, in []EntryInput) ([]EntryResult, error) {
	if userID == uuid.Nil || len(in) == 0 {
		return nil, ErrInvalidInput
	}

	out := make([]EntryResult, 0, len(in))
	for _, item := range in {
		res := u.saveEntry(ctx, userID, item)
		if res.Status == EntryFailed {
			u.logger.Warn("Skill entry rejected", "user_id", userID, "skill_id", item.SkillID, "error", res.Error)
		}
		out = append(out, res)
	}
	return out, nil
}

func (u *SkillEntry) saveEntry(ctx context.Context, userID uuid.UUID, in EntryInput) EntryResult {
	ch := entryChange{ref: strings.TrimSpace(in.SkillID), used: in.UsedInLastSixMonths}

	id, err := uuid.Parse(ch.ref)
	if err != nil || id == uuid.Nil {
		return ch.failed(ErrInvalidSkillID)
	}
	ch.skillID = id
	if in.Proficiency == nil {
		return ch.failed(ErrMissingProficiency)
	}
	if !in.Proficiency.Valid() {
		return ch.failed(ErrInvalidProficiencyLevel)
	}
	ch.proficiency = *in.Proficiency

	exists, err := u.skills.SkillExistsByID(ctx, ch.skillID)
	if err != nil {
		u.logger.Error("Skill lookup failed", "skill_id", ch.skillID, "error", err)
		return ch.failed(ErrInternal)
	}
	if !exists {
		return ch.failed(ErrSkillNotFound)
	}

	current, err := u.entries.FindByUserAndSkill(ctx, userID, ch.skillID)
	switch {
	case err == nil:
		return u.applyChange(ctx, current, ch)
	case !errors.Is(err, repository.ErrSkillEntryNotFound):
		u.logger.Error("Skill entry lookup failed", "skill_id", ch.skillID, "error", err)
		return ch.failed(ErrInternal)
	}

	created, err := u.entries.Create(ctx, skillentry.SkillEntry{
		ID:                  uuid.New(),
		UserID:              userID,
		SkillID:             ch.skillID,
		Proficiency:         ch.proficiency,
		UsedInLastSixMonths: ch.used,
	})
	switch {
	case err == nil:
		return ch.result(EntryCreated, created)
	case errors.Is(err, repository.ErrSkillNotFound):
		return ch.failed(ErrSkillNotFound)
	case errors.Is(err, repository.ErrSkillEntryConflict):
		// A concurrent submission created the entry first.
		current, err = u.entries.FindByUserAndSkill(ctx, userID, ch.skillID)
		if err != nil {
			u.logger.Error("Skill entry reload failed", "skill_id", ch.skillID, "error", err)
			return ch.failed(ErrInternal)
		}
		return u.applyChange(ctx, current, ch)
	default:
		u.logger.Error("Create skill entry failed", "skill_id", ch.skillID, "error", err)
		return ch.failed(ErrInternal)
	}
}

// applyChange leaves the entry and its last_modified untouched when nothing
// differs.
func (u *SkillEntry) applyChange(ctx context.Context, current skillentry.SkillEntry, ch entryChange) EntryResult {
	if !current.Differs(ch.proficiency, ch.used) {
		return ch.result(EntryUnchanged, current)
	}

	current.Proficiency = ch.proficiency
	current.UsedInLastSixMonths = ch.used
	updated, err := u.entries.Update(ctx, current)
	if err != nil {
		if errors.Is(err, repository.ErrSkillEntryNotFound) {
			return ch.failed(ErrSkillNotFound)
		}
		u.logger.Error("Update skill entry failed", "skill_id", ch.skillID, "error", err)
		return ch.failed(ErrInternal)
	}
	return ch.result(EntryUpdated, updated)
}

// Matrix lists every skill with the users who assessed it, ordered by
// category path then skill name. Users within a skill are ordered by email.
func (u *SkillEntry) Matrix(ctx context.Context) ([]MatrixSkill, error) {
	snap, err := u.catalogue.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := u.entries.ListMatrix(ctx)
	if err != nil {
		u.logger.Error("Load skills matrix failed", "error", err)
		return nil, ErrInternal
	}

	cells := make(map[uuid.UUID][]MatrixCell)
	for _, r := range rows {
		cells[r.SkillID] = append(cells[r.SkillID], MatrixCell{
			UserID:              r.UserID,
			Email:               r.Email,
			Proficiency:         r.Proficiency,
			UsedInLastSixMonths: r.UsedInLastSixMonths,
			LastModified:        r.LastModified,
		})
	}

	h := skilltree.NewHierarchy(snap.Categories)
	out := make([]MatrixSkill, 0, len(snap.Skills))
	for _, sk := range snap.Skills {
		users := cells[sk.ID]
		sort.SliceStable(users, func(i, j int) bool { return users[i].Email < users[j].Email })
		out = append(out, MatrixSkill{
			Skill:        sk,
			CategoryPath: h.Path(sk.CategoryID),
			Users:        users,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		pi := strings.Join(out[i].CategoryPath, "\x00")
		pj := strings.Join(out[j].CategoryPath, "\x00")
		if pi != pj {
			return pi < pj
		}
		return out[i].Skill.Name < out[j].Skill.Name
	})
	return out, nil
}
