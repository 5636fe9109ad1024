package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"skill-matrix/internal/domain/catalogue"
	"skill-matrix/internal/domain/skillentry"
	"skill-matrix/internal/repository"

	"github.com/google/uuid"
)

type memCategoryRepo struct {
	cats []catalogue.Category
	err  error
}

func (m *memCategoryRepo) ListCategories(context.Context) ([]catalogue.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	return append([]catalogue.Category(nil), m.cats...), nil
}

func (m *memCategoryRepo) GetCategory(_ context.Context, id uuid.UUID) (catalogue.Category, error) {
	for _, c := range m.cats {
		if c.ID == id {
			return c, nil
		}
	}
	return catalogue.Category{}, repository.ErrCategoryNotFound
}

func (m *memCategoryRepo) CreateCategory(_ context.Context, c catalogue.Category, guard repository.ParentGuard) (catalogue.Category, error) {
	if err := guard(m.cats); err != nil {
		return catalogue.Category{}, err
	}
	for _, ex := range m.cats {
		if ex.Name == c.Name && sameParent(ex.ParentID, c.ParentID) {
			return catalogue.Category{}, repository.ErrCategoryConflict
		}
	}
	m.cats = append(m.cats, c)
	return c, nil
}

func (m *memCategoryRepo) UpdateCategory(_ context.Context, c catalogue.Category, guard repository.ParentGuard) (catalogue.Category, error) {
	idx := -1
	for i, ex := range m.cats {
		if ex.ID == c.ID {
			idx = i
		}
	}
	if idx < 0 {
		return catalogue.Category{}, repository.ErrCategoryNotFound
	}
	if err := guard(m.cats); err != nil {
		return catalogue.Category{}, err
	}
	m.cats[idx] = c
	return c, nil
}

func (m *memCategoryRepo) DeleteCategory(_ context.Context, id uuid.UUID) error {
	for i, ex := range m.cats {
		if ex.ID == id {
			m.cats = append(m.cats[:i], m.cats[i+1:]...)
			return nil
		}
	}
	return repository.ErrCategoryNotFound
}

func sameParent(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

type memSkillRepo struct {
	skills []catalogue.Skill
	err    error
}

func (m *memSkillRepo) GetAllSkills(context.Context) ([]catalogue.Skill, error) {
	if m.err != nil {
		return nil, m.err
	}
	return append([]catalogue.Skill(nil), m.skills...), nil
}

func (m *memSkillRepo) GetSkill(_ context.Context, id uuid.UUID) (catalogue.Skill, error) {
	for _, s := range m.skills {
		if s.ID == id {
			return s, nil
		}
	}
	return catalogue.Skill{}, repository.ErrSkillNotFound
}

func (m *memSkillRepo) SkillExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, err := m.GetSkill(context.Background(), id)
	return err == nil, nil
}

func (m *memSkillRepo) CreateSkill(_ context.Context, s catalogue.Skill) (catalogue.Skill, error) {
	for _, ex := range m.skills {
		if ex.Name == s.Name && ex.CategoryID == s.CategoryID {
			return catalogue.Skill{}, repository.ErrSkillConflict
		}
	}
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	m.skills = append(m.skills, s)
	return s, nil
}

func (m *memSkillRepo) UpdateSkill(_ context.Context, s catalogue.Skill) (catalogue.Skill, error) {
	for i, ex := range m.skills {
		if ex.ID == s.ID {
			m.skills[i] = s
			return s, nil
		}
	}
	return catalogue.Skill{}, repository.ErrSkillNotFound
}

func (m *memSkillRepo) DeleteSkill(_ context.Context, id uuid.UUID) error {
	for i, ex := range m.skills {
		if ex.ID == id {
			m.skills = append(m.skills[:i], m.skills[i+1:]...)
			return nil
		}
	}
	return repository.ErrSkillNotFound
}

type memEntryRepo struct {
	entries []skillentry.SkillEntry
	matrix  []repository.MatrixRow
	clock   func() time.Time

	creates int
	updates int

	// raceOnCreate makes the next Create fail as if another request won.
	raceOnCreate *skillentry.SkillEntry
}

func (m *memEntryRepo) now() time.Time {
	if m.clock != nil {
		return m.clock()
	}
	return time.Now()
}

func (m *memEntryRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]skillentry.SkillEntry, error) {
	var out []skillentry.SkillEntry
	for _, e := range m.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memEntryRepo) FindByUserAndSkill(_ context.Context, userID, skillID uuid.UUID) (skillentry.SkillEntry, error) {
	for _, e := range m.entries {
		if e.UserID == userID && e.SkillID == skillID {
			return e, nil
		}
	}
	return skillentry.SkillEntry{}, repository.ErrSkillEntryNotFound
}

func (m *memEntryRepo) Create(_ context.Context, e skillentry.SkillEntry) (skillentry.SkillEntry, error) {
	if m.raceOnCreate != nil {
		m.entries = append(m.entries, *m.raceOnCreate)
		m.raceOnCreate = nil
		return skillentry.SkillEntry{}, repository.ErrSkillEntryConflict
	}
	for _, ex := range m.entries {
		if ex.UserID == e.UserID && ex.SkillID == e.SkillID {
			return skillentry.SkillEntry{}, repository.ErrSkillEntryConflict
		}
	}
	m.creates++
	e.LastModified = m.now()
	m.entries = append(m.entries, e)
	return e, nil
}

func (m *memEntryRepo) Update(_ context.Context, e skillentry.SkillEntry) (skillentry.SkillEntry, error) {
	for i, ex := range m.entries {
		if ex.ID == e.ID {
			m.updates++
			e.LastModified = m.now()
			m.entries[i] = e
			return e, nil
		}
	}
	return skillentry.SkillEntry{}, repository.ErrSkillEntryNotFound
}

func (m *memEntryRepo) ListMatrix(context.Context) ([]repository.MatrixRow, error) {
	return m.matrix, nil
}

type memCache struct {
	mu      sync.Mutex
	values  map[string][]byte
	ints    map[string]int64
	reads   int
	deletes []string
}

func newMemCache() *memCache {
	return &memCache{values: map[string][]byte{}, ints: map[string]int64{}}
}

func (m *memCache) GetJSON(_ context.Context, key string, dst any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads++
	raw, ok := m.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dst)
}

func (m *memCache) SetJSON(_ context.Context, key string, v any, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.values[key] = raw
	return nil
}

func (m *memCache) DeleteByPattern(_ context.Context, pattern string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletes = append(m.deletes, pattern)
	prefix := strings.TrimSuffix(pattern, "*")
	for k := range m.values {
		if strings.HasPrefix(k, prefix) {
			delete(m.values, k)
		}
	}
	return nil
}

func (m *memCache) GetInt64(_ context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ints[key], nil
}

func (m *memCache) Incr(_ context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ints[key]++
	return m.ints[key], nil
}

type recordingNotifier struct {
	versions []int64
}

func (n *recordingNotifier) NotifyCatalogueUpdated(version int64) {
	n.versions = append(n.versions, version)
}

// staticCatalogue serves a fixed snapshot.
type staticCatalogue struct {
	snap catalogue.Snapshot
	err  error
}

func (s staticCatalogue) Snapshot(context.Context) (catalogue.Snapshot, error) {
	return s.snap, s.err
}
