package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"skill-matrix/internal/domain/catalogue"
	"skill-matrix/internal/domain/skillentry"
	"skill-matrix/internal/repository"

	"github.com/google/uuid"
)

type codingCatalogue struct {
	snap                       catalogue.Snapshot
	coding, python, javascript uuid.UUID
	scripting                  uuid.UUID
	django, pandas, react      uuid.UUID
}

// newCodingCatalogue builds Coding > {Python, JavaScript}, Scripting with
// skills Django, Pandas under Python and React under JavaScript.
func newCodingCatalogue() codingCatalogue {
	c := codingCatalogue{
		coding: uuid.New(), python: uuid.New(), javascript: uuid.New(), scripting: uuid.New(),
		django: uuid.New(), pandas: uuid.New(), react: uuid.New(),
	}
	c.snap = catalogue.Snapshot{
		Categories: []catalogue.Category{
			{ID: c.coding, Name: "Coding"},
			{ID: c.python, Name: "Python", ParentID: &c.coding},
			{ID: c.javascript, Name: "JavaScript", ParentID: &c.coding},
			{ID: c.scripting, Name: "Scripting"},
		},
		Skills: []catalogue.Skill{
			{ID: c.django, Name: "Django", CategoryID: c.python},
			{ID: c.pandas, Name: "Pandas", CategoryID: c.python},
			{ID: c.react, Name: "React", CategoryID: c.javascript},
		},
	}
	return c
}

func newSkillEntryFixture(c codingCatalogue) (*SkillEntry, *memEntryRepo) {
	entries := &memEntryRepo{}
	skills := &memSkillRepo{skills: c.snap.Skills}
	return NewSkillEntryUsecase(staticCatalogue{snap: c.snap}, skills, entries, nil), entries
}

func TestSkillEntry_SkillsList_SplitsTrees(t *testing.T) {
	c := newCodingCatalogue()
	uc, entries := newSkillEntryFixture(c)
	userID := uuid.New()
	entries.entries = []skillentry.SkillEntry{{
		ID: uuid.New(), UserID: userID, SkillID: c.django, Proficiency: skillentry.ProficiencyModerate,
	}}

	views, err := uc.SkillsList(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if !views.AddedSkillIDs.Has(c.django) || views.AddedSkillIDs.Has(c.pandas) {
		t.Fatalf("unexpected added skills %v", views.AddedSkillIDs.Slice())
	}
	if !views.AddedCategoryIDs.Has(c.coding) || !views.AddedCategoryIDs.Has(c.python) || views.AddedCategoryIDs.Has(c.javascript) {
		t.Fatalf("unexpected added categories %v", views.AddedCategoryIDs.Slice())
	}
	if views.OtherCategoryIDs.Has(c.scripting) {
		t.Fatalf("category with no skills anywhere below it must be in neither tree")
	}

	coding := views.Added.Children[0]
	python := coding.Children[0]
	form := python.EntryForms["Django"]
	if form.Proficiency == nil || *form.Proficiency != skillentry.ProficiencyModerate {
		t.Fatalf("expected pre-filled Django form, got %+v", form)
	}

	otherPython := views.Other.Children[0].Children[1]
	if otherPython.Name != "Python" {
		t.Fatalf("expected JavaScript then Python, got %q", otherPython.Name)
	}
	if f := otherPython.EntryForms["Pandas"]; f.Proficiency != nil || f.SkillID != c.pandas {
		t.Fatalf("expected blank Pandas form, got %+v", f)
	}
}

func entryIn(skillID uuid.UUID, p skillentry.Proficiency, used bool) EntryInput {
	return EntryInput{SkillID: skillID.String(), Proficiency: &p, UsedInLastSixMonths: used}
}

func TestSkillEntry_SaveEntries_CreateNoopUpdate(t *testing.T) {
	c := newCodingCatalogue()
	uc, entries := newSkillEntryFixture(c)
	ctx := context.Background()
	userID := uuid.New()

	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	entries.clock = func() time.Time { return t0 }

	res, err := uc.SaveEntries(ctx, userID, []EntryInput{entryIn(c.django, skillentry.ProficiencyLimited, false)})
	if err != nil || res[0].Status != EntryCreated {
		t.Fatalf("expected created, got %+v err=%v", res, err)
	}

	entries.clock = func() time.Time { return t0.Add(time.Hour) }
	res, _ = uc.SaveEntries(ctx, userID, []EntryInput{entryIn(c.django, skillentry.ProficiencyLimited, false)})
	if res[0].Status != EntryUnchanged {
		t.Fatalf("expected unchanged, got %+v", res[0])
	}
	if got := entries.entries[0].LastModified; !got.Equal(t0) {
		t.Fatalf("no-op resubmission moved last_modified to %v", got)
	}

	res, _ = uc.SaveEntries(ctx, userID, []EntryInput{entryIn(c.django, skillentry.ProficiencyLimited, true)})
	if res[0].Status != EntryUpdated {
		t.Fatalf("expected updated, got %+v", res[0])
	}
	if got := entries.entries[0].LastModified; !got.Equal(t0.Add(time.Hour)) {
		t.Fatalf("expected last_modified to advance, got %v", got)
	}
	if entries.creates != 1 || entries.updates != 1 || len(entries.entries) != 1 {
		t.Fatalf("unexpected writes creates=%d updates=%d rows=%d", entries.creates, entries.updates, len(entries.entries))
	}
}

func TestSkillEntry_SaveEntries_PartialSuccess(t *testing.T) {
	c := newCodingCatalogue()
	uc, entries := newSkillEntryFixture(c)
	userID := uuid.New()

	res, err := uc.SaveEntries(context.Background(), userID, []EntryInput{
		entryIn(c.django, skillentry.ProficiencyGood, false),
		entryIn(uuid.New(), skillentry.ProficiencyGood, false),
		entryIn(c.react, skillentry.Proficiency(9), false),
		entryIn(c.pandas, skillentry.ProficiencyNone, false),
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	want := []EntryStatus{EntryCreated, EntryFailed, EntryFailed, EntryCreated}
	for i, st := range want {
		if res[i].Status != st {
			t.Fatalf("entry %d: expected %s, got %s (%v)", i, st, res[i].Status, res[i].Error)
		}
	}
	if !errors.Is(res[1].Error, ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound, got %v", res[1].Error)
	}
	if !errors.Is(res[2].Error, ErrInvalidProficiencyLevel) {
		t.Fatalf("expected ErrInvalidProficiencyLevel, got %v", res[2].Error)
	}
	if len(entries.entries) != 2 {
		t.Fatalf("expected valid entries committed, got %d", len(entries.entries))
	}
}

func TestSkillEntry_SaveEntries_MalformedEntriesFailAlone(t *testing.T) {
	c := newCodingCatalogue()
	uc, entries := newSkillEntryFixture(c)
	userID := uuid.New()

	res, err := uc.SaveEntries(context.Background(), userID, []EntryInput{
		entryIn(c.django, skillentry.ProficiencyModerate, false),
		{SkillID: c.react.String()},
		{SkillID: "not-a-uuid", Proficiency: new(skillentry.Proficiency)},
		{SkillID: "  " + c.pandas.String() + " ", Proficiency: new(skillentry.Proficiency)},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	want := []struct {
		status EntryStatus
		err    error
	}{
		{EntryCreated, nil},
		{EntryFailed, ErrMissingProficiency},
		{EntryFailed, ErrInvalidSkillID},
		{EntryCreated, nil},
	}
	for i, w := range want {
		if res[i].Status != w.status || !errors.Is(res[i].Error, w.err) {
			t.Fatalf("entry %d: expected %s/%v, got %s/%v", i, w.status, w.err, res[i].Status, res[i].Error)
		}
	}
	if res[2].SkillRef != "not-a-uuid" || res[2].SkillID != uuid.Nil {
		t.Fatalf("expected raw reference echoed, got %+v", res[2])
	}
	if res[1].SkillID != c.react {
		t.Fatalf("expected parsed id on missing proficiency, got %v", res[1].SkillID)
	}
	if len(entries.entries) != 2 {
		t.Fatalf("expected the two valid entries committed, got %d", len(entries.entries))
	}
}

func TestSkillEntry_SaveEntries_ConcurrentCreate(t *testing.T) {
	c := newCodingCatalogue()
	uc, entries := newSkillEntryFixture(c)
	userID := uuid.New()
	entries.raceOnCreate = &skillentry.SkillEntry{
		ID: uuid.New(), UserID: userID, SkillID: c.react, Proficiency: skillentry.ProficiencyAwareness,
	}

	res, _ := uc.SaveEntries(context.Background(), userID, []EntryInput{
		entryIn(c.react, skillentry.ProficiencyGood, false),
	})
	if res[0].Status != EntryUpdated {
		t.Fatalf("expected losing create to fall back to update, got %+v", res[0])
	}
	if len(entries.entries) != 1 || entries.entries[0].Proficiency != skillentry.ProficiencyGood {
		t.Fatalf("expected a single updated row, got %+v", entries.entries)
	}
}

func TestSkillEntry_SaveEntries_EmptyBatch(t *testing.T) {
	c := newCodingCatalogue()
	uc, _ := newSkillEntryFixture(c)
	if _, err := uc.SaveEntries(context.Background(), uuid.New(), nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSkillEntry_Matrix_OrderedByCategoryPath(t *testing.T) {
	c := newCodingCatalogue()
	uc, entries := newSkillEntryFixture(c)
	u1, u2 := uuid.New(), uuid.New()
	entries.matrix = []repository.MatrixRow{
		{SkillID: c.react, UserID: u2, Email: "zed@example.com", Proficiency: skillentry.ProficiencyGood},
		{SkillID: c.react, UserID: u1, Email: "amy@example.com", Proficiency: skillentry.ProficiencyLimited},
		{SkillID: c.django, UserID: u1, Email: "amy@example.com", Proficiency: skillentry.ProficiencyModerate},
	}

	rows, err := uc.Matrix(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	var names []string
	for _, r := range rows {
		names = append(names, r.Skill.Name)
	}
	want := []string{"React", "Django", "Pandas"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
	if len(rows[0].Users) != 2 || rows[0].Users[0].Email != "amy@example.com" {
		t.Fatalf("unexpected users for React %+v", rows[0].Users)
	}
	if len(rows[2].Users) != 0 {
		t.Fatalf("expected no users for Pandas")
	}
}
