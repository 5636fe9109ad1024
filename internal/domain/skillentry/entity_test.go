package skillentry

import "testing"

func TestProficiency_Valid(t *testing.T) {
	for p := Proficiency(-1); p <= 5; p++ {
		want := p >= 0 && p <= 4
		if got := p.Valid(); got != want {
			t.Fatalf("proficiency %d: expected valid=%v", p, want)
		}
	}
}

func TestChoices(t *testing.T) {
	ch := Choices()
	if len(ch) != 5 {
		t.Fatalf("expected 5 choices, got %d", len(ch))
	}
	if ch[3].Value != ProficiencyModerate || ch[3].Label != "Moderate experience" {
		t.Fatalf("unexpected choice %+v", ch[3])
	}
	if Proficiency(9).Label() != "" {
		t.Fatalf("expected empty label for invalid proficiency")
	}
}

func TestSkillEntry_Differs(t *testing.T) {
	e := SkillEntry{Proficiency: ProficiencyModerate, UsedInLastSixMonths: true}
	if e.Differs(ProficiencyModerate, true) {
		t.Fatalf("identical values must not differ")
	}
	if !e.Differs(ProficiencyGood, true) || !e.Differs(ProficiencyModerate, false) {
		t.Fatalf("changed values must differ")
	}
}
