package skilltree

import "testing"

func TestClassifier_Transitive(t *testing.T) {
	b := newCatalogue().
		category("Root", "").
		category("Mid", "Root").
		category("Leaf", "Mid").
		category("Bare", "Root").
		skill("deep", "Leaf").
		skill("other", "Mid")

	h := NewHierarchy(b.snap.Categories)
	c := NewClassifier(h, b.snap.SkillsByCategory(), NewIDSet(b.ids["deep"]))

	cases := []struct {
		name string
		want Membership
	}{
		{"Root", Membership{HasAdded: true, HasOther: true}},
		{"Mid", Membership{HasAdded: true, HasOther: true}},
		{"Leaf", Membership{HasAdded: true}},
		{"Bare", Membership{}},
	}
	for _, tc := range cases {
		if got := c.Classify(b.ids[tc.name]); got != tc.want {
			t.Fatalf("%s: got %+v, want %+v", tc.name, got, tc.want)
		}
	}

	if len(c.memo) != 4 {
		t.Fatalf("expected every category memoized once, got %d entries", len(c.memo))
	}

	added, other := c.CategorySets()
	if !added.Has(b.ids["Leaf"]) || added.Has(b.ids["Bare"]) {
		t.Fatalf("unexpected added set")
	}
	if other.Has(b.ids["Leaf"]) || !other.Has(b.ids["Root"]) {
		t.Fatalf("unexpected other set")
	}
}

func TestPartitionSkills_DropsUnknownEntries(t *testing.T) {
	b := newCatalogue().category("C", "").skill("a", "C").skill("b", "C")
	stray := newCatalogue().category("X", "").skill("z", "X")

	added, other := PartitionSkills(b.snap.Skills, NewIDSet(b.ids["a"], stray.ids["z"]))
	if len(added) != 1 || !added.Has(b.ids["a"]) {
		t.Fatalf("unexpected added set %v", added)
	}
	if len(other) != 1 || !other.Has(b.ids["b"]) {
		t.Fatalf("unexpected other set %v", other)
	}
}
