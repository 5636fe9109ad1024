package organisation

import (
	"errors"
	"testing"
)

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(string(k))
		if err != nil || got != k {
			t.Fatalf("kind %q: got %q, %v", k, got, err)
		}
		if k.Table() == "" {
			t.Fatalf("kind %q has no table", k)
		}
	}
	if _, err := ParseKind("teams"); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}
