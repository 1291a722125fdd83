package id

import (
	"testing"

	"github.com/google/uuid"
)

func TestTimeOrderedGenerator_NewID(t *testing.T) {
	gen := NewTimeOrderedGenerator()

	first, err := gen.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	second, err := gen.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}

	if first == second {
		t.Fatalf("expected distinct ids, got %q twice", first)
	}
	parsed, err := uuid.Parse(first)
	if err != nil {
		t.Fatalf("parse id %q: %v", first, err)
	}
	if parsed.Version() != 7 {
		t.Fatalf("expected uuid version 7, got %d", parsed.Version())
	}
	if second < first {
		t.Fatalf("expected ids to sort by creation, got %q before %q", second, first)
	}
}
