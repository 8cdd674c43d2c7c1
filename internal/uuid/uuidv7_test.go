package uuid

import (
	"strings"
	"testing"

	googleuuid "github.com/google/uuid"
)

func TestNew(t *testing.T) {
	id := New()
	parsed, err := googleuuid.Parse(id)
	if err != nil {
		t.Fatalf("New returned an invalid UUID %q: %v", id, err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected version 7, got %d", parsed.Version())
	}
	if New() == id {
		t.Error("expected distinct IDs")
	}
}

func TestNormalize(t *testing.T) {
	upper := "0190A6B2-3C4D-7E8F-9A0B-1C2D3E4F5A6B"

	got, ok := Normalize(upper)
	if !ok || got != strings.ToLower(upper) {
		t.Errorf("expected lowercase form, got %q (ok=%v)", got, ok)
	}

	for _, bad := range []string{"", "not-a-uuid", "IO12"} {
		if _, ok := Normalize(bad); ok {
			t.Errorf("expected %q to be rejected", bad)
		}
		if IsValid(bad) {
			t.Errorf("expected IsValid(%q) to be false", bad)
		}
	}
}
