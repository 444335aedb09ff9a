package runid

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNew_PrefixedUUID(t *testing.T) {
	id := New()
	rest, ok := strings.CutPrefix(id, "run-")
	if !ok {
		t.Fatalf("id=%q missing prefix", id)
	}
	u, err := uuid.Parse(rest)
	if err != nil {
		t.Fatalf("parse %q: %v", rest, err)
	}
	if u.Version() != 4 {
		t.Fatalf("version=%d", u.Version())
	}
}

func TestNew_Distinct(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := New()
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}
