package store

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestIDsMonotonic(t *testing.T) {
	ids := NewIDs()
	now := time.Now()
	prev := ids.Next(now)
	for i := 0; i < 100; i++ {
		next := ids.Next(now)
		if next <= prev {
			t.Fatalf("ids not increasing: %s then %s", prev, next)
		}
		prev = next
	}
	if len(prev) != 26 {
		t.Errorf("expected 26-char ULID, got %q", prev)
	}
}

func TestSortTermCounts(t *testing.T) {
	in := []TermCount{{"の", 3}, {"猫", 5}, {"は", 3}, {"吾輩", 1}}
	want := []TermCount{{"猫", 5}, {"の", 3}, {"は", 3}}
	if diff := cmp.Diff(want, SortTermCounts(in, 3)); diff != "" {
		t.Errorf("SortTermCounts mismatch (-want +got):\n%s", diff)
	}
	if got := SortTermCounts([]TermCount{{"a", 1}}, 0); len(got) != 1 {
		t.Errorf("k=0 should keep everything, got %v", got)
	}
}
