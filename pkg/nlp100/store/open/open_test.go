package open

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cognicore/nlp100/pkg/nlp100/internalerr"
	"github.com/cognicore/nlp100/pkg/nlp100/store"
)

func exerciseStore(t *testing.T, st store.Store) {
	t.Helper()
	ctx := context.Background()

	freq, err := st.NewRun(ctx, "freq")
	if err != nil {
		t.Fatalf("NewRun: %v", err)
	}
	cooc, err := st.NewRun(ctx, "cooc")
	if err != nil {
		t.Fatalf("NewRun: %v", err)
	}
	if freq.ID == cooc.ID {
		t.Fatal("run IDs must differ")
	}

	if err := st.AddCounts(ctx, freq.ID, map[string]int64{"の": 2, "猫": 3, "は": 2}); err != nil {
		t.Fatalf("AddCounts: %v", err)
	}
	if err := st.AddCounts(ctx, freq.ID, map[string]int64{"の": 4}); err != nil {
		t.Fatalf("AddCounts: %v", err)
	}
	if err := st.AddCounts(ctx, cooc.ID, map[string]int64{"吾輩": 1}); err != nil {
		t.Fatalf("AddCounts: %v", err)
	}

	n, err := st.Count(ctx, freq.ID, "の")
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 6 {
		t.Errorf("Count(の) = %d, want 6", n)
	}
	if n, _ := st.Count(ctx, freq.ID, "犬"); n != 0 {
		t.Errorf("Count(犬) = %d, want 0", n)
	}

	top, err := st.Top(ctx, freq.ID, 2)
	if err != nil {
		t.Fatalf("Top: %v", err)
	}
	want := []store.TermCount{{Term: "の", Count: 6}, {Term: "猫", Count: 3}}
	if diff := cmp.Diff(want, top); diff != "" {
		t.Errorf("Top mismatch (-want +got):\n%s", diff)
	}
	all, err := st.Top(ctx, freq.ID, 0)
	if err != nil {
		t.Fatalf("Top: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Top(0) returned %d terms, want 3", len(all))
	}

	runs, err := st.Runs(ctx)
	if err != nil {
		t.Fatalf("Runs: %v", err)
	}
	if len(runs) != 2 || runs[0].Label != "freq" || runs[1].Label != "cooc" {
		t.Errorf("unexpected runs: %+v", runs)
	}

	if err := st.AddCounts(ctx, "missing", map[string]int64{"x": 1}); !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("AddCounts on unknown run: expected ErrNotFound, got %v", err)
	}
	if _, err := st.Top(ctx, "missing", 1); !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("Top on unknown run: expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	st, err := Open(context.Background(), DriverMemory, "")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer st.Close()
	exerciseStore(t, st)
}

func TestSQLiteStore(t *testing.T) {
	st, err := Open(context.Background(), DriverSQLite, filepath.Join(t.TempDir(), "nlp100.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer st.Close()
	exerciseStore(t, st)
}

func TestSQLiteInMemory(t *testing.T) {
	st, err := Open(context.Background(), DriverSQLite, "")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer st.Close()
	exerciseStore(t, st)
}

func TestUnknownDriver(t *testing.T) {
	if _, err := Open(context.Background(), "postgres", ""); !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}
