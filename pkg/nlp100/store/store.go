// Package store persists term-count runs produced by the analyses.
package store

import (
	"context"
	"crypto/rand"
	"sort"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Store keeps named runs of term counts.
type Store interface {
	Close() error

	NewRun(ctx context.Context, label string) (Run, error)
	Runs(ctx context.Context) ([]Run, error)

	// AddCounts adds counts to the run's existing totals.
	AddCounts(ctx context.Context, runID string, counts map[string]int64) error
	Count(ctx context.Context, runID, term string) (int64, error)
	Top(ctx context.Context, runID string, k int) ([]TermCount, error)
}

// Run is one stored analysis.
type Run struct {
	ID        string
	Label     string
	CreatedAt time.Time
}

// TermCount pairs a term with its count.
type TermCount struct {
	Term  string
	Count int64
}

// IDs hands out monotonically increasing ULIDs.
type IDs struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// NewIDs creates a run ID source.
func NewIDs() *IDs {
	return &IDs{entropy: ulid.Monotonic(rand.Reader, 0)}
}

// Next returns a new ID stamped with t.
func (g *IDs) Next(t time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), g.entropy).String()
}

// SortTermCounts orders by count descending, then term ascending, and
// truncates to k when k > 0.
func SortTermCounts(counts []TermCount, k int) []TermCount {
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count == counts[j].Count {
			return counts[i].Term < counts[j].Term
		}
		return counts[i].Count > counts[j].Count
	})
	if k > 0 && len(counts) > k {
		counts = counts[:k]
	}
	return counts
}
