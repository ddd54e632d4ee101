// Package analytics aggregates token statistics over sentences: term and
// sentence frequencies, co-occurrence with a target, frequency histograms,
// rank/frequency (Zipf) data and PMI-scored bigrams.
package analytics

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/cognicore/nlp100/pkg/nlp100/store"
)

// Analyzer accumulates counts sentence by sentence.
type Analyzer struct {
	skip         map[string]struct{}
	totalDocs    int64
	totalTokens  int64
	termFreq     map[string]int64
	docFreq      map[string]int64
	bigramCounts map[Bigram]int64
}

// NewAnalyzer creates an empty analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		skip:         make(map[string]struct{}),
		termFreq:     make(map[string]int64),
		docFreq:      make(map[string]int64),
		bigramCounts: make(map[Bigram]int64),
	}
}

// CoOccurrence creates an analyzer that counts everything except target.
// Feed it only sentences that mention target.
func CoOccurrence(target string) *Analyzer {
	a := NewAnalyzer()
	a.Skip(target)
	return a
}

// Skip excludes terms from every count.
func (a *Analyzer) Skip(terms ...string) {
	for _, t := range terms {
		a.skip[t] = struct{}{}
	}
}

func (a *Analyzer) counted(tok string) bool {
	if tok == "" {
		return false
	}
	_, skipped := a.skip[tok]
	return !skipped
}

// Process consumes one sentence's tokens.
func (a *Analyzer) Process(tokens []string) {
	a.totalDocs++

	seen := make(map[string]struct{})
	for _, tok := range tokens {
		if !a.counted(tok) {
			continue
		}
		a.totalTokens++
		a.termFreq[tok]++
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		a.docFreq[tok]++
	}

	// Adjacent pairs only; a skipped token breaks adjacency.
	for i := 0; i+1 < len(tokens); i++ {
		if !a.counted(tokens[i]) || !a.counted(tokens[i+1]) {
			continue
		}
		a.bigramCounts[Bigram{A: tokens[i], B: tokens[i+1]}]++
	}
}

// Bigram is an ordered pair of adjacent tokens.
type Bigram struct {
	A string
	B string
}

// Stats exposes the aggregated counts.
type Stats struct {
	TotalDocs    int64
	TotalTokens  int64
	TermFreq     map[string]int64
	DocFreq      map[string]int64
	BigramCounts map[Bigram]int64
}

// Snapshot returns a copy of the accumulated statistics.
func (a *Analyzer) Snapshot() Stats {
	copyTF := make(map[string]int64, len(a.termFreq))
	for tok, n := range a.termFreq {
		copyTF[tok] = n
	}
	copyDF := make(map[string]int64, len(a.docFreq))
	for tok, n := range a.docFreq {
		copyDF[tok] = n
	}
	copyBigrams := make(map[Bigram]int64, len(a.bigramCounts))
	for b, n := range a.bigramCounts {
		copyBigrams[b] = n
	}
	return Stats{
		TotalDocs:    a.totalDocs,
		TotalTokens:  a.totalTokens,
		TermFreq:     copyTF,
		DocFreq:      copyDF,
		BigramCounts: copyBigrams,
	}
}

// Terms returns every term with its frequency, most frequent first.
func (s Stats) Terms() []store.TermCount {
	return s.Top(0)
}

// Top returns the k most frequent terms; ties are broken by term.
// k <= 0 returns all terms.
func (s Stats) Top(k int) []store.TermCount {
	out := make([]store.TermCount, 0, len(s.TermFreq))
	for term, n := range s.TermFreq {
		out = append(out, store.TermCount{Term: term, Count: n})
	}
	return store.SortTermCounts(out, k)
}

// Bin is one histogram bar: how many distinct terms occur Frequency times.
type Bin struct {
	Frequency int64
	Types     int
}

// Histogram groups terms by frequency, ascending.
func (s Stats) Histogram() []Bin {
	byFreq := make(map[int64]int)
	for _, n := range s.TermFreq {
		byFreq[n]++
	}
	bins := make([]Bin, 0, len(byFreq))
	for f, types := range byFreq {
		bins = append(bins, Bin{Frequency: f, Types: types})
	}
	sort.Slice(bins, func(i, j int) bool { return bins[i].Frequency < bins[j].Frequency })
	return bins
}

// RankPoint is one point of a rank/frequency plot.
type RankPoint struct {
	Rank  int
	Term  string
	Count int64
}

// RankFrequency ranks terms by frequency starting at 1, for Zipf plots.
func (s Stats) RankFrequency() []RankPoint {
	terms := s.Top(0)
	points := make([]RankPoint, len(terms))
	for i, tc := range terms {
		points[i] = RankPoint{Rank: i + 1, Term: tc.Term, Count: tc.Count}
	}
	return points
}

// ZipfSlope fits log(count) = a + b*log(rank) by least squares and returns b.
// Natural-language text lands near -1.
func ZipfSlope(points []RankPoint) float64 {
	if len(points) < 2 {
		return 0
	}
	var sumX, sumY, sumXY, sumXX float64
	for _, p := range points {
		x := math.Log(float64(p.Rank))
		y := math.Log(float64(p.Count))
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	n := float64(len(points))
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / denom
}

// Collocation is an adjacent pair scored by pointwise mutual information.
type Collocation struct {
	A     string
	B     string
	Count int64
	PMI   float64
}

// Collocations ranks bigrams seen at least minCount times by PMI, then count.
func (s Stats) Collocations(k int, minCount int64) []Collocation {
	if s.TotalTokens == 0 {
		return nil
	}
	var out []Collocation
	for b, n := range s.BigramCounts {
		if n < minCount {
			continue
		}
		out = append(out, Collocation{
			A:     b.A,
			B:     b.B,
			Count: n,
			PMI:   computePMI(n, s.TermFreq[b.A], s.TermFreq[b.B], s.TotalTokens),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PMI == out[j].PMI {
			if out[i].Count == out[j].Count {
				return out[i].A+out[i].B < out[j].A+out[j].B
			}
			return out[i].Count > out[j].Count
		}
		return out[i].PMI > out[j].PMI
	})
	if k > 0 && len(out) > k {
		out = out[:k]
	}
	return out
}

func computePMI(pairCount, countA, countB, total int64) float64 {
	if countA == 0 || countB == 0 || total == 0 {
		return 0
	}
	smooth := 1.0
	numerator := (float64(pairCount) + smooth) / float64(total)
	denominator := ((float64(countA) + smooth) / float64(total)) * ((float64(countB) + smooth) / float64(total))
	return math.Log(numerator / denominator)
}

// Save stores the term frequencies of stats as a new run labelled label.
func Save(ctx context.Context, st store.Store, label string, stats Stats) (store.Run, error) {
	run, err := st.NewRun(ctx, label)
	if err != nil {
		return store.Run{}, fmt.Errorf("analytics: create run %q: %w", label, err)
	}
	if err := st.AddCounts(ctx, run.ID, stats.TermFreq); err != nil {
		return store.Run{}, fmt.Errorf("analytics: save run %q: %w", label, err)
	}
	return run, nil
}
