package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/cognicore/nlp100/pkg/nlp100/analytics"
	"github.com/cognicore/nlp100/pkg/nlp100/internalerr"
	"github.com/cognicore/nlp100/pkg/nlp100/morph"
	"github.com/cognicore/nlp100/pkg/nlp100/report"
	"github.com/cognicore/nlp100/pkg/nlp100/store"
	"github.com/cognicore/nlp100/pkg/nlp100/store/open"
)

func (a *app) morph(ctx context.Context, cmd string, args []string) error {
	fs := a.flags("morph " + cmd)
	var (
		in     = fs.String("in", a.cfg.Data.Resolve(a.cfg.Data.NekoTokens), "NDJSON token file")
		text   = fs.String("text", a.cfg.Data.Resolve(a.cfg.Data.NekoText), "Plain text to tokenize (tokenize)")
		k      = fs.Int("k", a.cfg.Analysis.TopK, "Number of terms to show")
		target = fs.String("target", a.cfg.Analysis.Target, "Co-occurrence target (cooc)")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch cmd {
	case "tokenize":
		return a.tokenize(*text, *in)
	case "verbs":
		return a.printEach(*in, morph.Verbs)
	case "bases":
		return a.printEach(*in, morph.VerbBases)
	case "noun-of-noun":
		return a.printEach(*in, morph.NounOfNoun)
	case "noun-runs":
		return a.printEach(*in, morph.NounRuns)
	case "freq":
		stats, err := a.analyze(*in, analytics.NewAnalyzer(), nil)
		if err != nil {
			return err
		}
		return a.termTable(stats.Terms())
	case "top":
		stats, err := a.analyze(*in, analytics.NewAnalyzer(), nil)
		if err != nil {
			return err
		}
		return a.saveAndShowTop(ctx, "top", stats, *k)
	case "cooc":
		stats, err := a.analyze(*in, analytics.CoOccurrence(*target), morph.ContainsFilter(*target))
		if err != nil {
			return err
		}
		return a.saveAndShowTop(ctx, "cooc:"+*target, stats, *k)
	case "hist":
		stats, err := a.analyze(*in, analytics.NewAnalyzer(), nil)
		if err != nil {
			return err
		}
		var bars []report.Bar
		for _, bin := range stats.Histogram() {
			bars = append(bars, report.Bar{Label: strconv.FormatInt(bin.Frequency, 10), Value: int64(bin.Types)})
		}
		return report.Histogram(a.out, bars, a.cfg.Analysis.HistogramWidth)
	case "zipf":
		stats, err := a.analyze(*in, analytics.NewAnalyzer(), nil)
		if err != nil {
			return err
		}
		points := stats.RankFrequency()
		var rows [][]string
		for _, p := range points {
			if len(rows) == *k {
				break
			}
			rows = append(rows, []string{strconv.Itoa(p.Rank), p.Term, strconv.FormatInt(p.Count, 10)})
		}
		if err := report.Table(a.out, []string{"rank", "term", "count"}, rows); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "slope %.3f\n", analytics.ZipfSlope(points))
	case "collocations":
		stats, err := a.analyze(*in, analytics.NewAnalyzer(), nil)
		if err != nil {
			return err
		}
		var rows [][]string
		for _, c := range stats.Collocations(*k, 2) {
			rows = append(rows, []string{c.A + c.B, strconv.FormatInt(c.Count, 10), strconv.FormatFloat(c.PMI, 'f', 3, 64)})
		}
		return report.Table(a.out, []string{"bigram", "count", "pmi"}, rows)
	case "runs":
		if a.cfg.Store.Driver == "" || a.cfg.Store.Driver == open.DriverMemory {
			return fmt.Errorf("%w: morph runs needs a persistent store; set store.driver to sqlite", internalerr.ErrInvalidConfig)
		}
		st, err := open.Open(ctx, a.cfg.Store.Driver, a.cfg.Store.DSN)
		if err != nil {
			return err
		}
		defer st.Close()
		runs, err := st.Runs(ctx)
		if err != nil {
			return err
		}
		var rows [][]string
		for _, r := range runs {
			rows = append(rows, []string{r.ID, r.Label, r.CreatedAt.Format(time.RFC3339)})
		}
		return report.Table(a.out, []string{"id", "label", "created"}, rows)
	default:
		return unknownCommand("morph", cmd)
	}
	return nil
}

func (a *app) tokenize(textPath, outPath string) error {
	tok, err := morph.NewTokenizer()
	if err != nil {
		return err
	}
	src, err := os.Open(textPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", textPath, err)
	}
	defer src.Close()
	if err := ensureDir(outPath); err != nil {
		return err
	}
	dst, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	if err := tok.ParseText(src, dst); err != nil {
		dst.Close()
		return err
	}
	if err := dst.Close(); err != nil {
		return err
	}
	slog.Info("tokenized", "text", textPath, "tokens", outPath)
	a.println(outPath)
	return nil
}

func (a *app) printEach(path string, extract func(morph.Sentence) []string) error {
	return morph.WalkFile(path, nil, func(s morph.Sentence) {
		a.println(extract(s)...)
	})
}

// analyze feeds every accepted sentence's surfaces, minus excluded parts of
// speech, to analyzer.
func (a *app) analyze(path string, analyzer *analytics.Analyzer, filter morph.Filter) (analytics.Stats, error) {
	exclude := make(map[string]struct{}, len(a.cfg.Analysis.ExcludePOS))
	for _, pos := range a.cfg.Analysis.ExcludePOS {
		exclude[pos] = struct{}{}
	}
	err := morph.WalkFile(path, filter, func(s morph.Sentence) {
		terms := make([]string, 0, len(s))
		for _, tok := range s {
			if _, skip := exclude[tok.POS]; skip {
				continue
			}
			terms = append(terms, tok.Surface)
		}
		analyzer.Process(terms)
	})
	if err != nil {
		return analytics.Stats{}, err
	}
	stats := analyzer.Snapshot()
	slog.Debug("analyzed", "sentences", stats.TotalDocs, "tokens", stats.TotalTokens, "types", len(stats.TermFreq))
	return stats, nil
}

func (a *app) saveAndShowTop(ctx context.Context, label string, stats analytics.Stats, k int) error {
	st, err := open.Open(ctx, a.cfg.Store.Driver, a.cfg.Store.DSN)
	if err != nil {
		return err
	}
	defer st.Close()

	run, err := analytics.Save(ctx, st, label, stats)
	if err != nil {
		return err
	}
	slog.Info("saved run", "id", run.ID, "label", label, "driver", a.cfg.Store.Driver)

	top, err := st.Top(ctx, run.ID, k)
	if err != nil {
		return err
	}
	return a.termTable(top)
}

func (a *app) termTable(terms []store.TermCount) error {
	rows := make([][]string, len(terms))
	for i, tc := range terms {
		rows[i] = []string{tc.Term, strconv.FormatInt(tc.Count, 10)}
	}
	return report.Table(a.out, []string{"term", "count"}, rows)
}
