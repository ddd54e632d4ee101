package main

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cognicore/nlp100/pkg/nlp100/internalerr"
	"github.com/cognicore/nlp100/pkg/nlp100/report"
	"github.com/cognicore/nlp100/pkg/nlp100/warmup"
)

var defaultSingles = []int{1, 5, 6, 7, 8, 9, 15, 16, 19}

func (a *app) warmup(cmd string, args []string) error {
	switch cmd {
	case "reverse":
		a.println(warmup.Reverse(joinArgs(args)))
	case "odd":
		a.println(warmup.OddIndexChars(joinArgs(args)))
	case "even":
		a.println(warmup.EvenIndexChars(joinArgs(args)))
	case "mix":
		if err := requireArgs(cmd, args, 2); err != nil {
			return err
		}
		a.println(warmup.MixTwoStrings(args[0], args[1]))
	case "pi":
		counts := warmup.Pi(joinArgs(args))
		digits := make([]string, len(counts))
		for i, n := range counts {
			digits[i] = strconv.Itoa(n)
		}
		a.println(strings.Join(digits, ""))
	case "symbols":
		symbols := warmup.ChemicalSymbols(joinArgs(args), defaultSingles)
		rows := make([][]string, 0, len(symbols))
		for sym, pos := range symbols {
			rows = append(rows, []string{strconv.Itoa(pos), sym})
		}
		sort.Slice(rows, func(i, j int) bool {
			pi, _ := strconv.Atoi(rows[i][0])
			pj, _ := strconv.Atoi(rows[j][0])
			return pi < pj
		})
		return report.Table(a.out, []string{"position", "symbol"}, rows)
	case "ngram":
		if err := requireArgs(cmd, args, 2); err != nil {
			return err
		}
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("%w: ngram size %q", internalerr.ErrInvalidInput, args[0])
		}
		text := joinArgs(args[1:])
		var rows [][]string
		for _, gram := range warmup.WordNGrams(text, n) {
			rows = append(rows, []string{"word", strings.Join(gram, " ")})
		}
		for _, gram := range warmup.CharNGrams(text, n) {
			rows = append(rows, []string{"char", gram})
		}
		return report.Table(a.out, []string{"kind", "ngram"}, rows)
	case "sets":
		if err := requireArgs(cmd, args, 2); err != nil {
			return err
		}
		x, y := warmup.BigramSet(args[0]), warmup.BigramSet(args[1])
		rows := [][]string{
			{"union", strings.Join(warmup.Union(x, y).Sorted(), " ")},
			{"intersection", strings.Join(warmup.Intersection(x, y).Sorted(), " ")},
			{"difference", strings.Join(warmup.Difference(x, y).Sorted(), " ")},
			{"x has se", strconv.FormatBool(x.Contains("se"))},
			{"y has se", strconv.FormatBool(y.Contains("se"))},
		}
		return report.Table(a.out, []string{"set", "bigrams"}, rows)
	case "template":
		if err := requireArgs(cmd, args, 3); err != nil {
			return err
		}
		a.println(warmup.Template(args[0], args[1], args[2]))
	case "cipher":
		a.println(warmup.Cipher(joinArgs(args)))
	case "typo":
		fs := a.flags("warmup typo")
		seed := fs.Uint64("seed", 0, "Shuffle seed (0 picks one from the clock)")
		if err := fs.Parse(args); err != nil {
			return err
		}
		s := *seed
		if s == 0 {
			s = uint64(time.Now().UnixNano())
		}
		rng := rand.New(rand.NewPCG(s, s>>1))
		a.println(warmup.Typoglycemia(joinArgs(fs.Args()), rng))
	default:
		return unknownCommand("warmup", cmd)
	}
	return nil
}
