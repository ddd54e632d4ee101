package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cognicore/nlp100/pkg/nlp100/unixtext"
)

// Column used when -col is not given: names for cut/uniq/freq, counts for sort.
var defaultColumn = map[string]int{"sort": 2}

func (a *app) unix(cmd string, args []string) error {
	fs := a.flags("unix " + cmd)
	var (
		in     = fs.String("in", a.cfg.Data.Resolve(a.cfg.Data.PopularNames), "Input TSV file")
		out    = fs.String("out", "", "Output file (cut, paste)")
		col    = fs.Int("col", defaultColumn[cmd], "0-based column")
		n      = fs.Int("n", 10, "Line count (head, tail)")
		parts  = fs.Int("parts", 2, "Number of files (split)")
		prefix = fs.String("prefix", "", "Output name prefix (split)")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	outDir := a.cfg.Data.Resolve(a.cfg.Data.OutputDir)

	switch cmd {
	case "wc":
		count, err := unixtext.CountLines(*in)
		if err != nil {
			return err
		}
		a.println(strconv.Itoa(count))
	case "tr":
		text, err := unixtext.TabsToSpaces(*in)
		if err != nil {
			return err
		}
		fmt.Fprint(a.out, text)
	case "cut":
		target := *out
		if target == "" {
			target = filepath.Join(outDir, fmt.Sprintf("col%d.txt", *col+1))
		}
		if err := ensureDir(target); err != nil {
			return err
		}
		if err := unixtext.ExtractColumn(*in, *col, target); err != nil {
			return err
		}
		a.println(target)
	case "paste":
		if err := requireArgs(cmd, fs.Args(), 2); err != nil {
			return err
		}
		target := *out
		if target == "" {
			target = filepath.Join(outDir, "merged.txt")
		}
		if err := ensureDir(target); err != nil {
			return err
		}
		if err := unixtext.MergeColumns(fs.Arg(0), fs.Arg(1), target); err != nil {
			return err
		}
		a.println(target)
	case "head", "tail":
		read := unixtext.Head
		if cmd == "tail" {
			read = unixtext.Tail
		}
		text, err := read(*in, *n)
		if err != nil {
			return err
		}
		fmt.Fprint(a.out, text)
	case "split":
		p := *prefix
		if p == "" {
			p = filepath.Join(outDir, "split_")
		}
		if err := ensureDir(p); err != nil {
			return err
		}
		paths, err := unixtext.SplitFile(*in, *parts, p, ".txt")
		if err != nil {
			return err
		}
		a.println(paths...)
	case "uniq":
		count, err := unixtext.CountUnique(*in, *col)
		if err != nil {
			return err
		}
		a.println(strconv.Itoa(count))
	case "sort":
		text, err := unixtext.SortByNumericColumn(*in, *col)
		if err != nil {
			return err
		}
		fmt.Fprint(a.out, text)
	case "freq":
		text, err := unixtext.SortByFrequency(*in, *col)
		if err != nil {
			return err
		}
		fmt.Fprint(a.out, text)
	default:
		return unknownCommand("unix", cmd)
	}
	return nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	return nil
}
