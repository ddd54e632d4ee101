package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/cognicore/nlp100/internal/logging"
	"github.com/cognicore/nlp100/pkg/nlp100/config"
	"github.com/cognicore/nlp100/pkg/nlp100/internalerr"
)

const usage = `usage: nlp100 [-config file] [-log-level level] <chapter> <command> [flags] [args]

chapters:
  warmup  reverse | odd | even | mix | pi | symbols | ngram | sets | template | cipher | typo
  unix    wc | tr | cut | paste | head | tail | split | uniq | sort | freq
  wiki    article | category-lines | categories | sections | files | infobox | flag
  morph   tokenize | verbs | bases | noun-of-noun | noun-runs | freq | top | cooc | hist | zipf | collocations | runs

Runs saved by top are kept per process with store.driver memory; runs
requires store.driver sqlite.
`

type app struct {
	cfg *config.Config
	out io.Writer
	err io.Writer
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatalf("nlp100: %v", err)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("nlp100", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	var (
		configPath = fs.String("config", "", "YAML config file (optional)")
		logLevel   = fs.String("log-level", "", "Override logging.level")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	slog.SetDefault(logging.New(cfg.Logging.Level, cfg.Logging.Format, stderr))

	rest := fs.Args()
	if len(rest) < 2 {
		fs.Usage()
		return fmt.Errorf("%w: chapter and command required", internalerr.ErrInvalidInput)
	}
	a := &app{cfg: cfg, out: stdout, err: stderr}
	chapter, cmd, cmdArgs := rest[0], rest[1], rest[2:]
	slog.Debug("dispatch", "chapter", chapter, "command", cmd)

	switch chapter {
	case "warmup", "1":
		return a.warmup(cmd, cmdArgs)
	case "unix", "2":
		return a.unix(cmd, cmdArgs)
	case "wiki", "3":
		return a.wiki(ctx, cmd, cmdArgs)
	case "morph", "4":
		return a.morph(ctx, cmd, cmdArgs)
	default:
		fs.Usage()
		return fmt.Errorf("%w: unknown chapter %q", internalerr.ErrInvalidInput, chapter)
	}
}

func (a *app) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.err)
	return fs
}

func (a *app) println(lines ...string) {
	for _, line := range lines {
		fmt.Fprintln(a.out, line)
	}
}

func requireArgs(cmd string, args []string, n int) error {
	if len(args) < n {
		return fmt.Errorf("%w: %s needs %d argument(s), got %d", internalerr.ErrInvalidInput, cmd, n, len(args))
	}
	return nil
}

func unknownCommand(chapter, cmd string) error {
	return fmt.Errorf("%w: unknown %s command %q", internalerr.ErrInvalidInput, chapter, cmd)
}

func joinArgs(args []string) string {
	return strings.Join(args, " ")
}
