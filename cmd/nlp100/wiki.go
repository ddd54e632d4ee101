package main

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/cognicore/nlp100/internal/mediawiki"
	"github.com/cognicore/nlp100/pkg/nlp100/internalerr"
	"github.com/cognicore/nlp100/pkg/nlp100/report"
	"github.com/cognicore/nlp100/pkg/nlp100/wiki"
)

func (a *app) wiki(ctx context.Context, cmd string, args []string) error {
	fs := a.flags("wiki " + cmd)
	var (
		dump    = fs.String("dump", a.cfg.Data.Resolve(a.cfg.Data.WikiDump), "gzip NDJSON article dump")
		title   = fs.String("title", a.cfg.Wiki.Title, "Article title")
		cleaner = fs.String("cleaner", a.cfg.Wiki.Cleaner, "identity | strip-emphasis | strip-links | strip-markup")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	wcfg := a.cfg.Wiki
	wcfg.Cleaner = *cleaner
	kind, err := wcfg.CleanerKind()
	if err != nil {
		return err
	}

	article, err := wiki.FindArticle(*dump, *title)
	if err != nil {
		return err
	}

	switch cmd {
	case "article":
		a.println(article.Text)
	case "category-lines":
		a.println(wiki.CategoryLines(article)...)
	case "categories":
		a.println(wiki.Categories(article)...)
	case "sections":
		var rows [][]string
		for _, s := range wiki.Sections(article) {
			rows = append(rows, []string{strconv.Itoa(s.Level), strings.Repeat("  ", s.Level-1) + s.Heading})
		}
		return report.Table(a.out, []string{"level", "heading"}, rows)
	case "files":
		a.println(wiki.Files(article)...)
	case "infobox":
		info := wiki.ExtractBasicInfo(article, kind)
		keys := make([]string, 0, len(info))
		for k := range info {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		rows := make([][]string, len(keys))
		for i, k := range keys {
			rows[i] = []string{k, info[k]}
		}
		return report.Table(a.out, []string{"field", "value"}, rows)
	case "flag":
		client := &mediawiki.Client{
			Endpoint:   a.cfg.Wiki.APIEndpoint,
			UserAgent:  a.cfg.Wiki.UserAgent,
			HTTPClient: &http.Client{Timeout: a.cfg.Wiki.Timeout()},
		}
		url, ok := wiki.CountryFlagURL(ctx, wiki.ExtractBasicInfo(article, kind), client)
		if !ok {
			return fmt.Errorf("%w: flag image URL for %q", internalerr.ErrNotFound, *title)
		}
		a.println(url)
	default:
		return unknownCommand("wiki", cmd)
	}
	return nil
}
