// Package wiki extracts structure from Wikipedia articles stored as
// newline-delimited JSON inside a gzip archive (chapter 3).
//
// The extractors are pure functions of the article text. Only
// CountryFlagURL reaches out to the network, through an ImageResolver.
package wiki

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/cognicore/nlp100/pkg/nlp100/internalerr"
)

const maxArticleSize = 16 << 20

// Article is one decoded line of the dump.
type Article struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Lines splits the article body on newlines.
func (a Article) Lines() []string {
	return strings.Split(a.Text, "\n")
}

// ReadDumpLines decompresses the dump at path and returns its lines.
func ReadDumpLines(path string) ([]string, error) {
	var lines []string
	err := forEachDumpLine(path, func(line string) error {
		lines = append(lines, line)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// LoadArticles returns every article in the dump whose title is exactly
// title. A line that fails to decode aborts the load.
func LoadArticles(path, title string) ([]Article, error) {
	var articles []Article
	lineNo := 0
	err := forEachDumpLine(path, func(line string) error {
		lineNo++
		if strings.TrimSpace(line) == "" {
			return nil
		}
		var a Article
		if err := json.Unmarshal([]byte(line), &a); err != nil {
			return fmt.Errorf("%w: line %d of %s: %v", internalerr.ErrParse, lineNo, path, err)
		}
		if a.Title == title {
			articles = append(articles, a)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return articles, nil
}

// FindArticle returns the first article titled title.
func FindArticle(path, title string) (Article, error) {
	articles, err := LoadArticles(path, title)
	if err != nil {
		return Article{}, err
	}
	if len(articles) == 0 {
		return Article{}, fmt.Errorf("%w: article %q in %s", internalerr.ErrNotFound, title, path)
	}
	return articles[0], nil
}

func forEachDumpLine(path string, fn func(line string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return fmt.Errorf("%w: gzip header of %s: %v", internalerr.ErrParse, path, err)
	}
	defer gz.Close()

	scanner := bufio.NewScanner(gz)
	scanner.Buffer(make([]byte, 0, 64*1024), maxArticleSize)
	for scanner.Scan() {
		if err := fn(scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}
