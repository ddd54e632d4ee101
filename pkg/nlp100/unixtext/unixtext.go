// Package unixtext re-implements the chapter 2 unix text utilities
// (wc, tr, cut, paste, head, tail, split, sort, uniq) over tab separated files.
//
// Every function opens and closes its files within the call. A missing
// input file or a line without the requested column aborts the call and
// nothing partial is returned.
package unixtext

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cognicore/nlp100/pkg/nlp100/internalerr"
)

const maxLineSize = 1 << 20

// CountLines returns the number of lines in the file (wc -l).
func CountLines(path string) (int, error) {
	n := 0
	err := forEachLine(path, func(string) error {
		n++
		return nil
	})
	return n, err
}

// TabsToSpaces returns the file contents with every tab replaced by a space.
func TabsToSpaces(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return strings.ReplaceAll(string(data), "\t", " "), nil
}

// ExtractColumn writes the 0-based column col of each line of in to out.
func ExtractColumn(in string, col int, out string) error {
	return writeLines(out, func(w *bufio.Writer) error {
		return forEachLine(in, func(line string) error {
			field, err := column(line, col)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, field)
			return err
		})
	})
}

// MergeColumns joins the lines of two files with a tab, like paste.
// Output stops at the end of the shorter file.
func MergeColumns(col1, col2, out string) error {
	a, err := readLines(col1)
	if err != nil {
		return err
	}
	b, err := readLines(col2)
	if err != nil {
		return err
	}
	return writeLines(out, func(w *bufio.Writer) error {
		for i := 0; i < len(a) && i < len(b); i++ {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", a[i], b[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

// Head returns the first n lines, each terminated by a newline.
func Head(path string, n int) (string, error) {
	lines, err := readLines(path)
	if err != nil {
		return "", err
	}
	if n < len(lines) {
		lines = lines[:max(n, 0)]
	}
	return joinLines(lines), nil
}

// Tail returns the last n lines, each terminated by a newline.
func Tail(path string, n int) (string, error) {
	lines, err := readLines(path)
	if err != nil {
		return "", err
	}
	if n < len(lines) {
		lines = lines[len(lines)-max(n, 0):]
	}
	return joinLines(lines), nil
}

// SplitFile splits in into parts files holding ceil(lines/parts) lines each,
// named prefix1suffix, prefix2suffix, ... It returns the created paths.
func SplitFile(in string, parts int, prefix, suffix string) ([]string, error) {
	if parts <= 0 {
		return nil, fmt.Errorf("%w: split into %d parts", internalerr.ErrInvalidInput, parts)
	}
	lines, err := readLines(in)
	if err != nil {
		return nil, err
	}

	per := (len(lines) + parts - 1) / parts
	paths := make([]string, 0, parts)
	for i := 0; i < parts; i++ {
		start := min(i*per, len(lines))
		end := min(start+per, len(lines))
		path := fmt.Sprintf("%s%d%s", prefix, i+1, suffix)
		err := writeLines(path, func(w *bufio.Writer) error {
			_, err := io.WriteString(w, joinLines(lines[start:end]))
			return err
		})
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func forEachLine(path string, fn func(line string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		if err := fn(scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan %s: %w", path, err)
	}
	return nil
}

func readLines(path string) ([]string, error) {
	var lines []string
	err := forEachLine(path, func(line string) error {
		lines = append(lines, line)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// writeLines fills a temp file next to path and renames it into place only
// after fn and the flush succeed, so a failed call leaves path untouched.
func writeLines(path string, fn func(w *bufio.Writer) error) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	w := bufio.NewWriter(f)
	if err := fn(w); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	if err := f.Chmod(0644); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}

func joinLines(lines []string) string {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func column(line string, col int) (string, error) {
	fields := strings.Split(line, "\t")
	if col < 0 || col >= len(fields) {
		return "", fmt.Errorf("%w: column %d missing in %q", internalerr.ErrParse, col, line)
	}
	return fields[col], nil
}
