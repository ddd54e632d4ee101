package unixtext

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/cognicore/nlp100/pkg/nlp100/internalerr"
)

// CountUnique returns the number of distinct values in column col.
func CountUnique(path string, col int) (int, error) {
	seen := make(map[string]struct{})
	err := forEachLine(path, func(line string) error {
		field, err := column(line, col)
		if err != nil {
			return err
		}
		seen[field] = struct{}{}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(seen), nil
}

type numberedLine struct {
	line string
	num  int64
}

// SortByNumericColumn returns the lines ordered by the integer in column col,
// largest first. Lines with equal values are ordered by the whole line,
// descending.
func SortByNumericColumn(path string, col int) (string, error) {
	var lines []numberedLine
	err := forEachLine(path, func(line string) error {
		field, err := column(line, col)
		if err != nil {
			return err
		}
		num, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
		if err != nil {
			return fmt.Errorf("%w: column %d of %q is not a number", internalerr.ErrParse, col, line)
		}
		lines = append(lines, numberedLine{line: line, num: num})
		return nil
	})
	if err != nil {
		return "", err
	}

	sort.Slice(lines, func(i, j int) bool {
		if lines[i].num != lines[j].num {
			return lines[i].num > lines[j].num
		}
		return lines[i].line > lines[j].line
	})

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l.line)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// SortByFrequency counts the values of column col and returns
// "count value" lines, most frequent first. Ties are ordered by value,
// descending.
func SortByFrequency(path string, col int) (string, error) {
	counts := make(map[string]int)
	err := forEachLine(path, func(line string) error {
		field, err := column(line, col)
		if err != nil {
			return err
		}
		counts[field]++
		return nil
	})
	if err != nil {
		return "", err
	}

	values := make([]string, 0, len(counts))
	for v := range counts {
		values = append(values, v)
	}
	sort.Slice(values, func(i, j int) bool {
		if counts[values[i]] != counts[values[j]] {
			return counts[values[i]] > counts[values[j]]
		}
		return values[i] > values[j]
	})

	var b strings.Builder
	for _, v := range values {
		fmt.Fprintf(&b, "%d %s\n", counts[v], v)
	}
	return b.String(), nil
}
