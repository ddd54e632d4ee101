// Package report renders analysis results as plain-text tables and bar charts
// that stay aligned with full-width (CJK) text.
package report

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Table writes a markdown table with columns padded to their display width.
func Table(w io.Writer, headers []string, rows [][]string) error {
	colCount := len(headers)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	if colCount == 0 {
		return nil
	}

	colWidths := make([]int, colCount)
	measure := func(row []string) {
		for i := 0; i < len(row); i++ {
			if width := runewidth.StringWidth(row[i]); width > colWidths[i] {
				colWidths[i] = width
			}
		}
	}
	measure(headers)
	for _, row := range rows {
		measure(row)
	}
	for i := range colWidths {
		if colWidths[i] < 3 {
			colWidths[i] = 3
		}
	}

	out := bufio.NewWriter(w)
	writeRow := func(row []string) {
		out.WriteString("|")
		for j := 0; j < colCount; j++ {
			content := ""
			if j < len(row) {
				content = row[j]
			}
			out.WriteString(" ")
			out.WriteString(runewidth.FillRight(content, colWidths[j]))
			out.WriteString(" |")
		}
		out.WriteString("\n")
	}

	writeRow(headers)
	out.WriteString("|")
	for _, width := range colWidths {
		out.WriteString(" " + strings.Repeat("-", width) + " |")
	}
	out.WriteString("\n")
	for _, row := range rows {
		writeRow(row)
	}
	return out.Flush()
}

// Bar is one labelled value of a chart.
type Bar struct {
	Label string
	Value int64
}

// Histogram draws one '#' bar per entry, scaled so the largest value spans
// width cells. Non-zero values always get at least one cell.
func Histogram(w io.Writer, bars []Bar, width int) error {
	if width <= 0 {
		width = 40
	}
	var maxValue int64
	labelWidth := 0
	for _, b := range bars {
		if b.Value > maxValue {
			maxValue = b.Value
		}
		if lw := runewidth.StringWidth(b.Label); lw > labelWidth {
			labelWidth = lw
		}
	}

	out := bufio.NewWriter(w)
	for _, b := range bars {
		cells := 0
		if maxValue > 0 && b.Value > 0 {
			cells = int(b.Value * int64(width) / maxValue)
			if cells == 0 {
				cells = 1
			}
		}
		out.WriteString(runewidth.FillLeft(b.Label, labelWidth))
		out.WriteString(" | ")
		out.WriteString(strings.Repeat("#", cells))
		out.WriteString(" ")
		out.WriteString(strconv.FormatInt(b.Value, 10))
		out.WriteString("\n")
	}
	return out.Flush()
}
