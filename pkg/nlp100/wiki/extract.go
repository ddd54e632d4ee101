package wiki

import (
	"regexp"
	"strings"
)

var (
	categoryLinePattern = regexp.MustCompile(`\[\[Category:(.*)\]\]`)
	categoryNamePattern = regexp.MustCompile(`\[\[Category:([^|]+)\|?.*\]\]`)
	sectionPattern      = regexp.MustCompile(`(={2,})([^=]+)(={2,})`)
	// ファイル is the Japanese namespace for File: links.
	filePattern = regexp.MustCompile(`\[\[ファイル:([^|]+)(?:\|+|\]\])`)
)

// Section is a heading and its depth; "==歴史==" has level 1.
type Section struct {
	Heading string
	Level   int
}

// CategoryLines returns the lines declaring a category, in document order.
func CategoryLines(a Article) []string {
	var lines []string
	for _, line := range a.Lines() {
		if categoryLinePattern.MatchString(line) {
			lines = append(lines, line)
		}
	}
	return lines
}

// Categories returns the category names, dropping any "|sortkey" suffix.
// Duplicates are kept.
func Categories(a Article) []string {
	var names []string
	for _, line := range a.Lines() {
		for _, m := range categoryNamePattern.FindAllStringSubmatch(line, -1) {
			names = append(names, m[1])
		}
	}
	return names
}

// Sections returns the article headings in document order.
func Sections(a Article) []Section {
	var sections []Section
	for _, line := range a.Lines() {
		for _, m := range sectionPattern.FindAllStringSubmatch(line, -1) {
			sections = append(sections, Section{
				Heading: strings.TrimSpace(m[2]),
				Level:   len(m[1]) - 1,
			})
		}
	}
	return sections
}

// Files returns the file names referenced by [[ファイル:...]] links.
func Files(a Article) []string {
	var files []string
	for _, line := range a.Lines() {
		for _, m := range filePattern.FindAllStringSubmatch(line, -1) {
			files = append(files, m[1])
		}
	}
	return files
}
