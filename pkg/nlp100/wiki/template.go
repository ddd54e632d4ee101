package wiki

import (
	"regexp"
	"strings"
)

var (
	basicInfoPattern = regexp.MustCompile(`(?ms)(?:^\{\{基礎情報.+?$)(.+?)(?:^\}\}$)`)
	entryPattern     = regexp.MustCompile(`(?s)(.+?)\s*=\s*(.+?)\z`)
)

// BasicInfo maps infobox field names to their (cleaned) values.
type BasicInfo map[string]string

// ExtractBasicInfo parses every {{基礎情報 ...}} block of the article into
// a field map, passing each value through cleaner. When a field appears more
// than once the last value wins.
func ExtractBasicInfo(a Article, cleaner CleanerKind) BasicInfo {
	info := make(BasicInfo)
	for _, block := range basicInfoPattern.FindAllStringSubmatch(a.Text, -1) {
		for _, entry := range strings.Split(block[1], "\n|") {
			entry = strings.TrimSpace(entry)
			if entry == "" {
				continue
			}
			m := entryPattern.FindStringSubmatch(entry)
			if m == nil {
				continue
			}
			info[m[1]] = cleaner.Clean(m[2])
		}
	}
	return info
}
