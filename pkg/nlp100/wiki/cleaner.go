package wiki

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// CleanerKind selects how much markup ExtractBasicInfo removes from values.
// Each kind runs every step of the kind before it.
type CleanerKind int

const (
	// Identity returns values untouched.
	Identity CleanerKind = iota
	// StripEmphasis removes ''italic'' and '''bold''' quote runs.
	StripEmphasis
	// StripLinks also replaces [[body]] with body. The body is kept
	// verbatim, so [[target|label]] becomes "target|label".
	StripLinks
	// StripMarkup also reduces piped links to their label, unwraps
	// lang and 仮リンク templates, drops other templates, external link
	// URLs, <ref> bodies and HTML tags.
	StripMarkup
)

var (
	emphasisPattern     = regexp.MustCompile(`'{2,5}`)
	linkPattern         = regexp.MustCompile(`(?:\[\[)(?P<link>.+?)(?:\]\])`)
	pipedLinkPattern    = regexp.MustCompile(`\[\[(?:[^\[\]|]*\|)+([^\[\]|]*)\]\]`)
	langTemplatePattern = regexp.MustCompile(`\{\{lang\|[^|{}]*\|([^{}]*?)\}\}`)
	tempLinkPattern     = regexp.MustCompile(`\{\{仮リンク\|([^|{}]*)(?:\|[^{}]*)?\}\}`)
	templatePattern     = regexp.MustCompile(`\{\{[^{}]*\}\}`)
	externalLinkPattern = regexp.MustCompile(`\[https?://[^\s\]]+\s*([^\]]*)\]`)
)

type cleanStep func(string) string

func (k CleanerKind) steps() []cleanStep {
	switch k {
	case StripEmphasis:
		return []cleanStep{removeEmphasis}
	case StripLinks:
		return []cleanStep{removeEmphasis, removeLinks}
	case StripMarkup:
		return []cleanStep{removeEmphasis, removeHTML, unwrapTemplates, reducePipedLinks, removeLinks, removeExternalLinks, strings.TrimSpace}
	default:
		return nil
	}
}

// Clean applies the kind's steps to s in order.
func (k CleanerKind) Clean(s string) string {
	for _, step := range k.steps() {
		s = step(s)
	}
	return s
}

func (k CleanerKind) String() string {
	switch k {
	case Identity:
		return "identity"
	case StripEmphasis:
		return "strip-emphasis"
	case StripLinks:
		return "strip-links"
	case StripMarkup:
		return "strip-markup"
	default:
		return fmt.Sprintf("CleanerKind(%d)", int(k))
	}
}

// ParseCleanerKind maps the names printed by String back to kinds.
func ParseCleanerKind(name string) (CleanerKind, bool) {
	for k := Identity; k <= StripMarkup; k++ {
		if k.String() == name {
			return k, true
		}
	}
	return Identity, false
}

func removeEmphasis(s string) string {
	return emphasisPattern.ReplaceAllString(s, "")
}

func removeLinks(s string) string {
	if !strings.Contains(s, "[[") {
		return s
	}
	return linkPattern.ReplaceAllString(s, "${link}")
}

func reducePipedLinks(s string) string {
	return pipedLinkPattern.ReplaceAllString(s, "$1")
}

func removeExternalLinks(s string) string {
	return externalLinkPattern.ReplaceAllString(s, "$1")
}

// unwrapTemplates repeats until nested templates are gone.
func unwrapTemplates(s string) string {
	for {
		next := langTemplatePattern.ReplaceAllString(s, "$1")
		next = tempLinkPattern.ReplaceAllString(next, "$1")
		next = templatePattern.ReplaceAllString(next, "")
		if next == s {
			return s
		}
		s = next
	}
}

// removeHTML keeps only text nodes, skipping everything inside <ref>.
func removeHTML(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	refDepth := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() == io.EOF {
				return b.String()
			}
			return s
		case html.TextToken:
			if refDepth == 0 {
				b.Write(z.Text())
			}
		case html.StartTagToken:
			if name, _ := z.TagName(); string(name) == "ref" {
				refDepth++
			}
		case html.EndTagToken:
			if name, _ := z.TagName(); string(name) == "ref" && refDepth > 0 {
				refDepth--
			}
		}
	}
}
