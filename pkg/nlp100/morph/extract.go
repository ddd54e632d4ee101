package morph

import "strings"

// Verbs returns the surface form of every verb.
func Verbs(s Sentence) []string {
	var out []string
	for _, tok := range s {
		if tok.POS == POSVerb {
			out = append(out, tok.Surface)
		}
	}
	return out
}

// VerbBases returns the base form of every verb.
func VerbBases(s Sentence) []string {
	var out []string
	for _, tok := range s {
		if tok.POS == POSVerb {
			out = append(out, tok.Base)
		}
	}
	return out
}

// NounOfNoun returns each "AのB" where A and B are nouns.
func NounOfNoun(s Sentence) []string {
	var out []string
	for i := 1; i+1 < len(s); i++ {
		if s[i].Surface != "の" || s[i-1].POS != POSNoun || s[i+1].POS != POSNoun {
			continue
		}
		out = append(out, s[i-1].Surface+s[i].Surface+s[i+1].Surface)
	}
	return out
}

// NounRuns returns the maximal runs of two or more consecutive nouns,
// each joined into one string.
func NounRuns(s Sentence) []string {
	var out []string
	var run []string
	flush := func() {
		if len(run) > 1 {
			out = append(out, strings.Join(run, ""))
		}
		run = run[:0]
	}
	for _, tok := range s {
		if tok.POS == POSNoun {
			run = append(run, tok.Surface)
			continue
		}
		flush()
	}
	flush()
	return out
}
