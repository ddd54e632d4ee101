// Package morph turns text into morphological tokens and walks the
// resulting NDJSON token stream (chapter 4).
package morph

// Part-of-speech tags used by the analyses, as emitted by the IPA dictionary.
const (
	POSNoun     = "名詞"
	POSVerb     = "動詞"
	POSParticle = "助詞"
	// POSUnknown marks tokens the dictionary could not classify.
	POSUnknown = "UNK"
)

// Token is one segmented word.
type Token struct {
	Surface string `json:"surface"`
	Base    string `json:"base"`
	POS     string `json:"pos"`
	POS1    string `json:"pos1"`
}

// Sentence is the token list of one input line.
type Sentence []Token

// Surfaces returns the surface forms in order.
func (s Sentence) Surfaces() []string {
	out := make([]string, len(s))
	for i, tok := range s {
		out[i] = tok.Surface
	}
	return out
}

// Bases returns the base forms, falling back to the surface when a token
// has none.
func (s Sentence) Bases() []string {
	out := make([]string, len(s))
	for i, tok := range s {
		if tok.Base != "" {
			out[i] = tok.Base
		} else {
			out[i] = tok.Surface
		}
	}
	return out
}
