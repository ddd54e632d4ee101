package morph

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// IPA feature layout: pos, pos1, pos2, pos3, conjugation type, conjugation form, base.
const (
	featurePOS1 = 1
	featureBase = 6
)

// Tokenizer segments Japanese text with kagome and the IPA dictionary.
type Tokenizer struct {
	t *tokenizer.Tokenizer
}

// NewTokenizer loads the IPA dictionary.
func NewTokenizer() (*Tokenizer, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("morph: load ipa dictionary: %w", err)
	}
	return &Tokenizer{t: t}, nil
}

// Tokenize segments one line.
func (t *Tokenizer) Tokenize(line string) Sentence {
	tokens := t.t.Tokenize(line)
	sentence := make(Sentence, 0, len(tokens))
	for _, tok := range tokens {
		sentence = append(sentence, convert(tok))
	}
	return sentence
}

func convert(tok tokenizer.Token) Token {
	if tok.Class == tokenizer.UNKNOWN {
		return Token{Surface: tok.Surface, POS: POSUnknown}
	}
	features := tok.Features()
	out := Token{Surface: tok.Surface}
	if len(features) > 0 {
		out.POS = features[0]
	}
	out.POS1 = feature(features, featurePOS1)
	out.Base = feature(features, featureBase)
	return out
}

func feature(features []string, idx int) string {
	if idx >= len(features) || features[idx] == "*" {
		return ""
	}
	return features[idx]
}

// ParseText tokenizes r line by line and writes one JSON array of tokens
// per line to w.
func (t *Tokenizer) ParseText(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	out := bufio.NewWriter(w)
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	for scanner.Scan() {
		if err := enc.Encode(t.Tokenize(scanner.Text())); err != nil {
			return fmt.Errorf("morph: encode tokens: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("morph: read text: %w", err)
	}
	return out.Flush()
}
