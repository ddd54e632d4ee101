package morph

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cognicore/nlp100/pkg/nlp100/internalerr"
)

func noun(s string) Token { return Token{Surface: s, Base: s, POS: POSNoun, POS1: "一般"} }

func verb(surface, base string) Token {
	return Token{Surface: surface, Base: base, POS: POSVerb, POS1: "自立"}
}

func particle(s string) Token { return Token{Surface: s, Base: s, POS: POSParticle} }

// 吾輩は猫である。名前はまだ無い。 as single-line sentences plus a noun-heavy line.
var fixture = []Sentence{
	{noun("吾輩"), particle("は"), noun("猫"), Token{Surface: "で", Base: "だ", POS: "助動詞"}, Token{Surface: "ある", Base: "ある", POS: "助動詞"}},
	{noun("彼"), particle("の"), noun("掌"), particle("に"), verb("載せ", "載せる"), particle("られ"), verb("見", "見る")},
	{noun("人間"), noun("中"), noun("一番"), verb("獰悪", "獰悪"), particle("の"), noun("猫")},
	{noun("猫"), particle("の"), noun("額"), particle("と"), noun("吾輩"), noun("自身")},
}

func writeTokens(t *testing.T, sentences []Sentence) string {
	t.Helper()
	var buf bytes.Buffer
	for _, s := range sentences {
		data, err := json.Marshal(s)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		buf.Write(data)
		buf.WriteByte('\n')
	}
	path := filepath.Join(t.TempDir(), "neko.txt.json")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("write tokens: %v", err)
	}
	return path
}

func collect(t *testing.T, path string, filter Filter, fn func(Sentence) []string) []string {
	t.Helper()
	var out []string
	if err := WalkFile(path, filter, func(s Sentence) { out = append(out, fn(s)...) }); err != nil {
		t.Fatalf("WalkFile: %v", err)
	}
	return out
}

func TestWalkAnalyses(t *testing.T) {
	path := writeTokens(t, fixture)

	if diff := cmp.Diff([]string{"載せ", "見", "獰悪"}, collect(t, path, nil, Verbs)); diff != "" {
		t.Errorf("Verbs mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"載せる", "見る", "獰悪"}, collect(t, path, nil, VerbBases)); diff != "" {
		t.Errorf("VerbBases mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"彼の掌", "猫の額"}, collect(t, path, nil, NounOfNoun)); diff != "" {
		t.Errorf("NounOfNoun mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"人間中一番", "吾輩自身"}, collect(t, path, nil, NounRuns)); diff != "" {
		t.Errorf("NounRuns mismatch (-want +got):\n%s", diff)
	}
}

func TestContainsFilter(t *testing.T) {
	path := writeTokens(t, fixture)
	count := 0
	if err := WalkFile(path, ContainsFilter("猫"), func(Sentence) { count++ }); err != nil {
		t.Fatalf("WalkFile: %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3 sentences mentioning 猫, got %d", count)
	}
}

func TestWalkErrors(t *testing.T) {
	err := Walk(strings.NewReader("[]\n{not json\n"), nil, func(Sentence) {})
	if !errors.Is(err, internalerr.ErrParse) {
		t.Errorf("expected ErrParse, got %v", err)
	}
	err = WalkFile(filepath.Join(t.TempDir(), "missing.json"), nil, func(Sentence) {})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestSentenceForms(t *testing.T) {
	s := Sentence{noun("猫"), {Surface: "ニャー", POS: POSUnknown}}
	if diff := cmp.Diff([]string{"猫", "ニャー"}, s.Surfaces()); diff != "" {
		t.Errorf("Surfaces mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"猫", "ニャー"}, s.Bases()); diff != "" {
		t.Errorf("Bases mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenize(t *testing.T) {
	tok, err := NewTokenizer()
	if err != nil {
		t.Fatalf("NewTokenizer: %v", err)
	}
	tokens := tok.Tokenize("関西国際空港")
	if len(tokens) != 1 {
		t.Fatalf("expected one token, got %+v", tokens)
	}
	want := Token{Surface: "関西国際空港", Base: "関西国際空港", POS: POSNoun, POS1: "固有名詞"}
	if diff := cmp.Diff(want, tokens[0]); diff != "" {
		t.Errorf("token mismatch (-want +got):\n%s", diff)
	}
}

func TestParseTextRoundTrip(t *testing.T) {
	tok, err := NewTokenizer()
	if err != nil {
		t.Fatalf("NewTokenizer: %v", err)
	}
	var out bytes.Buffer
	if err := tok.ParseText(strings.NewReader("関西国際空港\n\n関西国際空港の猫\n"), &out); err != nil {
		t.Fatalf("ParseText: %v", err)
	}
	if lines := strings.Count(out.String(), "\n"); lines != 3 {
		t.Fatalf("expected one JSON line per input line, got %d", lines)
	}

	var sentences []Sentence
	if err := Walk(&out, nil, func(s Sentence) { sentences = append(sentences, s) }); err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(sentences) != 3 || len(sentences[1]) != 0 {
		t.Fatalf("unexpected sentences: %+v", sentences)
	}
	if got := NounOfNoun(sentences[2]); len(got) != 1 || got[0] != "関西国際空港の猫" {
		t.Errorf("NounOfNoun = %q", got)
	}
}
