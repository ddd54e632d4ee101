package warmup

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReverse(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"stressed", "desserts"},
		{"hoge", "egoh"},
		{"ほげ", "げほ"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Reverse(tt.in); got != tt.want {
			t.Errorf("Reverse(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if got := Reverse(Reverse(tt.in)); got != tt.in {
			t.Errorf("Reverse twice changed %q into %q", tt.in, got)
		}
	}
}

func TestOddEvenIndexChars(t *testing.T) {
	if got := OddIndexChars("パタトクカシーー"); got != "パトカー" {
		t.Errorf("OddIndexChars = %q", got)
	}
	if got := EvenIndexChars("パタトクカシーー"); got != "タクシー" {
		t.Errorf("EvenIndexChars = %q", got)
	}
	if got := OddIndexChars("ほげほ"); got != "ほほ" {
		t.Errorf("OddIndexChars(ほげほ) = %q", got)
	}
}

func TestMixTwoStrings(t *testing.T) {
	tests := []struct {
		a, b string
		want string
	}{
		{"パトカー", "タクシー", "パタトクカシーー"},
		{"パトカ", "タクシ？", "パタトクカシ？"},
		{"パトカ！！", "タクシ", "パタトクカシ！！"},
		{"", "タクシー", ""},
		{"パトカー", "", ""},
	}
	for _, tt := range tests {
		if got := MixTwoStrings(tt.a, tt.b); got != tt.want {
			t.Errorf("MixTwoStrings(%q, %q) = %q, want %q", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestMixInvertsOddEven(t *testing.T) {
	for _, s := range []string{"パタトクカシーー", "abcdef", "日本語です"} {
		if len([]rune(s))%2 != 0 {
			continue
		}
		if got := MixTwoStrings(OddIndexChars(s), EvenIndexChars(s)); got != s {
			t.Errorf("mix(odd, even) of %q = %q", s, got)
		}
	}
}

func TestPi(t *testing.T) {
	got := Pi("Now I need a drink, alcoholic of course, after the heavy lectures involving quantum mechanics.")
	want := []int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5, 8, 9, 7, 9}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Pi mismatch (-want +got):\n%s", diff)
	}

	got = Pi("This is    a pen...")
	if diff := cmp.Diff([]int{4, 2, 1, 3}, got); diff != "" {
		t.Errorf("Pi mismatch (-want +got):\n%s", diff)
	}
}

func TestChemicalSymbols(t *testing.T) {
	sentence := "Hi He Lied Because Boron Could Not Oxidize Fluorine. New Nations Might Also Sign Peace Security Clause. Arthur King Can."
	singles := []int{1, 5, 6, 7, 8, 9, 15, 16, 19}
	symbols := []string{"H", "He", "Li", "Be", "B", "C", "N", "O", "F", "Ne", "Na", "Mi", "Al", "Si", "P", "S", "Cl", "Ar", "K", "Ca"}
	want := make(map[string]int, len(symbols))
	for i, s := range symbols {
		want[s] = i + 1
	}

	got := ChemicalSymbols(sentence, singles)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ChemicalSymbols mismatch (-want +got):\n%s", diff)
	}
}

func TestChemicalSymbolsMalformed(t *testing.T) {
	if got := ChemicalSymbols("Hi He", nil); len(got) != 0 {
		t.Errorf("expected empty map without singles, got %v", got)
	}
	if got := ChemicalSymbols("Hi He", []int{3}); len(got) != 0 {
		t.Errorf("expected empty map for out-of-range position, got %v", got)
	}

	got := ChemicalSymbols("Hi a Be", []int{1})
	want := map[string]int{"H": 1, "Be": 3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("short word should be skipped (-want +got):\n%s", diff)
	}
}

func TestNGrams(t *testing.T) {
	words := WordNGrams("I am an NLPer", 2)
	wantWords := [][]string{{"I", "am"}, {"am", "an"}, {"an", "NLPer"}}
	if diff := cmp.Diff(wantWords, words); diff != "" {
		t.Errorf("WordNGrams mismatch (-want +got):\n%s", diff)
	}

	chars := CharNGrams("I am an NLPer", 2)
	wantChars := []string{"I ", " a", "am", "m ", " a", "an", "n ", " N", "NL", "LP", "Pe", "er"}
	if diff := cmp.Diff(wantChars, chars); diff != "" {
		t.Errorf("CharNGrams mismatch (-want +got):\n%s", diff)
	}

	if got := CharNGrams("ab", 3); got != nil {
		t.Errorf("expected nil for n larger than input, got %v", got)
	}
	if got := WordNGrams("a b", 0); got != nil {
		t.Errorf("expected nil for n=0, got %v", got)
	}
}

func TestBigramSets(t *testing.T) {
	x := BigramSet("paraparaparadise")
	y := BigramSet("paragraph")

	tests := []struct {
		name string
		got  Set
		want []string
	}{
		{"union", Union(x, y), []string{"ad", "ag", "ap", "ar", "di", "gr", "is", "pa", "ph", "ra", "se"}},
		{"intersection", Intersection(x, y), []string{"ap", "ar", "pa", "ra"}},
		{"difference", Difference(x, y), []string{"ad", "di", "is", "se"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got.Sorted()); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if !x.Contains("se") {
		t.Error("X should contain se")
	}
	if y.Contains("se") {
		t.Error("Y should not contain se")
	}
}

func TestTemplate(t *testing.T) {
	if got := Template(12, "気温", 22.4); got != "12時の気温は22.4" {
		t.Errorf("Template = %q", got)
	}
}

func TestCipher(t *testing.T) {
	if got := Cipher("abc Hi!"); got != "zyx Hr!" {
		t.Errorf("Cipher = %q", got)
	}
	msg := "I couldn't believe that I could actually understand."
	if got := Cipher(Cipher(msg)); got != msg {
		t.Errorf("Cipher is not an involution: %q", got)
	}
}

func TestTypoglycemia(t *testing.T) {
	sentence := "I couldn't believe that I could actually understand what I was reading"
	rng := rand.New(rand.NewPCG(1, 2))
	got := Typoglycemia(sentence, rng)

	in := WordNGrams(sentence, 1)
	out := WordNGrams(got, 1)
	if len(in) != len(out) {
		t.Fatalf("word count changed: %d -> %d", len(in), len(out))
	}
	for i := range in {
		orig, shuffled := []rune(in[i][0]), []rune(out[i][0])
		if len(orig) <= 4 {
			if string(orig) != string(shuffled) {
				t.Errorf("short word %q changed to %q", string(orig), string(shuffled))
			}
			continue
		}
		if orig[0] != shuffled[0] || orig[len(orig)-1] != shuffled[len(shuffled)-1] {
			t.Errorf("word %q lost its first or last character: %q", string(orig), string(shuffled))
		}
		slices.Sort(orig)
		slices.Sort(shuffled)
		if string(orig) != string(shuffled) {
			t.Errorf("word %q changed its characters", in[i][0])
		}
	}
}

func TestTypoglycemiaNilSource(t *testing.T) {
	got := Typoglycemia("understand the words", nil)
	words := strings.Fields(got)
	if len(words) != 3 || words[1] != "the" {
		t.Fatalf("unexpected output %q", got)
	}
	if w := []rune(words[2]); len(w) != 5 || w[0] != 'w' || w[4] != 's' {
		t.Errorf("word %q lost its shape", words[2])
	}
	if w := []rune(words[0]); len(w) != 10 || w[0] != 'u' || w[9] != 'd' {
		t.Errorf("long word %q lost its shape", words[0])
	}
}
