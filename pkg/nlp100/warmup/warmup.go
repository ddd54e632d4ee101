// Package warmup holds the chapter 1 string exercises.
//
// All functions operate on runes, so multi-byte text such as Japanese is
// handled character by character rather than byte by byte.
package warmup

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"unicode"
)

// Reverse returns s with its characters in reverse order.
func Reverse(s string) string {
	runes := []rune(s)
	slices.Reverse(runes)
	return string(runes)
}

// OddIndexChars keeps the 1st, 3rd, 5th... characters of s.
// "パタトクカシーー" becomes "パトカー".
func OddIndexChars(s string) string {
	return everyOther(s, 0)
}

// EvenIndexChars keeps the 2nd, 4th, 6th... characters of s.
// "パタトクカシーー" becomes "タクシー".
func EvenIndexChars(s string) string {
	return everyOther(s, 1)
}

func everyOther(s string, offset int) string {
	var b strings.Builder
	for i, r := range []rune(s) {
		if i%2 == offset {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MixTwoStrings alternates the characters of first and second, starting
// with first. When one input is longer, its remaining characters are
// appended. If either input is empty the result is empty.
func MixTwoStrings(first, second string) string {
	if first == "" || second == "" {
		return ""
	}
	a, b := []rune(first), []rune(second)
	mixed := make([]rune, 0, len(a)+len(b))
	for i := 0; i < len(a) || i < len(b); i++ {
		if i < len(a) {
			mixed = append(mixed, a[i])
		}
		if i < len(b) {
			mixed = append(mixed, b[i])
		}
	}
	return string(mixed)
}

// Pi returns the number of letters in each whitespace-separated word.
// Punctuation does not count, so the classic mnemonic sentence yields
// the digits of pi.
func Pi(sentence string) []int {
	words := strings.Fields(sentence)
	lengths := make([]int, 0, len(words))
	for _, word := range words {
		n := 0
		for _, r := range word {
			if unicode.IsLetter(r) {
				n++
			}
		}
		lengths = append(lengths, n)
	}
	return lengths
}

// ChemicalSymbols maps element-like symbols to the 1-based position of the
// word they came from. Words whose position is listed in singles contribute
// their first character, every other word its first two characters.
//
// Malformed input is logged and processing continues: an empty singles list
// or one that points past the last word yields an empty map, and words too
// short to provide a symbol are skipped.
func ChemicalSymbols(sentence string, singles []int) map[string]int {
	symbols := make(map[string]int)
	if len(singles) == 0 {
		slog.Error("chemical symbols: no single-character positions given")
		return symbols
	}

	words := strings.Fields(sentence)
	if last := slices.Max(singles); len(words) < last {
		slog.Error("chemical symbols: position beyond sentence",
			slog.Int("words", len(words)), slog.Int("position", last))
		return symbols
	}

	for i, word := range words {
		idx := i + 1
		runes := []rune(word)
		width := 2
		if slices.Contains(singles, idx) {
			width = 1
		}
		if len(runes) < width {
			slog.Error("chemical symbols: word too short", slog.String("word", word), slog.Int("position", idx))
			continue
		}
		symbols[string(runes[:width])] = idx
	}
	return symbols
}

// Template renders "{x}時の{y}は{z}".
func Template(x, y, z any) string {
	return fmt.Sprintf("%v時の%vは%v", x, y, z)
}

// Cipher replaces each lowercase ASCII letter c with the character 219-c
// and leaves everything else alone. Applying it twice restores the input.
func Cipher(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return 219 - r
		}
		return r
	}, s)
}
