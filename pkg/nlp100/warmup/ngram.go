package warmup

import (
	"math/rand/v2"
	"sort"
	"strings"
)

// WordNGrams returns the contiguous n-word sequences of text.
func WordNGrams(text string, n int) [][]string {
	words := strings.Fields(text)
	if n <= 0 || len(words) < n {
		return nil
	}
	grams := make([][]string, 0, len(words)-n+1)
	for i := 0; i+n <= len(words); i++ {
		grams = append(grams, words[i:i+n:i+n])
	}
	return grams
}

// CharNGrams returns the contiguous n-character sequences of text,
// spaces included.
func CharNGrams(text string, n int) []string {
	runes := []rune(text)
	if n <= 0 || len(runes) < n {
		return nil
	}
	grams := make([]string, 0, len(runes)-n+1)
	for i := 0; i+n <= len(runes); i++ {
		grams = append(grams, string(runes[i:i+n]))
	}
	return grams
}

// Set is an unordered collection of distinct strings.
type Set map[string]struct{}

// NewSet builds a set from items.
func NewSet(items ...string) Set {
	s := make(Set, len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

// BigramSet is the set of character bigrams of text.
func BigramSet(text string) Set {
	return NewSet(CharNGrams(text, 2)...)
}

// Contains reports whether item is in s.
func (s Set) Contains(item string) bool {
	_, ok := s[item]
	return ok
}

// Sorted returns the members of s in ascending order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for item := range s {
		out = append(out, item)
	}
	sort.Strings(out)
	return out
}

// Union returns the members found in either set.
func Union(a, b Set) Set {
	out := make(Set, len(a)+len(b))
	for item := range a {
		out[item] = struct{}{}
	}
	for item := range b {
		out[item] = struct{}{}
	}
	return out
}

// Intersection returns the members found in both sets.
func Intersection(a, b Set) Set {
	out := make(Set)
	for item := range a {
		if b.Contains(item) {
			out[item] = struct{}{}
		}
	}
	return out
}

// Difference returns the members of a that are not in b.
func Difference(a, b Set) Set {
	out := make(Set)
	for item := range a {
		if !b.Contains(item) {
			out[item] = struct{}{}
		}
	}
	return out
}

// Typoglycemia shuffles the inner characters of every word longer than
// four characters, keeping the first and last in place. A nil rng uses a
// randomly seeded source.
func Typoglycemia(sentence string, rng *rand.Rand) string {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	words := strings.Fields(sentence)
	for i, word := range words {
		runes := []rune(word)
		if len(runes) <= 4 {
			continue
		}
		inner := runes[1 : len(runes)-1]
		rng.Shuffle(len(inner), func(a, b int) {
			inner[a], inner[b] = inner[b], inner[a]
		})
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
