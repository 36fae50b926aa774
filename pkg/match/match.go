// Package match implements the pure predicates that decide whether a word
// satisfies a plate pattern. All predicates operate on normalized lowercase
// strings, carry no state and have no error conditions beyond returning false.
package match

import (
	"fmt"
	"strings"

	"github.com/bgrier/platescore/pkg/platerr"
)

// Mode selects one of the five matching rules.
type Mode uint8

const (
	// Subsequence is the primary game rule: pattern letters appear in the
	// word in the same relative order, gaps allowed.
	Subsequence Mode = iota
	// Substring requires the pattern as a contiguous run inside the word.
	Substring
	// Anagram requires the word's letter multiset to equal the pattern's.
	Anagram
	// AnagramSubset requires the word's letter multiset to contain at least
	// the pattern's, Scrabble-style.
	AnagramSubset
	// Positional requires equal length with exact letters everywhere except
	// Wildcard positions.
	Positional
)

// Wildcard is the placeholder rune accepted in Positional patterns.
const Wildcard = '.'

// Pattern length bounds enforced by NormalizePattern.
const (
	MinPatternLen = 2
	MaxPatternLen = 8
)

func (m Mode) String() string {
	switch m {
	case Subsequence:
		return "subsequence"
	case Substring:
		return "substring"
	case Anagram:
		return "anagram"
	case AnagramSubset:
		return "anagram-subset"
	case Positional:
		return "positional"
	}
	return "unknown"
}

// ParseMode maps a mode name (as used in config and CLI flags) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "subsequence", "":
		return Subsequence, nil
	case "substring":
		return Substring, nil
	case "anagram":
		return Anagram, nil
	case "anagram-subset", "anagramsubset":
		return AnagramSubset, nil
	case "positional":
		return Positional, nil
	}
	return Subsequence, fmt.Errorf("unknown match mode %q: %w", s, platerr.ErrInvalidInput)
}

// NormalizePattern lowercases a pattern and validates it: length within
// [MinPatternLen, MaxPatternLen], letters a-z plus the Wildcard rune.
// Patterns containing the wildcard only make sense in Positional mode;
// callers enforce that pairing.
func NormalizePattern(s string) (string, error) {
	p := strings.ToLower(strings.TrimSpace(s))
	if len(p) < MinPatternLen || len(p) > MaxPatternLen {
		return "", fmt.Errorf("pattern %q length %d outside [%d,%d]: %w",
			s, len(p), MinPatternLen, MaxPatternLen, platerr.ErrInvalidInput)
	}
	for _, r := range p {
		if (r < 'a' || r > 'z') && r != Wildcard {
			return "", fmt.Errorf("pattern %q contains %q: %w", s, r, platerr.ErrInvalidInput)
		}
	}
	return p, nil
}

// HasWildcard reports whether the pattern contains the Wildcard rune.
func HasWildcard(pattern string) bool {
	return strings.ContainsRune(pattern, Wildcard)
}

// Match dispatches to the predicate for the given mode. The switch is
// exhaustive over the Mode enum; an out-of-range mode never matches.
func Match(m Mode, pattern, word string) bool {
	switch m {
	case Subsequence:
		return subsequence(pattern, word)
	case Substring:
		return strings.Contains(word, pattern)
	case Anagram:
		return anagram(pattern, word)
	case AnagramSubset:
		return anagramSubset(pattern, word)
	case Positional:
		return positional(pattern, word)
	}
	return false
}

// subsequence advances a pattern cursor once per matching byte while scanning
// the word left to right; the match succeeds iff the cursor reaches the end.
func subsequence(pattern, word string) bool {
	if len(pattern) == 0 {
		return true
	}
	cursor := 0
	for i := 0; i < len(word); i++ {
		if word[i] == pattern[cursor] {
			cursor++
			if cursor == len(pattern) {
				return true
			}
		}
	}
	return false
}

func letterCounts(s string) ([26]int, bool) {
	var counts [26]int
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'a' || c > 'z' {
			return counts, false
		}
		counts[c-'a']++
	}
	return counts, true
}

func anagram(pattern, word string) bool {
	if len(pattern) != len(word) {
		return false
	}
	pc, ok := letterCounts(pattern)
	if !ok {
		return false
	}
	wc, ok := letterCounts(word)
	if !ok {
		return false
	}
	return pc == wc
}

func anagramSubset(pattern, word string) bool {
	if len(word) < len(pattern) {
		return false
	}
	pc, ok := letterCounts(pattern)
	if !ok {
		return false
	}
	wc, ok := letterCounts(word)
	if !ok {
		return false
	}
	for i := range pc {
		if wc[i] < pc[i] {
			return false
		}
	}
	return true
}

func positional(pattern, word string) bool {
	if len(pattern) != len(word) {
		return false
	}
	for i := 0; i < len(pattern); i++ {
		if pattern[i] == Wildcard {
			continue
		}
		if pattern[i] != word[i] {
			return false
		}
	}
	return true
}
