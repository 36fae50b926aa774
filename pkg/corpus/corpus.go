// Package corpus holds the immutable word-frequency vocabulary every other
// component reads from. A corpus is built once (from a pairs map or a word
// list file), then shared read-only; rebuilding means constructing a fresh
// corpus and swapping it in at the engine level.
package corpus

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/bgrier/platescore/pkg/platerr"
)

// Corpus maps normalized words to positive frequencies. Words are additionally
// kept in a patricia trie so iteration is lexicographic and therefore
// deterministic, and so prefix-restricted scans stay cheap.
type Corpus struct {
	freqs   map[string]int
	trie    *patricia.Trie
	total   int64
	maxFreq int
}

// NormalizeWord lowercases s and validates it as a corpus word:
// non-empty, letters a-z only.
func NormalizeWord(s string) (string, error) {
	w := strings.ToLower(strings.TrimSpace(s))
	if len(w) == 0 {
		return "", fmt.Errorf("empty word: %w", platerr.ErrInvalidInput)
	}
	for _, r := range w {
		if r < 'a' || r > 'z' {
			return "", fmt.Errorf("word %q contains %q: %w", s, r, platerr.ErrInvalidInput)
		}
	}
	return w, nil
}

// New builds a corpus from word-frequency pairs. Entries that fail
// normalization or carry a non-positive frequency are skipped; a frequency of
// zero means "absent" everywhere in the engine, so storing it would be
// indistinguishable from not storing the word at all.
func New(pairs map[string]int) *Corpus {
	c := &Corpus{
		freqs: make(map[string]int, len(pairs)),
		trie:  patricia.NewTrie(),
	}
	skipped := 0
	for raw, freq := range pairs {
		word, err := NormalizeWord(raw)
		if err != nil || freq <= 0 {
			skipped++
			continue
		}
		if prev, ok := c.freqs[word]; ok {
			// Duplicate after normalization, e.g. "Cat" and "cat". Keep the sum
			// so no observed mass is lost.
			freq += prev
			c.total -= int64(prev)
		}
		c.freqs[word] = freq
		c.trie.Set(patricia.Prefix(word), freq)
		c.total += int64(freq)
		if freq > c.maxFreq {
			c.maxFreq = freq
		}
	}
	if skipped > 0 {
		log.Debugf("corpus: skipped %d invalid or zero-frequency entries", skipped)
	}
	return c
}

// Frequency returns the word's corpus frequency, 0 if absent. The lookup
// normalizes its input so callers can pass raw user text.
func (c *Corpus) Frequency(word string) int {
	w, err := NormalizeWord(word)
	if err != nil {
		return 0
	}
	return c.freqs[w]
}

// Contains reports whether the normalized word is in the corpus.
func (c *Corpus) Contains(word string) bool {
	return c.Frequency(word) > 0
}

// Len returns the number of words.
func (c *Corpus) Len() int {
	return len(c.freqs)
}

// TotalFrequency returns the summed frequency mass of the whole corpus.
func (c *Corpus) TotalFrequency() int64 {
	return c.total
}

// MaxFrequency returns the largest single-word frequency.
func (c *Corpus) MaxFrequency() int {
	return c.maxFreq
}

// Visit walks every word in lexicographic order. Returning an error from fn
// stops the walk and propagates the error.
func (c *Corpus) Visit(fn func(word string, freq int) error) error {
	return c.trie.Visit(func(prefix patricia.Prefix, item patricia.Item) error {
		return fn(string(prefix), item.(int))
	})
}

// VisitPrefix walks only words starting with the given prefix, in
// lexicographic order.
func (c *Corpus) VisitPrefix(prefix string, fn func(word string, freq int) error) error {
	return c.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		return fn(string(p), item.(int))
	})
}

// Pairs returns a copy of the word-frequency table, for snapshotting.
func (c *Corpus) Pairs() map[string]int {
	out := make(map[string]int, len(c.freqs))
	for w, f := range c.freqs {
		out[w] = f
	}
	return out
}
