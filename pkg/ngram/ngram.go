// Package ngram trains frequency-weighted letter bigram/trigram probability
// tables from a corpus. The model characterizes how "English-looking" a
// letter sequence is; the orthographic scorer turns its probabilities into
// surprisal.
package ngram

import (
	"github.com/charmbracelet/log"

	"github.com/bgrier/platescore/pkg/corpus"
)

// Boundary markers padded onto each word before extraction, so the model
// learns which letters start and end words, not just which letters adjoin.
const (
	StartMarker = '^'
	EndMarker   = '$'
)

// DefaultSmoothing is the probability assigned to n-grams never seen in
// training. Small enough that one unseen gram dominates a word's surprisal.
const DefaultSmoothing = 1e-10

// Model holds the two probability tables. Immutable after construction.
type Model struct {
	bigrams   map[string]float64
	trigrams  map[string]float64
	smoothing float64
}

// Bigrams extracts all boundary-padded bigrams of a word.
func Bigrams(word string) []string {
	padded := pad(word)
	out := make([]string, 0, len(padded)-1)
	for i := 0; i+2 <= len(padded); i++ {
		out = append(out, padded[i:i+2])
	}
	return out
}

// Trigrams extracts all boundary-padded trigrams of a word.
func Trigrams(word string) []string {
	padded := pad(word)
	if len(padded) < 3 {
		return nil
	}
	out := make([]string, 0, len(padded)-2)
	for i := 0; i+3 <= len(padded); i++ {
		out = append(out, padded[i:i+3])
	}
	return out
}

func pad(word string) string {
	return string(StartMarker) + word + string(EndMarker)
}

// Train builds the model from every corpus word, weighting each word's n-gram
// counts by the word's frequency so the tables reflect running text rather
// than the dictionary's flat word list.
func Train(c *corpus.Corpus) *Model {
	bigramCounts := make(map[string]float64)
	trigramCounts := make(map[string]float64)
	var bigramTotal, trigramTotal float64

	_ = c.Visit(func(word string, freq int) error {
		w := float64(freq)
		for _, g := range Bigrams(word) {
			bigramCounts[g] += w
			bigramTotal += w
		}
		for _, g := range Trigrams(word) {
			trigramCounts[g] += w
			trigramTotal += w
		}
		return nil
	})

	for g := range bigramCounts {
		bigramCounts[g] /= bigramTotal
	}
	for g := range trigramCounts {
		trigramCounts[g] /= trigramTotal
	}

	log.Debugf("ngram model trained: %d bigrams, %d trigrams over %d words",
		len(bigramCounts), len(trigramCounts), c.Len())

	return &Model{
		bigrams:   bigramCounts,
		trigrams:  trigramCounts,
		smoothing: DefaultSmoothing,
	}
}

// FromTables reconstructs a model from previously trained tables, e.g. when
// restoring a snapshot. The maps are copied so the model stays immutable.
func FromTables(bigrams, trigrams map[string]float64) *Model {
	m := &Model{
		bigrams:   make(map[string]float64, len(bigrams)),
		trigrams:  make(map[string]float64, len(trigrams)),
		smoothing: DefaultSmoothing,
	}
	for g, p := range bigrams {
		m.bigrams[g] = p
	}
	for g, p := range trigrams {
		m.trigrams[g] = p
	}
	return m
}

// BigramProbability returns the trained probability for g, or the smoothing
// floor when g was never seen.
func (m *Model) BigramProbability(g string) float64 {
	if p, ok := m.bigrams[g]; ok && p > 0 {
		return p
	}
	return m.smoothing
}

// TrigramProbability returns the trained probability for g, or the smoothing
// floor when g was never seen.
func (m *Model) TrigramProbability(g string) float64 {
	if p, ok := m.trigrams[g]; ok && p > 0 {
		return p
	}
	return m.smoothing
}

// BigramCount returns the number of distinct trained bigrams.
func (m *Model) BigramCount() int { return len(m.bigrams) }

// TrigramCount returns the number of distinct trained trigrams.
func (m *Model) TrigramCount() int { return len(m.trigrams) }

// Tables returns copies of both probability tables, for snapshotting.
func (m *Model) Tables() (bigrams, trigrams map[string]float64) {
	bigrams = make(map[string]float64, len(m.bigrams))
	for g, p := range m.bigrams {
		bigrams[g] = p
	}
	trigrams = make(map[string]float64, len(m.trigrams))
	for g, p := range m.trigrams {
		trigrams[g] = p
	}
	return bigrams, trigrams
}
