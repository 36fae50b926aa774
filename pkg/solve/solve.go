// Package solve applies a match predicate across the whole corpus and ranks
// the survivors by frequency.
package solve

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bgrier/platescore/pkg/corpus"
	"github.com/bgrier/platescore/pkg/match"
	"github.com/bgrier/platescore/pkg/platerr"
)

// Solution pairs a matching word with its corpus frequency.
type Solution struct {
	Word      string
	Frequency int
}

// Solver scans a frozen corpus. It holds no mutable state and is safe for
// unbounded concurrent use.
type Solver struct {
	corpus *corpus.Corpus
}

// New creates a solver over the given corpus.
func New(c *corpus.Corpus) *Solver {
	return &Solver{corpus: c}
}

// Solve returns every corpus word satisfying the pattern under the given
// mode, sorted by frequency descending. Ties keep the corpus iteration order,
// which is lexicographic, so results are fully deterministic.
// An empty pattern yields an empty result, not an error. A malformed pattern
// (bad length, characters outside a-z and the positional wildcard, or a
// wildcard paired with a non-positional mode) returns ErrInvalidInput.
func (s *Solver) Solve(pattern string, mode match.Mode) ([]Solution, error) {
	if strings.TrimSpace(pattern) == "" {
		return []Solution{}, nil
	}
	p, err := match.NormalizePattern(pattern)
	if err != nil {
		return nil, err
	}
	if match.HasWildcard(p) && mode != match.Positional {
		return nil, fmt.Errorf("wildcard pattern %q requires positional mode: %w", p, platerr.ErrInvalidInput)
	}

	var out []Solution
	collect := func(word string, freq int) error {
		if match.Match(mode, p, word) {
			out = append(out, Solution{Word: word, Frequency: freq})
		}
		return nil
	}

	// A positional pattern fixes the word length and, when it starts with
	// literal letters, the word prefix. Restricting the scan to that trie
	// subtree skips the bulk of the corpus.
	if mode == match.Positional {
		if run := literalPrefix(p); run != "" {
			if err := s.corpus.VisitPrefix(run, collect); err != nil {
				return nil, err
			}
			sortSolutions(out)
			return out, nil
		}
	}
	if err := s.corpus.Visit(collect); err != nil {
		return nil, err
	}
	sortSolutions(out)
	return out, nil
}

func sortSolutions(sols []Solution) {
	sort.SliceStable(sols, func(i, j int) bool {
		return sols[i].Frequency > sols[j].Frequency
	})
}

// literalPrefix returns the leading run of non-wildcard letters.
func literalPrefix(pattern string) string {
	for i := 0; i < len(pattern); i++ {
		if pattern[i] == match.Wildcard {
			return pattern[:i]
		}
	}
	return pattern
}
