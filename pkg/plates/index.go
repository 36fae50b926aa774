// Package plates builds the corpus index: for every plate pattern its full
// solution set with precomputed information statistics, and the inverse
// mapping from each solution word to the patterns it solves. Building is the
// expensive batch step every pattern-relative scorer depends on; the result
// is frozen and safe for unbounded concurrent reads.
package plates

import (
	"context"
	"math"
	"runtime"
	"sort"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/bgrier/platescore/pkg/corpus"
	"github.com/bgrier/platescore/pkg/match"
	"github.com/bgrier/platescore/pkg/solve"
)

// Coverage selects how much of the pattern space a build covers.
type Coverage uint8

const (
	// CoverageFull enumerates every pattern of the configured length, so any
	// later query of that length is guaranteed an index entry.
	CoverageFull Coverage = iota
	// CoveragePartial restricts the build to a supplied pattern sample;
	// cheaper, but queries outside the sample report an uncovered pattern.
	CoveragePartial
)

func (c Coverage) String() string {
	if c == CoveragePartial {
		return "partial"
	}
	return "full"
}

// PatternStats holds the per-pattern statistics precomputed at build time so
// information scoring is an O(1) lookup.
type PatternStats struct {
	TotalFrequency int64
	Entropy        float64
	AvgBits        float64
	MinBits        float64
	MaxBits        float64
	Solutions      int
}

// SolutionSet is one pattern's complete solution list, frequency-descending,
// with a membership index and the precomputed stats.
type SolutionSet struct {
	Solutions []solve.Solution
	Stats     PatternStats

	byWord map[string]int
}

// NewSolutionSet wraps a solution list (already frequency-descending, as the
// solver returns it) and computes its statistics.
func NewSolutionSet(sols []solve.Solution) *SolutionSet {
	set := &SolutionSet{
		Solutions: sols,
		byWord:    make(map[string]int, len(sols)),
	}
	var total int64
	for _, s := range sols {
		set.byWord[s.Word] = s.Frequency
		total += int64(s.Frequency)
	}
	set.Stats.TotalFrequency = total
	set.Stats.Solutions = len(sols)
	if total <= 0 {
		return set
	}
	minBits := math.Inf(1)
	maxBits := 0.0
	sumBits := 0.0
	entropy := 0.0
	for _, s := range sols {
		p := float64(s.Frequency) / float64(total)
		bits := -math.Log2(p)
		entropy += p * bits
		sumBits += bits
		if bits < minBits {
			minBits = bits
		}
		if bits > maxBits {
			maxBits = bits
		}
	}
	set.Stats.Entropy = entropy
	set.Stats.AvgBits = sumBits / float64(len(sols))
	set.Stats.MinBits = minBits
	set.Stats.MaxBits = maxBits
	return set
}

// Frequency returns the word's frequency within this solution set.
func (s *SolutionSet) Frequency(word string) (int, bool) {
	f, ok := s.byWord[word]
	return f, ok
}

// Contains reports whether word solves this pattern.
func (s *SolutionSet) Contains(word string) bool {
	_, ok := s.byWord[word]
	return ok
}

// Index is the frozen result of a build. Both mappings are consistent within
// the build's coverage: word ∈ Solutions(p) iff p ∈ Patterns(word).
type Index struct {
	coverage Coverage
	length   int
	mode     match.Mode

	solutions map[string]*SolutionSet
	patterns  map[string][]string
}

// Coverage returns the build's coverage mode.
func (ix *Index) Coverage() Coverage { return ix.coverage }

// Length returns the pattern length the index was built for.
func (ix *Index) Length() int { return ix.length }

// MatchMode returns the matching rule the index was built with.
func (ix *Index) MatchMode() match.Mode { return ix.mode }

// PatternCount returns the number of patterns in the index key space.
func (ix *Index) PatternCount() int { return len(ix.solutions) }

// Solutions returns the solution set for a pattern, normalizing the query.
// The second result is false when the pattern is outside build coverage.
func (ix *Index) Solutions(pattern string) (*SolutionSet, bool) {
	p, err := match.NormalizePattern(pattern)
	if err != nil {
		return nil, false
	}
	set, ok := ix.solutions[p]
	return set, ok
}

// Patterns returns the sorted list of covered patterns the word solves.
func (ix *Index) Patterns(word string) []string {
	w, err := corpus.NormalizeWord(word)
	if err != nil {
		return nil
	}
	return ix.patterns[w]
}

// Export returns the raw pattern→solutions table, for snapshotting.
func (ix *Index) Export() map[string][]solve.Solution {
	out := make(map[string][]solve.Solution, len(ix.solutions))
	for p, set := range ix.solutions {
		sols := make([]solve.Solution, len(set.Solutions))
		copy(sols, set.Solutions)
		out[p] = sols
	}
	return out
}

// Restore rebuilds an index from exported solution lists, recomputing the
// per-pattern stats and the inverse mapping. Used when loading snapshots.
func Restore(coverage Coverage, length int, mode match.Mode, entries map[string][]solve.Solution) *Index {
	ix := &Index{
		coverage:  coverage,
		length:    length,
		mode:      mode,
		solutions: make(map[string]*SolutionSet, len(entries)),
		patterns:  make(map[string][]string),
	}
	for p, sols := range entries {
		ix.solutions[p] = NewSolutionSet(sols)
	}
	ix.buildInverse()
	return ix
}

func (ix *Index) buildInverse() {
	for p, set := range ix.solutions {
		for _, s := range set.Solutions {
			ix.patterns[s.Word] = append(ix.patterns[s.Word], p)
		}
	}
	for w := range ix.patterns {
		sort.Strings(ix.patterns[w])
	}
}

// BuildOptions configures an index build.
type BuildOptions struct {
	// Length of generated patterns for full coverage. Defaults to 3.
	Length int
	// Alphabet for full-coverage generation. Defaults to DefaultAlphabet.
	Alphabet string
	// Coverage mode; CoveragePartial requires Patterns.
	Coverage Coverage
	// Patterns is the sample for partial coverage. Entries failing
	// normalization are logged and skipped.
	Patterns []string
	// Mode is the matching rule, Subsequence by default (the game rule).
	Mode match.Mode
	// Workers caps build parallelism; 0 means GOMAXPROCS.
	Workers int
}

func (o *BuildOptions) fill() {
	if o.Length <= 0 {
		o.Length = 3
	}
	if o.Alphabet == "" {
		o.Alphabet = DefaultAlphabet
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
}

// Build solves every pattern in scope against the corpus and freezes the
// result. Patterns are partitioned across a worker pool; each worker fills
// its own slice so the merge needs no locking and stays deterministic. A
// panic while solving one pattern degrades that pattern to an empty solution
// set (logged, and the key stays in the index) rather than aborting the
// whole build. The context cancels the build between patterns.
func Build(ctx context.Context, c *corpus.Corpus, opts BuildOptions) (*Index, error) {
	opts.fill()

	var patterns []string
	switch opts.Coverage {
	case CoveragePartial:
		patterns = normalizeSample(opts.Patterns)
	default:
		patterns = Generate(opts.Alphabet, opts.Length)
	}

	log.Debugf("index build: %d patterns, coverage=%s, mode=%s, workers=%d, corpus=%d words",
		len(patterns), opts.Coverage, opts.Mode, opts.Workers, c.Len())

	solver := solve.New(c)
	results := make([]*SolutionSet, len(patterns))

	g, ctx := errgroup.WithContext(ctx)
	chunk := (len(patterns) + opts.Workers - 1) / opts.Workers
	for start := 0; start < len(patterns); start += chunk {
		end := start + chunk
		if end > len(patterns) {
			end = len(patterns)
		}
		start, end := start, end
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				results[i] = solvePattern(solver, patterns[i], opts.Mode)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ix := &Index{
		coverage:  opts.Coverage,
		length:    opts.Length,
		mode:      opts.Mode,
		solutions: make(map[string]*SolutionSet, len(patterns)),
		patterns:  make(map[string][]string),
	}
	for i, p := range patterns {
		ix.solutions[p] = results[i]
	}
	ix.buildInverse()
	return ix, nil
}

// solvePattern isolates one pattern's solve so a panic degrades to an empty
// set instead of killing the worker.
func solvePattern(solver *solve.Solver, pattern string, mode match.Mode) (set *SolutionSet) {
	defer func() {
		if r := recover(); r != nil {
			log.Warnf("index build: pattern %q failed: %v; recording empty solution set", pattern, r)
			set = NewSolutionSet(nil)
		}
	}()
	sols, err := solver.Solve(pattern, mode)
	if err != nil {
		log.Warnf("index build: pattern %q failed: %v; recording empty solution set", pattern, err)
		return NewSolutionSet(nil)
	}
	return NewSolutionSet(sols)
}

func normalizeSample(sample []string) []string {
	seen := make(map[string]struct{}, len(sample))
	out := make([]string, 0, len(sample))
	for _, raw := range sample {
		p, err := match.NormalizePattern(raw)
		if err != nil {
			log.Warnf("index build: dropping sample pattern %q: %v", raw, err)
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
