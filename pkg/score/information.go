package score

import (
	"fmt"
	"math"

	"github.com/bgrier/platescore/pkg/corpus"
	"github.com/bgrier/platescore/pkg/match"
	"github.com/bgrier/platescore/pkg/plates"
	"github.com/bgrier/platescore/pkg/platerr"
)

// InformationScorer rates how surprising it is that this particular word was
// chosen among all solutions for a pattern, weighting each solution by its
// corpus frequency. All pattern-level statistics come precomputed from the
// index, so scoring is a pair of map lookups plus arithmetic.
type InformationScorer struct {
	index *plates.Index
}

// NewInformationScorer creates a scorer over a built index.
func NewInformationScorer(ix *plates.Index) *InformationScorer {
	return &InformationScorer{index: ix}
}

// Score computes the Shannon information content of choosing word as the
// solution for pattern. Two distinct failures: the pattern may be outside
// the index's build coverage (ErrUncoveredPattern), or covered but without
// this word among its solutions (ErrNotFound).
func (s *InformationScorer) Score(word, pattern string) (*Result, error) {
	w, err := corpus.NormalizeWord(word)
	if err != nil {
		return nil, err
	}
	p, err := match.NormalizePattern(pattern)
	if err != nil {
		return nil, err
	}

	set, ok := s.index.Solutions(p)
	if !ok {
		return nil, fmt.Errorf("pattern %q: %w", p, platerr.ErrUncoveredPattern)
	}
	freq, ok := set.Frequency(w)
	if !ok {
		return nil, fmt.Errorf("word %q is not a solution for pattern %q: %w", w, p, platerr.ErrNotFound)
	}

	stats := set.Stats
	total := float64(stats.TotalFrequency)
	prob := float64(freq) / total
	bits := -math.Log2(prob)

	// Normalize against the pattern's maximum possible information, log2 of
	// the total frequency mass (the bits of the rarest conceivable choice).
	normalized := 0.0
	if bits > 0 {
		if maxPossible := math.Log2(total); maxPossible > 0 {
			normalized = clamp01(bits/maxPossible) * 100
		} else {
			normalized = 100
		}
	}

	return &Result{
		Dimension: DimensionInformation,
		Score:     normalized,
		Metrics: map[string]float64{
			"probability":      prob,
			"information_bits": bits,
			"total_frequency":  total,
			"pattern_entropy":  stats.Entropy,
			"avg_bits":         stats.AvgBits,
			"max_bits":         stats.MaxBits,
			"solution_count":   float64(stats.Solutions),
			"percentile":       bitsPercentile(bits, stats),
		},
		Interpretation: interpretInformation(normalized),
	}, nil
}

// bitsPercentile places the word's information bits within the pattern's
// solution population by linear interpolation: the average maps to 50, the
// maximum to 100.
func bitsPercentile(bits float64, stats plates.PatternStats) float64 {
	if stats.AvgBits <= 0 {
		return 50
	}
	if bits <= stats.AvgBits {
		return clamp01(bits/stats.AvgBits) * 50
	}
	span := stats.MaxBits - stats.AvgBits
	if span <= 0 {
		return 100
	}
	return 50 + clamp01((bits-stats.AvgBits)/span)*50
}

func interpretInformation(score float64) string {
	switch {
	case score >= 80:
		return "a deeply surprising solution"
	case score >= 60:
		return "an unexpected solution"
	case score >= 40:
		return "a moderately informative solution"
	case score >= 20:
		return "a predictable solution"
	default:
		return "the obvious solution"
	}
}
