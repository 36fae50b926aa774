package score

import (
	"fmt"
	"math"
	"sort"

	"github.com/bgrier/platescore/pkg/corpus"
	"github.com/bgrier/platescore/pkg/platerr"
)

// percentileLadder is the fixed set of percentile cutoffs the rarity score
// buckets against. Computed once per corpus from the ascending frequency
// distribution: a word at or below the 5th-percentile frequency sits in the
// rarest 5% and scores 95.
var percentileLadder = []float64{5, 10, 25, 50, 75, 90, 95, 99, 99.9}

type freqThreshold struct {
	percentile float64
	frequency  int
}

// FrequencyScorer rates a word's rarity against the whole corpus frequency
// distribution, independent of any pattern. The distribution statistics are
// computed once at construction.
type FrequencyScorer struct {
	corpus     *corpus.Corpus
	maxLog     float64
	meanLog    float64
	stdLog     float64
	thresholds []freqThreshold
}

// NewFrequencyScorer precomputes the log-frequency statistics and percentile
// thresholds for the corpus.
func NewFrequencyScorer(c *corpus.Corpus) *FrequencyScorer {
	s := &FrequencyScorer{corpus: c}

	freqs := make([]int, 0, c.Len())
	sumLog := 0.0
	_ = c.Visit(func(word string, freq int) error {
		freqs = append(freqs, freq)
		lf := math.Log(float64(freq))
		sumLog += lf
		if lf > s.maxLog {
			s.maxLog = lf
		}
		return nil
	})
	if len(freqs) == 0 {
		return s
	}

	s.meanLog = sumLog / float64(len(freqs))
	varLog := 0.0
	for _, f := range freqs {
		d := math.Log(float64(f)) - s.meanLog
		varLog += d * d
	}
	s.stdLog = math.Sqrt(varLog / float64(len(freqs)))

	sort.Ints(freqs)
	s.thresholds = make([]freqThreshold, len(percentileLadder))
	for i, p := range percentileLadder {
		idx := int(p / 100 * float64(len(freqs)-1))
		s.thresholds[i] = freqThreshold{percentile: p, frequency: freqs[idx]}
	}
	return s
}

// Score rates the word's rarity. A word absent from the corpus (frequency 0)
// is an explicit not-found failure, never a degenerate score.
//
// The combined score blends three views of the same distribution:
// inverse log-frequency (0.4), percentile bucket (0.4) and z-score (0.2).
func (s *FrequencyScorer) Score(word string) (*Result, error) {
	w, err := corpus.NormalizeWord(word)
	if err != nil {
		return nil, err
	}
	freq := s.corpus.Frequency(w)
	if freq <= 0 {
		return nil, fmt.Errorf("word %q: %w", w, platerr.ErrNotFound)
	}

	logFreq := math.Log(float64(freq))

	inverse := 0.0
	if s.maxLog > 0 {
		inverse = clamp01((s.maxLog-logFreq)/s.maxLog) * 100
	}

	percentile := s.percentileScore(freq)

	// Rarity direction: below-mean log-frequency is positive. ±3σ maps onto
	// the full [0,100] range.
	z := 0.0
	if s.stdLog > 0 {
		z = (s.meanLog - logFreq) / s.stdLog
	}
	zScore := clamp01((z+3)/6) * 100

	combined := 0.4*inverse + 0.4*percentile + 0.2*zScore

	return &Result{
		Dimension: DimensionFrequency,
		Score:     combined,
		Metrics: map[string]float64{
			"frequency":        float64(freq),
			"log_frequency":    logFreq,
			"inverse_score":    inverse,
			"percentile_score": percentile,
			"z_score":          z,
			"z_score_scaled":   zScore,
		},
		Interpretation: interpretRarity(combined),
	}, nil
}

// percentileScore finds the lowest ladder percentile whose threshold the
// frequency does not exceed and returns 100 minus it; a word rarer than the
// 5th-percentile cutoff scores 95, a word more frequent than every cutoff
// scores 0.
func (s *FrequencyScorer) percentileScore(freq int) float64 {
	for _, t := range s.thresholds {
		if freq <= t.frequency {
			return 100 - t.percentile
		}
	}
	return 0
}

func interpretRarity(score float64) string {
	switch {
	case score >= 90:
		return "extremely rare"
	case score >= 75:
		return "very rare"
	case score >= 60:
		return "rare"
	case score >= 40:
		return "uncommon"
	case score >= 20:
		return "common"
	default:
		return "very common"
	}
}
