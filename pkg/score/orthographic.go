package score

import (
	"math"

	"github.com/bgrier/platescore/pkg/corpus"
	"github.com/bgrier/platescore/pkg/ngram"
)

// Bounds are the corpus-derived surprisal ranges that average bigram and
// trigram surprisal are rescaled from. Words below the low bound score 0,
// above the high bound 100.
type Bounds struct {
	BigramLow   float64
	BigramHigh  float64
	TrigramLow  float64
	TrigramHigh float64
}

// DefaultBounds fit English web-frequency corpora.
func DefaultBounds() Bounds {
	return Bounds{
		BigramLow:   6,
		BigramHigh:  12,
		TrigramLow:  7,
		TrigramHigh: 18,
	}
}

// OrthographicScorer rates the letter-pattern complexity of the whole
// candidate word. Unlike the other two dimensions it ignores the plate
// entirely. Common letter sequences score low, improbable ones high.
type OrthographicScorer struct {
	model  *ngram.Model
	bounds Bounds
}

// NewOrthographicScorer creates a scorer with default bounds.
func NewOrthographicScorer(m *ngram.Model) *OrthographicScorer {
	return NewOrthographicScorerWithBounds(m, DefaultBounds())
}

// NewOrthographicScorerWithBounds creates a scorer with explicit rescaling
// bounds, e.g. from config when the corpus is not English web text.
func NewOrthographicScorerWithBounds(m *ngram.Model, b Bounds) *OrthographicScorer {
	return &OrthographicScorer{model: m, bounds: b}
}

// Score computes average bigram and trigram surprisal for the word's own
// boundary-padded n-grams and blends them 0.4/0.6, trigrams weighted higher
// as the more discriminating order. Fails only on malformed input.
func (s *OrthographicScorer) Score(word string) (*Result, error) {
	w, err := corpus.NormalizeWord(word)
	if err != nil {
		return nil, err
	}

	avgBigram := averageSurprisal(ngram.Bigrams(w), s.model.BigramProbability)
	avgTrigram := averageSurprisal(ngram.Trigrams(w), s.model.TrigramProbability)

	bigramScore := rescale(avgBigram, s.bounds.BigramLow, s.bounds.BigramHigh)
	trigramScore := rescale(avgTrigram, s.bounds.TrigramLow, s.bounds.TrigramHigh)
	combined := 0.4*bigramScore + 0.6*trigramScore

	return &Result{
		Dimension: DimensionOrthographic,
		Score:     combined,
		Metrics: map[string]float64{
			"avg_bigram_surprisal":  avgBigram,
			"avg_trigram_surprisal": avgTrigram,
			"bigram_score":          bigramScore,
			"trigram_score":         trigramScore,
			"bigram_count":          float64(len(ngram.Bigrams(w))),
			"trigram_count":         float64(len(ngram.Trigrams(w))),
		},
		Interpretation: interpretOrthography(combined),
	}, nil
}

func averageSurprisal(grams []string, prob func(string) float64) float64 {
	if len(grams) == 0 {
		return 0
	}
	sum := 0.0
	for _, g := range grams {
		sum += -math.Log2(prob(g))
	}
	return sum / float64(len(grams))
}

func interpretOrthography(score float64) string {
	switch {
	case score >= 85:
		return "highly unusual letter patterns"
	case score >= 65:
		return "unusual letter patterns"
	case score >= 40:
		return "somewhat distinctive spelling"
	case score >= 20:
		return "ordinary spelling"
	default:
		return "very typical spelling"
	}
}
