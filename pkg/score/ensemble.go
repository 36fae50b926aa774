package score

import (
	"fmt"

	"github.com/bgrier/platescore/pkg/platerr"
)

// Weights are the caller-supplied relative importances of the three
// dimensions. They are normalized to sum to 1 before use.
type Weights struct {
	Frequency    float64
	Information  float64
	Orthographic float64
}

// DefaultWeights treats the three dimensions equally.
func DefaultWeights() Weights {
	return Weights{Frequency: 1, Information: 1, Orthographic: 1}
}

func (w Weights) normalized() Weights {
	if w.Frequency < 0 {
		w.Frequency = 0
	}
	if w.Information < 0 {
		w.Information = 0
	}
	if w.Orthographic < 0 {
		w.Orthographic = 0
	}
	sum := w.Frequency + w.Information + w.Orthographic
	if sum <= 0 {
		return Weights{Frequency: 1.0 / 3, Information: 1.0 / 3, Orthographic: 1.0 / 3}
	}
	return Weights{
		Frequency:    w.Frequency / sum,
		Information:  w.Information / sum,
		Orthographic: w.Orthographic / sum,
	}
}

// Component is one dimension's contribution to an ensemble result: its
// result (nil when the scorer failed), the normalized weight it carried, and
// the failure reason when it did not contribute.
type Component struct {
	Result *Result
	Weight float64
	Err    string
}

// EnsembleResult aggregates the three dimensions for one (word, pattern)
// query, preserving failed components for debugging and graceful degradation
// downstream.
type EnsembleResult struct {
	Score      float64
	Confidence float64
	Working    int
	Components map[string]Component
	Verdict    string
}

// Ensemble invokes the three scorers independently and combines them.
type Ensemble struct {
	frequency    *FrequencyScorer
	information  *InformationScorer
	orthographic *OrthographicScorer
}

// NewEnsemble wires the three scorers together.
func NewEnsemble(f *FrequencyScorer, i *InformationScorer, o *OrthographicScorer) *Ensemble {
	return &Ensemble{frequency: f, information: i, orthographic: o}
}

// Score combines the three dimensions under the normalized weights. A failing
// scorer contributes zero and drops out of the working count, but the weights
// are NOT renormalized over the survivors: a word missing one dimension keeps
// the lower sum. That asymmetry matches the original calibration and is kept
// on purpose. Confidence is working/3. Only when all three scorers fail does
// Score return an error.
func (e *Ensemble) Score(word, pattern string, weights Weights) (*EnsembleResult, error) {
	w := weights.normalized()

	res := &EnsembleResult{
		Components: make(map[string]Component, 3),
	}

	run := func(dim string, weight float64, fn func() (*Result, error)) {
		r, err := fn()
		if err != nil {
			res.Components[dim] = Component{Weight: weight, Err: err.Error()}
			return
		}
		res.Components[dim] = Component{Result: r, Weight: weight}
		res.Score += r.Score * weight
		res.Working++
	}

	run(DimensionFrequency, w.Frequency, func() (*Result, error) {
		return e.frequency.Score(word)
	})
	run(DimensionInformation, w.Information, func() (*Result, error) {
		return e.information.Score(word, pattern)
	})
	run(DimensionOrthographic, w.Orthographic, func() (*Result, error) {
		return e.orthographic.Score(word)
	})

	if res.Working == 0 {
		return nil, fmt.Errorf("word %q pattern %q: %w", word, pattern, platerr.ErrAllScorersFailed)
	}

	res.Confidence = float64(res.Working) / 3
	res.Verdict = interpretEnsemble(res.Score)
	return res, nil
}

func interpretEnsemble(score float64) string {
	switch {
	case score >= 85:
		return "an exceptional find"
	case score >= 65:
		return "genuinely impressive"
	case score >= 45:
		return "a solid solution"
	case score >= 25:
		return "unremarkable"
	default:
		return "the easy way out"
	}
}
