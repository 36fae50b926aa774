package score

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/bgrier/platescore/pkg/corpus"
	"github.com/bgrier/platescore/pkg/ngram"
	"github.com/bgrier/platescore/pkg/plates"
	"github.com/bgrier/platescore/pkg/platerr"
)

func testEnsemble(t *testing.T) *Ensemble {
	t.Helper()
	c := corpus.New(map[string]int{"cat": 100, "act": 50, "tact": 10})
	ix, err := plates.Build(context.Background(), c, plates.BuildOptions{
		Length:   3,
		Alphabet: "act",
		Coverage: plates.CoverageFull,
	})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	return NewEnsemble(
		NewFrequencyScorer(c),
		NewInformationScorer(ix),
		NewOrthographicScorer(ngram.Train(c)),
	)
}

func TestEnsembleAllDimensionsWorking(t *testing.T) {
	e := testEnsemble(t)
	r, err := e.Score("tact", "act", DefaultWeights())
	if err != nil {
		t.Fatalf("Score error: %v", err)
	}
	if r.Working != 3 {
		t.Fatalf("Working = %d, want 3", r.Working)
	}
	if r.Confidence != 1 {
		t.Errorf("Confidence = %v, want 1", r.Confidence)
	}
	if r.Score < 0 || r.Score > 100 {
		t.Errorf("Score = %v, outside [0,100]", r.Score)
	}

	// weighted sum over the components reproduces the aggregate
	sum := 0.0
	for _, comp := range r.Components {
		if comp.Result != nil {
			sum += comp.Result.Score * comp.Weight
		}
	}
	if math.Abs(sum-r.Score) > 1e-9 {
		t.Errorf("aggregate %v does not equal weighted component sum %v", r.Score, sum)
	}
}

// "cat" is a corpus word but does not solve "act" (wrong letter order), so
// the information dimension fails while the other two still contribute.
func TestEnsemblePartialFailure(t *testing.T) {
	e := testEnsemble(t)
	r, err := e.Score("cat", "act", DefaultWeights())
	if err != nil {
		t.Fatalf("Score error: %v", err)
	}
	if r.Working != 2 {
		t.Fatalf("Working = %d, want 2", r.Working)
	}
	if math.Abs(r.Confidence-2.0/3) > 1e-9 {
		t.Errorf("Confidence = %v, want 2/3", r.Confidence)
	}
	info := r.Components[DimensionInformation]
	if info.Err == "" || info.Result != nil {
		t.Error("failed component must carry its reason and no result")
	}
	freq := r.Components[DimensionFrequency]
	if freq.Result == nil {
		t.Error("frequency dimension should have worked")
	}
}

// The weights are deliberately not renormalized over the surviving scorers:
// losing a dimension lowers the ceiling of the aggregate.
func TestEnsembleNoRenormalization(t *testing.T) {
	e := testEnsemble(t)
	r, err := e.Score("cat", "act", DefaultWeights())
	if err != nil {
		t.Fatalf("Score error: %v", err)
	}
	sum := 0.0
	for _, comp := range r.Components {
		if comp.Result != nil {
			sum += comp.Result.Score * comp.Weight
		}
	}
	if math.Abs(sum-r.Score) > 1e-9 {
		t.Errorf("aggregate %v must keep the original 1/3 weights, component sum %v", r.Score, sum)
	}
	ceiling := 0.0
	for _, comp := range r.Components {
		if comp.Result != nil {
			ceiling += 100 * comp.Weight
		}
	}
	if r.Score > ceiling+1e-9 {
		t.Errorf("aggregate %v exceeds the degraded ceiling %v", r.Score, ceiling)
	}
}

func TestEnsembleCustomWeights(t *testing.T) {
	e := testEnsemble(t)
	heavyOrtho := Weights{Frequency: 0, Information: 0, Orthographic: 10}
	r, err := e.Score("tact", "act", heavyOrtho)
	if err != nil {
		t.Fatalf("Score error: %v", err)
	}
	ortho := r.Components[DimensionOrthographic]
	if math.Abs(ortho.Weight-1) > 1e-9 {
		t.Errorf("normalized orthographic weight = %v, want 1", ortho.Weight)
	}
	if math.Abs(r.Score-ortho.Result.Score) > 1e-9 {
		t.Errorf("aggregate %v should equal the orthographic score %v", r.Score, ortho.Result.Score)
	}
}

func TestEnsembleAllFailed(t *testing.T) {
	e := testEnsemble(t)
	// malformed word fails every dimension
	_, err := e.Score("c4t", "act", DefaultWeights())
	if !errors.Is(err, platerr.ErrAllScorersFailed) {
		t.Errorf("want ErrAllScorersFailed, got %v", err)
	}
}

func TestEnsembleDeterministic(t *testing.T) {
	e := testEnsemble(t)
	a, err := e.Score("tact", "act", DefaultWeights())
	if err != nil {
		t.Fatal(err)
	}
	b, _ := e.Score("tact", "act", DefaultWeights())
	if a.Score != b.Score || a.Confidence != b.Confidence {
		t.Errorf("same query twice produced %v/%v and %v/%v", a.Score, a.Confidence, b.Score, b.Confidence)
	}
}
