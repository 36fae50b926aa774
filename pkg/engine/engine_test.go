package engine

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/bgrier/platescore/pkg/corpus"
	"github.com/bgrier/platescore/pkg/match"
	"github.com/bgrier/platescore/pkg/plates"
	"github.com/bgrier/platescore/pkg/platerr"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	eng := New(Options{
		Build: plates.BuildOptions{Length: 3, Alphabet: "act"},
	})
	c := corpus.New(map[string]int{"cat": 100, "act": 50, "tact": 10})
	if err := eng.Rebuild(context.Background(), c); err != nil {
		t.Fatalf("Rebuild error: %v", err)
	}
	return eng
}

func TestNotReadyBeforeRebuild(t *testing.T) {
	eng := New(Options{})
	if eng.Ready() {
		t.Fatal("engine should not be ready before any build")
	}
	if _, err := eng.Score("tact", "act"); !errors.Is(err, platerr.ErrNotReady) {
		t.Errorf("want ErrNotReady, got %v", err)
	}
	if _, err := eng.Solve("act", match.Subsequence); !errors.Is(err, platerr.ErrNotReady) {
		t.Errorf("want ErrNotReady, got %v", err)
	}
}

func TestRebuildAndScore(t *testing.T) {
	eng := testEngine(t)
	if !eng.Ready() {
		t.Fatal("engine should be ready after rebuild")
	}

	r, err := eng.Score("tact", "act")
	if err != nil {
		t.Fatalf("Score error: %v", err)
	}
	if r.Working != 3 || r.Confidence != 1 {
		t.Errorf("full pipeline should have all dimensions working: %+v", r)
	}

	solutions, err := eng.Solve("act", match.Subsequence)
	if err != nil {
		t.Fatalf("Solve error: %v", err)
	}
	if len(solutions) != 2 || solutions[0].Word != "act" {
		t.Errorf("Solve(act) = %v, want [act tact]", solutions)
	}
}

func TestSingleDimensionQueries(t *testing.T) {
	eng := testEngine(t)
	if _, err := eng.ScoreFrequency("tact"); err != nil {
		t.Errorf("ScoreFrequency error: %v", err)
	}
	if _, err := eng.ScoreInformation("tact", "act"); err != nil {
		t.Errorf("ScoreInformation error: %v", err)
	}
	if _, err := eng.ScoreOrthographic("tact"); err != nil {
		t.Errorf("ScoreOrthographic error: %v", err)
	}
}

func TestConcurrentQueriesDuringRebuild(t *testing.T) {
	eng := testEngine(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if _, err := eng.Score("tact", "act"); err != nil {
					t.Errorf("concurrent Score error: %v", err)
					return
				}
			}
		}()
	}
	// swap in a new generation while readers are active
	c := corpus.New(map[string]int{"cat": 200, "act": 50, "tact": 10, "tacit": 5})
	if err := eng.Rebuild(context.Background(), c); err != nil {
		t.Fatalf("Rebuild error: %v", err)
	}
	wg.Wait()

	r, err := eng.Score("tacit", "act")
	if err != nil {
		t.Fatalf("Score after swap error: %v", err)
	}
	if r.Working != 3 {
		t.Errorf("new generation should cover the new word, got %+v", r)
	}
}

func TestScoreDeterministic(t *testing.T) {
	eng := testEngine(t)
	a, err := eng.Score("tact", "act")
	if err != nil {
		t.Fatal(err)
	}
	b, _ := eng.Score("tact", "act")
	if a.Score != b.Score {
		t.Errorf("same query twice differs: %v vs %v", a.Score, b.Score)
	}
}
