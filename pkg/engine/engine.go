// Package engine is the facade that owns the built corpus structures and
// exposes the query surface. The build phase (index construction, n-gram
// training) runs off to the side and the finished structures are swapped in
// as a unit, so query-path readers never observe a half-built index.
package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bgrier/platescore/pkg/corpus"
	"github.com/bgrier/platescore/pkg/match"
	"github.com/bgrier/platescore/pkg/ngram"
	"github.com/bgrier/platescore/pkg/plates"
	"github.com/bgrier/platescore/pkg/platerr"
	"github.com/bgrier/platescore/pkg/score"
	"github.com/bgrier/platescore/pkg/solve"
)

// Options configures an Engine.
type Options struct {
	Build   plates.BuildOptions
	Bounds  score.Bounds
	Weights score.Weights
}

// built is the atomically swapped unit of state. Everything inside is
// immutable once published.
type built struct {
	corpus *corpus.Corpus
	index  *plates.Index
	model  *ngram.Model
	solver *solve.Solver
	ens    *score.Ensemble
	freq   *score.FrequencyScorer
	info   *score.InformationScorer
	ortho  *score.OrthographicScorer
}

// Engine ties the solver and the three scorers to one generation of built
// state. Query methods are read-only and safe for unbounded concurrency;
// Rebuild and Restore replace the whole generation under the lock.
type Engine struct {
	mu    sync.RWMutex
	state *built
	opts  Options
}

// New creates an engine with no built state; call Rebuild or Restore before
// querying.
func New(opts Options) *Engine {
	if opts.Bounds == (score.Bounds{}) {
		opts.Bounds = score.DefaultBounds()
	}
	if opts.Weights == (score.Weights{}) {
		opts.Weights = score.DefaultWeights()
	}
	return &Engine{opts: opts}
}

// Ready reports whether built state has been published.
func (e *Engine) Ready() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state != nil
}

// Rebuild runs the full batch build against the corpus, index construction
// then n-gram training, and publishes the result atomically. May take
// seconds to minutes on large corpora; never call it on the query path.
func (e *Engine) Rebuild(ctx context.Context, c *corpus.Corpus) error {
	start := time.Now()

	index, err := plates.Build(ctx, c, e.opts.Build)
	if err != nil {
		return fmt.Errorf("index build: %w", err)
	}
	model := ngram.Train(c)

	e.publish(c, index, model)
	log.Debugf("engine rebuilt in %v: %d words, %d patterns", time.Since(start), c.Len(), index.PatternCount())
	return nil
}

// Restore publishes previously built state, e.g. from a snapshot.
func (e *Engine) Restore(c *corpus.Corpus, index *plates.Index, model *ngram.Model) {
	e.publish(c, index, model)
}

func (e *Engine) publish(c *corpus.Corpus, index *plates.Index, model *ngram.Model) {
	freq := score.NewFrequencyScorer(c)
	info := score.NewInformationScorer(index)
	ortho := score.NewOrthographicScorerWithBounds(model, e.opts.Bounds)
	s := &built{
		corpus: c,
		index:  index,
		model:  model,
		solver: solve.New(c),
		freq:   freq,
		info:   info,
		ortho:  ortho,
		ens:    score.NewEnsemble(freq, info, ortho),
	}
	e.mu.Lock()
	e.state = s
	e.mu.Unlock()
}

func (e *Engine) current() (*built, error) {
	e.mu.RLock()
	s := e.state
	e.mu.RUnlock()
	if s == nil {
		return nil, platerr.ErrNotReady
	}
	return s, nil
}

// Solve finds all corpus solutions for a pattern under the given mode.
func (e *Engine) Solve(pattern string, mode match.Mode) ([]solve.Solution, error) {
	s, err := e.current()
	if err != nil {
		return nil, err
	}
	return s.solver.Solve(pattern, mode)
}

// Score runs the full ensemble for (word, pattern) with the engine's weights.
func (e *Engine) Score(word, pattern string) (*score.EnsembleResult, error) {
	s, err := e.current()
	if err != nil {
		return nil, err
	}
	return s.ens.Score(word, pattern, e.opts.Weights)
}

// ScoreWith runs the ensemble with caller-supplied weights.
func (e *Engine) ScoreWith(word, pattern string, w score.Weights) (*score.EnsembleResult, error) {
	s, err := e.current()
	if err != nil {
		return nil, err
	}
	return s.ens.Score(word, pattern, w)
}

// ScoreFrequency runs only the frequency dimension.
func (e *Engine) ScoreFrequency(word string) (*score.Result, error) {
	s, err := e.current()
	if err != nil {
		return nil, err
	}
	return s.freq.Score(word)
}

// ScoreInformation runs only the information dimension.
func (e *Engine) ScoreInformation(word, pattern string) (*score.Result, error) {
	s, err := e.current()
	if err != nil {
		return nil, err
	}
	return s.info.Score(word, pattern)
}

// ScoreOrthographic runs only the orthographic dimension.
func (e *Engine) ScoreOrthographic(word string) (*score.Result, error) {
	s, err := e.current()
	if err != nil {
		return nil, err
	}
	return s.ortho.Score(word)
}

// State returns the current built structures, for snapshotting.
func (e *Engine) State() (*corpus.Corpus, *plates.Index, *ngram.Model, error) {
	s, err := e.current()
	if err != nil {
		return nil, nil, nil, err
	}
	return s.corpus, s.index, s.model, nil
}
