// Package platerr defines the sentinel errors shared across the scoring engine.
package platerr

import "errors"

// Sentinel errors for the recoverable failure taxonomy. Individual scorer
// failures degrade the ensemble instead of aborting it; only ErrAllScorersFailed
// surfaces as a hard failure.
var (
	ErrNotFound         = errors.New("word not found")
	ErrUncoveredPattern = errors.New("pattern not covered by index")
	ErrInvalidInput     = errors.New("invalid input")
	ErrAllScorersFailed = errors.New("all scorers failed")
	ErrNotReady         = errors.New("engine not built")
)
