/*
Package config manages TOML config for the platescore engine.
*/
package config

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/bgrier/platescore/internal/utils"
	"github.com/bgrier/platescore/pkg/match"
	"github.com/bgrier/platescore/pkg/plates"
	"github.com/bgrier/platescore/pkg/score"
)

// Config holds the entire config structure
type Config struct {
	Solver  SolverConfig  `toml:"solver"`
	Builder BuilderConfig `toml:"builder"`
	NGram   NGramConfig   `toml:"ngram"`
	Weights WeightsConfig `toml:"weights"`
}

// SolverConfig has query-path options.
type SolverConfig struct {
	MaxResults  int    `toml:"max_results"`
	DefaultMode string `toml:"default_mode"`
}

// BuilderConfig controls the corpus index build.
type BuilderConfig struct {
	PatternLength int    `toml:"pattern_length"`
	Alphabet      string `toml:"alphabet"`
	Coverage      string `toml:"coverage"`
	Workers       int    `toml:"workers"`
}

// NGramConfig holds the orthographic model options.
type NGramConfig struct {
	BigramLow   float64 `toml:"bigram_low"`
	BigramHigh  float64 `toml:"bigram_high"`
	TrigramLow  float64 `toml:"trigram_low"`
	TrigramHigh float64 `toml:"trigram_high"`
}

// WeightsConfig holds the ensemble dimension weights.
type WeightsConfig struct {
	Frequency    float64 `toml:"frequency"`
	Information  float64 `toml:"information"`
	Orthographic float64 `toml:"orthographic"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Solver: SolverConfig{
			MaxResults:  24,
			DefaultMode: "subsequence",
		},
		Builder: BuilderConfig{
			PatternLength: 3,
			Alphabet:      plates.DefaultAlphabet,
			Coverage:      "full",
			Workers:       0,
		},
		NGram: NGramConfig{
			BigramLow:   6,
			BigramHigh:  12,
			TrigramLow:  7,
			TrigramHigh: 18,
		},
		Weights: WeightsConfig{
			Frequency:    1,
			Information:  1,
			Orthographic: 1,
		},
	}
}

// Load reads config from a TOML file, falling back to built-in defaults when
// the path is empty or unreadable. Missing keys keep their defaults.
func Load(path string) *Config {
	cfg := DefaultConfig()
	if path == "" {
		return cfg
	}
	if !utils.FileExists(path) {
		log.Warnf("Config file not found at %s. Using built-in defaults...", path)
		return cfg
	}
	if err := utils.LoadTOMLFile(path, cfg); err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", path, err)
		return DefaultConfig()
	}
	log.Debugf("Loaded config from %s", path)
	return cfg
}

// Save writes the config to a TOML file, creating the default file on first
// run so users have something to edit.
func Save(cfg *Config, path string) error {
	return utils.SaveTOMLFile(cfg, path)
}

// MatchMode resolves the configured default match mode.
func (c *Config) MatchMode() (match.Mode, error) {
	return match.ParseMode(c.Solver.DefaultMode)
}

// BuildOptions maps the builder section onto plates.BuildOptions.
func (c *Config) BuildOptions() (plates.BuildOptions, error) {
	mode, err := c.MatchMode()
	if err != nil {
		return plates.BuildOptions{}, err
	}
	opts := plates.BuildOptions{
		Length:   c.Builder.PatternLength,
		Alphabet: c.Builder.Alphabet,
		Mode:     mode,
		Workers:  c.Builder.Workers,
	}
	switch c.Builder.Coverage {
	case "", "full":
		opts.Coverage = plates.CoverageFull
	case "partial":
		opts.Coverage = plates.CoveragePartial
	default:
		return plates.BuildOptions{}, fmt.Errorf("unknown coverage %q", c.Builder.Coverage)
	}
	return opts, nil
}

// ScoreWeights maps the weights section onto score.Weights.
func (c *Config) ScoreWeights() score.Weights {
	return score.Weights{
		Frequency:    c.Weights.Frequency,
		Information:  c.Weights.Information,
		Orthographic: c.Weights.Orthographic,
	}
}

// Bounds maps the ngram section onto the orthographic rescaling bounds.
func (c *Config) Bounds() score.Bounds {
	return score.Bounds{
		BigramLow:   c.NGram.BigramLow,
		BigramHigh:  c.NGram.BigramHigh,
		TrigramLow:  c.NGram.TrigramLow,
		TrigramHigh: c.NGram.TrigramHigh,
	}
}
