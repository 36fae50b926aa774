// Copyright 2025 The platescore Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the platescore build-and-score application.

platescore rates how impressive a word is as a solution to a letter-sequence
puzzle: a short plate whose letters must appear, in order, inside the word.
Scores blend global frequency rarity, Shannon information content among the
plate's solutions, and letter-pattern (orthographic) complexity into one
0-100 ensemble score with a confidence value.

# Usage

Build the index from a word list and score one word:

	platescore -words data/words.txt -pattern act -word tact

List solutions for a plate instead:

	platescore -words data/words.txt -pattern act

Run interactively:

	platescore -words data/words.txt -c

The word list is plain text, one "word frequency" pair per line. Building the
full length-3 plate index over a large corpus takes a while; snapshot the
built state once and reuse it:

	platescore -words data/words.txt -save built.psnap
	platescore -load built.psnap -pattern act -word tact

# Configuration

Runtime configuration lives in a TOML file passed via -config:

	[solver]
	max_results = 24
	default_mode = "subsequence"

	[builder]
	pattern_length = 3
	coverage = "full"

	[weights]
	frequency = 1.0
	information = 1.0
	orthographic = 1.0

Partial coverage restricts the index to patterns listed in the file passed
via -patterns (one per line); scoring a plate outside that sample reports an
uncovered-pattern failure instead of degenerate statistics.
*/
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/bgrier/platescore/internal/cli"
	"github.com/bgrier/platescore/internal/logger"
	"github.com/bgrier/platescore/pkg/config"
	"github.com/bgrier/platescore/pkg/corpus"
	"github.com/bgrier/platescore/pkg/engine"
	"github.com/bgrier/platescore/pkg/match"
	"github.com/bgrier/platescore/pkg/plates"
	"github.com/bgrier/platescore/pkg/score"
	"github.com/bgrier/platescore/pkg/snapshot"
)

func main() {
	var (
		wordsPath    = flag.String("words", "", "Path to the word-frequency list")
		loadPath     = flag.String("load", "", "Load built state from a .psnap snapshot instead of building")
		savePath     = flag.String("save", "", "Save built state to a .psnap snapshot")
		configPath   = flag.String("config", "", "Path to TOML config")
		patternsPath = flag.String("patterns", "", "Pattern sample file for partial coverage")
		pattern      = flag.String("pattern", "", "Plate pattern to solve or score against")
		word         = flag.String("word", "", "Candidate word to score (requires -pattern)")
		modeFlag     = flag.String("mode", "", "Match mode for -pattern solving (default from config)")
		limit        = flag.Int("limit", 0, "Max solutions to print (default from config)")
		interactive  = flag.Bool("c", false, "Interactive CLI mode")
		debug        = flag.Bool("d", false, "Enable debug logging")
	)
	flag.Parse()

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	cfg := config.Load(*configPath)

	eng, err := buildEngine(cfg, *wordsPath, *loadPath, *patternsPath)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if *savePath != "" {
		c, ix, model, err := eng.State()
		if err != nil {
			log.Fatalf("snapshot: %v", err)
		}
		if err := snapshot.Save(*savePath, snapshot.Snapshot{Corpus: c, Index: ix, Model: model}); err != nil {
			log.Fatalf("snapshot: %v", err)
		}
		log.Printf("Saved snapshot to %s", *savePath)
	}

	mode, err := cfg.MatchMode()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *modeFlag != "" {
		if mode, err = match.ParseMode(*modeFlag); err != nil {
			log.Fatalf("%v", err)
		}
	}
	if *limit <= 0 {
		*limit = cfg.Solver.MaxResults
	}

	switch {
	case *interactive:
		handler := cli.NewInputHandler(eng, mode, *limit)
		if err := handler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
	case *pattern != "" && *word != "":
		printScore(eng, *word, *pattern)
	case *pattern != "":
		printSolutions(eng, *pattern, mode, *limit)
	case *savePath == "":
		flag.Usage()
		os.Exit(2)
	}
}

// buildEngine assembles built state from either a snapshot or a word list.
func buildEngine(cfg *config.Config, wordsPath, loadPath, patternsPath string) (*engine.Engine, error) {
	buildOpts, err := cfg.BuildOptions()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if patternsPath != "" {
		sample, err := readPatternSample(patternsPath)
		if err != nil {
			return nil, err
		}
		buildOpts.Coverage = plates.CoveragePartial
		buildOpts.Patterns = sample
	}

	eng := engine.New(engine.Options{
		Build:   buildOpts,
		Bounds:  cfg.Bounds(),
		Weights: cfg.ScoreWeights(),
	})

	switch {
	case loadPath != "":
		snap, err := snapshot.Load(loadPath)
		if err != nil {
			return nil, err
		}
		eng.Restore(snap.Corpus, snap.Index, snap.Model)
	case wordsPath != "":
		blog := logger.New("build")
		c, err := corpus.LoadFile(wordsPath)
		if err != nil {
			return nil, err
		}
		blog.Printf("Building index over %d words...", c.Len())
		if err := eng.Rebuild(context.Background(), c); err != nil {
			return nil, err
		}
		if _, ix, _, err := eng.State(); err == nil {
			blog.Printf("Index ready: %d patterns", ix.PatternCount())
		}
	default:
		return nil, fmt.Errorf("either -words or -load is required")
	}
	return eng, nil
}

func readPatternSample(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pattern sample: %w", err)
	}
	defer file.Close()

	var out []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out, scanner.Err()
}

func printSolutions(eng *engine.Engine, pattern string, mode match.Mode, limit int) {
	solutions, err := eng.Solve(pattern, mode)
	if err != nil {
		log.Fatalf("solve: %v", err)
	}
	if len(solutions) == 0 {
		fmt.Printf("no solutions for %q\n", pattern)
		return
	}
	if limit > 0 && len(solutions) > limit {
		solutions = solutions[:limit]
	}
	for _, s := range solutions {
		fmt.Printf("%s\t%d\n", s.Word, s.Frequency)
	}
}

func printScore(eng *engine.Engine, word, pattern string) {
	result, err := eng.Score(word, pattern)
	if err != nil {
		log.Fatalf("score: %v", err)
	}
	fmt.Printf("%s / %s: %.1f/100  (%s, confidence %.2f)\n",
		word, pattern, result.Score, result.Verdict, result.Confidence)
	for _, dim := range []string{score.DimensionFrequency, score.DimensionInformation, score.DimensionOrthographic} {
		comp := result.Components[dim]
		if comp.Err != "" {
			fmt.Printf("  %-13s failed: %s\n", dim, comp.Err)
			continue
		}
		fmt.Printf("  %-13s %6.1f  %s\n", dim, comp.Result.Score, comp.Result.Interpretation)
	}
}
