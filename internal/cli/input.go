// Package cli handles interactive stdin input for DBG and testing the scoring engine
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bgrier/platescore/internal/logger"
	"github.com/bgrier/platescore/internal/utils"
	"github.com/bgrier/platescore/pkg/engine"
	"github.com/bgrier/platescore/pkg/match"
	"github.com/bgrier/platescore/pkg/platerr"
	"github.com/bgrier/platescore/pkg/score"
)

// InputHandler reads queries from stdin. Two shapes are accepted:
// "PATTERN" solves the pattern and lists the top solutions, and
// "PATTERN WORD" scores the word for that pattern with the full ensemble
// breakdown.
type InputHandler struct {
	eng          *engine.Engine
	out          *log.Logger
	mode         match.Mode
	limit        int
	requestCount int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(eng *engine.Engine, mode match.Mode, limit int) *InputHandler {
	// results print without prefix or timestamps, diagnostics keep the
	// global logger
	out := logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)
	return &InputHandler{
		eng:   eng,
		out:   out,
		mode:  mode,
		limit: limit,
	}
}

// Start begins the interface loop. It continuously prompts for input, reads a
// line from stdin, and dispatches it. Loop terminates on stdin errors.
func (h *InputHandler) Start() error {
	h.out.Print("platescore CLI")
	reader := bufio.NewReader(os.Stdin)
	h.out.Print("enter PATTERN to solve, or PATTERN WORD to score (Ctrl+C to exit):")

	for {
		h.out.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		h.handleInput(line)
	}
}

func (h *InputHandler) handleInput(line string) {
	h.requestCount++
	fields := strings.Fields(line)
	switch len(fields) {
	case 1:
		h.handleSolve(fields[0])
	case 2:
		h.handleScore(fields[1], fields[0])
	default:
		log.Errorf("Expected PATTERN or PATTERN WORD, got %d fields", len(fields))
	}
}

func (h *InputHandler) handleSolve(pattern string) {
	start := time.Now()
	solutions, err := h.eng.Solve(pattern, h.mode)
	elapsed := time.Since(start)
	if err != nil {
		log.Errorf("Solve failed for %q: %v", pattern, err)
		return
	}
	log.Debugf("Took [ %v ] for pattern '%s'", elapsed, pattern)

	if len(solutions) == 0 {
		log.Warnf("No solutions found for pattern: '%s'", pattern)
		return
	}

	shown := solutions
	if h.limit > 0 && len(shown) > h.limit {
		shown = shown[:h.limit]
	}
	h.out.Printf("Found %d solutions for pattern '%s' (%s mode):", len(solutions), pattern, h.mode)
	for i, s := range shown {
		fmtFreq := utils.FormatWithCommas(s.Frequency)
		clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", s.Word)
		h.out.Printf("%2d. %-40s (freq: %8s)", i+1, clWord, fmtFreq)
	}
}

func (h *InputHandler) handleScore(word, pattern string) {
	start := time.Now()
	result, err := h.eng.Score(word, pattern)
	elapsed := time.Since(start)
	if err != nil {
		if errors.Is(err, platerr.ErrAllScorersFailed) {
			log.Errorf("No dimension could score %q for %q: %v", word, pattern, err)
		} else {
			log.Errorf("Score failed: %v", err)
		}
		return
	}
	log.Debugf("Took [ %v ] for %q / %q", elapsed, word, pattern)

	clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", word)
	h.out.Printf("%s for %q: %.1f/100 (%s, confidence %.2f)",
		clWord, pattern, result.Score, result.Verdict, result.Confidence)
	for _, dim := range []string{score.DimensionFrequency, score.DimensionInformation, score.DimensionOrthographic} {
		comp := result.Components[dim]
		if comp.Err != "" {
			h.out.Printf("  %-13s --       (%s)", dim, comp.Err)
			continue
		}
		h.out.Printf("  %-13s %6.1f   %s", dim, comp.Result.Score, comp.Result.Interpretation)
	}
}
