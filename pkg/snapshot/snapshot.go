// Package snapshot persists built engine state (corpus, index and n-gram
// model) as one opaque msgpack file, so a process can skip the batch build
// on restart. The format is versioned; anything else about it is deliberately
// unspecified.
package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/bgrier/platescore/internal/utils"
	"github.com/bgrier/platescore/pkg/corpus"
	"github.com/bgrier/platescore/pkg/match"
	"github.com/bgrier/platescore/pkg/ngram"
	"github.com/bgrier/platescore/pkg/plates"
	"github.com/bgrier/platescore/pkg/solve"
)

// FormatVersion is bumped on any incompatible change to the file layout.
const FormatVersion = 1

// FileExtension is required on snapshot paths.
const FileExtension = ".psnap"

// Snapshot is the built state a snapshot file carries.
type Snapshot struct {
	Corpus *corpus.Corpus
	Index  *plates.Index
	Model  *ngram.Model
}

type fileV1 struct {
	Version   int            `msgpack:"v"`
	CreatedAt int64          `msgpack:"ts"`
	Words     map[string]int `msgpack:"words"`

	Coverage uint8                   `msgpack:"cov"`
	Length   int                     `msgpack:"len"`
	Mode     uint8                   `msgpack:"mode"`
	Entries  map[string][]solutionV1 `msgpack:"entries"`

	Bigrams  map[string]float64 `msgpack:"bg"`
	Trigrams map[string]float64 `msgpack:"tg"`
}

type solutionV1 struct {
	Word string `msgpack:"w"`
	Freq int    `msgpack:"f"`
}

// Save writes the snapshot to path. The path must carry FileExtension so a
// snapshot is never mistaken for a word list.
func Save(path string, s Snapshot) error {
	if err := validatePath(path); err != nil {
		return err
	}
	if s.Corpus == nil || s.Index == nil || s.Model == nil {
		return fmt.Errorf("snapshot save: incomplete state")
	}

	entries := make(map[string][]solutionV1)
	for p, sols := range s.Index.Export() {
		list := make([]solutionV1, len(sols))
		for i, sol := range sols {
			list[i] = solutionV1{Word: sol.Word, Freq: sol.Frequency}
		}
		entries[p] = list
	}
	bigrams, trigrams := s.Model.Tables()

	if dir := filepath.Dir(path); dir != "." {
		if err := utils.EnsureDir(dir); err != nil {
			return fmt.Errorf("snapshot save: %w", err)
		}
	}

	f := fileV1{
		Version:   FormatVersion,
		CreatedAt: time.Now().Unix(),
		Words:     s.Corpus.Pairs(),
		Coverage:  uint8(s.Index.Coverage()),
		Length:    s.Index.Length(),
		Mode:      uint8(s.Index.MatchMode()),
		Entries:   entries,
		Bigrams:   bigrams,
		Trigrams:  trigrams,
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot save: %w", err)
	}
	defer file.Close()

	if err := msgpack.NewEncoder(file).Encode(&f); err != nil {
		return fmt.Errorf("snapshot encode: %w", err)
	}
	log.Debugf("snapshot saved to %s: %d words, %d patterns", path, len(f.Words), len(entries))
	return nil
}

// Load reads a snapshot file and reconstructs the built state. Per-pattern
// statistics and the inverse word→patterns mapping are recomputed on load;
// only the raw tables travel in the file.
func Load(path string) (Snapshot, error) {
	if err := validatePath(path); err != nil {
		return Snapshot{}, err
	}
	file, err := os.Open(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("snapshot load: %w", err)
	}
	defer file.Close()

	var f fileV1
	if err := msgpack.NewDecoder(file).Decode(&f); err != nil {
		return Snapshot{}, fmt.Errorf("snapshot decode %s: %w", path, err)
	}
	if f.Version != FormatVersion {
		return Snapshot{}, fmt.Errorf("snapshot %s: unsupported format version %d", path, f.Version)
	}

	entries := make(map[string][]solve.Solution, len(f.Entries))
	for p, list := range f.Entries {
		sols := make([]solve.Solution, len(list))
		for i, sol := range list {
			sols[i] = solve.Solution{Word: sol.Word, Frequency: sol.Freq}
		}
		entries[p] = sols
	}

	s := Snapshot{
		Corpus: corpus.New(f.Words),
		Index:  plates.Restore(plates.Coverage(f.Coverage), f.Length, match.Mode(f.Mode), entries),
		Model:  ngram.FromTables(f.Bigrams, f.Trigrams),
	}
	log.Debugf("snapshot loaded from %s: %d words, %d patterns", path, s.Corpus.Len(), s.Index.PatternCount())
	return s, nil
}

func validatePath(path string) error {
	if strings.ToLower(filepath.Ext(path)) != FileExtension {
		return fmt.Errorf("snapshot path %s must have extension %s", path, FileExtension)
	}
	return nil
}
