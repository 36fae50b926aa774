package corpus

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewSkipsInvalidEntries(t *testing.T) {
	c := New(map[string]int{
		"cat":    100,
		"Tact":   10, // normalized to lowercase
		"act":    50,
		"3cat":   7,  // digits rejected
		"café":   7,  // non-ascii rejected
		"ghost":  0,  // zero frequency means absent
		"noway":  -4, // negative rejected
	})

	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}
	if f := c.Frequency("TACT"); f != 10 {
		t.Errorf("Frequency(TACT) = %d, want 10 (normalized lookup)", f)
	}
	if c.Contains("ghost") {
		t.Error("zero-frequency word should be absent")
	}
	if c.TotalFrequency() != 160 {
		t.Errorf("TotalFrequency() = %d, want 160", c.TotalFrequency())
	}
	if c.MaxFrequency() != 100 {
		t.Errorf("MaxFrequency() = %d, want 100", c.MaxFrequency())
	}
}

func TestVisitOrderIsLexicographic(t *testing.T) {
	c := New(map[string]int{"cat": 100, "act": 50, "tact": 10, "bat": 20})

	var words []string
	err := c.Visit(func(word string, freq int) error {
		words = append(words, word)
		return nil
	})
	if err != nil {
		t.Fatalf("Visit error: %v", err)
	}
	want := []string{"act", "bat", "cat", "tact"}
	if len(words) != len(want) {
		t.Fatalf("visited %d words, want %d", len(words), len(want))
	}
	for i := range want {
		if words[i] != want[i] {
			t.Errorf("visit order[%d] = %q, want %q", i, words[i], want[i])
		}
	}
}

func TestVisitPrefix(t *testing.T) {
	c := New(map[string]int{"cat": 100, "cart": 30, "dog": 20})

	var words []string
	_ = c.VisitPrefix("ca", func(word string, freq int) error {
		words = append(words, word)
		return nil
	})
	if len(words) != 2 {
		t.Fatalf("VisitPrefix(ca) visited %v, want cart and cat", words)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	content := "# frequency dump\ncat 100\nact 50\ntact 10\nbroken-line\nnope abc\ncat 5\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}
	// duplicate lines accumulate
	if f := c.Frequency("cat"); f != 105 {
		t.Errorf("Frequency(cat) = %d, want 105", f)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("LoadFile should fail for a missing file")
	}
}
