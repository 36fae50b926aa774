package ngram

import (
	"math"
	"testing"

	"github.com/bgrier/platescore/pkg/corpus"
)

func TestBigramExtraction(t *testing.T) {
	got := Bigrams("cat")
	want := []string{"^c", "ca", "at", "t$"}
	if len(got) != len(want) {
		t.Fatalf("Bigrams(cat) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Bigrams(cat)[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTrigramExtraction(t *testing.T) {
	got := Trigrams("cat")
	want := []string{"^ca", "cat", "at$"}
	if len(got) != len(want) {
		t.Fatalf("Trigrams(cat) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Trigrams(cat)[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	// single letter still produces one trigram window
	if got := Trigrams("a"); len(got) != 1 || got[0] != "^a$" {
		t.Errorf("Trigrams(a) = %v, want [^a$]", got)
	}
}

func TestTrainProbabilitiesSumToOne(t *testing.T) {
	c := corpus.New(map[string]int{"cat": 100, "act": 50, "tact": 10})
	m := Train(c)

	bigrams, trigrams := m.Tables()
	sum := 0.0
	for _, p := range bigrams {
		sum += p
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("bigram probabilities sum to %v, want 1", sum)
	}
	sum = 0
	for _, p := range trigrams {
		sum += p
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("trigram probabilities sum to %v, want 1", sum)
	}
}

func TestTrainIsFrequencyWeighted(t *testing.T) {
	c := corpus.New(map[string]int{"cat": 100, "dog": 1})
	m := Train(c)
	if m.BigramProbability("ca") <= m.BigramProbability("do") {
		t.Error("bigrams from the frequent word should carry more probability mass")
	}
}

func TestUnseenGramsFallBackToSmoothing(t *testing.T) {
	c := corpus.New(map[string]int{"cat": 100})
	m := Train(c)
	if p := m.BigramProbability("qx"); p != DefaultSmoothing {
		t.Errorf("unseen bigram probability = %v, want smoothing constant %v", p, DefaultSmoothing)
	}
	if p := m.TrigramProbability("qxz"); p != DefaultSmoothing {
		t.Errorf("unseen trigram probability = %v, want smoothing constant %v", p, DefaultSmoothing)
	}
}

func TestFromTablesRoundTrip(t *testing.T) {
	c := corpus.New(map[string]int{"cat": 100, "act": 50})
	m := Train(c)
	bigrams, trigrams := m.Tables()

	restored := FromTables(bigrams, trigrams)
	if restored.BigramCount() != m.BigramCount() || restored.TrigramCount() != m.TrigramCount() {
		t.Fatal("restored model table sizes differ")
	}
	if restored.BigramProbability("ca") != m.BigramProbability("ca") {
		t.Error("restored bigram probability differs")
	}
}
