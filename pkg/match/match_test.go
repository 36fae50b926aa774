package match

import "testing"

// The subsequence rule is the game rule; ordering matters, not adjacency.
func TestSubsequence(t *testing.T) {
	testCases := []struct {
		pattern string
		word    string
		want    bool
	}{
		{"act", "act", true},
		{"act", "tact", true},
		// 'c' occurs before 'a' in "cat", so order is violated
		{"act", "cat", false},
		{"abc", "aabbcc", true},
		{"abc", "acb", false},
		{"zz", "pizzazz", true},
		{"zzz", "pizza", false},
		{"cat", "concatenate", true},
	}
	for _, tc := range testCases {
		if got := Match(Subsequence, tc.pattern, tc.word); got != tc.want {
			t.Errorf("Subsequence(%q, %q) = %v, want %v", tc.pattern, tc.word, got, tc.want)
		}
	}
}

func TestSubstring(t *testing.T) {
	testCases := []struct {
		pattern string
		word    string
		want    bool
	}{
		{"act", "tact", true},
		{"act", "actor", true},
		{"act", "atc", false},
		{"cat", "concatenate", false},
	}
	for _, tc := range testCases {
		if got := Match(Substring, tc.pattern, tc.word); got != tc.want {
			t.Errorf("Substring(%q, %q) = %v, want %v", tc.pattern, tc.word, got, tc.want)
		}
	}
}

func TestAnagram(t *testing.T) {
	testCases := []struct {
		pattern string
		word    string
		want    bool
	}{
		{"act", "cat", true},
		{"act", "act", true},
		{"act", "tact", false},
		{"aab", "aba", true},
		{"aab", "abb", false},
	}
	for _, tc := range testCases {
		if got := Match(Anagram, tc.pattern, tc.word); got != tc.want {
			t.Errorf("Anagram(%q, %q) = %v, want %v", tc.pattern, tc.word, got, tc.want)
		}
	}
}

func TestAnagramSubset(t *testing.T) {
	testCases := []struct {
		pattern string
		word    string
		want    bool
	}{
		{"act", "tact", true},
		{"act", "cat", true},
		{"att", "tact", true},
		{"att", "tac", false},
		{"act", "ab", false},
	}
	for _, tc := range testCases {
		if got := Match(AnagramSubset, tc.pattern, tc.word); got != tc.want {
			t.Errorf("AnagramSubset(%q, %q) = %v, want %v", tc.pattern, tc.word, got, tc.want)
		}
	}
}

func TestPositional(t *testing.T) {
	testCases := []struct {
		pattern string
		word    string
		want    bool
	}{
		{"c.t", "cat", true},
		{"c.t", "cot", true},
		{"c.t", "cab", false},
		{"c.t", "cart", false}, // length mismatch
		{"...", "dog", true},
		{"dog", "dog", true},
	}
	for _, tc := range testCases {
		if got := Match(Positional, tc.pattern, tc.word); got != tc.want {
			t.Errorf("Positional(%q, %q) = %v, want %v", tc.pattern, tc.word, got, tc.want)
		}
	}
}

func TestNormalizePattern(t *testing.T) {
	testCases := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"ACT", "act", false},
		{" act ", "act", false},
		{"c.t", "c.t", false},
		{"a", "", true},          // too short
		{"abcdefghi", "", true},  // too long
		{"ac1", "", true},        // digit
		{"", "", true},
	}
	for _, tc := range testCases {
		got, err := NormalizePattern(tc.input)
		if (err != nil) != tc.wantErr {
			t.Errorf("NormalizePattern(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("NormalizePattern(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestParseMode(t *testing.T) {
	for _, name := range []string{"subsequence", "substring", "anagram", "anagram-subset", "positional"} {
		mode, err := ParseMode(name)
		if err != nil {
			t.Fatalf("ParseMode(%q) error: %v", name, err)
		}
		if mode.String() != name {
			t.Errorf("ParseMode(%q).String() = %q", name, mode.String())
		}
	}
	if _, err := ParseMode("regex"); err == nil {
		t.Error("ParseMode should reject unknown modes")
	}
}
