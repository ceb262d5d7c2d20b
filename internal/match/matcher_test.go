package match

import "testing"

func TestExactMatcherWordCount(t *testing.T) {
	m := ExactMatcher{}

	tests := []struct {
		name  string
		query string
		text  string
		want  float64
	}{
		{"both words found", "health initiative", "community health initiative", 2},
		{"one word found", "health records", "community health initiative", 1},
		{"no words found", "budget report", "community health initiative", 0},
		{"case insensitive", "HEALTH", "Community Health Initiative", 1},
		{"substring counts", "commun", "community health initiative", 1},
		{"empty query", "", "community health initiative", 0},
		{"empty text", "health", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Score(tt.query, tt.text); got != tt.want {
				t.Errorf("Score(%q, %q) = %v, want %v", tt.query, tt.text, got, tt.want)
			}
		})
	}
}

func TestFuzzyMatcherExactTextScore(t *testing.T) {
	m := FuzzyMatcher{}

	// Identical strings: 1+2+...+6 for the consecutive run, plus the
	// full-subsequence bonus, no length penalty.
	got := m.Score("health", "health")
	want := float64(1+2+3+4+5+6) + fullSubsequenceBonus
	if got != want {
		t.Errorf("Score(health, health) = %v, want %v", got, want)
	}
}

func TestFuzzyMatcherToleratesGaps(t *testing.T) {
	m := FuzzyMatcher{}

	// "hlth" is a subsequence of "health": full bonus applies even
	// though the run resets on gaps.
	score := m.Score("hlth", "health")
	if score <= fullSubsequenceBonus {
		t.Errorf("expected subsequence match above the flat bonus, got %v", score)
	}
}

func TestFuzzyMatcherFullTextBeatsPartial(t *testing.T) {
	m := FuzzyMatcher{}
	text := "health"

	full := m.Score(text, text)
	partial := m.Score("htlaeh", text) // same characters, order broken

	if full < partial {
		t.Errorf("full-text query scored %v, below permuted query %v", full, partial)
	}
}

func TestFuzzyMatcherLengthPenalty(t *testing.T) {
	m := FuzzyMatcher{}

	short := m.Score("ada", "ada")
	long := m.Score("ada", "ada lovelace of london")

	if long >= short {
		t.Errorf("expected length mismatch to lower the score: short %v, long %v", short, long)
	}
}

func TestFuzzyMatcherFloorsAtZero(t *testing.T) {
	m := FuzzyMatcher{}

	// No character matches and a large length gap.
	if got := m.Score("zzz", "a very long unrelated field value without those letters"); got != 0 {
		t.Errorf("expected floor at 0, got %v", got)
	}
}

func TestFuzzyMatcherCaseInsensitive(t *testing.T) {
	m := FuzzyMatcher{}

	if m.Score("ADA", "ada") != m.Score("ada", "ada") {
		t.Error("expected case-insensitive fuzzy scoring")
	}
}

func TestForOptions(t *testing.T) {
	if _, ok := ForOptions(false).(ExactMatcher); !ok {
		t.Error("expected ExactMatcher for fuzzy=false")
	}
	if _, ok := ForOptions(true).(FuzzyMatcher); !ok {
		t.Error("expected FuzzyMatcher for fuzzy=true")
	}
}
