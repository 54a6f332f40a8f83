package nlp

import (
	"testing"
)

func TestAnalyzeEmptyInput(t *testing.T) {
	a := NewAnalyzer()
	for _, text := range []string{"", "   ", "!!! ???", "\t\n"} {
		f := a.Analyze(text)
		if len(f.Entities) != 0 || len(f.Nouns) != 0 || len(f.Verbs) != 0 ||
			len(f.Adjectives) != 0 || len(f.Topics) != 0 {
			t.Errorf("Analyze(%q) expected empty features, got %+v", text, f)
		}
	}
}

func TestAnalyzeExtractsWordClasses(t *testing.T) {
	a := NewAnalyzer()
	f := a.Analyze("The quick developer writes elegant code")
	if len(f.Nouns) == 0 {
		t.Error("expected at least one noun")
	}
	if len(f.Adjectives) == 0 {
		t.Error("expected at least one adjective")
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	a := NewAnalyzer()
	text := "Alice is learning machine learning in Paris"
	first := a.Analyze(text)
	second := a.Analyze(text)
	if len(first.Nouns) != len(second.Nouns) || len(first.Entities) != len(second.Entities) {
		t.Errorf("repeated analysis differs: %+v vs %+v", first, second)
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Hello, World!", []string{"hello", "world"}},
		{"what's up?", []string{"what's", "up"}},
		{"", nil},
		{"a-b c_d", []string{"a", "b", "c", "d"}},
	}
	for _, tt := range tests {
		got := Tokenize(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Tokenize(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func TestStem(t *testing.T) {
	tests := map[string]string{
		"running":  "run",
		"learning": "learn",
		"walked":   "walk",
		"go":       "go",
	}
	for in, want := range tests {
		if got := Stem(in); got != want {
			t.Errorf("Stem(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSentimentScore(t *testing.T) {
	s := NewSentimentScorer()

	if got := s.Score(nil); got != 0 {
		t.Errorf("empty token list should score 0, got %f", got)
	}

	positive := s.Score(Stems("this is really great and helpful"))
	if positive <= 0 {
		t.Errorf("expected positive score, got %f", positive)
	}

	negative := s.Score(Stems("this is terrible and broken"))
	if negative >= 0 {
		t.Errorf("expected negative score, got %f", negative)
	}
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		score float64
		want  SentimentCategory
	}{
		{0.5, SentimentPositive},
		{0.11, SentimentPositive},
		{0.1, SentimentNeutral},
		{0, SentimentNeutral},
		{-0.1, SentimentNeutral},
		{-0.11, SentimentNegative},
		{-2, SentimentNegative},
	}
	for _, tt := range tests {
		if got := Categorize(tt.score); got != tt.want {
			t.Errorf("Categorize(%f) = %s, want %s", tt.score, got, tt.want)
		}
	}
}
