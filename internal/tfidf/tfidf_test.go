package tfidf

import "testing"

func TestGetScore_AbsentTokenContributesZero(t *testing.T) {
	s := UnprocessedDocuments(
		[]string{"rust programming language", "https://example.com/rust", "a systems language"},
		EnglishStopwords, DefaultPunctuation,
	)

	if got := s.GetScore("nonexistent"); got != 0 {
		t.Fatalf("GetScore(absent) = %v, want 0", got)
	}
}

func TestGetScore_PresentTokenIsPositive(t *testing.T) {
	s := UnprocessedDocuments(
		[]string{"rust programming language", "https://example.com/rust", "a systems language"},
		EnglishStopwords, DefaultPunctuation,
	)

	if got := s.GetScore("rust"); got <= 0 {
		t.Fatalf("GetScore(rust) = %v, want > 0", got)
	}
}

func TestGetScore_HigherTermFrequencyScoresHigher(t *testing.T) {
	sparse := UnprocessedDocuments(
		[]string{"rust tooling and ecosystem notes", "unrelated content"},
		EnglishStopwords, DefaultPunctuation,
	)
	dense := UnprocessedDocuments(
		[]string{"rust rust rust tooling ecosystem", "unrelated content"},
		EnglishStopwords, DefaultPunctuation,
	)

	if dense.GetScore("rust") <= sparse.GetScore("rust") {
		t.Fatalf("expected denser occurrence of the term to score higher")
	}
}

func TestTokenize_DropsStopwordsAndPunctuation(t *testing.T) {
	got := Tokenize("The Rust Language, and its tools!", EnglishStopwords, DefaultPunctuation)
	want := []string{"rust", "language", "tools"}

	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
