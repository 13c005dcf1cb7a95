package match

import (
	"fmt"
	"testing"

	"github.com/spellserve/spellserve/pkg/vocab"
)

// Score dominates; length-closeness only breaks ties.
func TestRankScoredOrder(t *testing.T) {
	matches := []scoredWord{
		{word: vocab.Word{Text: "bbbbbbb"}, score: 90, lenDiff: 2}, // len 7 vs query len 5
		{word: vocab.Word{Text: "ccccc"}, score: 70, lenDiff: 0},
		{word: vocab.Word{Text: "aaaaa"}, score: 90, lenDiff: 0},
	}

	rankScored(matches)

	expected := []string{"aaaaa", "bbbbbbb", "ccccc"}
	for i, text := range expected {
		if matches[i].word.Text != text {
			t.Errorf("Position %d: expected %q, got %q", i, text, matches[i].word.Text)
		}
	}
}

// Equal score and equal length difference keep candidate order.
func TestRankScoredStable(t *testing.T) {
	matches := []scoredWord{
		{word: vocab.Word{Text: "first"}, score: 90, lenDiff: 1},
		{word: vocab.Word{Text: "later"}, score: 90, lenDiff: 1},
	}

	rankScored(matches)

	if matches[0].word.Text != "first" || matches[1].word.Text != "later" {
		t.Errorf("Tie order not stable: got [%s %s]", matches[0].word.Text, matches[1].word.Text)
	}
}

func TestFuzzyCutoff(t *testing.T) {
	words := vocabFrom("hello", "hallo", "zzzzzz")

	matched, err := NewFuzzyStrategy(DefaultScoreCutoff).Match(words, "hello", 9)
	if err != nil {
		t.Fatalf("Match failed: %v", err)
	}
	for _, w := range matched {
		if w.Text == "zzzzzz" {
			t.Errorf("Candidate below cutoff survived: %v", texts(matched))
		}
	}
	if len(matched) == 0 || matched[0].Text != "hello" {
		t.Errorf("Expected exact match first, got %v", texts(matched))
	}
}

func TestFuzzyLimit(t *testing.T) {
	words := vocabFrom("hell", "hello", "hells", "hellos", "helm")

	matched, err := NewFuzzyStrategy(DefaultScoreCutoff).Match(words, "hello", 3)
	if err != nil {
		t.Fatalf("Match failed: %v", err)
	}
	if len(matched) > 3 {
		t.Errorf("Expected at most 3 results, got %d", len(matched))
	}
}

func TestFuzzyEmptyQuery(t *testing.T) {
	matched, err := NewFuzzyStrategy(0).Match(vocabFrom("cat"), "", 9)
	if err != nil {
		t.Fatalf("Match failed: %v", err)
	}
	if len(matched) != 0 {
		t.Errorf("Expected empty result for empty query, got %v", texts(matched))
	}
}

func BenchmarkFuzzyMatch(b *testing.B) {
	words := make(vocab.Vocabulary, 0, 1000)
	for i := 0; i < 1000; i++ {
		words = append(words, vocab.Word{Text: fmt.Sprintf("word%d", i), Source: "english"})
	}
	strategy := NewFuzzyStrategy(DefaultScoreCutoff)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		strategy.Match(words, "word42", 9)
	}
}
