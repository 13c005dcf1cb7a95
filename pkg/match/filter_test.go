package match

import (
	"testing"

	"github.com/spellserve/spellserve/pkg/vocab"
)

func vocabFrom(texts ...string) vocab.Vocabulary {
	words := make(vocab.Vocabulary, 0, len(texts))
	for _, t := range texts {
		words = append(words, vocab.Word{Text: t, Source: "english"})
	}
	return words
}

func texts(words vocab.Vocabulary) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		out = append(out, w.Text)
	}
	return out
}

func assertTexts(t *testing.T, got vocab.Vocabulary, expected ...string) {
	t.Helper()
	actual := texts(got)
	if len(actual) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, actual)
	}
	for i := range expected {
		if actual[i] != expected[i] {
			t.Fatalf("Expected %v, got %v", expected, actual)
		}
	}
}

func TestFilterByLength(t *testing.T) {
	words := vocabFrom("a", "cat", "carts", "elephant", "dog", "horses")

	// |query| = 4, window [2, 6]
	filtered := FilterByLength(words, "cart")
	assertTexts(t, filtered, "cat", "carts", "dog", "horses")
}

func TestFilterByLengthShortQuery(t *testing.T) {
	words := vocabFrom("a", "cat", "carts", "dog")

	// |query| = 1, lower bound clamps to 1
	filtered := FilterByLength(words, "c")
	assertTexts(t, filtered, "a", "cat", "dog")
}

func TestFilterByLengthEmptyQueryIsIdentity(t *testing.T) {
	words := vocabFrom("cat", "elephant")
	filtered := FilterByLength(words, "")
	assertTexts(t, filtered, "cat", "elephant")
}

func TestFilterByFirstChar(t *testing.T) {
	words := vocabFrom("cat", "Car", "dog", "cart", "apple")
	filtered := FilterByFirstChar(words, "Ca")
	assertTexts(t, filtered, "cat", "Car", "cart")
}

func TestFilterByFirstCharEmptyQueryIsIdentity(t *testing.T) {
	words := vocabFrom("cat", "dog")
	filtered := FilterByFirstChar(words, "")
	assertTexts(t, filtered, "cat", "dog")
}

// Applying a filter twice must equal applying it once.
func TestFilterIdempotence(t *testing.T) {
	words := vocabFrom("cat", "Car", "dog", "cart", "apple", "carthorse")

	once := FilterByLength(words, "cart")
	twice := FilterByLength(once, "cart")
	assertTexts(t, twice, texts(once)...)

	once = FilterByFirstChar(words, "cart")
	twice = FilterByFirstChar(once, "cart")
	assertTexts(t, twice, texts(once)...)
}

// Filters compose in either order.
func TestFilterComposition(t *testing.T) {
	words := vocabFrom("cat", "carthorse", "cart", "dog", "apple")

	lengthFirst := FilterByFirstChar(FilterByLength(words, "cart"), "cart")
	charFirst := FilterByLength(FilterByFirstChar(words, "cart"), "cart")
	assertTexts(t, lengthFirst, texts(charFirst)...)
	assertTexts(t, lengthFirst, "cat", "cart")
}
