package match

import "testing"

func TestPrefixMatch(t *testing.T) {
	words := vocabFrom("cat", "car", "cart", "dog")

	matched, err := PrefixStrategy{}.Match(words, "ca", 9)
	if err != nil {
		t.Fatalf("Match failed: %v", err)
	}
	assertTexts(t, matched, "cat", "car", "cart")
}

func TestPrefixMatchLimit(t *testing.T) {
	words := vocabFrom("cat", "car", "cart", "catalog")

	matched, err := PrefixStrategy{}.Match(words, "ca", 2)
	if err != nil {
		t.Fatalf("Match failed: %v", err)
	}
	assertTexts(t, matched, "cat", "car")
}

// Query metacharacters must match literally, never as a pattern.
func TestPrefixQueryIsLiteral(t *testing.T) {
	words := vocabFrom("cat", "c.t", "c.tera")

	matched, err := PrefixStrategy{}.Match(words, "c.t", 9)
	if err != nil {
		t.Fatalf("Match failed: %v", err)
	}
	assertTexts(t, matched, "c.t", "c.tera")
}

func TestPrefixCaseSensitive(t *testing.T) {
	words := vocabFrom("Cat", "cat")

	matched, err := PrefixStrategy{}.Match(words, "ca", 9)
	if err != nil {
		t.Fatalf("Match failed: %v", err)
	}
	assertTexts(t, matched, "cat")
}

func TestPrefixEmptyQuery(t *testing.T) {
	matched, err := PrefixStrategy{}.Match(vocabFrom("cat"), "", 9)
	if err != nil {
		t.Fatalf("Match failed: %v", err)
	}
	if len(matched) != 0 {
		t.Errorf("Expected empty result for empty query, got %v", texts(matched))
	}
}
