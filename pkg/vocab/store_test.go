package vocab

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeList(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name+".txt"), data, 0644); err != nil {
		t.Fatalf("writing list %s: %v", name, err)
	}
}

func TestLoadOrderAndSources(t *testing.T) {
	dir := t.TempDir()
	writeList(t, dir, "english", []byte("cat\ncar \n\n cart\ndog\n"))
	writeList(t, dir, "english_uk", []byte("colour\ncat\n"))

	store := NewStore(dir)
	words, err := store.Load([]string{"english", "english_uk"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	expected := []Word{
		{"cat", "english"},
		{"car", "english"},
		{"cart", "english"},
		{"dog", "english"},
		{"colour", "english_uk"},
		{"cat", "english_uk"},
	}
	if len(words) != len(expected) {
		t.Fatalf("Expected %d words, got %d", len(expected), len(words))
	}
	for i, w := range expected {
		if words[i] != w {
			t.Errorf("Word %d: expected %v, got %v", i, w, words[i])
		}
	}
}

// Lists ship in ISO 8859-1, so a raw 0xE9 byte must decode to 'é'.
func TestLoadLatin1Encoding(t *testing.T) {
	dir := t.TempDir()
	writeList(t, dir, "french", []byte{'c', 'a', 'f', 0xE9, '\n'})

	store := NewStore(dir)
	words, err := store.Load([]string{"french"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(words) != 1 || words[0].Text != "café" {
		t.Errorf("Expected [café], got %v", words)
	}
}

func TestLoadMissingList(t *testing.T) {
	store := NewStore(t.TempDir())
	_, err := store.Load([]string{"klingon"})
	if !errors.Is(err, ErrVocabularyNotFound) {
		t.Errorf("Expected ErrVocabularyNotFound, got %v", err)
	}
}

func TestParseSelector(t *testing.T) {
	testCases := []struct {
		raw      string
		names    []string
		selector string
	}{
		{"english", []string{"english"}, "english"},
		{"english, english_uk", []string{"english", "english_uk"}, "english,english_uk"},
		{" English ,, ENGLISH_UK ", []string{"english", "english_uk"}, "english,english_uk"},
		{"", nil, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			names, selector := ParseSelector(tc.raw)
			if selector != tc.selector {
				t.Errorf("Selector: expected %q, got %q", tc.selector, selector)
			}
			if len(names) != len(tc.names) {
				t.Fatalf("Names: expected %v, got %v", tc.names, names)
			}
			for i := range names {
				if names[i] != tc.names[i] {
					t.Errorf("Name %d: expected %q, got %q", i, tc.names[i], names[i])
				}
			}
		})
	}
}
