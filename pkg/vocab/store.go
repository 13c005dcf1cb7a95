package vocab

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/text/encoding/charmap"
)

// ErrVocabularyNotFound reports a requested list with no backing file.
var ErrVocabularyNotFound = errors.New("vocabulary list not found")

// Store reads word lists from a directory. Each list named "english" is
// backed by a file "english.txt" inside the directory.
type Store struct {
	dir string
}

// NewStore creates a store rooted at the given directory.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Load reads every named list and concatenates them in the order given.
// List files are ISO 8859-1 encoded (the lists ship in a legacy single
// byte encoding, not UTF-8). Line-end whitespace is stripped and blank
// lines are skipped.
func (s *Store) Load(names []string) (Vocabulary, error) {
	var words Vocabulary
	for _, name := range names {
		listWords, err := s.loadList(name)
		if err != nil {
			return nil, err
		}
		words = append(words, listWords...)
	}
	log.Debugf("Loaded %d words from %d lists", len(words), len(names))
	return words, nil
}

func (s *Store) loadList(name string) (Vocabulary, error) {
	path := filepath.Join(s.dir, name+".txt")
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q (expected %s)", ErrVocabularyNotFound, name, path)
		}
		return nil, fmt.Errorf("opening list %q: %w", name, err)
	}
	defer file.Close()

	var words Vocabulary
	scanner := bufio.NewScanner(charmap.ISO8859_1.NewDecoder().Reader(file))
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		words = append(words, Word{Text: text, Source: name})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading list %q: %w", name, err)
	}
	log.Debugf("List %q: %d words", name, len(words))
	return words, nil
}
