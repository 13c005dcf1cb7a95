package match

import (
	"unicode/utf8"

	"github.com/spellserve/spellserve/internal/utils"
	"github.com/spellserve/spellserve/pkg/vocab"
)

// LengthTolerance is the half-width of the length window filter.
const LengthTolerance = 2

// FilterByLength keeps words whose rune length lies within
// [max(1, |query|-2), |query|+2]. An empty query returns the input
// unchanged. The result is an order-preserving subsequence.
func FilterByLength(words vocab.Vocabulary, query string) vocab.Vocabulary {
	if query == "" {
		return words
	}

	queryLen := utf8.RuneCountInString(query)
	minLen := queryLen - LengthTolerance
	if minLen < 1 {
		minLen = 1
	}
	maxLen := queryLen + LengthTolerance

	filtered := make(vocab.Vocabulary, 0, len(words))
	for _, w := range words {
		n := utf8.RuneCountInString(w.Text)
		if n >= minLen && n <= maxLen {
			filtered = append(filtered, w)
		}
	}
	return filtered
}

// FilterByFirstChar keeps words whose first rune, case-folded, equals
// the query's first rune. An empty query returns the input unchanged.
func FilterByFirstChar(words vocab.Vocabulary, query string) vocab.Vocabulary {
	if query == "" {
		return words
	}

	queryFirst := utils.FirstRune(query)
	filtered := make(vocab.Vocabulary, 0, len(words))
	for _, w := range words {
		if w.Text == "" {
			continue
		}
		if utils.EqualFold(utils.FirstRune(w.Text), queryFirst) {
			filtered = append(filtered, w)
		}
	}
	return filtered
}
