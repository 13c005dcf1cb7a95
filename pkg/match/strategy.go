/*
Package match narrows and ranks vocabulary words against a query.

Two cheap pre-filters (length window, first character) bound the input of
the expensive strategies. Three interchangeable strategies turn a
candidate list and a query into a ranked match list: literal prefix
matching, weighted fuzzy scoring, and symmetric-delete edit-distance
lookup against a precomputed index.
*/
package match

import (
	"errors"

	"github.com/spellserve/spellserve/pkg/vocab"
)

// Strategy identifiers as they appear in settings and cache keys.
const (
	PrefixID   = "regex"
	FuzzyID    = "fuzzy"
	SymSpellID = "symspell"
)

// ErrStrategyUnavailable reports a strategy whose backing structure is
// missing, e.g. a delete index that has not been built yet. Callers are
// expected to fall back to fuzzy scoring over the plain candidate list.
var ErrStrategyUnavailable = errors.New("matching strategy unavailable")

// Strategy ranks candidate words against a query. Implementations are
// deterministic for fixed inputs and never mutate the candidate slice.
// An empty query yields an empty result with no error.
type Strategy interface {
	ID() string
	Available() bool
	Match(candidates vocab.Vocabulary, query string, limit int) (vocab.Vocabulary, error)
}

func truncate(words vocab.Vocabulary, limit int) vocab.Vocabulary {
	if limit > 0 && len(words) > limit {
		return words[:limit]
	}
	return words
}
