package match

import (
	"regexp"

	"github.com/spellserve/spellserve/pkg/vocab"
)

// PrefixStrategy keeps every candidate whose text starts with the
// literal query string, preserving the candidates' original order.
// Matching is case-sensitive and the query is never interpreted as a
// pattern: metacharacters are quoted before the expression is built.
type PrefixStrategy struct{}

func (PrefixStrategy) ID() string { return PrefixID }

func (PrefixStrategy) Available() bool { return true }

func (PrefixStrategy) Match(candidates vocab.Vocabulary, query string, limit int) (vocab.Vocabulary, error) {
	if query == "" {
		return nil, nil
	}

	re, err := regexp.Compile("^" + regexp.QuoteMeta(query))
	if err != nil {
		return nil, err
	}

	var matched vocab.Vocabulary
	for _, w := range candidates {
		if re.MatchString(w.Text) {
			matched = append(matched, w)
			if limit > 0 && len(matched) >= limit {
				break
			}
		}
	}
	return matched, nil
}
