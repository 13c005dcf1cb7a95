package match

import (
	"sort"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"

	"github.com/spellserve/spellserve/internal/utils"
	"github.com/spellserve/spellserve/pkg/vocab"
)

// DefaultScoreCutoff is the minimum similarity score, on a 0..100
// scale, for a candidate to survive fuzzy matching.
const DefaultScoreCutoff = 65

// FuzzyStrategy scores candidates by normalized Levenshtein similarity
// expressed as a percentage. Survivors are ordered by descending score;
// near-equal scores are stabilized toward length-similar words by a
// secondary key, the absolute candidate/query length difference.
type FuzzyStrategy struct {
	Cutoff float64
}

// NewFuzzyStrategy creates a fuzzy strategy with the given score
// cutoff. Non-positive cutoffs fall back to DefaultScoreCutoff.
func NewFuzzyStrategy(cutoff float64) *FuzzyStrategy {
	if cutoff <= 0 {
		cutoff = DefaultScoreCutoff
	}
	return &FuzzyStrategy{Cutoff: cutoff}
}

func (s *FuzzyStrategy) ID() string { return FuzzyID }

func (s *FuzzyStrategy) Available() bool { return true }

type scoredWord struct {
	word    vocab.Word
	score   float64
	lenDiff int
}

func (s *FuzzyStrategy) Match(candidates vocab.Vocabulary, query string, limit int) (vocab.Vocabulary, error) {
	if query == "" {
		return nil, nil
	}

	queryLen := utf8.RuneCountInString(query)
	var matches []scoredWord
	for _, w := range candidates {
		similarity, err := edlib.StringsSimilarity(query, w.Text, edlib.Levenshtein)
		if err != nil {
			continue
		}
		score := float64(similarity) * 100
		if score < s.Cutoff {
			continue
		}
		matches = append(matches, scoredWord{
			word:    w,
			score:   score,
			lenDiff: utils.Abs(utf8.RuneCountInString(w.Text) - queryLen),
		})
	}

	rankScored(matches)

	words := make(vocab.Vocabulary, 0, len(matches))
	for _, m := range matches {
		words = append(words, m.word)
	}
	return truncate(words, limit), nil
}

// rankScored orders matches by descending score, breaking ties by
// ascending length difference. The sort is stable so equal keys keep
// their candidate order.
func rankScored(matches []scoredWord) {
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		return matches[i].lenDiff < matches[j].lenDiff
	})
}
