package match

import (
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/hbollon/go-edlib"
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/spellserve/spellserve/pkg/vocab"
)

// DefaultMaxEditDistance bounds the delete depth of the index and the
// edit distance of returned matches.
const DefaultMaxEditDistance = 2

// DeleteIndex is a symmetric-delete projection of a vocabulary: every
// string reachable from a dictionary word by deleting up to
// maxEditDistance characters maps back to the words that produced it.
// Delete variants of related words share long prefixes, so they are
// kept in a patricia trie rather than a flat map; each trie item holds
// the producing word positions in vocabulary order.
//
// The index is built once per vocabulary and owned by the composition
// root. It is read-only after Build.
type DeleteIndex struct {
	words           vocab.Vocabulary
	trie            *patricia.Trie
	wordSet         map[string]bool
	maxEditDistance int
}

// BuildDeleteIndex constructs the index for a vocabulary. A
// non-positive maxEditDistance falls back to DefaultMaxEditDistance.
func BuildDeleteIndex(words vocab.Vocabulary, maxEditDistance int) *DeleteIndex {
	if maxEditDistance <= 0 {
		maxEditDistance = DefaultMaxEditDistance
	}
	idx := &DeleteIndex{
		words:           words,
		trie:            patricia.NewTrie(),
		wordSet:         make(map[string]bool, len(words)),
		maxEditDistance: maxEditDistance,
	}
	for pos, w := range words {
		idx.wordSet[w.Text] = true
		for _, variant := range deleteVariants(w.Text, maxEditDistance) {
			idx.add(variant, pos)
		}
	}
	return idx
}

// WordCount returns the number of vocabulary entries behind the index.
func (idx *DeleteIndex) WordCount() int {
	return len(idx.words)
}

// MaxEditDistance returns the delete depth the index was built with.
func (idx *DeleteIndex) MaxEditDistance() int {
	return idx.maxEditDistance
}

func (idx *DeleteIndex) add(variant string, pos int) {
	key := patricia.Prefix(variant)
	if item := idx.trie.Get(key); item != nil {
		idx.trie.Set(key, append(item.([]int), pos))
		return
	}
	idx.trie.Insert(key, []int{pos})
}

// deleteVariants returns the word followed by every distinct string
// reachable by deleting up to maxDistance runes, in breadth-first
// generation order. The order is deterministic: fewer deletions come
// first, and within one level variants appear in left-to-right deletion
// position order. Lookup relies on this to break distance ties by
// first-seen order. Deletions are counted in runes, matching the
// rune-based distance filter; vocabularies carry accented words.
func deleteVariants(word string, maxDistance int) []string {
	variants := []string{word}
	seen := mapset.NewThreadUnsafeSet(word)

	level := [][]rune{[]rune(word)}
	for depth := 0; depth < maxDistance; depth++ {
		var next [][]rune
		for _, current := range level {
			if len(current) <= 1 {
				continue
			}
			for i := 0; i < len(current); i++ {
				deleted := make([]rune, 0, len(current)-1)
				deleted = append(deleted, current[:i]...)
				deleted = append(deleted, current[i+1:]...)
				if seen.Add(string(deleted)) {
					variants = append(variants, string(deleted))
					next = append(next, deleted)
				}
			}
		}
		level = next
	}
	return variants
}

// Lookup probes the query and its own delete variants against the
// index. Each hit carries the true edit distance between query and the
// dictionary word, computed rather than bounded by delete count; hits
// beyond the index's maximum distance are discarded. Results are
// ordered by ascending distance with first-seen ties, deduplicated by
// word text so a word present in several source lists contributes only
// its first occurrence, and truncated to limit.
func (idx *DeleteIndex) Lookup(query string, limit int) vocab.Vocabulary {
	if query == "" {
		return nil
	}

	type hit struct {
		word     vocab.Word
		distance int
	}
	var hits []hit
	seen := mapset.NewThreadUnsafeSet[string]()

	for _, variant := range deleteVariants(query, idx.maxEditDistance) {
		item := idx.trie.Get(patricia.Prefix(variant))
		if item == nil {
			continue
		}
		for _, pos := range item.([]int) {
			w := idx.words[pos]
			if !seen.Add(w.Text) {
				continue
			}
			distance := edlib.LevenshteinDistance(query, w.Text)
			if distance > idx.maxEditDistance {
				continue
			}
			hits = append(hits, hit{word: w, distance: distance})
		}
	}

	// stable: equal distances keep scan order
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].distance < hits[j].distance
	})

	words := make(vocab.Vocabulary, 0, len(hits))
	for _, h := range hits {
		words = append(words, h.word)
	}
	return truncate(words, limit)
}

// Segment decomposes the query into known dictionary words separated by
// spaces, e.g. "catdog" becomes "cat dog". When no decomposition into
// two or more words exists the query is returned unchanged.
func (idx *DeleteIndex) Segment(query string) string {
	runes := []rune(query)
	n := len(runes)
	if n == 0 {
		return query
	}

	// cut[i] is the start of the last word in a segmentation of the
	// first i runes, or -1 when that prefix cannot be segmented.
	cut := make([]int, n+1)
	for i := 1; i <= n; i++ {
		cut[i] = -1
		for j := 0; j < i; j++ {
			if j > 0 && cut[j] == -1 {
				continue
			}
			if idx.wordSet[string(runes[j:i])] {
				cut[i] = j
				break
			}
		}
	}
	if cut[n] == -1 {
		return query
	}

	var parts []string
	for i := n; i > 0; i = cut[i] {
		parts = append(parts, string(runes[cut[i]:i]))
	}
	if len(parts) < 2 {
		return query
	}
	for l, r := 0, len(parts)-1; l < r; l, r = l+1, r-1 {
		parts[l], parts[r] = parts[r], parts[l]
	}
	return strings.Join(parts, " ")
}

// SymSpellStrategy answers queries from a DeleteIndex. The index is a
// derived projection of the vocabulary and is swapped atomically by the
// owner on vocabulary changes; until an index is set the strategy
// reports itself unavailable.
type SymSpellStrategy struct {
	index    *DeleteIndex
	compound bool
}

// NewSymSpellStrategy creates the strategy without an index. Compound
// mode enables the segmentation pre-pass on lookups.
func NewSymSpellStrategy(compound bool) *SymSpellStrategy {
	return &SymSpellStrategy{compound: compound}
}

func (s *SymSpellStrategy) ID() string { return SymSpellID }

func (s *SymSpellStrategy) Available() bool { return s.index != nil }

// SetIndex installs (or clears, with nil) the backing index.
func (s *SymSpellStrategy) SetIndex(idx *DeleteIndex) {
	s.index = idx
}

// Match ignores the candidate list: the index already is a reduced
// projection of the full vocabulary. With compound mode on, the query
// is first decomposed into known sub-words and, only when the
// decomposition changes the string, the lookup runs against the
// segmented form; otherwise it runs against the query directly.
func (s *SymSpellStrategy) Match(_ vocab.Vocabulary, query string, limit int) (vocab.Vocabulary, error) {
	if query == "" {
		return nil, nil
	}
	if s.index == nil {
		return nil, ErrStrategyUnavailable
	}

	lookup := query
	if s.compound {
		if segmented := s.index.Segment(query); segmented != query {
			lookup = segmented
		}
	}
	return s.index.Lookup(lookup, limit), nil
}
