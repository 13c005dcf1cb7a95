/*
Package engine orchestrates the query pipeline.

For each search the engine checks the result cache, applies the cheap
candidate filters, dispatches the active matching strategy, memoizes the
outcome and returns at most MaxResults (word, source) pairs. Settings
changes go through Reconfigure, which reloads the vocabulary, clears the
cache and rebuilds the delete index when needed; the reload-invalidates-
cache invariant lives here rather than in callback-mutated globals.
*/
package engine

import (
	"errors"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/spellserve/spellserve/pkg/cache"
	"github.com/spellserve/spellserve/pkg/match"
	"github.com/spellserve/spellserve/pkg/vocab"
)

// MaxResults is the hard ceiling on returned matches, applied after the
// strategy's own limit as defense in depth.
const MaxResults = 9

// PromptPlaceholder is the single item returned for an empty query.
const PromptPlaceholder = "Type in the word..."

// Settings is the host-facing configuration of the pipeline.
type Settings struct {
	// Method is one of "regex", "fuzzy" or "symspell".
	Method string
	// Vocabulary is a comma separated list of word list names.
	Vocabulary string
}

// Options tunes the strategies. Zero values select the defaults.
type Options struct {
	ScoreCutoff     float64
	MaxEditDistance int
	Compound        bool
	CacheSize       int
}

// Result is one ranked match handed to the host.
type Result struct {
	Word   string
	Source string
}

// Engine owns the vocabulary, the result cache, the strategy registry
// and the delete index. Searches take the read side of the lock,
// reconfiguration the write side; the cache guards itself.
type Engine struct {
	mu    sync.RWMutex
	store *vocab.Store
	cache *cache.Cache

	words    vocab.Vocabulary
	selector string
	settings Settings

	fuzzy      *match.FuzzyStrategy
	symspell   *match.SymSpellStrategy
	strategies map[string]match.Strategy

	maxEditDistance int
}

// New builds an engine around a vocabulary store and applies the
// initial settings. On a vocabulary load failure the engine is still
// returned, holding an empty vocabulary, so the host stays responsive;
// the error tells the caller what went wrong.
func New(store *vocab.Store, settings Settings, opts Options) (*Engine, error) {
	fuzzy := match.NewFuzzyStrategy(opts.ScoreCutoff)
	symspell := match.NewSymSpellStrategy(opts.Compound)
	prefix := match.PrefixStrategy{}

	e := &Engine{
		store:    store,
		cache:    cache.New(opts.CacheSize),
		fuzzy:    fuzzy,
		symspell: symspell,
		strategies: map[string]match.Strategy{
			prefix.ID():   prefix,
			fuzzy.ID():    fuzzy,
			symspell.ID(): symspell,
		},
		maxEditDistance: opts.MaxEditDistance,
	}
	return e, e.Reconfigure(settings)
}

// Reconfigure applies new settings: the vocabulary is reloaded, the
// cache cleared and, when the active method is edit-distance based, the
// delete index rebuilt. On load failure the engine keeps an empty
// vocabulary and every search yields empty results until the next
// successful Reconfigure.
func (e *Engine) Reconfigure(settings Settings) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	names, selector := vocab.ParseSelector(settings.Vocabulary)
	e.settings = settings
	e.selector = selector
	e.cache.Clear()

	words, err := e.store.Load(names)
	if err != nil {
		e.words = nil
		e.symspell.SetIndex(nil)
		log.Errorf("Vocabulary load failed: %v", err)
		return err
	}
	e.words = words

	if settings.Method == match.SymSpellID {
		e.symspell.SetIndex(match.BuildDeleteIndex(words, e.maxEditDistance))
		log.Debugf("Delete index rebuilt for %d words", len(words))
	} else {
		e.symspell.SetIndex(nil)
	}
	log.Debugf("Reconfigured: method=%s vocabulary=%s words=%d", settings.Method, selector, len(words))
	return nil
}

// Settings returns the active settings.
func (e *Engine) Settings() Settings {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.settings
}

// Search runs one query through the pipeline and returns at most
// MaxResults matches. A blank query returns the prompt placeholder
// without touching the cache. Internal failures degrade to an empty
// result with a logged diagnostic; no error reaches the caller.
func (e *Engine) Search(query string) []Result {
	query = strings.TrimSpace(query)
	if query == "" {
		return []Result{{Word: PromptPlaceholder}}
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	strategy, ok := e.strategies[e.settings.Method]
	if !ok {
		log.Warnf("Unknown matching method %q, using fuzzy", e.settings.Method)
		strategy = e.fuzzy
	}

	key := cache.Key{Query: query, Strategy: strategy.ID(), Vocabulary: e.selector}
	if words, hit := e.cache.Get(key); hit {
		return toResults(words)
	}

	words := e.dispatch(strategy, query)
	e.cache.Put(key, words)
	return toResults(words)
}

// CacheLen reports the number of memoized queries.
func (e *Engine) CacheLen() int {
	return e.cache.Len()
}

// Stats returns basic counters for diagnostics.
func (e *Engine) Stats() map[string]int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return map[string]int{
		"vocabularyWords": len(e.words),
		"cachedQueries":   e.cache.Len(),
	}
}

// dispatch narrows the vocabulary through the filter chain and runs the
// strategy. Edit-distance strategies get both filters; prefix matching
// gets only the first-character filter, since an exact prefix may have
// arbitrary length. Unavailable strategies fall back to fuzzy scoring
// over the filtered, non-indexed candidate list.
func (e *Engine) dispatch(strategy match.Strategy, query string) vocab.Vocabulary {
	candidates := e.words
	if strategy.ID() == match.PrefixID {
		candidates = match.FilterByFirstChar(candidates, query)
	} else {
		candidates = match.FilterByLength(candidates, query)
		candidates = match.FilterByFirstChar(candidates, query)
	}

	if !strategy.Available() {
		log.Warnf("Strategy %q unavailable, falling back to fuzzy", strategy.ID())
		strategy = e.fuzzy
	}

	words, err := strategy.Match(candidates, query, MaxResults)
	if err != nil {
		if errors.Is(err, match.ErrStrategyUnavailable) {
			words, err = e.fuzzy.Match(candidates, query, MaxResults)
		}
		if err != nil {
			log.Errorf("Matching %q failed: %v", query, err)
			return nil
		}
	}
	if len(words) > MaxResults {
		words = words[:MaxResults]
	}
	return words
}

// toResults copies cached words into fresh Result values, so callers
// can never alias the cache's backing slices.
func toResults(words vocab.Vocabulary) []Result {
	results := make([]Result, 0, len(words))
	for _, w := range words {
		results = append(results, Result{Word: w.Text, Source: w.Source})
	}
	return results
}
