/*
Package vocab loads named word lists into an ordered in-memory vocabulary.

Each list is a plain text file, one word per line, read in file order.
Lists are concatenated in the order they were requested and never
deduplicated: the same text appearing in two lists represents two
distinct entries, one per source list.
*/
package vocab

import "strings"

// Word is a single dictionary entry tagged with the list it came from.
// Words are created once at load time and never mutated.
type Word struct {
	Text   string
	Source string
}

// Vocabulary is an ordered sequence of words, the concatenation of all
// requested lists in request order.
type Vocabulary []Word

// ParseSelector splits a comma separated list of vocabulary names into
// trimmed, lowercased names plus the canonical selector string used in
// cache keys. Empty segments are dropped.
func ParseSelector(raw string) ([]string, string) {
	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names, strings.Join(names, ",")
}
