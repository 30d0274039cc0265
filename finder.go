package rtfm

import (
	"regexp"
	"sort"
	"strings"
)

// MaxMatches is the number of ranked results returned per query.
const MaxMatches = 8

// Match is a single fuzzy-match hit: the entry that matched and the offset
// within its key where the match begins.
type Match struct {
	Entry  Entry
	Offset int
}

// Find ranks entries against a query using subsequence matching: the
// query's characters must appear in order, not necessarily contiguously,
// within the key, case-insensitively. Results are ordered by match start
// offset with ties broken by key, then truncated to MaxMatches. An empty
// query matches every entry at offset 0.
func Find(query string, entries []Entry) []Match {
	re := regexp.MustCompile(subsequencePattern(query))

	matches := make([]Match, 0, len(entries))
	for _, e := range entries {
		loc := re.FindStringIndex(e.Key)
		if loc == nil {
			continue
		}
		matches = append(matches, Match{Entry: e, Offset: loc[0]})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Offset != matches[j].Offset {
			return matches[i].Offset < matches[j].Offset
		}
		return matches[i].Entry.Key < matches[j].Entry.Key
	})

	if len(matches) > MaxMatches {
		matches = matches[:MaxMatches]
	}
	return matches
}

// subsequencePattern builds a case-insensitive pattern with each query
// character escaped and a lazy any-characters gap between consecutive
// characters. Escaping every character guarantees the pattern compiles.
func subsequencePattern(query string) string {
	parts := make([]string, 0, len(query))
	for _, r := range query {
		parts = append(parts, regexp.QuoteMeta(string(r)))
	}
	return "(?i)" + strings.Join(parts, ".*?")
}
