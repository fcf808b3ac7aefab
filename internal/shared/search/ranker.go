// Package search implements fuzzy ranking of free-text queries against small
// in-memory candidate pools using token-set similarity.
package search

import (
	"sort"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

const (
	// DefaultThreshold is the minimum score for explicit searches.
	DefaultThreshold = 50

	// AutoThreshold is the stricter minimum applied when search is triggered
	// implicitly by an ordinary text message.
	AutoThreshold = 60

	// DefaultLimit is the default number of ranked results returned.
	DefaultLimit = 5

	// MinQueryLen is the minimum query length in runes. Callers reject
	// shorter queries before invoking the ranker.
	MinQueryLen = 2
)

// Candidate is one searchable row: the entity ID and its searchable text
// (primary text field concatenated with any keyword field).
type Candidate struct {
	ID   uint
	Text string
}

// Match is a ranked result.
type Match struct {
	ID    uint
	Score int
}

// BuildText joins the non-empty parts of a candidate's searchable string.
func BuildText(parts ...string) string {
	joined := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			joined = append(joined, p)
		}
	}
	return strings.Join(joined, " ")
}

// QueryTooShort reports whether a query is below the minimum length.
func QueryTooShort(query string, minLen int) bool {
	if minLen <= 0 {
		minLen = MinQueryLen
	}
	return len([]rune(strings.TrimSpace(query))) < minLen
}

// normalize splits comma-separated keyword lists into ordinary tokens so
// "scholarship,stipend,payment" matches the query token "payment".
func normalize(text string) string {
	return strings.ReplaceAll(text, ",", " ")
}

// Rank scores every candidate against the query with the token-set ratio,
// keeps scores >= threshold and returns the top results ordered by score
// descending. Ties keep candidate order (stable sort). An empty pool yields
// an empty result, not an error.
//
// Internally twice the limit is collected before threshold filtering so a
// strict threshold does not starve the final list.
func Rank(query string, candidates []Candidate, limit, threshold int) []Match {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if len(candidates) == 0 {
		return []Match{}
	}

	query = normalize(query)
	scored := make([]Match, 0, len(candidates))
	for _, c := range candidates {
		score := fuzzy.TokenSetRatio(query, normalize(c.Text))
		scored = append(scored, Match{ID: c.ID, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	raw := limit * 2
	if raw > len(scored) {
		raw = len(scored)
	}
	scored = scored[:raw]

	results := make([]Match, 0, limit)
	for _, m := range scored {
		if m.Score >= threshold {
			results = append(results, m)
		}
		if len(results) == limit {
			break
		}
	}
	return results
}
