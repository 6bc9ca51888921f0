// Package score implements the additive relevance heuristic.
//
// Points are awarded in a fixed priority so ties stay explainable: exact
// title match, partial title match with a prefix bonus, body occurrence
// frequency, category match, and a mild bias toward short titles. Body
// frequency is not normalized by document length; five occurrences score the
// same in a hundred-word note as in a three-thousand-word page.
package score

import (
	"strings"
	"unicode/utf8"
)

// Point values of the ranking heuristic.
const (
	TitleExact       = 100
	TitleContains    = 50
	TitlePrefix      = 20
	BodyOccurrence   = 2
	CategoryContains = 10
	ShortTitle       = 5

	shortTitleLimit = 20
)

// Match holds the outcome of evaluating one document against a query.
type Match struct {
	Points   int
	TitleHit bool
	BodyHits int
}

// Qualifies reports whether the document belongs in the result set. Category
// and short-title bonuses alone never qualify a document; at least one real
// substring match in title or body is required.
func (m Match) Qualifies() bool { return m.TitleHit || m.BodyHits > 0 }

// Evaluate scores a document against a query. All comparisons are
// case-insensitive; body occurrences are counted without overlap.
func Evaluate(query, title, body, category string) Match {
	q := strings.ToLower(query)
	t := strings.ToLower(title)

	var m Match
	switch {
	case t == q:
		m.Points += TitleExact
		m.TitleHit = true
	case strings.Contains(t, q):
		m.Points += TitleContains
		m.TitleHit = true
		if strings.HasPrefix(t, q) {
			m.Points += TitlePrefix
		}
	}

	m.BodyHits = strings.Count(strings.ToLower(body), q)
	m.Points += m.BodyHits * BodyOccurrence

	if strings.Contains(strings.ToLower(category), q) {
		m.Points += CategoryContains
	}

	if utf8.RuneCountInString(title) < shortTitleLimit {
		m.Points += ShortTitle
	}

	return m
}
