// Package search orchestrates one query: load the corpus, filter, score,
// snippet, rank, truncate.
package search

import (
	"context"
	"fmt"
	"sort"

	"github.com/docpilot/docsearch/internal/domain/search/request"
	"github.com/docpilot/docsearch/internal/domain/search/result"
	"github.com/docpilot/docsearch/internal/domain/search/score"
	"github.com/docpilot/docsearch/internal/domain/search/snippet"
)

// DefaultMaxResults caps the ranked result set.
const DefaultMaxResults = 20

// Service is the query engine. It holds no per-query state; the corpus is
// re-read on every call, so concurrent searches need no coordination.
type Service struct {
	corpus        CorpusReader
	maxResults    int
	snippetLength int
}

// New creates a search service.
func New(corpus CorpusReader) *Service {
	return &Service{
		corpus:        corpus,
		maxResults:    DefaultMaxResults,
		snippetLength: snippet.DefaultMaxLength,
	}
}

// WithLimits overrides the result cap and snippet length.
func (s *Service) WithLimits(maxResults, snippetLength int) *Service {
	if maxResults > 0 {
		s.maxResults = maxResults
	}
	if snippetLength > 0 {
		s.snippetLength = snippetLength
	}
	return s
}

// Search evaluates a validated request against the corpus and returns the
// ranked result set. A query that matches nothing returns an empty slice,
// not an error.
func (s *Service) Search(ctx context.Context, req *request.Request) ([]result.Result, error) {
	docs, err := s.corpus.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}

	results := make([]result.Result, 0, len(docs))
	for i := range docs {
		doc := &docs[i]
		if req.HasCategory() && doc.Category() != req.Category() {
			continue
		}

		m := score.Evaluate(req.Query(), doc.Title(), doc.Body(), doc.Category())
		if !m.Qualifies() {
			continue
		}

		// Snippets preview body matches only; a title-only hit carries none.
		var snip string
		if m.BodyHits > 0 {
			snip = snippet.Extract(doc.Body(), req.Query(), s.snippetLength)
		}

		results = append(results, result.New(
			doc.Title(), doc.URL(), snip, doc.Category(), doc.ContentType(), m.Points,
		))
	}

	sort.Slice(results, func(i, j int) bool {
		return result.Less(&results[i], &results[j])
	})

	if len(results) > s.maxResults {
		results = results[:s.maxResults]
	}
	return results, nil
}
