// Package result holds the search hit model and its ranking order.
package result

import "github.com/docpilot/docsearch/internal/domain/document/classify"

// Result is a single search hit.
type Result struct {
	title       string
	url         string
	snippet     string
	category    string
	contentType classify.ContentType
	score       int
}

// New creates a search result.
func New(
	title, url, snippet, category string,
	contentType classify.ContentType, score int,
) Result {
	return Result{
		title:       title,
		url:         url,
		snippet:     snippet,
		category:    category,
		contentType: contentType,
		score:       score,
	}
}

// Title returns the document title.
func (r *Result) Title() string { return r.title }

// URL returns the serving URL derived from the document path.
func (r *Result) URL() string { return r.url }

// Snippet returns the match preview, empty when only the title matched.
func (r *Result) Snippet() string { return r.snippet }

// Category returns the document category.
func (r *Result) Category() string { return r.category }

// ContentType returns the document content-type label.
func (r *Result) ContentType() classify.ContentType { return r.contentType }

// Score returns the relevance score.
func (r *Result) Score() int { return r.score }

// Less orders results for ranking: score descending, then title ascending.
// Both keys are required for deterministic output when scores tie.
func Less(a, b *Result) bool {
	if a.score != b.score {
		return a.score > b.score
	}
	return a.title < b.title
}
