// Package request validates search queries before any corpus access happens.
package request

import (
	"fmt"
	"strings"

	"github.com/docpilot/docsearch/internal/domain"
)

// MaxQueryLength is the maximum allowed search query length.
const MaxQueryLength = 1024

// Request is a validated search query.
type Request struct {
	query    string
	category string
}

// New validates and normalizes search parameters. The query is required and
// surrounding whitespace is trimmed; category is an optional exact-match
// filter.
func New(query, category string) (Request, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Request{}, fmt.Errorf("%w: query is required", domain.ErrInvalidQuery)
	}
	if len(query) > MaxQueryLength {
		return Request{}, fmt.Errorf("%w: query too long (max %d chars)", domain.ErrInvalidQuery, MaxQueryLength)
	}
	return Request{query: query, category: category}, nil
}

// Query returns the free-text query.
func (r *Request) Query() string { return r.query }

// Category returns the category filter, empty when unfiltered.
func (r *Request) Category() string { return r.category }

// HasCategory reports whether a category filter was supplied.
func (r *Request) HasCategory() bool { return r.category != "" }
