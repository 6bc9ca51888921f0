package search

import (
	"context"

	"github.com/docpilot/docsearch/internal/domain/document"
)

// CorpusReader loads the full document corpus for one query.
type CorpusReader interface {
	Load(ctx context.Context) ([]document.Document, error)
}
