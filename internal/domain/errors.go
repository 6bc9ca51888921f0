package domain

import "errors"

var (
	// ErrInvalidQuery signals a missing or empty search query.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrCorpusUnavailable signals that the corpus root cannot be read.
	ErrCorpusUnavailable = errors.New("corpus unavailable")
)
