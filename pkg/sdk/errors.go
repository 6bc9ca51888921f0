package sdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidQuery mirrors the server's invalid_query error.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrCorpusUnavailable mirrors the server's corpus_unavailable error.
	// It is retryable: the corpus may become reachable again.
	ErrCorpusUnavailable = errors.New("corpus unavailable")
)

// APIError is a structured error returned by the docsearch API.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("docsearch: %s (%d): %s", e.Code, e.StatusCode, e.Message)
}

// Unwrap maps machine-readable codes to sentinel errors so callers can use
// errors.Is.
func (e *APIError) Unwrap() error {
	switch e.Code {
	case "invalid_query":
		return ErrInvalidQuery
	case "corpus_unavailable":
		return ErrCorpusUnavailable
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Code = body.Code
		apiErr.Message = body.Message
	} else {
		apiErr.Code = "unknown"
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
