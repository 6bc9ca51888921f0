package request

import (
	"errors"
	"strings"
	"testing"

	"github.com/docpilot/docsearch/internal/domain"
)

func TestNew_Valid(t *testing.T) {
	req, err := New("bubble sort", "algorithms")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Query() != "bubble sort" {
		t.Errorf("Query = %q", req.Query())
	}
	if req.Category() != "algorithms" {
		t.Errorf("Category = %q", req.Category())
	}
	if !req.HasCategory() {
		t.Error("expected HasCategory")
	}
}

func TestNew_TrimsWhitespace(t *testing.T) {
	req, err := New("  sort  ", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Query() != "sort" {
		t.Errorf("Query = %q, want %q", req.Query(), "sort")
	}
	if req.HasCategory() {
		t.Error("expected no category filter")
	}
}

func TestNew_EmptyQuery(t *testing.T) {
	for _, q := range []string{"", "   ", "\n\t"} {
		_, err := New(q, "")
		if !errors.Is(err, domain.ErrInvalidQuery) {
			t.Errorf("New(%q): expected ErrInvalidQuery, got %v", q, err)
		}
	}
}

func TestNew_QueryTooLong(t *testing.T) {
	_, err := New(strings.Repeat("a", MaxQueryLength+1), "")
	if !errors.Is(err, domain.ErrInvalidQuery) {
		t.Errorf("expected ErrInvalidQuery, got %v", err)
	}
}
