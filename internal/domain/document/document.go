// Package document holds the parsed corpus document model.
package document

import (
	"strings"

	"github.com/docpilot/docsearch/internal/domain/document/classify"
)

// Document is one parsed corpus document. Documents are ephemeral: they are
// reconstructed from the filesystem on every query and carry no identity
// beyond their path relative to the corpus root.
type Document struct {
	path        string
	title       string
	body        string
	category    string
	contentType classify.ContentType
}

// New creates a document from its parsed parts. path is slash-separated and
// relative to the corpus root; category and content type are derived from it.
func New(path, title, body string) Document {
	category, contentType := classify.Classify(path)
	return Document{
		path:        path,
		title:       title,
		body:        body,
		category:    category,
		contentType: contentType,
	}
}

// Path returns the document location relative to the corpus root.
func (d *Document) Path() string { return d.path }

// Title returns the display title.
func (d *Document) Title() string { return d.title }

// Body returns the plain content with front matter stripped.
func (d *Document) Body() string { return d.body }

// Category returns the coarse grouping derived from the top path segment.
func (d *Document) Category() string { return d.category }

// ContentType returns the label derived from filename conventions.
func (d *Document) ContentType() classify.ContentType { return d.contentType }

// URL returns the canonical serving URL: the path with its extension
// stripped, rooted at "/". It is always derived, never stored.
func (d *Document) URL() string {
	p := d.path
	if dot := strings.LastIndex(p, "."); dot > strings.LastIndex(p, "/") {
		p = p[:dot]
	}
	return "/" + p
}
