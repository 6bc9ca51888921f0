// Package classify derives category and content-type labels from document
// paths. Classification is a pure function of the path: the category is the
// top-level directory, the content type comes from filename conventions.
package classify

import "strings"

// ContentType is the fine-grained document label inferred from filename
// conventions.
type ContentType string

// Known content types.
const (
	CheatSheet   ContentType = "Cheat Sheet"
	Introduction ContentType = "Introduction"
	Tutorial     ContentType = "Tutorial"
	Reference    ContentType = "Reference"
	Guide        ContentType = "Guide"
)

// DefaultCategory is assigned to documents living directly at the corpus root.
const DefaultCategory = "other"

// contentTypeRules map keyword groups to labels. Rules are evaluated in
// order and the first group with a keyword present in the path wins, so the
// priority stays explicit even when several keywords appear in one path.
var contentTypeRules = []struct {
	keywords []string
	label    ContentType
}{
	{keywords: []string{"cheat-sheet", "cheatsheet"}, label: CheatSheet},
	{keywords: []string{"introduction", "intro"}, label: Introduction},
	{keywords: []string{"example", "tutorial"}, label: Tutorial},
	{keywords: []string{"reference"}, label: Reference},
}

// Classify derives (category, content type) from a slash-separated path
// relative to the corpus root.
func Classify(path string) (string, ContentType) {
	return Category(path), DetectContentType(path)
}

// Category returns the first path segment, or DefaultCategory for documents
// without one.
func Category(path string) string {
	path = strings.Trim(path, "/")
	if i := strings.Index(path, "/"); i > 0 {
		return path[:i]
	}
	return DefaultCategory
}

// DetectContentType scans the path case-insensitively against the ordered
// keyword rules, defaulting to Guide.
func DetectContentType(path string) ContentType {
	lowered := strings.ToLower(path)
	for _, rule := range contentTypeRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lowered, kw) {
				return rule.label
			}
		}
	}
	return Guide
}
