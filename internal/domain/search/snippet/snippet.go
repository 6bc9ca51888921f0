// Package snippet extracts bounded excerpts around query matches.
package snippet

import (
	"strings"
	"unicode/utf8"
)

const (
	// DefaultMaxLength is the excerpt budget in characters, ellipses excluded.
	DefaultMaxLength = 200
	// boundaryWindow is how far an excerpt edge may shrink to land on a
	// word boundary instead of splitting a word.
	boundaryWindow = 50

	ellipsis = "..."
)

// Extract returns a window of at most maxLength characters centered on the
// first case-insensitive occurrence of query in body. Without a match it
// returns the leading maxLength characters. Newlines are replaced with
// spaces, surrounding whitespace is trimmed, and edges that cut into the
// document are moved to the nearest word boundary and marked with an
// ellipsis. Edges at the true document start or end stay as they are.
func Extract(body, query string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}

	runes := []rune(body)
	lowered := strings.ToLower(body)

	idx := -1
	if query != "" {
		idx = strings.Index(lowered, strings.ToLower(query))
	}
	if idx < 0 {
		head := runes
		if len(head) > maxLength {
			head = head[:maxLength]
		}
		return flatten(string(head)) + ellipsis
	}

	matchAt := utf8.RuneCountInString(lowered[:idx])
	start := matchAt - maxLength/2
	if start < 0 {
		start = 0
	}
	end := start + maxLength
	if end > len(runes) {
		end = len(runes)
	}

	window := runes[start:end]
	var prefix, suffix string

	if start > 0 {
		if cut := forwardBoundary(window); cut > 0 {
			window = window[cut:]
		}
		prefix = ellipsis
	}
	if end < len(runes) {
		if cut := backwardBoundary(window); cut > 0 {
			window = window[:cut]
		}
		suffix = ellipsis
	}

	return prefix + flatten(string(window)) + suffix
}

// forwardBoundary returns the index just past the first space within the
// leading boundaryWindow runes, or 0 when none is found.
func forwardBoundary(window []rune) int {
	limit := boundaryWindow
	if limit > len(window) {
		limit = len(window)
	}
	for i := 0; i < limit; i++ {
		if window[i] == ' ' {
			return i + 1
		}
	}
	return 0
}

// backwardBoundary returns the index of the last space within the trailing
// boundaryWindow runes, or 0 when none is found.
func backwardBoundary(window []rune) int {
	limit := len(window) - boundaryWindow
	if limit < 0 {
		limit = 0
	}
	for i := len(window) - 1; i >= limit; i-- {
		if window[i] == ' ' {
			return i
		}
	}
	return 0
}

// flatten collapses newlines to spaces and trims surrounding whitespace.
func flatten(s string) string {
	s = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
	return strings.TrimSpace(s)
}
