package classify

import "testing"

func TestCategory(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"algorithms/sorting/bubble-sort.md", "algorithms"},
		{"data-structures/arrays.md", "data-structures"},
		{"readme.md", "other"},
		{"/leading/slash.md", "leading"},
		{"", "other"},
	}
	for _, tt := range tests {
		if got := Category(tt.path); got != tt.want {
			t.Errorf("Category(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestDetectContentType(t *testing.T) {
	tests := []struct {
		path string
		want ContentType
	}{
		{"go/slices-cheatsheet.md", CheatSheet},
		{"go/cheat-sheet-maps.md", CheatSheet},
		{"go/introduction.md", Introduction},
		{"go/intro.md", Introduction},
		{"go/channel-example.md", Tutorial},
		{"go/goroutines-tutorial.md", Tutorial},
		{"go/api-reference.md", Reference},
		{"go/error-handling.md", Guide},
		{"Go/INTRO.md", Introduction}, // case-insensitive
	}
	for _, tt := range tests {
		if got := DetectContentType(tt.path); got != tt.want {
			t.Errorf("DetectContentType(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestDetectContentType_PriorityOrder(t *testing.T) {
	// Several keywords in one path: the first rule group wins.
	if got := DetectContentType("reference/intro-tutorial.md"); got != Introduction {
		t.Errorf("expected Introduction to win over Tutorial and Reference, got %q", got)
	}
	if got := DetectContentType("reference/sorting-example.md"); got != Tutorial {
		t.Errorf("expected Tutorial to win over Reference, got %q", got)
	}
	if got := DetectContentType("reference/cheatsheet-intro.md"); got != CheatSheet {
		t.Errorf("expected CheatSheet to win over everything, got %q", got)
	}
}

func TestClassify(t *testing.T) {
	category, contentType := Classify("algorithms/sorting-reference.md")
	if category != "algorithms" {
		t.Errorf("category = %q, want %q", category, "algorithms")
	}
	if contentType != Reference {
		t.Errorf("contentType = %q, want %q", contentType, Reference)
	}
}
