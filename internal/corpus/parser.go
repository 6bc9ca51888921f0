package corpus

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

// frontMatterRe matches a leading YAML front-matter block delimited by a
// "---" line pair.
var frontMatterRe = regexp.MustCompile(`(?ms)\A---\s*\n(.*?)\n---\s*\n?`)

// parseDocument splits front matter from the body and extracts a display
// title: the first markdown heading, or the filename without extension when
// the document has none. Front matter that is not valid YAML marks the
// whole document as malformed.
func parseDocument(relPath string, source []byte) (title, body string, err error) {
	fm, content := splitFrontMatter(source)
	if len(fm) > 0 {
		var meta map[string]any
		if err := yaml.Unmarshal(fm, &meta); err != nil {
			return "", "", fmt.Errorf("parse front matter: %w", err)
		}
	}

	title = firstHeading(content)
	if title == "" {
		base := filepath.Base(relPath)
		title = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return title, string(content), nil
}

// splitFrontMatter severs a leading front-matter block; files without one
// are returned whole as body.
func splitFrontMatter(source []byte) (fm, body []byte) {
	loc := frontMatterRe.FindSubmatchIndex(source)
	if len(loc) < 4 {
		return nil, source
	}
	return source[loc[2]:loc[3]], source[loc[1]:]
}

// firstHeading returns the text of the first heading in the markdown
// source, or "" when there is none.
func firstHeading(source []byte) string {
	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	var title string
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			title = strings.TrimSpace(string(h.Text(source)))
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return title
}
