// Package markdown renders merged education prose and FAQ answers to HTML
// for the site renderer. Definitions author long-form strings as markdown;
// short labels pass through untouched.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// Renderer wraps a goldmark engine. It is stateless, so a single instance
// can be shared across requests without locking.
type Renderer struct {
	engine goldmark.Markdown
}

// NewRenderer constructs a renderer with GFM extensions and auto heading ids.
func NewRenderer() *Renderer {
	return &Renderer{
		engine: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
	}
}

// Render converts one markdown string into HTML.
func (r *Renderer) Render(source string) (string, error) {
	if r == nil || r.engine == nil {
		return "", fmt.Errorf("markdown: renderer not initialised")
	}
	var buf bytes.Buffer
	if err := r.engine.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("markdown render: %w", err)
	}
	return buf.String(), nil
}
