// Package render turns markdown source into HTML for the preview surface and
// into ANSI text for the terminal pane.
package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer maps markdown source to rendered output.
type Renderer interface {
	Render(src string) (string, error)
}

// Markdown renders GitHub-flavoured markdown to an HTML fragment. Raw HTML in
// the source is passed through untouched.
type Markdown struct {
	md goldmark.Markdown
}

// NewMarkdown returns the HTML renderer used for the preview body.
func NewMarkdown() *Markdown {
	return &Markdown{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

// Render implements Renderer.
func (m *Markdown) Render(src string) (string, error) {
	var buf bytes.Buffer
	if err := m.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}
