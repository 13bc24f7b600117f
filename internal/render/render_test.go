package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownHeading(t *testing.T) {
	out, err := NewMarkdown().Render("# Hi")
	require.NoError(t, err)
	assert.Contains(t, out, "<h1>Hi</h1>")
}

func TestMarkdownIsDeterministic(t *testing.T) {
	src := "# Title\n\n- one\n- two\n\n| a | b |\n|---|---|\n| 1 | 2 |\n"
	r := NewMarkdown()
	first, err := r.Render(src)
	require.NoError(t, err)
	second, err := r.Render(src)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Contains(t, first, "<table>")
}

func TestMarkdownKeepsRawHTML(t *testing.T) {
	out, err := NewMarkdown().Render("<div class=\"note\">raw</div>\n")
	require.NoError(t, err)
	assert.Contains(t, out, `<div class="note">raw</div>`)
}

func TestTerminalRender(t *testing.T) {
	term, err := NewTerminal("", 40)
	require.NoError(t, err)
	assert.Equal(t, 40, term.Width())

	out, err := term.Render("# Hello\n\nworld")
	require.NoError(t, err)
	plain := ansi.Strip(out)
	assert.Contains(t, plain, "Hello")
	assert.Contains(t, plain, "world")
}

func TestKnownStyle(t *testing.T) {
	assert.True(t, KnownStyle("dark"))
	assert.True(t, KnownStyle(DefaultStyle))
	assert.False(t, KnownStyle("no-such-style"))
}

func TestFrontMatter(t *testing.T) {
	src := strings.Join([]string{
		"---",
		"title: Release notes ",
		"tags: [go, tui]",
		"---",
		"# Body",
	}, "\n")
	meta := FrontMatter(src)
	assert.Equal(t, "Release notes", meta.Title)
	assert.Equal(t, []string{"go", "tui"}, meta.Tags)

	assert.Equal(t, Meta{}, FrontMatter("# just a heading"))
}
