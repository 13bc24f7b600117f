package render

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	styles "github.com/charmbracelet/glamour/styles"
)

// DefaultStyle is the glamour style used when none is configured.
const DefaultStyle = styles.TokyoNightStyle

// Terminal renders markdown as styled terminal text wrapped to a width.
type Terminal struct {
	width    int
	renderer *glamour.TermRenderer
}

// NewTerminal builds a terminal renderer. A width of zero disables wrapping.
func NewTerminal(style string, width int) (*Terminal, error) {
	if style == "" {
		style = DefaultStyle
	}
	if width < 0 {
		width = 0
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("terminal renderer: %w", err)
	}
	return &Terminal{width: width, renderer: r}, nil
}

// Width reports the wrap width the renderer was built for.
func (t *Terminal) Width() int {
	return t.width
}

// Render implements Renderer.
func (t *Terminal) Render(src string) (string, error) {
	return t.renderer.Render(src)
}

// KnownStyle reports whether name is one of glamour's standard styles.
func KnownStyle(name string) bool {
	_, ok := styles.DefaultStyles[name]
	return ok
}
