package preview

import (
	"log/slog"

	"github.com/kyaoi/mdedit/internal/render"
)

// TerminalFactory builds a terminal renderer for a wrap width.
type TerminalFactory func(width int) (render.Renderer, error)

// Pipeline renders source text into a Surface.
type Pipeline struct {
	html        render.Renderer
	newTerminal TerminalFactory
	terminal    render.Renderer
	width       int
	surface     *Surface
	source      string
}

// NewPipeline wires an HTML renderer and a terminal renderer factory to the
// surface.
func NewPipeline(html render.Renderer, newTerminal TerminalFactory, surface *Surface) *Pipeline {
	if surface == nil {
		surface = NewSurface()
	}
	return &Pipeline{
		html:        html,
		newTerminal: newTerminal,
		surface:     surface,
	}
}

// StyledTerminal returns a factory for glamour renderers with the given style.
func StyledTerminal(style string) TerminalFactory {
	return func(width int) (render.Renderer, error) {
		t, err := render.NewTerminal(style, width)
		if err != nil {
			return nil, err
		}
		return t, nil
	}
}

// Surface returns the document the pipeline writes to.
func (p *Pipeline) Surface() *Surface {
	return p.surface
}

// Source returns the source text of the last successful sync.
func (p *Pipeline) Source() string {
	return p.source
}

// Sync renders source and replaces the surface body and view. On error the
// surface keeps its previous contents.
func (p *Pipeline) Sync(source string) error {
	body, err := p.html.Render(source)
	if err != nil {
		return err
	}

	view := ""
	if p.terminal != nil {
		view, err = p.terminal.Render(source)
		if err != nil {
			return err
		}
	}

	p.surface.SetBody(body)
	p.surface.setView(view, p.width)
	p.source = source
	slog.Debug("Preview synced", "bytes", len(source), "html_bytes", len(body))
	return nil
}

// Resize rebuilds the terminal renderer for width and re-renders the last
// synced source.
func (p *Pipeline) Resize(width int) error {
	if width < 0 {
		width = 0
	}
	if p.terminal != nil && width == p.width {
		return nil
	}
	terminal, err := p.newTerminal(width)
	if err != nil {
		return err
	}
	p.terminal = terminal
	p.width = width

	view, err := terminal.Render(p.source)
	if err != nil {
		return err
	}
	p.surface.setView(view, width)
	return nil
}
