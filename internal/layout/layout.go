// Package layout tracks which panes are visible and how tall they are.
package layout

// PaneID names one of the two panes.
type PaneID int

const (
	EditorPane PaneID = iota
	PreviewPane
)

func (p PaneID) String() string {
	switch p {
	case EditorPane:
		return "editor"
	case PreviewPane:
		return "preview"
	default:
		return "unknown"
	}
}

// Pane is a resizable column. HiddenNarrow hides it on narrow viewports only.
type Pane struct {
	ID           PaneID
	Offset       int
	Height       int
	HiddenNarrow bool
}

// Switch is a button that brings its pane into view on narrow viewports.
type Switch struct {
	Target PaneID
	Label  string
	Hidden bool
}

// Options configures a Controller.
type Options struct {
	// Breakpoint is the width below which only one pane is shown.
	Breakpoint int
	// Margin is subtracted from every pane height below its offset.
	Margin int
	// Offset is the number of rows above the panes.
	Offset int
}

// Controller owns the layout state of the editor and preview panes.
type Controller struct {
	Editor        Pane
	Preview       Pane
	EditorSwitch  Switch
	PreviewSwitch Switch

	breakpoint int
	margin     int
	width      int
	height     int
}

// New returns a controller showing the editor on narrow viewports.
func New(opts Options) *Controller {
	return &Controller{
		Editor:        Pane{ID: EditorPane, Offset: opts.Offset, Height: 1},
		Preview:       Pane{ID: PreviewPane, Offset: opts.Offset, Height: 1, HiddenNarrow: true},
		EditorSwitch:  Switch{Target: EditorPane, Label: "Editor", Hidden: true},
		PreviewSwitch: Switch{Target: PreviewPane, Label: "Preview"},
		breakpoint:    opts.Breakpoint,
		margin:        opts.Margin,
	}
}

// Toggle swaps the visible pane and the visible switch, then re-measures.
func (c *Controller) Toggle() {
	if c.EditorSwitch.Hidden {
		c.EditorSwitch.Hidden = false
		c.PreviewSwitch.Hidden = true
		c.Editor.HiddenNarrow = true
		c.Preview.HiddenNarrow = false
	} else {
		c.PreviewSwitch.Hidden = false
		c.EditorSwitch.Hidden = true
		c.Preview.HiddenNarrow = true
		c.Editor.HiddenNarrow = false
	}
	c.measure()
}

// Show makes id the visible pane on narrow viewports.
func (c *Controller) Show(id PaneID) {
	if c.Active() != id {
		c.Toggle()
	}
}

// Resize records the viewport size and re-measures every pane.
func (c *Controller) Resize(width, height int) {
	c.width = width
	c.height = height
	c.measure()
}

// Narrow reports whether only one pane fits.
func (c *Controller) Narrow() bool {
	return c.width < c.breakpoint
}

// Active returns the pane shown on narrow viewports.
func (c *Controller) Active() PaneID {
	if c.Editor.HiddenNarrow {
		return PreviewPane
	}
	return EditorPane
}

// Visible reports whether id is drawn at the current width.
func (c *Controller) Visible(id PaneID) bool {
	if !c.Narrow() {
		return true
	}
	return !c.pane(id).HiddenNarrow
}

// Widths splits the viewport between the visible panes.
func (c *Controller) Widths() (editor, preview int) {
	if c.Narrow() {
		if c.Visible(EditorPane) {
			return c.width, 0
		}
		return 0, c.width
	}
	editor = c.width / 2
	return editor, c.width - editor
}

// Switches returns the switch buttons to draw. None are drawn on wide
// viewports.
func (c *Controller) Switches() []Switch {
	if !c.Narrow() {
		return nil
	}
	var out []Switch
	for _, s := range []Switch{c.EditorSwitch, c.PreviewSwitch} {
		if !s.Hidden {
			out = append(out, s)
		}
	}
	return out
}

func (c *Controller) measure() {
	for _, p := range []*Pane{&c.Editor, &c.Preview} {
		p.Height = max(c.height-p.Offset-c.margin, 1)
	}
}

func (c *Controller) pane(id PaneID) *Pane {
	if id == PreviewPane {
		return &c.Preview
	}
	return &c.Editor
}
