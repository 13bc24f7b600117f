// Package export implements the save-as modal: it collects a filename and
// turns the editor source or the rendered HTML into a downloadable link.
package export

import (
	"log/slog"
	"path/filepath"
	"strings"
)

// Kind selects what an export contains.
type Kind int

const (
	// Source exports the raw markdown.
	Source Kind = iota
	// Rendered exports the preview body HTML.
	Rendered
)

func (k Kind) String() string {
	if k == Rendered {
		return "rendered"
	}
	return "source"
}

// MIMEType returns the media type of the exported content.
func (k Kind) MIMEType() string {
	if k == Rendered {
		return "text/html"
	}
	return "text/markdown"
}

// Content is read at save time so the export reflects the current document.
type Content interface {
	Source() string
	RenderedHTML() string
}

// Defaults are the filenames pre-filled when the modal opens.
type Defaults struct {
	Markdown string
	HTML     string
}

// Controller is the export modal state machine: closed until Open, back to
// closed on Save or Close.
type Controller struct {
	defaults Defaults
	open     bool
	kind     Kind
	filename string
	valid    bool
}

// NewController returns a closed modal.
func NewController(defaults Defaults) *Controller {
	if defaults.Markdown == "" {
		defaults.Markdown = "untitled.md"
	}
	if defaults.HTML == "" {
		defaults.HTML = "untitled.html"
	}
	return &Controller{defaults: defaults}
}

// Open shows the modal for kind with the default filename filled in.
func (c *Controller) Open(kind Kind) {
	c.open = true
	c.kind = kind
	c.filename = c.defaultName(kind)
	c.Validate()
}

// Close hides the modal without exporting.
func (c *Controller) Close() {
	c.open = false
}

// IsOpen reports whether the modal is shown.
func (c *Controller) IsOpen() bool {
	return c.open
}

// Kind returns the kind the modal was opened with.
func (c *Controller) Kind() Kind {
	return c.kind
}

// Filename returns the modal's filename field.
func (c *Controller) Filename() string {
	return c.filename
}

// SetFilename updates the filename field. Validity is recomputed by Validate.
func (c *Controller) SetFilename(name string) {
	c.filename = name
}

// Validate marks the field valid when it holds a filename.
func (c *Controller) Validate() bool {
	c.valid = filenameGiven(c.filename)
	return c.valid
}

// Valid reports the result of the last Validate.
func (c *Controller) Valid() bool {
	return c.valid
}

// SaveEnabled reports whether the save control accepts input.
func (c *Controller) SaveEnabled() bool {
	return c.open && c.valid
}

// Save builds the download link for the open modal and closes it. It is a
// no-op reporting false when the modal is closed or the filename is empty.
func (c *Controller) Save(content Content) (Link, bool) {
	if !c.open || !filenameGiven(c.filename) {
		return Link{}, false
	}
	data := content.Source()
	if c.kind == Rendered {
		data = content.RenderedHTML()
	}
	link := NewLink(strings.TrimSpace(c.filename), c.kind.MIMEType(), data)
	slog.Debug("Export prepared", "kind", c.kind, "filename", link.Download, "bytes", len(data))
	c.open = false
	return link, true
}

func (c *Controller) defaultName(kind Kind) string {
	if kind == Rendered {
		return c.defaults.HTML
	}
	return c.defaults.Markdown
}

func filenameGiven(name string) bool {
	_, ok := baseName(name)
	return ok
}

// baseName returns the last element of name. Names that resolve to a
// directory such as "." or ".." have no base name.
func baseName(name string) (string, bool) {
	base := filepath.Base(filepath.Clean(strings.TrimSpace(name)))
	switch base {
	case ".", "..", string(filepath.Separator):
		return "", false
	}
	return base, true
}
