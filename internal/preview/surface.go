// Package preview keeps the rendered document in sync with the editor
// source.
package preview

// Surface is the preview document. Its body holds the rendered HTML and its
// view holds the terminal rendering of the same source.
type Surface struct {
	body  string
	view  string
	width int
}

// NewSurface returns an empty preview document.
func NewSurface() *Surface {
	return &Surface{}
}

// Body returns the current HTML body.
func (s *Surface) Body() string {
	return s.body
}

// SetBody replaces the whole body.
func (s *Surface) SetBody(html string) {
	s.body = html
}

// View returns the terminal rendering shown in the preview pane.
func (s *Surface) View() string {
	return s.view
}

// Width reports the wrap width of the current view.
func (s *Surface) Width() int {
	return s.width
}

func (s *Surface) setView(view string, width int) {
	s.view = view
	s.width = width
}
