package preview

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyaoi/mdedit/internal/render"
)

type failingRenderer struct{}

func (failingRenderer) Render(string) (string, error) {
	return "", errors.New("boom")
}

type upperRenderer struct{}

func (upperRenderer) Render(src string) (string, error) {
	return strings.ToUpper(src), nil
}

func newTestPipeline(t *testing.T) *Pipeline {
	t.Helper()
	p := NewPipeline(render.NewMarkdown(), StyledTerminal(render.DefaultStyle), nil)
	require.NoError(t, p.Resize(60))
	return p
}

func TestSyncReplacesBody(t *testing.T) {
	p := newTestPipeline(t)

	require.NoError(t, p.Sync("# Hi"))
	assert.Contains(t, p.Surface().Body(), "<h1>Hi</h1>")
	assert.Contains(t, ansi.Strip(p.Surface().View()), "Hi")
	assert.Equal(t, "# Hi", p.Source())

	require.NoError(t, p.Sync("plain"))
	assert.NotContains(t, p.Surface().Body(), "<h1>")
	assert.Contains(t, p.Surface().Body(), "<p>plain</p>")
}

func TestSyncIsIdempotent(t *testing.T) {
	p := newTestPipeline(t)

	require.NoError(t, p.Sync("*a* **b**"))
	first := p.Surface().Body()
	require.NoError(t, p.Sync("*a* **b**"))
	assert.Equal(t, first, p.Surface().Body())
}

func TestSyncErrorKeepsPreviousBody(t *testing.T) {
	surface := NewSurface()
	surface.SetBody("<p>old</p>")
	p := NewPipeline(failingRenderer{}, func(int) (render.Renderer, error) { return upperRenderer{}, nil }, surface)

	err := p.Sync("new")
	require.Error(t, err)
	assert.Equal(t, "<p>old</p>", surface.Body())
}

func TestResizeRerendersLastSource(t *testing.T) {
	builds := 0
	p := NewPipeline(render.NewMarkdown(), func(width int) (render.Renderer, error) {
		builds++
		return upperRenderer{}, nil
	}, nil)

	require.NoError(t, p.Resize(20))
	require.NoError(t, p.Sync("abc"))
	assert.Equal(t, "ABC", p.Surface().View())

	require.NoError(t, p.Resize(20))
	assert.Equal(t, 1, builds)

	require.NoError(t, p.Resize(30))
	assert.Equal(t, 2, builds)
	assert.Equal(t, 30, p.Surface().Width())
	assert.Equal(t, "ABC", p.Surface().View())
}
