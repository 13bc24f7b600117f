package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadInitialStateEmpty(t *testing.T) {
	state, err := LoadInitialState("")
	require.NoError(t, err)
	assert.Empty(t, state.Source)
	assert.Equal(t, "untitled", state.HeaderPath)
	assert.Empty(t, state.ActiveAbsPath)
}

func TestLoadInitialStateExistingFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("# Notes\n"), 0o600))

	state, err := LoadInitialState("notes.md")
	require.NoError(t, err)
	assert.Equal(t, "# Notes\n", state.Source)
	assert.Equal(t, "notes.md", state.HeaderPath)
	assert.Equal(t, "notes.md", state.MarkdownName)
	assert.Equal(t, "notes.html", state.HTMLName)
	assert.True(t, filepath.IsAbs(state.ActiveAbsPath))
}

func TestLoadInitialStateMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	state, err := LoadInitialState("draft.md")
	require.NoError(t, err)
	assert.Empty(t, state.Source)
	assert.Empty(t, state.ActiveAbsPath)
	assert.Equal(t, "draft.md (new)", state.HeaderPath)
	assert.Equal(t, "draft.html", state.HTMLName)
}

func TestLoadInitialStateDirectory(t *testing.T) {
	_, err := LoadInitialState(t.TempDir())
	assert.Error(t, err)
}
