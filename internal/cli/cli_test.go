package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCommandListsKeys(t *testing.T) {
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"config"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "editor.debounce")
	assert.Contains(t, out.String(), "export.html_name")
}

func TestRootRejectsExtraArgs(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetArgs([]string{"a.md", "b.md"})
	assert.Error(t, cmd.Execute())
}
