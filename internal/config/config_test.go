package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	v := viper.New()
	require.NoError(t, Load(context.Background(), v))
	require.NoError(t, CheckConfigValidity(v))

	cfg := FromViper(v)
	assert.Equal(t, 250*time.Millisecond, cfg.InputDebounce)
	assert.Equal(t, 250*time.Millisecond, cfg.ResizeDebounce)
	assert.Equal(t, 100, cfg.Breakpoint)
	assert.Equal(t, 1, cfg.Margin)
	assert.Equal(t, "untitled.md", cfg.MarkdownName)
	assert.Equal(t, "untitled.html", cfg.HTMLName)
	assert.Equal(t, ".", cfg.ExportDir)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("editor:\n  debounce: 100ms\nlayout:\n  breakpoint: 80\n"), 0o600))
	t.Setenv("MDEDIT_EXPORT_DIR", "/tmp/out")

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, Load(context.Background(), v))

	cfg := FromViper(v)
	assert.Equal(t, 100*time.Millisecond, cfg.InputDebounce)
	assert.Equal(t, 80, cfg.Breakpoint)
	assert.Equal(t, "/tmp/out", cfg.ExportDir)
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("editor: [\n"), 0o600))

	v := viper.New()
	v.SetConfigFile(path)
	assert.Error(t, Load(context.Background(), v))
}

func TestCheckConfigValidityInvalid(t *testing.T) {
	v := viper.New()
	v.Set("editor.debounce", "soon")
	v.Set("layout.resize_debounce", "-1s")
	v.Set("layout.breakpoint", -1)
	v.Set("layout.margin", -2)
	v.Set("preview.style", "neon")
	v.Set("export.dir", "")
	v.Set("export.markdown_name", "")
	v.Set("export.html_name", " ")
	v.Set("log.level", "chatty")

	err := CheckConfigValidity(v)
	require.Error(t, err)
	for _, want := range []string{
		"editor.debounce must be a duration",
		"layout.resize_debounce must not be negative",
		"layout.breakpoint must not be negative",
		"layout.margin must not be negative",
		`preview.style "neon" is not a known style`,
		"export.dir is required",
		"export.markdown_name is required",
		"export.html_name is required",
		"log.level must be one of",
	} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestSetupLoggingWritesFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "mdedit.log")
	closer, err := SetupLogging(Config{LogFile: path, LogLevel: "info"}, true)
	require.NoError(t, err)
	slog.Debug("hello from test")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "notes"), expandHome("~/notes"))
	assert.Equal(t, "/abs", expandHome("/abs"))
	assert.Equal(t, "", expandHome(""))
}
