package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/kyaoi/mdedit/internal/render"
)

// ConfigOption documents a key and its default.
type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// Config is the resolved configuration handed to the editor.
type Config struct {
	InputDebounce  time.Duration
	ResizeDebounce time.Duration
	Breakpoint     int
	Margin         int
	PreviewStyle   string
	ExportDir      string
	MarkdownName   string
	HTMLName       string
	LogFile        string
	LogLevel       string
}

// GetConfigOptions returns the configuration keys with defaults and meanings.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		{Key: "editor.debounce", Default: "250ms", Comment: "Quiet time after typing before the preview re-renders"},
		{Key: "layout.resize_debounce", Default: "250ms", Comment: "Quiet time after a terminal resize before panes are re-measured"},
		{Key: "layout.breakpoint", Default: 100, Comment: "Terminal width below which only one of editor/preview is shown"},
		{Key: "layout.margin", Default: 1, Comment: "Rows kept free below the panes (status bar)"},
		{Key: "preview.style", Default: render.DefaultStyle, Comment: "Glamour style for the terminal preview (dark, light, dracula, tokyo-night, ...)"},
		{Key: "export.dir", Default: ".", Comment: "Directory exported files are written to"},
		{Key: "export.markdown_name", Default: "untitled.md", Comment: "Default filename when exporting markdown"},
		{Key: "export.html_name", Default: "untitled.html", Comment: "Default filename when exporting rendered HTML"},
		{Key: "log.file", Default: "", Comment: "Write debug logs to this file; empty disables logging"},
		{Key: "log.level", Default: "info", Comment: "Log level: debug, info, warn, error"},
	}
}

func applyDefaults(v *viper.Viper) {
	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Default)
	}
}

// Load resolves configuration with precedence: defaults < file < env.
func Load(ctx context.Context, v *viper.Viper) error {
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "mdedit"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "mdedit"))
		}
		v.AddConfigPath(".")
	}

	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	// MDEDIT_EDITOR_DEBOUNCE etc.
	v.SetEnvPrefix("mdedit")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if strings.TrimSpace(v.GetString("preview.style")) == "" {
		v.Set("preview.style", render.DefaultStyle)
	}
	return nil
}

// FromViper reads the resolved values into a Config.
func FromViper(v *viper.Viper) Config {
	return Config{
		InputDebounce:  v.GetDuration("editor.debounce"),
		ResizeDebounce: v.GetDuration("layout.resize_debounce"),
		Breakpoint:     v.GetInt("layout.breakpoint"),
		Margin:         v.GetInt("layout.margin"),
		PreviewStyle:   v.GetString("preview.style"),
		ExportDir:      expandHome(v.GetString("export.dir")),
		MarkdownName:   v.GetString("export.markdown_name"),
		HTMLName:       v.GetString("export.html_name"),
		LogFile:        expandHome(v.GetString("log.file")),
		LogLevel:       v.GetString("log.level"),
	}
}

// CheckConfigValidity reports every invalid setting at once.
func CheckConfigValidity(v *viper.Viper) error {
	var problems []string

	for _, key := range []string{"editor.debounce", "layout.resize_debounce"} {
		raw := strings.TrimSpace(v.GetString(key))
		d, err := time.ParseDuration(raw)
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s must be a duration like 250ms", key))
			continue
		}
		if d < 0 {
			problems = append(problems, fmt.Sprintf("%s must not be negative", key))
		}
	}
	if v.GetInt("layout.breakpoint") < 0 {
		problems = append(problems, "layout.breakpoint must not be negative")
	}
	if v.GetInt("layout.margin") < 0 {
		problems = append(problems, "layout.margin must not be negative")
	}
	if style := v.GetString("preview.style"); !render.KnownStyle(style) {
		problems = append(problems, fmt.Sprintf("preview.style %q is not a known style", style))
	}
	if strings.TrimSpace(v.GetString("export.dir")) == "" {
		problems = append(problems, "export.dir is required")
	}
	if strings.TrimSpace(v.GetString("export.markdown_name")) == "" {
		problems = append(problems, "export.markdown_name is required")
	}
	if strings.TrimSpace(v.GetString("export.html_name")) == "" {
		problems = append(problems, "export.html_name is required")
	}
	switch strings.ToLower(v.GetString("log.level")) {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, "log.level must be one of debug, info, warn, error")
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
}

func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
