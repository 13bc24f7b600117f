package ui

import (
	"time"

	"github.com/kyaoi/mdedit/internal/config"
	"github.com/kyaoi/mdedit/internal/debounce"
	"github.com/kyaoi/mdedit/internal/export"
	"github.com/kyaoi/mdedit/internal/render"
)

// State contains the data required to bootstrap the Bubble Tea model.
type State struct {
	Source        string
	HeaderPath    string
	ActiveAbsPath string
	MarkdownName  string
	HTMLName      string
}

// Options carries the tunables and collaborators of the model.
type Options struct {
	InputDebounce  time.Duration
	ResizeDebounce time.Duration
	Breakpoint     int
	Margin         int
	PreviewStyle   string
	MarkdownName   string
	HTMLName       string

	// Renderer turns the source into the preview HTML; nil uses goldmark.
	Renderer render.Renderer
	// Scheduler drives every debouncer; nil uses the wall clock.
	Scheduler debounce.Scheduler
	// Downloader handles "save"; Clipboard handles "copy link".
	Downloader export.Downloader
	Clipboard  export.Downloader
}

// OptionsFromConfig maps the resolved configuration onto model options.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		InputDebounce:  cfg.InputDebounce,
		ResizeDebounce: cfg.ResizeDebounce,
		Breakpoint:     cfg.Breakpoint,
		Margin:         cfg.Margin,
		PreviewStyle:   cfg.PreviewStyle,
		MarkdownName:   cfg.MarkdownName,
		HTMLName:       cfg.HTMLName,
		Downloader:     export.FileDownloader{Dir: cfg.ExportDir},
		Clipboard:      export.NewClipboardDownloader(),
	}
}
