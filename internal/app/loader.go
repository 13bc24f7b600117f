package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/kyaoi/mdedit/internal/ui"
)

// LoadInitialState reads the optional target file and prepares the UI state.
// A target that does not exist yet starts an empty buffer named after it.
func LoadInitialState(target string) (ui.State, error) {
	if target == "" {
		return ui.State{HeaderPath: "untitled"}, nil
	}

	absTarget, err := filepath.Abs(target)
	if err != nil {
		return ui.State{}, err
	}
	displayPath := displayPathFor(absTarget)
	names := exportNames(absTarget)

	info, err := os.Stat(absTarget)
	if errors.Is(err, fs.ErrNotExist) {
		return ui.State{
			HeaderPath:   displayPath + " (new)",
			MarkdownName: names.markdown,
			HTMLName:     names.html,
		}, nil
	}
	if err != nil {
		return ui.State{}, err
	}
	if info.IsDir() {
		return ui.State{}, fmt.Errorf("%s is a directory", displayPath)
	}

	data, err := os.ReadFile(absTarget)
	if err != nil {
		return ui.State{}, err
	}

	return ui.State{
		Source:        string(data),
		HeaderPath:    displayPath,
		ActiveAbsPath: absTarget,
		MarkdownName:  names.markdown,
		HTMLName:      names.html,
	}, nil
}

type defaultNames struct {
	markdown string
	html     string
}

func exportNames(absPath string) defaultNames {
	base := filepath.Base(absPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		stem = base
	}
	return defaultNames{markdown: base, html: stem + ".html"}
}

func displayPathFor(absPath string) string {
	displayPath := absPath
	if wd, err := os.Getwd(); err == nil {
		if rel, err := filepath.Rel(wd, absPath); err == nil && !strings.HasPrefix(rel, "..") {
			displayPath = rel
		}
	}
	return filepath.ToSlash(displayPath)
}
