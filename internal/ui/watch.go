package ui

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// startWatching follows external changes to the opened file. The directory is
// watched because editors usually replace files on save.
func (m *Model) startWatching(path string) {
	if path == "" {
		return
	}
	path = filepath.Clean(path)
	if err := m.ensureWatcher(); err != nil {
		m.err = err
		return
	}

	dir := filepath.Dir(path)
	if dir != m.watchDir {
		if m.watchDir != "" {
			_ = m.watcher.Remove(m.watchDir)
		}
		if err := m.watcher.Add(dir); err != nil {
			m.err = err
			return
		}
		m.watchDir = dir
	}
	m.watchedFile = path
	slog.Debug("Watching file", "path", path)
}

func (m *Model) ensureWatcher() error {
	if m.watcher != nil {
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	m.watcher = watcher

	go m.watchLoop(watcher)
	return nil
}

func (m *Model) watchLoop(watcher *fsnotify.Watcher) {
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			m.post(fileEventMsg{path: event.Name, op: event.Op})
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			m.post(fileWatchErrMsg{err: err})
		case <-m.done:
			return
		}
	}
}

func (m *Model) handleFileEvent(msg fileEventMsg) {
	if m.watchedFile == "" {
		return
	}
	if filepath.Clean(msg.path) != m.watchedFile {
		return
	}
	m.reloadActiveFile()
}

// reloadActiveFile replaces the buffer with the file on disk unless the user
// has unsaved edits.
func (m *Model) reloadActiveFile() {
	if m.activeAbsPath == "" {
		return
	}
	data, err := os.ReadFile(m.activeAbsPath)
	if err != nil {
		m.err = err
		return
	}
	content := string(data)
	if content == m.editor.Value() {
		m.savedSource = content
		return
	}
	if m.dirty() {
		m.notice = "file changed on disk; keeping your edits"
		slog.Info("Skipped reload of modified buffer", "path", m.activeAbsPath)
		return
	}

	offset := m.previewVP.YOffset
	m.inputDebounce.Cancel()
	m.editor.SetValue(content)
	m.savedSource = content
	m.renderSource(content)
	if m.err == nil {
		m.previewVP.SetYOffset(offset)
	}
	m.notice = "reloaded from disk"
}
