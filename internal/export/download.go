package export

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/natefinch/atomic"
)

var errNoFilename = errors.New("download has no filename")

// Downloader triggers a download for a link, like clicking it.
type Downloader interface {
	Click(link Link) (string, error)
}

// FileDownloader saves links into a directory.
type FileDownloader struct {
	Dir string
}

// Click decodes the link and writes its content to Dir. Only the base name of
// the download name is used. It returns the written path.
func (d FileDownloader) Click(link Link) (string, error) {
	name, ok := baseName(link.Download)
	if !ok {
		return "", errNoFilename
	}
	_, data, err := link.Decode()
	if err != nil {
		return "", err
	}

	dir := d.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	slog.Info("Exported file", "path", path, "bytes", len(data))
	return path, nil
}

// ClipboardDownloader copies the data link itself to the system clipboard.
type ClipboardDownloader struct {
	write func(string) error
}

// NewClipboardDownloader returns a downloader backed by the system clipboard.
func NewClipboardDownloader() ClipboardDownloader {
	return ClipboardDownloader{write: clipboard.WriteAll}
}

// Click implements Downloader. It returns the name the link would save as.
func (d ClipboardDownloader) Click(link Link) (string, error) {
	write := d.write
	if write == nil {
		write = clipboard.WriteAll
	}
	if err := write(link.Href); err != nil {
		return "", fmt.Errorf("copy data link: %w", err)
	}
	return link.Download, nil
}
