package ui

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kyaoi/mdedit/internal/export"
)

var (
	modalStyle = lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7aa2f7"))
	validStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ece6a"))
	invalidStyle  = lipgloss.NewStyle().Foreground(errorColor)
	enabledStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#c0caf5")).Bold(true)
	disabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))
)

func (m *Model) openExport(kind export.Kind) tea.Cmd {
	m.flushRender()
	m.exporter.Open(kind)
	m.filenameInput.SetValue(m.exporter.Filename())
	m.filenameInput.CursorEnd()
	m.editor.Blur()
	return m.filenameInput.Focus()
}

func (m *Model) closeExport() {
	m.filenameDebounce.Cancel()
	m.exporter.Close()
	m.filenameInput.Blur()
	m.setFocus(m.focus)
}

func (m *Model) handleExportKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.closeExport()
		return m, nil
	case "enter":
		return m, m.saveExport(m.downloader)
	case "ctrl+y":
		return m, m.saveExport(m.clipboard)
	}

	before := m.filenameInput.Value()
	var cmd tea.Cmd
	m.filenameInput, cmd = m.filenameInput.Update(msg)
	if after := m.filenameInput.Value(); after != before {
		m.exporter.SetFilename(after)
		m.filenameDebounce.Schedule(after)
	}
	return m, cmd
}

// saveExport reads the open modal's own field and kind. An empty filename
// leaves the modal open and does nothing.
func (m *Model) saveExport(d export.Downloader) tea.Cmd {
	kind := m.exporter.Kind()
	link, ok := m.exporter.Save(m)
	if !ok {
		return nil
	}
	m.filenameDebounce.Cancel()
	m.filenameInput.Blur()
	m.setFocus(m.focus)

	return func() tea.Msg {
		name, err := d.Click(link)
		return exportDoneMsg{kind: kind, name: name, err: err}
	}
}

func (m *Model) finishExport(msg exportDoneMsg) {
	if msg.err != nil {
		slog.Error("Export failed", "kind", msg.kind, "error", msg.err)
		m.err = msg.err
		return
	}
	m.err = nil
	m.notice = fmt.Sprintf("exported %s (%s)", msg.name, msg.kind)
}

func (m *Model) exportModalView() string {
	title := "Export markdown"
	if m.exporter.Kind() == export.Rendered {
		title = "Export rendered HTML"
	}

	validity := validStyle.Render("✓ ready")
	if !m.exporter.Valid() {
		validity = invalidStyle.Render("✗ filename required")
	}

	save := disabledStyle.Render("[enter] save")
	copyLink := disabledStyle.Render("[ctrl+y] copy data link")
	if m.exporter.SaveEnabled() {
		save = enabledStyle.Render("[enter] save")
		copyLink = enabledStyle.Render("[ctrl+y] copy data link")
	}

	body := strings.Join([]string{
		title,
		"",
		m.filenameInput.View(),
		validity,
		"",
		save + "  " + copyLink + "  " + enabledStyle.Render("[esc] close"),
	}, "\n")
	return modalStyle.Render(body)
}
