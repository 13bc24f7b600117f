package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kyaoi/mdedit/internal/layout"
)

var helpLines = []string{
	"Help (f1 / ? / Esc to close)",
	"Ctrl+l           : switch editor/preview layout",
	"Tab              : focus other pane (narrow: switch pane)",
	"Ctrl+s           : export markdown",
	"Ctrl+o           : export rendered HTML",
	"Ctrl+g           : search preview",
	"j / k            : scroll preview (preview focus)",
	"Ctrl+d / Ctrl+u  : half page (preview focus)",
	"gg / G           : top / bottom (preview focus)",
	"/ , n / N        : search, next / previous match (preview focus)",
	"q                : quit (preview focus)",
	"Ctrl+c           : quit",
	"",
	"Export dialog: Enter save, Ctrl+y copy data link, Esc close",
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.showHelp {
		helpOverlay := helpBoxStyle.Render(strings.Join(helpLines, "\n"))
		if m.width > 0 && m.height > 0 {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, helpOverlay)
		}
		return helpOverlay
	}
	if !m.ready {
		return ""
	}

	body := m.panesView()
	if m.exporter.IsOpen() {
		body = lipgloss.Place(m.width, m.layout.Editor.Height, lipgloss.Center, lipgloss.Center, m.exportModalView())
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.headerView(), body, m.statusView())
}

func (m *Model) panesView() string {
	var columns []string
	if m.layout.Visible(layout.EditorPane) {
		columns = append(columns, editorPanelStyle(m.focus == layout.EditorPane).Render(m.editor.View()))
	}
	if m.layout.Visible(layout.PreviewPane) {
		columns = append(columns, m.previewVP.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

func (m *Model) headerView() string {
	parts := []string{"mdedit", m.headerPath}
	if m.meta.Title != "" {
		parts = append(parts, m.meta.Title)
	}
	if len(m.meta.Tags) > 0 {
		parts = append(parts, "#"+strings.Join(m.meta.Tags, " #"))
	}
	if m.dirty() {
		parts = append(parts, "● modified")
	}
	return headerStyle.Width(m.width).MaxHeight(headerHeight).Render(strings.Join(parts, " · "))
}

func (m *Model) statusView() string {
	var line string
	switch {
	case m.searchActive:
		line = m.searchInput.View()
	case m.err != nil:
		line = lipgloss.NewStyle().Foreground(errorColor).Render(m.err.Error())
	default:
		var parts []string
		for _, s := range m.layout.Switches() {
			parts = append(parts, switchStyle.Render(s.Label))
		}
		if status := m.searchStatusLine(); status != "" {
			parts = append(parts, status)
		}
		if m.notice != "" {
			parts = append(parts, m.notice)
		}
		parts = append(parts, "f1 help")
		line = strings.Join(parts, "  ")
	}
	return statusStyle.Width(m.width).Height(m.margin).MaxHeight(m.margin).Render(line)
}

func editorPanelStyle(focused bool) lipgloss.Style {
	color := blurBorderColor
	if focused {
		color = focusBorderColor
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(color)
}
