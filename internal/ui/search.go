package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/kyaoi/mdedit/internal/layout"
)

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		query := strings.TrimSpace(m.searchInput.Value())
		m.exitSearchMode()
		if query == "" {
			m.clearSearch()
			return m, nil
		}
		m.performSearch(query, true)
		return m, nil
	case tea.KeyEsc, tea.KeyCtrlC:
		m.exitSearchMode()
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m *Model) enterSearchMode() tea.Cmd {
	m.searchActive = true
	m.pendingKey = ""
	if m.layout.Narrow() && m.layout.Active() != layout.PreviewPane {
		m.layout.Show(layout.PreviewPane)
		m.focus = layout.PreviewPane
		m.applyLayout()
	}
	m.editor.Blur()
	if m.searchQuery != "" {
		m.searchInput.SetValue(m.searchQuery)
		m.searchInput.CursorEnd()
	} else {
		m.searchInput.SetValue("")
	}
	return m.searchInput.Focus()
}

func (m *Model) exitSearchMode() {
	m.searchActive = false
	m.searchInput.Blur()
	m.setFocus(m.focus)
}

func (m *Model) clearSearch() {
	m.searchQuery = ""
	m.searchMatches = nil
	m.searchIndex = -1
	m.notice = ""
}

func (m *Model) searchStatusLine() string {
	if m.searchQuery == "" {
		return ""
	}
	total := len(m.searchMatches)
	if total == 0 || m.searchIndex < 0 {
		return fmt.Sprintf("/%s (0/0)", m.searchQuery)
	}
	return fmt.Sprintf("/%s (%d/%d)", m.searchQuery, m.searchIndex+1, total)
}

func (m *Model) performSearch(query string, resetIndex bool) {
	query = strings.TrimSpace(query)
	m.searchQuery = query
	m.searchMatches = findSearchMatches(m.pipeline.Surface().View(), query)
	if len(m.searchMatches) == 0 {
		m.searchIndex = -1
		m.notice = fmt.Sprintf("no match for %q", query)
		return
	}
	if resetIndex || m.searchIndex < 0 || m.searchIndex >= len(m.searchMatches) {
		m.searchIndex = 0
	}
	m.notice = ""
	m.gotoSearchMatch()
}

func (m *Model) nextSearchMatch() {
	if len(m.searchMatches) == 0 {
		return
	}
	if m.searchIndex < 0 {
		m.searchIndex = 0
	} else {
		m.searchIndex = (m.searchIndex + 1) % len(m.searchMatches)
	}
	m.gotoSearchMatch()
}

func (m *Model) previousSearchMatch() {
	if len(m.searchMatches) == 0 {
		return
	}
	if m.searchIndex <= 0 {
		m.searchIndex = len(m.searchMatches) - 1
	} else {
		m.searchIndex--
	}
	m.gotoSearchMatch()
}

func (m *Model) gotoSearchMatch() {
	if len(m.searchMatches) == 0 || m.searchIndex < 0 {
		return
	}
	totalLines := strings.Count(m.pipeline.Surface().View(), "\n") + 1
	targetLine := m.searchMatches[m.searchIndex]
	maxOffset := max(totalLines-m.previewVP.Height, 0)
	m.previewVP.SetYOffset(clamp(targetLine, 0, maxOffset))
}

// onContentChanged keeps the current match stable across re-renders.
func (m *Model) onContentChanged() {
	if m.searchQuery == "" {
		return
	}

	prevLine := -1
	if len(m.searchMatches) > 0 && m.searchIndex >= 0 && m.searchIndex < len(m.searchMatches) {
		prevLine = m.searchMatches[m.searchIndex]
	}

	m.searchMatches = findSearchMatches(m.pipeline.Surface().View(), m.searchQuery)
	if len(m.searchMatches) == 0 {
		m.searchIndex = -1
		return
	}

	if prevLine >= 0 {
		m.searchIndex = closestMatchIndex(m.searchMatches, prevLine)
	} else if m.searchIndex < 0 || m.searchIndex >= len(m.searchMatches) {
		m.searchIndex = 0
	}
	m.gotoSearchMatch()
}

// findSearchMatches returns the line of every case-insensitive occurrence of
// query in the ANSI-stripped content.
func findSearchMatches(content, query string) []int {
	query = strings.TrimSpace(query)
	if query == "" || content == "" {
		return nil
	}

	stripped := ansi.Strip(content)
	lowerContent := strings.ToLower(stripped)
	lowerQuery := strings.ToLower(query)

	var matches []int
	offset := 0
	for {
		pos := strings.Index(lowerContent[offset:], lowerQuery)
		if pos == -1 {
			break
		}
		absolute := offset + pos
		matches = append(matches, strings.Count(lowerContent[:absolute], "\n"))
		offset = absolute + len(lowerQuery)
	}
	return matches
}

func closestMatchIndex(matches []int, line int) int {
	if len(matches) == 0 {
		return 0
	}
	bestIndex := 0
	bestDiff := absInt(matches[0] - line)
	for i := 1; i < len(matches); i++ {
		if diff := absInt(matches[i] - line); diff < bestDiff {
			bestDiff = diff
			bestIndex = i
		}
	}
	return bestIndex
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
