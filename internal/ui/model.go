package ui

import (
	"sync"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"

	"github.com/kyaoi/mdedit/internal/debounce"
	"github.com/kyaoi/mdedit/internal/export"
	"github.com/kyaoi/mdedit/internal/layout"
	"github.com/kyaoi/mdedit/internal/preview"
	"github.com/kyaoi/mdedit/internal/render"
)

const (
	headerHeight   = 1
	minPaneWidth   = 10
	eventQueueSize = 32
)

var (
	blurBorderColor  = lipgloss.Color("#3b4261")
	focusBorderColor = lipgloss.Color("#7aa2f7")
	errorColor       = lipgloss.Color("#ff6b6b")
	headerStyle      = lipgloss.NewStyle().
				Padding(0, 1).
				Foreground(lipgloss.Color("#c0caf5")).
				Background(lipgloss.Color("#283457")).
				Bold(true)
	statusStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("#a9b1d6")).
			Background(lipgloss.Color("#1f2335"))
	switchStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("#1a1b26")).
			Background(lipgloss.Color("#7aa2f7")).
			Bold(true)
	helpBoxStyle = lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7aa2f7")).
			Background(lipgloss.Color("#1f2335"))
)

// Model implements the Bubble Tea program for the editor.
type Model struct {
	editor    textarea.Model
	previewVP viewport.Model
	pipeline  *preview.Pipeline
	layout    *layout.Controller
	focus     layout.PaneID

	headerPath    string
	meta          render.Meta
	activeAbsPath string
	savedSource   string
	showHelp      bool
	pendingKey    string
	ready         bool
	width         int
	height        int
	margin        int
	err           error
	notice        string

	exporter      *export.Controller
	filenameInput textinput.Model
	downloader    export.Downloader
	clipboard     export.Downloader

	searchInput   textinput.Model
	searchActive  bool
	searchQuery   string
	searchMatches []int
	searchIndex   int

	inputDebounce    *debounce.Debouncer[string]
	resizeDebounce   *debounce.Debouncer[windowSize]
	filenameDebounce *debounce.Debouncer[string]
	events           chan tea.Msg
	done             chan struct{}
	closeOnce        sync.Once

	watcher          *fsnotify.Watcher
	watchDir         string
	watchedFile      string
	initialWatchPath string
}

type windowSize struct {
	width  int
	height int
}

// sourceQuietMsg arrives once typing has paused.
type sourceQuietMsg struct {
	source string
}

type resizeQuietMsg windowSize

type filenameQuietMsg struct {
	name string
}

type exportDoneMsg struct {
	kind export.Kind
	name string
	err  error
}

type fileEventMsg struct {
	path string
	op   fsnotify.Op
}

type fileWatchErrMsg struct {
	err error
}

// NewModel constructs the editor model with the provided initial state.
func NewModel(state State, opts Options) *Model {
	editor := textarea.New()
	editor.Placeholder = "Type markdown here…"
	editor.CharLimit = 0
	editor.MaxHeight = 0
	editor.MaxWidth = 0
	editor.SetValue(state.Source)
	editor.Focus()

	previewVP := viewport.New(0, 0)
	previewVP.Style = lipgloss.NewStyle().Padding(0, 1)
	previewVP.SetHorizontalStep(2)

	defaults := export.Defaults{Markdown: opts.MarkdownName, HTML: opts.HTMLName}
	if state.MarkdownName != "" {
		defaults.Markdown = state.MarkdownName
	}
	if state.HTMLName != "" {
		defaults.HTML = state.HTMLName
	}

	downloader := opts.Downloader
	if downloader == nil {
		downloader = export.FileDownloader{Dir: "."}
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = export.NewClipboardDownloader()
	}

	renderer := opts.Renderer
	if renderer == nil {
		renderer = render.NewMarkdown()
	}

	m := &Model{
		editor:        editor,
		previewVP:     previewVP,
		pipeline:      preview.NewPipeline(renderer, preview.StyledTerminal(opts.PreviewStyle), nil),
		layout:        layout.New(layout.Options{Breakpoint: opts.Breakpoint, Margin: max(opts.Margin, 1), Offset: headerHeight}),
		focus:         layout.EditorPane,
		headerPath:    state.HeaderPath,
		activeAbsPath: state.ActiveAbsPath,
		savedSource:   state.Source,
		margin:        max(opts.Margin, 1),
		exporter:      export.NewController(defaults),
		downloader:    downloader,
		clipboard:     clip,
		searchIndex:   -1,
		events:        make(chan tea.Msg, eventQueueSize),
		done:          make(chan struct{}),
	}

	schedulerOpt := debounce.WithScheduler(opts.Scheduler)
	m.inputDebounce = debounce.New(opts.InputDebounce, func(src string) {
		m.post(sourceQuietMsg{source: src})
	}, schedulerOpt)
	m.resizeDebounce = debounce.New(opts.ResizeDebounce, func(size windowSize) {
		m.post(resizeQuietMsg(size))
	}, schedulerOpt)
	m.filenameDebounce = debounce.New(opts.InputDebounce, func(name string) {
		m.post(filenameQuietMsg{name: name})
	}, schedulerOpt)

	filenameInput := textinput.New()
	filenameInput.Prompt = "Filename: "
	filenameInput.CharLimit = 255
	filenameInput.Placeholder = "notes.md"
	filenameInput.Blur()
	m.filenameInput = filenameInput

	searchInput := textinput.New()
	searchInput.Prompt = "/"
	searchInput.CharLimit = 256
	searchInput.Placeholder = "search preview"
	searchInput.CursorEnd()
	searchInput.Blur()
	m.searchInput = searchInput

	m.renderSource(state.Source)

	if state.ActiveAbsPath != "" {
		m.initialWatchPath = state.ActiveAbsPath
	}

	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.initialWatchPath != "" {
		path := m.initialWatchPath
		m.initialWatchPath = ""
		m.startWatching(path)
	}
	return tea.Batch(m.waitForEvent(), textarea.Blink)
}

// Close stops pending timers and the file watcher. It is safe to call more
// than once.
func (m *Model) Close() {
	m.closeOnce.Do(func() {
		m.inputDebounce.Cancel()
		m.resizeDebounce.Cancel()
		m.filenameDebounce.Cancel()
		close(m.done)
		if m.watcher != nil {
			_ = m.watcher.Close()
		}
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sourceQuietMsg:
		m.renderSource(msg.source)
		return m, m.waitForEvent()
	case resizeQuietMsg:
		m.resize(msg.width, msg.height)
		return m, m.waitForEvent()
	case filenameQuietMsg:
		if m.exporter.IsOpen() {
			m.exporter.Validate()
		}
		return m, m.waitForEvent()
	case fileEventMsg:
		m.handleFileEvent(msg)
		return m, m.waitForEvent()
	case fileWatchErrMsg:
		m.err = msg.err
		return m, m.waitForEvent()
	case exportDoneMsg:
		m.finishExport(msg)
		return m, nil

	case tea.WindowSizeMsg:
		if !m.ready {
			m.resize(msg.Width, msg.Height)
			return m, nil
		}
		m.resizeDebounce.Schedule(windowSize{width: msg.Width, height: msg.Height})
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	cmds = append(cmds, cmd)
	m.previewVP, cmd = m.previewVP.Update(msg)
	cmds = append(cmds, cmd)
	// Cursor blinks for the modal and search fields arrive here too.
	if m.exporter.IsOpen() {
		m.filenameInput, cmd = m.filenameInput.Update(msg)
		cmds = append(cmds, cmd)
	}
	if m.searchActive {
		m.searchInput, cmd = m.searchInput.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.exporter.IsOpen() {
		return m.handleExportKey(msg)
	}

	if m.searchActive {
		return m.handleSearchKey(msg)
	}

	key := msg.String()
	if key != "g" {
		m.pendingKey = ""
	}

	if m.showHelp {
		switch key {
		case "q", "?", "esc", "f1":
			m.showHelp = false
		case "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	}

	switch key {
	case "ctrl+c":
		return m, tea.Quit
	case "f1":
		m.showHelp = true
		return m, nil
	case "ctrl+l":
		m.toggleLayout()
		return m, nil
	case "tab":
		if m.layout.Narrow() {
			m.toggleLayout()
		} else {
			m.setFocus(otherPane(m.focus))
		}
		return m, nil
	case "ctrl+s":
		return m, m.openExport(export.Source)
	case "ctrl+o":
		return m, m.openExport(export.Rendered)
	case "ctrl+g":
		return m, m.enterSearchMode()
	}

	if m.focus == layout.EditorPane {
		return m, m.updateEditor(msg)
	}

	switch key {
	case "q":
		return m, tea.Quit
	case "?":
		m.showHelp = true
		return m, nil
	case "/":
		return m, m.enterSearchMode()
	case "n":
		if len(m.searchMatches) > 0 {
			m.nextSearchMatch()
			return m, nil
		}
	case "N":
		if len(m.searchMatches) > 0 {
			m.previousSearchMatch()
			return m, nil
		}
	}

	if m.handlePreviewKey(key) {
		return m, nil
	}
	var cmd tea.Cmd
	m.previewVP, cmd = m.previewVP.Update(msg)
	return m, cmd
}

// updateEditor forwards a key to the textarea and schedules a render when the
// source changed.
func (m *Model) updateEditor(msg tea.KeyMsg) tea.Cmd {
	before := m.editor.Value()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if after := m.editor.Value(); after != before {
		m.inputDebounce.Schedule(after)
	}
	return cmd
}

func (m *Model) handlePreviewKey(key string) bool {
	switch key {
	case "j":
		m.previewVP.ScrollDown(1)
	case "k":
		m.previewVP.ScrollUp(1)
	case "ctrl+d":
		m.previewVP.HalfPageDown()
	case "ctrl+u":
		m.previewVP.HalfPageUp()
	case "h":
		m.previewVP.ScrollLeft(max(2, m.previewVP.Width/6))
	case "l":
		m.previewVP.ScrollRight(max(2, m.previewVP.Width/6))
	case "g":
		if m.pendingKey == "g" {
			m.previewVP.GotoTop()
			m.pendingKey = ""
		} else {
			m.pendingKey = "g"
		}
		return true
	case "G":
		m.pendingKey = ""
		m.previewVP.GotoBottom()
	default:
		return false
	}
	m.pendingKey = ""
	return true
}

func (m *Model) toggleLayout() {
	m.layout.Toggle()
	m.setFocus(m.layout.Active())
	m.applyLayout()
}

func (m *Model) setFocus(id layout.PaneID) {
	m.focus = id
	if id == layout.EditorPane {
		m.editor.Focus()
		return
	}
	m.editor.Blur()
}

func otherPane(id layout.PaneID) layout.PaneID {
	if id == layout.EditorPane {
		return layout.PreviewPane
	}
	return layout.EditorPane
}

func (m *Model) resize(width, height int) {
	if width <= 0 || height <= headerHeight {
		return
	}

	m.width = width
	m.height = height
	m.ready = true
	m.layout.Resize(width, height)
	if m.layout.Narrow() {
		m.setFocus(m.layout.Active())
	}
	m.applyLayout()
}

// applyLayout sizes the editor and preview to the controller's measurements.
func (m *Model) applyLayout() {
	if !m.ready {
		return
	}
	editorWidth, previewWidth := m.layout.Widths()
	paneHeight := m.layout.Editor.Height

	if editorWidth > 0 {
		frame := editorPanelStyle(m.focus == layout.EditorPane).GetHorizontalFrameSize()
		m.editor.SetWidth(max(editorWidth-frame, minPaneWidth))
		m.editor.SetHeight(paneHeight)
	}

	if previewWidth > 0 {
		m.previewVP.Width = previewWidth
		m.previewVP.Height = m.layout.Preview.Height
		wrapWidth := max(previewWidth-m.previewVP.Style.GetHorizontalFrameSize(), 0)
		if err := m.pipeline.Resize(wrapWidth); err != nil {
			m.err = err
			return
		}
		m.previewVP.SetContent(m.pipeline.Surface().View())
		m.onContentChanged()
	}
}

// renderSource pushes source through the pipeline into the preview.
func (m *Model) renderSource(source string) {
	if err := m.pipeline.Sync(source); err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.meta = render.FrontMatter(source)
	m.previewVP.SetContent(m.pipeline.Surface().View())
	m.onContentChanged()
}

// flushRender drops a render still waiting for typing to pause and renders the
// buffer now if the preview is behind it.
func (m *Model) flushRender() {
	m.inputDebounce.Cancel()
	if source := m.editor.Value(); source != m.pipeline.Source() {
		m.renderSource(source)
	}
}

// post hands a message from a timer or watcher goroutine to the program.
func (m *Model) post(msg tea.Msg) {
	select {
	case m.events <- msg:
	case <-m.done:
	}
}

func (m *Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-m.events:
			return msg
		case <-m.done:
			return nil
		}
	}
}

// Source returns the editor contents.
func (m *Model) Source() string {
	return m.editor.Value()
}

// RenderedHTML returns the current preview body.
func (m *Model) RenderedHTML() string {
	return m.pipeline.Surface().Body()
}

func (m *Model) dirty() bool {
	return m.editor.Value() != m.savedSource
}
