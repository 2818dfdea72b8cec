package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/TimelordUK/logcli/internal/config"
	"github.com/TimelordUK/logcli/internal/render"
	"github.com/TimelordUK/logcli/internal/source"
	"github.com/TimelordUK/logcli/internal/view"
	"github.com/TimelordUK/logcli/pkg/logformat"
)

// Mode represents the current UI mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeGoto
)

// Section is the selection of one file
type Section struct {
	Path    string
	Lines   []source.Line
	Content render.Renderer
}

// Model is the pager model
type Model struct {
	sections []Section
	current  int
	provider *source.SliceProvider

	viewport    *view.Viewport
	input       textinput.Model
	keys        KeyMap
	timestamps  *logformat.TimestampParser
	statusStyle lipgloss.Style
	helpStyle   lipgloss.Style

	mode   Mode
	width  int
	height int

	// Search state, positions in the current section
	searchTerm    string
	searchResults []int
	searchIndex   int

	message string
}

// NewModel creates a pager over sections
func NewModel(sections []Section, cfg *config.Config, r *lipgloss.Renderer) *Model {
	vp := view.NewViewport(80, 22)
	vp.SetStyles(
		r.NewStyle().Foreground(lipgloss.Color(cfg.Theme.LineNumbers)),
		r.NewStyle().Foreground(lipgloss.Color(cfg.Theme.SearchMatch)).Bold(true),
	)

	ti := textinput.New()
	ti.CharLimit = 256

	m := &Model{
		sections:   sections,
		viewport:   vp,
		input:      ti,
		keys:       NewKeyMap(cfg.Keybindings),
		timestamps: logformat.NewTimestampParser(),
		statusStyle: r.NewStyle().
			Background(lipgloss.Color(cfg.Theme.StatusBar)).
			Foreground(lipgloss.Color(cfg.Theme.StatusBarText)),
		helpStyle: r.NewStyle().Foreground(lipgloss.Color(cfg.Theme.LineNumbers)),
		mode:      ModeNormal,
		width:     80,
		height:    24,
	}
	m.showSection(0)
	return m
}

// Run starts the pager and blocks until it quits
func Run(sections []Section, cfg *config.Config, r *lipgloss.Renderer) error {
	p := tea.NewProgram(NewModel(sections, cfg, r), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *Model) showSection(i int) {
	if len(m.sections) == 0 {
		return
	}
	m.current = (i + len(m.sections)) % len(m.sections)
	sec := m.sections[m.current]

	m.provider = source.NewSliceProvider(sec.Lines)
	m.viewport.SetProvider(m.provider)
	m.viewport.SetRenderer(sec.Content)
	m.viewport.ClearHighlight()

	// Keep the search term across files
	m.performSearch()
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Reserve 2 lines for status bar and help
		m.viewport.SetSize(msg.Width, msg.Height-2)
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeSearch:
		return m.handleInputKey(msg, m.submitSearch)
	case ModeGoto:
		return m.handleInputKey(msg, m.submitGoto)
	}

	m.message = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.ScrollDown):
		m.viewport.ScrollDown(1)
	case key.Matches(msg, m.keys.ScrollUp):
		m.viewport.ScrollUp(1)
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.PageDown()
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.PageUp()
	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
	case key.Matches(msg, m.keys.NextFile):
		m.showSection(m.current + 1)
	case key.Matches(msg, m.keys.PrevFile):
		m.showSection(m.current - 1)
	case key.Matches(msg, m.keys.Numbers):
		m.viewport.SetShowLineNumbers(!m.viewport.ShowLineNumbers())
	case key.Matches(msg, m.keys.NextMatch):
		m.stepSearch(1)
	case key.Matches(msg, m.keys.PrevMatch):
		m.stepSearch(-1)
	case key.Matches(msg, m.keys.Search):
		return m, m.startInput(ModeSearch, "Search...")
	case key.Matches(msg, m.keys.Goto):
		return m, m.startInput(ModeGoto, "Line number...")
	}

	return m, nil
}

func (m *Model) startInput(mode Mode, placeholder string) tea.Cmd {
	m.mode = mode
	m.input.SetValue("")
	m.input.Placeholder = placeholder
	m.input.Focus()
	return textinput.Blink
}

func (m *Model) handleInputKey(msg tea.KeyMsg, submit func(string)) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		submit(m.input.Value())
		m.mode = ModeNormal
		m.input.Blur()
		return m, nil

	case tea.KeyEsc:
		m.mode = ModeNormal
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) submitSearch(term string) {
	m.searchTerm = term
	m.performSearch()
	if m.searchTerm != "" && len(m.searchResults) == 0 {
		m.message = fmt.Sprintf("pattern not found: %s", term)
	}
}

// submitGoto jumps to the line with the given original index, or the
// next selected line after it
func (m *Model) submitGoto(value string) {
	if m.provider == nil {
		return
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		m.message = fmt.Sprintf("invalid line number: %s", value)
		return
	}
	pos, ok := m.provider.PositionOf(n)
	if !ok {
		m.message = fmt.Sprintf("no selected line at or after ln%d", n)
		return
	}
	m.viewport.GotoPosition(pos)
}

func (m *Model) performSearch() {
	m.searchResults = nil
	m.searchIndex = 0
	m.viewport.ClearHighlight()
	if m.searchTerm == "" || len(m.sections) == 0 {
		return
	}

	for pos, line := range m.sections[m.current].Lines {
		if strings.Contains(line.Text, m.searchTerm) {
			m.searchResults = append(m.searchResults, pos)
		}
	}

	if len(m.searchResults) > 0 {
		m.jumpToResult()
	}
}

func (m *Model) stepSearch(delta int) {
	if len(m.searchResults) == 0 {
		return
	}
	n := len(m.searchResults)
	m.searchIndex = ((m.searchIndex+delta)%n + n) % n
	m.jumpToResult()
}

func (m *Model) jumpToResult() {
	pos := m.searchResults[m.searchIndex]
	m.viewport.GotoPosition(pos)
	if line, _ := m.provider.GetLine(pos); line != nil {
		m.viewport.SetHighlightedLine(line.Index)
	}
}

// View implements tea.Model
func (m *Model) View() string {
	var builder strings.Builder

	builder.WriteString(m.viewport.Render())
	builder.WriteString("\n")
	builder.WriteString(m.statusStyle.Width(m.width).Render(m.status()))
	builder.WriteString("\n")

	help := "j/k:scroll  f/b:page  g/G:top/bottom  /:search  n/N:next/prev  :goto  [/]:file  l:numbers  q:quit"
	if m.message != "" {
		help = m.message
	}
	builder.WriteString(m.helpStyle.Render(help))

	return builder.String()
}

func (m *Model) status() string {
	switch m.mode {
	case ModeSearch:
		return "/" + m.input.View()
	case ModeGoto:
		return ":" + m.input.View()
	}

	if len(m.sections) == 0 {
		return " no files"
	}

	sec := m.sections[m.current]
	parts := []string{
		fmt.Sprintf(" (%d/%d) %s", m.current+1, len(m.sections), sec.Path),
		fmt.Sprintf("%d/%d", min(m.viewport.CurrentPosition()+1, len(sec.Lines)), len(sec.Lines)),
		fmt.Sprintf("%.0f%%", m.viewport.PercentScrolled()),
	}

	if top := m.viewport.TopLine(); top != nil {
		parts[1] = fmt.Sprintf("ln%d %s", top.Index, parts[1])
		if ts := m.timestamps.Parse(top.Text); ts != nil {
			parts = append(parts, logformat.FormatTimeWithDate(ts))
		}
	}

	if m.searchTerm != "" {
		parts = append(parts, fmt.Sprintf("[%d matches]", len(m.searchResults)))
	}

	return strings.Join(parts, "  ")
}

// Current returns the index of the section on screen
func (m *Model) Current() int {
	return m.current
}

// InputMode returns the current input mode
func (m *Model) InputMode() Mode {
	return m.mode
}
