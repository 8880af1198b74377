// Package tui provides terminal user interface components for forage-snippets
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/firefly-engineering/firefly-forage/packages/forage-snippets/internal/generator"
)

// chrome is the number of lines taken by the tab bar, clause line and help.
const chrome = 5

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	tabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(lipgloss.Color("245"))

	activeTabStyle = tabStyle.
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Underline(true)

	clauseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)
)

// tab is one dialect's snippet.
type tab struct {
	dialect generator.Dialect
	content string
}

// PreviewModel is the bubbletea model for the tabbed snippet viewer
type PreviewModel struct {
	tabs     []tab
	active   int
	clauses  []generator.ClauseID
	viewport viewport.Model
	quitting bool
	width    int
	height   int
}

// NewPreview creates a viewer over the given dialects of out. The first
// dialect is shown initially.
func NewPreview(out generator.Output, dialects []generator.Dialect) PreviewModel {
	tabs := make([]tab, 0, len(dialects))
	for _, d := range dialects {
		tabs = append(tabs, tab{dialect: d, content: out.Snippet(d)})
	}

	m := PreviewModel{
		tabs:     tabs,
		clauses:  out.Clauses,
		viewport: viewport.New(80, 20),
	}
	m.showActive()
	return m
}

func (m *PreviewModel) showActive() {
	if len(m.tabs) == 0 {
		m.viewport.SetContent("")
		return
	}
	m.viewport.SetContent(m.tabs[m.active].content)
	m.viewport.GotoTop()
}

func (m *PreviewModel) switchTab(delta int) {
	if len(m.tabs) == 0 {
		return
	}
	m.active = (m.active + delta + len(m.tabs)) % len(m.tabs)
	m.showActive()
}

// Active returns the dialect currently shown.
func (m PreviewModel) Active() generator.Dialect {
	if len(m.tabs) == 0 {
		return ""
	}
	return m.tabs[m.active].dialect
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chrome, 1)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "right", "l":
			m.switchTab(1)
			return m, nil

		case "shift+tab", "left", "h":
			m.switchTab(-1)
			return m, nil

		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m PreviewModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Firefly Forage - Sandbox Snippets"))
	b.WriteString("\n")
	b.WriteString(m.tabBar())
	b.WriteString("\n")
	b.WriteString(clauseStyle.Render(clauseLine(m.clauses)))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("[tab] Switch  [↑/↓] Scroll  [q] Quit  %3.f%%", m.viewport.ScrollPercent()*100)))
	return b.String()
}

func (m PreviewModel) tabBar() string {
	rendered := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		style := tabStyle
		if i == m.active {
			style = activeTabStyle
		}
		rendered[i] = style.Render(t.dialect.Label())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func clauseLine(clauses []generator.ClauseID) string {
	names := make([]string, len(clauses))
	for i, c := range clauses {
		names[i] = string(c)
	}
	return "clauses: " + strings.Join(names, " · ")
}

// RunPreview runs the interactive snippet viewer
func RunPreview(out generator.Output, dialects []generator.Dialect) error {
	m := NewPreview(out, dialects)
	p := tea.NewProgram(m, tea.WithAltScreen())

	_, err := p.Run()
	return err
}
