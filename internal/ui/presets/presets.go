// Package presets implements a fuzzy-filtered picker over named layout
// presets. Applying a preset re-seeds the allocator with that preset's
// size vector.
package presets

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

const maxVisible = 10

// ApplyMsg is emitted when the user confirms a preset.
type ApplyMsg struct {
	Name  string
	Sizes []float64
}

// CloseMsg is emitted when the picker is dismissed.
type CloseMsg struct{}

type Model struct {
	input   textinput.Model
	names   []string
	table   map[string][]float64
	matches fuzzy.Matches
	cursor  int

	promptStyle lipgloss.Style
	matchStyle  lipgloss.Style
	cursorStyle lipgloss.Style
	dimStyle    lipgloss.Style
}

func New(table map[string][]float64) *Model {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	input := textinput.New()
	input.Prompt = "preset: "
	input.Focus()

	m := &Model{
		input:       input,
		names:       names,
		table:       table,
		promptStyle: lipgloss.NewStyle().Bold(true),
		matchStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		cursorStyle: lipgloss.NewStyle().Reverse(true),
		dimStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
	m.filter()
	return m
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd
	}

	switch keyMsg.String() {
	case "esc", "ctrl+c":
		return func() tea.Msg { return CloseMsg{} }
	case "enter":
		name, ok := m.selected()
		if !ok {
			return func() tea.Msg { return CloseMsg{} }
		}
		sizes := append([]float64(nil), m.table[name]...)
		return func() tea.Msg { return ApplyMsg{Name: name, Sizes: sizes} }
	case "up", "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
		}
		return nil
	case "down", "ctrl+n":
		if m.cursor < len(m.matches)-1 {
			m.cursor++
		}
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.filter()
	return cmd
}

func (m *Model) filter() {
	query := m.input.Value()
	if query == "" {
		m.matches = make(fuzzy.Matches, len(m.names))
		for i, name := range m.names {
			m.matches[i] = fuzzy.Match{Str: name, Index: i}
		}
	} else {
		m.matches = fuzzy.Find(query, m.names)
	}
	if m.cursor >= len(m.matches) {
		m.cursor = len(m.matches) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) selected() (string, bool) {
	if len(m.matches) == 0 || m.cursor >= len(m.matches) {
		return "", false
	}
	return m.matches[m.cursor].Str, true
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.promptStyle.Render("switch layout preset"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	for i, match := range m.matches {
		if i >= maxVisible {
			b.WriteString(m.dimStyle.Render(fmt.Sprintf("… %d more", len(m.matches)-maxVisible)))
			b.WriteString("\n")
			break
		}
		line := highlight(match, m.matchStyle)
		sizes := m.table[match.Str]
		line += m.dimStyle.Render(fmt.Sprintf("  %v", sizes))
		if i == m.cursor {
			line = m.cursorStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(m.matches) == 0 {
		b.WriteString(m.dimStyle.Render("  no matching preset"))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.dimStyle.Render("enter: apply, esc: cancel"))
	return b.String()
}

// highlight renders a match with the fuzzy-matched runes emphasized.
func highlight(match fuzzy.Match, style lipgloss.Style) string {
	matched := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matched[idx] = true
	}
	var b strings.Builder
	for i, r := range match.Str {
		if matched[i] {
			b.WriteString(style.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
