// Package splitview is the terminal adapter for the splitter
// allocator: it translates mouse presses, motion and releases on gutter
// cells into drag signals, renders panes and gutters, and maps key
// bindings onto collapse/expand/reset operations.
package splitview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"

	"github.com/splitgrid/splitgrid/internal/splitter"
	"github.com/splitgrid/splitgrid/internal/ui/layout"
	"github.com/splitgrid/splitgrid/internal/ui/presets"
)

const statusHeight = 1

// Options configures a splitview model.
type Options struct {
	Sizes           []float64
	Bounds          []splitter.Bounds
	SnapThresholdPx float64
	Vertical        bool
	GutterThickness int
	GutterGlyph     string
	Titles          []string
	Presets         map[string][]float64
}

// Model owns an allocator and presents it as a bubbletea model.
type Model struct {
	allocator *splitter.Allocator
	bounds    []splitter.Bounds
	snapPx    float64

	vertical  bool
	thickness int
	glyph     string
	titles    []string
	focused   int

	width  int
	height int

	// Geometry of the last render, used for mouse hit testing and for
	// mapping drag deltas back into percentages.
	gutterRects []layout.Box
	lastAvail   int

	picker      *presets.Model
	presetTable map[string][]float64

	keys   KeyMap
	styles Styles
	status string
}

// New creates a splitview model. Invalid allocator options are
// reported, not tolerated: the caller decides the fallback.
func New(opts Options) (*Model, error) {
	m := &Model{
		bounds:      opts.Bounds,
		snapPx:      opts.SnapThresholdPx,
		vertical:    opts.Vertical,
		thickness:   opts.GutterThickness,
		glyph:       opts.GutterGlyph,
		titles:      opts.Titles,
		presetTable: opts.Presets,
		keys:        DefaultKeyMap(),
		styles:      DefaultStyles(),
	}
	if m.thickness <= 0 {
		m.thickness = 1
	}
	if m.glyph == "" {
		m.glyph = "│"
	}
	allocator, err := splitter.New(splitter.Options{
		Sizes:           opts.Sizes,
		Bounds:          opts.Bounds,
		SnapThresholdPx: opts.SnapThresholdPx,
		Listener:        m,
	})
	if err != nil {
		return nil, err
	}
	m.allocator = allocator
	return m, nil
}

// Allocator exposes the underlying allocator, mainly for tests.
func (m *Model) Allocator() *splitter.Allocator {
	return m.allocator
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case presets.ApplyMsg:
		m.picker = nil
		m.applyPreset(msg.Name, msg.Sizes)
		return m, nil

	case presets.CloseMsg:
		m.picker = nil
		return m, nil

	case tea.KeyMsg:
		if m.picker != nil {
			return m, m.picker.Update(msg)
		}
		return m, m.handleKey(msg)
	}
	if m.picker != nil {
		return m, m.picker.Update(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.NextPane):
		m.focused = (m.focused + 1) % m.allocator.PaneCount()
	case key.Matches(msg, m.keys.PrevPane):
		m.focused = (m.focused + m.allocator.PaneCount() - 1) % m.allocator.PaneCount()
	case key.Matches(msg, m.keys.Toggle):
		if m.allocator.IsCollapsed(m.focused) {
			m.allocator.ExpandPane(m.focused)
		} else {
			m.allocator.CollapsePane(m.focused)
		}
	case key.Matches(msg, m.keys.Reset):
		m.allocator.ResetSizes()
		m.status = "sizes reset"
	case key.Matches(msg, m.keys.Orientation):
		m.vertical = !m.vertical
	case key.Matches(msg, m.keys.Presets):
		if len(m.presetTable) > 0 {
			m.picker = presets.New(m.presetTable)
			return m.picker.Init()
		}
		m.status = "no presets configured"
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	coord := float64(msg.X)
	if m.vertical {
		coord = float64(msg.Y)
	}

	if m.allocator.IsDragging() {
		switch msg.Action {
		case tea.MouseActionRelease:
			m.allocator.DragEnd()
		case tea.MouseActionMotion:
			m.allocator.DragMove(coord, float64(m.lastAvail))
		}
		return nil
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		if gutter, ok := m.gutterAt(msg.X, msg.Y); ok {
			m.allocator.DragStart(gutter, coord)
		}
	}
	return nil
}

func (m *Model) gutterAt(x, y int) (int, bool) {
	for i, rect := range m.gutterRects {
		if rect.R.Dx() <= 0 || rect.R.Dy() <= 0 {
			continue
		}
		if x >= rect.R.Min.X && x < rect.R.Max.X && y >= rect.R.Min.Y && y < rect.R.Max.Y {
			return i, true
		}
	}
	return 0, false
}

// applyPreset re-seeds the allocator with a named size vector. Presets
// whose length differs from the pane count are rejected with a status
// message, matching the allocator's tolerant surface.
func (m *Model) applyPreset(name string, sizes []float64) {
	if len(sizes) != m.allocator.PaneCount() {
		m.status = fmt.Sprintf("preset %q has %d panes, layout has %d", name, len(sizes), m.allocator.PaneCount())
		return
	}
	allocator, err := splitter.New(splitter.Options{
		Sizes:           sizes,
		Bounds:          m.bounds,
		SnapThresholdPx: m.snapPx,
		Listener:        m,
	})
	if err != nil {
		m.status = fmt.Sprintf("preset %q: %v", name, err)
		return
	}
	m.allocator = allocator
	m.status = fmt.Sprintf("preset %q applied", name)
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.picker != nil {
		return m.picker.View()
	}

	box := layout.NewBox(cellbuf.Rect(0, 0, m.width, m.height-statusHeight))
	sizes := m.allocator.Sizes()
	panes, gutters, avail := layout.Strip(box, sizes, m.thickness, m.vertical)
	m.gutterRects = gutters
	m.lastAvail = avail

	var parts []string
	for i, pane := range panes {
		if pane.R.Dx() <= 0 || pane.R.Dy() <= 0 {
			continue
		}
		parts = append(parts, m.renderPane(i, pane, sizes[i]))
		if i < len(gutters) && gutters[i].R.Dx() > 0 && gutters[i].R.Dy() > 0 {
			parts = append(parts, m.renderGutter(gutters[i], i))
		}
	}

	var strip string
	if m.vertical {
		strip = lipgloss.JoinVertical(lipgloss.Left, parts...)
	} else {
		strip = lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
	return strip + "\n" + m.statusLine()
}

func (m *Model) renderPane(index int, pane layout.Box, size float64) string {
	w, h := pane.R.Dx(), pane.R.Dy()
	style := m.styles.Pane
	if index == m.focused {
		style = m.styles.FocusedPane
	}
	if w < 2 || h < 2 {
		return lipgloss.NewStyle().Width(w).Height(h).Render("")
	}

	title := fmt.Sprintf("pane %d", index+1)
	if index < len(m.titles) && m.titles[index] != "" {
		title = m.titles[index]
	}
	content := fmt.Sprintf("%s\n%.1f%%", title, size)
	return style.Width(w - 2).Height(h - 2).Render(content)
}

func (m *Model) renderGutter(gutter layout.Box, index int) string {
	style := m.styles.Gutter
	if dragged, ok := m.allocator.DraggedGutter(); ok && dragged == index {
		style = m.styles.ActiveGutter
	}
	if m.vertical {
		line := strings.Repeat("─", gutter.R.Dx())
		rows := make([]string, gutter.R.Dy())
		for i := range rows {
			rows[i] = line
		}
		return style.Render(strings.Join(rows, "\n"))
	}
	col := make([]string, gutter.R.Dy())
	for i := range col {
		col[i] = strings.Repeat(m.glyph, gutter.R.Dx())
	}
	return style.Render(strings.Join(col, "\n"))
}

func (m *Model) statusLine() string {
	sizes := m.allocator.Sizes()
	fields := make([]string, len(sizes))
	for i, size := range sizes {
		if m.allocator.IsCollapsed(i) {
			fields[i] = "–"
			continue
		}
		fields[i] = fmt.Sprintf("%.0f", size)
	}
	line := strings.Join(fields, "/")
	if m.status != "" {
		line += "  " + m.status
	}
	line += "  (tab: focus, space: collapse, r: reset, p: presets, q: quit)"
	return m.styles.Status.MaxWidth(m.width).Render(line)
}

// The model listens to its own allocator to surface lifecycle events in
// the status line.

func (m *Model) DragStarted([]float64) {
	m.status = "dragging"
}

func (m *Model) DragMoved([]float64) {}

func (m *Model) DragEnded(sizes []float64) {
	m.status = fmt.Sprintf("resized to %s", formatSizes(sizes))
}

func (m *Model) PaneCollapsed(index int) {
	m.status = fmt.Sprintf("pane %d collapsed", index+1)
}

func (m *Model) PaneExpanded(index int) {
	m.status = fmt.Sprintf("pane %d expanded", index+1)
}

func formatSizes(sizes []float64) string {
	fields := make([]string, len(sizes))
	for i, size := range sizes {
		fields[i] = fmt.Sprintf("%.0f", size)
	}
	return strings.Join(fields, "/")
}
