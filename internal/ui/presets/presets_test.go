package presets

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTable() map[string][]float64 {
	return map[string][]float64{
		"halves": {50, 50},
		"thirds": {33, 34, 33},
		"editor": {20, 60, 20},
	}
}

func typeString(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestNew_ListsAllPresetsSorted(t *testing.T) {
	m := New(testTable())

	require.Len(t, m.matches, 3)
	assert.Equal(t, "editor", m.matches[0].Str)
	assert.Equal(t, "halves", m.matches[1].Str)
	assert.Equal(t, "thirds", m.matches[2].Str)
}

func TestFilter_NarrowsMatches(t *testing.T) {
	m := New(testTable())

	typeString(m, "hal")

	require.Len(t, m.matches, 1)
	assert.Equal(t, "halves", m.matches[0].Str)
}

func TestEnter_AppliesSelectedPreset(t *testing.T) {
	m := New(testTable())
	typeString(m, "edi")

	cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(ApplyMsg)
	require.True(t, ok)
	assert.Equal(t, "editor", msg.Name)
	assert.Equal(t, []float64{20, 60, 20}, msg.Sizes)
}

func TestEnter_NoMatchCloses(t *testing.T) {
	m := New(testTable())
	typeString(m, "zzz")

	cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	_, ok := cmd().(CloseMsg)
	assert.True(t, ok)
}

func TestEscape_Closes(t *testing.T) {
	m := New(testTable())

	cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	_, ok := cmd().(CloseMsg)
	assert.True(t, ok)
}

func TestCursorMovement(t *testing.T) {
	m := New(testTable())

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown}) // clamped at last entry

	name, ok := m.selected()
	require.True(t, ok)
	assert.Equal(t, "thirds", name)

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	name, _ = m.selected()
	assert.Equal(t, "halves", name)
}

func TestView_ShowsSizesAndHelp(t *testing.T) {
	m := New(testTable())

	view := m.View()

	assert.Contains(t, view, "halves")
	assert.Contains(t, view, "enter: apply")
}
