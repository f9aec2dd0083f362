package splitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAllocator(t *testing.T, opts Options) *Allocator {
	t.Helper()
	a, err := New(opts)
	require.NoError(t, err)
	return a
}

func assertSumInvariant(t *testing.T, a *Allocator) {
	t.Helper()
	var total float64
	for _, v := range a.Sizes() {
		assert.GreaterOrEqual(t, v, 0.0)
		total += v
	}
	assert.InDelta(t, 100, total, 1e-6)
}

func TestNew_NormalizesInitialSizes(t *testing.T) {
	a := newAllocator(t, Options{Sizes: []float64{1, 1, 2}})

	assert.InDeltaSlice(t, []float64{25, 25, 50}, a.Sizes(), 1e-9)
	assert.Equal(t, 3, a.PaneCount())
	assert.Equal(t, 2, a.GutterCount())
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"no panes", Options{}},
		{"negative size", Options{Sizes: []float64{50, -10}}},
		{"zero sum", Options{Sizes: []float64{0, 0}}},
		{"bounds mismatch", Options{Sizes: []float64{50, 50}, Bounds: []Bounds{{}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opts)
			assert.Error(t, err)
		})
	}
}

func TestCollapsePane_RedistributesEqually(t *testing.T) {
	a := newAllocator(t, Options{Sizes: []float64{30, 40, 30}})

	a.CollapsePane(0)

	assert.True(t, a.IsCollapsed(0))
	assert.InDeltaSlice(t, []float64{0, 55, 45}, a.Sizes(), 1e-9)
	assertSumInvariant(t, a)
}

func TestCollapsePane_NoOps(t *testing.T) {
	a := newAllocator(t, Options{Sizes: []float64{30, 40, 30}})

	a.CollapsePane(-1)
	a.CollapsePane(3)
	assert.InDeltaSlice(t, []float64{30, 40, 30}, a.Sizes(), 1e-9)

	a.CollapsePane(1)
	before := a.Sizes()
	a.CollapsePane(1) // double collapse
	assert.Equal(t, before, a.Sizes())
	assertSumInvariant(t, a)
}

func TestCollapsePane_LastOpenPaneStays(t *testing.T) {
	a := newAllocator(t, Options{Sizes: []float64{50, 50}})

	a.CollapsePane(0)
	a.CollapsePane(1)

	assert.False(t, a.IsCollapsed(1))
	assert.InDeltaSlice(t, []float64{0, 100}, a.Sizes(), 1e-9)
}

func TestExpandPane_RestoresPreviousSize(t *testing.T) {
	a := newAllocator(t, Options{Sizes: []float64{30, 40, 30}})

	a.CollapsePane(1)
	a.ExpandPane(1)

	assert.False(t, a.IsCollapsed(1))
	assert.InDeltaSlice(t, []float64{30, 40, 30}, a.Sizes(), 1e-6)
	assertSumInvariant(t, a)
}

func TestExpandPane_NotCollapsedIsNoOp(t *testing.T) {
	a := newAllocator(t, Options{Sizes: []float64{30, 40, 30}})

	a.ExpandPane(0)
	a.ExpandPane(7)

	assert.InDeltaSlice(t, []float64{30, 40, 30}, a.Sizes(), 1e-9)
}

func TestExpandPane_ReclaimsOnlyFromRecipients(t *testing.T) {
	a := newAllocator(t, Options{Sizes: []float64{25, 25, 25, 25}})

	a.CollapsePane(0)
	a.CollapsePane(3)
	// Pane 3's collapse handed its size to panes 1 and 2 only; expanding
	// pane 3 must not disturb the collapsed pane 0.
	a.ExpandPane(3)

	sizes := a.Sizes()
	assert.Equal(t, 0.0, sizes[0])
	assert.True(t, a.IsCollapsed(0))
	assert.False(t, a.IsCollapsed(3))
	assertSumInvariant(t, a)
}

func TestResetSizes(t *testing.T) {
	a := newAllocator(t, Options{Sizes: []float64{30, 40, 30}, SnapThresholdPx: 20})

	a.CollapsePane(0)
	require.True(t, a.DragStart(1, 500))
	a.ResetSizes()

	assert.InDeltaSlice(t, []float64{30, 40, 30}, a.Sizes(), 1e-9)
	assert.False(t, a.IsCollapsed(0))
	assert.False(t, a.IsDragging())
}

func TestSumInvariant_AcrossOperationSequence(t *testing.T) {
	a := newAllocator(t, Options{
		Sizes:           []float64{10, 20, 30, 40},
		SnapThresholdPx: 15,
	})

	ops := []func(){
		func() { a.CollapsePane(2) },
		func() { a.DragStart(0, 100) },
		func() { a.DragMove(180, 800) },
		func() { a.DragMove(40, 800) },
		func() { a.DragEnd() },
		func() { a.ExpandPane(2) },
		func() { a.CollapsePane(0) },
		func() { a.ResetSizes() },
	}
	for _, op := range ops {
		op()
		assertSumInvariant(t, a)
	}
}

type recordingListener struct {
	NopListener
	collapsed []int
	expanded  []int
	dragEnds  int
}

func (l *recordingListener) PaneCollapsed(index int) { l.collapsed = append(l.collapsed, index) }
func (l *recordingListener) PaneExpanded(index int)  { l.expanded = append(l.expanded, index) }
func (l *recordingListener) DragEnded([]float64)     { l.dragEnds++ }

func TestListener_Notifications(t *testing.T) {
	listener := &recordingListener{}
	a := newAllocator(t, Options{Sizes: []float64{50, 50}, Listener: listener})

	a.CollapsePane(1)
	a.ExpandPane(1)
	require.True(t, a.DragStart(0, 10))
	a.DragEnd()

	assert.Equal(t, []int{1}, listener.collapsed)
	assert.Equal(t, []int{1}, listener.expanded)
	assert.Equal(t, 1, listener.dragEnds)
}
