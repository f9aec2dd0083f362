package splitter

// Listener receives allocator lifecycle notifications. All callbacks are
// invoked synchronously from the operation that caused them; the sizes
// slice passed to drag callbacks is a snapshot the receiver may keep.
type Listener interface {
	DragStarted(sizes []float64)
	DragMoved(sizes []float64)
	DragEnded(sizes []float64)
	PaneCollapsed(index int)
	PaneExpanded(index int)
}

// NopListener implements Listener with no-ops. Embed it to implement
// only the callbacks you care about.
type NopListener struct{}

func (NopListener) DragStarted([]float64) {}
func (NopListener) DragMoved([]float64)   {}
func (NopListener) DragEnded([]float64)   {}
func (NopListener) PaneCollapsed(int)     {}
func (NopListener) PaneExpanded(int)      {}
