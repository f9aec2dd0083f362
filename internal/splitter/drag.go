package splitter

// dragSession is the state captured at drag start. Every move is
// re-derived from the snapshot rather than the previous frame's output,
// so repeated small moves cannot accumulate drift.
type dragSession struct {
	gutter     int
	startCoord float64
	snapshot   []float64
}

// IsDragging reports whether a drag session is active.
func (a *Allocator) IsDragging() bool {
	return a.drag != nil
}

// DraggedGutter returns the gutter index of the active drag session.
func (a *Allocator) DraggedGutter() (int, bool) {
	if a.drag == nil {
		return 0, false
	}
	return a.drag.gutter, true
}

// DragStart begins a drag session on the given gutter, capturing the
// current sizes as the session snapshot. It reports whether the session
// started: a disabled allocator, an out-of-range gutter, or a collapsed
// adjacent pane all reject the transition. Starting while a session is
// active replaces it, which doubles as cancel-with-rollback for
// callers that want to abandon a drag cleanly.
func (a *Allocator) DragStart(gutter int, pointerCoord float64) bool {
	if !a.enabled {
		return false
	}
	if gutter < 0 || gutter >= a.GutterCount() {
		return false
	}
	if a.IsCollapsed(gutter) || a.IsCollapsed(gutter+1) {
		return false
	}
	a.drag = &dragSession{
		gutter:     gutter,
		startCoord: pointerCoord,
		snapshot:   a.Sizes(),
	}
	a.listener.DragStarted(a.Sizes())
	return true
}

// DragMove integrates a pointer move into the size vector. Only the two
// panes adjacent to the dragged gutter change. It reports whether the
// vector was updated: moves outside a session or before the container
// extent is known (extentPx <= 0) are no-ops.
func (a *Allocator) DragMove(pointerCoord, extentPx float64) bool {
	s := a.drag
	if s == nil || extentPx <= 0 {
		return false
	}
	left, right := s.gutter, s.gutter+1
	deltaPercent := (pointerCoord - s.startCoord) / extentPx * 100

	candidate := append([]float64(nil), s.snapshot...)
	candidate[left] += deltaPercent
	candidate[right] -= deltaPercent

	// Snap-to-zero. The checks are mutually exclusive within a frame: a
	// two-pane transfer cannot push both sides below the threshold.
	snapped := -1
	if a.snapPx > 0 {
		switch {
		case candidate[left]/100*extentPx < a.snapPx:
			candidate[left] = 0
			candidate[right] = s.snapshot[left] + s.snapshot[right]
			snapped = left
		case candidate[right]/100*extentPx < a.snapPx:
			candidate[right] = 0
			candidate[left] = s.snapshot[left] + s.snapshot[right]
			snapped = right
		}
	}
	a.syncSnapState(left, s.snapshot[left], snapped == left)
	a.syncSnapState(right, s.snapshot[right], snapped == right)

	resolved := Resolve(candidate, extentPx, a.bounds, a.IsCollapsed)
	copy(a.sizes, resolved)
	a.listener.DragMoved(a.Sizes())
	return true
}

// DragEnd finalizes the session. The last move's vector stands; no
// further constraint pass runs.
func (a *Allocator) DragEnd() {
	if a.drag == nil {
		return
	}
	a.drag = nil
	a.listener.DragEnded(a.Sizes())
}

// syncSnapState updates collapse membership for one side of the dragged
// gutter. A snap donates the whole snapshot size to the opposite pane,
// so the refund record points there; dragging back above the threshold
// within the same session reverses the collapse.
func (a *Allocator) syncSnapState(index int, snapshotSize float64, snapped bool) {
	_, collapsed := a.collapsed[index]
	switch {
	case snapped && !collapsed:
		other := a.drag.gutter
		if index == other {
			other = a.drag.gutter + 1
		}
		a.collapsed[index] = collapseRecord{
			previousSize: snapshotSize,
			refunds:      map[int]float64{other: snapshotSize},
		}
		a.listener.PaneCollapsed(index)
	case !snapped && collapsed:
		delete(a.collapsed, index)
		a.listener.PaneExpanded(index)
	}
}
