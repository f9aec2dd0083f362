// Package splitter implements a proportional split-pane allocator: it
// divides a container's extent among adjacent panes, integrates gutter
// drags into the size vector, enforces per-pane pixel bounds, snaps
// panes to zero below a threshold and supports collapse/expand/reset
// with size redistribution.
//
// The allocator is headless. It receives pointer coordinates and
// container extents from a presentation layer and emits size vectors
// and lifecycle notifications back; it never touches the terminal.
package splitter

import (
	"errors"
	"fmt"
)

// collapseRecord remembers how a collapsed pane's size was handed out,
// so expanding reclaims exactly those amounts from those recipients.
type collapseRecord struct {
	previousSize float64
	refunds      map[int]float64
}

// Options configures a new Allocator.
type Options struct {
	// Sizes are the initial pane percentages. They are normalized to
	// sum to 100 if they do not already. Must be non-empty.
	Sizes []float64
	// Bounds holds optional per-pane pixel bounds. Either empty or the
	// same length as Sizes.
	Bounds []Bounds
	// SnapThresholdPx forces an actively shrinking pane to zero once
	// its implied pixel size drops below this value. Zero disables
	// snapping.
	SnapThresholdPx float64
	// Listener receives lifecycle notifications. Nil means none.
	Listener Listener
}

// Allocator owns the size vector for a strip of adjacent panes.
// All operations run to completion before returning; the allocator is
// not safe for concurrent use.
type Allocator struct {
	sizes     []float64
	initial   []float64
	bounds    []Bounds
	snapPx    float64
	collapsed map[int]collapseRecord
	drag      *dragSession
	listener  Listener
	enabled   bool
}

// New creates an Allocator from the given options.
func New(opts Options) (*Allocator, error) {
	if len(opts.Sizes) == 0 {
		return nil, errors.New("splitter: at least one pane size is required")
	}
	if len(opts.Bounds) != 0 && len(opts.Bounds) != len(opts.Sizes) {
		return nil, fmt.Errorf("splitter: bounds length %d does not match pane count %d", len(opts.Bounds), len(opts.Sizes))
	}
	initial := make([]float64, len(opts.Sizes))
	for i, v := range opts.Sizes {
		if v < 0 {
			return nil, fmt.Errorf("splitter: negative size %f for pane %d", v, i)
		}
		initial[i] = v
	}
	if sum(initial) < sumTolerance {
		return nil, errors.New("splitter: initial sizes sum to zero")
	}
	normalize(initial)

	listener := opts.Listener
	if listener == nil {
		listener = NopListener{}
	}
	a := &Allocator{
		sizes:     append([]float64(nil), initial...),
		initial:   initial,
		bounds:    append([]Bounds(nil), opts.Bounds...),
		snapPx:    opts.SnapThresholdPx,
		collapsed: make(map[int]collapseRecord),
		listener:  listener,
		enabled:   true,
	}
	return a, nil
}

// PaneCount returns the number of panes.
func (a *Allocator) PaneCount() int {
	return len(a.sizes)
}

// GutterCount returns the number of draggable boundaries.
func (a *Allocator) GutterCount() int {
	return len(a.sizes) - 1
}

// Sizes returns a copy of the current size vector.
func (a *Allocator) Sizes() []float64 {
	return append([]float64(nil), a.sizes...)
}

// IsCollapsed reports whether the pane at index is collapsed.
// Out-of-range indices report false.
func (a *Allocator) IsCollapsed(index int) bool {
	_, ok := a.collapsed[index]
	return ok
}

// SetEnabled toggles whether new drag sessions may start. Disabling
// does not interrupt an active session.
func (a *Allocator) SetEnabled(enabled bool) {
	a.enabled = enabled
}

// Enabled reports whether new drag sessions may start.
func (a *Allocator) Enabled() bool {
	return a.enabled
}

// CollapsePane zeroes the pane at index and hands its size out equally
// among the remaining non-collapsed panes. Out-of-range and
// already-collapsed indices are no-ops, as is collapsing the last
// remaining open pane.
func (a *Allocator) CollapsePane(index int) {
	if index < 0 || index >= len(a.sizes) {
		return
	}
	if _, ok := a.collapsed[index]; ok {
		return
	}
	var recipients []int
	for i := range a.sizes {
		if i == index {
			continue
		}
		if _, ok := a.collapsed[i]; ok {
			continue
		}
		recipients = append(recipients, i)
	}
	if len(recipients) == 0 {
		return
	}

	freed := a.sizes[index]
	share := freed / float64(len(recipients))
	refunds := make(map[int]float64, len(recipients))
	for _, i := range recipients {
		a.sizes[i] += share
		refunds[i] = share
	}
	a.sizes[index] = 0
	a.collapsed[index] = collapseRecord{previousSize: freed, refunds: refunds}
	a.listener.PaneCollapsed(index)
}

// ExpandPane restores a collapsed pane to its pre-collapse size,
// reclaiming the redistributed amount from the panes that received it.
// Indices that are not collapsed are no-ops.
func (a *Allocator) ExpandPane(index int) {
	record, ok := a.collapsed[index]
	if !ok {
		return
	}
	for i, amount := range record.refunds {
		if i >= len(a.sizes) {
			continue
		}
		take := amount
		if take > a.sizes[i] {
			take = a.sizes[i]
		}
		a.sizes[i] -= take
	}
	a.sizes[index] = record.previousSize
	delete(a.collapsed, index)
	// A recipient may have shrunk below its refund since the collapse;
	// renormalize to absorb the difference.
	normalize(a.sizes)
	a.listener.PaneExpanded(index)
}

// ResetSizes restores the initial size vector and clears all collapsed
// state, including panes collapsed by drag snapping. Any active drag
// session is abandoned.
func (a *Allocator) ResetSizes() {
	copy(a.sizes, a.initial)
	clear(a.collapsed)
	a.drag = nil
}
