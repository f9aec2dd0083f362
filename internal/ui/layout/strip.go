package layout

import "github.com/charmbracelet/x/cellbuf"

// collapsedEpsilon treats percentage slivers below it as collapsed when
// deciding gutter visibility.
const collapsedEpsilon = 1e-6

// Strip maps an allocator size vector onto a box, producing one
// rectangle per pane and one per gutter. Gutter cells are reserved
// outside the percentage accounting: the percentages apply to the
// extent left over after visible gutters are taken out, which Strip
// returns as avail so callers can feed the same extent back into drag
// arithmetic.
//
// len(gutters) is always len(sizes)-1. A gutter adjacent to a collapsed
// (zero-size) pane is suppressed; both it and the collapsed pane come
// back as empty rectangles.
func Strip(box Box, sizes []float64, thickness int, vertical bool) (panes, gutters []Box, avail int) {
	panes = make([]Box, len(sizes))
	if len(sizes) == 0 {
		return panes, nil, 0
	}
	gutters = make([]Box, len(sizes)-1)
	if thickness < 0 {
		thickness = 0
	}

	visible := make([]bool, len(gutters))
	gutterCells := 0
	for g := range gutters {
		visible[g] = sizes[g] > collapsedEpsilon && sizes[g+1] > collapsedEpsilon
		if visible[g] {
			gutterCells += thickness
		}
	}

	extent := box.R.Dy()
	if !vertical {
		extent = box.R.Dx()
	}
	avail = extent - gutterCells
	if avail < 0 {
		avail = 0
	}

	cells := paneCells(sizes, avail)
	pos := box.R.Min.Y
	if !vertical {
		pos = box.R.Min.X
	}
	for i := range sizes {
		panes[i] = slice(box, pos, cells[i], vertical)
		pos += cells[i]
		if i < len(gutters) {
			if visible[i] {
				gutters[i] = slice(box, pos, thickness, vertical)
				pos += thickness
			} else {
				gutters[i] = Box{}
			}
		}
	}
	return panes, gutters, avail
}

// paneCells converts percentages to whole cells, giving the rounding
// remainder to the last non-collapsed pane so the cells always cover
// avail exactly.
func paneCells(sizes []float64, avail int) []int {
	cells := make([]int, len(sizes))
	last := -1
	used := 0
	for i, size := range sizes {
		if size <= collapsedEpsilon {
			continue
		}
		cells[i] = int(size / 100 * float64(avail))
		used += cells[i]
		last = i
	}
	if last >= 0 {
		cells[last] += avail - used
		if cells[last] < 0 {
			cells[last] = 0
		}
	}
	return cells
}

func slice(box Box, pos, size int, vertical bool) Box {
	if size <= 0 {
		return Box{}
	}
	if vertical {
		return NewBox(cellbuf.Rect(box.R.Min.X, pos, box.R.Dx(), size))
	}
	return NewBox(cellbuf.Rect(pos, box.R.Min.Y, size, box.R.Dy()))
}
