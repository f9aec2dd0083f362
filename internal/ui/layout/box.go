// Package layout provides rectangle arithmetic for composing terminal
// views: boxes divided by fixed, percentage and fill specs, and the
// mapping from pane size vectors to concrete pane and gutter
// rectangles.
package layout

import "github.com/charmbracelet/x/cellbuf"

// Box is a rectangular region of the screen.
type Box struct {
	R cellbuf.Rectangle
}

// NewBox creates a box covering the given rectangle.
func NewBox(r cellbuf.Rectangle) Box {
	return Box{R: r}
}

type specKind int

const (
	specFixed specKind = iota
	specPercent
	specFill
)

// Spec describes how much of a box one slot takes when dividing it.
type Spec struct {
	kind  specKind
	value float64
}

// Fixed takes exactly size cells.
func Fixed(size int) Spec {
	return Spec{kind: specFixed, value: float64(size)}
}

// Percent takes a percentage of the whole box.
func Percent(pct float64) Spec {
	return Spec{kind: specPercent, value: pct}
}

// Fill takes a weighted share of whatever fixed and percent slots leave
// over. The last fill slot absorbs rounding remainders.
func Fill(weight float64) Spec {
	return Spec{kind: specFill, value: weight}
}

// V divides the box vertically (top to bottom).
func (b Box) V(specs ...Spec) []Box {
	sizes := divide(b.R.Dy(), specs)
	boxes := make([]Box, len(sizes))
	y := b.R.Min.Y
	for i, size := range sizes {
		boxes[i] = NewBox(cellbuf.Rect(b.R.Min.X, y, b.R.Dx(), size))
		y += size
	}
	return boxes
}

// H divides the box horizontally (left to right).
func (b Box) H(specs ...Spec) []Box {
	sizes := divide(b.R.Dx(), specs)
	boxes := make([]Box, len(sizes))
	x := b.R.Min.X
	for i, size := range sizes {
		boxes[i] = NewBox(cellbuf.Rect(x, b.R.Min.Y, size, b.R.Dy()))
		x += size
	}
	return boxes
}

func divide(total int, specs []Spec) []int {
	sizes := make([]int, len(specs))
	remaining := total
	var fillWeight float64
	lastFill := -1

	for i, spec := range specs {
		switch spec.kind {
		case specFixed:
			sizes[i] = clampSize(int(spec.value), remaining)
		case specPercent:
			sizes[i] = clampSize(int(spec.value*float64(total)/100+0.5), remaining)
		case specFill:
			fillWeight += spec.value
			lastFill = i
			continue
		}
		remaining -= sizes[i]
	}

	if lastFill < 0 || fillWeight <= 0 {
		return sizes
	}
	fillTotal := remaining
	for i, spec := range specs {
		if spec.kind != specFill {
			continue
		}
		if i == lastFill {
			sizes[i] = remaining
			break
		}
		sizes[i] = clampSize(int(spec.value/fillWeight*float64(fillTotal)+0.5), remaining)
		remaining -= sizes[i]
	}
	return sizes
}

func clampSize(size, remaining int) int {
	if size < 0 {
		return 0
	}
	if size > remaining {
		return remaining
	}
	return size
}
