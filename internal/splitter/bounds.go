package splitter

import "math"

// sumTolerance is how far the size vector may stray from 100 before a
// renormalization pass is considered necessary.
const sumTolerance = 1e-6

// Bounds holds optional pixel bounds for a single pane. A zero value
// means unbounded on that side.
type Bounds struct {
	MinPx float64
	MaxPx float64
}

func (b Bounds) minPercent(extentPx float64) float64 {
	if b.MinPx <= 0 || extentPx <= 0 {
		return 0
	}
	return b.MinPx / extentPx * 100
}

func (b Bounds) maxPercent(extentPx float64) float64 {
	if b.MaxPx <= 0 || extentPx <= 0 {
		return 100
	}
	return b.MaxPx / extentPx * 100
}

// Resolve clamps a candidate size vector to the per-pane pixel bounds and
// renormalizes it to sum to 100. Pinned panes (collapsed ones) stay at
// zero and take no part in clamping or redistribution.
//
// Surplus or deficit left by clamping is redistributed only among panes
// that still have slack toward their bound, for at most len(candidate)
// passes. When the bound set is feasible the result satisfies every
// bound; when it is not, the last pass falls back to a plain
// proportional renormalization, which may leave a bound violated.
//
// The input slice is not modified.
func Resolve(candidate []float64, extentPx float64, bounds []Bounds, pinned func(int) bool) []float64 {
	out := make([]float64, len(candidate))
	copy(out, candidate)
	if len(out) == 0 {
		return out
	}
	if pinned == nil {
		pinned = func(int) bool { return false }
	}
	for i := range out {
		if pinned(i) {
			out[i] = 0
		} else if out[i] < 0 {
			out[i] = 0
		}
	}

	for pass := 0; pass < len(out); pass++ {
		for i := range out {
			if pinned(i) {
				continue
			}
			lo, hi := boundsAt(bounds, i, extentPx)
			if out[i] < lo {
				out[i] = lo
			}
			if out[i] > hi {
				out[i] = hi
			}
		}

		diff := 100 - sum(out)
		if math.Abs(diff) < sumTolerance {
			return out
		}

		// Slack toward the bound that the correction pushes against.
		slack := make([]float64, len(out))
		var total float64
		for i := range out {
			if pinned(i) {
				continue
			}
			lo, hi := boundsAt(bounds, i, extentPx)
			if diff > 0 {
				slack[i] = hi - out[i]
			} else {
				slack[i] = out[i] - lo
			}
			if slack[i] < 0 {
				slack[i] = 0
			}
			total += slack[i]
		}
		if total < sumTolerance {
			break
		}
		share := diff
		if math.Abs(diff) > total {
			share = math.Copysign(total, diff)
		}
		for i := range out {
			if slack[i] > 0 {
				out[i] += share * slack[i] / total
			}
		}
	}

	// Infeasible bounds: best-effort proportional renormalization.
	normalize(out)
	return out
}

func boundsAt(bounds []Bounds, i int, extentPx float64) (lo, hi float64) {
	if i >= len(bounds) {
		return 0, 100
	}
	return bounds[i].minPercent(extentPx), bounds[i].maxPercent(extentPx)
}

func sum(sizes []float64) float64 {
	var s float64
	for _, v := range sizes {
		s += v
	}
	return s
}

// normalize scales sizes in place so they sum to 100. A zero-sum vector
// is left untouched.
func normalize(sizes []float64) {
	s := sum(sizes)
	if s < sumTolerance {
		return
	}
	factor := 100 / s
	for i := range sizes {
		sizes[i] *= factor
	}
}
