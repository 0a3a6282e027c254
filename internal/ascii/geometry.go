// ABOUTME: Output grid planning with character aspect correction
// ABOUTME: Maps every output cell to the source pixel rectangle it covers

package ascii

import "math"

// CharAspect is the assumed height-to-width ratio of a terminal character
// cell. Output height is scaled by it so image proportions survive cells
// that are taller than they are wide.
const CharAspect = 0.55

// Rect is a half-open pixel region [X0,X1) x [Y0,Y1) in source coordinates.
type Rect struct {
	X0, Y0, X1, Y1 int
}

// Empty reports whether the rectangle contains no pixels.
func (r Rect) Empty() bool {
	return r.X0 >= r.X1 || r.Y0 >= r.Y1
}

// Grid maps source pixels to output character cells.
type Grid struct {
	SrcW, SrcH int
	OutW, OutH int
}

// PlanGrid computes the output grid for a srcW x srcH source and the
// requested character width. Height is round(srcH * outW/srcW * aspect),
// half away from zero, floored at 1. Callers validate outW >= 1 and
// srcW, srcH >= 1 upstream.
func PlanGrid(srcW, srcH, outW int, aspect float64) Grid {
	outH := int(math.Round(float64(srcH) * (float64(outW) / float64(srcW)) * aspect))
	if outH < 1 {
		outH = 1
	}
	return Grid{SrcW: srcW, SrcH: srcH, OutW: outW, OutH: outH}
}

// Cell returns the source rectangle covered by output cell (ox, oy).
// Edges are floor(ox*W/OW) and ceil((ox+1)*W/OW), clamped into the source
// bounds; adjacent cells may share a boundary column or row but leave no
// gaps, so every source pixel is covered.
func (g Grid) Cell(ox, oy int) Rect {
	return Rect{
		X0: clamp(ox*g.SrcW/g.OutW, 0, g.SrcW),
		Y0: clamp(oy*g.SrcH/g.OutH, 0, g.SrcH),
		X1: clamp(ceilDiv((ox+1)*g.SrcW, g.OutW), 0, g.SrcW),
		Y1: clamp(ceilDiv((oy+1)*g.SrcH, g.OutH), 0, g.SrcH),
	}
}

// ceilDiv divides non-negative a by positive b, rounding up.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
