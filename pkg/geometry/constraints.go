package geometry

import (
	"fmt"
	"math"
)

// ExtentRange is the range of extents a widget is willing to occupy.
// Max components may be +Inf.
type ExtentRange struct {
	Min Extent
	Max Extent
}

// Unbounded is used for a maximum that has no limit.
var Unbounded = math.Inf(1)

// Fixed returns a range whose minimum and maximum are both e.
func Fixed(e Extent) ExtentRange {
	return ExtentRange{Min: e, Max: e}
}

// AtLeast returns a range from e with no upper bound.
func AtLeast(e Extent) ExtentRange {
	return ExtentRange{Min: e, Max: Extent{Width: Unbounded, Height: Unbounded}}
}

// Clamp limits e to the range.
func (r ExtentRange) Clamp(e Extent) Extent {
	return Extent{
		Width:  math.Min(math.Max(e.Width, r.Min.Width), r.Max.Width),
		Height: math.Min(math.Max(e.Height, r.Min.Height), r.Max.Height),
	}
}

func (r ExtentRange) String() string {
	return fmt.Sprintf("[%gx%g, %gx%g]", r.Min.Width, r.Min.Height, r.Max.Width, r.Max.Height)
}

// Baseline anchors text vertically inside a rectangle: the position of the
// anchor edge (or middle) plus an offset.
type Baseline struct {
	Anchor VerticalAlignment
	Offset float64
}

// Position resolves the baseline against a rectangle's bottom and top.
func (b Baseline) Position(bottom, top float64) float64 {
	switch b.Anchor {
	case Bottom:
		return bottom + b.Offset
	case Top:
		return top + b.Offset
	default:
		return (bottom+top)*0.5 + b.Offset
	}
}
