// Package geometry provides the axis-aligned rectangle algebra used by the
// layout passes.
//
// Coordinates are window coordinates with x growing to the right and y
// growing up, so a rectangle's Min corner is its left-bottom corner and its
// Max corner is its right-top corner. All operations are value based and
// total over floating-point input. Constructors never normalize: a negative
// width or height is a legal intermediate value, and callers that need a
// drawable rectangle check IsEmpty.
package geometry

import (
	"math"

	"github.com/go-strata/strata/pkg/errors"
)

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Point is a 2D coordinate in window space.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by v.
func (p Point) Add(v Point) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from v to p.
func (p Point) Sub(v Point) Point {
	return Point{X: p.X - v.X, Y: p.Y - v.Y}
}

// Extent is a width and height.
type Extent struct {
	Width  float64
	Height float64
}

// Ext is shorthand for Extent{Width: w, Height: h}.
func Ext(w, h float64) Extent {
	return Extent{Width: w, Height: h}
}

// Max returns the component-wise maximum of e and o.
func (e Extent) Max(o Extent) Extent {
	return Extent{Width: math.Max(e.Width, o.Width), Height: math.Max(e.Height, o.Height)}
}

// Min returns the component-wise minimum of e and o.
func (e Extent) Min(o Extent) Extent {
	return Extent{Width: math.Min(e.Width, o.Width), Height: math.Min(e.Height, o.Height)}
}

// Rect is an axis-aligned rectangle stored as its minimum (left-bottom) and
// maximum (right-top) corners.
type Rect struct {
	Min Point
	Max Point
}

// RectFromXYWH constructs a Rect from its left-bottom corner and extent.
// Width and height may be negative.
func RectFromXYWH(x, y, width, height float64) Rect {
	return Rect{
		Min: Point{X: x, Y: y},
		Max: Point{X: x + width, Y: y + height},
	}
}

// RectFromPointExtent constructs a Rect from a position and an extent.
func RectFromPointExtent(position Point, extent Extent) Rect {
	return RectFromXYWH(position.X, position.Y, extent.Width, extent.Height)
}

// RectFromExtent constructs a Rect at the origin with the given extent.
func RectFromExtent(extent Extent) Rect {
	return RectFromXYWH(0, 0, extent.Width, extent.Height)
}

// RectFromPoints constructs the Rect spanned by two corners. The corners
// are used as given; pass them in min/max order.
func RectFromPoints(p1, p2 Point) Rect {
	return Rect{Min: p1, Max: p2}
}

// X returns the left edge.
func (r Rect) X() float64 { return r.Min.X }

// Y returns the bottom edge.
func (r Rect) Y() float64 { return r.Min.Y }

// Width returns the width of the rectangle. It may be negative.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle. It may be negative.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Extent returns the width and height of the rectangle.
func (r Rect) Extent() Extent {
	return Extent{Width: r.Width(), Height: r.Height()}
}

// Position returns the left-bottom corner.
func (r Rect) Position() Point {
	return r.Min
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{
		X: (r.Min.X + r.Max.X) * 0.5,
		Y: (r.Min.Y + r.Max.Y) * 0.5,
	}
}

// IsEmpty reports whether the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y
}

// Eq reports whether two rectangles are equal within a small tolerance.
func (r Rect) Eq(o Rect) bool {
	return floatEqual(r.Min.X, o.Min.X) && floatEqual(r.Min.Y, o.Min.Y) &&
		floatEqual(r.Max.X, o.Max.X) && floatEqual(r.Max.Y, o.Max.Y)
}

// Contains reports whether p lies inside the rectangle. The left and bottom
// edges are inside; the right and top edges are outside, so two adjacent
// rectangles never both claim a point on their shared edge.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Covers reports whether p lies inside the rectangle or on any of its
// edges. Unlike Contains it accepts the right and top edges, so every
// corner of a rectangle is covered by it.
func (r Rect) Covers(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// ContainsRect reports whether o lies completely inside r, edges included.
func (r Rect) ContainsRect(o Rect) bool {
	return o.Min.X >= r.Min.X && o.Min.Y >= r.Min.Y &&
		o.Max.X <= r.Max.X && o.Max.Y <= r.Max.Y
}

// Corner indexes the four corners of a rectangle.
type Corner int

const (
	LeftBottom Corner = iota
	RightBottom
	LeftTop
	RightTop
)

// Corner returns one of the four corners of the rectangle.
func (r Rect) Corner(c Corner) Point {
	switch c {
	case LeftBottom:
		return r.Min
	case RightBottom:
		return Point{X: r.Max.X, Y: r.Min.Y}
	case LeftTop:
		return Point{X: r.Min.X, Y: r.Max.Y}
	case RightTop:
		return r.Max
	default:
		errors.Violation("geometry.Rect.Corner", "corner index %d out of range", int(c))
		return Point{}
	}
}

// Translate returns the rectangle moved by v.
func (r Rect) Translate(v Point) Rect {
	return Rect{Min: r.Min.Add(v), Max: r.Max.Add(v)}
}

// Union returns the smallest rectangle containing both a and b.
//
// A zero Rect is not an identity element: it spans the origin, so seeding
// a bounding box with Rect{} pulls the result toward (0, 0).
func Union(a, b Rect) Rect {
	return Rect{
		Min: Point{X: math.Min(a.Min.X, b.Min.X), Y: math.Min(a.Min.Y, b.Min.Y)},
		Max: Point{X: math.Max(a.Max.X, b.Max.X), Y: math.Max(a.Max.Y, b.Max.Y)},
	}
}

// UnionPoint returns the smallest rectangle containing r and p.
func UnionPoint(r Rect, p Point) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, p.X), Y: math.Min(r.Min.Y, p.Y)},
		Max: Point{X: math.Max(r.Max.X, p.X), Y: math.Max(r.Max.Y, p.Y)},
	}
}

// Overlaps reports whether a and b share any area. Rectangles that only
// touch along an edge do not overlap.
func Overlaps(a, b Rect) bool {
	if a.Min.X >= b.Max.X || b.Min.X >= a.Max.X {
		return false
	}
	if a.Min.Y >= b.Max.Y || b.Min.Y >= a.Max.Y {
		return false
	}
	return true
}

// Intersect returns the overlap of a and b, or the zero Rect when they are
// disjoint.
func Intersect(a, b Rect) Rect {
	r := Rect{
		Min: Point{X: math.Max(a.Min.X, b.Min.X), Y: math.Max(a.Min.Y, b.Min.Y)},
		Max: Point{X: math.Min(a.Max.X, b.Max.X), Y: math.Min(a.Max.Y, b.Max.Y)},
	}
	if r.IsEmpty() {
		return Rect{}
	}
	return r
}

// Expand moves all four edges outward by margin. A negative margin moves
// them inward and may produce a negative extent.
func Expand(r Rect, margin float64) Rect {
	return Rect{
		Min: Point{X: r.Min.X - margin, Y: r.Min.Y - margin},
		Max: Point{X: r.Max.X + margin, Y: r.Max.Y + margin},
	}
}

// Shrink moves all four edges inward by margin.
func Shrink(r Rect, margin float64) Rect {
	return Expand(r, -margin)
}

// Scale grows the rectangle about its center so its extent is multiplied by
// factor.
func Scale(r Rect, factor float64) Rect {
	dx := r.Width() * (factor - 1) * 0.5
	dy := r.Height() * (factor - 1) * 0.5
	return Rect{
		Min: Point{X: r.Min.X - dx, Y: r.Min.Y - dy},
		Max: Point{X: r.Max.X + dx, Y: r.Max.Y + dy},
	}
}

// Round rounds both corners to the nearest integer coordinates.
func Round(r Rect) Rect {
	return Rect{
		Min: Point{X: math.Round(r.Min.X), Y: math.Round(r.Min.Y)},
		Max: Point{X: math.Round(r.Max.X), Y: math.Round(r.Max.Y)},
	}
}

// Fit moves r so it lies inside bounds. When r is larger than bounds along
// an axis its extent is clamped to the bounds along that axis. Along an
// axis where bounds is inverted, the result collapses to zero size at the
// bounds' center.
func Fit(bounds, r Rect) Rect {
	x, w := fitAxis(bounds.Min.X, bounds.Max.X, r.Min.X, r.Width())
	y, h := fitAxis(bounds.Min.Y, bounds.Max.Y, r.Min.Y, r.Height())
	return RectFromXYWH(x, y, w, h)
}

func fitAxis(lo, hi, pos, size float64) (float64, float64) {
	if hi < lo {
		return (lo + hi) / 2, 0
	}
	if size > hi-lo {
		return lo, math.Max(hi-lo, 0)
	}
	if pos+size > hi {
		pos = hi - size
	}
	if pos < lo {
		pos = lo
	}
	return pos, size
}

// floatEqual returns true if two float64 values are approximately equal.
func floatEqual(a, b float64) bool {
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}
	return math.Abs(a-b) <= epsilon
}
