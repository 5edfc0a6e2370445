package geometry

import "github.com/go-strata/strata/pkg/errors"

// HorizontalAlignment positions a rectangle along the x axis.
type HorizontalAlignment int

const (
	Left HorizontalAlignment = iota
	Center
	Right
)

func (a HorizontalAlignment) String() string {
	switch a {
	case Left:
		return "left"
	case Center:
		return "center"
	case Right:
		return "right"
	default:
		return "invalid"
	}
}

// VerticalAlignment positions a rectangle along the y axis.
type VerticalAlignment int

const (
	Bottom VerticalAlignment = iota
	Middle
	Top
)

func (a VerticalAlignment) String() string {
	switch a {
	case Bottom:
		return "bottom"
	case Middle:
		return "middle"
	case Top:
		return "top"
	default:
		return "invalid"
	}
}

// Alignment combines a horizontal and a vertical policy.
type Alignment struct {
	Horizontal HorizontalAlignment
	Vertical   VerticalAlignment
}

// Common alignments.
var (
	BottomLeft   = Alignment{Left, Bottom}
	BottomCenter = Alignment{Center, Bottom}
	BottomRight  = Alignment{Right, Bottom}
	MiddleLeft   = Alignment{Left, Middle}
	MiddleCenter = Alignment{Center, Middle}
	MiddleRight  = Alignment{Right, Middle}
	TopLeft      = Alignment{Left, Top}
	TopCenter    = Alignment{Center, Top}
	TopRight     = Alignment{Right, Top}
)

func (a Alignment) String() string {
	return a.Vertical.String() + "-" + a.Horizontal.String()
}

// Align repositions inside within outside according to alignment. The
// extent of inside is preserved. An alignment outside the defined policies
// is a contract violation.
func Align(outside, inside Rect, alignment Alignment) Rect {
	var x float64
	switch alignment.Horizontal {
	case Left:
		x = outside.Min.X
	case Right:
		x = outside.Max.X - inside.Width()
	case Center:
		x = outside.Min.X + outside.Width()*0.5 - inside.Width()*0.5
	default:
		errors.Violation("geometry.Align", "horizontal alignment %d out of range", int(alignment.Horizontal))
	}

	var y float64
	switch alignment.Vertical {
	case Bottom:
		y = outside.Min.Y
	case Top:
		y = outside.Max.Y - inside.Height()
	case Middle:
		y = outside.Min.Y + outside.Height()*0.5 - inside.Height()*0.5
	default:
		errors.Violation("geometry.Align", "vertical alignment %d out of range", int(alignment.Vertical))
	}

	return RectFromPointExtent(Point{X: x, Y: y}, inside.Extent())
}
