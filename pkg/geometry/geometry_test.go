package geometry

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/go-strata/strata/pkg/errors"
)

func TestRectFromXYWH(t *testing.T) {
	r := RectFromXYWH(5, 10, 20, 15)

	if r.X() != 5 || r.Y() != 10 {
		t.Errorf("position = (%g, %g), want (5, 10)", r.X(), r.Y())
	}
	if r.Width() != 20 || r.Height() != 15 {
		t.Errorf("extent = %gx%g, want 20x15", r.Width(), r.Height())
	}
	if r.Max != Pt(25, 25) {
		t.Errorf("Max = %v, want (25, 25)", r.Max)
	}
}

func TestRectNegativeExtentIsKept(t *testing.T) {
	r := RectFromXYWH(10, 10, -4, -2)
	if r.Width() != -4 || r.Height() != -2 {
		t.Errorf("extent = %gx%g, want -4x-2", r.Width(), r.Height())
	}
	if !r.IsEmpty() {
		t.Error("negative extent should report IsEmpty")
	}
}

func TestRect_Contains(t *testing.T) {
	r := RectFromXYWH(0, 0, 10, 10)

	tests := map[string]struct {
		p    Point
		want bool
	}{
		"origin":             {Pt(0, 0), true},
		"inside":             {Pt(5, 5), true},
		"right edge":         {Pt(10, 5), false},
		"just left of right": {Pt(9.999, 5), true},
		"top edge":           {Pt(5, 10), false},
		"just below top":     {Pt(5, 9.999), true},
		"left of rect":       {Pt(-0.001, 5), false},
		"below rect":         {Pt(5, -0.001), false},
		"right-top corner":   {Pt(10, 10), false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestAdjacentRectsDoNotShareEdge(t *testing.T) {
	a := RectFromXYWH(0, 0, 10, 10)
	b := RectFromXYWH(10, 0, 10, 10)
	p := Pt(10, 5)
	if a.Contains(p) && b.Contains(p) {
		t.Error("shared edge point claimed by both rectangles")
	}
	if !b.Contains(p) {
		t.Error("shared edge point should belong to the right rectangle")
	}
}

func TestUnion(t *testing.T) {
	a := RectFromXYWH(0, 0, 10, 10)
	b := RectFromXYWH(5, 5, 10, 10)
	want := RectFromXYWH(0, 0, 15, 15)

	if got := Union(a, b); got != want {
		t.Errorf("Union = %v, want %v", got, want)
	}
}

func TestUnionWithZeroRectSkewsToOrigin(t *testing.T) {
	r := RectFromXYWH(5, 5, 10, 10)
	want := RectFromXYWH(0, 0, 15, 15)
	if got := Union(Rect{}, r); got != want {
		t.Errorf("Union(Rect{}, r) = %v, want %v", got, want)
	}
}

func TestUnionPoint(t *testing.T) {
	r := UnionPoint(RectFromXYWH(0, 0, 1, 1), Pt(4, -2))
	if want := RectFromXYWH(0, -2, 4, 3); r != want {
		t.Errorf("UnionPoint = %v, want %v", r, want)
	}
}

func TestOverlaps(t *testing.T) {
	base := RectFromXYWH(0, 0, 10, 10)

	tests := map[string]struct {
		other Rect
		want  bool
	}{
		"same":           {base, true},
		"partial":        {RectFromXYWH(5, 5, 10, 10), true},
		"inside":         {RectFromXYWH(2, 2, 2, 2), true},
		"touching right": {RectFromXYWH(10, 0, 5, 5), false},
		"touching top":   {RectFromXYWH(0, 10, 5, 5), false},
		"disjoint x":     {RectFromXYWH(20, 0, 5, 5), false},
		"disjoint y":     {RectFromXYWH(0, -20, 5, 5), false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Overlaps(base, tt.other); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := Overlaps(tt.other, base); got != tt.want {
				t.Errorf("Overlaps (swapped) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExpandShrink(t *testing.T) {
	r := RectFromXYWH(10, 10, 20, 20)

	if got, want := Expand(r, 5), RectFromXYWH(5, 5, 30, 30); got != want {
		t.Errorf("Expand = %v, want %v", got, want)
	}
	if got, want := Shrink(r, 5), RectFromXYWH(15, 15, 10, 10); got != want {
		t.Errorf("Shrink = %v, want %v", got, want)
	}

	over := Shrink(r, 15)
	if over.Width() >= 0 || !over.IsEmpty() {
		t.Errorf("over-shrunk rect = %v, want negative extent", over)
	}
}

func TestCorner(t *testing.T) {
	r := RectFromXYWH(1, 2, 3, 4)

	tests := []struct {
		c    Corner
		want Point
	}{
		{LeftBottom, Pt(1, 2)},
		{RightBottom, Pt(4, 2)},
		{LeftTop, Pt(1, 6)},
		{RightTop, Pt(4, 6)},
	}
	for _, tt := range tests {
		if got := r.Corner(tt.c); got != tt.want {
			t.Errorf("Corner(%d) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestCornerOutOfRangePanics(t *testing.T) {
	errors.SetHandler(quietHandler{})
	defer errors.SetHandler(nil)

	defer func() {
		if _, ok := recover().(*errors.ContractError); !ok {
			t.Error("expected a contract violation")
		}
	}()
	RectFromXYWH(0, 0, 1, 1).Corner(4)
}

func TestFit(t *testing.T) {
	bounds := RectFromXYWH(0, 0, 100, 100)

	tests := map[string]struct {
		r    Rect
		want Rect
	}{
		"already inside": {RectFromXYWH(10, 10, 20, 20), RectFromXYWH(10, 10, 20, 20)},
		"past right":     {RectFromXYWH(90, 10, 20, 20), RectFromXYWH(80, 10, 20, 20)},
		"past left":      {RectFromXYWH(-5, 10, 20, 20), RectFromXYWH(0, 10, 20, 20)},
		"past top":       {RectFromXYWH(10, 95, 20, 20), RectFromXYWH(10, 80, 20, 20)},
		"too wide":       {RectFromXYWH(-10, 10, 150, 20), RectFromXYWH(0, 10, 100, 20)},
		"too big":        {RectFromXYWH(50, 50, 200, 300), RectFromXYWH(0, 0, 100, 100)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Fit(bounds, tt.r)
			if got != tt.want {
				t.Errorf("Fit = %v, want %v", got, tt.want)
			}
			if !bounds.ContainsRect(got) {
				t.Errorf("Fit result %v escapes bounds", got)
			}
		})
	}
}

func TestFitInvertedBounds(t *testing.T) {
	// A 5x5 window shrunk by a margin of 6.
	bounds := RectFromXYWH(6, 6, -7, -7)
	got := Fit(bounds, RectFromXYWH(0, 0, 20, 10))
	if want := RectFromXYWH(2.5, 2.5, 0, 0); got != want {
		t.Errorf("Fit = %v, want %v", got, want)
	}
	if outer := Expand(bounds, 6); !outer.ContainsRect(got) {
		t.Errorf("Fit result %v escapes %v", got, outer)
	}

	// Only the inverted axis collapses.
	got = Fit(RectFromXYWH(0, 6, 100, -7), RectFromXYWH(90, 0, 20, 10))
	if want := RectFromXYWH(80, 2.5, 20, 0); got != want {
		t.Errorf("Fit = %v, want %v", got, want)
	}
}

func TestIntersect(t *testing.T) {
	a := RectFromXYWH(0, 0, 10, 10)
	if got, want := Intersect(a, RectFromXYWH(5, 5, 10, 10)), RectFromXYWH(5, 5, 5, 5); got != want {
		t.Errorf("Intersect = %v, want %v", got, want)
	}
	if got := Intersect(a, RectFromXYWH(20, 20, 1, 1)); got != (Rect{}) {
		t.Errorf("disjoint Intersect = %v, want zero", got)
	}
}

func TestScaleAndRound(t *testing.T) {
	r := Scale(RectFromXYWH(0, 0, 10, 10), 2)
	if want := RectFromXYWH(-5, -5, 20, 20); !r.Eq(want) {
		t.Errorf("Scale = %v, want %v", r, want)
	}
	if got, want := Round(RectFromXYWH(0.4, 0.6, 1.2, 1.2)), RectFromXYWH(0, 1, 2, 1); got != want {
		t.Errorf("Round = %v, want %v", got, want)
	}
}

func TestAlign(t *testing.T) {
	outside := RectFromXYWH(0, 0, 100, 50)
	inside := RectFromXYWH(-3, 7, 20, 10)

	tests := map[string]struct {
		alignment Alignment
		want      Rect
	}{
		"middle center": {MiddleCenter, RectFromXYWH(40, 20, 20, 10)},
		"bottom left":   {BottomLeft, RectFromXYWH(0, 0, 20, 10)},
		"top right":     {TopRight, RectFromXYWH(80, 40, 20, 10)},
		"middle left":   {MiddleLeft, RectFromXYWH(0, 20, 20, 10)},
		"top center":    {TopCenter, RectFromXYWH(40, 40, 20, 10)},
		"bottom right":  {BottomRight, RectFromXYWH(80, 0, 20, 10)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Align(outside, inside, tt.alignment)
			if !got.Eq(tt.want) {
				t.Errorf("Align = %v, want %v", got, tt.want)
			}
			if got.Extent() != inside.Extent() {
				t.Errorf("Align changed extent to %v", got.Extent())
			}
		})
	}
}

func TestAlignInvalidPanics(t *testing.T) {
	errors.SetHandler(quietHandler{})
	defer errors.SetHandler(nil)

	for name, a := range map[string]Alignment{
		"horizontal": {Horizontal: HorizontalAlignment(9), Vertical: Middle},
		"vertical":   {Horizontal: Center, Vertical: VerticalAlignment(-1)},
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if _, ok := recover().(*errors.ContractError); !ok {
					t.Error("expected a contract violation")
				}
			}()
			Align(RectFromXYWH(0, 0, 1, 1), RectFromXYWH(0, 0, 1, 1), a)
		})
	}
}

func TestExtentRangeClamp(t *testing.T) {
	r := ExtentRange{Min: Ext(10, 10), Max: Ext(20, Unbounded)}
	if got, want := r.Clamp(Ext(5, 500)), Ext(10, 500); got != want {
		t.Errorf("Clamp = %v, want %v", got, want)
	}
	if got, want := r.Clamp(Ext(30, 5)), Ext(20, 10); got != want {
		t.Errorf("Clamp = %v, want %v", got, want)
	}
}

func TestBaselinePosition(t *testing.T) {
	tests := []struct {
		b    Baseline
		want float64
	}{
		{Baseline{Anchor: Bottom, Offset: 2}, 12},
		{Baseline{Anchor: Top, Offset: -2}, 28},
		{Baseline{Anchor: Middle, Offset: -5}, 15},
	}
	for _, tt := range tests {
		if got := tt.b.Position(10, 30); got != tt.want {
			t.Errorf("%+v.Position = %g, want %g", tt.b, got, tt.want)
		}
	}
}

// Properties over deterministic pseudo-random rectangles.

func randomRect(rng *rand.Rand) Rect {
	return RectFromXYWH(
		rng.Float64()*200-100,
		rng.Float64()*200-100,
		rng.Float64()*100,
		rng.Float64()*100,
	)
}

func TestUnionProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 500; i++ {
		a, b := randomRect(rng), randomRect(rng)
		u := Union(a, b)
		if u != Union(b, a) {
			t.Fatalf("Union not commutative for %v, %v", a, b)
		}
		for c := LeftBottom; c <= RightTop; c++ {
			if !u.Covers(a.Corner(c)) {
				t.Fatalf("Union %v does not cover corner %d of %v", u, c, a)
			}
			if !u.Covers(b.Corner(c)) {
				t.Fatalf("Union %v does not cover corner %d of %v", u, c, b)
			}
		}
		// Interior points stay inside under the half-open rule.
		if !a.IsEmpty() && !u.Contains(a.Min) {
			t.Fatalf("Union %v does not contain %v", u, a.Min)
		}
		c := randomRect(rng)
		if Union(Union(a, b), c) != Union(a, Union(b, c)) {
			t.Fatalf("Union not associative")
		}
	}
}

func TestExpandShrinkRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 500; i++ {
		r := randomRect(rng)
		m := rng.Float64() * 50
		if got := Shrink(Expand(r, m), m); !got.Eq(r) {
			t.Fatalf("Shrink(Expand(%v, %g)) = %v", r, m, got)
		}
	}
}

func TestAlignPreservesExtent(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	alignments := []Alignment{
		BottomLeft, BottomCenter, BottomRight,
		MiddleLeft, MiddleCenter, MiddleRight,
		TopLeft, TopCenter, TopRight,
	}
	for i := 0; i < 300; i++ {
		outside, inside := randomRect(rng), randomRect(rng)
		for _, a := range alignments {
			got := Align(outside, inside, a).Extent()
			if math.Abs(got.Width-inside.Width()) > epsilon || math.Abs(got.Height-inside.Height()) > epsilon {
				t.Fatalf("Align(%v) extent = %v, want %v", a, got, inside.Extent())
			}
		}
	}
}

func TestOverlapsSymmetric(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	for i := 0; i < 1000; i++ {
		a, b := randomRect(rng), randomRect(rng)
		if Overlaps(a, b) != Overlaps(b, a) {
			t.Fatalf("Overlaps asymmetric for %v, %v", a, b)
		}
	}
}

type quietHandler struct{}

func (quietHandler) HandleError(*errors.Error)                    {}
func (quietHandler) HandlePanic(*errors.PanicError)               {}
func (quietHandler) HandleContractViolation(*errors.ContractError) {}
