package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/go-strata/strata/pkg/geometry"
)

// kappa places cubic control points so a quarter circle is approximated.
const kappa = 0.5522847498

// Rasterizer paints display lists into RGBA images. Window space is y-up;
// rows are flipped so the window's bottom edge is the image's last row.
type Rasterizer struct {
	Background color.RGBA

	z    *vector.Rasterizer
	mask *image.Alpha
}

// Rasterize paints list in paint order onto a new image.
func (r *Rasterizer) Rasterize(list *DisplayList) *image.RGBA {
	ext := list.Extent()
	w, h := int(math.Ceil(ext.Width)), int(math.Ceil(ext.Height))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(r.Background), image.Point{}, draw.Src)

	if r.z == nil {
		r.z = vector.NewRasterizer(w, h)
	}
	for _, p := range list.InPaintOrder() {
		clip := r.clipTo(dst, p.Clip())
		if clip == nil {
			continue
		}
		switch p := p.(type) {
		case Quad:
			r.drawQuad(clip, p, h)
		case Text:
			drawText(clip, p, h)
		}
	}
	return dst
}

// clipTo returns the part of dst inside the window-space clip rectangle, or
// nil if nothing is visible.
func (r *Rasterizer) clipTo(dst *image.RGBA, clip geometry.Rect) *image.RGBA {
	h := float64(dst.Bounds().Dy())
	px := image.Rect(
		int(math.Floor(clip.Min.X)), int(math.Floor(h-clip.Max.Y)),
		int(math.Ceil(clip.Max.X)), int(math.Ceil(h-clip.Min.Y)),
	).Intersect(dst.Bounds())
	if px.Empty() {
		return nil
	}
	return dst.SubImage(px).(*image.RGBA)
}

func (r *Rasterizer) drawQuad(dst *image.RGBA, q Quad, height int) {
	rect := q.Bounds()
	if rect.IsEmpty() {
		return
	}
	if q.BorderWidth > 0 && q.Border.A > 0 {
		r.fillRounded(dst, rect, q.Corners, q.Border, height)
		inner := geometry.Shrink(rect, q.BorderWidth)
		if inner.IsEmpty() {
			return
		}
		var radii [4]float64
		for i, c := range q.Corners {
			radii[i] = math.Max(c-q.BorderWidth, 0)
		}
		r.fillRounded(dst, inner, radii, q.Fill, height)
		return
	}
	r.fillRounded(dst, rect, q.Corners, q.Fill, height)
}

func (r *Rasterizer) fillRounded(dst *image.RGBA, rect geometry.Rect, radii [4]float64, c color.RGBA, height int) {
	if c.A == 0 {
		return
	}
	full := dst.Rect
	if sz := r.z.Size(); sz.X < full.Max.X || sz.Y < full.Max.Y {
		r.z = vector.NewRasterizer(max(sz.X, full.Max.X), max(sz.Y, full.Max.Y))
	} else {
		r.z.Reset(sz.X, sz.Y)
	}
	r.z.DrawOp = draw.Src

	h := float64(height)
	x0, x1 := float32(rect.Min.X), float32(rect.Max.X)
	y0, y1 := float32(h-rect.Max.Y), float32(h-rect.Min.Y)

	limit := math.Min(rect.Width(), rect.Height()) * 0.5
	clamp := func(v float64) float32 { return float32(math.Min(math.Max(v, 0), limit)) }
	lb := clamp(radii[geometry.LeftBottom])
	rb := clamp(radii[geometry.RightBottom])
	lt := clamp(radii[geometry.LeftTop])
	rt := clamp(radii[geometry.RightTop])
	const k = float32(kappa)

	z := r.z
	z.MoveTo(x0+lt, y0)
	z.LineTo(x1-rt, y0)
	z.CubeTo(x1-rt+k*rt, y0, x1, y0+rt-k*rt, x1, y0+rt)
	z.LineTo(x1, y1-rb)
	z.CubeTo(x1, y1-rb+k*rb, x1-rb+k*rb, y1, x1-rb, y1)
	z.LineTo(x0+lb, y1)
	z.CubeTo(x0+lb-k*lb, y1, x0, y1-lb+k*lb, x0, y1-lb)
	z.LineTo(x0, y0+lt)
	z.CubeTo(x0, y0+lt-k*lt, x0+lt-k*lt, y0, x0+lt, y0)
	z.ClosePath()

	// The rasterizer is not an image; its coverage goes through an alpha
	// mask the size of the whole target.
	bounds := image.Rectangle{Max: z.Size()}
	if r.mask == nil || r.mask.Rect != bounds {
		r.mask = image.NewAlpha(bounds)
	}
	z.Draw(r.mask, bounds, image.Opaque, image.Point{})
	draw.DrawMask(dst, full, image.NewUniform(c), image.Point{}, r.mask, full.Min, draw.Over)
}

func drawText(dst *image.RGBA, t Text, height int) {
	face := t.Face
	if face == nil {
		face = basicfont.Face7x13
	}
	o := t.Origin.Add(t.Transform.Translate)
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(t.Color),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(math.Round(o.X * 64)),
			Y: fixed.Int26_6(math.Round((float64(height) - o.Y) * 64)),
		},
	}
	d.DrawString(t.Content)
}
