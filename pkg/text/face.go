package text

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/go-strata/strata/pkg/geometry"
)

// FaceMeasurer measures strings with a font face.
type FaceMeasurer struct {
	face font.Face
}

// NewFaceMeasurer wraps a font face.
func NewFaceMeasurer(face font.Face) *FaceMeasurer {
	return &FaceMeasurer{face: face}
}

// Basic returns a measurer over the fixed 7x13 bitmap face. It needs no
// font data and is what tests use.
func Basic() *FaceMeasurer {
	return &FaceMeasurer{face: basicfont.Face7x13}
}

// GoRegular returns a measurer over the Go Regular font at size points and
// 72 DPI, so one point is one unit of window space.
func GoRegular(size float64) (*FaceMeasurer, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Go Regular: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Go Regular face: %w", err)
	}
	return &FaceMeasurer{face: face}, nil
}

// Face returns the underlying face.
func (m *FaceMeasurer) Face() font.Face {
	return m.face
}

// Measure returns the advance width of s and the face's line height.
func (m *FaceMeasurer) Measure(s string) Metrics {
	metrics := m.face.Metrics()
	advance := font.MeasureString(m.face, s)
	return Metrics{
		Extent: geometry.Extent{
			Width:  fixedToFloat(advance),
			Height: fixedToFloat(metrics.Ascent + metrics.Descent),
		},
		Ascent: fixedToFloat(metrics.Ascent),
	}
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
