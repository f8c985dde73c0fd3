package vellum

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Minimum on-screen radii: below these a cursor stops reading as a
// cursor. Erasers floor higher so they keep their "chunky" look at small
// brush sizes.
const (
	minPenCursorRadius    = 2.0
	minEraserCursorRadius = 4.0
	cursorOutlineWidth    = 1.5
)

// CursorGlyph describes a circular tool cursor as vector geometry: a
// filled circle with a thin contrasting outline, centered in a square
// image of Size pixels. The hotspot (the glyph's logical click point) is
// always the exact center.
//
// The descriptor is a plain value so hosts on any renderer can draw it
// themselves; Ebitengine hosts call [CursorGlyph.Rasterize].
type CursorGlyph struct {
	// Size is the edge length in pixels of the square image the glyph
	// occupies, sized to fit the circle plus its outline.
	Size int
	// Radius of the filled circle in pixels.
	Radius float64
	// Fill is the circle's fill color.
	Fill Color
	// Outline is the color of the thin ring drawn on the circle's edge.
	Outline Color
	// OutlineWidth is the ring's stroke width in pixels.
	OutlineWidth float64
}

// Hotspot returns the glyph's logical click point: the exact center of
// the image, in image pixels.
func (g CursorGlyph) Hotspot() (x, y int) {
	return g.Size / 2, g.Size / 2
}

// PenCursor builds the cursor glyph for the pen tool at the given brush
// size (diameter, screen pixels) in the participant's or tool's color:
// a filled circle with a thin translucent white outline so it stays
// visible on any background. The radius is floored to keep tiny brushes
// visible.
func PenCursor(size float64, fill Color) CursorGlyph {
	return circleGlyph(size/2, minPenCursorRadius, fill, Color{1, 1, 1, 0.7})
}

// EraserCursor builds the cursor glyph for the eraser tool at the given
// brush size (diameter, screen pixels): a white-filled circle with a thin
// black outline, floored at a larger minimum radius than the pen.
func EraserCursor(size float64) CursorGlyph {
	return circleGlyph(size/2, minEraserCursorRadius, ColorWhite, ColorBlack)
}

// CursorFor builds the glyph for the given tool. The color is only used
// by the pen; the eraser always renders white-on-black.
func CursorFor(tool Tool, size float64, fill Color) CursorGlyph {
	if tool == ToolEraser {
		return EraserCursor(size)
	}
	return PenCursor(size, fill)
}

// circleGlyph sizes the image so the circle plus half the outline stroke
// fits with a pixel to spare on each side, keeping the center exact.
func circleGlyph(radius, minRadius float64, fill, outline Color) CursorGlyph {
	if radius < minRadius {
		radius = minRadius
	}
	size := int(math.Ceil(2*(radius+cursorOutlineWidth))) + 2
	if size%2 != 0 {
		size++ // even size keeps the hotspot on a pixel center
	}
	return CursorGlyph{
		Size:         size,
		Radius:       radius,
		Fill:         fill,
		Outline:      outline,
		OutlineWidth: cursorOutlineWidth,
	}
}

// Rasterize renders the glyph into a fresh image suitable for drawing at
// the pointer position. Draw it offset by the hotspot so the circle's
// center lands on the pointer:
//
//	hx, hy := glyph.Hotspot()
//	op.GeoM.Translate(cursorX-float64(hx), cursorY-float64(hy))
func (g CursorGlyph) Rasterize() *ebiten.Image {
	img := ebiten.NewImage(g.Size, g.Size)
	cx := float32(g.Size) / 2
	cy := float32(g.Size) / 2
	vector.DrawFilledCircle(img, cx, cy, float32(g.Radius), g.Fill.toNRGBA(), true)
	vector.StrokeCircle(img, cx, cy, float32(g.Radius), float32(g.OutlineWidth), g.Outline.toNRGBA(), true)
	return img
}
