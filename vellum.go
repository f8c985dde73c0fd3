package vellum

import "image/color"

// Point is a 2D coordinate used throughout the API. A Point is either in
// screen space (viewport pixels) or world space (the infinite canvas); the
// two spaces are never mixed without an explicit [View] transform.
type Point struct {
	X, Y float64
}

// Add returns the component-wise sum p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns the component-wise difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale returns p with both components multiplied by s.
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// ColorBlack is opaque black.
var ColorBlack = Color{0, 0, 0, 1}

// toNRGBA converts to a non-premultiplied 8-bit color for the standard
// image/color interfaces. Components are clamped to [0, 1].
func (c Color) toNRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Tool identifies the drawing tool a cursor glyph or stroke belongs to.
type Tool uint8

const (
	ToolPen    Tool = iota // draws in the participant's color
	ToolEraser             // removes previously drawn content
)
