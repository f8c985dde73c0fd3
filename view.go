package vellum

import "errors"

// ErrInvalidZoom is returned by View mutators when asked for a zoom
// factor <= 0.
var ErrInvalidZoom = errors.New("vellum: zoom must be > 0")

// View holds the pan/zoom state mapping the infinite world-space canvas
// to the viewport. The two transforms are exact mutual inverses for any
// fixed pan/zoom pair:
//
//	screen = world*zoom + pan
//	world  = (screen - pan) / zoom
//
// Zoom is kept strictly positive by the mutators; the transform methods
// assume that invariant and do not re-validate.
//
// A View is read by [Surface] on every sample and mutated only by the
// host's navigation logic (directly or through a [ViewAnimator]). It is
// not safe for concurrent use.
type View struct {
	pan  Point
	zoom float64
}

// NewView creates a View with no pan offset and a zoom of 1.
func NewView() *View {
	return &View{zoom: 1}
}

// Pan returns the current pan offset in screen units.
func (v *View) Pan() Point {
	return v.pan
}

// Zoom returns the current zoom factor.
func (v *View) Zoom() float64 {
	return v.zoom
}

// SetPan replaces the pan offset.
func (v *View) SetPan(pan Point) {
	v.pan = pan
}

// PanBy shifts the pan offset by (dx, dy) screen units.
func (v *View) PanBy(dx, dy float64) {
	v.pan.X += dx
	v.pan.Y += dy
}

// SetZoom replaces the zoom factor. Returns [ErrInvalidZoom] for zoom <= 0.
func (v *View) SetZoom(zoom float64) error {
	if zoom <= 0 {
		return ErrInvalidZoom
	}
	v.zoom = zoom
	return nil
}

// ZoomAt multiplies the zoom by factor while keeping the world point
// under the given screen position fixed, which is how wheel and pinch
// zoom behave. Returns [ErrInvalidZoom] if the resulting zoom would be
// <= 0.
func (v *View) ZoomAt(screen Point, factor float64) error {
	newZoom := v.zoom * factor
	if newZoom <= 0 {
		return ErrInvalidZoom
	}
	anchor := v.ScreenToWorld(screen)
	v.zoom = newZoom
	v.pan = screen.Sub(anchor.Scale(newZoom))
	return nil
}

// WorldToScreen converts a world-space point to screen space.
func (v *View) WorldToScreen(world Point) Point {
	return Point{
		X: world.X*v.zoom + v.pan.X,
		Y: world.Y*v.zoom + v.pan.Y,
	}
}

// ScreenToWorld converts a screen-space point to world space.
func (v *View) ScreenToWorld(screen Point) Point {
	return Point{
		X: (screen.X - v.pan.X) / v.zoom,
		Y: (screen.Y - v.pan.Y) / v.zoom,
	}
}
