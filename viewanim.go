package vellum

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ViewAnimator animates pan and zoom on a [View] over time, for smooth
// "jump to participant" and wheel-zoom behavior. Create one per View and
// call [ViewAnimator.Update] each frame with the elapsed seconds; there
// is no global animation manager.
//
// Starting a new animation of either kind replaces any in-flight
// animation of the same kind.
type ViewAnimator struct {
	view *View

	panX, panY *gween.Tween
	panDone    bool

	zoomTween *gween.Tween
	zoomDone  bool
	// Anchor captured when the zoom animation starts: the world point
	// under anchorScreen stays fixed for the whole animation.
	anchorScreen Point
	anchorWorld  Point
}

// NewViewAnimator creates an animator driving the given view.
func NewViewAnimator(view *View) *ViewAnimator {
	return &ViewAnimator{view: view, panDone: true, zoomDone: true}
}

// PanTo animates the view's pan offset to the given value over duration
// seconds using the easing function.
func (a *ViewAnimator) PanTo(pan Point, duration float32, fn ease.TweenFunc) {
	from := a.view.Pan()
	a.panX = gween.New(float32(from.X), float32(pan.X), duration, fn)
	a.panY = gween.New(float32(from.Y), float32(pan.Y), duration, fn)
	a.panDone = false
}

// ZoomTo animates the view's zoom factor to the given value over duration
// seconds, keeping the world point under anchor (a screen position,
// typically the cursor) fixed throughout. Returns [ErrInvalidZoom] for
// zoom <= 0.
func (a *ViewAnimator) ZoomTo(zoom float64, anchor Point, duration float32, fn ease.TweenFunc) error {
	if zoom <= 0 {
		return ErrInvalidZoom
	}
	a.anchorScreen = anchor
	a.anchorWorld = a.view.ScreenToWorld(anchor)
	a.zoomTween = gween.New(float32(a.view.Zoom()), float32(zoom), duration, fn)
	a.zoomDone = false
	return nil
}

// Update advances all active animations by dt seconds and writes the
// resulting pan/zoom to the view. Returns true when no animation remains
// active.
func (a *ViewAnimator) Update(dt float32) bool {
	if !a.panDone {
		x, doneX := a.panX.Update(dt)
		y, doneY := a.panY.Update(dt)
		a.view.SetPan(Point{X: float64(x), Y: float64(y)})
		a.panDone = doneX && doneY
	}

	if !a.zoomDone {
		z, done := a.zoomTween.Update(dt)
		zoom := float64(z)
		// The tween interpolates between two positive endpoints, so zoom
		// stays positive and SetZoom cannot fail.
		_ = a.view.SetZoom(zoom)
		a.view.SetPan(a.anchorScreen.Sub(a.anchorWorld.Scale(zoom)))
		a.zoomDone = done
	}

	return a.panDone && a.zoomDone
}

// Done reports whether all animations have finished.
func (a *ViewAnimator) Done() bool {
	return a.panDone && a.zoomDone
}
