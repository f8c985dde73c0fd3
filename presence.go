package vellum

// Presence derives everything a host needs to render remote participant
// cursors: the deterministic color binding and the screen position under
// the current view. It holds no per-participant state; every lookup is
// recomputed on demand.
type Presence struct {
	view    *View
	palette Palette
}

// NewPresence creates a Presence reading pan/zoom from the given view and
// hashing participants into the given palette. A nil palette uses
// [DefaultPalette].
func NewPresence(view *View, palette Palette) *Presence {
	if palette == nil {
		palette = DefaultPalette
	}
	return &Presence{view: view, palette: palette}
}

// RemoteCursor is the render-ready description of one remote
// participant's cursor.
type RemoteCursor struct {
	// Screen is the cursor position under the current view, in screen
	// pixels.
	Screen Point
	// Color is the participant's assigned color.
	Color Color
	// Glyph is the cursor glyph for the participant's current tool and
	// brush size.
	Glyph CursorGlyph
}

// Cursor resolves a remote participant's cursor from its identifier,
// world-space position, tool, and brush size. Pure with respect to
// participant identity: the same id always resolves to the same color.
func (p *Presence) Cursor(id string, world Point, tool Tool, size float64) RemoteCursor {
	c := p.palette.ColorFor(id)
	return RemoteCursor{
		Screen: p.view.WorldToScreen(world),
		Color:  c,
		Glyph:  CursorFor(tool, size, c),
	}
}

// ColorFor returns the participant's assigned color from this presence's
// palette.
func (p *Presence) ColorFor(id string) Color {
	return p.palette.ColorFor(id)
}
