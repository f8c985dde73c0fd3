package vellum

import "testing"

func TestPresenceCursorResolution(t *testing.T) {
	view := NewView()
	view.SetPan(Point{100, 50})
	if err := view.SetZoom(2); err != nil {
		t.Fatalf("SetZoom: %v", err)
	}
	p := NewPresence(view, nil)

	cur := p.Cursor("user-42", Point{10, 20}, ToolPen, 16)

	if cur.Screen != (Point{120, 90}) {
		t.Errorf("Screen = %v, want (120, 90)", cur.Screen)
	}
	if cur.Color != ColorFor("user-42") {
		t.Errorf("Color = %v, want deterministic binding %v", cur.Color, ColorFor("user-42"))
	}
	if cur.Glyph != PenCursor(16, cur.Color) {
		t.Errorf("Glyph = %v, want pen glyph in the participant color", cur.Glyph)
	}
}

func TestPresenceEraserIgnoresParticipantColor(t *testing.T) {
	p := NewPresence(NewView(), nil)
	cur := p.Cursor("user-42", Point{}, ToolEraser, 16)

	if cur.Glyph.Fill != ColorWhite {
		t.Errorf("eraser glyph fill = %v, want white", cur.Glyph.Fill)
	}
	// The participant color is still reported for stroke rendering.
	if cur.Color != ColorFor("user-42") {
		t.Errorf("Color = %v, want %v", cur.Color, ColorFor("user-42"))
	}
}

func TestPresenceCustomPalette(t *testing.T) {
	only := Color{0.1, 0.2, 0.3, 1}
	p := NewPresence(NewView(), Palette{only})

	if got := p.ColorFor("anyone"); got != only {
		t.Errorf("ColorFor = %v, want the single palette entry", got)
	}
}

func TestPresenceTracksViewMutation(t *testing.T) {
	view := NewView()
	p := NewPresence(view, nil)

	before := p.Cursor("a", Point{10, 10}, ToolPen, 8).Screen
	view.PanBy(30, 0)
	after := p.Cursor("a", Point{10, 10}, ToolPen, 8).Screen

	if after.X-before.X != 30 {
		t.Errorf("screen position moved by %f, want 30", after.X-before.X)
	}
}
