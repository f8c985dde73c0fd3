package vellum

import "testing"

func TestPenCursorRadiusFloor(t *testing.T) {
	tests := []struct {
		name string
		size float64
		want float64
	}{
		{"tiny brush floors", 1, minPenCursorRadius},
		{"zero floors", 0, minPenCursorRadius},
		{"normal brush", 16, 8},
		{"large brush", 64, 32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := PenCursor(tt.size, ColorBlack)
			if g.Radius != tt.want {
				t.Errorf("Radius = %f, want %f", g.Radius, tt.want)
			}
		})
	}
}

func TestEraserCursorChunkierFloor(t *testing.T) {
	pen := PenCursor(1, ColorBlack)
	eraser := EraserCursor(1)
	if eraser.Radius <= pen.Radius {
		t.Errorf("eraser floor %f not larger than pen floor %f", eraser.Radius, pen.Radius)
	}
	if eraser.Radius != minEraserCursorRadius {
		t.Errorf("eraser Radius = %f, want %f", eraser.Radius, minEraserCursorRadius)
	}
}

func TestPenCursorColors(t *testing.T) {
	fill := Color{0.2, 0.6, 0.86, 1}
	g := PenCursor(20, fill)
	if g.Fill != fill {
		t.Errorf("Fill = %v, want supplied color %v", g.Fill, fill)
	}
	// Translucent white outline for contrast on any background.
	if g.Outline.A >= 1 || g.Outline.R != 1 || g.Outline.G != 1 || g.Outline.B != 1 {
		t.Errorf("Outline = %v, want translucent white", g.Outline)
	}
}

func TestEraserCursorColors(t *testing.T) {
	g := EraserCursor(20)
	if g.Fill != ColorWhite {
		t.Errorf("Fill = %v, want white", g.Fill)
	}
	if g.Outline != ColorBlack {
		t.Errorf("Outline = %v, want black", g.Outline)
	}
}

func TestCursorForSelectsTool(t *testing.T) {
	fill := Color{1, 0, 0, 1}
	if got := CursorFor(ToolPen, 10, fill); got != PenCursor(10, fill) {
		t.Errorf("CursorFor(ToolPen) = %v, want pen glyph", got)
	}
	// The eraser ignores the supplied color entirely.
	if got := CursorFor(ToolEraser, 10, fill); got != EraserCursor(10) {
		t.Errorf("CursorFor(ToolEraser) = %v, want eraser glyph", got)
	}
}

func TestCursorGlyphHotspotIsCenter(t *testing.T) {
	for _, size := range []float64{0, 4, 17, 64} {
		g := PenCursor(size, ColorBlack)
		hx, hy := g.Hotspot()
		if hx != g.Size/2 || hy != g.Size/2 {
			t.Errorf("size %v: hotspot = (%d, %d), want center (%d, %d)",
				size, hx, hy, g.Size/2, g.Size/2)
		}
	}
}

func TestCursorGlyphFitsCircle(t *testing.T) {
	for _, size := range []float64{0, 3, 10, 33, 100} {
		for _, g := range []CursorGlyph{PenCursor(size, ColorBlack), EraserCursor(size)} {
			need := 2 * (g.Radius + g.OutlineWidth)
			if float64(g.Size) < need {
				t.Errorf("Size %d too small for circle needing %f", g.Size, need)
			}
			if g.Size%2 != 0 {
				t.Errorf("Size %d is odd; hotspot would be off-center", g.Size)
			}
		}
	}
}

func TestCursorGlyphRasterize(t *testing.T) {
	g := PenCursor(12, Color{0.9, 0.3, 0.2, 1})
	img := g.Rasterize()
	if img == nil {
		t.Fatal("Rasterize returned nil")
	}
	b := img.Bounds()
	if b.Dx() != g.Size || b.Dy() != g.Size {
		t.Errorf("image bounds = %dx%d, want %dx%d", b.Dx(), b.Dy(), g.Size, g.Size)
	}
}
