package vellum

// Palette is a fixed ordered sequence of colors that participant
// identifiers are hashed into. Treat a Palette as read-only at runtime:
// the identifier→color binding is only stable for the lifetime of the
// palette contents.
type Palette []Color

// DefaultPalette is the stock participant palette: twelve hues spaced for
// visual separation at the concurrency levels a shared board typically
// sees. Collisions between participants are possible (the palette is
// finite) but read as tolerable.
var DefaultPalette = Palette{
	{0.91, 0.30, 0.24, 1}, // red
	{0.95, 0.61, 0.07, 1}, // orange
	{0.95, 0.77, 0.06, 1}, // amber
	{0.18, 0.80, 0.44, 1}, // green
	{0.10, 0.74, 0.61, 1}, // teal
	{0.20, 0.60, 0.86, 1}, // blue
	{0.23, 0.35, 0.84, 1}, // indigo
	{0.61, 0.35, 0.71, 1}, // purple
	{0.91, 0.40, 0.64, 1}, // pink
	{0.64, 0.45, 0.29, 1}, // brown
	{0.37, 0.47, 0.54, 1}, // slate
	{0.15, 0.78, 0.85, 1}, // cyan
}

// ColorFor deterministically maps a participant identifier into the
// palette. Identical identifiers always yield identical colors; distinct
// identifiers are not guaranteed distinct colors. Pure function; nothing
// is cached.
//
// An empty palette returns [ColorWhite] so a misconfigured host still
// renders a visible cursor.
func (p Palette) ColorFor(id string) Color {
	if len(p) == 0 {
		return ColorWhite
	}
	return p[paletteIndex(id, len(p))]
}

// ColorFor maps a participant identifier into [DefaultPalette].
func ColorFor(id string) Color {
	return DefaultPalette.ColorFor(id)
}

// paletteIndex computes a signed 32-bit rolling hash over the
// identifier's characters (hash = code + ((hash << 5) - hash), i.e.
// hash*31 + code with wraparound) and folds its absolute value into
// [0, size). The wide intermediate spreads short, similar identifiers
// across the palette.
func paletteIndex(id string, size int) int {
	var hash int32
	for _, r := range id {
		hash = int32(r) + ((hash << 5) - hash)
	}
	// Widen before negating: -MinInt32 overflows int32.
	h := int64(hash)
	if h < 0 {
		h = -h
	}
	return int(h % int64(size))
}
