// Package vellum is the freehand input-processing core for a pannable,
// zoomable, multi-user drawing surface hosted on [Ebitengine].
//
// Vellum converts noisy, high-frequency pointer samples into stable,
// bandwidth-bounded vector strokes, and maintains the coordinate mapping
// between the screen and an infinite logical canvas. It owns no rendering,
// networking, or persistence: the host feeds it raw pointer events and
// receives simplified world-space polylines to hand to its collaboration
// layer.
//
// # Quick start
//
// Create a [View] for the pan/zoom state and a [Surface] for the stroke
// pipeline, then drive it from your pointer events:
//
//	view := vellum.NewView()
//	surface := vellum.NewSurface(view, vellum.DefaultSurfaceConfig())
//
//	id := surface.BeginStroke()
//	for _, sample := range samples {
//		surface.FeedPoint(id, sample.Screen, sample.TimestampMs)
//	}
//	polyline, err := surface.EndStroke(id, 1.0)
//
// Hosts running an [ebiten.Game] loop can instead attach a
// [PointerTracker], which polls the mouse each tick and delivers finished
// strokes through a callback.
//
// # Smoothing
//
// Each stroke runs one [OneEuroFilter] per axis: an adaptive low-pass
// filter whose cutoff frequency rises with the estimated input speed, so
// slow precise motion is smoothed heavily while fast strokes stay
// responsive. Tune it through [FilterConfig]; the defaults suit mouse and
// pen input at typical event rates.
//
// # Simplification
//
// Finished strokes pass through [Simplify], a Douglas-Peucker reduction
// that drops every point lying within a tolerance of the simplified
// polyline while always preserving the stroke's first and last point.
//
// # Presence
//
// Remote participant cursors are derived, not synchronized: [ColorFor]
// deterministically maps a participant identifier to a palette color, and
// [PenCursor]/[EraserCursor] build the matching cursor glyphs. [Presence]
// bundles the lookups a host needs per remote cursor.
//
// Vellum is not safe for concurrent use of a single [Surface] or [View];
// drive each from one goroutine (typically the host's update loop). The
// pure functions (Simplify, ColorFor, the glyph constructors) may be
// called from anywhere.
//
// [Ebitengine]: https://ebitengine.org
package vellum
