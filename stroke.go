package vellum

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Errors returned by the Surface boundary. All are programmer mistakes in
// the host, not transient failures; there is no retry semantics.
var (
	// ErrUnknownStroke is returned when a stroke handle does not refer to
	// an active stroke (never begun, or already ended).
	ErrUnknownStroke = errors.New("vellum: unknown stroke handle")
	// ErrTimestampOrder is returned when a sample's timestamp is earlier
	// than the previous sample of the same stroke. The adaptive filter's
	// dt computation requires monotonically non-decreasing timestamps.
	ErrTimestampOrder = errors.New("vellum: sample timestamp regressed")
)

// Stroke is one finished pointer-down-to-pointer-up gesture: a simplified
// world-space polyline plus the handle it was drawn under. This is the
// value handed to the host's collaboration layer; vellum keeps no record
// of it afterward.
type Stroke struct {
	ID     uuid.UUID
	Points []Point
}

// SurfaceConfig configures a [Surface].
type SurfaceConfig struct {
	// Filter holds the smoothing parameters applied per axis to every
	// stroke.
	Filter FilterConfig
	// Origin is the viewport's top-left corner in window coordinates.
	// Incoming screen points are translated by -Origin before the view
	// transform, so hosts whose drawing area is not at the window origin
	// can pass window-relative pointer positions directly.
	Origin Point
}

// DefaultSurfaceConfig returns a config with [DefaultFilterConfig]
// smoothing and a zero origin.
func DefaultSurfaceConfig() SurfaceConfig {
	return SurfaceConfig{Filter: DefaultFilterConfig()}
}

// activeStroke is the per-gesture state: one adaptive filter per axis
// (sharing input timestamps) and the accumulated smoothed points. It is
// discarded when the stroke ends; filters are never reused across
// strokes.
type activeStroke struct {
	fx, fy   *OneEuroFilter
	points   []Point
	lastTime float64
}

// Surface is the freehand input pipeline: it owns the active strokes and
// applies the screen→world transform and per-axis smoothing to every
// sample. Rendering the in-progress stroke and transmitting the finished
// polyline are the host's business.
//
// A Surface must be driven from a single goroutine. Multiple concurrent
// strokes (multi-touch) are supported through independent handles.
type Surface struct {
	view   *View
	config SurfaceConfig
	active map[uuid.UUID]*activeStroke
}

// NewSurface creates a Surface reading pan/zoom state from the given
// view.
func NewSurface(view *View, config SurfaceConfig) *Surface {
	return &Surface{
		view:   view,
		config: config,
		active: make(map[uuid.UUID]*activeStroke),
	}
}

// View returns the view the surface transforms through.
func (s *Surface) View() *View {
	return s.view
}

// SetOrigin updates the viewport origin used to translate incoming
// screen points. Affects only samples fed after the call.
func (s *Surface) SetOrigin(origin Point) {
	s.config.Origin = origin
}

// BeginStroke allocates a fresh stroke with uninitialized filters and
// returns its handle. The handle doubles as the stroke's identity toward
// the collaboration layer.
func (s *Surface) BeginStroke() uuid.UUID {
	id := uuid.New()
	s.active[id] = &activeStroke{
		fx: NewOneEuroFilter(s.config.Filter),
		fy: NewOneEuroFilter(s.config.Filter),
	}
	return id
}

// FeedPoint processes one pointer sample for the given stroke: the screen
// point is converted to world space, smoothed per axis, accumulated, and
// returned. timestamp is in milliseconds from any fixed epoch; it must
// not decrease within a stroke.
//
// A sample with the same timestamp as the previous one returns the
// previous smoothed point without accumulating a duplicate.
func (s *Surface) FeedPoint(id uuid.UUID, screen Point, timestamp float64) (Point, error) {
	st, ok := s.active[id]
	if !ok {
		return Point{}, fmt.Errorf("feed point: %w", ErrUnknownStroke)
	}
	if len(st.points) > 0 {
		if timestamp < st.lastTime {
			return Point{}, fmt.Errorf("feed point: %w (%.3f after %.3f)", ErrTimestampOrder, timestamp, st.lastTime)
		}
		if timestamp == st.lastTime {
			return st.points[len(st.points)-1], nil
		}
	}
	st.lastTime = timestamp

	world := s.view.ScreenToWorld(screen.Sub(s.config.Origin))
	smoothed := Point{
		X: st.fx.Filter(world.X, timestamp),
		Y: st.fy.Filter(world.Y, timestamp),
	}
	st.points = append(st.points, smoothed)
	return smoothed, nil
}

// LivePoints returns the smoothed points accumulated so far for an active
// stroke, for rendering the in-progress line. The returned slice is owned
// by the surface and is only valid until the next FeedPoint or EndStroke
// call for this stroke.
func (s *Surface) LivePoints(id uuid.UUID) ([]Point, error) {
	st, ok := s.active[id]
	if !ok {
		return nil, fmt.Errorf("live points: %w", ErrUnknownStroke)
	}
	return st.points, nil
}

// EndStroke finishes a stroke: the accumulated points are reduced with
// [Simplify] at the given tolerance (world units) and the stroke's filter
// state is discarded. The handle is invalid afterward.
//
// The filter state is discarded even when the tolerance is invalid, so a
// failed EndStroke never leaks an active stroke.
func (s *Surface) EndStroke(id uuid.UUID, tolerance float64) ([]Point, error) {
	st, ok := s.active[id]
	if !ok {
		return nil, fmt.Errorf("end stroke: %w", ErrUnknownStroke)
	}
	delete(s.active, id)

	simplified, err := Simplify(st.points, tolerance)
	if err != nil {
		return nil, fmt.Errorf("end stroke: %w", err)
	}
	return simplified, nil
}

// ActiveStrokes returns the number of strokes currently in progress.
func (s *Surface) ActiveStrokes() int {
	return len(s.active)
}
