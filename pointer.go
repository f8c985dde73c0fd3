package vellum

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
)

// defaultTapDeadZone is how far (in pixels) the pointer may travel while
// pressed and still count as a tap rather than a stroke.
const defaultTapDeadZone = 4.0

// syntheticPointerEvent is a single injected pointer event, in screen
// coordinates, consumed by the next Poll call in place of real mouse
// state.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

// PointerTrackerConfig configures a [PointerTracker].
type PointerTrackerConfig struct {
	// Tolerance is the simplification tolerance (world units) applied
	// when a stroke ends.
	Tolerance float64
	// TapDeadZone is the maximum pointer travel (screen pixels) for a
	// press-release to count as a tap instead of a stroke. Only relevant
	// when OnTap is set.
	TapDeadZone float64
	// Clock produces sample timestamps in milliseconds. Defaults to a
	// monotonic clock starting at tracker construction.
	Clock func() float64
}

// DefaultPointerTrackerConfig returns a config with a 1-unit simplify
// tolerance and the default tap dead zone.
func DefaultPointerTrackerConfig() PointerTrackerConfig {
	return PointerTrackerConfig{
		Tolerance:   1.0,
		TapDeadZone: defaultTapDeadZone,
	}
}

// PointerTracker bridges Ebitengine mouse state to a [Surface]. Call
// [PointerTracker.Poll] once per tick: a left-button press begins a
// stroke, movement while pressed feeds samples, and release ends the
// stroke and delivers it through OnStroke.
//
// When OnTap is set, press-release sequences that stay within the tap
// dead zone are delivered as taps instead (for selection), and the
// stroke is discarded. When OnTap is nil every gesture becomes a stroke,
// so a plain click draws a dot.
//
// Tests and replay tooling can bypass the real mouse with
// [PointerTracker.InjectPress], [PointerTracker.InjectMove], and
// [PointerTracker.InjectRelease]; each Poll consumes one queued event
// before looking at real input.
type PointerTracker struct {
	// OnStroke is called with each finished, simplified stroke.
	OnStroke func(Stroke)
	// OnTap, if set, is called with the world-space position of a
	// press-release that stayed within the tap dead zone.
	OnTap func(world Point)

	surface *Surface
	config  PointerTrackerConfig

	down   bool
	moved  bool
	start  Point
	last   Point
	stroke uuid.UUID

	injectQueue []syntheticPointerEvent
}

// NewPointerTracker creates a tracker driving the given surface.
func NewPointerTracker(surface *Surface, config PointerTrackerConfig) *PointerTracker {
	if config.TapDeadZone <= 0 {
		config.TapDeadZone = defaultTapDeadZone
	}
	if config.Clock == nil {
		epoch := time.Now()
		config.Clock = func() float64 {
			return float64(time.Since(epoch)) / float64(time.Millisecond)
		}
	}
	return &PointerTracker{surface: surface, config: config}
}

// Poll advances the tracker by one tick. It consumes one injected event
// if any are queued, otherwise reads the real mouse state.
func (t *PointerTracker) Poll() {
	var x, y float64
	var pressed bool

	if len(t.injectQueue) > 0 {
		evt := t.injectQueue[0]
		copy(t.injectQueue, t.injectQueue[1:])
		t.injectQueue = t.injectQueue[:len(t.injectQueue)-1]
		x, y, pressed = evt.x, evt.y, evt.pressed
	} else {
		cx, cy := ebiten.CursorPosition()
		x, y = float64(cx), float64(cy)
		pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	}

	t.process(Point{X: x, Y: y}, pressed, t.config.Clock())
}

// InjectPress queues a synthetic pointer press at the given screen
// coordinates.
func (t *PointerTracker) InjectPress(x, y float64) {
	t.injectQueue = append(t.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a synthetic pointer move with the button held down.
// Use between InjectPress and InjectRelease to simulate a drag.
func (t *PointerTracker) InjectMove(x, y float64) {
	t.injectQueue = append(t.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a synthetic pointer release at the given screen
// coordinates.
func (t *PointerTracker) InjectRelease(x, y float64) {
	t.injectQueue = append(t.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: false})
}

func (t *PointerTracker) process(pos Point, pressed bool, timestamp float64) {
	switch {
	case pressed && !t.down:
		t.down = true
		t.moved = false
		t.start = pos
		t.last = pos
		t.stroke = t.surface.BeginStroke()
		t.feed(pos, timestamp)

	case pressed && t.down:
		if pos != t.last {
			t.feed(pos, timestamp)
			if !t.moved {
				dx := pos.X - t.start.X
				dy := pos.Y - t.start.Y
				if math.Sqrt(dx*dx+dy*dy) > t.config.TapDeadZone {
					t.moved = true
				}
			}
			t.last = pos
		}

	case !pressed && t.down:
		t.down = false
		points, err := t.surface.EndStroke(t.stroke, t.config.Tolerance)
		if err != nil {
			Logger().Warn("vellum: pointer tracker dropped stroke", "error", err)
			return
		}
		if t.OnTap != nil && !t.moved {
			world := t.surface.View().ScreenToWorld(pos.Sub(t.surface.config.Origin))
			t.OnTap(world)
			return
		}
		if t.OnStroke != nil {
			t.OnStroke(Stroke{ID: t.stroke, Points: points})
		}
	}
}

func (t *PointerTracker) feed(pos Point, timestamp float64) {
	if _, err := t.surface.FeedPoint(t.stroke, pos, timestamp); err != nil {
		Logger().Warn("vellum: pointer tracker dropped sample", "error", err)
	}
}
