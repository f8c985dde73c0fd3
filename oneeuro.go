package vellum

import "math"

// FilterConfig holds the tunable parameters of a [OneEuroFilter].
// All three are configuration, not hidden constants; construct one
// explicitly or start from [DefaultFilterConfig].
type FilterConfig struct {
	// MinCutoff is the baseline cutoff frequency (Hz) applied when the
	// signal is at rest. Lower values smooth more aggressively at the cost
	// of lag on slow motion. Must be > 0.
	MinCutoff float64
	// Beta scales how much the cutoff rises with the estimated signal
	// speed. 0 disables adaptivity, reducing the filter to a fixed-cutoff
	// low-pass. Must be >= 0.
	Beta float64
	// DerivativeCutoff is the cutoff frequency (Hz) used to smooth the
	// speed estimate itself. Must be > 0.
	DerivativeCutoff float64
}

// DefaultFilterConfig returns parameters tuned for freehand drawing with
// mouse or pen input at typical pointer event rates (60-240 Hz).
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{
		MinCutoff:        1.0,
		Beta:             0.007,
		DerivativeCutoff: 1.0,
	}
}

// OneEuroFilter is an adaptive low-pass filter for one scalar axis of a
// noisy input signal. It tunes its cutoff frequency from the signal's
// estimated speed: slow, precise motion is heavily smoothed (less jitter)
// while fast motion is smoothed lightly (less lag).
//
// Timestamps fed to [OneEuroFilter.Filter] must be monotonically
// non-decreasing; a duplicate timestamp returns the previous output
// unchanged, and a regressing timestamp is a caller error with undefined
// results. [Surface] rejects out-of-order samples at its boundary before
// they reach the filter.
//
// A OneEuroFilter must not be reused across strokes; each stroke starts
// with a fresh (or [OneEuroFilter.Reset]) pair.
type OneEuroFilter struct {
	config     FilterConfig
	signal     LowPassFilter
	derivative LowPassFilter
	startTime  float64
	lastTime   float64
	primed     bool
}

// NewOneEuroFilter creates a filter with the given parameters.
func NewOneEuroFilter(config FilterConfig) *OneEuroFilter {
	return &OneEuroFilter{config: config}
}

// smoothingAlpha computes the blend factor for a first-order RC low-pass
// discretized over a step of dt seconds at the given cutoff frequency (Hz).
// cutoff must be > 0.
func smoothingAlpha(dt, cutoff float64) float64 {
	tau := 1 / (2 * math.Pi * cutoff)
	return 1 / (1 + tau/dt)
}

// Filter smooths value sampled at the given timestamp (milliseconds) and
// returns the filtered output.
func (f *OneEuroFilter) Filter(value, timestamp float64) float64 {
	if !f.primed {
		// First sample: no previous timestamp exists, so the derivative is
		// treated as 0 and the raw value becomes the initial output via the
		// signal filter's first-call passthrough.
		f.primed = true
		f.startTime = timestamp
		f.lastTime = timestamp
		f.derivative.Filter(0, 1)
		return f.signal.Filter(value, 1)
	}

	if timestamp == f.lastTime {
		// Duplicate sample; dt would be 0. Return the last output unchanged
		// rather than divide by zero or spike the derivative.
		return f.signal.LastValue()
	}

	dt := (timestamp - f.lastTime) / 1000
	f.lastTime = timestamp

	dx := (value - f.signal.LastValue()) / dt
	edx := f.derivative.Filter(dx, smoothingAlpha(dt, f.config.DerivativeCutoff))

	cutoff := f.config.MinCutoff + f.config.Beta*math.Abs(edx)
	return f.signal.Filter(value, smoothingAlpha(dt, cutoff))
}

// Primed reports whether the filter has received its first sample.
func (f *OneEuroFilter) Primed() bool {
	return f.primed
}

// StartTime returns the timestamp of the first sample, or 0 if the filter
// has not been fed yet.
func (f *OneEuroFilter) StartTime() float64 {
	return f.startTime
}

// Reset clears both internal low-pass stages and the timestamp
// bookkeeping. Call when a new stroke begins so no history leaks between
// unrelated strokes.
func (f *OneEuroFilter) Reset() {
	f.signal.Reset()
	f.derivative.Reset()
	f.startTime = 0
	f.lastTime = 0
	f.primed = false
}
