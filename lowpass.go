package vellum

// LowPassFilter is a first-order exponential smoother with an externally
// supplied smoothing factor. Each call blends the new value with the
// previous output:
//
//	out = alpha*value + (1-alpha)*previousOut
//
// A LowPassFilter is owned by exactly one [OneEuroFilter] stage and must
// not be shared. The zero value is ready to use.
type LowPassFilter struct {
	lastOutput  float64
	lastAlpha   float64
	initialized bool
}

// Filter smooths value with the given alpha and returns the new output.
// The first call passes value through unchanged and initializes the state.
//
// alpha must lie in (0, 1]. Values outside that range are accepted so a
// live input stream is never interrupted, but they are a configuration
// defect and produce a warning through the package logger. No clamping is
// applied; the caller sees exactly the math it asked for.
func (f *LowPassFilter) Filter(value, alpha float64) float64 {
	if alpha <= 0 || alpha > 1 {
		Logger().Warn("vellum: low-pass alpha outside (0, 1]", "alpha", alpha)
	}
	if !f.initialized {
		f.initialized = true
		f.lastOutput = value
		f.lastAlpha = alpha
		return value
	}
	f.lastOutput = alpha*value + (1-alpha)*f.lastOutput
	f.lastAlpha = alpha
	return f.lastOutput
}

// LastValue returns the most recent output without mutating state.
// Returns 0 if the filter has never been fed; check [LowPassFilter.Initialized]
// when that matters.
func (f *LowPassFilter) LastValue() float64 {
	return f.lastOutput
}

// LastAlpha returns the alpha supplied to the most recent Filter call.
// Returns 0 if the filter has never been fed.
func (f *LowPassFilter) LastAlpha() float64 {
	return f.lastAlpha
}

// Initialized reports whether the filter has been fed at least once.
func (f *LowPassFilter) Initialized() bool {
	return f.initialized
}

// Reset discards all state, returning the filter to its zero value.
func (f *LowPassFilter) Reset() {
	*f = LowPassFilter{}
}
