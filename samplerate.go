package vellum

// RateMeter estimates the rate of an event stream from its timestamps
// over a sliding window, in events per second. It exists for tuning
// [FilterConfig] against real devices: the right MinCutoff depends on how
// fast the host actually delivers pointer samples.
//
// Feed it the same millisecond timestamps the surface receives.
type RateMeter struct {
	windowMs float64
	stamps   []float64
}

// defaultRateWindowMs is the sliding window used when none is given.
const defaultRateWindowMs = 1000.0

// NewRateMeter creates a meter with the given sliding window in
// milliseconds. Non-positive windows fall back to one second.
func NewRateMeter(windowMs float64) *RateMeter {
	if windowMs <= 0 {
		windowMs = defaultRateWindowMs
	}
	return &RateMeter{windowMs: windowMs}
}

// Sample records one event at the given timestamp (milliseconds) and
// drops events that have slid out of the window.
func (m *RateMeter) Sample(timestamp float64) {
	m.stamps = append(m.stamps, timestamp)

	cutoff := timestamp - m.windowMs
	drop := 0
	for drop < len(m.stamps) && m.stamps[drop] < cutoff {
		drop++
	}
	if drop > 0 {
		m.stamps = m.stamps[:copy(m.stamps, m.stamps[drop:])]
	}
}

// Rate returns the estimated events per second across the samples still
// inside the window, or 0 with fewer than two samples.
func (m *RateMeter) Rate() float64 {
	n := len(m.stamps)
	if n < 2 {
		return 0
	}
	span := m.stamps[n-1] - m.stamps[0]
	if span <= 0 {
		return 0
	}
	return float64(n-1) * 1000 / span
}

// Reset discards all recorded samples.
func (m *RateMeter) Reset() {
	m.stamps = m.stamps[:0]
}
