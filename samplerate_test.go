package vellum

import (
	"math"
	"testing"
)

func TestRateMeterEmpty(t *testing.T) {
	m := NewRateMeter(1000)
	if got := m.Rate(); got != 0 {
		t.Errorf("Rate with no samples = %f, want 0", got)
	}
	m.Sample(0)
	if got := m.Rate(); got != 0 {
		t.Errorf("Rate with one sample = %f, want 0", got)
	}
}

func TestRateMeterUniformStream(t *testing.T) {
	m := NewRateMeter(1000)
	for ts := 0.0; ts <= 160; ts += 16 {
		m.Sample(ts)
	}
	// 16 ms spacing is 62.5 events/s.
	if got := m.Rate(); math.Abs(got-62.5) > 0.01 {
		t.Errorf("Rate = %f, want 62.5", got)
	}
}

func TestRateMeterSlidingWindow(t *testing.T) {
	m := NewRateMeter(100)

	// A slow burst followed by a fast burst: once the slow samples slide
	// out, only the fast spacing remains.
	m.Sample(0)
	m.Sample(50)
	for ts := 1000.0; ts <= 1080; ts += 10 {
		m.Sample(ts)
	}

	if got := m.Rate(); math.Abs(got-100) > 0.01 {
		t.Errorf("Rate = %f, want 100 after window slid past the slow burst", got)
	}
}

func TestRateMeterZeroSpan(t *testing.T) {
	m := NewRateMeter(1000)
	m.Sample(42)
	m.Sample(42)
	if got := m.Rate(); got != 0 {
		t.Errorf("Rate with zero span = %f, want 0", got)
	}
}

func TestRateMeterReset(t *testing.T) {
	m := NewRateMeter(1000)
	m.Sample(0)
	m.Sample(16)
	m.Reset()
	if got := m.Rate(); got != 0 {
		t.Errorf("Rate after Reset = %f, want 0", got)
	}
}

func TestRateMeterDefaultWindow(t *testing.T) {
	m := NewRateMeter(0)
	if m.windowMs != defaultRateWindowMs {
		t.Errorf("windowMs = %f, want default %f", m.windowMs, defaultRateWindowMs)
	}
}
