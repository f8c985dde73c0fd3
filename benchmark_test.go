package vellum

import (
	"math"
	"testing"
)

// strokeSamples builds a noisy sine-wave stroke of n samples at 8 ms
// spacing, the shape a fast scribble produces.
func strokeSamples(n int) ([]Point, []float64) {
	pts := make([]Point, n)
	ts := make([]float64, n)
	for i := 0; i < n; i++ {
		x := float64(i)
		pts[i] = Point{
			X: x,
			Y: 40*math.Sin(x/15) + 2*math.Sin(x*7),
		}
		ts[i] = float64(i * 8)
	}
	return pts, ts
}

func BenchmarkOneEuroFilter(b *testing.B) {
	pts, ts := strokeSamples(512)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f := NewOneEuroFilter(DefaultFilterConfig())
		for j := range pts {
			f.Filter(pts[j].Y, ts[j])
		}
	}
}

func BenchmarkSimplify(b *testing.B) {
	pts, _ := strokeSamples(4096)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Simplify(pts, 0.5); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSurfacePipeline(b *testing.B) {
	pts, ts := strokeSamples(512)
	s := newTestSurface()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		id := s.BeginStroke()
		for j := range pts {
			if _, err := s.FeedPoint(id, pts[j], ts[j]); err != nil {
				b.Fatal(err)
			}
		}
		if _, err := s.EndStroke(id, 1); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkColorFor(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ColorFor("b9a1c2f0-77aa-4a6e-9d30-1f2e3c4d5e6f")
	}
}

func BenchmarkViewRoundTrip(b *testing.B) {
	v := NewView()
	v.SetPan(Point{123, -456})
	if err := v.SetZoom(1.75); err != nil {
		b.Fatal(err)
	}
	p := Point{512, 384}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p = v.ScreenToWorld(v.WorldToScreen(p))
	}
	_ = p
}
