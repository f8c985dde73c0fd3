package vellum

import "errors"

// ErrNegativeTolerance is returned by [Simplify] (and therefore by
// [Surface.EndStroke]) when the tolerance is negative.
var ErrNegativeTolerance = errors.New("vellum: simplify tolerance must be >= 0")

// Simplify reduces a polyline with the Douglas-Peucker algorithm,
// returning a subsequence of points that approximates the input within
// tolerance (in the same units as the points). The input's first and last
// points are always retained, the output is never longer than the input,
// and every removed point lies within tolerance of the simplified
// polyline.
//
// Inputs of length <= 2 are returned unchanged (the same slice). A
// tolerance of 0 is legal and drops only exactly collinear interior runs.
//
// Simplify is pure and does not modify the input slice. The recursion is
// rewritten with an explicit stack, so pathological strokes with
// thousands of high-curvature points cannot exhaust the call stack.
func Simplify(points []Point, tolerance float64) ([]Point, error) {
	if tolerance < 0 {
		return nil, ErrNegativeTolerance
	}
	if len(points) <= 2 {
		return points, nil
	}

	// keep[i] marks points that survive. Endpoints always do.
	keep := make([]byte, len(points))
	keep[0] = 1
	keep[len(points)-1] = 1
	kept := 2

	tol2 := tolerance * tolerance

	// Each stack entry is a (start, end) index pair for a span whose
	// interior has not been examined yet.
	stack := make([]int, 0, 32)
	stack = append(stack, 0, len(points)-1)

	for len(stack) > 0 {
		end := stack[len(stack)-1]
		start := stack[len(stack)-2]

		maxDist := 0.0
		maxIndex := start
		for i := start + 1; i < end; i++ {
			d := segmentDistanceSq(points[i], points[start], points[end])
			if d > maxDist {
				maxDist = d
				maxIndex = i
			}
		}

		if maxDist > tol2 {
			// Not flat enough: keep the farthest point and examine the two
			// sub-spans it splits off. Reuse the current entry for the left
			// half to avoid growing the stack unnecessarily.
			keep[maxIndex] = 1
			kept++
			stack[len(stack)-1] = maxIndex
			stack = append(stack, maxIndex, end)
		} else {
			// The whole span collapses to its endpoints.
			stack = stack[:len(stack)-2]
		}
	}

	out := make([]Point, 0, kept)
	for i, k := range keep {
		if k == 1 {
			out = append(out, points[i])
		}
	}
	return out, nil
}

// segmentDistanceSq returns the squared distance from p to the segment
// v-w. The projection of p onto the line through v and w is clamped to
// the segment; a degenerate segment (v == w) falls back to the squared
// distance from p to v. Squared distances avoid square roots throughout,
// since Simplify only compares against tolerance².
func segmentDistanceSq(p, v, w Point) float64 {
	dx := w.X - v.X
	dy := w.Y - v.Y

	if dx == 0 && dy == 0 {
		px := p.X - v.X
		py := p.Y - v.Y
		return px*px + py*py
	}

	t := ((p.X-v.X)*dx + (p.Y-v.Y)*dy) / (dx*dx + dy*dy)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	px := v.X + t*dx - p.X
	py := v.Y + t*dy - p.Y
	return px*px + py*py
}
