package geometry

import "math"

// Segment is a finite line segment between two points. Start and End may
// coincide; a zero-length segment behaves as a point.
type Segment struct {
	Start, End Vector3
}

func NewSegment(start, end Vector3) Segment {
	return Segment{Start: start, End: end}
}

// Delta returns the direction vector End-Start.
func (s Segment) Delta() Vector3 {
	return s.End.Sub(s.Start)
}

// Length returns the segment's Euclidean length.
func (s Segment) Length() Scalar {
	return s.Delta().Magnitude()
}

// ClosestPoints returns the pair of points, one on each segment, that
// minimize the distance between the two segments.
//
// The unconstrained minimum over the two supporting lines is solved in
// closed form; each parameter is then clamped to its segment's
// [ParametricMin, ParametricMax] range in a single pass with no joint
// re-projection, so certain clamped parallel configurations settle on a
// local rather than global minimum. Parallel directions (the vanishing
// denominator) anchor the first parameter at the start of the first
// segment and project it onto the second. Degenerate zero-length segments
// reduce to point projections; no input produces NaN or Inf.
func ClosestPoints(p, q Segment) (Vector3, Vector3) {
	d1 := p.Delta()
	d2 := q.Delta()
	r := p.Start.Sub(q.Start)

	a := d1.Dot(d1)
	e := d2.Dot(d2)
	f := d2.Dot(r)
	b := d1.Dot(d2)
	c := d1.Dot(r)

	var s, t Scalar
	denom := a*e - b*b
	switch {
	case math.Abs(denom) > Precision:
		s = (b*f - c*e) / denom
		t = (a*f - b*c) / denom
	case e > Precision:
		// Parallel directions: anchor on the first segment's start and
		// project it onto the second.
		t = f / e
	case a > Precision:
		// Second segment is a point: project it onto the first.
		s = -c / a
	default:
		// Both segments are points; the start points are the answer.
	}

	s = clamp(s, ParametricMin, ParametricMax)
	t = clamp(t, ParametricMin, ParametricMax)

	return p.Start.Add(d1.Scale(s)), q.Start.Add(d2.Scale(t))
}

// ClosestDistance returns the minimum distance between two segments.
// The result is non-negative and zero when the segments intersect or
// touch, up to Precision.
func ClosestDistance(p, q Segment) Scalar {
	p1, p2 := ClosestPoints(p, q)
	return p1.Distance(p2)
}

func clamp(v, lo, hi Scalar) Scalar {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
