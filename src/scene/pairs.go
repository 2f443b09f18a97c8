package scene

import (
	"math"

	"kantarion/src/geometry"
)

// Pair is the closest-approach report for one unordered segment pair.
type Pair struct {
	A, B           string
	PointA, PointB geometry.Vector3
	Distance       geometry.Scalar
}

// Pairs reports the closest approach of every unordered segment pair, in
// definition order. A scene with fewer than two segments has no pairs.
func (s *Scene) Pairs() []Pair {
	n := len(s.Segments)
	if n < 2 {
		return nil
	}
	pairs := make([]Pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pa, pb := geometry.ClosestPoints(s.Segments[i].Segment(), s.Segments[j].Segment())
			pairs = append(pairs, Pair{
				A:        s.Segments[i].Name,
				B:        s.Segments[j].Name,
				PointA:   pa,
				PointB:   pb,
				Distance: pa.Distance(pb),
			})
		}
	}
	return pairs
}

// Bounds returns the axis-aligned box over every segment endpoint. An
// empty scene yields an inverted box (min > max).
func (s *Scene) Bounds() (min, max geometry.Vector3) {
	min = geometry.NewVector3(geometry.Infinity, geometry.Infinity, geometry.Infinity)
	max = min.Scale(-1)
	for _, def := range s.Segments {
		seg := def.Segment()
		for _, p := range [2]geometry.Vector3{seg.Start, seg.End} {
			min.X = math.Min(min.X, p.X)
			min.Y = math.Min(min.Y, p.Y)
			min.Z = math.Min(min.Z, p.Z)
			max.X = math.Max(max.X, p.X)
			max.Y = math.Max(max.Y, p.Y)
			max.Z = math.Max(max.Z, p.Z)
		}
	}
	return min, max
}
