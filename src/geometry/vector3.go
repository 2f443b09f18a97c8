package geometry

import "math"

// Vector3 is a point or a free vector in 3D Euclidean space; both roles
// share the one type and the distinction is contextual. Every method
// treats the receiver as an immutable value and returns a new value.
// Assigning to the fields of a value shared across goroutines requires
// external synchronization.
type Vector3 struct {
	X, Y, Z Scalar
}

func NewVector3(x, y, z Scalar) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Magnitude returns the Euclidean norm.
func (v Vector3) Magnitude() Scalar {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns the unit vector with the receiver's direction.
// A vector with magnitude at most Precision normalizes to the zero
// vector, never to NaN or Inf.
func (v Vector3) Normalize() Vector3 {
	m := v.Magnitude()
	if m <= Precision {
		return Vector3{}
	}
	return Vector3{X: v.X / m, Y: v.Y / m, Z: v.Z / m}
}

// Equals reports whether every component pair is nearly equal. The
// tolerance scales with the larger component magnitude, so large vectors
// tolerate a larger absolute error than small ones.
func (v Vector3) Equals(b Vector3) bool {
	return nearlyEqual(v.X, b.X) && nearlyEqual(v.Y, b.Y) && nearlyEqual(v.Z, b.Z)
}

func nearlyEqual(a, b Scalar) bool {
	return math.Abs(a-b) <= Precision*math.Max(math.Abs(a), math.Abs(b))
}

// Distance returns the Euclidean distance between two points.
func (v Vector3) Distance(b Vector3) Scalar {
	return v.Sub(b).Magnitude()
}

func (v Vector3) Add(b Vector3) Vector3 {
	return Vector3{X: v.X + b.X, Y: v.Y + b.Y, Z: v.Z + b.Z}
}

func (v Vector3) Sub(b Vector3) Vector3 {
	return Vector3{X: v.X - b.X, Y: v.Y - b.Y, Z: v.Z - b.Z}
}

func (v Vector3) Scale(s Scalar) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vector3) Dot(b Vector3) Scalar {
	return v.X*b.X + v.Y*b.Y + v.Z*b.Z
}

// Cross returns the cross product, anti-commutative and orthogonal to
// both operands.
func (v Vector3) Cross(b Vector3) Vector3 {
	return Vector3{
		X: v.Y*b.Z - v.Z*b.Y,
		Y: v.Z*b.X - v.X*b.Z,
		Z: v.X*b.Y - v.Y*b.X,
	}
}
