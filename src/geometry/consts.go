package geometry

import "math"

// Scalar is the coordinate, parameter and distance type used throughout
// the kernel.
type Scalar = float64

const (
	Infinity = math.MaxFloat64

	// Precision is the machine epsilon of Scalar. It is the relative
	// tolerance used by Equals and the threshold below which squared
	// lengths and denominators are treated as zero.
	Precision Scalar = 0x1p-52

	// Parametric positions of a segment's endpoints.
	ParametricMin Scalar = 0
	ParametricMax Scalar = 1
)
