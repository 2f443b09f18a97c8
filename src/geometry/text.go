package geometry

import (
	"encoding"
	"fmt"
	"strconv"
	"strings"
)

var (
	_ encoding.TextMarshaler   = Vector3{}
	_ encoding.TextUnmarshaler = (*Vector3)(nil)
)

// String returns the debug form "Vector3[x, y, z]". The format carries no
// compatibility contract.
func (v Vector3) String() string {
	return fmt.Sprintf("Vector3[%g, %g, %g]", v.X, v.Y, v.Z)
}

// MarshalText renders the vector as three space-separated scalars.
func (v Vector3) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("%g %g %g", v.X, v.Y, v.Z)), nil
}

// UnmarshalText parses three whitespace-separated scalars. The receiver
// is assigned only after the whole input parses; a failed parse leaves it
// untouched.
func (v *Vector3) UnmarshalText(text []byte) error {
	parsed, err := ParseVector3(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// ParseVector3 reads a vector from three whitespace-separated scalars.
func ParseVector3(s string) (Vector3, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return Vector3{}, fmt.Errorf("geometry: parse vector %q: want 3 components, have %d", s, len(fields))
	}
	var c [3]Scalar
	for i, field := range fields {
		val, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return Vector3{}, fmt.Errorf("geometry: parse vector component %d: %w", i, err)
		}
		c[i] = val
	}
	return Vector3{X: c[0], Y: c[1], Z: c[2]}, nil
}
