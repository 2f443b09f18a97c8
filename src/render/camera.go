package render

import "kantarion/src/geometry"

// Camera is an orthographic projector. Right and up span the image plane;
// depth along the view direction is discarded.
type Camera struct {
	right, up geometry.Vector3
}

// LookAt builds a camera looking along dir with the given approximate up.
// A zero dir falls back to the +Z axis; when dir and up are parallel a
// substitute axis keeps the basis orthonormal.
func LookAt(dir, up geometry.Vector3) Camera {
	forward := dir.Normalize()
	if forward.Equals(geometry.Vector3{}) {
		forward = geometry.NewVector3(0, 0, 1)
	}

	right := forward.Cross(up).Normalize()
	if right.Equals(geometry.Vector3{}) {
		for _, axis := range [2]geometry.Vector3{
			geometry.NewVector3(1, 0, 0),
			geometry.NewVector3(0, 1, 0),
		} {
			right = forward.Cross(axis).Normalize()
			if !right.Equals(geometry.Vector3{}) {
				break
			}
		}
	}

	return Camera{right: right, up: right.Cross(forward).Normalize()}
}

// Project maps a world point to image-plane coordinates.
func (c Camera) Project(p geometry.Vector3) (u, v geometry.Scalar) {
	return p.Dot(c.right), p.Dot(c.up)
}
