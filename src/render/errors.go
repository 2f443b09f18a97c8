package render

import "errors"

// ErrEmptyScene is returned when a wireframe is requested for a nil scene
// or one with no segments.
var ErrEmptyScene = errors.New("render: empty scene")
