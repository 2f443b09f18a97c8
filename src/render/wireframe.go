package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"kantarion/src/geometry"
	"kantarion/src/scene"
)

// Options controls wireframe output. Zero values fall back to defaults.
type Options struct {
	Size        int // output edge length in pixels, default 512
	Supersample int // oversampling factor before the downscale, default 2

	Background color.NRGBA
	Stroke     color.NRGBA
	Connector  color.NRGBA

	ViewDir geometry.Vector3 // default (1, 1, 1)
	Up      geometry.Vector3 // default +Z
}

func (o Options) withDefaults() Options {
	if o.Size <= 0 {
		o.Size = 512
	}
	if o.Supersample <= 0 {
		o.Supersample = 2
	}
	zero := color.NRGBA{}
	if o.Background == zero {
		o.Background = color.NRGBA{R: 18, G: 18, B: 24, A: 255}
	}
	if o.Stroke == zero {
		o.Stroke = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
	}
	if o.Connector == zero {
		o.Connector = color.NRGBA{R: 255, G: 96, B: 64, A: 255}
	}
	if o.ViewDir.Equals(geometry.Vector3{}) {
		o.ViewDir = geometry.NewVector3(1, 1, 1)
	}
	if o.Up.Equals(geometry.Vector3{}) {
		o.Up = geometry.NewVector3(0, 0, 1)
	}
	return o
}

type planeEdge struct {
	u0, v0, u1, v1 float64
	col            color.NRGBA
}

// Wireframe renders the scene's segments, plus a connector between the
// closest points of every segment pair, into a square image. The frame is
// fitted to the scene's projected bounds; degenerate bounds (a single
// point, or a view axis the scene collapses onto) are padded instead of
// failing.
func Wireframe(sc *scene.Scene, opts Options) (*image.NRGBA, error) {
	if sc == nil || len(sc.Segments) == 0 {
		return nil, ErrEmptyScene
	}
	opts = opts.withDefaults()
	cam := LookAt(opts.ViewDir, opts.Up)

	minU, minV := math.Inf(1), math.Inf(1)
	maxU, maxV := math.Inf(-1), math.Inf(-1)
	var edges []planeEdge
	project := func(a, b geometry.Vector3, col color.NRGBA) {
		u0, v0 := cam.Project(a)
		u1, v1 := cam.Project(b)
		minU = math.Min(minU, math.Min(u0, u1))
		minV = math.Min(minV, math.Min(v0, v1))
		maxU = math.Max(maxU, math.Max(u0, u1))
		maxV = math.Max(maxV, math.Max(v0, v1))
		edges = append(edges, planeEdge{u0: u0, v0: v0, u1: u1, v1: v1, col: col})
	}

	for _, def := range sc.Segments {
		seg := def.Segment()
		project(seg.Start, seg.End, opts.Stroke)
	}
	for _, pair := range sc.Pairs() {
		project(pair.PointA, pair.PointB, opts.Connector)
	}

	span := math.Max(maxU-minU, maxV-minV)
	if span <= 0 {
		span = 1 // the whole scene projects onto one point
	}
	span *= 1.1 // margin around the drawing

	full := opts.Size * opts.Supersample
	scale := float64(full) / span
	cu, cv := (minU+maxU)/2, (minV+maxV)/2
	center := float64(full) / 2

	canvas := NewCanvas(full, full)
	canvas.Fill(opts.Background)
	for _, e := range edges {
		canvas.Line(
			center+(e.u0-cu)*scale, center-(e.v0-cv)*scale,
			center+(e.u1-cu)*scale, center-(e.v1-cv)*scale,
			e.col,
		)
	}

	img := canvas.Image()
	if opts.Supersample > 1 {
		img = downsample(img, opts.Size)
	}
	return img, nil
}

// downsample shrinks the supersampled canvas to the target edge length
// with CatmullRom filtering.
func downsample(img *image.NRGBA, target int) *image.NRGBA {
	if img.Bounds().Dx() <= target {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, target, target))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}
