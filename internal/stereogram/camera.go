package stereogram

import (
	"math"

	"github.com/jbeda/geom"
)

// Eye selects one half of the stereo pair.
type Eye int

const (
	LeftEye Eye = iota
	RightEye
)

func (e Eye) String() string {
	if e == LeftEye {
		return "left"
	}
	return "right"
}

// Offset is the horizontal camera shift for this eye.
func (e Eye) Offset(separation Real) Real {
	if e == LeftEye {
		return -separation
	}
	return separation
}

// EyeViewports splits the screen into the left and right halves.
func EyeViewports(w, h Real) [2]geom.Rect {
	return [2]geom.Rect{
		{Min: geom.Coord{X: 0, Y: 0}, Max: geom.Coord{X: w / 2, Y: h}},
		{Min: geom.Coord{X: w / 2, Y: 0}, Max: geom.Coord{X: w, Y: h}},
	}
}

func rectCenter(r geom.Rect) geom.Coord {
	return geom.Coord{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Camera projects 3D points for one eye.
type Camera struct {
	Offset       Real // horizontal eye shift, subtracted from X
	Distance     Real // perspective distance, added to Z
	Scale        Real
	Orthographic bool
	Center       geom.Coord // screen center of the eye viewport
}

// Depth is the camera-space Z of p: larger is farther.
func (c Camera) Depth(p Vertex3) Real { return p.Z() + c.Distance }

// Project maps p to screen space. Screen Y grows downward.
func (c Camera) Project(p Vertex3) geom.Coord {
	x, y := p.X()-c.Offset, p.Y()
	if c.Orthographic {
		return geom.Coord{X: c.Center.X + x*c.Scale, Y: c.Center.Y - y*c.Scale}
	}
	z := math.Max(c.Depth(p), MinCameraDepth)
	return geom.Coord{X: c.Center.X + x*c.Scale/z, Y: c.Center.Y - y*c.Scale/z}
}

// scalePolicy picks the projection scale for one frame of points.
type scalePolicy func(points []Vertex3, eyeWidth, distance Real, orthographic bool) Real

// SolidScale is the fixed-from-distance scale used for 3D solids. The
// perspective scale grows with distance so the nearest unit face (camera
// depth d-NearFace) keeps its apparent size; the orthographic scale is that
// face's apparent scale times OrthoBoost.
func SolidScale(distance Real, orthographic bool) Real {
	persp := BaseScale * (distance - NearFace) / (ReferenceDistance - NearFace)
	if !orthographic {
		return persp
	}
	return persp / (distance - NearFace) * OrthoBoost
}

func fixedScale(_ []Vertex3, _, distance Real, orthographic bool) Real {
	return SolidScale(distance, orthographic)
}

// boundingScale sizes the frame so the bounding box of the points spans
// HyperFraction of the eye viewport width. A degenerate box yields 1.
func boundingScale(points []Vertex3, eyeWidth, distance Real, orthographic bool) Real {
	if len(points) == 0 {
		return 1
	}
	first := geom.Coord{X: points[0].X(), Y: points[0].Y()}
	box := geom.Rect{Min: first, Max: first}
	for _, p := range points[1:] {
		box.ExpandToContainCoord(geom.Coord{X: p.X(), Y: p.Y()})
	}
	extent := math.Max(box.Width(), box.Height())
	if extent < epsExtent || !isFinite(extent) {
		DebugLog("degenerate bounding box %+v, using scale 1", box)
		return 1
	}
	s := HyperFraction * eyeWidth / extent
	if !orthographic {
		s *= distance
	}
	return s
}
