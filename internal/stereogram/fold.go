package stereogram

import "math"

// W folding weights. W mostly reads as extra Z depth; the small X/Y share
// spreads vertices that would otherwise land on top of each other.
const (
	foldXYPerspective  = 0.15
	foldZPerspective   = 0.5
	foldXYOrthographic = 0.2
	foldZOrthographic  = 0.6
)

// Fold maps a rotated 4D point to 3D by adding fractions of W into X, Y and Z.
// It is not a perspective divide.
func Fold(p Vertex4, orthographic bool) Vertex3 {
	kxy, kz := foldXYPerspective, foldZPerspective
	if orthographic {
		kxy, kz = foldXYOrthographic, foldZOrthographic
	}
	return Vertex3{p.X + p.W*kxy, p.Y + p.W*kxy, p.Z + p.W*kz}
}

// unitRadius scales folded points so the farthest one from the origin sits
// at radius 1, keeping every camera depth at or above d-1. A point set
// collapsed onto the origin is left alone.
func unitRadius(points []Vertex3) {
	var r Real
	for _, p := range points {
		r = math.Max(r, p.Len())
	}
	if r < epsExtent || !isFinite(r) {
		return
	}
	for i := range points {
		points[i] = points[i].Mul(1 / r)
	}
}
