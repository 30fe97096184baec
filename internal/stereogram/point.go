package stereogram

// Point4 represents a point in 4-dimensional space.
type Point4 struct {
	X, Y, Z, W Real
}
