package stereogram

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Rot3 holds angles (or angular velocities) in radians about the X, Y and Z axes.
type Rot3 struct {
	X, Y, Z Real
}

// Angles in radians for rotations in coordinate planes, in application order.
type Rot4 struct {
	XY, XZ, YZ, XW, YW, ZW Real
}

var (
	rot3Names = [3]string{"X", "Y", "Z"}
	rot4Names = [6]string{"XY", "XZ", "YZ", "XW", "YW", "ZW"}
)

// Get and Set index the axes in X, Y, Z order.
func (r Rot3) Get(i int) Real { return [3]Real{r.X, r.Y, r.Z}[i] }

func (r *Rot3) Set(i int, v Real) {
	switch i {
	case 0:
		r.X = v
	case 1:
		r.Y = v
	case 2:
		r.Z = v
	default:
		panic("rot3 axis out of range")
	}
}

// Advance adds one tick of velocity and wraps every angle into [0, 2π).
func (r Rot3) Advance(vel Rot3) Rot3 {
	return Rot3{wrapAngle(r.X + vel.X), wrapAngle(r.Y + vel.Y), wrapAngle(r.Z + vel.Z)}
}

// Get and Set index the planes in XY, XZ, YZ, XW, YW, ZW order.
func (r Rot4) Get(i int) Real { return [6]Real{r.XY, r.XZ, r.YZ, r.XW, r.YW, r.ZW}[i] }

func (r *Rot4) Set(i int, v Real) {
	switch i {
	case 0:
		r.XY = v
	case 1:
		r.XZ = v
	case 2:
		r.YZ = v
	case 3:
		r.XW = v
	case 4:
		r.YW = v
	case 5:
		r.ZW = v
	default:
		panic("rot4 plane out of range")
	}
}

func (r Rot4) Advance(vel Rot4) Rot4 {
	return Rot4{
		XY: wrapAngle(r.XY + vel.XY), XZ: wrapAngle(r.XZ + vel.XZ), YZ: wrapAngle(r.YZ + vel.YZ),
		XW: wrapAngle(r.XW + vel.XW), YW: wrapAngle(r.YW + vel.YW), ZW: wrapAngle(r.ZW + vel.ZW),
	}
}

// rot3Matrix composes Rz·Ry·Rx, so X is applied first.
func rot3Matrix(r Rot3) mgl64.Mat3 {
	return mgl64.Rotate3DZ(r.Z).Mul3(mgl64.Rotate3DY(r.Y)).Mul3(mgl64.Rotate3DX(r.X))
}

func rotXY(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[0][0], M.M[0][1] = c, -s
	M.M[1][0], M.M[1][1] = s, c
	return M
}
func rotXZ(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[0][0], M.M[0][2] = c, -s
	M.M[2][0], M.M[2][2] = s, c
	return M
}
func rotXW(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[0][0], M.M[0][3] = c, -s
	M.M[3][0], M.M[3][3] = s, c
	return M
}
func rotYZ(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[1][1], M.M[1][2] = c, -s
	M.M[2][1], M.M[2][2] = s, c
	return M
}
func rotYW(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[1][1], M.M[1][3] = c, -s
	M.M[3][1], M.M[3][3] = s, c
	return M
}
func rotZW(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[2][2], M.M[2][3] = c, -s
	M.M[3][2], M.M[3][3] = s, c
	return M
}

// rotFromAngles composes the six plane rotations so that applying the result
// equals applying XY, XZ, YZ, XW, YW, ZW one after another.
func rotFromAngles(r Rot4) Mat4 {
	R := I4()
	R = rotXY(r.XY).Mul(R)
	R = rotXZ(r.XZ).Mul(R)
	R = rotYZ(r.YZ).Mul(R)
	R = rotXW(r.XW).Mul(R)
	R = rotYW(r.YW).Mul(R)
	R = rotZW(r.ZW).Mul(R)
	return R
}
