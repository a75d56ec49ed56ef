// Package astro provides the spherical-coordinate math that places catalog
// stars on the unit celestial sphere.
package astro

import "math"

// Quat is a rotation quaternion with components (X, Y, Z, W).
type Quat struct {
	X, Y, Z, W float64
}

// RotationX returns the rotation about the +X (right) axis by deg degrees.
func RotationX(deg float64) Quat {
	half := degToRad(deg) / 2
	return Quat{X: math.Sin(half), W: math.Cos(half)}
}

// RotationY returns the rotation about the +Y (up) axis by deg degrees.
func RotationY(deg float64) Quat {
	half := degToRad(deg) / 2
	return Quat{Y: math.Sin(half), W: math.Cos(half)}
}

// Mul composes rotations: the product a*b applies b first, then a.
func (a Quat) Mul(b Quat) Quat {
	return Quat{
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		Z: a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
	}
}

// Rotate applies the rotation to a vector: v + 2w(u×v) + 2u×(u×v) with
// u the quaternion's vector part. Assumes a unit quaternion.
func (a Quat) Rotate(v [3]float64) [3]float64 {
	u := [3]float64{a.X, a.Y, a.Z}
	c1 := cross(u, v)
	c2 := cross(u, c1)
	return [3]float64{
		v[0] + 2*(a.W*c1[0]+c2[0]),
		v[1] + 2*(a.W*c1[1]+c2[1]),
		v[2] + 2*(a.W*c1[2]+c2[2]),
	}
}

// cross computes the cross product of two 3D vectors.
func cross(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
