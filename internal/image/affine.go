package image

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Affine represents a 2D affine transformation matrix.
//
// The transformation is represented as a 3x3 matrix:
//
//	| a  b  c |
//	| d  e  f |
//	| 0  0  1 |
//
// Coordinates are in pixel units with y pointing down.
type Affine struct {
	a, b, c float64 // First row: x' = ax + by + c
	d, e, f float64 // Second row: y' = dx + ey + f
}

// Translate returns a translation transformation that shifts points by (tx, ty).
func Translate(tx, ty float64) Affine {
	return Affine{
		a: 1, b: 0, c: tx,
		d: 0, e: 1, f: ty,
	}
}

// Rotate returns a rotation by angle (in radians) around the origin:
// x' = x cos - y sin, y' = x sin + y cos.
// With y pointing down, positive angles turn content clockwise on screen.
func Rotate(angle float64) Affine {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Affine{
		a: cos, b: -sin, c: 0,
		d: sin, e: cos, f: 0,
	}
}

// Multiply returns the result of multiplying this affine transform by another.
// The result applies 'other' first, then 'this'.
func (a Affine) Multiply(other Affine) Affine {
	return Affine{
		a: a.a*other.a + a.b*other.d,
		b: a.a*other.b + a.b*other.e,
		c: a.a*other.c + a.b*other.f + a.c,
		d: a.d*other.a + a.e*other.d,
		e: a.d*other.b + a.e*other.e,
		f: a.d*other.c + a.e*other.f + a.f,
	}
}

// TransformPoint applies the affine transformation to point (x, y).
func (a Affine) TransformPoint(x, y float64) (float64, float64) {
	return a.a*x + a.b*y + a.c, a.d*x + a.e*y + a.f
}

// CenteredRotation maps points around the source center (scx, scy) to the
// destination center (dcx, dcy), rotated by angle. It is the forward map of
// a canvas-expanding rotation.
func CenteredRotation(angle, scx, scy, dcx, dcy float64) Affine {
	return Translate(dcx, dcy).Multiply(Rotate(angle)).Multiply(Translate(-scx, -scy))
}

// Aff3 returns the matrix in the layout used by golang.org/x/image/draw.
func (a Affine) Aff3() f64.Aff3 {
	return f64.Aff3{a.a, a.b, a.c, a.d, a.e, a.f}
}
