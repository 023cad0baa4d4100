package filter

import (
	"github.com/gogpu/imgbench/internal/image"
)

// ColorMatrix applies a 3x4 color transformation matrix to an RGB8 image.
// The transformation is:
//
//	[R']   [a00 a01 a02 a03]   [R]
//	[G'] = [a10 a11 a12 a13] * [G]
//	[B']   [a20 a21 a22 a23]   [B]
//	                           [1]
//
// The fourth column provides bias/offset values. Color values are in
// [0, 255] during the transformation; results are rounded and clamped.
type ColorMatrix struct {
	// Matrix is the 3x4 transformation matrix in row-major order.
	// [0-3] = row 0 (R), [4-7] = row 1 (G), [8-11] = row 2 (B)
	Matrix [12]float32
}

// NewInvertMatrix creates a color matrix that maps each channel to 255 - channel.
func NewInvertMatrix() *ColorMatrix {
	return &ColorMatrix{
		Matrix: [12]float32{
			-1, 0, 0, 255,
			0, -1, 0, 255,
			0, 0, -1, 255,
		},
	}
}

// Apply transforms every pixel of src and returns the result as a new RGB8 image.
func (f *ColorMatrix) Apply(src *image.ImageBuf) *image.ImageBuf {
	w, h := src.Bounds()
	dst := image.MustImageBuf(w, h, image.FormatRGB8)

	in := src.Data()
	out := dst.Data()
	m := &f.Matrix

	for i := 0; i+2 < len(in); i += 3 {
		r := float32(in[i])
		g := float32(in[i+1])
		b := float32(in[i+2])

		out[i] = clampUint8(m[0]*r + m[1]*g + m[2]*b + m[3])
		out[i+1] = clampUint8(m[4]*r + m[5]*g + m[6]*b + m[7])
		out[i+2] = clampUint8(m[8]*r + m[9]*g + m[10]*b + m[11])
	}

	return dst
}
