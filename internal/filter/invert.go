package filter

import (
	"github.com/disintegration/imaging"

	"github.com/gogpu/imgbench/internal/image"
)

// InvertInPlace replaces every channel value v of img with 255 - v.
// It works for both formats and is the only kernel that mutates its argument.
func InvertInPlace(img *image.ImageBuf) {
	data := img.Data()
	for i, v := range data {
		data[i] = 255 - v
	}
}

// Invert returns an inverted copy of src.
func Invert(src *image.ImageBuf) *image.ImageBuf {
	dst := src.Clone()
	InvertInPlace(dst)
	return dst
}

// InvertImaging inverts an RGB8 image with imaging.Invert.
func InvertImaging(src *image.ImageBuf) *image.ImageBuf {
	return image.FromStdImage(imaging.Invert(src.ToStdImage()))
}

// InvertMatrix inverts an RGB8 image through the invert color matrix.
func InvertMatrix(src *image.ImageBuf) *image.ImageBuf {
	return invertMatrix.Apply(src)
}

var invertMatrix = NewInvertMatrix()
