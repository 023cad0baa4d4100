package bench

import (
	"github.com/gogpu/imgbench/internal/image"
)

// Kernel is one of the four calling conventions a benchmarked variant can
// have: InPlace, ColorToColor, ColorToGray or GrayToGray. The set is closed.
type Kernel interface {
	kernel()
}

// InPlace mutates an RGB8 image. The runner hands it a fresh copy of the
// input before every call.
type InPlace func(*image.ImageBuf)

// ColorToColor maps an RGB8 image to a new RGB8 image.
type ColorToColor func(*image.ImageBuf) *image.ImageBuf

// ColorToGray maps an RGB8 image to a new Gray8 image.
type ColorToGray func(*image.ImageBuf) *image.ImageBuf

// GrayToGray maps a Gray8 image to a new Gray8 image.
type GrayToGray func(*image.ImageBuf) *image.ImageBuf

func (InPlace) kernel()      {}
func (ColorToColor) kernel() {}
func (ColorToGray) kernel()  {}
func (GrayToGray) kernel()   {}

// kernelKind names the calling convention of k for logs.
func kernelKind(k Kernel) string {
	switch k.(type) {
	case InPlace:
		return "in-place"
	case ColorToColor:
		return "color-to-color"
	case ColorToGray:
		return "color-to-gray"
	case GrayToGray:
		return "gray-to-gray"
	default:
		return "unknown"
	}
}
