package filter

import (
	"math"

	"github.com/gogpu/imgbench/internal/image"
)

// Sobel operators. sobelX responds to vertical edges, sobelY to horizontal ones.
var (
	sobelX = [3][3]int{{-1, 0, 1}, {-2, 0, 2}, {-1, 0, 1}}
	sobelY = [3][3]int{{-1, -2, -1}, {0, 0, 0}, {1, 2, 1}}
)

// Sobel computes the gradient magnitude of a Gray8 image.
// Each output pixel is min(255, trunc(sqrt(gx² + gy²))) where gx and gy are
// the 3x3 Sobel responses with clamp-to-edge sampling.
func Sobel(src *image.ImageBuf) *image.ImageBuf {
	w, h := src.Bounds()
	dst := image.MustImageBuf(w, h, image.FormatGray8)

	in := src.Data()
	out := dst.Data()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gx, gy := sobelAt(in, w, h, x, y)
			mag := math.Sqrt(float64(gx*gx + gy*gy))
			if mag > 255 {
				out[y*w+x] = 255
			} else {
				out[y*w+x] = uint8(mag)
			}
		}
	}

	return dst
}

// sobelAt returns the Sobel responses at (x, y) of a packed Gray8 plane.
// Neighbors outside the image are replaced by the nearest edge pixel.
func sobelAt(in []byte, w, h, x, y int) (gx, gy int) {
	for ky := -1; ky <= 1; ky++ {
		py := image.Clamp(y+ky, 0, h-1)
		for kx := -1; kx <= 1; kx++ {
			px := image.Clamp(x+kx, 0, w-1)
			v := int(in[py*w+px])
			gx += v * sobelX[ky+1][kx+1]
			gy += v * sobelY[ky+1][kx+1]
		}
	}
	return gx, gy
}
