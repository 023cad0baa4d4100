package filter

import (
	"github.com/gogpu/imgbench/internal/image"
)

// Hysteresis thresholds for Canny, applied to the L1 gradient magnitude.
const (
	CannyLow  = 100.0
	CannyHigh = 200.0
)

// tan(22.5°) and tan(67.5°), the direction quantization boundaries.
const (
	tan22 = 0.41421356237309503
	tan67 = 2.414213562373095
)

// Pixel classes after non-maximum suppression.
const (
	cannyNone uint8 = iota
	cannyWeak
	cannyStrong
)

// Canny detects edges in a Gray8 image with fixed thresholds (CannyLow, CannyHigh).
//
// The image is not pre-smoothed. Gradients come from the 3x3 Sobel operators
// with replicated borders, the magnitude is |gx| + |gy|. Non-maximum
// suppression compares each pixel against its two neighbors along the
// gradient direction quantized to 0°, 45°, 90° or 135°. A surviving pixel with
// magnitude above CannyHigh is an edge; one above CannyLow is an edge only if
// it is 8-connected to another edge pixel. Edges are 255, everything else 0.
func Canny(src *image.ImageBuf) *image.ImageBuf {
	w, h := src.Bounds()
	dst := image.MustImageBuf(w, h, image.FormatGray8)

	in := src.Data()
	n := w * h
	mag := make([]int, n)
	gxs := make([]int, n)
	gys := make([]int, n)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gx, gy := sobelAt(in, w, h, x, y)
			i := y*w + x
			gxs[i], gys[i] = gx, gy
			mag[i] = absInt(gx) + absInt(gy)
		}
	}

	class := make([]uint8, n)
	stack := make([]int, 0, 64)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			m := mag[i]
			if float64(m) <= CannyLow || !isLocalMax(mag, w, h, x, y, gxs[i], gys[i]) {
				continue
			}
			if float64(m) > CannyHigh {
				class[i] = cannyStrong
				stack = append(stack, i)
			} else {
				class[i] = cannyWeak
			}
		}
	}

	// Hysteresis: grow edges from strong pixels through weak neighbors.
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x, y := i%w, i/w
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				nx, ny := x+dx, y+dy
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				j := ny*w + nx
				if class[j] == cannyWeak {
					class[j] = cannyStrong
					stack = append(stack, j)
				}
			}
		}
	}

	out := dst.Data()
	for i, c := range class {
		if c == cannyStrong {
			out[i] = 255
		}
	}

	return dst
}

// isLocalMax reports whether mag at (x, y) survives non-maximum suppression.
// Neighbors outside the image count as zero. The comparison is strict on the
// preceding neighbor and non-strict on the following one so that plateaus
// keep exactly one pixel.
func isLocalMax(mag []int, w, h, x, y, gx, gy int) bool {
	m := mag[y*w+x]
	ax := float64(absInt(gx))
	ay := float64(absInt(gy))

	var dx, dy int
	switch {
	case ay <= ax*tan22:
		dx, dy = 1, 0
	case ay >= ax*tan67:
		dx, dy = 0, 1
	case (gx < 0) == (gy < 0):
		dx, dy = 1, 1
	default:
		dx, dy = -1, 1
	}

	before := magAt(mag, w, h, x-dx, y-dy)
	after := magAt(mag, w, h, x+dx, y+dy)
	if dx != 0 && dy != 0 {
		return m > before && m > after
	}
	return m > before && m >= after
}

func magAt(mag []int, w, h, x, y int) int {
	if x < 0 || x >= w || y < 0 || y >= h {
		return 0
	}
	return mag[y*w+x]
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
