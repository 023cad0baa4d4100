package filter

import (
	"github.com/gogpu/imgbench/internal/image"
)

// LeeHalfWidth is the half-width of the Lee filter window (7x7 in the interior).
const LeeHalfWidth = 3

// LeeFilter applies the Lee adaptive speckle filter to a Gray8 image.
//
// With global mean and variance taken over the whole image, each pixel is
// replaced by
//
//	localMean + w*(center - localMean),  w = localVar / (localVar + globalVar)
//
// where the local statistics cover the window of half-width LeeHalfWidth
// clipped to the image. All variances are population variances. Results are
// rounded and clamped. A uniform image (global variance exactly zero) is
// returned as an unchanged copy.
func LeeFilter(src *image.ImageBuf) *image.ImageBuf {
	w, h := src.Bounds()
	in := src.Data()

	total := float64(w * h)
	var sumAll, sumSqAll float64
	for _, p := range in {
		v := float64(p)
		sumAll += v
		sumSqAll += v * v
	}

	globalMean := sumAll / total
	globalVar := sumSqAll/total - globalMean*globalMean
	if globalVar == 0 {
		return src.Clone()
	}

	dst := image.MustImageBuf(w, h, image.FormatGray8)
	out := dst.Data()

	for y := 0; y < h; y++ {
		y0 := max(y-LeeHalfWidth, 0)
		y1 := min(y+LeeHalfWidth+1, h)
		for x := 0; x < w; x++ {
			x0 := max(x-LeeHalfWidth, 0)
			x1 := min(x+LeeHalfWidth+1, w)

			var localSum, localSq float64
			for wy := y0; wy < y1; wy++ {
				row := in[wy*w : wy*w+w]
				for wx := x0; wx < x1; wx++ {
					v := float64(row[wx])
					localSum += v
					localSq += v * v
				}
			}

			count := float64((y1 - y0) * (x1 - x0))
			localMean := localSum / count
			localVar := localSq/count - localMean*localMean
			weight := localVar / (localVar + globalVar)
			val := localMean + weight*(float64(in[y*w+x])-localMean)
			out[y*w+x] = image.RoundClamp(val)
		}
	}

	return dst
}
