package filter

import (
	"sync"

	"github.com/disintegration/imaging"

	"github.com/gogpu/imgbench/internal/image"
)

// BlurSigma is the standard deviation used by every blur variant.
const BlurSigma = 1.0

// GaussianBlur5x5 convolves each channel with the fixed 5x5 sigma=1 table.
// Source coordinates are clamped to the image (replicate border); results
// are rounded and clamped to [0, 255].
func GaussianBlur5x5(src *image.ImageBuf) *image.ImageBuf {
	w, h := src.Bounds()
	ch := src.Channels()
	dst := image.MustImageBuf(w, h, src.Format())

	in := src.Data()
	out := dst.Data()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			for c := 0; c < ch; c++ {
				sum := 0.0
				for ky := -2; ky <= 2; ky++ {
					sy := image.Clamp(y+ky, 0, h-1)
					for kx := -2; kx <= 2; kx++ {
						sx := image.Clamp(x+kx, 0, w-1)
						sum += float64(in[(sy*w+sx)*ch+c]) * gauss5[(ky+2)*5+(kx+2)]
					}
				}
				out[(y*w+x)*ch+c] = image.RoundClamp(sum)
			}
		}
	}

	return dst
}

// SeparableBlur applies a Gaussian blur as two 1-D passes.
// The horizontal pass writes into a float32 buffer, the vertical pass reads it
// back, giving O(w*h*k) work instead of O(w*h*k²). Both passes clamp to edge.
func SeparableBlur(src *image.ImageBuf, sigma float64) *image.ImageBuf {
	w, h := src.Bounds()
	ch := src.Channels()
	dst := image.MustImageBuf(w, h, src.Format())

	kernel := CachedGaussianKernel(sigma)

	temp := getTempBuffer(w * h * ch)
	defer putTempBuffer(temp)

	blurHorizontal(src.Data(), temp, w, h, ch, kernel)
	blurVertical(temp, dst.Data(), w, h, ch, kernel)

	return dst
}

// SeparableBlurSigma1 is SeparableBlur with BlurSigma.
func SeparableBlurSigma1(src *image.ImageBuf) *image.ImageBuf {
	return SeparableBlur(src, BlurSigma)
}

// BlurImaging blurs with imaging.Blur at BlurSigma.
// imaging truncates the kernel window at the image edge and renormalizes the
// remaining weights, so edge pixels can differ slightly from the clamped variants.
func BlurImaging(src *image.ImageBuf) *image.ImageBuf {
	return image.FromStdImage(imaging.Blur(src.ToStdImage(), BlurSigma))
}

// blurHorizontal applies 1D horizontal convolution from src into temp.
func blurHorizontal(src []byte, temp []float32, width, height, ch int, kernel []float32) {
	kernelSize := len(kernel)
	halfKernel := kernelSize / 2

	for y := 0; y < height; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			for c := 0; c < ch; c++ {
				var sum float32
				for k := 0; k < kernelSize; k++ {
					kx := image.Clamp(x+k-halfKernel, 0, width-1)
					sum += float32(src[(row+kx)*ch+c]) * kernel[k]
				}
				temp[(row+x)*ch+c] = sum
			}
		}
	}
}

// blurVertical applies 1D vertical convolution from temp into dst.
func blurVertical(temp []float32, dst []byte, width, height, ch int, kernel []float32) {
	kernelSize := len(kernel)
	halfKernel := kernelSize / 2

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			for c := 0; c < ch; c++ {
				var sum float32
				for k := 0; k < kernelSize; k++ {
					ky := image.Clamp(y+k-halfKernel, 0, height-1)
					sum += temp[(ky*width+x)*ch+c] * kernel[k]
				}
				dst[(y*width+x)*ch+c] = clampUint8(sum)
			}
		}
	}
}

// floatBuffer wraps a slice for sync.Pool to avoid allocation warnings.
type floatBuffer struct {
	data []float32
}

// Temporary buffer pool for the separable passes.
var tempBufferPool = sync.Pool{
	New: func() interface{} {
		return &floatBuffer{data: make([]float32, 512*512*3)}
	},
}

// getTempBuffer retrieves a temporary buffer with at least size elements.
// Every element is overwritten by blurHorizontal, so no clearing is needed.
func getTempBuffer(size int) []float32 {
	wrapper := tempBufferPool.Get().(*floatBuffer)

	if len(wrapper.data) < size {
		tempBufferPool.Put(wrapper)
		return make([]float32, size)
	}

	return wrapper.data[:size]
}

// putTempBuffer returns a temporary buffer to the pool.
func putTempBuffer(buf []float32) {
	if cap(buf) <= 16*1024*1024 {
		tempBufferPool.Put(&floatBuffer{data: buf[:cap(buf)]})
	}
}

// clampUint8 clamps a float32 to [0, 255] and rounds to the nearest uint8.
func clampUint8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
