package filter

import (
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/gogpu/imgbench/internal/image"
)

// Luminance weights (ITU-R BT.601).
const (
	lumR = 0.299
	lumG = 0.587
	lumB = 0.114
)

// Luminance returns floor(0.299R + 0.587G + 0.114B) as a uint8.
// The sum is computed in float64 and truncated, never rounded; every
// grayscale variant goes through this function so their outputs agree.
func Luminance(r, g, b uint8) uint8 {
	// Explicit conversions keep the products from being fused into FMAs.
	y := float64(lumR*float64(r)) + float64(lumG*float64(g)) + float64(lumB*float64(b))
	return uint8(y)
}

// Grayscale converts an RGB8 image to Gray8 with a plain pixel loop.
func Grayscale(src *image.ImageBuf) *image.ImageBuf {
	w, h := src.Bounds()
	dst := image.MustImageBuf(w, h, image.FormatGray8)

	in := src.Data()
	out := dst.Data()
	for i := range out {
		p := in[i*3 : i*3+3 : i*3+3]
		out[i] = Luminance(p[0], p[1], p[2])
	}

	return dst
}

// GrayscaleImaging converts an RGB8 image to Gray8 by letting
// imaging.AdjustFunc drive the pixel iteration with the same Luminance
// formula. The first channel of the adjusted image becomes the output.
func GrayscaleImaging(src *image.ImageBuf) *image.ImageBuf {
	adjusted := imaging.AdjustFunc(src.ToStdImage(), func(c color.NRGBA) color.NRGBA {
		y := Luminance(c.R, c.G, c.B)
		return color.NRGBA{R: y, G: y, B: y, A: c.A}
	})

	w, h := src.Bounds()
	dst := image.MustImageBuf(w, h, image.FormatGray8)
	out := dst.Data()
	for y := 0; y < h; y++ {
		row := adjusted.Pix[y*adjusted.Stride:]
		for x := 0; x < w; x++ {
			out[y*w+x] = row[x*4]
		}
	}

	return dst
}
