package filter

import (
	goimage "image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	"github.com/gogpu/imgbench/internal/image"
)

// Rotate45Angle is the fixed angle of the arbitrary-rotation task, in radians.
const Rotate45Angle = math.Pi / 4

// Rotate90 rotates an image 90° clockwise without interpolation.
// A W x H input produces an H x W output with out(H-1-y, x) = in(x, y).
func Rotate90(src *image.ImageBuf) *image.ImageBuf {
	w, h := src.Bounds()
	ch := src.Channels()
	dst := image.MustImageBuf(h, w, src.Format())

	in := src.Data()
	out := dst.Data()
	outW := h

	for iy := 0; iy < h; iy++ {
		for ix := 0; ix < w; ix++ {
			ox := h - 1 - iy
			oy := ix
			copy(out[(oy*outW+ox)*ch:(oy*outW+ox)*ch+ch], in[(iy*w+ix)*ch:(iy*w+ix)*ch+ch])
		}
	}

	return dst
}

// Rotate90Imaging rotates an RGB8 image 90° clockwise with imaging.Rotate270
// (imaging measures angles counter-clockwise).
func Rotate90Imaging(src *image.ImageBuf) *image.ImageBuf {
	return image.FromStdImage(imaging.Rotate270(src.ToStdImage()))
}

// RotatedSize returns the canvas that holds a W x H image rotated by angle
// without clipping: ceil(W|cos| + H|sin|) x ceil(W|sin| + H|cos|).
func RotatedSize(w, h int, angle float64) (int, int) {
	cos := math.Abs(math.Cos(angle))
	sin := math.Abs(math.Sin(angle))
	nw := int(math.Ceil(float64(w)*cos + float64(h)*sin))
	nh := int(math.Ceil(float64(w)*sin + float64(h)*cos))
	return nw, nh
}

// Rotate45 rotates an image by Rotate45Angle about its center onto an
// expanded canvas, sampling with bilinear interpolation.
//
// Each output pixel is mapped back into the source by the inverse rotation
// about the two centers. Only source positions with a complete 2x2
// neighborhood (see image.InInterior) are sampled; all other output pixels
// keep the zero fill.
func Rotate45(src *image.ImageBuf) *image.ImageBuf {
	return rotateBilinear(src, Rotate45Angle)
}

func rotateBilinear(src *image.ImageBuf, angle float64) *image.ImageBuf {
	w, h := src.Bounds()
	ch := src.Channels()
	nw, nh := RotatedSize(w, h, angle)
	dst := image.MustImageBuf(nw, nh, src.Format())
	rot := newRotation(w, h, angle)

	out := dst.Data()
	for oy := 0; oy < nh; oy++ {
		for ox := 0; ox < nw; ox++ {
			sx, sy := rot.sourceAt(ox, oy)
			if !image.InInterior(sx, sy, w, h) {
				continue
			}
			base := (oy*nw + ox) * ch
			for c := 0; c < ch; c++ {
				out[base+c] = image.RoundClamp(image.BilinearAt(src, sx, sy, c))
			}
		}
	}

	return dst
}

// rotation maps output pixels of an expanded rotation canvas back into the
// source image.
type rotation struct {
	inverse  image.Affine
	cx, cy   float64 // source center
	ncx, ncy float64 // canvas center
}

func newRotation(w, h int, angle float64) rotation {
	nw, nh := RotatedSize(w, h, angle)
	return rotation{
		inverse: image.Rotate(-angle),
		cx:      float64(w) / 2,
		cy:      float64(h) / 2,
		ncx:     float64(nw) / 2,
		ncy:     float64(nh) / 2,
	}
}

// sourceAt returns the source coordinate sampled for output pixel (ox, oy).
func (r rotation) sourceAt(ox, oy int) (float64, float64) {
	rx, ry := r.inverse.TransformPoint(float64(ox)-r.ncx, float64(oy)-r.ncy)
	return rx + r.cx, ry + r.cy
}

// Rotate45XDraw rotates an RGB8 image by Rotate45Angle with
// golang.org/x/image/draw's bilinear transformer onto the same canvas as Rotate45.
// The canvas starts opaque black so partially covered edge pixels blend toward
// black like the zero fill of the manual variant.
func Rotate45XDraw(src *image.ImageBuf) *image.ImageBuf {
	w, h := src.Bounds()
	nw, nh := RotatedSize(w, h, Rotate45Angle)

	dst := goimage.NewRGBA(goimage.Rect(0, 0, nw, nh))
	draw.Draw(dst, dst.Bounds(), goimage.Black, goimage.Point{}, draw.Src)

	s2d := image.CenteredRotation(Rotate45Angle,
		float64(w)/2, float64(h)/2,
		float64(nw)/2, float64(nh)/2)

	stdSrc := src.ToStdImage()
	draw.BiLinear.Transform(dst, s2d.Aff3(), stdSrc, stdSrc.Bounds(), draw.Over, nil)

	return image.FromStdImage(dst)
}

// Rotate45Imaging rotates an RGB8 image with imaging.Rotate on a black
// background. imaging sizes its own canvas, which may differ by a pixel from
// RotatedSize.
func Rotate45Imaging(src *image.ImageBuf) *image.ImageBuf {
	deg := Rotate45Angle * 180 / math.Pi
	return image.FromStdImage(imaging.Rotate(src.ToStdImage(), -deg, color.Black))
}
