package image

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif" // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// LoadImage decodes the image file at path into an RGB8 buffer.
// The format is detected from the content; PNG, JPEG, GIF, BMP, TIFF and
// WebP are supported. Errors name the offending path.
func LoadImage(path string) (*ImageBuf, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	buf, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("image: load %s: %w", path, err)
	}
	return buf, nil
}

// Decode decodes an image from the given reader, auto-detecting the format.
// The result is always RGB8; alpha is discarded.
func Decode(r io.Reader) (*ImageBuf, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return toRGB8(img), nil
}

// SavePNG writes the image as a PNG file, replacing any existing file.
func (b *ImageBuf) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := b.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// EncodePNG encodes the image as PNG to the given writer.
func (b *ImageBuf) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, b.ToStdImage()); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// FromStdImage converts a standard library image into an ImageBuf.
// *image.Gray becomes Gray8; everything else becomes RGB8 with alpha dropped.
func FromStdImage(img image.Image) *ImageBuf {
	if gray, ok := img.(*image.Gray); ok {
		bounds := gray.Bounds()
		buf := MustImageBuf(bounds.Dx(), bounds.Dy(), FormatGray8)
		for y := range buf.height {
			srcStart := y * gray.Stride
			copy(buf.RowBytes(y), gray.Pix[srcStart:srcStart+buf.width])
		}
		return buf
	}
	return toRGB8(img)
}

// toRGB8 converts any image into a packed RGB8 buffer.
func toRGB8(img image.Image) *ImageBuf {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	buf := MustImageBuf(width, height, FormatRGB8)

	// Fast path for NRGBA images (library outputs, PNGs with alpha)
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := range height {
			src := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+width*4]
			dst := buf.RowBytes(y)
			for x := range width {
				dst[x*3] = src[x*4]
				dst[x*3+1] = src[x*4+1]
				dst[x*3+2] = src[x*4+2]
			}
		}
		return buf
	}

	// Fast path for opaque RGBA images (truecolor PNG)
	if rgba, ok := img.(*image.RGBA); ok && rgba.Opaque() {
		for y := range height {
			src := rgba.Pix[y*rgba.Stride : y*rgba.Stride+width*4]
			dst := buf.RowBytes(y)
			for x := range width {
				dst[x*3] = src[x*4]
				dst[x*3+1] = src[x*4+1]
				dst[x*3+2] = src[x*4+2]
			}
		}
		return buf
	}

	// Generic slow path for any image type
	for y := range height {
		dst := buf.RowBytes(y)
		for x := range width {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			dst[x*3] = c.R
			dst[x*3+1] = c.G
			dst[x*3+2] = c.B
		}
	}

	return buf
}

// ToStdImage converts the ImageBuf to a standard library image.Image.
// Returns *image.Gray for Gray8 and an opaque *image.NRGBA for RGB8.
func (b *ImageBuf) ToStdImage() image.Image {
	rect := image.Rect(0, 0, b.width, b.height)

	switch b.format {
	case FormatGray8:
		gray := image.NewGray(rect)
		for y := range b.height {
			copy(gray.Pix[y*gray.Stride:], b.RowBytes(y))
		}
		return gray

	default:
		nrgba := image.NewNRGBA(rect)
		for y := range b.height {
			row := b.RowBytes(y)
			dstStart := y * nrgba.Stride
			for x := range b.width {
				srcOff := x * 3
				dstOff := dstStart + x*4
				nrgba.Pix[dstOff] = row[srcOff]
				nrgba.Pix[dstOff+1] = row[srcOff+1]
				nrgba.Pix[dstOff+2] = row[srcOff+2]
				nrgba.Pix[dstOff+3] = 255
			}
		}
		return nrgba
	}
}
