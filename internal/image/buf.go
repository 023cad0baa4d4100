package image

import (
	"errors"
)

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("image: invalid format")
)

// ImageBuf is a tightly packed 8-bit image buffer.
//
// Rows are stored back to back with no padding, so the stride always equals
// Format.RowBytes(width). Dimensions and format never change after creation.
//
// ImageBuf has no internal locking. Kernels treat their input as read-only;
// only in-place kernels write to the buffer they are given.
type ImageBuf struct {
	data   []byte
	width  int
	height int
	stride int
	format Format
}

// NewImageBuf creates a zeroed image buffer with the given dimensions and format.
// Returns an error if dimensions are invalid or format is unknown.
func NewImageBuf(width, height int, format Format) (*ImageBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}

	stride := format.RowBytes(width)
	return &ImageBuf{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// MustImageBuf is like NewImageBuf but panics on invalid arguments.
// Kernels use it for outputs whose shape is derived from a valid input.
func MustImageBuf(width, height int, format Format) *ImageBuf {
	b, err := NewImageBuf(width, height, format)
	if err != nil {
		panic(err)
	}
	return b
}

// Clone creates a deep copy of the image buffer.
func (b *ImageBuf) Clone() *ImageBuf {
	newData := make([]byte, len(b.data))
	copy(newData, b.data)

	return &ImageBuf{
		data:   newData,
		width:  b.width,
		height: b.height,
		stride: b.stride,
		format: b.format,
	}
}

// SameShape reports whether b and other have identical dimensions and format.
func (b *ImageBuf) SameShape(other *ImageBuf) bool {
	return other != nil &&
		b.width == other.width &&
		b.height == other.height &&
		b.format == other.format
}

// Width returns the image width in pixels.
func (b *ImageBuf) Width() int {
	return b.width
}

// Height returns the image height in pixels.
func (b *ImageBuf) Height() int {
	return b.height
}

// Format returns the pixel format.
func (b *ImageBuf) Format() Format {
	return b.format
}

// Channels returns the number of channels per pixel.
func (b *ImageBuf) Channels() int {
	return b.format.Channels()
}

// Bounds returns the image dimensions as (width, height).
func (b *ImageBuf) Bounds() (int, int) {
	return b.width, b.height
}

// Data returns the raw pixel data slice.
// Modifying this data modifies the image.
func (b *ImageBuf) Data() []byte {
	return b.data
}

// RowBytes returns a slice of the pixel data for row y.
// Returns nil if y is out of bounds.
func (b *ImageBuf) RowBytes(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.stride
	return b.data[start : start+b.stride]
}

// At returns channel c of pixel (x, y). Coordinates must be in bounds.
func (b *ImageBuf) At(x, y, c int) uint8 {
	return b.data[y*b.stride+x*b.format.BytesPerPixel()+c]
}

// Equal reports whether b and other have the same shape and identical pixels.
func (b *ImageBuf) Equal(other *ImageBuf) bool {
	if !b.SameShape(other) {
		return false
	}
	for i := range b.data {
		if b.data[i] != other.data[i] {
			return false
		}
	}
	return true
}
