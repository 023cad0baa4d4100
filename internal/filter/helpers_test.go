package filter

import (
	"testing"

	"github.com/gogpu/imgbench/internal/image"
)

// Test helper functions shared across filter tests.

// patternImage returns a deterministic, non-uniform image of the given format.
func patternImage(w, h int, format image.Format) *image.ImageBuf {
	img := image.MustImageBuf(w, h, format)
	data := img.Data()
	seed := uint32(12345)
	for i := range data {
		// xorshift32
		seed ^= seed << 13
		seed ^= seed >> 17
		seed ^= seed << 5
		data[i] = byte(seed)
	}
	return img
}

// uniformImage returns an image with every channel set to v.
func uniformImage(w, h int, format image.Format, v uint8) *image.ImageBuf {
	img := image.MustImageBuf(w, h, format)
	data := img.Data()
	for i := range data {
		data[i] = v
	}
	return img
}

// setGray writes pixel (x, y) of a Gray8 image.
func setGray(img *image.ImageBuf, x, y int, v uint8) {
	img.RowBytes(y)[x] = v
}

// grayFromRows builds a Gray8 image from rows of pixel values.
func grayFromRows(rows ...[]uint8) *image.ImageBuf {
	img := image.MustImageBuf(len(rows[0]), len(rows), image.FormatGray8)
	for y, row := range rows {
		copy(img.RowBytes(y), row)
	}
	return img
}

// assertSameImage fails the test if got and want differ in shape or pixels.
func assertSameImage(t *testing.T, got, want *image.ImageBuf) {
	t.Helper()
	if !got.SameShape(want) {
		t.Fatalf("shape = %dx%d %v, want %dx%d %v",
			got.Width(), got.Height(), got.Format(),
			want.Width(), want.Height(), want.Format())
	}
	gd, wd := got.Data(), want.Data()
	for i := range gd {
		if gd[i] != wd[i] {
			t.Fatalf("byte %d = %d, want %d", i, gd[i], wd[i])
		}
	}
}

// maxDiff returns the largest absolute per-byte difference of two same-shaped images.
func maxDiff(a, b *image.ImageBuf) int {
	ad, bd := a.Data(), b.Data()
	worst := 0
	for i := range ad {
		d := int(ad[i]) - int(bd[i])
		if d < 0 {
			d = -d
		}
		worst = max(worst, d)
	}
	return worst
}
