package filter

import (
	"math"
	"testing"

	"github.com/gogpu/imgbench/internal/image"
)

func TestRotate90(t *testing.T) {
	// 3x2:
	//  1 2 3
	//  4 5 6
	src := grayFromRows([]uint8{1, 2, 3}, []uint8{4, 5, 6})
	out := Rotate90(src)

	// Clockwise, 2x3:
	//  4 1
	//  5 2
	//  6 3
	want := grayFromRows([]uint8{4, 1}, []uint8{5, 2}, []uint8{6, 3})
	assertSameImage(t, out, want)
}

func TestRotate90FourTimes(t *testing.T) {
	for _, format := range []image.Format{image.FormatRGB8, image.FormatGray8} {
		t.Run(format.String(), func(t *testing.T) {
			src := patternImage(13, 7, format)
			out := src
			for i := 0; i < 4; i++ {
				out = Rotate90(out)
				if i%2 == 0 && (out.Width() != 7 || out.Height() != 13) {
					t.Fatalf("rotation %d: size = %dx%d, want 7x13", i+1, out.Width(), out.Height())
				}
			}
			assertSameImage(t, out, src)
		})
	}
}

func TestRotate90ImagingMatches(t *testing.T) {
	src := patternImage(21, 11, image.FormatRGB8)
	assertSameImage(t, Rotate90Imaging(src), Rotate90(src))
}

func TestRotatedSize(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		angle        float64
		wantW, wantH int
	}{
		{"zero", 10, 20, 0, 10, 20},
		{"45 square", 100, 100, Rotate45Angle, 142, 142},
		{"45 rect", 4, 2, Rotate45Angle, 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := RotatedSize(tt.w, tt.h, tt.angle)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("RotatedSize(%d, %d, %v) = %dx%d, want %dx%d", tt.w, tt.h, tt.angle, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestRotate45(t *testing.T) {
	const w, h = 40, 30
	src := uniformImage(w, h, image.FormatRGB8, 200)
	out := Rotate45(src)

	nw, nh := RotatedSize(w, h, Rotate45Angle)
	if out.Width() != nw || out.Height() != nh {
		t.Fatalf("size = %dx%d, want %dx%d", out.Width(), out.Height(), nw, nh)
	}

	rot := newRotation(w, h, Rotate45Angle)
	var inside, outside int
	for oy := 0; oy < nh; oy++ {
		for ox := 0; ox < nw; ox++ {
			sx, sy := rot.sourceAt(ox, oy)
			want := uint8(0)
			if image.InInterior(sx, sy, w, h) {
				want = 200
				inside++
			} else {
				outside++
			}
			for c := 0; c < 3; c++ {
				if got := out.At(ox, oy, c); got != want {
					t.Fatalf("At(%d, %d, %d) = %d, want %d", ox, oy, c, got, want)
				}
			}
		}
	}
	if inside == 0 || outside == 0 {
		t.Errorf("inside = %d, outside = %d, want both > 0", inside, outside)
	}
}

func TestRotationCenter(t *testing.T) {
	// The canvas center maps to the source center.
	const w, h = 40, 30
	nw, nh := RotatedSize(w, h, Rotate45Angle)
	if nw%2 != 0 || nh%2 != 0 {
		t.Skip("odd canvas")
	}
	sx, sy := newRotation(w, h, Rotate45Angle).sourceAt(nw/2, nh/2)
	if math.Abs(sx-w/2) > 1e-9 || math.Abs(sy-h/2) > 1e-9 {
		t.Errorf("center maps to (%v, %v), want (%d, %d)", sx, sy, w/2, h/2)
	}
}

func TestRotate45Gray(t *testing.T) {
	src := patternImage(16, 16, image.FormatGray8)
	out := Rotate45(src)
	if out.Format() != image.FormatGray8 {
		t.Errorf("Format() = %v, want Gray8", out.Format())
	}
	if got := out.At(0, 0, 0); got != 0 {
		t.Errorf("corner = %d, want 0", got)
	}
}

func TestRotate45LibraryVariants(t *testing.T) {
	const w, h = 40, 30
	src := uniformImage(w, h, image.FormatRGB8, 200)

	t.Run("xdraw", func(t *testing.T) {
		out := Rotate45XDraw(src)
		nw, nh := RotatedSize(w, h, Rotate45Angle)
		if out.Width() != nw || out.Height() != nh {
			t.Fatalf("size = %dx%d, want %dx%d", out.Width(), out.Height(), nw, nh)
		}
		checkRotatedUniform(t, out, 200)
	})

	t.Run("imaging", func(t *testing.T) {
		out := Rotate45Imaging(src)
		if out.Width() == 0 || out.Height() == 0 {
			t.Fatal("empty output")
		}
		checkRotatedUniform(t, out, 200)
	})
}

// checkRotatedUniform checks a rotated uniform image: the center keeps the
// source value and the corners are background.
func checkRotatedUniform(t *testing.T, out *image.ImageBuf, v uint8) {
	t.Helper()
	cx, cy := out.Width()/2, out.Height()/2
	for c := 0; c < 3; c++ {
		got := int(out.At(cx, cy, c))
		if got < int(v)-1 || got > int(v)+1 {
			t.Errorf("center channel %d = %d, want ~%d", c, got, v)
		}
		if got := out.At(0, 0, c); got != 0 {
			t.Errorf("corner channel %d = %d, want 0", c, got)
		}
	}
}
