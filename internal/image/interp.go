package image

import "math"

// BilinearAt interpolates channel c of img at pixel coordinates (sx, sy).
//
// The 2x2 neighborhood starting at (floor(sx), floor(sy)) must lie inside the
// image; callers check this with InInterior. The result is not rounded.
func BilinearAt(img *ImageBuf, sx, sy float64, c int) float64 {
	x0 := int(math.Floor(sx))
	y0 := int(math.Floor(sy))
	fx := sx - float64(x0)
	fy := sy - float64(y0)

	bpp := img.format.BytesPerPixel()
	i00 := y0*img.stride + x0*bpp + c
	i10 := i00 + bpp
	i01 := i00 + img.stride
	i11 := i01 + bpp

	d := img.data
	return lerp2D(float64(d[i00]), float64(d[i10]), float64(d[i01]), float64(d[i11]), fx, fy)
}

// InInterior reports whether (sx, sy) lies in the region where a 2x2
// bilinear neighborhood is fully inside a width x height image:
// 0 <= sx < width-1 and 0 <= sy < height-1.
func InInterior(sx, sy float64, width, height int) bool {
	return sx >= 0 && sx < float64(width-1) && sy >= 0 && sy < float64(height-1)
}

// RoundClamp rounds v half away from zero and clamps it to [0, 255].
func RoundClamp(v float64) uint8 {
	r := math.Round(v)
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return uint8(r)
}

// Clamp clamps an integer value to [minVal, maxVal].
func Clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// lerp performs linear interpolation between a and b.
func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// lerp2D performs bilinear interpolation on a 2x2 grid.
func lerp2D(v00, v10, v01, v11, tx, ty float64) float64 {
	v0 := lerp(v00, v10, tx)
	v1 := lerp(v01, v11, tx)
	return lerp(v0, v1, ty)
}
