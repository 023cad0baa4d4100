package bench

import (
	"github.com/gogpu/imgbench/internal/filter"
)

// Def describes one benchmarked variant.
type Def struct {
	// Task groups variants that compute the same operation.
	Task string

	// Slug names the variant. It is unique and is also the output file name.
	Slug string

	// Description is a one-line label shown by the catalog listing.
	Description string

	Kernel Kernel
}

// Registry returns the benchmark catalog in execution order.
// Each call returns a new slice.
func Registry() []Def {
	return []Def{
		{"invert", "go-imaging-invert", "Invert colors (imaging)", ColorToColor(filter.InvertImaging)},
		{"invert", "go-matrix-invert", "Invert colors (color matrix)", ColorToColor(filter.InvertMatrix)},
		{"invert", "go-invert", "Invert colors (manual, in place)", InPlace(filter.InvertInPlace)},
		{"invert", "go-invert-copy", "Invert colors (manual, into a new image)", ColorToColor(filter.Invert)},

		{"grayscale", "go-imaging-grayscale", "Grayscale conversion (imaging)", ColorToGray(filter.GrayscaleImaging)},
		{"grayscale", "go-grayscale", "Grayscale conversion (manual)", ColorToGray(filter.Grayscale)},

		{"blur", "go-imaging-blur", "Gaussian blur sigma=1 (imaging)", ColorToColor(filter.BlurImaging)},
		{"blur", "go-separable-blur", "Gaussian blur sigma=1 (separable)", ColorToColor(filter.SeparableBlurSigma1)},
		{"blur", "go-blur", "Gaussian blur 5x5 (manual)", ColorToColor(filter.GaussianBlur5x5)},

		{"edge_detect_sobel", "go-sobel", "Sobel edge detection (manual)", GrayToGray(filter.Sobel)},

		{"edge_detect_canny", "go-canny", "Canny edge detection (manual)", GrayToGray(filter.Canny)},

		{"rotate_90", "go-imaging-rotate90", "Rotate 90 degrees (imaging)", ColorToColor(filter.Rotate90Imaging)},
		{"rotate_90", "go-rotate90", "Rotate 90 degrees (manual)", ColorToColor(filter.Rotate90)},

		{"rotate_arbitrary", "go-xdraw-rotate45", "Rotate 45 degrees (x/image/draw bilinear)", ColorToColor(filter.Rotate45XDraw)},
		{"rotate_arbitrary", "go-imaging-rotate45", "Rotate 45 degrees (imaging)", ColorToColor(filter.Rotate45Imaging)},
		{"rotate_arbitrary", "go-rotate45", "Rotate 45 degrees (manual bilinear)", ColorToColor(filter.Rotate45)},

		{"lee_filter", "go-lee", "Lee speckle filter 7x7 (manual)", GrayToGray(filter.LeeFilter)},
	}
}

// Filter returns the defs whose Task equals task and whose Slug equals slug.
// An empty task or slug matches everything. Order is preserved; no match
// gives an empty slice.
func Filter(defs []Def, task, slug string) []Def {
	out := make([]Def, 0, len(defs))
	for _, d := range defs {
		if task != "" && d.Task != task {
			continue
		}
		if slug != "" && d.Slug != slug {
			continue
		}
		out = append(out, d)
	}
	return out
}
