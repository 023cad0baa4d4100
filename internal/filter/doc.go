// Package filter implements the image kernels measured by imgbench.
//
// Each task comes in one or more variants:
//   - hand-written pixel loops over [image.ImageBuf] data (Invert, Grayscale,
//     GaussianBlur5x5, SeparableBlur, Sobel, Canny, Rotate90, Rotate45, LeeFilter)
//   - library-backed routines built on github.com/disintegration/imaging and
//     golang.org/x/image/draw (the *Imaging and *XDraw functions)
//   - a color matrix transform (ColorMatrix) for per-pixel affine color maps
//
// Kernels never modify their input, with the single exception of InvertInPlace.
// Outputs are freshly allocated buffers; color kernels take and return RGB8,
// luminance kernels take and return Gray8.
//
// Boundary policies are fixed per kernel:
//   - GaussianBlur5x5, SeparableBlur, Sobel, Canny: clamp to edge (replicate)
//   - BlurImaging: window truncated at the edge, weights renormalized
//   - LeeFilter: window clipped at the edge, statistics over in-bounds pixels
//   - Rotate45: output pixels without a full 2x2 source neighborhood stay black
package filter
