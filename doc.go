// Package imgbench measures image-processing kernels.
//
// # Overview
//
// imgbench loads one image, runs a fixed set of kernels on it many times and
// prints per-variant wall-clock statistics. Each task (invert, grayscale,
// blur, rotation, edge detection, speckle filtering) has a hand-written Go
// variant and, where a library offers the same operation, variants built on
// github.com/disintegration/imaging and golang.org/x/image/draw.
//
// # Quick Start
//
//	go run ./cmd/imgbench ../images/lenna.png 101 blur
//
// The table goes to stdout, one row per variant:
//
//	task                 variant                           mean       median ...
//	blur                 go-blur                       0.012345     0.012301 ...
//
// The last output of every variant is written as <variant>.png into the
// output directory (../output next to the image directory by default).
//
// # Architecture
//
// The module is organized into:
//   - internal/image: the ImageBuf pixel buffer, PNG I/O, bilinear sampling
//   - internal/filter: the kernels themselves
//   - internal/bench: registry, runner, statistics and report
//   - cmd/imgbench: the command-line entry point
//
// # Logging
//
// Nothing is logged unless a logger is installed with [SetLogger].
// The command installs a text handler on stderr.
package imgbench

// Version information
const (
	// Version is the current version of the module
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
