package bench

import (
	"path/filepath"
	"strconv"

	"github.com/gogpu/imgbench"
)

// Defaults used when the command line leaves a value out.
const (
	DefaultImagePath  = "../images/lenna.png"
	DefaultIterations = 101
)

// Config holds the settings of one benchmark session.
type Config struct {
	// ImagePath is the input image, decoded once into RGB8.
	ImagePath string

	// Iterations is the number of timed calls per variant.
	Iterations int

	// Task keeps only variants of this task. Empty runs every task.
	Task string

	// Impl keeps only the variant with this slug. Empty runs every variant.
	Impl string

	// OutputDir receives <slug>.png for each variant. Empty means the
	// directory derived from ImagePath (see OutputPath).
	OutputDir string
}

// DefaultConfig returns a Config with the default image and iteration count.
func DefaultConfig() Config {
	return Config{
		ImagePath:  DefaultImagePath,
		Iterations: DefaultIterations,
	}
}

// OutputPath returns the directory benchmark outputs are written to:
// OutputDir if set, otherwise "output" beside the image's parent directory.
func (c Config) OutputPath() string {
	if c.OutputDir != "" {
		return c.OutputDir
	}
	return filepath.Join(filepath.Dir(c.ImagePath), "..", "output")
}

// ParseIterations parses an iteration count. Anything that is not an integer
// of at least 1 yields DefaultIterations; the fallback is only visible in
// debug logs.
func ParseIterations(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		imgbench.Logger().Debug("bench: invalid iteration count, using default",
			"value", s, "default", DefaultIterations)
		return DefaultIterations
	}
	return n
}
