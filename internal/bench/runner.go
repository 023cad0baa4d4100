package bench

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gogpu/imgbench"
	"github.com/gogpu/imgbench/internal/image"
)

// Runner errors.
var (
	// ErrUnknownKernel is returned for a Def whose Kernel is nil or not one
	// of the four kernel kinds.
	ErrUnknownKernel = errors.New("bench: unknown kernel kind")

	// ErrMissingInput is returned when the input a kernel needs is nil.
	ErrMissingInput = errors.New("bench: missing input image")
)

// Inputs are the shared images kernels read from. Both are prepared once per
// session. Color is RGB8; Gray is the grayscale of Color.
type Inputs struct {
	Color *image.ImageBuf
	Gray  *image.ImageBuf
}

// Result is the outcome of running one Def.
type Result struct {
	Def     Def
	Samples []float64
	Stats   Stats

	// OutputPath is the PNG file holding the last iteration's output.
	OutputPath string
}

// Runner executes kernels a fixed number of times and times each call.
type Runner struct {
	iterations int
	outputDir  string
	pool       *image.Pool
}

// NewRunner returns a Runner that runs each kernel iterations times and
// writes outputs into outputDir. An iteration count below 1 is replaced by
// DefaultIterations.
func NewRunner(iterations int, outputDir string) *Runner {
	if iterations < 1 {
		iterations = DefaultIterations
	}
	return &Runner{
		iterations: iterations,
		outputDir:  outputDir,
		pool:       image.NewPool(2),
	}
}

// Iterations returns the number of timed calls per kernel.
func (r *Runner) Iterations() int {
	return r.iterations
}

// Run executes def's kernel and returns its samples and statistics.
//
// InPlace, ColorToColor and ColorToGray kernels read in.Color; GrayToGray
// kernels read in.Gray. An InPlace kernel gets a fresh copy of in.Color
// before every call, made outside the timed region, so in.Color is never
// modified. The last output is written to <outputDir>/<slug>.png.
func (r *Runner) Run(def Def, in Inputs) (Result, error) {
	log := imgbench.Logger()
	log.Info("running benchmark",
		"task", def.Task, "variant", def.Slug,
		"kind", kernelKind(def.Kernel), "iterations", r.iterations)

	var (
		samples []float64
		last    *image.ImageBuf
		err     error
	)

	switch k := def.Kernel.(type) {
	case InPlace:
		if in.Color == nil {
			return Result{}, fmt.Errorf("%w: %s needs a color image", ErrMissingInput, def.Slug)
		}
		var work *image.ImageBuf
		samples, err = measure(r.iterations,
			func() (*image.ImageBuf, error) {
				r.pool.Put(work)
				var cerr error
				work, cerr = r.pool.Copy(in.Color)
				return work, cerr
			},
			func(img *image.ImageBuf) { k(img) })
		last = work
		defer r.pool.Put(work)

	case ColorToColor:
		samples, last, err = r.measureMap(def.Slug, in.Color, k)
	case ColorToGray:
		samples, last, err = r.measureMap(def.Slug, in.Color, k)
	case GrayToGray:
		samples, last, err = r.measureMap(def.Slug, in.Gray, k)

	default:
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownKernel, def.Slug)
	}
	if err != nil {
		return Result{}, fmt.Errorf("bench: %s: %w", def.Slug, err)
	}

	path := filepath.Join(r.outputDir, def.Slug+".png")
	if err := last.SavePNG(path); err != nil {
		return Result{}, fmt.Errorf("bench: write %s: %w", path, err)
	}

	st, err := Aggregate(samples)
	if err != nil {
		return Result{}, fmt.Errorf("bench: %s: %w", def.Slug, err)
	}

	log.Debug("benchmark done",
		"variant", def.Slug,
		"mean", st.Mean, "median", st.Median, "total", st.Total,
		"output", path)

	return Result{Def: def, Samples: samples, Stats: st, OutputPath: path}, nil
}

// measureMap times a kernel that returns a new image from a shared input.
func (r *Runner) measureMap(slug string, src *image.ImageBuf, fn func(*image.ImageBuf) *image.ImageBuf) ([]float64, *image.ImageBuf, error) {
	if src == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrMissingInput, slug)
	}
	var last *image.ImageBuf
	samples, err := measure(r.iterations,
		func() (*image.ImageBuf, error) { return src, nil },
		func(img *image.ImageBuf) { last = fn(img) })
	return samples, last, err
}

// measure calls prepare and then call n times, recording the wall-clock
// duration of each call in seconds. prepare is not timed.
func measure[T any](n int, prepare func() (T, error), call func(T)) ([]float64, error) {
	samples := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		arg, err := prepare()
		if err != nil {
			return nil, err
		}
		start := time.Now()
		call(arg)
		samples = append(samples, time.Since(start).Seconds())
	}
	return samples, nil
}
