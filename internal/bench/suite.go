package bench

import (
	"fmt"
	"io"
	"os"

	"github.com/gogpu/imgbench/internal/filter"
	"github.com/gogpu/imgbench/internal/image"
)

// Suite runs the selected variants of the catalog against one image.
type Suite struct {
	cfg Config
	out io.Writer
}

// NewSuite returns a Suite that prints its table to out.
func NewSuite(cfg Config, out io.Writer) *Suite {
	return &Suite{cfg: cfg, out: out}
}

// Defs returns the catalog entries selected by the configured filters.
func (s *Suite) Defs() []Def {
	return Filter(Registry(), s.cfg.Task, s.cfg.Impl)
}

// Run loads the image, prepares its grayscale, creates the output directory
// and runs every selected variant in catalog order, printing one row per
// variant as it completes. It stops at the first error; rows and output
// files already produced are kept.
func (s *Suite) Run() ([]Result, error) {
	src, err := image.LoadImage(s.cfg.ImagePath)
	if err != nil {
		return nil, err
	}
	gray := filter.Grayscale(src)

	outDir := s.cfg.OutputPath()
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("bench: create output directory %s: %w", outDir, err)
	}

	report := NewReport(s.out)
	if err := report.Header(); err != nil {
		return nil, err
	}

	runner := NewRunner(s.cfg.Iterations, outDir)
	in := Inputs{Color: src, Gray: gray}

	defs := s.Defs()
	results := make([]Result, 0, len(defs))
	for _, def := range defs {
		res, err := runner.Run(def, in)
		if err != nil {
			return results, err
		}
		results = append(results, res)
		if err := report.Row(def.Task, def.Slug, res.Stats); err != nil {
			return results, err
		}
	}

	return results, nil
}
