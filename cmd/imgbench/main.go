// Command imgbench times image-processing kernels on a single image.
//
// Usage:
//
//	imgbench [flags] [image [iterations [task]]]
//
// Flags must come before the positional arguments.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/imgbench"
	"github.com/gogpu/imgbench/internal/bench"
)

func main() {
	var (
		impl    = flag.String("impl", "", "run only the variant with this slug")
		outDir  = flag.String("o", "", "output directory (default: ../output relative to the image directory)")
		list    = flag.Bool("list", false, "list the selected variants and exit")
		verbose = flag.Bool("v", false, "enable debug logging on stderr")
	)
	flag.Usage = usage
	flag.Parse()

	imgbench.SetLogger(newLogger(os.Stderr, *verbose))

	cfg := configFromArgs(flag.Args())
	cfg.Impl = *impl
	cfg.OutputDir = *outDir

	suite := bench.NewSuite(cfg, os.Stdout)

	if *list {
		if err := bench.WriteCatalog(os.Stdout, suite.Defs()); err != nil {
			log.Fatalf("Failed to list benchmarks: %v", err)
		}
		return
	}

	if _, err := suite.Run(); err != nil {
		log.Fatalf("Benchmark failed: %v", err)
	}
}

// newLogger returns the text logger the command logs with: warnings and
// errors only, or everything down to debug when verbose is set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// configFromArgs builds the session config from the positional arguments
// image, iterations and task. Missing arguments keep their defaults.
func configFromArgs(args []string) bench.Config {
	cfg := bench.DefaultConfig()
	if len(args) > 0 {
		cfg.ImagePath = args[0]
	}
	if len(args) > 1 {
		cfg.Iterations = bench.ParseIterations(args[1])
	}
	if len(args) > 2 {
		cfg.Task = args[2]
	}
	return cfg
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: imgbench [flags] [image [iterations [task]]]\n\n")
	fmt.Fprintf(out, "  image       input image (default %s)\n", bench.DefaultImagePath)
	fmt.Fprintf(out, "  iterations  timed runs per variant (default %d)\n", bench.DefaultIterations)
	fmt.Fprintf(out, "  task        run only this task\n\nFlags:\n")
	flag.PrintDefaults()
}
