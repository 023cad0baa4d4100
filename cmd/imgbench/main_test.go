package main

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/gogpu/imgbench"
	"github.com/gogpu/imgbench/internal/bench"
)

func TestConfigFromArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bench.Config
	}{
		{
			name: "no args",
			want: bench.DefaultConfig(),
		},
		{
			name: "image only",
			args: []string{"img/a.png"},
			want: bench.Config{ImagePath: "img/a.png", Iterations: bench.DefaultIterations},
		},
		{
			name: "all positionals",
			args: []string{"img/a.png", "5", "blur"},
			want: bench.Config{ImagePath: "img/a.png", Iterations: 5, Task: "blur"},
		},
		{
			name: "bad iterations",
			args: []string{"img/a.png", "many", "invert"},
			want: bench.Config{ImagePath: "img/a.png", Iterations: bench.DefaultIterations, Task: "invert"},
		},
		{
			name: "zero iterations",
			args: []string{"img/a.png", "0"},
			want: bench.Config{ImagePath: "img/a.png", Iterations: bench.DefaultIterations},
		},
		{
			name: "extra args ignored",
			args: []string{"a.png", "3", "grayscale", "extra"},
			want: bench.Config{ImagePath: "a.png", Iterations: 3, Task: "grayscale"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := configFromArgs(tt.args); got != tt.want {
				t.Errorf("configFromArgs(%v) = %+v, want %+v", tt.args, got, tt.want)
			}
		})
	}
}

func TestBadIterationsAreSilent(t *testing.T) {
	orig := imgbench.Logger()
	t.Cleanup(func() { imgbench.SetLogger(orig) })

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	stdout, stderr := os.Stdout, os.Stderr
	os.Stdout, os.Stderr = w, w

	var cfg bench.Config
	func() {
		defer func() { os.Stdout, os.Stderr = stdout, stderr }()
		// Same logger setup as main without -v.
		imgbench.SetLogger(newLogger(os.Stderr, false))
		cfg = configFromArgs([]string{"a.png", "abc", "blur"})
	}()
	_ = w.Close()

	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("output for a bad iteration count: %q", got)
	}
	if cfg.Iterations != bench.DefaultIterations {
		t.Errorf("Iterations = %d, want %d", cfg.Iterations, bench.DefaultIterations)
	}
}

func TestBadIterationsVisibleWhenVerbose(t *testing.T) {
	orig := imgbench.Logger()
	t.Cleanup(func() { imgbench.SetLogger(orig) })

	var buf bytes.Buffer
	imgbench.SetLogger(newLogger(&buf, true))
	_ = configFromArgs([]string{"a.png", "0"})

	if !strings.Contains(buf.String(), "invalid iteration count") {
		t.Errorf("debug log = %q, want the iteration fallback", buf.String())
	}
	if !strings.Contains(buf.String(), "level=DEBUG") {
		t.Errorf("debug log = %q, want level=DEBUG", buf.String())
	}
}
