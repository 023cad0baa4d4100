package bench

import (
	"testing"
)

func TestRegistryOrder(t *testing.T) {
	want := []struct{ task, slug string }{
		{"invert", "go-imaging-invert"},
		{"invert", "go-matrix-invert"},
		{"invert", "go-invert"},
		{"invert", "go-invert-copy"},
		{"grayscale", "go-imaging-grayscale"},
		{"grayscale", "go-grayscale"},
		{"blur", "go-imaging-blur"},
		{"blur", "go-separable-blur"},
		{"blur", "go-blur"},
		{"edge_detect_sobel", "go-sobel"},
		{"edge_detect_canny", "go-canny"},
		{"rotate_90", "go-imaging-rotate90"},
		{"rotate_90", "go-rotate90"},
		{"rotate_arbitrary", "go-xdraw-rotate45"},
		{"rotate_arbitrary", "go-imaging-rotate45"},
		{"rotate_arbitrary", "go-rotate45"},
		{"lee_filter", "go-lee"},
	}

	defs := Registry()
	if len(defs) != len(want) {
		t.Fatalf("len(Registry()) = %d, want %d", len(defs), len(want))
	}
	for i, d := range defs {
		if d.Task != want[i].task || d.Slug != want[i].slug {
			t.Errorf("Registry()[%d] = %s/%s, want %s/%s", i, d.Task, d.Slug, want[i].task, want[i].slug)
		}
	}
}

func TestRegistryEntries(t *testing.T) {
	seen := make(map[string]bool)
	for _, d := range Registry() {
		if seen[d.Slug] {
			t.Errorf("duplicate slug %q", d.Slug)
		}
		seen[d.Slug] = true

		if d.Kernel == nil {
			t.Errorf("%s: nil kernel", d.Slug)
		}
		if kernelKind(d.Kernel) == "unknown" {
			t.Errorf("%s: unknown kernel kind %T", d.Slug, d.Kernel)
		}
		if d.Description == "" {
			t.Errorf("%s: empty description", d.Slug)
		}
	}
}

func TestRegistryKernelKinds(t *testing.T) {
	want := map[string]string{
		"go-invert":      "in-place",
		"go-invert-copy": "color-to-color",
		"go-grayscale":   "color-to-gray",
		"go-blur":        "color-to-color",
		"go-sobel":       "gray-to-gray",
		"go-canny":       "gray-to-gray",
		"go-lee":         "gray-to-gray",
	}
	for _, d := range Registry() {
		if kind, ok := want[d.Slug]; ok && kernelKind(d.Kernel) != kind {
			t.Errorf("%s: kind = %s, want %s", d.Slug, kernelKind(d.Kernel), kind)
		}
	}
}

func TestFilter(t *testing.T) {
	defs := Registry()

	tests := []struct {
		name      string
		task      string
		slug      string
		wantSlugs []string
	}{
		{"no filter", "", "", nil},
		{"task", "blur", "", []string{"go-imaging-blur", "go-separable-blur", "go-blur"}},
		{"task and slug", "rotate_90", "go-rotate90", []string{"go-rotate90"}},
		{"slug only", "", "go-lee", []string{"go-lee"}},
		{"slug in other task", "blur", "go-lee", []string{}},
		{"unknown task", "sharpen", "", []string{}},
		{"prefix is not a match", "rotate", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(defs, tt.task, tt.slug)
			if tt.wantSlugs == nil {
				if len(got) != len(defs) {
					t.Fatalf("len = %d, want %d", len(got), len(defs))
				}
				return
			}
			if got == nil {
				t.Fatal("Filter() returned nil, want empty slice")
			}
			if len(got) != len(tt.wantSlugs) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.wantSlugs))
			}
			for i, d := range got {
				if d.Slug != tt.wantSlugs[i] {
					t.Errorf("got[%d] = %s, want %s", i, d.Slug, tt.wantSlugs[i])
				}
			}
		})
	}
}
