package bench

import (
	"fmt"
	"io"
	"strings"
)

const (
	headerFormat = "%-20s %-25s %12s %12s %12s %12s %12s %12s\n"
	rowFormat    = "%-20s %-25s %12.6f %12.6f %12.6f %12.6f %12.6f %12.6f\n"
)

// Report writes the results table.
type Report struct {
	w io.Writer
}

// NewReport returns a Report writing to w.
func NewReport(w io.Writer) *Report {
	return &Report{w: w}
}

// Header writes the column header followed by a dash rule of the same width.
func (r *Report) Header() error {
	header := fmt.Sprintf(headerFormat,
		"task", "variant", "mean", "median", "std_dev", "min", "max", "total")
	rule := strings.Repeat("-", len(header)-1)
	_, err := fmt.Fprintf(r.w, "%s%s\n", header, rule)
	return err
}

// Row writes one result line.
func (r *Report) Row(task, slug string, s Stats) error {
	_, err := fmt.Fprintf(r.w, rowFormat,
		task, slug, s.Mean, s.Median, s.StdDev, s.Min, s.Max, s.Total)
	return err
}

// WriteCatalog lists defs as task, slug and description, one per line.
func WriteCatalog(w io.Writer, defs []Def) error {
	for _, d := range defs {
		if _, err := fmt.Fprintf(w, "%-20s %-25s %s\n", d.Task, d.Slug, d.Description); err != nil {
			return err
		}
	}
	return nil
}
