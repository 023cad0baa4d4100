package bench

import (
	"errors"

	"github.com/aclements/go-moremath/stats"
)

// ErrNoSamples is returned by Aggregate for an empty sample sequence.
var ErrNoSamples = errors.New("bench: no samples")

// Stats summarizes the timing samples of one variant, in seconds.
type Stats struct {
	Mean   float64
	Median float64
	StdDev float64
	Min    float64
	Max    float64
	Total  float64
}

// Aggregate reduces a sequence of timing samples to Stats.
//
// Median is the element at index N/2 of the sorted samples, which is the
// upper of the two middle values when N is even. StdDev is the sample
// standard deviation (divisor N-1), zero for a single sample.
// samples is not modified.
func Aggregate(samples []float64) (Stats, error) {
	if len(samples) == 0 {
		return Stats{}, ErrNoSamples
	}

	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	s := stats.Sample{Xs: sorted}
	s.Sort()

	n := len(sorted)
	total := s.Sum()
	lo, hi := s.Bounds()

	var sd float64
	if n > 1 {
		sd = stats.StdDev(sorted)
	}

	return Stats{
		Mean:   total / float64(n),
		Median: sorted[n/2],
		StdDev: sd,
		Min:    lo,
		Max:    hi,
		Total:  total,
	}, nil
}
