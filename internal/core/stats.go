package core

import (
	"errors"
	"math"
	"sort"
)

// ErrNoBillingData is returned when a billing statistic has no present
// values to aggregate over. Callers degrade to a "no value" display.
var ErrNoBillingData = errors.New("no billing data")

// MeanBilling is the arithmetic mean of the present billing amounts.
func MeanBilling(t Table) (float64, error) {
	values := t.BillingValues()
	if len(values) == 0 {
		return 0, ErrNoBillingData
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}

// Quantile computes the q-quantile (0 ≤ q ≤ 1) with linear interpolation
// between closest ranks. Panics on an empty slice; callers check first.
func Quantile(values []float64, q float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// Median is the 0.5-quantile.
func Median(values []float64) float64 {
	return Quantile(values, 0.5)
}

// Histogram is a fixed-bin-count histogram over a value range. Edges has one
// more element than Counts; bin i covers [Edges[i], Edges[i+1]), with the
// last bin closed on the right.
type Histogram struct {
	Edges  []float64
	Counts []int
}

// BinEdges splits [min, max] into bins equal-width intervals. A degenerate
// range (min == max) still yields usable edges one unit wide.
func BinEdges(min, max float64, bins int) []float64 {
	if max <= min {
		max = min + 1
	}
	width := (max - min) / float64(bins)
	edges := make([]float64, bins+1)
	for i := 0; i <= bins; i++ {
		edges[i] = min + width*float64(i)
	}
	edges[bins] = max
	return edges
}

// BinCounts counts values into the bins defined by edges. Values outside the
// range are ignored.
func BinCounts(values []float64, edges []float64) []int {
	bins := len(edges) - 1
	counts := make([]int, bins)
	lo, hi := edges[0], edges[bins]
	width := (hi - lo) / float64(bins)
	for _, v := range values {
		if v < lo || v > hi {
			continue
		}
		i := int((v - lo) / width)
		if i >= bins {
			i = bins - 1
		}
		counts[i]++
	}
	return counts
}

// NewHistogram bins values into the given number of equal-width bins spanning
// the observed range. An empty input yields a zero-valued histogram.
func NewHistogram(values []float64, bins int) Histogram {
	if len(values) == 0 {
		return Histogram{}
	}
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	edges := BinEdges(min, max, bins)
	return Histogram{Edges: edges, Counts: BinCounts(values, edges)}
}
