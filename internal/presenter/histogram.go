package presenter

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Histogram представляет гистограмму распределения
type Histogram struct {
	Bins   []float64 // Границы бинов
	Counts []int     // Количество значений в каждом бине
}

// NewHistogram counts values into nbins equal bins over [lo, hi). Values
// outside the range are ignored.
func NewHistogram(values []float64, nbins int, lo, hi float64) *Histogram {
	nbins = max(nbins, 1)
	bins := make([]float64, nbins+1)
	floats.Span(bins, lo, hi)

	inside := make([]float64, 0, len(values))
	for _, v := range values {
		if v >= lo && v < hi {
			inside = append(inside, v)
		}
	}
	sort.Float64s(inside)

	weights := make([]float64, nbins)
	stat.Histogram(weights, bins, inside, nil)

	counts := make([]int, nbins)
	for i, w := range weights {
		counts[i] = int(w)
	}
	return &Histogram{Bins: bins, Counts: counts}
}

// Total returns the number of counted values.
func (h *Histogram) Total() int {
	total := 0
	for _, c := range h.Counts {
		total += c
	}
	return total
}

// Fprint draws the histogram as text bars of at most width characters.
func (h *Histogram) Fprint(w io.Writer, width int) {
	maxCount := 0
	for _, count := range h.Counts {
		maxCount = max(maxCount, count)
	}

	for i, count := range h.Counts {
		n := 0
		if maxCount > 0 {
			n = int(float64(count) / float64(maxCount) * float64(width))
		}
		fmt.Fprintf(w, "[%8.3f - %8.3f): %s %d\n", h.Bins[i], h.Bins[i+1], strings.Repeat("█", n), count)
	}
}
