package presenter

import (
	"fmt"
	"io"

	"frogjump-go/pkg/walk"
)

// PrintReport writes the outcome of a walk in plain text.
func PrintReport(w io.Writer, res *walk.Result) {
	switch {
	case res.Dim == 1:
		fmt.Fprintf(w, "The frog's final position after %d jumps is: %d\n", res.Steps, res.Final.X)
	case res.Reached():
		fmt.Fprintf(w, "The frog reached %s in %d jumps.\n", res.Target.Format(res.Dim), res.Steps)
	default:
		fmt.Fprintf(w, "The frog could not reach %s after %d jumps; it stopped at %s.\n",
			res.Target.Format(res.Dim), res.Steps, res.Final.Format(res.Dim))
	}
	fmt.Fprintf(w, "State: %s\n", res.State)
	fmt.Fprintf(w, "Elapsed time: %.2f seconds\n", res.Elapsed.Seconds())
	fmt.Fprintln(w, res.Summary())
}

// PositionHistogram bins the visited positions of a one-dimensional walk.
func PositionHistogram(res *walk.Result, nbins int) *Histogram {
	values := make([]float64, len(res.Trajectory))
	for i, p := range res.Trajectory {
		values[i] = float64(p.X)
	}
	if len(values) == 0 {
		return NewHistogram(nil, nbins, 0, 1)
	}
	s := res.Summary()
	return NewHistogram(values, nbins, s.Axes[0].Min, s.Axes[0].Max+1)
}
