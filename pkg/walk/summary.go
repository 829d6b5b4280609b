package walk

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

var axisNames = []string{"x", "y", "z"}

// AxisStats describes the positions visited along one axis.
type AxisStats struct {
	Mean, StdDev float64
	Min, Max     float64
}

// Summary condenses a trajectory.
type Summary struct {
	Axes []AxisStats
	// Distance is the Euclidean distance from the origin to the final position.
	Distance float64
	// Remaining is the Euclidean distance from the final position to the
	// target; zero for one-dimensional walks.
	Remaining float64
}

// Summary computes per-axis statistics of the visited positions.
func (r *Result) Summary() Summary {
	s := Summary{
		Distance: floats.Norm(r.Final.Coords(r.Dim), 2),
	}
	if r.Dim > 1 {
		s.Remaining = floats.Distance(r.Final.Coords(r.Dim), r.Target.Coords(r.Dim), 2)
	}

	m := r.Matrix()
	if m == nil {
		return s
	}
	rows, cols := m.Dims()
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, m)
		mean, std := stat.MeanStdDev(col, nil)
		s.Axes = append(s.Axes, AxisStats{
			Mean:   mean,
			StdDev: std,
			Min:    floats.Min(col),
			Max:    floats.Max(col),
		})
	}
	return s
}

func (s Summary) String() string {
	var b strings.Builder
	for i, a := range s.Axes {
		fmt.Fprintf(&b, "%s: mean %.3f, std %.3f, range [%g, %g]\n",
			axisNames[i], a.Mean, a.StdDev, a.Min, a.Max)
	}
	fmt.Fprintf(&b, "distance from origin: %.3f", s.Distance)
	if s.Remaining > 0 {
		fmt.Fprintf(&b, "\ndistance to target: %.3f", s.Remaining)
	}
	return b.String()
}
