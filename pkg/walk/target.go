package walk

import "time"

// Direction is one unit move of the frog.
type Direction struct {
	Name  string
	Delta Position
}

// Directions2D splits (0,1] into four equal bins, in this order.
var Directions2D = []Direction{
	{"up", Position{Y: 1}},
	{"down", Position{Y: -1}},
	{"right", Position{X: 1}},
	{"left", Position{X: -1}},
}

// Directions3D splits (0,1] into six equal bins, in this order.
var Directions3D = []Direction{
	{"up", Position{Y: 1}},
	{"down", Position{Y: -1}},
	{"right", Position{X: 1}},
	{"left", Position{X: -1}},
	{"forward", Position{Z: 1}},
	{"backward", Position{Z: -1}},
}

// Choose maps a sample to a direction. Bin k of n covers
// ((k-1)/n, k/n], the last one closed at exactly 1. Samples outside (0,1],
// zero included, match no bin.
func Choose(v float64, dirs []Direction) (Direction, bool) {
	threshold := 1 / float64(len(dirs))
	for k := 1; k <= len(dirs); k++ {
		lower := float64(k-1) * threshold
		upper := float64(k) * threshold
		if k == len(dirs) {
			upper = 1
		}
		if lower < v && v <= upper {
			return dirs[k-1], true
		}
	}
	return Direction{}, false
}

// Source yields samples one at a time. readsamples.Scanner satisfies it.
type Source interface {
	Next() (float64, bool)
}

type sliceSource struct {
	samples []float64
	i       int
}

func (s *sliceSource) Next() (float64, bool) {
	if s.i >= len(s.samples) {
		return 0, false
	}
	v := s.samples[s.i]
	s.i++
	return v, true
}

// Walk2D walks from (0,0) until target is reached or the samples run out.
func Walk2D(samples []float64, target Position) *Result {
	return WalkFrom(&sliceSource{samples: samples}, Directions2D, 2, target)
}

// Walk3D walks from (0,0,0) until target is reached or the samples run out.
func Walk3D(samples []float64, target Position) *Result {
	return WalkFrom(&sliceSource{samples: samples}, Directions3D, 3, target)
}

// WalkFrom runs a target walk of the given dimension over any sample source.
// The trajectory starts with the origin and gains one entry per sample, moved
// or not. When the source runs dry the walk ends Exhausted and Steps is the
// number of samples read; reading time is then part of Elapsed.
func WalkFrom(src Source, dirs []Direction, dim int, target Position) *Result {
	res := &Result{
		Dim:        dim,
		Trajectory: []Position{{}},
		Target:     target,
		State:      Running,
	}

	var pos Position
	start := time.Now()
	for res.State == Running {
		v, ok := src.Next()
		if !ok {
			res.State = Exhausted
			break
		}
		res.Steps++

		if d, ok := Choose(v, dirs); ok {
			pos = pos.Add(d.Delta)
		}
		res.Trajectory = append(res.Trajectory, pos)

		if pos == target {
			res.State = TargetReached
		}
	}
	res.Elapsed = time.Since(start)
	res.Final = pos

	return res
}
