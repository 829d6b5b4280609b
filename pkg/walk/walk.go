// Package walk moves a frog across an integer lattice, one unit per uniform
// sample, in one, two or three dimensions.
package walk

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrInsufficientSamples is returned when a walk asks for more steps than
	// there are samples.
	ErrInsufficientSamples = errors.New("insufficient samples")
	// ErrInvalidSteps is returned for a negative step budget.
	ErrInvalidSteps = errors.New("invalid step count")
)

// Position is a point of the lattice. Walks of lower dimension leave the
// unused axes at zero.
type Position struct {
	X, Y, Z int
}

func (p Position) Add(q Position) Position {
	return Position{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

// Coords returns the first dim coordinates as floats.
func (p Position) Coords(dim int) []float64 {
	c := []float64{float64(p.X), float64(p.Y), float64(p.Z)}
	return c[:dim]
}

// Format prints the first dim coordinates, e.g. "(3,-1)".
func (p Position) Format(dim int) string {
	parts := make([]string, dim)
	for i, v := range p.Coords(dim) {
		parts[i] = fmt.Sprintf("%d", int(v))
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// State is the stage of a walk.
type State int

const (
	Running State = iota
	TargetReached
	Exhausted
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case TargetReached:
		return "target reached"
	case Exhausted:
		return "exhausted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Result is everything a finished walk reports.
type Result struct {
	Dim        int
	Trajectory []Position
	Final      Position
	// Target is meaningless for one-dimensional walks.
	Target Position
	// Steps is the number of samples consumed.
	Steps int
	State State
	// Elapsed covers the stepping loop only.
	Elapsed time.Duration
}

// Reached reports whether the walk stopped on its target.
func (r *Result) Reached() bool {
	return r.State == TargetReached
}

// Matrix returns the trajectory with one row per position and one column per
// axis, or nil for an empty trajectory.
func (r *Result) Matrix() *mat.Dense {
	if len(r.Trajectory) == 0 {
		return nil
	}
	m := mat.NewDense(len(r.Trajectory), r.Dim, nil)
	for i, p := range r.Trajectory {
		m.SetRow(i, p.Coords(r.Dim))
	}
	return m
}
