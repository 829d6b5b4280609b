package walk

import (
	"fmt"
	"time"
)

// Walk1D jumps the frog steps times along a line starting at 0: a sample
// below 0.5 moves it back, anything else forward. The position after every
// jump is recorded.
func Walk1D(samples []float64, steps int) (*Result, error) {
	if steps < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSteps, steps)
	}
	if steps > len(samples) {
		return nil, fmt.Errorf("%w: %d jumps requested, %d samples available",
			ErrInsufficientSamples, steps, len(samples))
	}

	position := 0
	jumps := make([]Position, 0, steps)

	start := time.Now()
	for _, v := range samples[:steps] {
		if v < 0.5 {
			position--
		} else {
			position++
		}
		jumps = append(jumps, Position{X: position})
	}
	elapsed := time.Since(start)

	return &Result{
		Dim:        1,
		Trajectory: jumps,
		Final:      Position{X: position},
		Steps:      steps,
		State:      Exhausted,
		Elapsed:    elapsed,
	}, nil
}
