package walk

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repeat(v float64, n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = v
	}
	return s
}

func TestWalk1D(t *testing.T) {
	const k = 500

	res, err := Walk1D(repeat(0.49999, k), k)
	require.NoError(t, err)
	assert.Equal(t, -k, res.Final.X)
	assert.Len(t, res.Trajectory, k)
	assert.Equal(t, Exhausted, res.State)

	res, err = Walk1D(repeat(0.5, k), k)
	require.NoError(t, err)
	assert.Equal(t, k, res.Final.X)
	assert.Equal(t, k, res.Steps)
}

func TestWalk1DTrace(t *testing.T) {
	res, err := Walk1D([]float64{0.7, 0.1, 0.2, 0.9, 0.5, 0.3}, 5)
	require.NoError(t, err)
	want := []Position{{X: 1}, {X: 0}, {X: -1}, {X: 0}, {X: 1}}
	assert.Equal(t, want, res.Trajectory)
	assert.Equal(t, Position{X: 1}, res.Final)
}

func TestWalk1DErrors(t *testing.T) {
	_, err := Walk1D(repeat(0.3, 10), 11)
	assert.ErrorIs(t, err, ErrInsufficientSamples)

	_, err = Walk1D(repeat(0.3, 10), -1)
	assert.ErrorIs(t, err, ErrInvalidSteps)

	res, err := Walk1D(nil, 0)
	require.NoError(t, err)
	assert.Empty(t, res.Trajectory)
	assert.Nil(t, res.Matrix())
}

func TestChoose(t *testing.T) {
	tests := []struct {
		v    float64
		dirs []Direction
		want string
		ok   bool
	}{
		{0, Directions2D, "", false},
		{-0.1, Directions2D, "", false},
		{1.5, Directions2D, "", false},
		{0.00001, Directions2D, "up", true},
		{0.25, Directions2D, "up", true},
		{0.25001, Directions2D, "down", true},
		{0.5, Directions2D, "down", true},
		{0.75, Directions2D, "right", true},
		{0.99999, Directions2D, "left", true},
		{1, Directions2D, "left", true},
		{0, Directions3D, "", false},
		{0.7, Directions3D, "forward", true},
		{0.9, Directions3D, "backward", true},
		{1, Directions3D, "backward", true},
	}
	for _, tt := range tests {
		d, ok := Choose(tt.v, tt.dirs)
		assert.Equal(t, tt.ok, ok, "v=%v", tt.v)
		assert.Equal(t, tt.want, d.Name, "v=%v", tt.v)
	}
}

func TestChooseBoundaries3D(t *testing.T) {
	threshold := 1.0 / 6
	for k := 1; k <= 6; k++ {
		v := float64(k) * threshold
		d, ok := Choose(v, Directions3D)
		require.True(t, ok, "k=%d", k)
		assert.Equal(t, Directions3D[k-1].Name, d.Name, "k=%d", k)

		res := Walk3D([]float64{v}, Position{X: 100})
		assert.Equal(t, Directions3D[k-1].Delta, res.Final, "k=%d", k)
	}
}

func TestWalk2DReachesTarget(t *testing.T) {
	const k = 40
	res := Walk2D(repeat(0.2, k+10), Position{Y: k})
	assert.Equal(t, TargetReached, res.State)
	assert.True(t, res.Reached())
	assert.Equal(t, k, res.Steps)
	assert.Equal(t, Position{Y: k}, res.Final)
	require.Len(t, res.Trajectory, k+1)
	assert.Equal(t, Position{}, res.Trajectory[0])
	for i, p := range res.Trajectory {
		assert.Equal(t, Position{Y: i}, p)
	}
}

func TestWalk2DExhausted(t *testing.T) {
	samples := []float64{0.2, 0.6, 0.9, 0.4, 0.1}
	res := Walk2D(samples, Position{X: 50, Y: 50})
	assert.Equal(t, Exhausted, res.State)
	assert.Equal(t, len(samples), res.Steps)
	assert.Len(t, res.Trajectory, len(samples)+1)
	// up, right, left, down, up
	assert.Equal(t, Position{Y: 1}, res.Final)
}

func TestWalk2DZeroSample(t *testing.T) {
	res := Walk2D([]float64{0, 0, 0.3}, Position{Y: -1})
	assert.Equal(t, TargetReached, res.State)
	assert.Equal(t, 3, res.Steps)
	assert.Equal(t, []Position{{}, {}, {}, {Y: -1}}, res.Trajectory)
}

func TestWalk2DEmpty(t *testing.T) {
	res := Walk2D(nil, Position{X: 1})
	assert.Equal(t, Exhausted, res.State)
	assert.Zero(t, res.Steps)
	assert.Equal(t, []Position{{}}, res.Trajectory)
}

func TestWalk3D(t *testing.T) {
	// right, forward, forward, up, zero, backward
	samples := []float64{0.4, 0.75, 0.8, 0.1, 0, 0.95, 0.7}
	res := Walk3D(samples, Position{X: 1, Y: 1, Z: 1})
	assert.Equal(t, TargetReached, res.State)
	assert.Equal(t, 6, res.Steps)
	assert.Equal(t, Position{X: 1, Y: 1, Z: 1}, res.Final)
	assert.Len(t, res.Trajectory, 7)
	assert.Equal(t, res.Trajectory[4], res.Trajectory[5])

	res = Walk3D(samples, Position{Z: -5})
	assert.Equal(t, Exhausted, res.State)
	assert.Equal(t, len(samples), res.Steps)
}

func TestWalkFromStopsReading(t *testing.T) {
	src := &sliceSource{samples: repeat(0.2, 10)}
	res := WalkFrom(src, Directions2D, 2, Position{Y: 3})
	assert.Equal(t, TargetReached, res.State)
	assert.Equal(t, 3, src.i)
}

func TestMatrix(t *testing.T) {
	res := Walk3D([]float64{0.1, 0.4}, Position{Z: 9})
	m := res.Matrix()
	r, c := m.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, []float64{1, 1, 0}, []float64{m.At(2, 0), m.At(2, 1), m.At(2, 2)})
}

func TestSummary(t *testing.T) {
	res, err := Walk1D([]float64{0.9, 0.9, 0.9, 0.1}, 4)
	require.NoError(t, err)
	s := res.Summary()
	require.Len(t, s.Axes, 1)
	assert.InDelta(t, 2.0, s.Axes[0].Mean, 1e-12)
	assert.Equal(t, 1.0, s.Axes[0].Min)
	assert.Equal(t, 3.0, s.Axes[0].Max)
	assert.Equal(t, 2.0, s.Distance)
	assert.Zero(t, s.Remaining)

	res2 := Walk2D([]float64{0.6, 0.6, 0.1, 0.1}, Position{X: 5, Y: 2})
	s2 := res2.Summary()
	require.Len(t, s2.Axes, 2)
	assert.InDelta(t, math.Sqrt(8), s2.Distance, 1e-12)
	assert.InDelta(t, 3, s2.Remaining, 1e-12)
	assert.True(t, strings.Contains(s2.String(), "distance to target"))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "running", Running.String())
	assert.Equal(t, "target reached", TargetReached.String())
	assert.Equal(t, "exhausted", Exhausted.String())
	assert.Equal(t, "(1,-2,3)", Position{1, -2, 3}.Format(3))
	assert.Equal(t, "(4)", Position{X: 4}.Format(1))
}
