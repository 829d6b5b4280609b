package uniform

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Distribution is anything able to produce a batch of random draws.
type Distribution interface {
	RandN(n int) []float64
}

// UniDistParams describes a continuous uniform distribution over [Low, High).
type UniDistParams struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`

	dist distuv.Uniform
}

// NewUniDistParams creates a new UniDistParams instance with the given bounds.
// A nil src falls back to the global source of golang.org/x/exp/rand.
func NewUniDistParams(low, high float64, src rand.Source) *UniDistParams {
	return &UniDistParams{
		Low:  low,
		High: high,
		dist: distuv.Uniform{
			Min: low,
			Max: high,
			Src: src,
		},
	}
}

// Generate returns a single draw.
func (p *UniDistParams) Generate() float64 {
	return p.dist.Rand()
}

func (p *UniDistParams) GenerateVector(v []float64) {
	for i := range v {
		v[i] = p.Generate()
	}
}

func (p *UniDistParams) RandN(n int) []float64 {
	r := make([]float64, n)
	p.GenerateVector(r)
	return r
}
