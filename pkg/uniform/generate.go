package uniform

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

var (
	// ErrInvalidInput reports a field that is not a usable number.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidRange reports min >= max.
	ErrInvalidRange = errors.New("invalid range")
)

// Request holds the validated parameters of one generation run.
type Request struct {
	Count int
	Min   float64
	Max   float64
}

// Validate checks if the parameters are usable.
func (r Request) Validate() error {
	if r.Count < 0 {
		return fmt.Errorf("%w: sample count must not be negative, got %d", ErrInvalidInput, r.Count)
	}
	if !isFinite(r.Min) || !isFinite(r.Max) {
		return fmt.Errorf("%w: min and max must be finite numbers", ErrInvalidInput)
	}
	if r.Min >= r.Max {
		return fmt.Errorf("%w: min (%g) must be less than max (%g)", ErrInvalidRange, r.Min, r.Max)
	}
	return nil
}

// ParseRequest turns the three text fields of the input form into a Request.
// The argument order follows the form: count, max, min.
func ParseRequest(count, max, min string) (Request, error) {
	n, err := strconv.Atoi(strings.TrimSpace(count))
	if err != nil {
		return Request{}, fmt.Errorf("%w: sample count %q is not an integer", ErrInvalidInput, count)
	}
	hi, err := strconv.ParseFloat(strings.TrimSpace(max), 64)
	if err != nil {
		return Request{}, fmt.Errorf("%w: max %q is not a number", ErrInvalidInput, max)
	}
	lo, err := strconv.ParseFloat(strings.TrimSpace(min), 64)
	if err != nil {
		return Request{}, fmt.Errorf("%w: min %q is not a number", ErrInvalidInput, min)
	}

	req := Request{Count: n, Min: lo, Max: hi}
	if err := req.Validate(); err != nil {
		return Request{}, err
	}
	return req, nil
}

// Samples are the two parallel sequences produced by Generate.
type Samples struct {
	// Raw are the truncated draws over [0,1).
	Raw []float64
	// Scaled are Raw mapped onto [Min, Max) and truncated again.
	Scaled []float64
}

// Len returns the number of samples in each sequence.
func (s *Samples) Len() int { return len(s.Raw) }

// Scale maps a unit sample onto [min, max) and truncates the result.
func Scale(x, min, max float64) float64 {
	return Truncate(min+(max-min)*x, Decimals)
}

// Generate draws req.Count uniform samples from src. A nil src is seeded from
// the clock. Nothing is drawn when the request is invalid.
func Generate(req Request, src rand.Source) (*Samples, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		src = rand.NewSource(uint64(time.Now().UnixNano()))
	}

	raw := NewUniDistParams(0, 1, src).RandN(req.Count)
	scaled := make([]float64, len(raw))
	for i, x := range raw {
		raw[i] = Truncate(x, Decimals)
		scaled[i] = Scale(raw[i], req.Min, req.Max)
	}

	return &Samples{Raw: raw, Scaled: scaled}, nil
}

// Bounds returns the smallest and largest value of v, or zeros for an empty
// slice.
func Bounds(v []float64) (lo, hi float64) {
	if len(v) == 0 {
		return 0, 0
	}
	return floats.Min(v), floats.Max(v)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
