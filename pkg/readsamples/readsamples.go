package readsamples

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ReadSamples reads a file holding one number per line. Blank lines and lines
// starting with '#' are skipped.
func ReadSamples(filename string) ([]float64, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	var samples []float64
	sc := NewScanner(file)
	for {
		v, ok := sc.Next()
		if !ok {
			break
		}
		samples = append(samples, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return samples, nil
}

// ReadVector is ReadSamples wrapped into a column vector. An empty file gives
// a nil vector.
func ReadVector(filename string) (*mat.VecDense, error) {
	samples, err := ReadSamples(filename)
	if err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, nil
	}
	return mat.NewVecDense(len(samples), samples), nil
}

// Scanner reads samples lazily, one line at a time.
type Scanner struct {
	sc   *bufio.Scanner
	line int
	err  error
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{sc: bufio.NewScanner(r)}
}

// Next returns the next sample. It returns false at the end of the input or
// on the first error, which is then available from Err.
func (s *Scanner) Next() (float64, bool) {
	if s.err != nil {
		return 0, false
	}
	for s.sc.Scan() {
		s.line++
		line := strings.TrimSpace(s.sc.Text())

		// Пропускаем пустые строки и комментарии
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}

		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			s.err = fmt.Errorf("failed to parse float at line %d: %w", s.line, err)
			return 0, false
		}
		return v, true
	}
	if err := s.sc.Err(); err != nil {
		s.err = fmt.Errorf("error reading file: %w", err)
	}
	return 0, false
}

// Err returns the first error met by Next.
func (s *Scanner) Err() error {
	return s.err
}
