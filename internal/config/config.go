package config

import (
	"flag"
	"fmt"
	"strings"
)

const (
	DefaultRawFile    = "ri_numbers.txt"
	DefaultScaledFile = "ni_numbers.txt"
)

// GeneratorConfig holds the input form of the number generator. The numeric
// fields stay text until uniform.ParseRequest validates them.
type GeneratorConfig struct {
	Count, Max, Min     string
	RawFile, ScaledFile string
	Interactive         bool
	Histogram           bool
}

func ParseGenerator(args []string) (*GeneratorConfig, error) {
	cfg := &GeneratorConfig{}

	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.StringVar(&cfg.Count, "n", "", "number of samples to generate")
	fs.StringVar(&cfg.Max, "max", "", "upper bound of the scaled samples")
	fs.StringVar(&cfg.Min, "min", "", "lower bound of the scaled samples")
	fs.StringVar(&cfg.RawFile, "ri", DefaultRawFile, "output file for the raw samples in [0,1)")
	fs.StringVar(&cfg.ScaledFile, "ni", DefaultScaledFile, "output file for the scaled samples in [min,max)")
	fs.BoolVar(&cfg.Interactive, "i", false, "prompt for the values on stdin")
	fs.BoolVar(&cfg.Histogram, "hist", false, "print a histogram of the raw samples")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Без параметров работаем как форма ввода
	if cfg.Count == "" && cfg.Max == "" && cfg.Min == "" {
		cfg.Interactive = true
	}
	return cfg, nil
}

func (c *GeneratorConfig) ToString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "samples: %q, max: %q, min: %q\n", c.Count, c.Max, c.Min)
	fmt.Fprintf(&b, "raw file: %s\n", c.RawFile)
	fmt.Fprintf(&b, "scaled file: %s\n", c.ScaledFile)
	fmt.Fprintf(&b, "interactive: %t, histogram: %t", c.Interactive, c.Histogram)
	return b.String()
}

// WalkConfig configures one of the walk simulators.
type WalkConfig struct {
	Dim     int
	RawFile string
	// Jumps is the step budget of the one-dimensional walk.
	Jumps                     int
	TargetX, TargetY, TargetZ int
	PlotFile                  string
	CSVFile                   string
	Stream                    bool
}

// ParseWalk reads the flags of the dim-dimensional simulator.
func ParseWalk(dim int, args []string) (*WalkConfig, error) {
	if dim < 1 || dim > 3 {
		return nil, fmt.Errorf("unsupported dimension %d", dim)
	}
	cfg := &WalkConfig{Dim: dim}

	fs := flag.NewFlagSet(fmt.Sprintf("frog%dd", dim), flag.ContinueOnError)
	fs.StringVar(&cfg.RawFile, "ri", DefaultRawFile, "input file with the raw samples")
	fs.StringVar(&cfg.PlotFile, "plot", fmt.Sprintf("frog%dd.pdf", dim), "chart output file, format from the extension; empty disables")
	fs.StringVar(&cfg.CSVFile, "csv", "", "optional trajectory CSV output file")

	switch dim {
	case 1:
		fs.IntVar(&cfg.Jumps, "jumps", 1000000, "number of jumps")
	case 2:
		fs.IntVar(&cfg.TargetX, "tx", 250, "target X coordinate")
		fs.IntVar(&cfg.TargetY, "ty", 300, "target Y coordinate")
		fs.BoolVar(&cfg.Stream, "stream", false, "read samples lazily instead of loading the whole file")
	case 3:
		fs.IntVar(&cfg.TargetX, "tx", 45, "target X coordinate")
		fs.IntVar(&cfg.TargetY, "ty", 23, "target Y coordinate")
		fs.IntVar(&cfg.TargetZ, "tz", 17, "target Z coordinate")
		fs.BoolVar(&cfg.Stream, "stream", false, "read samples lazily instead of loading the whole file")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if dim == 1 && cfg.Jumps < 0 {
		return nil, fmt.Errorf("jumps must not be negative, got %d", cfg.Jumps)
	}
	return cfg, nil
}

func (c *WalkConfig) ToString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "dimension: %d\n", c.Dim)
	fmt.Fprintf(&b, "samples file: %s\n", c.RawFile)
	switch c.Dim {
	case 1:
		fmt.Fprintf(&b, "jumps: %d\n", c.Jumps)
	case 2:
		fmt.Fprintf(&b, "target: (%d,%d)\n", c.TargetX, c.TargetY)
	case 3:
		fmt.Fprintf(&b, "target: (%d,%d,%d)\n", c.TargetX, c.TargetY, c.TargetZ)
	}
	if c.Dim > 1 {
		fmt.Fprintf(&b, "streaming: %t\n", c.Stream)
	}
	fmt.Fprintf(&b, "plot: %q, csv: %q", c.PlotFile, c.CSVFile)
	return b.String()
}
