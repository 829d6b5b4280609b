package simulator

import (
	"fmt"
	"os"

	"frogjump-go/internal/config"
	"frogjump-go/pkg/readsamples"
	"frogjump-go/pkg/walk"
)

// Run loads the samples named by cfg and walks them.
func Run(cfg *config.WalkConfig) (*walk.Result, error) {
	if cfg.Dim == 1 {
		samples, err := readsamples.ReadSamples(cfg.RawFile)
		if err != nil {
			return nil, err
		}
		return walk.Walk1D(samples, cfg.Jumps)
	}

	dirs, target, err := targetOf(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Stream {
		f, err := os.Open(cfg.RawFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open file: %w", err)
		}
		defer f.Close()

		sc := readsamples.NewScanner(f)
		res := walk.WalkFrom(sc, dirs, cfg.Dim, target)
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return res, nil
	}

	samples, err := readsamples.ReadSamples(cfg.RawFile)
	if err != nil {
		return nil, err
	}
	if cfg.Dim == 2 {
		return walk.Walk2D(samples, target), nil
	}
	return walk.Walk3D(samples, target), nil
}

func targetOf(cfg *config.WalkConfig) ([]walk.Direction, walk.Position, error) {
	switch cfg.Dim {
	case 2:
		return walk.Directions2D, walk.Position{X: cfg.TargetX, Y: cfg.TargetY}, nil
	case 3:
		return walk.Directions3D, walk.Position{X: cfg.TargetX, Y: cfg.TargetY, Z: cfg.TargetZ}, nil
	}
	return nil, walk.Position{}, fmt.Errorf("unsupported dimension %d", cfg.Dim)
}
