package presenter

import (
	"fmt"

	"frogjump-go/pkg/walk"
	"frogjump-go/pkg/walkplotter"
)

// GenerateWalkPlot charts a finished walk according to its dimension.
func GenerateWalkPlot(outputPath string, res *walk.Result) error {
	switch res.Dim {
	case 1:
		return walkplotter.Plot1D(res, outputPath)
	case 2:
		return walkplotter.Plot2D(res, outputPath)
	case 3:
		return walkplotter.Plot3D(res, outputPath)
	}
	return fmt.Errorf("cannot plot a walk of dimension %d", res.Dim)
}
