package walkplotter

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"frogjump-go/pkg/walk"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	initialColor = color.RGBA{B: 255, A: 255}
	finalColor   = color.RGBA{R: 255, A: 255}
	targetColor  = color.RGBA{G: 160, A: 255}
	pathColor    = color.RGBA{R: 31, G: 119, B: 180, A: 180}
)

const (
	histBins = 30
	// Scatter plots of a million jumps make unusable files; plot at most this
	// many evenly spaced jumps.
	maxScatterPoints = 20000
)

// Plot1D draws a histogram of the visited positions next to a scatter of
// position versus jump number.
func Plot1D(res *walk.Result, filename string) error {
	if len(res.Trajectory) == 0 {
		return errors.New("nothing to plot: empty trajectory")
	}
	final := float64(res.Final.X)

	values := make(plotter.Values, len(res.Trajectory))
	for i, p := range res.Trajectory {
		values[i] = float64(p.X)
	}

	hp := plot.New()
	hp.Title.Text = fmt.Sprintf("Frequency of the frog positions\nElapsed: %.2f s", res.Elapsed.Seconds())
	hp.X.Label.Text = "Position"
	hp.Y.Label.Text = "Frequency"

	hist, err := plotter.NewHist(values, histBins)
	if err != nil {
		return err
	}
	hist.FillColor = pathColor
	hp.Add(hist)

	var top float64
	for _, b := range hist.Bins {
		top = max(top, b.Weight)
	}
	if err := addMarkerLine(hp, plotter.XYs{{X: 0, Y: 0}, {X: 0, Y: top}}, initialColor, "Initial position: 0"); err != nil {
		return err
	}
	if err := addMarkerLine(hp, plotter.XYs{{X: final, Y: 0}, {X: final, Y: top}}, finalColor, fmt.Sprintf("Final position: %d", res.Final.X)); err != nil {
		return err
	}

	sp := plot.New()
	sp.Title.Text = fmt.Sprintf("Scatter of the frog positions\nElapsed: %.2f s", res.Elapsed.Seconds())
	sp.X.Label.Text = "Jump number"
	sp.Y.Label.Text = "Position"

	stride := 1
	if len(values) > maxScatterPoints {
		stride = len(values) / maxScatterPoints
	}
	pts := make(plotter.XYs, 0, len(values)/stride+1)
	for i := 0; i < len(values); i += stride {
		pts = append(pts, plotter.XY{X: float64(i + 1), Y: values[i]})
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Color = pathColor
	scatter.GlyphStyle.Radius = vg.Points(0.5)
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	sp.Add(scatter)

	last := float64(len(values))
	if err := addMarkerLine(sp, plotter.XYs{{X: 1, Y: 0}, {X: last, Y: 0}}, initialColor, "Initial position: 0"); err != nil {
		return err
	}
	if err := addMarkerLine(sp, plotter.XYs{{X: 1, Y: final}, {X: last, Y: final}}, finalColor, fmt.Sprintf("Final position: %d", res.Final.X)); err != nil {
		return err
	}

	return save([][]*plot.Plot{{hp, sp}}, 24*vg.Centimeter, 10*vg.Centimeter, filename)
}

// Plot2D draws the path of a two-dimensional walk with the initial, final
// and target positions marked.
func Plot2D(res *walk.Result, filename string) error {
	title := fmt.Sprintf("Frog path in 2D (elapsed: %.2f s, jumps: %d)", res.Elapsed.Seconds(), res.Steps)
	p, err := pathPlot(res, 0, 1, title)
	if err != nil {
		return err
	}
	return save([][]*plot.Plot{{p}}, 20*vg.Centimeter, 16*vg.Centimeter, filename)
}

// Plot3D draws the X-Y, X-Z and Y-Z projections of a three-dimensional walk.
func Plot3D(res *walk.Result, filename string) error {
	projections := [][2]int{{0, 1}, {0, 2}, {1, 2}}
	row := make([]*plot.Plot, len(projections))
	for i, axes := range projections {
		title := fmt.Sprintf("%s-%s projection", axisLabel[axes[0]], axisLabel[axes[1]])
		if i == 0 {
			title = fmt.Sprintf("Frog path in 3D (elapsed: %.2f s, jumps: %d)\n%s", res.Elapsed.Seconds(), res.Steps, title)
		}
		p, err := pathPlot(res, axes[0], axes[1], title)
		if err != nil {
			return err
		}
		row[i] = p
	}
	return save([][]*plot.Plot{row}, 36*vg.Centimeter, 13*vg.Centimeter, filename)
}

var axisLabel = []string{"X", "Y", "Z"}

func pathPlot(res *walk.Result, ax, ay int, title string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Position " + axisLabel[ax]
	p.Y.Label.Text = "Position " + axisLabel[ay]

	project := func(pos walk.Position) plotter.XY {
		c := pos.Coords(3)
		return plotter.XY{X: c[ax], Y: c[ay]}
	}

	path := make(plotter.XYs, len(res.Trajectory))
	for i, pos := range res.Trajectory {
		path[i] = project(pos)
	}
	line, err := plotter.NewLine(path)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Color = pathColor
	line.LineStyle.Width = vg.Points(0.5)
	p.Add(line)

	markers := []struct {
		pos   walk.Position
		c     color.Color
		label string
	}{
		{walk.Position{}, initialColor, "Initial " + walk.Position{}.Format(res.Dim)},
		{res.Final, finalColor, "Final " + res.Final.Format(res.Dim)},
		{res.Target, targetColor, "Target " + res.Target.Format(res.Dim)},
	}
	for _, m := range markers {
		s, err := plotter.NewScatter(plotter.XYs{project(m.pos)})
		if err != nil {
			return nil, err
		}
		s.GlyphStyle.Color = m.c
		s.GlyphStyle.Radius = vg.Points(3)
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(s)
		p.Legend.Add(m.label, s)
	}
	p.Legend.Top = true

	return p, nil
}

func addMarkerLine(p *plot.Plot, xys plotter.XYs, c color.Color, label string) error {
	l, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	l.LineStyle.Color = c
	l.LineStyle.Width = vg.Points(2)
	l.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
	p.Add(l)
	p.Legend.Add(label, l)
	return nil
}

// save lays the plots out in a grid and writes them in the format named by
// the file extension, PDF when there is none.
func save(plots [][]*plot.Plot, w, h vg.Length, filename string) error {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if format == "" {
		format = "pdf"
	}
	img, err := draw.NewFormattedCanvas(w, h, format)
	if err != nil {
		return err
	}

	tiles := draw.Tiles{
		Rows:      len(plots),
		Cols:      len(plots[0]),
		PadX:      vg.Centimeter,
		PadY:      vg.Centimeter,
		PadTop:    vg.Points(4),
		PadBottom: vg.Points(4),
		PadLeft:   vg.Points(4),
		PadRight:  vg.Points(4),
	}
	canvases := plot.Align(plots, tiles, draw.New(img))
	for j := range plots {
		for i := range plots[j] {
			plots[j][i].Draw(canvases[j][i])
		}
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err = img.WriteTo(f); err != nil {
		return err
	}
	return f.Close()
}
