// Package trend plots every tracked state and the US total over the whole
// input as one line chart.
package trend

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/yildizm/casechart/internal/cases"
)

// ErrNoFrames is returned when there is nothing to plot
var ErrNoFrames = errors.New("no frames to plot")

// Default image size
const (
	DefaultWidth  = 10 * vg.Inch
	DefaultHeight = 6 * vg.Inch
)

// totalColor draws the US total line
var totalColor = color.RGBA{R: 40, G: 40, B: 40, A: 255}

// stateColor follows the bar colours of the animated chart
func stateColor(i int) color.RGBA {
	return color.RGBA{R: 170, G: uint8(205 + 5*i), B: uint8(250 - 10*i), A: 255}
}

// Options controls the chart
type Options struct {
	Width     vg.Length
	Height    vg.Length
	WithTotal bool   // also plot the US total
	Format    string // png, svg or pdf
}

// Build assembles the plot. The x axis is the frame index, one per date.
func Build(frames []*cases.Frame, withTotal bool) (*plot.Plot, error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("CORONAVIRUS Cases by State, %s to %s",
		cases.FormatDateLabel(frames[0].Date), cases.FormatDateLabel(frames[len(frames)-1].Date))
	p.X.Label.Text = "Day"
	p.Y.Label.Text = "Cases"
	p.Legend.Top = true
	p.Legend.Left = true

	for i, info := range cases.TrackedStates {
		pts := make(plotter.XYs, len(frames))
		for j, f := range frames {
			pts[j].X = float64(j)
			pts[j].Y = float64(f.Count(info.ID))
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("plot %s: %w", info.Name, err)
		}
		line.Color = stateColor(i)
		line.Width = vg.Points(2)
		p.Add(line)
		p.Legend.Add(info.Name, line)
	}

	if withTotal {
		pts := make(plotter.XYs, len(frames))
		for j, f := range frames {
			pts[j].X = float64(j)
			pts[j].Y = float64(f.Total)
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("plot US total: %w", err)
		}
		line.Color = totalColor
		line.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(line)
		p.Legend.Add("US Total", line)
	}

	p.Add(plotter.NewGrid())
	return p, nil
}

// Write renders the chart for frames to w
func Write(w io.Writer, frames []*cases.Frame, opts Options) error {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	if opts.Format == "" {
		opts.Format = "png"
	}

	p, err := Build(frames, opts.WithTotal)
	if err != nil {
		return err
	}

	wt, err := p.WriterTo(opts.Width, opts.Height, opts.Format)
	if err != nil {
		return fmt.Errorf("render %s: %w", opts.Format, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}
	return nil
}
