// Package render draws one case frame as a horizontal bar chart.
package render

import (
	"time"

	"github.com/yildizm/casechart/internal/canvas"
	"github.com/yildizm/casechart/internal/cases"
)

// Layout, in logical canvas units
const (
	LeftMargin   = 50.0
	ScaleLabelY  = 850.0
	GridTop      = 800.0
	FirstBarY    = 775.0
	BarSpacing   = 60.0
	BarHalfThick = 20.0
	LabelGap     = 10.0
	LabelDrop    = 5.0
	ShadowOffset = 2.0
	TextX        = 1050.0
)

// DefaultFrameDelay is how long each frame stays up
const DefaultFrameDelay = 100 * time.Millisecond

var (
	backgroundColor = canvas.RGB(110, 155, 230)
	labelColor      = canvas.RGB(220, 230, 245)
	gridColor       = canvas.RGB(190, 200, 225)
	titleColor      = canvas.RGB(170, 250, 250)
)

// Renderer draws frames on a surface
type Renderer struct {
	surface canvas.Surface
	delay   time.Duration
}

// New creates a renderer pausing delay after each frame
func New(surface canvas.Surface, delay time.Duration) *Renderer {
	return &Renderer{surface: surface, delay: delay}
}

// Draw renders frame back to front, shows it and holds it for the delay
func (r *Renderer) Draw(frame *cases.Frame) error {
	r.surface.Clear(backgroundColor)

	scale := cases.SelectScale(frame)
	r.drawScale(scale, cases.SelectGrid(frame.Max()))
	r.drawBars(frame, scale)
	r.drawText(frame)

	if err := r.surface.Show(); err != nil {
		return err
	}
	r.surface.Pause(r.delay)
	return nil
}

// GridX returns the x position of gridline i
func GridX(i int, scale float64, grid cases.Grid) float64 {
	return float64(i)*scale*float64(grid.CasesPerLine) + LeftMargin
}

// BarY returns the vertical centre of bar i
func BarY(i int) float64 {
	return FirstBarY - BarSpacing*float64(i)
}

// BarColor returns the fill colour of bar i
func BarColor(i int) canvas.Color {
	return canvas.RGB(170, 205+5*i, 250-10*i)
}

func (r *Renderer) drawScale(scale float64, grid cases.Grid) {
	s := r.surface
	s.SetFontSize(20)
	for i := 0; i <= grid.Lines; i++ {
		x := GridX(i, scale, grid)
		s.SetPenColor(labelColor)
		s.Text(x, ScaleLabelY, grid.Label(i))
		s.SetPenColor(gridColor)
		s.Line(x, GridTop, x, 0)
	}
}

func (r *Renderer) drawBars(frame *cases.Frame, scale float64) {
	s := r.surface
	s.SetFontSize(18)
	for i, state := range cases.TrackedStates {
		length := 0.0
		if scale != 0 {
			length = scale * float64(frame.Count(state.ID))
		}
		y := BarY(i)

		s.SetPenColor(labelColor)
		s.FilledRectangle(length/2+LeftMargin+ShadowOffset/2, y-ShadowOffset*4/5,
			length/2+ShadowOffset/2, BarHalfThick+ShadowOffset/2)

		s.SetPenColor(BarColor(i))
		s.FilledRectangle(length/2+LeftMargin, y, length/2, BarHalfThick)

		barEnd := length + LeftMargin
		s.SetPenColor(labelColor)
		s.TextRight(barEnd-LabelGap, y-LabelDrop, cases.FormatWithCommas(frame.Count(state.ID)))
		s.TextLeft(barEnd+LabelGap, y-LabelDrop, state.Name)
	}
}

func (r *Renderer) drawText(frame *cases.Frame) {
	s := r.surface
	s.SetFontSize(35)
	s.SetPenColor(labelColor)
	s.TextLeft(TextX, 250, cases.FormatDateLabel(frame.Date))
	s.TextLeft(TextX, 200, "US Total: "+cases.FormatWithCommas(frame.Total))
	s.SetPenColor(titleColor)
	s.TextLeft(TextX, 150, "CORONAVIRUS")
	s.TextLeft(TextX, 100, "Cases by State")
}
