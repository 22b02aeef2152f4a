package canvas

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Opener creates the file a frame image is written to
type Opener func(name string) (io.WriteCloser, error)

const defaultFontSize = 14.0

// PNG renders each shown frame to a numbered PNG image through the go-chart
// raster renderer.
type PNG struct {
	dir      string
	prefix   string
	open     Opener
	r        chart.Renderer
	pen      drawing.Color
	fontSize float64
	err      error
	written  []string
}

// NewPNG writes frames as dir/prefix-0001.png, dir/prefix-0002.png, ...
func NewPNG(dir, prefix string, open Opener) *PNG {
	if prefix == "" {
		prefix = "frame"
	}
	return &PNG{
		dir:      dir,
		prefix:   prefix,
		open:     open,
		pen:      drawing.Color{A: 255},
		fontSize: defaultFontSize,
	}
}

func toDrawing(c Color) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: 255}
}

// renderer returns the current frame's renderer, starting one if needed
func (p *PNG) renderer() chart.Renderer {
	if p.r != nil || p.err != nil {
		return p.r
	}
	r, err := chart.PNG(int(Width), int(Height))
	if err != nil {
		p.err = fmt.Errorf("create png renderer: %w", err)
		return nil
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		p.err = fmt.Errorf("load font: %w", err)
		return nil
	}
	r.SetFont(font)
	p.r = r
	return r
}

// imageY flips a logical y (up) into an image row (down)
func imageY(y float64) int {
	return int(Height - y)
}

// Clear starts a new frame filled with c
func (p *PNG) Clear(c Color) {
	p.r = nil
	r := p.renderer()
	if r == nil {
		return
	}
	p.fillRect(r, 0, 0, int(Width), int(Height), toDrawing(c))
}

func (p *PNG) fillRect(r chart.Renderer, left, top, right, bottom int, c drawing.Color) {
	r.SetFillColor(c)
	r.MoveTo(left, top)
	r.LineTo(right, top)
	r.LineTo(right, bottom)
	r.LineTo(left, bottom)
	r.Close()
	r.Fill()
}

// SetPenColor implements Surface
func (p *PNG) SetPenColor(c Color) {
	p.pen = toDrawing(c)
}

// SetFontSize implements Surface
func (p *PNG) SetFontSize(points float64) {
	if points > 0 {
		p.fontSize = points
	}
}

// FilledRectangle implements Surface
func (p *PNG) FilledRectangle(x, y, halfWidth, halfHeight float64) {
	if halfWidth <= 0 || halfHeight <= 0 {
		return
	}
	r := p.renderer()
	if r == nil {
		return
	}
	p.fillRect(r, int(x-halfWidth), imageY(y+halfHeight), int(x+halfWidth), imageY(y-halfHeight), p.pen)
}

// Line implements Surface
func (p *PNG) Line(x1, y1, x2, y2 float64) {
	r := p.renderer()
	if r == nil {
		return
	}
	r.SetStrokeColor(p.pen)
	r.SetStrokeWidth(1)
	r.MoveTo(int(x1), imageY(y1))
	r.LineTo(int(x2), imageY(y2))
	r.Stroke()
}

type anchor int

const (
	anchorLeft anchor = iota
	anchorCenter
	anchorRight
)

func (p *PNG) text(x, y float64, s string, a anchor) {
	r := p.renderer()
	if r == nil {
		return
	}
	r.SetFontColor(p.pen)
	r.SetFontSize(p.fontSize)

	box := r.MeasureText(s)
	left := int(x)
	switch a {
	case anchorCenter:
		left -= box.Width() / 2
	case anchorRight:
		left -= box.Width()
	}
	// text is vertically centred on y; the renderer positions the baseline
	r.Text(s, left, imageY(y)+box.Height()/2)
}

// Text implements Surface
func (p *PNG) Text(x, y float64, s string) {
	p.text(x, y, s, anchorCenter)
}

// TextLeft implements Surface
func (p *PNG) TextLeft(x, y float64, s string) {
	p.text(x, y, s, anchorLeft)
}

// TextRight implements Surface
func (p *PNG) TextRight(x, y float64, s string) {
	p.text(x, y, s, anchorRight)
}

// Show saves the frame as the next numbered image
func (p *PNG) Show() error {
	r := p.renderer()
	if p.err != nil {
		return p.err
	}

	name := filepath.Join(p.dir, fmt.Sprintf("%s-%04d.png", p.prefix, len(p.written)+1))
	w, err := p.open(name)
	if err != nil {
		return err
	}
	if err := r.Save(w); err != nil {
		_ = w.Close()
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}

	p.written = append(p.written, name)
	p.r = nil
	return nil
}

// Pause is a no-op: exported frames are not timed
func (p *PNG) Pause(time.Duration) {}

// Written lists the files saved so far
func (p *PNG) Written() []string {
	return p.written
}
