package canvas

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// clearScreen moves the cursor home and clears the terminal
const clearScreen = "\x1b[H\x1b[2J"

type cell struct {
	ch    rune
	fg    Color
	bg    Color
	hasFg bool
}

// Grid rasterises the logical canvas onto a grid of terminal cells.
// Rectangles paint cell backgrounds, lines and text paint foreground runes.
type Grid struct {
	cols, rows int
	cells      []cell
	pen        Color
	out        io.Writer
	sleep      func(time.Duration)
	color      bool

	styled string
	plain  string
}

// GridOption configures a Grid
type GridOption func(*Grid)

// WithOutput writes every shown frame to w, redrawing in place
func WithOutput(w io.Writer) GridOption {
	return func(g *Grid) {
		g.out = w
	}
}

// WithSleeper sets how Pause waits; without one Pause returns immediately
func WithSleeper(sleep func(time.Duration)) GridOption {
	return func(g *Grid) {
		g.sleep = sleep
	}
}

// WithColor toggles ANSI styling of shown frames
func WithColor(enabled bool) GridOption {
	return func(g *Grid) {
		g.color = enabled
	}
}

// NewGrid creates a cols x rows cell surface
func NewGrid(cols, rows int, opts ...GridOption) *Grid {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	g := &Grid{
		cols:  cols,
		rows:  rows,
		cells: make([]cell, cols*rows),
		color: true,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.Clear(Color{})
	return g
}

// Size returns the grid dimensions in cells
func (g *Grid) Size() (cols, rows int) {
	return g.cols, g.rows
}

func (g *Grid) col(x float64) int {
	return clampIndex(int(math.Floor(x/Width*float64(g.cols))), g.cols)
}

func (g *Grid) row(y float64) int {
	return clampIndex(int(math.Floor((Height-y)/Height*float64(g.rows))), g.rows)
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func (g *Grid) at(c, r int) *cell {
	return &g.cells[r*g.cols+c]
}

// Clear implements Surface
func (g *Grid) Clear(c Color) {
	for i := range g.cells {
		g.cells[i] = cell{ch: ' ', bg: c}
	}
}

// SetPenColor implements Surface
func (g *Grid) SetPenColor(c Color) {
	g.pen = c
}

// SetFontSize is a no-op: a cell holds one rune
func (g *Grid) SetFontSize(float64) {}

// FilledRectangle implements Surface. Degenerate rectangles draw nothing.
func (g *Grid) FilledRectangle(x, y, halfWidth, halfHeight float64) {
	if halfWidth <= 0 || halfHeight <= 0 {
		return
	}
	c0, c1 := g.col(x-halfWidth), g.col(x+halfWidth)
	r0, r1 := g.row(y+halfHeight), g.row(y-halfHeight)
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			cl := g.at(c, r)
			cl.ch = ' '
			cl.hasFg = false
			cl.bg = g.pen
		}
	}
}

// Line implements Surface
func (g *Grid) Line(x1, y1, x2, y2 float64) {
	c1, r1 := g.col(x1), g.row(y1)
	c2, r2 := g.col(x2), g.row(y2)

	ch := '·'
	switch {
	case c1 == c2:
		ch = '│'
	case r1 == r2:
		ch = '─'
	}

	steps := max(abs(c2-c1), abs(r2-r1))
	for i := 0; i <= steps; i++ {
		c, r := c1, r1
		if steps > 0 {
			c = c1 + (c2-c1)*i/steps
			r = r1 + (r2-r1)*i/steps
		}
		cl := g.at(c, r)
		cl.ch = ch
		cl.fg = g.pen
		cl.hasFg = true
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Text implements Surface
func (g *Grid) Text(x, y float64, s string) {
	g.write(g.col(x)-utf8.RuneCountInString(s)/2, g.row(y), s)
}

// TextLeft implements Surface
func (g *Grid) TextLeft(x, y float64, s string) {
	g.write(g.col(x), g.row(y), s)
}

// TextRight implements Surface
func (g *Grid) TextRight(x, y float64, s string) {
	g.write(g.col(x)-utf8.RuneCountInString(s)+1, g.row(y), s)
}

// write places runes left to right, clipping at the grid edges
func (g *Grid) write(start, r int, s string) {
	c := start
	for _, ch := range s {
		if c >= 0 && c < g.cols {
			cl := g.at(c, r)
			cl.ch = ch
			cl.fg = g.pen
			cl.hasFg = true
		}
		c++
	}
}

// Show snapshots the grid and writes it to the output, if any
func (g *Grid) Show() error {
	g.plain = g.renderPlain()
	if g.color {
		g.styled = g.renderStyled()
	} else {
		g.styled = g.plain
	}

	if g.out == nil {
		return nil
	}
	if _, err := fmt.Fprint(g.out, clearScreen+g.styled+"\n"); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// Pause implements Surface
func (g *Grid) Pause(d time.Duration) {
	if g.sleep != nil && d > 0 {
		g.sleep(d)
	}
}

// Frame returns the last shown frame, styled when colour is enabled
func (g *Grid) Frame() string {
	return g.styled
}

// Plain returns the last shown frame without styling
func (g *Grid) Plain() string {
	return g.plain
}

func (g *Grid) renderPlain() string {
	var b strings.Builder
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < g.cols; c++ {
			b.WriteRune(g.at(c, r).ch)
		}
	}
	return b.String()
}

// renderStyled groups runs of identically coloured cells into one lipgloss
// style each
func (g *Grid) renderStyled() string {
	var b strings.Builder
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		var run strings.Builder
		start := g.at(0, r)
		for c := 0; c < g.cols; c++ {
			cl := g.at(c, r)
			if !sameStyle(cl, start) {
				b.WriteString(cellStyle(start).Render(run.String()))
				run.Reset()
				start = cl
			}
			run.WriteRune(cl.ch)
		}
		b.WriteString(cellStyle(start).Render(run.String()))
	}
	return b.String()
}

func sameStyle(a, b *cell) bool {
	if a.bg != b.bg || a.hasFg != b.hasFg {
		return false
	}
	return !a.hasFg || a.fg == b.fg
}

func cellStyle(cl *cell) lipgloss.Style {
	style := lipgloss.NewStyle().Background(lipgloss.Color(cl.bg.Hex()))
	if cl.hasFg {
		style = style.Foreground(lipgloss.Color(cl.fg.Hex())).Bold(true)
	}
	return style
}
