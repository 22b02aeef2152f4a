// Package canvas provides immediate-mode drawing surfaces over a fixed
// 1400x900 logical canvas with the origin at the bottom left.
package canvas

import (
	"fmt"
	"time"
)

// Logical canvas size
const (
	Width  = 1400.0
	Height = 900.0
)

// Color is an opaque RGB colour
type Color struct {
	R, G, B uint8
}

// RGB builds a colour, clamping each channel to 0-255
func RGB(r, g, b int) Color {
	return Color{R: clampChannel(r), G: clampChannel(g), B: clampChannel(b)}
}

func clampChannel(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	default:
		return uint8(v)
	}
}

// Hex returns the colour as #RRGGBB
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Surface is an immediate-mode drawing target. Drawing calls accumulate
// into a back buffer that Show flushes as one frame.
type Surface interface {
	// Clear fills the whole canvas with c
	Clear(c Color)
	// SetPenColor sets the colour for subsequent shapes and text
	SetPenColor(c Color)
	// SetFontSize sets the text size in points where the surface supports it
	SetFontSize(points float64)
	// FilledRectangle fills the rectangle centred on (x, y)
	FilledRectangle(x, y, halfWidth, halfHeight float64)
	// Line draws a segment from (x1, y1) to (x2, y2)
	Line(x1, y1, x2, y2 float64)
	// Text draws s centred on (x, y)
	Text(x, y float64, s string)
	// TextLeft draws s starting at (x, y)
	TextLeft(x, y float64, s string)
	// TextRight draws s ending at (x, y)
	TextRight(x, y float64, s string)
	// Show flushes the back buffer as one frame
	Show() error
	// Pause holds the current frame for d
	Pause(d time.Duration)
}
