package cases

import (
	"fmt"
	"strconv"
)

// TargetLength is the bar length, in canvas units, of the largest count
const TargetLength = 1125.0

// Grid describes the vertical gridlines behind the bars
type Grid struct {
	CasesPerLine int // cases between adjacent gridlines, 0 for an empty frame
	Lines        int // index of the last gridline; lines run 0..Lines inclusive
}

// SelectScale returns canvas units per case so that the largest tracked
// count spans TargetLength. An all-zero frame yields 0.
func SelectScale(f *Frame) float64 {
	largest := f.Max()
	if largest == 0 {
		return 0
	}
	return TargetLength / float64(largest)
}

// SelectGrid picks the gridline spacing for the largest tracked count. The
// spacing starts at the largest power of ten not above max and is halved
// when that would give fewer than 3 lines or doubled when more than 8.
func SelectGrid(largest int) Grid {
	if largest <= 0 {
		return Grid{}
	}

	unit := 1
	for unit <= largest/10 {
		unit *= 10
	}

	switch n := largest / unit; {
	case n < 3:
		// whole cases only; a unit of 1 cannot be halved
		if unit > 1 {
			unit /= 2
		}
	case n > 8:
		unit *= 2
	}

	return Grid{CasesPerLine: unit, Lines: largest / unit}
}

// Value returns the case count at gridline i
func (g Grid) Value(i int) int {
	return i * g.CasesPerLine
}

// Label returns the axis label for gridline i. Spacings above 1000 are shown
// in thousands with a k suffix.
func (g Grid) Label(i int) string {
	v := g.Value(i)
	if g.CasesPerLine > 1000 {
		return fmt.Sprintf("%dk", v/1000)
	}
	return strconv.Itoa(v)
}
