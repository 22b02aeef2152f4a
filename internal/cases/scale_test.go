package cases

import (
	"math"
	"testing"
)

func TestSelectScale(t *testing.T) {
	if got := SelectScale(&Frame{}); got != 0 {
		t.Errorf("empty frame scale = %v, want 0", got)
	}

	counts := []int{1, 7, 999, 12345, 750000, 1 << 30}
	for _, c := range counts {
		f := &Frame{}
		f.Counts[Florida] = c
		f.Counts[Texas] = c / 2
		scale := SelectScale(f)
		if math.Abs(scale*float64(c)-TargetLength) > 1e-6 {
			t.Errorf("max %d: scale*max = %v, want %v", c, scale*float64(c), TargetLength)
		}
	}
}

func TestSelectGrid(t *testing.T) {
	tests := []struct {
		max  int
		want Grid
	}{
		{0, Grid{}},
		{1, Grid{CasesPerLine: 1, Lines: 1}},
		{2, Grid{CasesPerLine: 1, Lines: 2}},
		{5, Grid{CasesPerLine: 1, Lines: 5}},
		{9, Grid{CasesPerLine: 2, Lines: 4}},
		{10, Grid{CasesPerLine: 5, Lines: 2}},
		{750000, Grid{CasesPerLine: 100000, Lines: 7}},
		{250000, Grid{CasesPerLine: 50000, Lines: 5}},
		{950000, Grid{CasesPerLine: 200000, Lines: 4}},
		{300, Grid{CasesPerLine: 100, Lines: 3}},
		{899, Grid{CasesPerLine: 100, Lines: 8}},
	}

	for _, tt := range tests {
		got := SelectGrid(tt.max)
		if got != tt.want {
			t.Errorf("SelectGrid(%d) = %+v, want %+v", tt.max, got, tt.want)
		}
	}
}

func TestGridLabel(t *testing.T) {
	g := Grid{CasesPerLine: 50000, Lines: 5}
	if got := g.Label(3); got != "150k" {
		t.Errorf("Label(3) = %q, want 150k", got)
	}

	small := Grid{CasesPerLine: 500, Lines: 4}
	if got := small.Label(3); got != "1500" {
		t.Errorf("Label(3) = %q, want 1500", got)
	}

	exact := Grid{CasesPerLine: 1000, Lines: 3}
	if got := exact.Label(2); got != "2000" {
		t.Errorf("spacing of exactly 1000 stays raw, got %q", got)
	}
}
