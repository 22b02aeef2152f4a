package render

import (
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/yildizm/casechart/internal/canvas"
	"github.com/yildizm/casechart/internal/cases"
)

// recorder captures surface calls as readable strings
type recorder struct {
	ops    []string
	pen    canvas.Color
	paused time.Duration
	shows  int
}

func (r *recorder) Clear(c canvas.Color) { r.ops = append(r.ops, "clear "+c.Hex()) }
func (r *recorder) SetPenColor(c canvas.Color) { r.pen = c }
func (r *recorder) SetFontSize(float64) {}
func (r *recorder) Show() error { r.shows++; r.ops = append(r.ops, "show"); return nil }
func (r *recorder) Pause(d time.Duration) { r.paused += d }
func (r *recorder) Text(x, y float64, s string) { r.add("text", x, y, s) }
func (r *recorder) TextLeft(x, y float64, s string) {
	r.add("left", x, y, s)
}
func (r *recorder) TextRight(x, y float64, s string) {
	r.add("right", x, y, s)
}
func (r *recorder) Line(x1, y1, x2, y2 float64) {
	r.ops = append(r.ops, fmt.Sprintf("line %.1f %.0f %.1f %.0f", x1, y1, x2, y2))
}
func (r *recorder) FilledRectangle(x, y, hw, hh float64) {
	r.ops = append(r.ops, fmt.Sprintf("rect %.1f %.1f %.1f %.1f %s", x, y, hw, hh, r.pen.Hex()))
}
func (r *recorder) add(kind string, x, y float64, s string) {
	r.ops = append(r.ops, fmt.Sprintf("%s %.1f %.0f %s", kind, x, y, s))
}

func (r *recorder) has(op string) bool {
	for _, o := range r.ops {
		if o == op {
			return true
		}
	}
	return false
}

func (r *recorder) count(prefix string) int {
	n := 0
	for _, o := range r.ops {
		if strings.HasPrefix(o, prefix) {
			n++
		}
	}
	return n
}

func sampleFrame() *cases.Frame {
	f := &cases.Frame{Date: "2020-7-4", Total: 2837189}
	f.Counts[cases.California] = 250000
	f.Counts[cases.Texas] = 195000
	f.Counts[cases.Florida] = 190052
	f.Counts[cases.NewYork] = 397000
	f.Counts[cases.Illinois] = 147000
	return f
}

func TestDrawSequence(t *testing.T) {
	rec := &recorder{}
	if err := New(rec, 100*time.Millisecond).Draw(sampleFrame()); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}

	if rec.ops[0] != "clear #6E9BE6" {
		t.Errorf("first op should clear, got %q", rec.ops[0])
	}
	if rec.ops[len(rec.ops)-1] != "show" || rec.shows != 1 {
		t.Errorf("last op should show once, got %q", rec.ops[len(rec.ops)-1])
	}
	if rec.paused != 100*time.Millisecond {
		t.Errorf("want 100ms pause, got %v", rec.paused)
	}

	// max 397000 -> 100000 per line, 3 lines -> indexes 0..3
	if got := rec.count("line "); got != 4 {
		t.Errorf("want 4 gridlines, got %d", got)
	}
	if !rec.has("text 50.0 850 0k") || !rec.has("text 900.1 850 300k") {
		t.Errorf("missing gridline labels in %v", rec.ops)
	}

	for _, want := range []string{
		"left 1050.0 250 July 4, 2020",
		"left 1050.0 200 US Total: 2,837,189",
		"left 1050.0 150 CORONAVIRUS",
		"left 1050.0 100 Cases by State",
		"left 1185.0 590 New York",
		"right 1165.0 590 397,000",
	} {
		if !rec.has(want) {
			t.Errorf("missing %q", want)
		}
	}
}

func TestDrawBarsProportional(t *testing.T) {
	rec := &recorder{}
	f := sampleFrame()
	if err := New(rec, 0).Draw(f); err != nil {
		t.Fatal(err)
	}

	scale := cases.SelectScale(f)
	for i, st := range cases.TrackedStates {
		length := scale * float64(f.Count(st.ID))
		want := fmt.Sprintf("rect %.1f %.1f %.1f %.1f %s", length/2+LeftMargin, BarY(i), length/2, BarHalfThick, BarColor(i).Hex())
		if !rec.has(want) {
			t.Errorf("%s: missing bar %q", st.Name, want)
		}
	}

	longest := scale * float64(f.Count(cases.NewYork))
	if math.Abs(longest-cases.TargetLength) > 1e-9 {
		t.Errorf("largest bar should be %v long, got %v", cases.TargetLength, longest)
	}
}

func TestDrawEmptyFrame(t *testing.T) {
	rec := &recorder{}
	if err := New(rec, 0).Draw(&cases.Frame{Date: "2020-1-1"}); err != nil {
		t.Fatal(err)
	}
	if got := rec.count("line "); got != 1 {
		t.Errorf("empty frame should draw only the zero gridline, got %d", got)
	}
	if !rec.has("right 40.0 770 0") || !rec.has("left 60.0 770 California") {
		t.Errorf("zero-length bars still get labels: %v", rec.ops)
	}
}

func TestDrawOnGrid(t *testing.T) {
	g := canvas.NewGrid(140, 45, canvas.WithColor(false))
	if err := New(g, 0).Draw(sampleFrame()); err != nil {
		t.Fatal(err)
	}
	plain := g.Plain()
	for _, want := range []string{"July 4, 2020", "US Total: 2,837,189", "California", "397,000", "300k"} {
		if !strings.Contains(plain, want) {
			t.Errorf("grid frame missing %q", want)
		}
	}
}
