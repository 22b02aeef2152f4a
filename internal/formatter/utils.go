package formatter

import (
	"github.com/yildizm/casechart/internal/cases"
)

// summary holds the figures every formatter reports
type summary struct {
	Frames    int
	FirstDate string
	LastDate  string
	PeakTotal int
	PeakDate  string
	Final     *cases.Frame
}

func summarize(frames []*cases.Frame) summary {
	s := summary{Frames: len(frames)}
	if len(frames) == 0 {
		return s
	}
	s.FirstDate = frames[0].Date
	s.LastDate = frames[len(frames)-1].Date
	s.Final = frames[len(frames)-1]
	for _, f := range frames {
		if f.Total > s.PeakTotal {
			s.PeakTotal = f.Total
			s.PeakDate = f.Date
		}
	}
	return s
}

// leader returns the tracked state with the largest count. Ties go to the
// state listed first.
func leader(f *cases.Frame) (cases.State, int) {
	best, count := cases.California, -1
	for _, info := range cases.TrackedStates {
		if c := f.Count(info.ID); c > count {
			best, count = info.ID, c
		}
	}
	return best, count
}
