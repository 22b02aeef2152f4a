package formatter

import (
	"encoding/json"

	"github.com/yildizm/casechart/internal/cases"
)

// jsonFormatter formats output as JSON
type jsonFormatter struct{}

// NewJSON creates a new JSON formatter
func NewJSON() Formatter {
	return &jsonFormatter{}
}

// JSONOutput is the document written by the JSON formatter
type JSONOutput struct {
	Summary *SummaryOutput `json:"summary"`
	Frames  []*FrameOutput `json:"frames"`
}

// SummaryOutput describes the whole pass
type SummaryOutput struct {
	Frames    int    `json:"frames"`
	FirstDate string `json:"first_date,omitempty"`
	LastDate  string `json:"last_date,omitempty"`
	PeakTotal int    `json:"peak_total"`
	PeakDate  string `json:"peak_date,omitempty"`
}

// FrameOutput is one date with counts keyed by state name
type FrameOutput struct {
	Date   string         `json:"date"`
	Label  string         `json:"label"`
	Total  int            `json:"total"`
	States map[string]int `json:"states"`
}

func (f *jsonFormatter) Format(frames []*cases.Frame) ([]byte, error) {
	s := summarize(frames)
	output := &JSONOutput{
		Summary: &SummaryOutput{
			Frames:    s.Frames,
			FirstDate: s.FirstDate,
			LastDate:  s.LastDate,
			PeakTotal: s.PeakTotal,
			PeakDate:  s.PeakDate,
		},
		Frames: make([]*FrameOutput, 0, len(frames)),
	}

	for _, frame := range frames {
		states := make(map[string]int, cases.NumTracked)
		for _, info := range cases.TrackedStates {
			states[info.Name] = frame.Count(info.ID)
		}
		output.Frames = append(output.Frames, &FrameOutput{
			Date:   frame.Date,
			Label:  cases.FormatDateLabel(frame.Date),
			Total:  frame.Total,
			States: states,
		})
	}

	return json.MarshalIndent(output, "", "  ")
}
