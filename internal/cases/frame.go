package cases

// Frame holds the accumulated counts for one date.
//
// Counts are cumulative-to-date snapshots indexed by State. Total sums every
// parsed row for the date, including states without a bar.
type Frame struct {
	Date   string          `json:"date"`
	Counts [NumTracked]int `json:"counts"`
	Total  int             `json:"total"`
}

// Count returns the count for a tracked state
func (f *Frame) Count(s State) int {
	return f.Counts[s]
}

// Max returns the largest tracked count, 0 for an empty frame
func (f *Frame) Max() int {
	largest := 0
	for _, c := range f.Counts {
		if c > largest {
			largest = c
		}
	}
	return largest
}

// Clone returns an independent copy
func (f *Frame) Clone() *Frame {
	c := *f
	return &c
}
