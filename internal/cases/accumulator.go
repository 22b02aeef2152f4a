package cases

// Accumulator folds records into date-grouped frames. Exactly one frame is
// live at a time; a frame is handed out once its date stops matching the
// input and is never touched again.
type Accumulator struct {
	live *Frame
}

// NewAccumulator creates an empty accumulator
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Ingest parses one data line and folds it into the live frame. When the
// line starts a new date the previous frame is returned before the line is
// applied to a fresh one. A rejected line is never folded in, but if its
// date still closes the live frame that frame is returned alongside the
// error.
func (a *Accumulator) Ingest(line string) (*Frame, error) {
	rec, err := ParseRecord(line)
	if err != nil {
		if rec.Date != "" && a.live != nil && a.live.Date != rec.Date {
			return a.Flush(), err
		}
		return nil, err
	}

	return a.Apply(rec), nil
}

// Apply folds an already parsed record, returning the completed frame at a
// date boundary.
func (a *Accumulator) Apply(rec Record) *Frame {
	var done *Frame
	if a.live != nil && a.live.Date != rec.Date {
		done = a.Flush()
	}
	if a.live == nil {
		a.live = &Frame{Date: rec.Date}
	}

	if s, ok := LookupState(rec.State); ok {
		a.live.Counts[s] = rec.Cases
	}
	a.live.Total += rec.Cases

	return done
}

// Flush hands out the live frame, if any. Subsequent calls return nil until
// more data arrives.
func (a *Accumulator) Flush() *Frame {
	done := a.live
	a.live = nil
	return done
}
