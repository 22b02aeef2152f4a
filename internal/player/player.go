package player

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/yildizm/casechart/internal/cases"
	"github.com/yildizm/casechart/internal/logger"
)

// Sink receives completed frames in order
type Sink interface {
	Draw(frame *cases.Frame) error
}

// SinkFunc adapts a function to Sink
type SinkFunc func(frame *cases.Frame) error

// Draw calls f(frame)
func (f SinkFunc) Draw(frame *cases.Frame) error {
	return f(frame)
}

// Stats summarises one pass over the input
type Stats struct {
	Frames    int           `json:"frames"`
	Lines     int           `json:"lines"`
	FirstDate string        `json:"first_date,omitempty"`
	LastDate  string        `json:"last_date,omitempty"`
	Duration  time.Duration `json:"duration"`
}

// Player drives a single pass: read a line, fold it in, draw at each date
// boundary, draw the final frame at the end.
type Player struct {
	sink          Sink
	log           *logger.Logger
	maxLineLength int
}

// New creates a player drawing into sink
func New(sink Sink, log *logger.Logger) *Player {
	if log == nil {
		log = logger.Discard()
	}
	return &Player{sink: sink, log: log}
}

// SetMaxLineLength overrides DefaultMaxLineLength
func (p *Player) SetMaxLineLength(n int) {
	p.maxLineLength = n
}

// Play consumes r to the end, or until ctx is cancelled or a line is
// rejected. Stats reflect what was drawn before any error, including a
// frame completed by the rejected line.
func (p *Player) Play(ctx context.Context, r io.Reader) (*Stats, error) {
	start := time.Now()
	stepper := NewStepper(r, p.log, p.maxLineLength)
	stats := &Stats{}

	defer func() {
		stats.Lines = stepper.Line()
		stats.Duration = time.Since(start)
	}()

	for {
		frame, err := stepper.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return stats, err
		}

		if stats.Frames == 0 {
			stats.FirstDate = frame.Date
		}
		stats.LastDate = frame.Date
		stats.Frames++

		p.log.DebugWithFields("frame complete", []logger.Field{
			logger.Date(frame.Date),
			logger.F("total", frame.Total),
		})

		if err := p.sink.Draw(frame); err != nil {
			return stats, fmt.Errorf("draw frame %s: %w", frame.Date, err)
		}
	}

	if stats.Frames == 0 {
		p.log.Warn("input contained no data lines")
	}

	return stats, nil
}

// Collector is a Sink that keeps a copy of every frame
type Collector struct {
	Frames []*cases.Frame
}

// Draw stores a copy of frame
func (c *Collector) Draw(frame *cases.Frame) error {
	c.Frames = append(c.Frames, frame.Clone())
	return nil
}
