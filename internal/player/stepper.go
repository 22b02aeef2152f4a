package player

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/yildizm/casechart/internal/cases"
	"github.com/yildizm/casechart/internal/logger"
)

// DefaultMaxLineLength bounds a single input line
const DefaultMaxLineLength = 1024 * 1024

// Stepper pulls frames out of a case data stream one at a time. The first
// line is a header and is skipped. Frames come out in input order; after
// the last one Next returns io.EOF.
type Stepper struct {
	scanner  *bufio.Scanner
	acc      *cases.Accumulator
	log      *logger.Logger
	line     int
	consumed int64
	done     bool
	pending  error
}

// NewStepper creates a stepper over r
func NewStepper(r io.Reader, log *logger.Logger, maxLineLength int) *Stepper {
	if log == nil {
		log = logger.Discard()
	}
	if maxLineLength <= 0 {
		maxLineLength = DefaultMaxLineLength
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	return &Stepper{
		scanner: scanner,
		acc:     cases.NewAccumulator(),
		log:     log,
	}
}

// Next returns the next completed frame. A rejected line ends the stream
// with its error. When that line starts a new date the finished frame comes
// out first and the error is returned by the following call. Cancelling ctx
// stops the scan before the next line.
func (s *Stepper) Next(ctx context.Context) (*cases.Frame, error) {
	if s.pending != nil {
		err := s.pending
		s.pending = nil
		return nil, err
	}
	if s.done {
		return nil, io.EOF
	}

	for s.scanner.Scan() {
		if err := ctx.Err(); err != nil {
			s.done = true
			return nil, err
		}
		s.line++
		s.consumed += int64(len(s.scanner.Bytes())) + 1
		if s.line == 1 {
			continue
		}

		text := strings.TrimRight(s.scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			s.log.WarnWithFields("skipping blank line", []logger.Field{logger.Line(s.line)})
			continue
		}

		frame, err := s.acc.Ingest(text)
		if err != nil {
			s.done = true
			var recErr *cases.RecordError
			if errors.As(err, &recErr) {
				recErr.Line = s.line
			}
			if frame != nil {
				s.pending = err
				return frame, nil
			}
			return nil, err
		}
		if frame != nil {
			return frame, nil
		}
	}

	s.done = true
	if err := s.scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if frame := s.acc.Flush(); frame != nil {
		return frame, nil
	}
	return nil, io.EOF
}

// Line returns the number of lines read so far, header included
func (s *Stepper) Line() int {
	return s.line
}

// Consumed returns an estimate of bytes read so far
func (s *Stepper) Consumed() int64 {
	return s.consumed
}
