package player

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/cucumber/godog"
	"github.com/yildizm/casechart/internal/cases"
)

type playbackTestContext struct {
	data      string
	collector *Collector
	err       error
}

func (c *playbackTestContext) reset() {
	c.data = ""
	c.collector = &Collector{}
	c.err = nil
}

func (c *playbackTestContext) aCaseDataFile(doc *godog.DocString) error {
	c.data = doc.Content
	return nil
}

func (c *playbackTestContext) theFileIsPlayed() error {
	_, c.err = New(c.collector, nil).Play(context.Background(), strings.NewReader(c.data))
	return nil
}

func (c *playbackTestContext) framesAreEmitted(n int) error {
	if c.err != nil {
		return fmt.Errorf("playback failed: %w", c.err)
	}
	if len(c.collector.Frames) != n {
		return fmt.Errorf("expected %d frames, got %d", n, len(c.collector.Frames))
	}
	return nil
}

func (c *playbackTestContext) framesDrawnBeforeFailure(n int) error {
	if c.err == nil {
		return fmt.Errorf("expected playback to fail")
	}
	if len(c.collector.Frames) != n {
		return fmt.Errorf("expected %d frames before the failure, got %d", n, len(c.collector.Frames))
	}
	return nil
}

func (c *playbackTestContext) frame(n int) (*cases.Frame, error) {
	if n < 1 || n > len(c.collector.Frames) {
		return nil, fmt.Errorf("no frame %d (have %d)", n, len(c.collector.Frames))
	}
	return c.collector.Frames[n-1], nil
}

func (c *playbackTestContext) frameHasDateAndTotal(n int, date string, total int) error {
	f, err := c.frame(n)
	if err != nil {
		return err
	}
	if f.Date != date {
		return fmt.Errorf("frame %d: expected date %s, got %s", n, date, f.Date)
	}
	if f.Total != total {
		return fmt.Errorf("frame %d: expected total %d, got %d", n, total, f.Total)
	}
	return nil
}

func (c *playbackTestContext) frameHasStateAt(n int, state string, count int) error {
	f, err := c.frame(n)
	if err != nil {
		return err
	}
	s, ok := cases.LookupState(state)
	if !ok {
		return fmt.Errorf("%s is not a tracked state", state)
	}
	if got := f.Count(s); got != count {
		return fmt.Errorf("frame %d: expected %s=%d, got %d", n, state, count, got)
	}
	return nil
}

func (c *playbackTestContext) playbackFailsWithInvalidCount(value string) error {
	if !errors.Is(c.err, cases.ErrInvalidCount) {
		return fmt.Errorf("expected invalid count error, got %v", c.err)
	}
	var recErr *cases.RecordError
	if !errors.As(c.err, &recErr) || recErr.Value != value {
		return fmt.Errorf("expected offending value %q, got %v", value, c.err)
	}
	return nil
}

func (c *playbackTestContext) noFrameIsEmitted() error {
	if len(c.collector.Frames) != 0 {
		return fmt.Errorf("expected no frames, got %d", len(c.collector.Frames))
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &playbackTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	ctx.Step(`^a case data file:$`, tc.aCaseDataFile)
	ctx.Step(`^the file is played$`, tc.theFileIsPlayed)
	ctx.Step(`^(\d+) frames? (?:is|are) emitted$`, tc.framesAreEmitted)
	ctx.Step(`^frame (\d+) has date "([^"]*)" and total (\d+)$`, tc.frameHasDateAndTotal)
	ctx.Step(`^frame (\d+) has ([A-Za-z ]+) at (\d+)$`, tc.frameHasStateAt)
	ctx.Step(`^playback fails with an invalid count "([^"]*)"$`, tc.playbackFailsWithInvalidCount)
	ctx.Step(`^no frame is emitted$`, tc.noFrameIsEmitted)
	ctx.Step(`^(\d+) frames? (?:was|were) drawn before the failure$`, tc.framesDrawnBeforeFailure)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../../features/playback.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
