package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/casechart/internal/cases"
	"github.com/yildizm/casechart/internal/emoji"
	"github.com/yildizm/go-termfmt"
)

// terminalFormatter formats output as plain text for terminal display using go-termfmt
type terminalFormatter struct {
	opts *termfmt.TerminalOptions
}

// NewTerminal creates a new terminal formatter with optional color support
func NewTerminal(color bool) Formatter {
	opts := termfmt.DefaultOptions()
	opts.Color = color
	opts.Emoji = !emoji.IsEmojiDisabled()
	return &terminalFormatter{opts: opts}
}

func (f *terminalFormatter) Format(frames []*cases.Frame) ([]byte, error) {
	var b strings.Builder

	f.writeHeader(&b)

	s := summarize(frames)
	f.writeStatistics(&b, s)

	if len(frames) > 0 {
		f.writeFrames(&b, frames)
	}

	return []byte(b.String()), nil
}

func (f *terminalFormatter) writeHeader(b *strings.Builder) {
	title := "CORONAVIRUS Cases by State"
	b.WriteString("╭" + strings.Repeat("─", len(title)+2) + "╮\n")
	b.WriteString("│ " + title + " │\n")
	b.WriteString("╰" + strings.Repeat("─", len(title)+2) + "╯\n\n")
}

// writeStatistics writes the pass summary as a tree
func (f *terminalFormatter) writeStatistics(b *strings.Builder, s summary) {
	symbol := termfmt.GetEmoji("statistics", f.opts)
	b.WriteString(symbol + " Statistics\n")

	if s.Frames == 0 {
		items := []termfmt.TreeItem{
			{Label: "Frames", Value: "0", Last: true},
		}
		b.WriteString(termfmt.TreeViewWithOptions(items, f.opts))
		b.WriteString("\n")
		return
	}

	state, count := leader(s.Final)
	items := []termfmt.TreeItem{
		{Label: "Frames", Value: cases.FormatWithCommas(s.Frames)},
		{Label: "First Date", Value: cases.FormatDateLabel(s.FirstDate)},
		{Label: "Last Date", Value: cases.FormatDateLabel(s.LastDate)},
		{Label: "Peak US Total", Value: fmt.Sprintf("%s (%s)", cases.FormatWithCommas(s.PeakTotal), cases.FormatDateLabel(s.PeakDate))},
		{Label: "Leading State", Value: fmt.Sprintf("%s (%s)", state, cases.FormatWithCommas(count)), Last: true},
	}
	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts))
	b.WriteString("\n")
}

// writeFrames writes one tree node per date with the tracked counts beneath it
func (f *terminalFormatter) writeFrames(b *strings.Builder, frames []*cases.Frame) {
	symbol := termfmt.GetEmoji("summary", f.opts)
	b.WriteString(symbol + " Frames\n")

	items := make([]termfmt.TreeItem, 0, len(frames))
	for i, frame := range frames {
		children := make([]termfmt.TreeItem, 0, cases.NumTracked)
		for j, info := range cases.TrackedStates {
			children = append(children, termfmt.TreeItem{
				Label: info.Name,
				Value: cases.FormatWithCommas(frame.Count(info.ID)),
				Last:  j == cases.NumTracked-1,
			})
		}
		items = append(items, termfmt.TreeItem{
			Label:    cases.FormatDateLabel(frame.Date),
			Value:    "US Total: " + cases.FormatWithCommas(frame.Total),
			Children: children,
			Last:     i == len(frames)-1,
		})
	}
	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts))
	b.WriteString("\n")
}
