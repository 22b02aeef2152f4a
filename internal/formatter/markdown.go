package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/casechart/internal/cases"
)

// markdownFormatter formats output as Markdown
type markdownFormatter struct{}

// NewMarkdown creates a new Markdown formatter
func NewMarkdown() Formatter {
	return &markdownFormatter{}
}

func (f *markdownFormatter) Format(frames []*cases.Frame) ([]byte, error) {
	var b strings.Builder

	b.WriteString("# CORONAVIRUS Cases by State\n\n")

	f.writeSummaryTable(&b, summarize(frames))

	if len(frames) > 0 {
		f.writeFrameTable(&b, frames)
	}

	return []byte(b.String()), nil
}

func (f *markdownFormatter) writeSummaryTable(b *strings.Builder, s summary) {
	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(b, "| Frames | %s |\n", cases.FormatWithCommas(s.Frames))
	if s.Frames > 0 {
		fmt.Fprintf(b, "| First Date | %s |\n", cases.FormatDateLabel(s.FirstDate))
		fmt.Fprintf(b, "| Last Date | %s |\n", cases.FormatDateLabel(s.LastDate))
		fmt.Fprintf(b, "| Peak US Total | %s (%s) |\n", cases.FormatWithCommas(s.PeakTotal), cases.FormatDateLabel(s.PeakDate))
	}
	b.WriteString("\n")
}

func (f *markdownFormatter) writeFrameTable(b *strings.Builder, frames []*cases.Frame) {
	b.WriteString("## Frames\n\n")

	b.WriteString("| Date | US Total |")
	for _, info := range cases.TrackedStates {
		b.WriteString(" " + info.Name + " |")
	}
	b.WriteString("\n|------|----------|")
	for _, info := range cases.TrackedStates {
		b.WriteString(strings.Repeat("-", len(info.Name)+2) + "|")
	}
	b.WriteString("\n")

	for _, frame := range frames {
		fmt.Fprintf(b, "| %s | %s |", cases.FormatDateLabel(frame.Date), cases.FormatWithCommas(frame.Total))
		for _, info := range cases.TrackedStates {
			b.WriteString(" " + cases.FormatWithCommas(frame.Count(info.ID)) + " |")
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}
