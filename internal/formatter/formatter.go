package formatter

import (
	"fmt"

	"github.com/yildizm/casechart/internal/cases"
)

// Formatter defines the interface for output formatting
type Formatter interface {
	Format(frames []*cases.Frame) ([]byte, error)
}

// New returns the formatter registered under name
func New(name string, color bool) (Formatter, error) {
	switch name {
	case "text", "":
		return NewTerminal(color), nil
	case "json":
		return NewJSON(), nil
	case "csv":
		return NewCSV(), nil
	case "markdown", "md":
		return NewMarkdown(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (must be one of: json, text, markdown, csv)", name)
	}
}
