package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/yildizm/casechart/internal/cases"
)

// csvFormatter formats frames as CSV, one row per date
type csvFormatter struct{}

// NewCSV creates a new CSV formatter
func NewCSV() Formatter {
	return &csvFormatter{}
}

func (f *csvFormatter) Format(frames []*cases.Frame) ([]byte, error) {
	var b bytes.Buffer
	writer := csv.NewWriter(&b)

	headers := []string{"Date", "US Total"}
	for _, info := range cases.TrackedStates {
		headers = append(headers, info.Name)
	}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, frame := range frames {
		record := make([]string, 0, len(headers))
		record = append(record, frame.Date, strconv.Itoa(frame.Total))
		for _, info := range cases.TrackedStates {
			record = append(record, strconv.Itoa(frame.Count(info.ID)))
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return b.Bytes(), nil
}
