package trend

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/yildizm/casechart/internal/cases"
)

func frames() []*cases.Frame {
	return []*cases.Frame{
		{Date: "2020-3-1", Counts: [cases.NumTracked]int{12, 1, 0, 0, 0}, Total: 31},
		{Date: "2020-3-2", Counts: [cases.NumTracked]int{21, 4, 2, 1500, 3}, Total: 1600},
	}
}

func TestBuild(t *testing.T) {
	p, err := Build(frames(), true)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !strings.Contains(p.Title.Text, "March 1, 2020 to March 2, 2020") {
		t.Errorf("Unexpected title %q", p.Title.Text)
	}
	if p.Y.Max < 1600 {
		t.Errorf("Expected y axis to reach the US total, max %v", p.Y.Max)
	}

	p, err = Build(frames(), false)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if p.Y.Max >= 1600 {
		t.Errorf("Expected y axis bounded by states, max %v", p.Y.Max)
	}
}

func TestBuildNoFrames(t *testing.T) {
	if _, err := Build(nil, true); !errors.Is(err, ErrNoFrames) {
		t.Errorf("Expected ErrNoFrames, got %v", err)
	}
}

func TestWrite(t *testing.T) {
	tests := []struct {
		format string
		marker []byte
	}{
		{"png", []byte("\x89PNG")},
		{"svg", []byte("<svg")},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, frames(), Options{Format: tt.format, WithTotal: true}); err != nil {
				t.Fatalf("Write failed: %v", err)
			}
			if !bytes.Contains(buf.Bytes(), tt.marker) {
				t.Errorf("Expected %s output, got %d bytes without %q", tt.format, buf.Len(), tt.marker)
			}
		})
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, frames(), Options{Format: "bmp"}); err == nil {
		t.Error("Expected error for unsupported format")
	}
}

func TestStateColor(t *testing.T) {
	c := stateColor(4)
	if c.R != 170 || c.G != 225 || c.B != 210 {
		t.Errorf("Unexpected colour %+v", c)
	}
}
