package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestVerboseGating(t *testing.T) {
	verbose := false
	var buf bytes.Buffer
	log := NewWithCallback("player", func() bool { return verbose })
	log.SetOutput(&buf)

	log.Debug("hidden %d", 1)
	log.Info("hidden too")
	if buf.Len() != 0 {
		t.Fatalf("debug/info should be suppressed, got %q", buf.String())
	}

	log.Warn("shown")
	if !strings.Contains(buf.String(), "WARN [player] shown") {
		t.Errorf("unexpected warn line %q", buf.String())
	}

	buf.Reset()
	verbose = true
	log.Debug("frame %s", "2020-3-1")
	if !strings.Contains(buf.String(), "DEBUG [player] frame 2020-3-1") {
		t.Errorf("unexpected debug line %q", buf.String())
	}
}

func TestFieldsAndComponent(t *testing.T) {
	var buf bytes.Buffer
	log := New("", nil)
	log.SetOutput(&buf)

	log.WarnWithFields("bad line", []Field{Line(4), Error(errors.New("boom"))})
	out := buf.String()
	if !strings.Contains(out, "[main] bad line [line=4 error=boom]") {
		t.Errorf("unexpected output %q", out)
	}

	buf.Reset()
	child := log.WithComponent("render")
	child.Error("100% broken")
	if !strings.Contains(buf.String(), "ERROR [render] 100% broken") {
		t.Errorf("message without args must not be formatted, got %q", buf.String())
	}
}
