package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false)
	log.Debug("hidden")
	log.Info("shown", "count", 4)
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line logged at info level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "count=4") {
		t.Fatalf("info line missing: %q", out)
	}

	buf.Reset()
	New(&buf, true).Named("ui").Debug("drag")
	if !strings.Contains(buf.String(), "segbar.ui") || !strings.Contains(buf.String(), "drag") {
		t.Fatalf("verbose named logger output = %q", buf.String())
	}
}

func TestLineBuffer(t *testing.T) {
	b := NewLineBuffer(3)
	b.Write([]byte("one\ntw"))
	b.Write([]byte("o\nthree\n"))
	b.Append("four")

	got := b.Lines()
	want := []string{"two", "three", "four"}
	if len(got) != len(want) {
		t.Fatalf("lines = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("lines = %q, want %q", got, want)
		}
	}
}

func TestTee(t *testing.T) {
	var out bytes.Buffer
	sink := NewLineBuffer(10)
	log := Tee(New(&out, false), &out, sink)
	log.Info("resized", "pointer", 0)
	if len(sink.Lines()) != 1 || !strings.Contains(sink.Lines()[0], "resized") {
		t.Fatalf("sink lines = %q", sink.Lines())
	}
	if !strings.Contains(out.String(), "resized") {
		t.Fatalf("primary output missing line: %q", out.String())
	}
}
