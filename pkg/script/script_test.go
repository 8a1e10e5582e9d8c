package script

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/OpenTraceLab/segbar/pkg/segment"
)

func mustParse(t *testing.T, src string) *Program {
	t.Helper()
	parser, err := NewParser()
	if err != nil {
		t.Fatalf("parser init failed: %v", err)
	}
	prog, err := parser.ParseString(src)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return prog
}

func TestParseStatements(t *testing.T) {
	prog := mustParse(t, `
// drag scenario
count 5
resize 0 +10; resize 1 -2.5
drag 2 -40 400
color 3 #ff6347
select 1
next
prev
clear
click 1.5708
clickdeg 90
unit currency 2000
unit percent
show
check
`)
	want := []string{
		"count", "resize", "resize", "drag", "color", "select", "next",
		"prev", "clear", "click", "clickdeg", "unit", "unit", "show", "check",
	}
	if len(prog.Statements) != len(want) {
		t.Fatalf("got %d statements, want %d", len(prog.Statements), len(want))
	}
	for i, stmt := range prog.Statements {
		if stmt.Name() != want[i] {
			t.Fatalf("statement %d = %s, want %s", i, stmt.Name(), want[i])
		}
	}

	if r := prog.Statements[1].Resize; r.Pointer != 0 || r.Delta != 10 {
		t.Fatalf("resize = %+v", r)
	}
	if r := prog.Statements[2].Resize; r.Pointer != 1 || r.Delta != -2.5 {
		t.Fatalf("second resize = %+v", r)
	}
	if d := prog.Statements[3].Drag; d.Pointer != 2 || d.Pixels != -40 || d.Width != 400 {
		t.Fatalf("drag = %+v", d)
	}
	if c := prog.Statements[4].Color; c.Index != 3 || c.Color != "#ff6347" {
		t.Fatalf("color = %+v", c)
	}
	if u := prog.Statements[11].Unit; u.Unit != "currency" || u.Total == nil || *u.Total != 2000 {
		t.Fatalf("unit = %+v", u)
	}
	if u := prog.Statements[12].Unit; u.Total != nil {
		t.Fatalf("unit percent should have no total, got %v", *u.Total)
	}
	if prog.Statements[2].Pos.Line != 4 {
		t.Fatalf("second resize on line %d, want 4", prog.Statements[2].Pos.Line)
	}
}

func TestParseErrors(t *testing.T) {
	parser, err := NewParser()
	if err != nil {
		t.Fatalf("parser init failed: %v", err)
	}
	for _, src := range []string{
		"resize 0",
		"count five",
		"explode 3",
		"color 1 red",
	} {
		if _, err := parser.ParseString(src); err == nil {
			t.Errorf("ParseString(%q) should fail", src)
		}
	}
}

func TestRunScenario(t *testing.T) {
	prog := mustParse(t, `
resize 0 +10
resize 0 -40
select 1
unit currency 1000
show
`)
	p := segment.Initialize(4, nil)
	var out bytes.Buffer
	r := NewRunner(p, &out, nil)
	r.Strict = true
	if err := r.Run(prog); err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []float64{1, 49, 25, 25}
	for i, size := range p.Sizes() {
		if math.Abs(size-want[i]) > 1e-9 {
			t.Fatalf("sizes = %v, want %v", p.Sizes(), want)
		}
	}
	if r.Steps() != 5 {
		t.Fatalf("steps = %d, want 5", r.Steps())
	}
	if !strings.Contains(out.String(), "490.00 €") {
		t.Fatalf("show output missing selected amount:\n%s", out.String())
	}
}

func TestRunDragAndClick(t *testing.T) {
	prog := mustParse(t, `
drag 0 40 400
clickdeg 100
`)
	p := segment.Initialize(4, nil)
	if err := NewRunner(p, nil, nil).Run(prog); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := p.Sizes()[0]; math.Abs(got-35) > 1e-9 {
		t.Fatalf("drag of 40px on 400px should add 10%%, size = %v", got)
	}
	// 100 degrees is 27.8% of the pie, inside segment 0 (0..35%).
	if sel, ok := p.Selected(); !ok || sel != 0 {
		t.Fatalf("selected = %d,%v want 0", sel, ok)
	}
}

func TestRunRejectsBadIndices(t *testing.T) {
	tests := []struct {
		src  string
		want error
	}{
		{"resize 3 5", ErrPointerRange},
		{"drag -1 5 100", ErrPointerRange},
		{"color 4 #000000", ErrSegmentRange},
		{"select 9", ErrSegmentRange},
		{"unit yen", ErrInvalidUnit},
		{"color 0 #12345", ErrInvalidColor},
		{"count 101", ErrCountRange},
		{"count 1000000000", ErrCountRange},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			p := segment.Initialize(4, nil)
			err := NewRunner(p, nil, nil).Run(mustParse(t, tt.src))
			if !errors.Is(err, tt.want) {
				t.Fatalf("Run(%q) = %v, want %v", tt.src, err, tt.want)
			}
			if !strings.Contains(err.Error(), "line 1") {
				t.Fatalf("error should name the line: %v", err)
			}
		})
	}
}

func TestRunCountUpToLimit(t *testing.T) {
	p := segment.Initialize(4, nil)
	if err := NewRunner(p, nil, nil).Run(mustParse(t, "count 100; check")); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if p.Len() != 100 {
		t.Fatalf("Len = %d, want 100", p.Len())
	}
}

func TestRunCurrencyFallback(t *testing.T) {
	p := segment.Initialize(4, nil)
	r := NewRunner(p, nil, nil)
	r.FallbackTotal = 800
	if err := r.Run(mustParse(t, "unit currency -5")); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if p.UnitType() != segment.UnitCurrency || p.TotalValue() != 800 {
		t.Fatalf("unit/total = %s/%v, want currency/800", p.UnitType(), p.TotalValue())
	}
	v, _ := p.FormatSize(0)
	if v.Value != 200 {
		t.Fatalf("FormatSize = %v, want 200", v.Value)
	}
}

func TestRunRecountKeepsColors(t *testing.T) {
	prog := mustParse(t, `
count 5
color 0 #010203
count 2
check
`)
	p := segment.Initialize(4, nil)
	if err := NewRunner(p, nil, nil).Run(prog); err != nil {
		t.Fatalf("Run: %v", err)
	}
	segs := p.Segments()
	if len(segs) != 2 || segs[0].Color != "#010203" || segs[1].Color != segment.DefaultPalette()[1] {
		t.Fatalf("segments = %+v", segs)
	}
}
