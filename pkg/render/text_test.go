package render

import (
	"bytes"
	"strings"
	"testing"

	"gioui.org/f32"
	"gioui.org/op"

	"github.com/OpenTraceLab/segbar/pkg/segment"
)

func TestTextBar(t *testing.T) {
	p := segment.Initialize(4, nil)
	p.ResizeAdjacent(0, 10) // [35, 15, 25, 25]
	got := TextBar(p.Snapshot(), 20)
	want := "[00000001112222233333]"
	if got != want {
		t.Fatalf("TextBar = %q, want %q", got, want)
	}
	if TextBar(p.Snapshot(), 0) != "" {
		t.Fatalf("zero width bar should be empty")
	}
}

func TestTextBarAlwaysFullWidth(t *testing.T) {
	p := segment.Initialize(7, nil)
	p.ResizeAdjacent(2, 3.3)
	for _, width := range []int{1, 7, 13, 40, 99} {
		bar := TextBar(p.Snapshot(), width)
		if len(bar) != width+2 {
			t.Fatalf("width %d: bar %q has %d cells", width, bar, len(bar)-2)
		}
	}
}

func TestWriteSummary(t *testing.T) {
	p := segment.Initialize(2, nil)
	p.SetUnitTypeWithTotal(segment.UnitCurrency, 1000)
	p.Select(1)

	var buf bytes.Buffer
	if err := WriteSummary(&buf, p.Snapshot(), 10); err != nil {
		t.Fatalf("WriteSummary: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Segments: 2",
		"currency (total 1000.00)",
		"500.00 €",
		"> 2",
		"#87CEFA",
		"[0000011111]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestDrawRecordsOps(t *testing.T) {
	p := segment.Initialize(5, nil)
	p.Select(2)
	snap := p.Snapshot()
	ops := new(op.Ops)
	style := DefaultStyle()

	DrawPie(ops, PieIn(300, 300, 20), snap, style)
	DrawBar(ops, Bar{Size: f32.Pt(300, 24)}, snap, style)
	DrawPointers(ops, Bar{Size: f32.Pt(300, 24)}, snap.Boundaries, 1, style)
}

func TestArcPointsEndpoints(t *testing.T) {
	pie := PieIn(100, 100, 0)
	pts := arcPoints(pie, 0, segment.FullTurn/4, pie.Radius)
	if len(pts) < 3 {
		t.Fatalf("arc has %d points", len(pts))
	}
	first, last := pts[0], pts[len(pts)-1]
	if first != pie.PointAt(0, pie.Radius) || last != pie.PointAt(segment.FullTurn/4, pie.Radius) {
		t.Fatalf("arc endpoints %v..%v", first, last)
	}
}
